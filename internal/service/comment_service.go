package service

import (
	"context"
	"time"

	"open-law-be/internal/dto"
	"open-law-be/internal/entity"
	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

type ICommentService interface {
	Create(ctx context.Context, userID *uint, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
	ListByInterpretation(ctx context.Context, interpretationID uint) ([]*dto.ShowCommentResponse, error)
	Update(ctx context.Context, userID uint, req *dto.UpdateCommentRequest) error
	Delete(ctx context.Context, userID, id uint) error
}

type commentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCommentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) ICommentService {
	return &commentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *commentService) Create(ctx context.Context, userID *uint, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interpretation, err := uow.InterpretationRepository().FindOne(ctx,
		specification.ByID{ID: req.InterpretationId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if interpretation == nil {
		return nil, apperr.NotFound("interpretation %d not found", req.InterpretationId)
	}

	if req.ParentId != nil {
		parent, err := uow.CommentRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.NotDeleted{},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound("comment %d not found", *req.ParentId)
		}
		if parent.InterpretationId != req.InterpretationId {
			return nil, apperr.InvalidOperation("parent comment belongs to a different interpretation")
		}
	}

	comment := &entity.Comment{
		Text:             req.Text,
		InterpretationId: req.InterpretationId,
		ParentId:         req.ParentId,
		UserId:           userID,
		CreatedAt:        time.Now(),
	}
	if err := uow.CommentRepository().Create(ctx, comment); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COMMENT_CREATED",
		EntityKind: "comment",
		EntityIds:  []uint{comment.Id},
		ActorId:    userID,
	})

	return &dto.CreateCommentResponse{Id: comment.Id}, nil
}

func (s *commentService) ListByInterpretation(ctx context.Context, interpretationID uint) ([]*dto.ShowCommentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interpretation, err := uow.InterpretationRepository().FindOne(ctx,
		specification.ByID{ID: interpretationID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if interpretation == nil {
		return nil, apperr.NotFound("interpretation %d not found", interpretationID)
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByInterpretationID{InterpretationID: interpretationID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowCommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, &dto.ShowCommentResponse{
			Id:               comment.Id,
			Text:             comment.Text,
			InterpretationId: comment.InterpretationId,
			ParentId:         comment.ParentId,
			UserId:           comment.UserId,
			CreatedAt:        comment.CreatedAt,
			UpdatedAt:        comment.UpdatedAt,
		})
	}
	return result, nil
}

func (s *commentService) Update(ctx context.Context, userID uint, req *dto.UpdateCommentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := s.findLive(ctx, uow, req.Id)
	if err != nil {
		return err
	}
	if comment.UserId == nil || *comment.UserId != userID {
		return apperr.Unauthorized("only the author can edit a comment")
	}

	comment.Text = req.Text
	now := time.Now()
	comment.UpdatedAt = &now

	if err := uow.CommentRepository().Update(ctx, comment); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COMMENT_UPDATED",
		EntityKind: "comment",
		EntityIds:  []uint{comment.Id},
		ActorId:    &userID,
	})
	return nil
}

// Delete soft-deletes a comment and its reply subtree, walked level by
// level through parent ids.
func (s *commentService) Delete(ctx context.Context, userID, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	comment, err := s.findLive(ctx, uow, id)
	if err != nil {
		return err
	}
	if comment.UserId == nil || *comment.UserId != userID {
		return apperr.Unauthorized("only the author can delete a comment")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	all := []uint{id}
	frontier := []uint{id}
	for len(frontier) > 0 {
		next := make([]uint, 0)
		for _, parentID := range frontier {
			pid := parentID
			replies, err := uow.CommentRepository().FindAll(ctx,
				specification.ByParentCommentID{ParentID: &pid},
				specification.NotDeleted{},
			)
			if err != nil {
				return err
			}
			for _, reply := range replies {
				all = append(all, reply.Id)
				next = append(next, reply.Id)
			}
		}
		frontier = next
	}

	if err := uow.CommentRepository().SetDeleted(ctx, all); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COMMENT_DELETED",
		EntityKind: "comment",
		EntityIds:  all,
		ActorId:    &userID,
	})
	return nil
}

func (s *commentService) findLive(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Comment, error) {
	comment, err := uow.CommentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, apperr.NotFound("comment %d not found", id)
	}
	return comment, nil
}
