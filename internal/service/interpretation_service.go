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

type IInterpretationService interface {
	Create(ctx context.Context, userID *uint, req *dto.CreateInterpretationRequest) (*dto.CreateInterpretationResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowInterpretationResponse, error)
	ListBySection(ctx context.Context, sectionID uint) ([]*dto.ShowInterpretationResponse, error)
	Update(ctx context.Context, userID uint, req *dto.UpdateInterpretationRequest) error
	Delete(ctx context.Context, userID, id uint) error
}

type interpretationService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
}

func NewInterpretationService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
) IInterpretationService {
	return &interpretationService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
	}
}

// Create records a reading of a section. Texts carry no uniqueness rule:
// two users may submit identical interpretations. Anonymous submissions
// pass a nil user id.
func (s *interpretationService) Create(ctx context.Context, userID *uint, req *dto.CreateInterpretationRequest) (*dto.CreateInterpretationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByID{ID: req.SectionId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperr.NotFound("section %d not found", req.SectionId)
	}

	bookID, err := s.accessService.ResolveBookForCollection(ctx, uow, section.CollectionId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	interpretation := &entity.Interpretation{
		Text:      req.Text,
		SectionId: section.Id,
		UserId:    userID,
		CreatedAt: time.Now(),
	}
	if err := uow.InterpretationRepository().Create(ctx, interpretation); err != nil {
		return nil, err
	}

	if err := s.accessService.PropagateToInterpretation(ctx, uow, bookID, interpretation.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "INTERPRETATION_CREATED",
		EntityKind: "interpretation",
		EntityIds:  []uint{interpretation.Id},
		ActorId:    userID,
	})

	return &dto.CreateInterpretationResponse{Id: interpretation.Id}, nil
}

func (s *interpretationService) Show(ctx context.Context, id uint) (*dto.ShowInterpretationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interpretation, err := s.findLive(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return interpretationToResponse(interpretation), nil
}

func (s *interpretationService) ListBySection(ctx context.Context, sectionID uint) ([]*dto.ShowInterpretationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByID{ID: sectionID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperr.NotFound("section %d not found", sectionID)
	}

	interpretations, err := uow.InterpretationRepository().FindAll(ctx,
		specification.BySectionID{SectionID: sectionID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowInterpretationResponse, 0, len(interpretations))
	for _, interpretation := range interpretations {
		result = append(result, interpretationToResponse(interpretation))
	}
	return result, nil
}

func (s *interpretationService) Update(ctx context.Context, userID uint, req *dto.UpdateInterpretationRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interpretation, err := s.findLive(ctx, uow, req.Id)
	if err != nil {
		return err
	}
	if interpretation.UserId == nil || *interpretation.UserId != userID {
		return apperr.Unauthorized("only the author can edit an interpretation")
	}

	interpretation.Text = req.Text
	now := time.Now()
	interpretation.UpdatedAt = &now

	if err := uow.InterpretationRepository().Update(ctx, interpretation); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "INTERPRETATION_UPDATED",
		EntityKind: "interpretation",
		EntityIds:  []uint{interpretation.Id},
		ActorId:    &userID,
	})
	return nil
}

// Delete soft-deletes the interpretation and its entire comment thread.
// Replies keep the interpretation id, so one filter reaches them all.
func (s *interpretationService) Delete(ctx context.Context, userID, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interpretation, err := s.findLive(ctx, uow, id)
	if err != nil {
		return err
	}
	if interpretation.UserId == nil || *interpretation.UserId != userID {
		return apperr.Unauthorized("only the author can delete an interpretation")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByInterpretationID{InterpretationID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	commentIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		commentIDs = append(commentIDs, c.Id)
	}

	if err := uow.CommentRepository().SetDeleted(ctx, commentIDs); err != nil {
		return err
	}
	if err := uow.InterpretationRepository().SetDeleted(ctx, []uint{id}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "INTERPRETATION_DELETED",
		EntityKind: "interpretation",
		EntityIds:  []uint{id},
		ActorId:    &userID,
	})
	return nil
}

func (s *interpretationService) findLive(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Interpretation, error) {
	interpretation, err := uow.InterpretationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if interpretation == nil {
		return nil, apperr.NotFound("interpretation %d not found", id)
	}
	return interpretation, nil
}

func interpretationToResponse(i *entity.Interpretation) *dto.ShowInterpretationResponse {
	return &dto.ShowInterpretationResponse{
		Id:        i.Id,
		Text:      i.Text,
		SectionId: i.SectionId,
		UserId:    i.UserId,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
