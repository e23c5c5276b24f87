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

type ISectionService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowSectionResponse, error)
	ListByCollection(ctx context.Context, collectionID uint) ([]*dto.ShowSectionResponse, error)
	Update(ctx context.Context, userID uint, req *dto.UpdateSectionRequest) error
	Delete(ctx context.Context, userID, id uint) error
}

type sectionService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
}

func NewSectionService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
) ISectionService {
	return &sectionService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
	}
}

// Create adds a section to a leaf collection. Only leaves own sections;
// labels are unique among the live sections of one collection.
func (s *sectionService) Create(ctx context.Context, userID uint, req *dto.CreateSectionRequest) (*dto.CreateSectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := uow.CollectionRepository().FindOne(ctx,
		specification.ByID{ID: req.CollectionId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperr.NotFound("collection %d not found", req.CollectionId)
	}
	if !collection.IsLeaf {
		return nil, apperr.InvalidOperation("collection %d is not a leaf and cannot hold sections", collection.Id)
	}

	bookID, err := s.requireOwner(ctx, uow, collection.Id, userID)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	duplicate, err := uow.SectionRepository().Count(ctx,
		specification.ByCollectionID{CollectionID: collection.Id},
		specification.ByLabel{Label: req.Label},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if duplicate > 0 {
		return nil, apperr.DuplicateLabel("section %q already exists in collection %d", req.Label, collection.Id)
	}

	section := &entity.Section{
		Label:        req.Label,
		About:        req.About,
		CollectionId: collection.Id,
		VersionId:    collection.VersionId,
		UserId:       &userID,
		CreatedAt:    time.Now(),
	}
	if err := uow.SectionRepository().Create(ctx, section); err != nil {
		return nil, err
	}

	if err := s.accessService.PropagateToSection(ctx, uow, bookID, section.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "SECTION_CREATED",
		EntityKind: "section",
		EntityIds:  []uint{section.Id},
		ActorId:    &userID,
	})

	return &dto.CreateSectionResponse{Id: section.Id}, nil
}

func (s *sectionService) Show(ctx context.Context, id uint) (*dto.ShowSectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := s.findLive(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return sectionToResponse(section), nil
}

func (s *sectionService) ListByCollection(ctx context.Context, collectionID uint) ([]*dto.ShowSectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := uow.CollectionRepository().FindOne(ctx,
		specification.ByID{ID: collectionID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperr.NotFound("collection %d not found", collectionID)
	}

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.ByCollectionID{CollectionID: collectionID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowSectionResponse, 0, len(sections))
	for _, section := range sections {
		result = append(result, sectionToResponse(section))
	}
	return result, nil
}

func (s *sectionService) Update(ctx context.Context, userID uint, req *dto.UpdateSectionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := s.findLive(ctx, uow, req.Id)
	if err != nil {
		return err
	}
	if _, err := s.requireOwner(ctx, uow, section.CollectionId, userID); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if req.Label != nil && *req.Label != section.Label {
		duplicate, err := uow.SectionRepository().Count(ctx,
			specification.ByCollectionID{CollectionID: section.CollectionId},
			specification.ByLabel{Label: *req.Label},
			specification.ExcludeID{ID: section.Id},
			specification.NotDeleted{},
		)
		if err != nil {
			return err
		}
		if duplicate > 0 {
			return apperr.DuplicateLabel("section %q already exists in collection %d", *req.Label, section.CollectionId)
		}
		section.Label = *req.Label
	}
	if req.About != nil {
		section.About = *req.About
	}
	now := time.Now()
	section.UpdatedAt = &now

	if err := uow.SectionRepository().Update(ctx, section); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "SECTION_UPDATED",
		EntityKind: "section",
		EntityIds:  []uint{section.Id},
		ActorId:    &userID,
	})
	return nil
}

// Delete soft-deletes the section with its interpretations and their
// comment threads in one transaction.
func (s *sectionService) Delete(ctx context.Context, userID, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	section, err := s.findLive(ctx, uow, id)
	if err != nil {
		return err
	}
	if _, err := s.requireOwner(ctx, uow, section.CollectionId, userID); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	interpretationIDs := make([]uint, 0)
	interpretations, err := uow.InterpretationRepository().FindAll(ctx,
		specification.BySectionID{SectionID: section.Id},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	for _, i := range interpretations {
		interpretationIDs = append(interpretationIDs, i.Id)
	}

	commentIDs := make([]uint, 0)
	if len(interpretationIDs) > 0 {
		comments, err := uow.CommentRepository().FindAll(ctx,
			specification.ByInterpretationIDs{InterpretationIDs: interpretationIDs},
			specification.NotDeleted{},
		)
		if err != nil {
			return err
		}
		for _, c := range comments {
			commentIDs = append(commentIDs, c.Id)
		}
	}

	if err := uow.CommentRepository().SetDeleted(ctx, commentIDs); err != nil {
		return err
	}
	if err := uow.InterpretationRepository().SetDeleted(ctx, interpretationIDs); err != nil {
		return err
	}
	if err := uow.SectionRepository().SetDeleted(ctx, []uint{section.Id}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "SECTION_DELETED",
		EntityKind: "section",
		EntityIds:  []uint{section.Id},
		ActorId:    &userID,
	})
	return nil
}

// requireOwner resolves the owning book through the section's collection and
// rejects callers other than the book owner. It returns the book id so
// Create can reuse it for the group bindings.
func (s *sectionService) requireOwner(ctx context.Context, uow unitofwork.UnitOfWork, collectionID, userID uint) (uint, error) {
	bookID, err := s.accessService.ResolveBookForCollection(ctx, uow, collectionID)
	if err != nil {
		return 0, err
	}
	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: bookID},
		specification.NotDeleted{},
	)
	if err != nil {
		return 0, err
	}
	if book == nil {
		return 0, apperr.NotFound("book %d not found", bookID)
	}
	if book.UserId != userID {
		return 0, apperr.Unauthorized("only the owner can modify the book's sections")
	}
	return bookID, nil
}

func (s *sectionService) findLive(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Section, error) {
	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperr.NotFound("section %d not found", id)
	}
	return section, nil
}

func sectionToResponse(s *entity.Section) *dto.ShowSectionResponse {
	return &dto.ShowSectionResponse{
		Id:           s.Id,
		Label:        s.Label,
		About:        s.About,
		CollectionId: s.CollectionId,
		VersionId:    s.VersionId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
