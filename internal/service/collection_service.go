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

type ICollectionService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateCollectionRequest) (*dto.CreateCollectionResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowCollectionResponse, error)
	Children(ctx context.Context, id uint) ([]*dto.ShowCollectionResponse, error)
	IsDescendantLeaf(ctx context.Context, id uint) (bool, error)
	Update(ctx context.Context, userID uint, req *dto.UpdateCollectionRequest) error
	Delete(ctx context.Context, userID, id uint) error
}

type collectionService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
}

func NewCollectionService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
) ICollectionService {
	return &collectionService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
	}
}

// Create attaches a node to the latest version's tree. Without a parent id
// the node goes under the root as an inner collection; with one it becomes
// a leaf child of that parent. Leaves own sections and take no children.
func (s *collectionService) Create(ctx context.Context, userID uint, req *dto.CreateCollectionRequest) (*dto.CreateCollectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: req.BookId},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book %d not found", req.BookId)
	}
	if book.UserId != userID {
		return nil, apperr.Unauthorized("only the owner can add collections to a book")
	}

	version, err := uow.BookVersionRepository().FindOne(ctx,
		specification.ByBookID{BookID: req.BookId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, apperr.NotFound("book %d has no versions", req.BookId)
	}

	var parent *entity.Collection
	isLeaf := false
	if req.ParentId != nil {
		parent, err = uow.CollectionRepository().FindOne(ctx,
			specification.ByID{ID: *req.ParentId},
			specification.ByVersionID{VersionID: version.Id},
			specification.NotDeleted{},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound("parent collection %d not found", *req.ParentId)
		}
		if parent.IsLeaf {
			return nil, apperr.InvalidOperation("collection %d is a leaf and cannot hold sub-collections", parent.Id)
		}
		isLeaf = true
	} else {
		parent, err = uow.CollectionRepository().FindOne(ctx,
			specification.ByVersionID{VersionID: version.Id},
			specification.IsRoot{},
			specification.NotDeleted{},
		)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, apperr.NotFound("book %d has no root collection", req.BookId)
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Sibling labels must be unique among live nodes. The partial unique
	// index backs this up against concurrent writers.
	duplicate, err := uow.CollectionRepository().Count(ctx,
		specification.ByVersionID{VersionID: version.Id},
		specification.ByParentID{ParentID: &parent.Id},
		specification.ByLabel{Label: req.Label},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if duplicate > 0 {
		return nil, apperr.DuplicateLabel("collection %q already exists under collection %d", req.Label, parent.Id)
	}

	collection := &entity.Collection{
		Label:     req.Label,
		About:     req.About,
		IsLeaf:    isLeaf,
		ParentId:  &parent.Id,
		VersionId: version.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.CollectionRepository().Create(ctx, collection); err != nil {
		return nil, err
	}

	if err := s.accessService.PropagateToCollection(ctx, uow, req.BookId, collection.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COLLECTION_CREATED",
		EntityKind: "collection",
		EntityIds:  []uint{collection.Id},
		ActorId:    &userID,
	})

	return &dto.CreateCollectionResponse{Id: collection.Id, IsLeaf: collection.IsLeaf}, nil
}

func (s *collectionService) Show(ctx context.Context, id uint) (*dto.ShowCollectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findLive(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return collectionToResponse(collection), nil
}

func (s *collectionService) Children(ctx context.Context, id uint) ([]*dto.ShowCollectionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findLive(ctx, uow, id); err != nil {
		return nil, err
	}

	children, err := uow.CollectionRepository().FindAll(ctx,
		specification.ByParentID{ParentID: &id},
		specification.NotDeleted{},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowCollectionResponse, 0, len(children))
	for _, child := range children {
		result = append(result, collectionToResponse(child))
	}
	return result, nil
}

// IsDescendantLeaf reports whether the node or any live collection under it
// is a leaf, i.e. whether the subtree can hold sections yet.
func (s *collectionService) IsDescendantLeaf(ctx context.Context, id uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findLive(ctx, uow, id)
	if err != nil {
		return false, err
	}
	if collection.IsLeaf {
		return true, nil
	}

	frontier := []uint{id}
	for len(frontier) > 0 {
		children, err := uow.CollectionRepository().FindAll(ctx,
			specification.ByParentIDs{ParentIDs: frontier},
			specification.NotDeleted{},
		)
		if err != nil {
			return false, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			if child.IsLeaf {
				return true, nil
			}
			frontier = append(frontier, child.Id)
		}
	}
	return false, nil
}

func (s *collectionService) Update(ctx context.Context, userID uint, req *dto.UpdateCollectionRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findLive(ctx, uow, req.Id)
	if err != nil {
		return err
	}
	if collection.IsRoot {
		return apperr.InvalidOperation("the root collection cannot be edited")
	}
	if err := s.requireOwner(ctx, uow, collection.Id, userID); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if req.Label != nil && *req.Label != collection.Label {
		duplicate, err := uow.CollectionRepository().Count(ctx,
			specification.ByVersionID{VersionID: collection.VersionId},
			specification.ByParentID{ParentID: collection.ParentId},
			specification.ByLabel{Label: *req.Label},
			specification.ExcludeID{ID: collection.Id},
			specification.NotDeleted{},
		)
		if err != nil {
			return err
		}
		if duplicate > 0 {
			return apperr.DuplicateLabel("collection %q already exists under the same parent", *req.Label)
		}
		collection.Label = *req.Label
	}
	if req.About != nil {
		collection.About = *req.About
	}
	now := time.Now()
	collection.UpdatedAt = &now

	if err := uow.CollectionRepository().Update(ctx, collection); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COLLECTION_UPDATED",
		EntityKind: "collection",
		EntityIds:  []uint{collection.Id},
		ActorId:    &userID,
	})
	return nil
}

// Delete soft-deletes the node and its whole subtree: descendant
// collections level by level, then their sections, interpretations and
// comments, all in one transaction.
func (s *collectionService) Delete(ctx context.Context, userID, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	collection, err := s.findLive(ctx, uow, id)
	if err != nil {
		return err
	}
	if collection.IsRoot {
		return apperr.InvalidOperation("the root collection cannot be deleted; delete the book instead")
	}
	if err := s.requireOwner(ctx, uow, collection.Id, userID); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	collectionIDs, err := collectSubtreeIDs(ctx, uow, id)
	if err != nil {
		return err
	}

	sectionIDs, interpretationIDs, commentIDs, err := collectContentIDs(ctx, uow, collectionIDs)
	if err != nil {
		return err
	}

	if err := uow.CommentRepository().SetDeleted(ctx, commentIDs); err != nil {
		return err
	}
	if err := uow.InterpretationRepository().SetDeleted(ctx, interpretationIDs); err != nil {
		return err
	}
	if err := uow.SectionRepository().SetDeleted(ctx, sectionIDs); err != nil {
		return err
	}
	if err := uow.CollectionRepository().SetDeleted(ctx, collectionIDs); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "COLLECTION_DELETED",
		EntityKind: "collection",
		EntityIds:  collectionIDs,
		ActorId:    &userID,
	})
	return nil
}

// requireOwner resolves the collection's owning book and rejects callers
// other than the book owner. The tree is owner-writable only; contributors
// and anonymous readers get the published views.
func (s *collectionService) requireOwner(ctx context.Context, uow unitofwork.UnitOfWork, collectionID, userID uint) error {
	bookID, err := s.accessService.ResolveBookForCollection(ctx, uow, collectionID)
	if err != nil {
		return err
	}
	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: bookID},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}
	if book == nil {
		return apperr.NotFound("book %d not found", bookID)
	}
	if book.UserId != userID {
		return apperr.Unauthorized("only the owner can modify the book's collections")
	}
	return nil
}

func (s *collectionService) findLive(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Collection, error) {
	collection, err := uow.CollectionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apperr.NotFound("collection %d not found", id)
	}
	return collection, nil
}

// collectSubtreeIDs walks the tree breadth-first from the given node and
// returns it together with every live descendant collection.
func collectSubtreeIDs(ctx context.Context, uow unitofwork.UnitOfWork, rootID uint) ([]uint, error) {
	all := []uint{rootID}
	frontier := []uint{rootID}

	for len(frontier) > 0 {
		children, err := uow.CollectionRepository().FindAll(ctx,
			specification.ByParentIDs{ParentIDs: frontier},
			specification.NotDeleted{},
		)
		if err != nil {
			return nil, err
		}
		frontier = frontier[:0]
		for _, child := range children {
			all = append(all, child.Id)
			frontier = append(frontier, child.Id)
		}
	}
	return all, nil
}

func collectionToResponse(c *entity.Collection) *dto.ShowCollectionResponse {
	return &dto.ShowCollectionResponse{
		Id:        c.Id,
		Label:     c.Label,
		About:     c.About,
		IsRoot:    c.IsRoot,
		IsLeaf:    c.IsLeaf,
		ParentId:  c.ParentId,
		VersionId: c.VersionId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
