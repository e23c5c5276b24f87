package service

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"open-law-be/internal/entity"
	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

// IAccessService maintains the access-group invariant: every book owns one
// editor and one moderator group, and every node created under the book
// receives a binding to each of them. All methods take the caller's unit of
// work so binding rows join the creating transaction.
type IAccessService interface {
	CreateBookGroups(ctx context.Context, uow unitofwork.UnitOfWork, bookID uint) ([]*entity.AccessGroup, error)
	GroupsForBook(ctx context.Context, uow unitofwork.UnitOfWork, bookID uint) ([]*entity.AccessGroup, error)
	PropagateToCollection(ctx context.Context, uow unitofwork.UnitOfWork, bookID, collectionID uint) error
	PropagateToSection(ctx context.Context, uow unitofwork.UnitOfWork, bookID, sectionID uint) error
	PropagateToInterpretation(ctx context.Context, uow unitofwork.UnitOfWork, bookID, interpretationID uint) error
	ResolveBookForCollection(ctx context.Context, uow unitofwork.UnitOfWork, collectionID uint) (uint, error)
	PrimeBook(bookID uint, groups []*entity.AccessGroup)
	InvalidateBook(bookID uint)
}

type accessService struct {
	groupCache *cache.Cache
}

func NewAccessService(groupCache *cache.Cache) IAccessService {
	return &accessService{
		groupCache: groupCache,
	}
}

func groupCacheKey(bookID uint) string {
	return fmt.Sprintf("book_groups:%d", bookID)
}

func (s *accessService) CreateBookGroups(ctx context.Context, uow unitofwork.UnitOfWork, bookID uint) ([]*entity.AccessGroup, error) {
	groups := make([]*entity.AccessGroup, 0, 2)
	for _, kind := range []entity.AccessGroupKind{entity.AccessGroupEditor, entity.AccessGroupModerator} {
		group := &entity.AccessGroup{
			Kind:      kind,
			BookId:    bookID,
			CreatedAt: time.Now(),
		}
		if err := uow.AccessGroupRepository().Create(ctx, group); err != nil {
			return nil, err
		}
		if err := uow.AccessGroupRepository().BindBook(ctx, bookID, group.Id); err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func (s *accessService) GroupsForBook(ctx context.Context, uow unitofwork.UnitOfWork, bookID uint) ([]*entity.AccessGroup, error) {
	if cached, ok := s.groupCache.Get(groupCacheKey(bookID)); ok {
		return cached.([]*entity.AccessGroup), nil
	}

	groups, err := uow.AccessGroupRepository().FindAll(ctx, specification.ByBookID{BookID: bookID})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, apperr.InvalidOperation("book %d has no access groups", bookID)
	}

	// Never cache a read made through an open transaction: a rollback would
	// leave phantom groups behind.
	if !uow.InTransaction() {
		s.groupCache.Set(groupCacheKey(bookID), groups, cache.DefaultExpiration)
	}
	return groups, nil
}

// PrimeBook seeds the cache with freshly created groups. Call it only after
// the creating transaction has committed.
func (s *accessService) PrimeBook(bookID uint, groups []*entity.AccessGroup) {
	s.groupCache.Set(groupCacheKey(bookID), groups, cache.DefaultExpiration)
}

func (s *accessService) InvalidateBook(bookID uint) {
	s.groupCache.Delete(groupCacheKey(bookID))
}

func (s *accessService) PropagateToCollection(ctx context.Context, uow unitofwork.UnitOfWork, bookID, collectionID uint) error {
	groups, err := s.GroupsForBook(ctx, uow, bookID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if err := uow.AccessGroupRepository().BindCollection(ctx, collectionID, group.Id); err != nil {
			return err
		}
	}
	return nil
}

func (s *accessService) PropagateToSection(ctx context.Context, uow unitofwork.UnitOfWork, bookID, sectionID uint) error {
	groups, err := s.GroupsForBook(ctx, uow, bookID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if err := uow.AccessGroupRepository().BindSection(ctx, sectionID, group.Id); err != nil {
			return err
		}
	}
	return nil
}

func (s *accessService) PropagateToInterpretation(ctx context.Context, uow unitofwork.UnitOfWork, bookID, interpretationID uint) error {
	groups, err := s.GroupsForBook(ctx, uow, bookID)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if err := uow.AccessGroupRepository().BindInterpretation(ctx, interpretationID, group.Id); err != nil {
			return err
		}
	}
	return nil
}

// ResolveBookForCollection walks collection -> version -> book.
func (s *accessService) ResolveBookForCollection(ctx context.Context, uow unitofwork.UnitOfWork, collectionID uint) (uint, error) {
	collection, err := uow.CollectionRepository().FindOne(ctx, specification.ByID{ID: collectionID})
	if err != nil {
		return 0, err
	}
	if collection == nil {
		return 0, apperr.NotFound("collection %d not found", collectionID)
	}
	version, err := uow.BookVersionRepository().FindOne(ctx, specification.ByID{ID: collection.VersionId})
	if err != nil {
		return 0, err
	}
	if version == nil {
		return 0, apperr.NotFound("version %d not found", collection.VersionId)
	}
	return version.BookId, nil
}
