package service

import (
	"context"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/contract"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

type stubAccessGroupRepository struct {
	contract.AccessGroupRepository
	groups []*entity.AccessGroup
}

func (r *stubAccessGroupRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessGroup, error) {
	return r.groups, nil
}

type stubUnitOfWork struct {
	unitofwork.UnitOfWork
	accessGroups contract.AccessGroupRepository
	inTx         bool
}

func (u *stubUnitOfWork) AccessGroupRepository() contract.AccessGroupRepository {
	return u.accessGroups
}

func (u *stubUnitOfWork) InTransaction() bool {
	return u.inTx
}

func TestGroupsForBookCaching(t *testing.T) {
	ctx := context.Background()
	editor := &entity.AccessGroup{Id: 1, Kind: entity.AccessGroupEditor, BookId: 7}
	moderator := &entity.AccessGroup{Id: 2, Kind: entity.AccessGroupModerator, BookId: 7}

	t.Run("reads inside a transaction are not cached", func(t *testing.T) {
		svc := NewAccessService(cache.New(time.Minute, time.Minute))

		inTx := &stubUnitOfWork{
			accessGroups: &stubAccessGroupRepository{groups: []*entity.AccessGroup{editor}},
			inTx:         true,
		}
		groups, err := svc.GroupsForBook(ctx, inTx, 7)
		require.NoError(t, err)
		require.Len(t, groups, 1)

		// A later read must hit the repository, not an entry left behind by
		// a transaction that may have rolled back.
		outside := &stubUnitOfWork{
			accessGroups: &stubAccessGroupRepository{groups: []*entity.AccessGroup{editor, moderator}},
		}
		groups, err = svc.GroupsForBook(ctx, outside, 7)
		require.NoError(t, err)
		assert.Len(t, groups, 2)
	})

	t.Run("reads outside a transaction are cached", func(t *testing.T) {
		svc := NewAccessService(cache.New(time.Minute, time.Minute))

		outside := &stubUnitOfWork{
			accessGroups: &stubAccessGroupRepository{groups: []*entity.AccessGroup{editor, moderator}},
		}
		_, err := svc.GroupsForBook(ctx, outside, 7)
		require.NoError(t, err)

		// Served from cache: the empty repository is never consulted.
		empty := &stubUnitOfWork{accessGroups: &stubAccessGroupRepository{}}
		groups, err := svc.GroupsForBook(ctx, empty, 7)
		require.NoError(t, err)
		assert.Len(t, groups, 2)
	})

	t.Run("priming after commit serves transactional readers", func(t *testing.T) {
		svc := NewAccessService(cache.New(time.Minute, time.Minute))
		svc.PrimeBook(9, []*entity.AccessGroup{editor, moderator})

		empty := &stubUnitOfWork{accessGroups: &stubAccessGroupRepository{}, inTx: true}
		groups, err := svc.GroupsForBook(ctx, empty, 9)
		require.NoError(t, err)
		assert.Len(t, groups, 2)
	})
}
