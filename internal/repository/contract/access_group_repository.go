package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

// AccessGroupRepository owns the per-book groups and the join rows binding
// them to tree nodes. Bind* inserts happen inside the creating transaction.
type AccessGroupRepository interface {
	Create(ctx context.Context, group *entity.AccessGroup) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessGroup, error)

	BindBook(ctx context.Context, bookID, groupID uint) error
	BindCollection(ctx context.Context, collectionID, groupID uint) error
	BindSection(ctx context.Context, sectionID, groupID uint) error
	BindInterpretation(ctx context.Context, interpretationID, groupID uint) error

	BoundToCollection(ctx context.Context, collectionID uint) ([]*entity.AccessGroup, error)
	BoundToSection(ctx context.Context, sectionID uint) ([]*entity.AccessGroup, error)
	BoundToInterpretation(ctx context.Context, interpretationID uint) ([]*entity.AccessGroup, error)
}
