package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

type CollectionRepository interface {
	Create(ctx context.Context, collection *entity.Collection) error
	Update(ctx context.Context, collection *entity.Collection) error
	// SetDeleted flips is_deleted on the given rows. Cascades are driven by
	// the service walking the tree inside one transaction.
	SetDeleted(ctx context.Context, ids []uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Collection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
