package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

type BookVersionRepository interface {
	Create(ctx context.Context, version *entity.BookVersion) error
	SetDeleted(ctx context.Context, ids []uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookVersion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookVersion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
