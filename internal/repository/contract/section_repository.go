package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

type SectionRepository interface {
	Create(ctx context.Context, section *entity.Section) error
	Update(ctx context.Context, section *entity.Section) error
	SetDeleted(ctx context.Context, ids []uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
