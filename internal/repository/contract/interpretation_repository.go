package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

type InterpretationRepository interface {
	Create(ctx context.Context, interpretation *entity.Interpretation) error
	Update(ctx context.Context, interpretation *entity.Interpretation) error
	SetDeleted(ctx context.Context, ids []uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interpretation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interpretation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
