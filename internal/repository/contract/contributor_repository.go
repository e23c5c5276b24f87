package contract

import (
	"context"

	"open-law-be/internal/entity"
	"open-law-be/internal/repository/specification"
)

type ContributorRepository interface {
	Create(ctx context.Context, contributor *entity.BookContributor) error
	Update(ctx context.Context, contributor *entity.BookContributor) error
	// Delete removes the join row physically; contributors are not part of
	// the soft-deleted content tree.
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookContributor, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookContributor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
