package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"open-law-be/internal/entity"
	"open-law-be/internal/mapper"
	"open-law-be/internal/model"
	"open-law-be/internal/repository/contract"
	"open-law-be/internal/repository/specification"
)

type contributorRepository struct {
	db     *gorm.DB
	mapper *mapper.ContributorMapper
}

func NewContributorRepository(db *gorm.DB) contract.ContributorRepository {
	return &contributorRepository{db: db, mapper: mapper.NewContributorMapper()}
}

func (r *contributorRepository) Create(ctx context.Context, contributor *entity.BookContributor) error {
	m := r.mapper.ToModel(contributor)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create contributor")
	}
	*contributor = *r.mapper.ToEntity(m)
	return nil
}

func (r *contributorRepository) Update(ctx context.Context, contributor *entity.BookContributor) error {
	m := r.mapper.ToModel(contributor)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update contributor")
	}
	*contributor = *r.mapper.ToEntity(m)
	return nil
}

func (r *contributorRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Delete(&model.BookContributor{}, id).Error
	return storageErr(err, "delete contributor")
}

func (r *contributorRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookContributor, error) {
	var m model.BookContributor
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find contributor")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *contributorRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookContributor, error) {
	var ms []*model.BookContributor
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list contributors")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *contributorRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.BookContributor{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count contributors")
	}
	return count, nil
}
