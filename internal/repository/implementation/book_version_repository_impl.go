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

type bookVersionRepository struct {
	db     *gorm.DB
	mapper *mapper.BookVersionMapper
}

func NewBookVersionRepository(db *gorm.DB) contract.BookVersionRepository {
	return &bookVersionRepository{db: db, mapper: mapper.NewBookVersionMapper()}
}

func (r *bookVersionRepository) Create(ctx context.Context, version *entity.BookVersion) error {
	m := r.mapper.ToModel(version)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create book version")
	}
	*version = *r.mapper.ToEntity(m)
	return nil
}

func (r *bookVersionRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.BookVersion{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete book versions")
}

func (r *bookVersionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.BookVersion, error) {
	var m model.BookVersion
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find book version")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *bookVersionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.BookVersion, error) {
	var ms []*model.BookVersion
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list book versions")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *bookVersionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.BookVersion{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count book versions")
	}
	return count, nil
}
