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

type collectionRepository struct {
	db     *gorm.DB
	mapper *mapper.CollectionMapper
}

func NewCollectionRepository(db *gorm.DB) contract.CollectionRepository {
	return &collectionRepository{db: db, mapper: mapper.NewCollectionMapper()}
}

func (r *collectionRepository) Create(ctx context.Context, collection *entity.Collection) error {
	m := r.mapper.ToModel(collection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create collection")
	}
	*collection = *r.mapper.ToEntity(m)
	return nil
}

func (r *collectionRepository) Update(ctx context.Context, collection *entity.Collection) error {
	m := r.mapper.ToModel(collection)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update collection")
	}
	*collection = *r.mapper.ToEntity(m)
	return nil
}

func (r *collectionRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Collection{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete collections")
}

func (r *collectionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Collection, error) {
	var m model.Collection
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find collection")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *collectionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Collection, error) {
	var ms []*model.Collection
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list collections")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *collectionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Collection{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count collections")
	}
	return count, nil
}
