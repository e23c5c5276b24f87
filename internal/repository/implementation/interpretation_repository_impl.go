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

type interpretationRepository struct {
	db     *gorm.DB
	mapper *mapper.InterpretationMapper
}

func NewInterpretationRepository(db *gorm.DB) contract.InterpretationRepository {
	return &interpretationRepository{db: db, mapper: mapper.NewInterpretationMapper()}
}

func (r *interpretationRepository) Create(ctx context.Context, interpretation *entity.Interpretation) error {
	m := r.mapper.ToModel(interpretation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create interpretation")
	}
	*interpretation = *r.mapper.ToEntity(m)
	return nil
}

func (r *interpretationRepository) Update(ctx context.Context, interpretation *entity.Interpretation) error {
	m := r.mapper.ToModel(interpretation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update interpretation")
	}
	*interpretation = *r.mapper.ToEntity(m)
	return nil
}

func (r *interpretationRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Interpretation{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete interpretations")
}

func (r *interpretationRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interpretation, error) {
	var m model.Interpretation
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find interpretation")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *interpretationRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interpretation, error) {
	var ms []*model.Interpretation
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list interpretations")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *interpretationRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Interpretation{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count interpretations")
	}
	return count, nil
}
