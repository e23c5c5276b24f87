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

type sectionRepository struct {
	db     *gorm.DB
	mapper *mapper.SectionMapper
}

func NewSectionRepository(db *gorm.DB) contract.SectionRepository {
	return &sectionRepository{db: db, mapper: mapper.NewSectionMapper()}
}

func (r *sectionRepository) Create(ctx context.Context, section *entity.Section) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create section")
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *sectionRepository) Update(ctx context.Context, section *entity.Section) error {
	m := r.mapper.ToModel(section)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return storageErr(err, "update section")
	}
	*section = *r.mapper.ToEntity(m)
	return nil
}

func (r *sectionRepository) SetDeleted(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Model(&model.Section{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
	return storageErr(err, "soft delete sections")
}

func (r *sectionRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error) {
	var m model.Section
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr(err, "find section")
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *sectionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	var ms []*model.Section
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list sections")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *sectionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Section{}), specs)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr(err, "count sections")
	}
	return count, nil
}
