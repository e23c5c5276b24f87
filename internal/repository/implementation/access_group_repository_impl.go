package implementation

import (
	"context"

	"gorm.io/gorm"

	"open-law-be/internal/entity"
	"open-law-be/internal/mapper"
	"open-law-be/internal/model"
	"open-law-be/internal/repository/contract"
	"open-law-be/internal/repository/specification"
)

type accessGroupRepository struct {
	db     *gorm.DB
	mapper *mapper.AccessGroupMapper
}

func NewAccessGroupRepository(db *gorm.DB) contract.AccessGroupRepository {
	return &accessGroupRepository{db: db, mapper: mapper.NewAccessGroupMapper()}
}

func (r *accessGroupRepository) Create(ctx context.Context, group *entity.AccessGroup) error {
	m := r.mapper.ToModel(group)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return storageErr(err, "create access group")
	}
	*group = *r.mapper.ToEntity(m)
	return nil
}

func (r *accessGroupRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AccessGroup, error) {
	var ms []*model.AccessGroup
	query := applySpecifications(r.db.WithContext(ctx), specs)
	if err := query.Find(&ms).Error; err != nil {
		return nil, storageErr(err, "list access groups")
	}
	return r.mapper.ToEntities(ms), nil
}

func (r *accessGroupRepository) BindBook(ctx context.Context, bookID, groupID uint) error {
	err := r.db.WithContext(ctx).
		Create(&model.BookAccessGroup{BookId: bookID, AccessGroupId: groupID}).Error
	return storageErr(err, "bind access group to book")
}

func (r *accessGroupRepository) BindCollection(ctx context.Context, collectionID, groupID uint) error {
	err := r.db.WithContext(ctx).
		Create(&model.CollectionAccessGroup{CollectionId: collectionID, AccessGroupId: groupID}).Error
	return storageErr(err, "bind access group to collection")
}

func (r *accessGroupRepository) BindSection(ctx context.Context, sectionID, groupID uint) error {
	err := r.db.WithContext(ctx).
		Create(&model.SectionAccessGroup{SectionId: sectionID, AccessGroupId: groupID}).Error
	return storageErr(err, "bind access group to section")
}

func (r *accessGroupRepository) BindInterpretation(ctx context.Context, interpretationID, groupID uint) error {
	err := r.db.WithContext(ctx).
		Create(&model.InterpretationAccessGroup{InterpretationId: interpretationID, AccessGroupId: groupID}).Error
	return storageErr(err, "bind access group to interpretation")
}

func (r *accessGroupRepository) BoundToCollection(ctx context.Context, collectionID uint) ([]*entity.AccessGroup, error) {
	return r.boundTo(ctx, "collection_access_groups", "collection_id", collectionID)
}

func (r *accessGroupRepository) BoundToSection(ctx context.Context, sectionID uint) ([]*entity.AccessGroup, error) {
	return r.boundTo(ctx, "section_access_groups", "section_id", sectionID)
}

func (r *accessGroupRepository) BoundToInterpretation(ctx context.Context, interpretationID uint) ([]*entity.AccessGroup, error) {
	return r.boundTo(ctx, "interpretation_access_groups", "interpretation_id", interpretationID)
}

func (r *accessGroupRepository) boundTo(ctx context.Context, joinTable, joinColumn string, nodeID uint) ([]*entity.AccessGroup, error) {
	var ms []*model.AccessGroup
	err := r.db.WithContext(ctx).
		Joins("JOIN "+joinTable+" ON "+joinTable+".access_group_id = access_groups.id").
		Where(joinTable+"."+joinColumn+" = ?", nodeID).
		Find(&ms).Error
	if err != nil {
		return nil, storageErr(err, "list bound access groups")
	}
	return r.mapper.ToEntities(ms), nil
}
