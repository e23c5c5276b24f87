package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type CollectionMapper struct{}

func NewCollectionMapper() *CollectionMapper {
	return &CollectionMapper{}
}

func (m *CollectionMapper) ToEntity(c *model.Collection) *entity.Collection {
	if c == nil {
		return nil
	}
	return &entity.Collection{
		Id:        c.Id,
		Label:     c.Label,
		About:     c.About,
		IsRoot:    c.IsRoot,
		IsLeaf:    c.IsLeaf,
		ParentId:  c.ParentId,
		VersionId: c.VersionId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAtPtr(c.UpdatedAt),
		IsDeleted: c.IsDeleted,
	}
}

func (m *CollectionMapper) ToModel(c *entity.Collection) *model.Collection {
	if c == nil {
		return nil
	}
	return &model.Collection{
		Id:        c.Id,
		Label:     c.Label,
		About:     c.About,
		IsRoot:    c.IsRoot,
		IsLeaf:    c.IsLeaf,
		ParentId:  c.ParentId,
		VersionId: c.VersionId,
		CreatedAt: c.CreatedAt,
		UpdatedAt: timeOrZero(c.UpdatedAt),
		IsDeleted: c.IsDeleted,
	}
}

func (m *CollectionMapper) ToEntities(collections []*model.Collection) []*entity.Collection {
	entities := make([]*entity.Collection, len(collections))
	for i, c := range collections {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
