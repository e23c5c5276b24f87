package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type AccessGroupMapper struct{}

func NewAccessGroupMapper() *AccessGroupMapper {
	return &AccessGroupMapper{}
}

func (m *AccessGroupMapper) ToEntity(g *model.AccessGroup) *entity.AccessGroup {
	if g == nil {
		return nil
	}
	return &entity.AccessGroup{
		Id:        g.Id,
		Kind:      entity.AccessGroupKind(g.Kind),
		BookId:    g.BookId,
		CreatedAt: g.CreatedAt,
	}
}

func (m *AccessGroupMapper) ToModel(g *entity.AccessGroup) *model.AccessGroup {
	if g == nil {
		return nil
	}
	return &model.AccessGroup{
		Id:        g.Id,
		Kind:      string(g.Kind),
		BookId:    g.BookId,
		CreatedAt: g.CreatedAt,
	}
}

func (m *AccessGroupMapper) ToEntities(groups []*model.AccessGroup) []*entity.AccessGroup {
	entities := make([]*entity.AccessGroup, len(groups))
	for i, g := range groups {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
