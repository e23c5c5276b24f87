package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type BookVersionMapper struct{}

func NewBookVersionMapper() *BookVersionMapper {
	return &BookVersionMapper{}
}

func (m *BookVersionMapper) ToEntity(v *model.BookVersion) *entity.BookVersion {
	if v == nil {
		return nil
	}
	return &entity.BookVersion{
		Id:        v.Id,
		Semver:    v.Semver,
		BookId:    v.BookId,
		CreatedAt: v.CreatedAt,
		IsDeleted: v.IsDeleted,
	}
}

func (m *BookVersionMapper) ToModel(v *entity.BookVersion) *model.BookVersion {
	if v == nil {
		return nil
	}
	return &model.BookVersion{
		Id:        v.Id,
		Semver:    v.Semver,
		BookId:    v.BookId,
		CreatedAt: v.CreatedAt,
		IsDeleted: v.IsDeleted,
	}
}

func (m *BookVersionMapper) ToEntities(versions []*model.BookVersion) []*entity.BookVersion {
	entities := make([]*entity.BookVersion, len(versions))
	for i, v := range versions {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
