package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}
	return &entity.Section{
		Id:           s.Id,
		Label:        s.Label,
		About:        s.About,
		CollectionId: s.CollectionId,
		VersionId:    s.VersionId,
		UserId:       s.UserId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    updatedAtPtr(s.UpdatedAt),
		IsDeleted:    s.IsDeleted,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}
	return &model.Section{
		Id:           s.Id,
		Label:        s.Label,
		About:        s.About,
		CollectionId: s.CollectionId,
		VersionId:    s.VersionId,
		UserId:       s.UserId,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    timeOrZero(s.UpdatedAt),
		IsDeleted:    s.IsDeleted,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
