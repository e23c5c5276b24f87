package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type InterpretationMapper struct{}

func NewInterpretationMapper() *InterpretationMapper {
	return &InterpretationMapper{}
}

func (m *InterpretationMapper) ToEntity(i *model.Interpretation) *entity.Interpretation {
	if i == nil {
		return nil
	}
	return &entity.Interpretation{
		Id:        i.Id,
		Text:      i.Text,
		SectionId: i.SectionId,
		UserId:    i.UserId,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAtPtr(i.UpdatedAt),
		IsDeleted: i.IsDeleted,
	}
}

func (m *InterpretationMapper) ToModel(i *entity.Interpretation) *model.Interpretation {
	if i == nil {
		return nil
	}
	return &model.Interpretation{
		Id:        i.Id,
		Text:      i.Text,
		SectionId: i.SectionId,
		UserId:    i.UserId,
		CreatedAt: i.CreatedAt,
		UpdatedAt: timeOrZero(i.UpdatedAt),
		IsDeleted: i.IsDeleted,
	}
}

func (m *InterpretationMapper) ToEntities(interpretations []*model.Interpretation) []*entity.Interpretation {
	entities := make([]*entity.Interpretation, len(interpretations))
	for i, in := range interpretations {
		entities[i] = m.ToEntity(in)
	}
	return entities
}
