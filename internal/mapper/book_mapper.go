package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}
	return &entity.Book{
		Id:        b.Id,
		Label:     b.Label,
		About:     b.About,
		UserId:    b.UserId,
		CreatedAt: b.CreatedAt,
		UpdatedAt: updatedAtPtr(b.UpdatedAt),
		IsDeleted: b.IsDeleted,
	}
}

func (m *BookMapper) ToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}
	return &model.Book{
		Id:        b.Id,
		Label:     b.Label,
		About:     b.About,
		UserId:    b.UserId,
		CreatedAt: b.CreatedAt,
		UpdatedAt: timeOrZero(b.UpdatedAt),
		IsDeleted: b.IsDeleted,
	}
}

func (m *BookMapper) ToEntities(books []*model.Book) []*entity.Book {
	entities := make([]*entity.Book, len(books))
	for i, b := range books {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
