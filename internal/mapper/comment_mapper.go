package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type CommentMapper struct{}

func NewCommentMapper() *CommentMapper {
	return &CommentMapper{}
}

func (m *CommentMapper) ToEntity(c *model.Comment) *entity.Comment {
	if c == nil {
		return nil
	}
	return &entity.Comment{
		Id:               c.Id,
		Text:             c.Text,
		InterpretationId: c.InterpretationId,
		ParentId:         c.ParentId,
		UserId:           c.UserId,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        updatedAtPtr(c.UpdatedAt),
		IsDeleted:        c.IsDeleted,
	}
}

func (m *CommentMapper) ToModel(c *entity.Comment) *model.Comment {
	if c == nil {
		return nil
	}
	return &model.Comment{
		Id:               c.Id,
		Text:             c.Text,
		InterpretationId: c.InterpretationId,
		ParentId:         c.ParentId,
		UserId:           c.UserId,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        timeOrZero(c.UpdatedAt),
		IsDeleted:        c.IsDeleted,
	}
}

func (m *CommentMapper) ToEntities(comments []*model.Comment) []*entity.Comment {
	entities := make([]*entity.Comment, len(comments))
	for i, c := range comments {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
