package mapper

import (
	"open-law-be/internal/entity"
	"open-law-be/internal/model"
)

type ContributorMapper struct{}

func NewContributorMapper() *ContributorMapper {
	return &ContributorMapper{}
}

func (m *ContributorMapper) ToEntity(c *model.BookContributor) *entity.BookContributor {
	if c == nil {
		return nil
	}
	return &entity.BookContributor{
		Id:        c.Id,
		UserId:    c.UserId,
		BookId:    c.BookId,
		Role:      entity.ContributorRole(c.Role),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContributorMapper) ToModel(c *entity.BookContributor) *model.BookContributor {
	if c == nil {
		return nil
	}
	return &model.BookContributor{
		Id:        c.Id,
		UserId:    c.UserId,
		BookId:    c.BookId,
		Role:      int(c.Role),
		CreatedAt: c.CreatedAt,
	}
}

func (m *ContributorMapper) ToEntities(contributors []*model.BookContributor) []*entity.BookContributor {
	entities := make([]*entity.BookContributor, len(contributors))
	for i, c := range contributors {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
