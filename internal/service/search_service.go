package service

import (
	"context"

	"open-law-be/internal/dto"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

const defaultSearchLimit = 20

type ISearchService interface {
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type searchService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSearchService(uowFactory unitofwork.RepositoryFactory) ISearchService {
	return &searchService{
		uowFactory: uowFactory,
	}
}

// Search runs a case-insensitive substring match across book labels,
// interpretation texts and usernames. No ranking; newest rows first.
func (s *searchService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultSearchLimit
	}
	page := specification.Pagination{Limit: limit, Offset: req.Offset}

	bookFilter := []specification.Specification{
		specification.FieldLike{Field: "label", Query: req.Query},
		specification.NotDeleted{},
	}
	interpretationFilter := []specification.Specification{
		specification.FieldLike{Field: "text", Query: req.Query},
		specification.NotDeleted{},
	}
	userFilter := []specification.Specification{
		specification.FieldLike{Field: "username", Query: req.Query},
		specification.NotDeleted{},
	}

	var counts dto.SearchCounts
	var err error
	if counts.Books, err = uow.BookRepository().Count(ctx, bookFilter...); err != nil {
		return nil, err
	}
	if counts.Interpretations, err = uow.InterpretationRepository().Count(ctx, interpretationFilter...); err != nil {
		return nil, err
	}
	if counts.Users, err = uow.UserRepository().Count(ctx, userFilter...); err != nil {
		return nil, err
	}

	newestFirst := specification.OrderBy{Field: "created_at", Desc: true}

	books, err := uow.BookRepository().FindAll(ctx, append(bookFilter, newestFirst, page)...)
	if err != nil {
		return nil, err
	}

	interpretations, err := uow.InterpretationRepository().FindAll(ctx, append(interpretationFilter, newestFirst, page)...)
	if err != nil {
		return nil, err
	}

	users, err := uow.UserRepository().FindAll(ctx, append(userFilter, newestFirst, page)...)
	if err != nil {
		return nil, err
	}

	result := &dto.SearchResponse{
		Counts:          counts,
		Books:           make([]dto.SearchBookResult, 0, len(books)),
		Interpretations: make([]dto.SearchInterpretationResult, 0, len(interpretations)),
		Users:           make([]dto.SearchUserResult, 0, len(users)),
	}
	for _, b := range books {
		result.Books = append(result.Books, dto.SearchBookResult{Id: b.Id, Label: b.Label, About: b.About})
	}
	for _, i := range interpretations {
		result.Interpretations = append(result.Interpretations, dto.SearchInterpretationResult{Id: i.Id, Text: i.Text, SectionId: i.SectionId})
	}
	for _, u := range users {
		result.Users = append(result.Users, dto.SearchUserResult{Id: u.Id, Username: u.Username})
	}
	return result, nil
}
