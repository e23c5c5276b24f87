package service

import (
	"context"
	"time"

	"open-law-be/internal/dto"
	"open-law-be/internal/entity"
	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
)

type IContributorService interface {
	Add(ctx context.Context, ownerID uint, req *dto.AddContributorRequest) (*dto.AddContributorResponse, error)
	Update(ctx context.Context, ownerID uint, req *dto.UpdateContributorRequest) error
	Remove(ctx context.Context, ownerID uint, req *dto.RemoveContributorRequest) error
	List(ctx context.Context, bookID uint) ([]*dto.ShowContributorResponse, error)
}

type contributorService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewContributorService(uowFactory unitofwork.RepositoryFactory) IContributorService {
	return &contributorService{
		uowFactory: uowFactory,
	}
}

// Add grants a user a role on a book. The same user can hold only one role
// per book; adding them twice is rejected, a second user is fine.
func (s *contributorService) Add(ctx context.Context, ownerID uint, req *dto.AddContributorRequest) (*dto.AddContributorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findOwnedBook(ctx, uow, req.BookId, ownerID)
	if err != nil {
		return nil, err
	}

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByUsername{Username: req.Username},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user %q not found", req.Username)
	}

	role := entity.ContributorRole(req.Role)
	if !role.Valid() {
		return nil, apperr.Validation("role %d is not a valid contributor role", req.Role)
	}

	existing, err := uow.ContributorRepository().FindOne(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.ByUserID{UserID: user.Id},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("user %q already contributes to book %d", req.Username, book.Id)
	}

	contributor := &entity.BookContributor{
		UserId:    user.Id,
		BookId:    book.Id,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := uow.ContributorRepository().Create(ctx, contributor); err != nil {
		return nil, err
	}

	return &dto.AddContributorResponse{Id: contributor.Id}, nil
}

func (s *contributorService) Update(ctx context.Context, ownerID uint, req *dto.UpdateContributorRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findOwnedBook(ctx, uow, req.BookId, ownerID)
	if err != nil {
		return err
	}

	role := entity.ContributorRole(req.Role)
	if !role.Valid() {
		return apperr.Validation("role %d is not a valid contributor role", req.Role)
	}

	contributor, err := uow.ContributorRepository().FindOne(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.ByUserID{UserID: req.UserId},
	)
	if err != nil {
		return err
	}
	if contributor == nil {
		return apperr.NotFound("user %d does not contribute to book %d", req.UserId, book.Id)
	}

	contributor.Role = role
	return uow.ContributorRepository().Update(ctx, contributor)
}

// Remove drops the contributor row for good; there is no undelete for a
// revoked grant.
func (s *contributorService) Remove(ctx context.Context, ownerID uint, req *dto.RemoveContributorRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findOwnedBook(ctx, uow, req.BookId, ownerID)
	if err != nil {
		return err
	}

	contributor, err := uow.ContributorRepository().FindOne(ctx,
		specification.ByBookID{BookID: book.Id},
		specification.ByUserID{UserID: req.UserId},
	)
	if err != nil {
		return err
	}
	if contributor == nil {
		return apperr.NotFound("user %d does not contribute to book %d", req.UserId, book.Id)
	}

	return uow.ContributorRepository().Delete(ctx, contributor.Id)
}

func (s *contributorService) List(ctx context.Context, bookID uint) ([]*dto.ShowContributorResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: bookID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book %d not found", bookID)
	}

	contributors, err := uow.ContributorRepository().FindAll(ctx,
		specification.ByBookID{BookID: bookID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(contributors))
	for _, c := range contributors {
		userIDs = append(userIDs, c.UserId)
	}

	usernames := make(map[uint]string, len(userIDs))
	if len(userIDs) > 0 {
		users, err := uow.UserRepository().FindAll(ctx, specification.ByIDs{IDs: userIDs})
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			usernames[u.Id] = u.Username
		}
	}

	result := make([]*dto.ShowContributorResponse, 0, len(contributors))
	for _, c := range contributors {
		result = append(result, &dto.ShowContributorResponse{
			Id:        c.Id,
			UserId:    c.UserId,
			Username:  usernames[c.UserId],
			Role:      int(c.Role),
			CreatedAt: c.CreatedAt,
		})
	}
	return result, nil
}

func (s *contributorService) findOwnedBook(ctx context.Context, uow unitofwork.UnitOfWork, bookID, ownerID uint) (*entity.Book, error) {
	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: bookID},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book %d not found", bookID)
	}
	if book.UserId != ownerID {
		return nil, apperr.Unauthorized("only the owner can manage contributors")
	}
	return book, nil
}
