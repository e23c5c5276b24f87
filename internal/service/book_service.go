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

const (
	initialSemver       = "1.0.0"
	rootCollectionLabel = "Root Collection"
	defaultBookLimit    = 20
)

type IBookService interface {
	Create(ctx context.Context, userID uint, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error)
	GetAll(ctx context.Context, req *dto.ListBooksRequest) (*dto.ListBooksResponse, error)
	Mine(ctx context.Context, userID uint) ([]*dto.ShowBookResponse, error)
	Show(ctx context.Context, id uint) (*dto.ShowBookResponse, error)
	ShowTree(ctx context.Context, id uint) (*dto.ShowBookTreeResponse, error)
	Versions(ctx context.Context, bookID uint) ([]*dto.BookVersionResponse, error)
	Update(ctx context.Context, userID uint, req *dto.UpdateBookRequest) error
	Delete(ctx context.Context, userID, id uint) error
}

type bookService struct {
	uowFactory       unitofwork.RepositoryFactory
	accessService    IAccessService
	publisherService IPublisherService
}

func NewBookService(
	uowFactory unitofwork.RepositoryFactory,
	accessService IAccessService,
	publisherService IPublisherService,
) IBookService {
	return &bookService{
		uowFactory:       uowFactory,
		accessService:    accessService,
		publisherService: publisherService,
	}
}

// Create sets up the whole book skeleton in one transaction: the book row,
// version 1.0.0, the root collection, both access groups, and the bindings
// tying the root to the groups. A failure at any step leaves nothing behind.
func (s *bookService) Create(ctx context.Context, userID uint, req *dto.CreateBookRequest) (*dto.CreateBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	book := &entity.Book{
		Label:     req.Label,
		About:     req.About,
		UserId:    userID,
		CreatedAt: time.Now(),
	}
	if err := uow.BookRepository().Create(ctx, book); err != nil {
		return nil, err
	}

	version := &entity.BookVersion{
		Semver:    initialSemver,
		BookId:    book.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.BookVersionRepository().Create(ctx, version); err != nil {
		return nil, err
	}

	root := &entity.Collection{
		Label:     rootCollectionLabel,
		IsRoot:    true,
		VersionId: version.Id,
		CreatedAt: time.Now(),
	}
	if err := uow.CollectionRepository().Create(ctx, root); err != nil {
		return nil, err
	}

	groups, err := s.accessService.CreateBookGroups(ctx, uow, book.Id)
	if err != nil {
		return nil, err
	}
	if err := s.accessService.PropagateToCollection(ctx, uow, book.Id, root.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.accessService.PrimeBook(book.Id, groups)

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "BOOK_CREATED",
		EntityKind: "book",
		EntityIds:  []uint{book.Id},
		ActorId:    &userID,
	})

	return &dto.CreateBookResponse{
		Id:               book.Id,
		RootCollectionId: root.Id,
		VersionId:        version.Id,
		Semver:           version.Semver,
	}, nil
}

// GetAll lists live books, newest first, with an optional substring filter
// on the label. Total counts all matches, not just the returned page.
func (s *bookService) GetAll(ctx context.Context, req *dto.ListBooksRequest) (*dto.ListBooksResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultBookLimit
	}

	filters := []specification.Specification{specification.NotDeleted{}}
	if req.Q != "" {
		filters = append(filters, specification.FieldLike{Field: "label", Query: req.Q})
	}

	total, err := uow.BookRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	books, err := uow.BookRepository().FindAll(ctx, append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowBookResponse, 0, len(books))
	for _, book := range books {
		result = append(result, bookToResponse(book))
	}
	return &dto.ListBooksResponse{Books: result, Total: total}, nil
}

func (s *bookService) Mine(ctx context.Context, userID uint) ([]*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	books, err := uow.BookRepository().FindAll(ctx,
		specification.ByUserID{UserID: userID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ShowBookResponse, 0, len(books))
	for _, book := range books {
		result = append(result, bookToResponse(book))
	}
	return result, nil
}

func (s *bookService) Show(ctx context.Context, id uint) (*dto.ShowBookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findLiveBook(ctx, uow, id)
	if err != nil {
		return nil, err
	}
	return bookToResponse(book), nil
}

func (s *bookService) ShowTree(ctx context.Context, id uint) (*dto.ShowBookTreeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findLiveBook(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	version, err := s.lastVersion(ctx, uow, book.Id)
	if err != nil {
		return nil, err
	}

	collections, err := uow.CollectionRepository().FindAll(ctx,
		specification.ByVersionID{VersionID: version.Id},
		specification.NotDeleted{},
		specification.OrderBy{Field: "id", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	collectionIDs := make([]uint, 0, len(collections))
	for _, c := range collections {
		collectionIDs = append(collectionIDs, c.Id)
	}

	var sections []*entity.Section
	if len(collectionIDs) > 0 {
		sections, err = uow.SectionRepository().FindAll(ctx,
			specification.ByCollectionIDs{CollectionIDs: collectionIDs},
			specification.NotDeleted{},
			specification.OrderBy{Field: "id", Desc: false},
		)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ShowBookTreeResponse{
		Book: *bookToResponse(book),
		Version: dto.BookVersionResponse{
			Id:        version.Id,
			Semver:    version.Semver,
			BookId:    version.BookId,
			CreatedAt: version.CreatedAt,
		},
		Root: buildTree(collections, sections),
	}, nil
}

func (s *bookService) Versions(ctx context.Context, bookID uint) ([]*dto.BookVersionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findLiveBook(ctx, uow, bookID); err != nil {
		return nil, err
	}

	versions, err := uow.BookVersionRepository().FindAll(ctx,
		specification.ByBookID{BookID: bookID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.BookVersionResponse, 0, len(versions))
	for _, v := range versions {
		result = append(result, &dto.BookVersionResponse{
			Id:        v.Id,
			Semver:    v.Semver,
			BookId:    v.BookId,
			CreatedAt: v.CreatedAt,
		})
	}
	return result, nil
}

func (s *bookService) Update(ctx context.Context, userID uint, req *dto.UpdateBookRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findLiveBook(ctx, uow, req.Id)
	if err != nil {
		return err
	}
	if book.UserId != userID {
		return apperr.Unauthorized("only the owner can edit a book")
	}

	if req.Label != nil {
		book.Label = *req.Label
	}
	if req.About != nil {
		book.About = *req.About
	}
	now := time.Now()
	book.UpdatedAt = &now

	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return err
	}

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "BOOK_UPDATED",
		EntityKind: "book",
		EntityIds:  []uint{book.Id},
		ActorId:    &userID,
	})
	return nil
}

// Delete soft-deletes the book and everything beneath it: versions, the
// collection trees of every version, their sections, interpretations and
// comment threads. One transaction, one event.
func (s *bookService) Delete(ctx context.Context, userID, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	book, err := s.findLiveBook(ctx, uow, id)
	if err != nil {
		return err
	}
	if book.UserId != userID {
		return apperr.Unauthorized("only the owner can delete a book")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	versions, err := uow.BookVersionRepository().FindAll(ctx,
		specification.ByBookID{BookID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return err
	}

	collectionIDs := make([]uint, 0)
	versionIDs := make([]uint, 0, len(versions))
	for _, version := range versions {
		versionIDs = append(versionIDs, version.Id)
		collections, err := uow.CollectionRepository().FindAll(ctx,
			specification.ByVersionID{VersionID: version.Id},
			specification.NotDeleted{},
		)
		if err != nil {
			return err
		}
		for _, c := range collections {
			collectionIDs = append(collectionIDs, c.Id)
		}
	}

	sectionIDs, interpretationIDs, commentIDs, err := collectContentIDs(ctx, uow, collectionIDs)
	if err != nil {
		return err
	}

	if err := uow.CommentRepository().SetDeleted(ctx, commentIDs); err != nil {
		return err
	}
	if err := uow.InterpretationRepository().SetDeleted(ctx, interpretationIDs); err != nil {
		return err
	}
	if err := uow.SectionRepository().SetDeleted(ctx, sectionIDs); err != nil {
		return err
	}
	if err := uow.CollectionRepository().SetDeleted(ctx, collectionIDs); err != nil {
		return err
	}
	if err := uow.BookVersionRepository().SetDeleted(ctx, versionIDs); err != nil {
		return err
	}
	if err := uow.BookRepository().SetDeleted(ctx, []uint{id}); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.accessService.InvalidateBook(id)

	_ = s.publisherService.PublishEntityEvent(ctx, &dto.EntityEventMessage{
		EventType:  "BOOK_DELETED",
		EntityKind: "book",
		EntityIds:  []uint{id},
		ActorId:    &userID,
		Details: map[string]interface{}{
			"versions":        len(versionIDs),
			"collections":     len(collectionIDs),
			"sections":        len(sectionIDs),
			"interpretations": len(interpretationIDs),
			"comments":        len(commentIDs),
		},
	})
	return nil
}

func (s *bookService) findLiveBook(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Book, error) {
	book, err := uow.BookRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apperr.NotFound("book %d not found", id)
	}
	return book, nil
}

func (s *bookService) lastVersion(ctx context.Context, uow unitofwork.UnitOfWork, bookID uint) (*entity.BookVersion, error) {
	version, err := uow.BookVersionRepository().FindOne(ctx,
		specification.ByBookID{BookID: bookID},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, apperr.NotFound("book %d has no versions", bookID)
	}
	return version, nil
}

// collectContentIDs gathers every live section, interpretation and comment
// under the given collections. Used by the cascade deletes.
func collectContentIDs(ctx context.Context, uow unitofwork.UnitOfWork, collectionIDs []uint) (sectionIDs, interpretationIDs, commentIDs []uint, err error) {
	if len(collectionIDs) == 0 {
		return nil, nil, nil, nil
	}

	sections, err := uow.SectionRepository().FindAll(ctx,
		specification.ByCollectionIDs{CollectionIDs: collectionIDs},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, s := range sections {
		sectionIDs = append(sectionIDs, s.Id)
	}
	if len(sectionIDs) == 0 {
		return sectionIDs, nil, nil, nil
	}

	interpretations, err := uow.InterpretationRepository().FindAll(ctx,
		specification.BySectionIDs{SectionIDs: sectionIDs},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, i := range interpretations {
		interpretationIDs = append(interpretationIDs, i.Id)
	}
	if len(interpretationIDs) == 0 {
		return sectionIDs, interpretationIDs, nil, nil
	}

	comments, err := uow.CommentRepository().FindAll(ctx,
		specification.ByInterpretationIDs{InterpretationIDs: interpretationIDs},
		specification.NotDeleted{},
	)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, c := range comments {
		commentIDs = append(commentIDs, c.Id)
	}
	return sectionIDs, interpretationIDs, commentIDs, nil
}

func bookToResponse(book *entity.Book) *dto.ShowBookResponse {
	return &dto.ShowBookResponse{
		Id:        book.Id,
		Label:     book.Label,
		About:     book.About,
		OwnerId:   book.UserId,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}
}

// buildTree assembles the nested node structure from flat rows. The root is
// the single node without a parent.
func buildTree(collections []*entity.Collection, sections []*entity.Section) *dto.CollectionTreeNode {
	nodes := make(map[uint]*dto.CollectionTreeNode, len(collections))
	var root *dto.CollectionTreeNode

	for _, c := range collections {
		nodes[c.Id] = &dto.CollectionTreeNode{
			Id:     c.Id,
			Label:  c.Label,
			About:  c.About,
			IsRoot: c.IsRoot,
			IsLeaf: c.IsLeaf,
		}
	}
	for _, c := range collections {
		node := nodes[c.Id]
		if c.ParentId == nil {
			root = node
			continue
		}
		if parent, ok := nodes[*c.ParentId]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	for _, s := range sections {
		if parent, ok := nodes[s.CollectionId]; ok {
			parent.Sections = append(parent.Sections, dto.ShowSectionResponse{
				Id:           s.Id,
				Label:        s.Label,
				About:        s.About,
				CollectionId: s.CollectionId,
				VersionId:    s.VersionId,
				CreatedAt:    s.CreatedAt,
				UpdatedAt:    s.UpdatedAt,
			})
		}
	}
	return root
}
