package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"open-law-be/internal/config"
	"open-law-be/internal/dto"
	"open-law-be/internal/pkg/apperr"
	"open-law-be/internal/repository/specification"
	"open-law-be/internal/repository/unitofwork"
	"open-law-be/internal/service"
	"open-law-be/pkg/database"
)

type testEnv struct {
	uowFactory            unitofwork.RepositoryFactory
	authService           service.IAuthService
	bookService           service.IBookService
	contributorService    service.IContributorService
	collectionService     service.ICollectionService
	sectionService        service.ISectionService
	interpretationService service.IInterpretationService
	commentService        service.ICommentService
	searchService         service.ISearchService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub, "ENTITY_EVENTS_TEST", nil)
	accessService := service.NewAccessService(cache.New(time.Minute, time.Minute))

	return &testEnv{
		uowFactory:            uowFactory,
		authService:           service.NewAuthService(uowFactory, config.AuthConfig{JWTSecret: "integration-secret", TokenTTLMinutes: 60}, cache.New(time.Hour, time.Hour)),
		bookService:           service.NewBookService(uowFactory, accessService, publisherService),
		contributorService:    service.NewContributorService(uowFactory),
		collectionService:     service.NewCollectionService(uowFactory, accessService, publisherService),
		sectionService:        service.NewSectionService(uowFactory, accessService, publisherService),
		interpretationService: service.NewInterpretationService(uowFactory, accessService, publisherService),
		commentService:        service.NewCommentService(uowFactory, publisherService),
		searchService:         service.NewSearchService(uowFactory),
	}
}

func (e *testEnv) registerUser(t *testing.T) *dto.RegisterResponse {
	t.Helper()
	user, err := e.authService.Register(context.Background(), &dto.RegisterRequest{
		Username: "it-" + uuid.New().String()[:18],
		Password: "supersafepassword",
	})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createBook(t *testing.T, ownerID uint) *dto.CreateBookResponse {
	t.Helper()
	book, err := e.bookService.Create(context.Background(), ownerID, &dto.CreateBookRequest{
		Label: "Integration Book " + uuid.New().String()[:8],
		About: "created by the integration suite",
	})
	require.NoError(t, err)
	return book
}

func TestBookLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)

	book := env.createBook(t, owner.Id)
	assert.Equal(t, "1.0.0", book.Semver)

	uow := env.uowFactory.NewUnitOfWork(ctx)

	t.Run("exactly one version exists", func(t *testing.T) {
		versions, err := env.bookService.Versions(ctx, book.Id)
		require.NoError(t, err)
		require.Len(t, versions, 1)
		assert.Equal(t, "1.0.0", versions[0].Semver)
	})

	t.Run("root collection exists and is neither leaf nor editable", func(t *testing.T) {
		root, err := env.collectionService.Show(ctx, book.RootCollectionId)
		require.NoError(t, err)
		assert.True(t, root.IsRoot)
		assert.False(t, root.IsLeaf)
		assert.Nil(t, root.ParentId)

		label := "New Label"
		err = env.collectionService.Update(ctx, owner.Id, &dto.UpdateCollectionRequest{Id: root.Id, Label: &label})
		assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err))

		err = env.collectionService.Delete(ctx, owner.Id, root.Id)
		assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err))
	})

	t.Run("book carries one editor and one moderator group", func(t *testing.T) {
		groups, err := uow.AccessGroupRepository().FindAll(ctx, specification.ByBookID{BookID: book.Id})
		require.NoError(t, err)
		require.Len(t, groups, 2)

		kinds := map[string]bool{}
		for _, g := range groups {
			kinds[string(g.Kind)] = true
			assert.Equal(t, book.Id, g.BookId)
		}
		assert.True(t, kinds["editor"])
		assert.True(t, kinds["moderator"])
	})

	t.Run("root is bound to both groups", func(t *testing.T) {
		bound, err := uow.AccessGroupRepository().BoundToCollection(ctx, book.RootCollectionId)
		require.NoError(t, err)
		require.Len(t, bound, 2)
		for _, g := range bound {
			assert.Equal(t, book.Id, g.BookId)
		}
	})

	t.Run("owner edit changes the label and nothing else", func(t *testing.T) {
		before, err := env.bookService.Show(ctx, book.Id)
		require.NoError(t, err)

		label := before.Label + " (2nd ed.)"
		require.NoError(t, env.bookService.Update(ctx, owner.Id, &dto.UpdateBookRequest{Id: book.Id, Label: &label}))

		after, err := env.bookService.Show(ctx, book.Id)
		require.NoError(t, err)
		assert.Equal(t, label, after.Label)
		assert.Equal(t, before.About, after.About)
		assert.Equal(t, before.OwnerId, after.OwnerId)
	})

	t.Run("only the owner can edit or delete", func(t *testing.T) {
		stranger := env.registerUser(t)
		label := "Hijacked Label"
		err := env.bookService.Update(ctx, stranger.Id, &dto.UpdateBookRequest{Id: book.Id, Label: &label})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		err = env.bookService.Delete(ctx, stranger.Id, book.Id)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})
}

func TestContributorManagement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)
	first := env.registerUser(t)
	second := env.registerUser(t)
	book := env.createBook(t, owner.Id)

	_, err := env.contributorService.Add(ctx, owner.Id, &dto.AddContributorRequest{
		BookId: book.Id, Username: first.Username, Role: 2,
	})
	require.NoError(t, err)

	t.Run("adding the same user twice fails", func(t *testing.T) {
		_, err := env.contributorService.Add(ctx, owner.Id, &dto.AddContributorRequest{
			BookId: book.Id, Username: first.Username, Role: 1,
		})
		assert.Equal(t, apperr.KindAlreadyExists, apperr.KindOf(err))
	})

	t.Run("a second user can be added", func(t *testing.T) {
		_, err := env.contributorService.Add(ctx, owner.Id, &dto.AddContributorRequest{
			BookId: book.Id, Username: second.Username, Role: 1,
		})
		require.NoError(t, err)

		contributors, err := env.contributorService.List(ctx, book.Id)
		require.NoError(t, err)
		assert.Len(t, contributors, 2)
	})

	t.Run("removal is final and repeatable only once", func(t *testing.T) {
		err := env.contributorService.Remove(ctx, owner.Id, &dto.RemoveContributorRequest{
			BookId: book.Id, UserId: first.Id,
		})
		require.NoError(t, err)

		err = env.contributorService.Remove(ctx, owner.Id, &dto.RemoveContributorRequest{
			BookId: book.Id, UserId: first.Id,
		})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("only the owner manages contributors", func(t *testing.T) {
		_, err := env.contributorService.Add(ctx, second.Id, &dto.AddContributorRequest{
			BookId: book.Id, Username: first.Username, Role: 2,
		})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})
}

func TestCollectionTreeRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)
	book := env.createBook(t, owner.Id)

	chapter, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Chapter One", BookId: book.Id,
	})
	require.NoError(t, err)
	assert.False(t, chapter.IsLeaf, "a node attached under the root is an inner collection")

	article, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Article One", BookId: book.Id, ParentId: &chapter.Id,
	})
	require.NoError(t, err)
	assert.True(t, article.IsLeaf, "a node attached under a collection is a leaf")

	t.Run("duplicate sibling label is rejected", func(t *testing.T) {
		_, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Article One", BookId: book.Id, ParentId: &chapter.Id,
		})
		assert.Equal(t, apperr.KindDuplicateLabel, apperr.KindOf(err))
	})

	t.Run("same label under a different parent is fine", func(t *testing.T) {
		other, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Chapter Two", BookId: book.Id,
		})
		require.NoError(t, err)
		_, err = env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Article One", BookId: book.Id, ParentId: &other.Id,
		})
		assert.NoError(t, err)
	})

	t.Run("a leaf cannot hold sub-collections", func(t *testing.T) {
		_, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Nested", BookId: book.Id, ParentId: &article.Id,
		})
		assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err))
	})

	t.Run("every created node is bound to both groups", func(t *testing.T) {
		uow := env.uowFactory.NewUnitOfWork(ctx)
		for _, id := range []uint{chapter.Id, article.Id} {
			bound, err := uow.AccessGroupRepository().BoundToCollection(ctx, id)
			require.NoError(t, err)
			require.Len(t, bound, 2)
			for _, g := range bound {
				assert.Equal(t, book.Id, g.BookId)
			}
		}
	})

	t.Run("rename into a sibling label is rejected", func(t *testing.T) {
		third, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Article Two", BookId: book.Id, ParentId: &chapter.Id,
		})
		require.NoError(t, err)

		label := "Article One"
		err = env.collectionService.Update(ctx, owner.Id, &dto.UpdateCollectionRequest{Id: third.Id, Label: &label})
		assert.Equal(t, apperr.KindDuplicateLabel, apperr.KindOf(err))

		// Keeping its own label while editing about is fine.
		about := "renumbered"
		err = env.collectionService.Update(ctx, owner.Id, &dto.UpdateCollectionRequest{Id: third.Id, About: &about})
		assert.NoError(t, err)
	})

	t.Run("leaf lookup walks the subtree", func(t *testing.T) {
		hasLeaf, err := env.collectionService.IsDescendantLeaf(ctx, chapter.Id)
		require.NoError(t, err)
		assert.True(t, hasLeaf)

		hasLeaf, err = env.collectionService.IsDescendantLeaf(ctx, article.Id)
		require.NoError(t, err)
		assert.True(t, hasLeaf, "a leaf reports itself")

		bare, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Chapter Three", BookId: book.Id,
		})
		require.NoError(t, err)
		hasLeaf, err = env.collectionService.IsDescendantLeaf(ctx, bare.Id)
		require.NoError(t, err)
		assert.False(t, hasLeaf, "an inner node without leaves has none")
	})

	t.Run("only the book owner mutates the tree", func(t *testing.T) {
		stranger := env.registerUser(t)

		_, err := env.collectionService.Create(ctx, stranger.Id, &dto.CreateCollectionRequest{
			Label: "Planted Chapter", BookId: book.Id,
		})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		label := "Hijacked"
		err = env.collectionService.Update(ctx, stranger.Id, &dto.UpdateCollectionRequest{Id: chapter.Id, Label: &label})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		err = env.collectionService.Delete(ctx, stranger.Id, chapter.Id)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		// Nothing was written or renamed.
		kept, err := env.collectionService.Show(ctx, chapter.Id)
		require.NoError(t, err)
		assert.Equal(t, "Chapter One", kept.Label)
		children, err := env.collectionService.Children(ctx, book.RootCollectionId)
		require.NoError(t, err)
		for _, c := range children {
			assert.NotEqual(t, "Planted Chapter", c.Label)
		}
	})
}

func TestSectionRules(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)
	book := env.createBook(t, owner.Id)

	chapter, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Chapter", BookId: book.Id,
	})
	require.NoError(t, err)
	article, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Article", BookId: book.Id, ParentId: &chapter.Id,
	})
	require.NoError(t, err)

	t.Run("sections live only on leaves", func(t *testing.T) {
		_, err := env.sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
			Label: "Art. 1", CollectionId: chapter.Id,
		})
		assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err))
	})

	section, err := env.sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
		Label: "Art. 1", CollectionId: article.Id,
	})
	require.NoError(t, err)

	t.Run("duplicate section label in one collection is rejected", func(t *testing.T) {
		_, err := env.sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
			Label: "Art. 1", CollectionId: article.Id,
		})
		assert.Equal(t, apperr.KindDuplicateLabel, apperr.KindOf(err))
	})

	t.Run("section is bound to both groups", func(t *testing.T) {
		uow := env.uowFactory.NewUnitOfWork(ctx)
		bound, err := uow.AccessGroupRepository().BoundToSection(ctx, section.Id)
		require.NoError(t, err)
		require.Len(t, bound, 2)
		for _, g := range bound {
			assert.Equal(t, book.Id, g.BookId)
		}
	})

	t.Run("only the book owner mutates sections", func(t *testing.T) {
		stranger := env.registerUser(t)

		_, err := env.sectionService.Create(ctx, stranger.Id, &dto.CreateSectionRequest{
			Label: "Art. 99", CollectionId: article.Id,
		})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		label := "Hijacked"
		err = env.sectionService.Update(ctx, stranger.Id, &dto.UpdateSectionRequest{Id: section.Id, Label: &label})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		err = env.sectionService.Delete(ctx, stranger.Id, section.Id)
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

		kept, err := env.sectionService.Show(ctx, section.Id)
		require.NoError(t, err)
		assert.Equal(t, "Art. 1", kept.Label)
	})
}

func TestInterpretationAndCommentFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)
	reader := env.registerUser(t)
	book := env.createBook(t, owner.Id)

	chapter, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Chapter", BookId: book.Id,
	})
	require.NoError(t, err)
	article, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Article", BookId: book.Id, ParentId: &chapter.Id,
	})
	require.NoError(t, err)
	section, err := env.sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
		Label: "Art. 1", CollectionId: article.Id,
	})
	require.NoError(t, err)

	text := "The law applies to all legal questions."
	first, err := env.interpretationService.Create(ctx, &reader.Id, &dto.CreateInterpretationRequest{
		Text: text, SectionId: section.Id,
	})
	require.NoError(t, err)

	t.Run("identical interpretation text is allowed", func(t *testing.T) {
		_, err := env.interpretationService.Create(ctx, &owner.Id, &dto.CreateInterpretationRequest{
			Text: text, SectionId: section.Id,
		})
		assert.NoError(t, err)

		list, err := env.interpretationService.ListBySection(ctx, section.Id)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("anonymous interpretations are accepted", func(t *testing.T) {
		_, err := env.interpretationService.Create(ctx, nil, &dto.CreateInterpretationRequest{
			Text: "anonymous reading", SectionId: section.Id,
		})
		assert.NoError(t, err)
	})

	t.Run("interpretation is bound to both groups", func(t *testing.T) {
		uow := env.uowFactory.NewUnitOfWork(ctx)
		bound, err := uow.AccessGroupRepository().BoundToInterpretation(ctx, first.Id)
		require.NoError(t, err)
		require.Len(t, bound, 2)
	})

	t.Run("only the author edits an interpretation", func(t *testing.T) {
		err := env.interpretationService.Update(ctx, owner.Id, &dto.UpdateInterpretationRequest{
			Id: first.Id, Text: "rewritten",
		})
		assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
	})

	comment, err := env.commentService.Create(ctx, &owner.Id, &dto.CreateCommentRequest{
		Text: "Please cite case law.", InterpretationId: first.Id,
	})
	require.NoError(t, err)
	reply, err := env.commentService.Create(ctx, &reader.Id, &dto.CreateCommentRequest{
		Text: "Done.", InterpretationId: first.Id, ParentId: &comment.Id,
	})
	require.NoError(t, err)

	t.Run("reply must target the same interpretation", func(t *testing.T) {
		other, err := env.interpretationService.Create(ctx, &owner.Id, &dto.CreateInterpretationRequest{
			Text: "separate thread", SectionId: section.Id,
		})
		require.NoError(t, err)

		_, err = env.commentService.Create(ctx, &owner.Id, &dto.CreateCommentRequest{
			Text: "misfiled", InterpretationId: other.Id, ParentId: &comment.Id,
		})
		assert.Equal(t, apperr.KindInvalidOperation, apperr.KindOf(err))
	})

	t.Run("deleting a comment takes its replies", func(t *testing.T) {
		err := env.commentService.Delete(ctx, owner.Id, comment.Id)
		require.NoError(t, err)

		remaining, err := env.commentService.ListByInterpretation(ctx, first.Id)
		require.NoError(t, err)
		for _, c := range remaining {
			assert.NotEqual(t, comment.Id, c.Id)
			assert.NotEqual(t, reply.Id, c.Id)
		}
	})

	t.Run("deleting an interpretation takes the whole thread", func(t *testing.T) {
		_, err := env.commentService.Create(ctx, &owner.Id, &dto.CreateCommentRequest{
			Text: "new thread", InterpretationId: first.Id,
		})
		require.NoError(t, err)

		err = env.interpretationService.Delete(ctx, reader.Id, first.Id)
		require.NoError(t, err)

		_, err = env.interpretationService.Show(ctx, first.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

		_, err = env.commentService.ListByInterpretation(ctx, first.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestCascadeDeleteAndIdempotency(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)
	book := env.createBook(t, owner.Id)

	chapter, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Chapter", BookId: book.Id,
	})
	require.NoError(t, err)
	article, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label: "Article", BookId: book.Id, ParentId: &chapter.Id,
	})
	require.NoError(t, err)
	section, err := env.sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
		Label: "Art. 1", CollectionId: article.Id,
	})
	require.NoError(t, err)
	interpretation, err := env.interpretationService.Create(ctx, &owner.Id, &dto.CreateInterpretationRequest{
		Text: "a reading", SectionId: section.Id,
	})
	require.NoError(t, err)
	comment, err := env.commentService.Create(ctx, &owner.Id, &dto.CreateCommentRequest{
		Text: "a note", InterpretationId: interpretation.Id,
	})
	require.NoError(t, err)

	require.NoError(t, env.collectionService.Delete(ctx, owner.Id, chapter.Id))

	t.Run("every descendant is gone", func(t *testing.T) {
		for _, check := range []func() error{
			func() error { _, err := env.collectionService.Show(ctx, chapter.Id); return err },
			func() error { _, err := env.collectionService.Show(ctx, article.Id); return err },
			func() error { _, err := env.sectionService.Show(ctx, section.Id); return err },
			func() error { _, err := env.interpretationService.Show(ctx, interpretation.Id); return err },
		} {
			assert.Equal(t, apperr.KindNotFound, apperr.KindOf(check()))
		}
	})

	t.Run("the rows survive as soft-deleted", func(t *testing.T) {
		uow := env.uowFactory.NewUnitOfWork(ctx)
		row, err := uow.CommentRepository().FindOne(ctx, specification.ByID{ID: comment.Id})
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.True(t, row.IsDeleted)
	})

	t.Run("deleting again reports not found", func(t *testing.T) {
		err := env.collectionService.Delete(ctx, owner.Id, chapter.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("a sibling can reuse the deleted label", func(t *testing.T) {
		_, err := env.collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
			Label: "Chapter", BookId: book.Id,
		})
		assert.NoError(t, err)
	})

	t.Run("book delete cascades everything and is final", func(t *testing.T) {
		require.NoError(t, env.bookService.Delete(ctx, owner.Id, book.Id))

		_, err := env.bookService.Show(ctx, book.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		_, err = env.bookService.ShowTree(ctx, book.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

		err = env.bookService.Delete(ctx, owner.Id, book.Id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.registerUser(t)

	marker := uuid.New().String()[:8]
	_, err := env.bookService.Create(ctx, owner.Id, &dto.CreateBookRequest{
		Label: fmt.Sprintf("Searchable %s Corpus", marker),
	})
	require.NoError(t, err)

	res, err := env.searchService.Search(ctx, &dto.SearchRequest{Query: marker})
	require.NoError(t, err)
	require.Len(t, res.Books, 1)
	assert.Contains(t, res.Books[0].Label, marker)
	assert.EqualValues(t, 1, res.Counts.Books)

	t.Run("match is case-insensitive", func(t *testing.T) {
		res, err := env.searchService.Search(ctx, &dto.SearchRequest{Query: "SEARCHABLE " + marker})
		require.NoError(t, err)
		assert.Len(t, res.Books, 1)
	})

	t.Run("book listing filters and counts the same way", func(t *testing.T) {
		list, err := env.bookService.GetAll(ctx, &dto.ListBooksRequest{Q: marker})
		require.NoError(t, err)
		require.Len(t, list.Books, 1)
		assert.EqualValues(t, 1, list.Total)
	})

	t.Run("my books lists only the owner's", func(t *testing.T) {
		mine, err := env.bookService.Mine(ctx, owner.Id)
		require.NoError(t, err)
		require.Len(t, mine, 1)

		stranger := env.registerUser(t)
		none, err := env.bookService.Mine(ctx, stranger.Id)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
