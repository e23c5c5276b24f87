package main

import (
	"context"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"
	"github.com/patrickmn/go-cache"

	"open-law-be/internal/config"
	"open-law-be/internal/dto"
	"open-law-be/internal/repository/unitofwork"
	"open-law-be/internal/service"
	"open-law-be/pkg/database"
)

// Seeds a demo corpus: two users, one book with a small collection tree,
// sections, interpretations with comment threads, and a contributor grant.
// Goes through the services so every invariant (root collection, access
// groups, bindings) holds the same way it does in production.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic, nil)

	accessService := service.NewAccessService(cache.New(10*time.Minute, 30*time.Minute))
	authService := service.NewAuthService(uowFactory, cfg.Auth, cache.New(time.Hour, time.Hour))
	bookService := service.NewBookService(uowFactory, accessService, publisherService)
	contributorService := service.NewContributorService(uowFactory)
	collectionService := service.NewCollectionService(uowFactory, accessService, publisherService)
	sectionService := service.NewSectionService(uowFactory, accessService, publisherService)
	interpretationService := service.NewInterpretationService(uowFactory, accessService, publisherService)
	commentService := service.NewCommentService(uowFactory, publisherService)

	success := color.New(color.FgGreen).PrintfFunc()
	step := color.New(color.FgCyan).PrintfFunc()

	step("Seeding users...\n")
	owner, err := authService.Register(ctx, &dto.RegisterRequest{Username: "test_user", Password: "supersafepassword"})
	if err != nil {
		log.Fatalf("Error: failed to seed owner: %v", err)
	}
	helper, err := authService.Register(ctx, &dto.RegisterRequest{Username: "helper_user", Password: "supersafepassword"})
	if err != nil {
		log.Fatalf("Error: failed to seed helper: %v", err)
	}
	success("  users: %s (#%d), %s (#%d)\n", owner.Username, owner.Id, helper.Username, helper.Id)

	step("Seeding book...\n")
	book, err := bookService.Create(ctx, owner.Id, &dto.CreateBookRequest{
		Label: "Zivilgesetzbuch",
		About: "A seeded civil law corpus for local development.",
	})
	if err != nil {
		log.Fatalf("Error: failed to seed book: %v", err)
	}
	success("  book #%d (version %s, root collection #%d)\n", book.Id, book.Semver, book.RootCollectionId)

	step("Granting contributor role...\n")
	if _, err := contributorService.Add(ctx, owner.Id, &dto.AddContributorRequest{
		BookId:   book.Id,
		Username: "helper_user",
		Role:     2,
	}); err != nil {
		log.Fatalf("Error: failed to seed contributor: %v", err)
	}
	success("  helper_user is now an editor on book #%d\n", book.Id)

	step("Seeding collection tree...\n")
	chapter, err := collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label:  "General Provisions",
		About:  "Introductory chapter.",
		BookId: book.Id,
	})
	if err != nil {
		log.Fatalf("Error: failed to seed chapter: %v", err)
	}
	article, err := collectionService.Create(ctx, owner.Id, &dto.CreateCollectionRequest{
		Label:    "Application of the Law",
		BookId:   book.Id,
		ParentId: &chapter.Id,
	})
	if err != nil {
		log.Fatalf("Error: failed to seed article: %v", err)
	}
	success("  chapter #%d, article #%d (leaf: %v)\n", chapter.Id, article.Id, article.IsLeaf)

	step("Seeding sections...\n")
	sectionLabels := []string{"Art. 1", "Art. 2", "Art. 3"}
	sectionIDs := make([]uint, 0, len(sectionLabels))
	for _, label := range sectionLabels {
		section, err := sectionService.Create(ctx, owner.Id, &dto.CreateSectionRequest{
			Label:        label,
			About:        "Seeded section " + label,
			CollectionId: article.Id,
		})
		if err != nil {
			log.Fatalf("Error: failed to seed section %q: %v", label, err)
		}
		sectionIDs = append(sectionIDs, section.Id)
	}
	success("  %d sections under article #%d\n", len(sectionIDs), article.Id)

	step("Seeding interpretations and comments...\n")
	interpretation, err := interpretationService.Create(ctx, &helper.Id, &dto.CreateInterpretationRequest{
		Text:      "The law applies according to its wording or interpretation to all legal questions.",
		SectionId: sectionIDs[0],
	})
	if err != nil {
		log.Fatalf("Error: failed to seed interpretation: %v", err)
	}
	comment, err := commentService.Create(ctx, &owner.Id, &dto.CreateCommentRequest{
		Text:             "Could you cite the relevant case law here?",
		InterpretationId: interpretation.Id,
	})
	if err != nil {
		log.Fatalf("Error: failed to seed comment: %v", err)
	}
	if _, err := commentService.Create(ctx, &helper.Id, &dto.CreateCommentRequest{
		Text:             "Added references in the next revision.",
		InterpretationId: interpretation.Id,
		ParentId:         &comment.Id,
	}); err != nil {
		log.Fatalf("Error: failed to seed reply: %v", err)
	}
	success("  interpretation #%d with a two-comment thread\n", interpretation.Id)

	success("✅ Seeding completed!\n")
}
