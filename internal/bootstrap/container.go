package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"open-law-be/internal/config"
	"open-law-be/internal/controller"
	"open-law-be/internal/pkg/logger"
	"open-law-be/internal/repository/unitofwork"
	"open-law-be/internal/service"
	pktNats "open-law-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	BookController           controller.IBookController
	CollectionController     controller.ICollectionController
	SectionController        controller.ISectionController
	InterpretationController controller.IInterpretationController
	CommentController        controller.ICommentController
	SearchController         controller.ISearchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS mirror is optional; local development runs without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 3. Caches
	groupCache := cache.New(10*time.Minute, 30*time.Minute)
	sessionCache := cache.New(30*24*time.Hour, time.Hour)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.EventTopic, natsPub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory, sysLogger)

	accessService := service.NewAccessService(groupCache)
	authService := service.NewAuthService(uowFactory, cfg.Auth, sessionCache)
	bookService := service.NewBookService(uowFactory, accessService, publisherService)
	contributorService := service.NewContributorService(uowFactory)
	collectionService := service.NewCollectionService(uowFactory, accessService, publisherService)
	sectionService := service.NewSectionService(uowFactory, accessService, publisherService)
	interpretationService := service.NewInterpretationService(uowFactory, accessService, publisherService)
	commentService := service.NewCommentService(uowFactory, publisherService)
	searchService := service.NewSearchService(uowFactory)

	// 5. Controllers
	return &Container{
		AuthController:           controller.NewAuthController(authService),
		BookController:           controller.NewBookController(bookService, contributorService),
		CollectionController:     controller.NewCollectionController(collectionService, sectionService),
		SectionController:        controller.NewSectionController(sectionService, interpretationService),
		InterpretationController: controller.NewInterpretationController(interpretationService, commentService),
		CommentController:        controller.NewCommentController(commentService),
		SearchController:         controller.NewSearchController(searchService),

		ConsumerService: consumerService,

		Logger: sysLogger,
	}
}
