package bootstrap

import (
	"context"
	"log"
	"time"

	"edusphere-be/internal/config"
	"edusphere-be/internal/controller"
	"edusphere-be/internal/pkg/logger"
	"edusphere-be/internal/repository/memory"
	"edusphere-be/internal/repository/unitofwork"
	"edusphere-be/internal/service"
	"edusphere-be/pkg/llm/factory"
	pktNats "edusphere-be/pkg/nats"
	"edusphere-be/pkg/transcript"
	"edusphere-be/pkg/tutor/quiz"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const activityTopic = "study.activity"

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	CatalogController controller.ICatalogController
	TutorController   controller.ITutorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// LLM Provider
	llmProvider, err := factory.NewLLMProvider(cfg.Ai)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// Transcript fetcher with redis caching layered over the caption source
	var fetcher transcript.Fetcher = transcript.NewHTTPFetcher(cfg.Captions.BaseURL)
	fetcher = transcript.NewCachingFetcher(fetcher, rdb, time.Duration(cfg.Captions.CacheTTL)*time.Minute)

	// In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(activityTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, activityTopic, uowFactory)

	activityService := service.NewActivityService(publisherService, uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, sessionRepo, natsPub, cfg.Auth, sysLogger)

	quizGenerator := quiz.NewGenerator(llmProvider, cfg.Ai.Temperature)
	tutorService := service.NewTutorService(
		sessionRepo,
		llmProvider,
		fetcher,
		quizGenerator,
		activityService,
		cfg.Ai.Temperature,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		CatalogController: controller.NewCatalogController(),
		TutorController:   controller.NewTutorController(tutorService, activityService),

		ConsumerService: consumerService,
	}
}
