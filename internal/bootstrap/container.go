package bootstrap

import (
	"context"
	"log"

	"mindwell-be/internal/config"
	"mindwell-be/internal/controller"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/mailer"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/internal/service"
	"mindwell-be/pkg/llm/factory"

	pktNats "mindwell-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	MoodController    controller.IMoodController
	DiaryController   controller.IDiaryController
	ChatController    controller.IChatController
	SummaryController controller.ISummaryController

	// Background Services (Exposed for main.go to run)
	ConsumerService  service.IConsumerService
	SchedulerService service.ISchedulerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS (optional; publisher stays nil-safe without it)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis (optional; mood stats fall back to direct queries)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// 3. LLM Provider
	apiKey := cfg.Ai.GeminiAPIKey
	if cfg.Ai.Provider == "openai" {
		apiKey = cfg.Ai.OpenAIAPIKey
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		apiKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. Running with canned content.", err)
		llmProvider = nil
	} else if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)
	}

	// In-memory chat context window
	contextRepo := memory.NewChatContextRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Ai.RecommendTopic, pubSub)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	userService := service.NewUserService(uowFactory, contextRepo, natsPub)
	moodService := service.NewMoodService(uowFactory, rdb, natsPub)
	diaryService := service.NewDiaryService(uowFactory, publisherService, natsPub)
	chatService := service.NewChatService(uowFactory, contextRepo, llmProvider)
	summaryService := service.NewSummaryService(uowFactory, llmProvider)
	recommendationService := service.NewRecommendationService(uowFactory, llmProvider)
	exportService := service.NewExportService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.RecommendTopic,
		recommendationService,
	)

	var schedulerService service.ISchedulerService
	if cfg.Ai.WeeklySummary {
		schedulerService, err = service.NewSchedulerService(uowFactory, summaryService)
		if err != nil {
			log.Printf("[WARN] Failed to initialize scheduler: %v", err)
			schedulerService = nil
		}
	}

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		UserController:    controller.NewUserController(userService, exportService),
		MoodController:    controller.NewMoodController(moodService),
		DiaryController:   controller.NewDiaryController(diaryService),
		ChatController:    controller.NewChatController(chatService),
		SummaryController: controller.NewSummaryController(summaryService, recommendationService),

		ConsumerService:  consumerService,
		SchedulerService: schedulerService,

		Logger: sysLogger,
	}
}
