package bootstrap

import (
	"context"
	"log"

	"github.com/SudeepMalipeddi/Service-Sphere/internal/config"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/controller"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/handler"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/logger"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/mailer"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/serverutils"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/pkg/tokenstore"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/implementation"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/memory"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/repository/unitofwork"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/scheduler"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/service"
	"github.com/SudeepMalipeddi/Service-Sphere/internal/websocket"

	pktNats "github.com/SudeepMalipeddi/Service-Sphere/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	RequestController controller.IRequestController
	ReviewController  controller.IReviewController
	ServiceController controller.IServiceController
	ProfileController controller.IProfileController
	AdminController   controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	SweepScheduler  *scheduler.Scheduler

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	// Auth middleware shared by the route groups
	AuthMiddleware fiber.Handler
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
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
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
	}
	tokenStore := tokenstore.NewRedisStore(rdb)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Directory cache for the public professional listing
	directoryCache := memory.NewDirectoryCache()

	// Report pipeline (queued by the monthly sweep, drained to email)
	publisherService := service.NewPublisherService(cfg.App.ReportTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ReportTopic,
		uowFactory,
		emailService,
	)

	// 3. Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, emailService, wsLogger)

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	// 4. Domain Services
	authService := service.NewAuthService(uowFactory, tokenStore, natsPub)
	requestService := service.NewRequestService(uowFactory, notifService, natsPub)
	reviewService := service.NewReviewService(uowFactory, notifService, directoryCache)
	catalogService := service.NewCatalogService(uowFactory)
	profileService := service.NewProfileService(uowFactory, directoryCache)
	adminService := service.NewAdminService(uowFactory, notifService, directoryCache, sysLogger)

	sweepService := service.NewSweepService(uowFactory, notifService, publisherService, sysLogger)
	sweepScheduler := scheduler.New(sweepService, cfg.Jobs, sysLogger)

	authMiddleware := serverutils.JwtMiddleware(tokenStore)

	// 5. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
		AuthMiddleware:      authMiddleware,

		AuthController:    controller.NewAuthController(authService, authMiddleware),
		RequestController: controller.NewRequestController(requestService, authMiddleware),
		ReviewController:  controller.NewReviewController(reviewService, authMiddleware),
		ServiceController: controller.NewServiceController(catalogService, authMiddleware),
		ProfileController: controller.NewProfileController(profileService, authMiddleware),
		AdminController:   controller.NewAdminController(adminService, authMiddleware),

		ConsumerService: consumerService,
		SweepScheduler:  sweepScheduler,
	}
}
