package bootstrap

import (
	"context"
	"log"

	"salesdesk-be/internal/config"
	"salesdesk-be/internal/constant"
	"salesdesk-be/internal/controller"
	"salesdesk-be/internal/handler"
	"salesdesk-be/internal/mapper"
	"salesdesk-be/internal/pkg/logger"
	"salesdesk-be/internal/pkg/scheduler"
	"salesdesk-be/internal/repository/memory"
	"salesdesk-be/internal/repository/sheets"
	"salesdesk-be/internal/service"
	"salesdesk-be/internal/websocket"

	pktNats "salesdesk-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	CatalogController    controller.ICatalogController
	SelectionController  controller.ISelectionController
	BattleCardController controller.IBattleCardController

	// Background services (exposed for main.go to run)
	NotifierService service.INotifierService
	SessionService  service.ISessionService

	// WebSockets & notices
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional mirror of session events)
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	// Redis (optional cross-instance notice delivery)
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	sessionRepo := memory.NewSessionRepository()
	sheetClient := sheets.NewClient(cfg.Sheets)
	sheetRepo := sheets.NewCachedRepository(sheetClient, cfg.Sheets.CacheTTL)

	// 4. Services
	publisherService := service.NewPublisherService(constant.TopicSessionEvents, pubSub)

	sessionService := service.NewSessionService(
		sessionRepo,
		scheduler.New(),
		publisherService,
		sysLogger,
		cfg.Session.IdleTimeout,
		cfg.Session.NoticeDuration,
		cfg.Session.CompareLimit,
	)

	catalogMapper := mapper.NewCatalogMapper(sysLogger)
	rosterMapper := mapper.NewRosterMapper()

	authService := service.NewAuthService(
		sheetRepo,
		rosterMapper,
		sessionService,
		publisherService,
		sysLogger,
		cfg.Sheets.UsersRange,
	)
	catalogService := service.NewCatalogService(sheetRepo, catalogMapper, sysLogger, cfg.Sheets)
	battleCardService := service.NewBattleCardService(sheetRepo, rosterMapper, sysLogger, cfg.Sheets)

	notifierService := service.NewNotifierService(
		pubSub,
		constant.TopicSessionEvents,
		wsHub,
		natsPub,
		wsLogger,
	)

	// Handler
	notifHandler := handler.NewNotificationHandler(sessionService, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		NotificationHandler:  notifHandler,
		WebSocketHub:         wsHub,
		AuthController:       controller.NewAuthController(authService, sessionService),
		CatalogController:    controller.NewCatalogController(catalogService, sessionService),
		SelectionController:  controller.NewSelectionController(sessionService),
		BattleCardController: controller.NewBattleCardController(battleCardService),

		NotifierService: notifierService,
		SessionService:  sessionService,
	}
}
