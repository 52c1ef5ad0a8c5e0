package main

import (
	availrepo "barkeep/internal/availability/repository"
	availability "barkeep/internal/availability/service"
	availvalidator "barkeep/internal/availability/validator"
	barsrepo "barkeep/internal/bars/repository"
	bars "barkeep/internal/bars/service"
	barsvalidator "barkeep/internal/bars/validator"
	"barkeep/internal/holds/broadcast"
	"barkeep/internal/holds/handler"
	"barkeep/internal/holds/service"
	"barkeep/internal/holds/store"
	"barkeep/internal/holds/validator"
	"barkeep/pkg/app"
	"barkeep/pkg/config"
	"barkeep/pkg/kafka"
	kafka_config "barkeep/pkg/kafka/config"
	"barkeep/pkg/sealer"
)

const ServiceName = "holds"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Holds service")

	hub := broadcast.NewHub()
	go hub.Run()
	defer hub.Stop()

	holdService := initServices(cfg, hub)

	consumer, err := service.NewReleaseConsumer(kafka_config.Load(), holdService, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create booking event consumer", "error", err)
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewHoldHandler(holdService, hub, cfg.Log))
	serverApp.AddWorker(consumer)
	serverApp.Run()
}

func initServices(cfg *config.Config, hub *broadcast.Hub) service.HoldService {
	holdStore := selectStore(cfg)

	barValidator := barsvalidator.NewBarValidator(cfg.Log)
	barRepo := barsrepo.NewMongoBarRepository(cfg)
	catalogService := bars.NewCatalogService(
		barRepo,
		barsrepo.NewMongoTableRepository(cfg),
		barsrepo.NewMongoDrinkRepository(cfg),
		barValidator,
		cfg,
	)

	windowService := availability.NewWindowService(
		availrepo.NewMongoWindowRepository(cfg),
		availvalidator.NewWindowValidator(cfg.Log),
		cfg,
	)

	slotSealer, err := sealer.New(cfg.SlotTokenKey)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize slot token sealer", "error", err)
	}

	producer, err := kafka.NewProducer(kafka_config.Load(), kafka.TopicHoldEvents, kafka.DLQHolds)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	holdService := service.NewHoldService(
		holdStore,
		catalogService,
		availability.Gate{Windows: windowService},
		hub,
		slotSealer,
		producer,
		validator.NewHoldValidator(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Hold service initialized", "store", cfg.HoldStore, "hold_ttl", cfg.HoldTTL)
	return holdService
}

func selectStore(cfg *config.Config) store.HoldStore {
	if cfg.HoldStore == "redis" {
		cfg.SetRedis()
		return store.NewRedisHoldStore(cfg.Client.Redis)
	}
	return store.NewMemoryHoldStore()
}
