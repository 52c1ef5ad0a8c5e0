package main

import (
	"context"

	accountsrepo "barkeep/internal/accounts/repository"
	accounts "barkeep/internal/accounts/service"
	availrepo "barkeep/internal/availability/repository"
	availability "barkeep/internal/availability/service"
	availvalidator "barkeep/internal/availability/validator"
	barsrepo "barkeep/internal/bars/repository"
	bars "barkeep/internal/bars/service"
	barsvalidator "barkeep/internal/bars/validator"
	"barkeep/internal/bookings/handler"
	"barkeep/internal/bookings/repository"
	"barkeep/internal/bookings/service"
	"barkeep/internal/bookings/validator"
	"barkeep/internal/payments"
	"barkeep/internal/ticketing"
	"barkeep/pkg/app"
	"barkeep/pkg/config"
	"barkeep/pkg/kafka"
	kafka_config "barkeep/pkg/kafka/config"
	"barkeep/pkg/model"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bookings service")
	bookingService := initServices(cfg)
	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewBookingHandler(bookingService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.BookingService {
	accountService := accounts.NewAccountService(
		accountsrepo.NewMongoAccountRepository(cfg),
		cfg,
	)

	barValidator := barsvalidator.NewBarValidator(cfg.Log)
	barRepo := barsrepo.NewMongoBarRepository(cfg)
	barService := bars.NewBarService(barRepo, barValidator, cfg)
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

	ticketStore, err := ticketing.NewLocalImageStore(cfg.TicketDir, cfg.TicketBaseURL)
	if err != nil {
		cfg.Log.Fatal("Failed to prepare ticket storage", "error", err, "dir", cfg.TicketDir)
	}

	producer, err := kafka.NewProducer(kafka_config.Load(), kafka.TopicBookingEvents, kafka.DLQBookings)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	bookingService := service.NewBookingService(
		repository.NewMongoBookingRepository(cfg),
		accountService,
		&barCatalog{bars: barService, catalog: catalogService},
		availability.Gate{Windows: windowService},
		ticketing.NewGenerator(cfg.TicketSecret, ticketStore),
		payments.NewHTTPLinker(cfg.PaymentBaseURL),
		producer,
		validator.NewBookingValidator(cfg.Log),
		cfg,
	)

	cfg.Log.Info("Booking service initialized", "database", cfg.MongoDatabaseName)
	return bookingService
}

// barCatalog narrows the bars services to what the booking pipeline needs.
type barCatalog struct {
	bars    bars.BarService
	catalog bars.CatalogService
}

func (c *barCatalog) FindBar(ctx context.Context, id string) (*model.Bar, error) {
	return c.bars.GetByID(ctx, id)
}

func (c *barCatalog) FindTablesByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
	return c.catalog.GetTablesByIDs(ctx, barID, ids)
}

func (c *barCatalog) FindDrinksByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
	return c.catalog.GetDrinksByIDs(ctx, barID, ids)
}

func (c *barCatalog) SetTableOccupied(ctx context.Context, tableID string) error {
	return c.catalog.SetTableStatus(ctx, tableID, model.TableOccupied)
}
