package main

import (
	"barkeep/internal/bars/handler"
	"barkeep/internal/bars/repository"
	"barkeep/internal/bars/service"
	"barkeep/internal/bars/validator"
	"barkeep/pkg/app"
	"barkeep/pkg/config"
)

const ServiceName = "bars"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Bars service")
	barService, catalogService := initServices(cfg)
	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewBarHandler(barService, catalogService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) (service.BarService, service.CatalogService) {
	barValidator := validator.NewBarValidator(cfg.Log)
	barRepo := repository.NewMongoBarRepository(cfg)

	barService := service.NewBarService(barRepo, barValidator, cfg)
	catalogService := service.NewCatalogService(
		barRepo,
		repository.NewMongoTableRepository(cfg),
		repository.NewMongoDrinkRepository(cfg),
		barValidator,
		cfg,
	)

	cfg.Log.Info("Bars service initialized", "database", cfg.MongoDatabaseName)
	return barService, catalogService
}
