package main

import (
	"barkeep/internal/availability/handler"
	"barkeep/internal/availability/repository"
	"barkeep/internal/availability/service"
	"barkeep/internal/availability/validator"
	"barkeep/pkg/app"
	"barkeep/pkg/config"
)

const ServiceName = "availability"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	cfg.Log.Info("Starting Availability service")
	windowService := initServices(cfg)
	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, handler.NewWindowHandler(windowService, cfg.Log))
	serverApp.Run()
}

func initServices(cfg *config.Config) service.WindowService {
	windowValidator := validator.NewWindowValidator(cfg.Log)
	windowRepo := repository.NewMongoWindowRepository(cfg)
	windowService := service.NewWindowService(
		windowRepo,
		windowValidator,
		cfg,
	)

	cfg.Log.Info("Availability service initialized", "database", cfg.MongoDatabaseName)
	return windowService
}
