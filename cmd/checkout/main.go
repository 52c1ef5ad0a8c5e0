package main

import (
	"net/http"

	"barkeep/internal/checkout/api"
	checkout "barkeep/internal/checkout/core"
	"barkeep/pkg/client"
	"barkeep/pkg/config"
	"barkeep/pkg/sealer"
)

const ServiceName = "checkout"

func main() {
	cfg := config.Load(ServiceName)

	slotSealer, err := sealer.New(cfg.SlotTokenKey)
	if err != nil {
		cfg.Log.Fatal("Failed to initialize slot token sealer", "error", err)
	}

	clients := &checkout.Clients{
		Holds:        client.NewHoldsClient(cfg.HoldsBaseURL),
		Bookings:     client.NewBookingsClient(cfg.BookingsBaseURL),
		Bars:         client.NewBarsClient(cfg.BarsBaseURL),
		Availability: client.NewAvailabilityClient(cfg.AvailabilityBaseURL),
		Sealer:       slotSealer,
	}

	router := api.SetupRouter(clients, cfg.Log)

	addr := ":" + cfg.Port
	cfg.Log.Info("Starting Checkout API server",
		"address", addr,
		"holds_base_url", cfg.HoldsBaseURL,
		"bookings_base_url", cfg.BookingsBaseURL,
	)

	if err := http.ListenAndServe(addr, router); err != nil {
		cfg.Log.Fatal("Server failed", "error", err)
	}
}
