package api

import (
	"net/http"

	checkout "barkeep/internal/checkout/core"
	"barkeep/internal/checkout/handlers"
	"barkeep/internal/checkout/service"
	"barkeep/pkg/logger"
)

func SetupRouter(clients *checkout.Clients, log *logger.Logger) *http.ServeMux {
	checkoutService := service.NewCheckoutService(clients, log)
	flowHandler := handlers.NewFlowHandler(checkoutService, log)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/checkout/execute", flowHandler.ExecuteFlow)
	mux.HandleFunc("/api/v1/checkout/flows", flowHandler.ListFlows)
	mux.HandleFunc("/api/v1/checkout/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})
	return mux
}
