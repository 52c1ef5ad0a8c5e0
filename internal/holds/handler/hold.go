package handler

import (
	"encoding/json"
	"net/http"

	"barkeep/internal/holds/broadcast"
	"barkeep/internal/holds/service"
	apperrors "barkeep/pkg/errors"
	httputil "barkeep/pkg/http"
	"barkeep/pkg/logger"
	"barkeep/pkg/middleware"
	"barkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type HoldHandler struct {
	service service.HoldService
	hub     *broadcast.Hub
	log     *logger.Logger
}

func NewHoldHandler(service service.HoldService, hub *broadcast.Hub, log *logger.Logger) *HoldHandler {
	return &HoldHandler{
		service: service,
		hub:     hub,
		log:     log,
	}
}

func (h *HoldHandler) Hold(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.HoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Hold", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	accountID, _ := middleware.AccountIDFromContext(r.Context())

	result, err := h.service.HoldTable(r.Context(), accountID, &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Hold", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Hold", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HoldHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	barID := query.Get("bar_id")
	date := query.Get("date")
	clock := query.Get("clock")

	if barID == "" || date == "" || clock == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("The 'bar_id', 'date' and 'clock' query parameters are required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	statuses, err := h.service.HoldTableList(r.Context(), barID, date, clock)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, statuses); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

// Subscribe upgrades to a websocket and streams hold notices for one bar.
func (h *HoldHandler) Subscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	accountID, _ := middleware.AccountIDFromContext(r.Context())
	broadcast.SubscribeHandler(h.hub, h.log)(w, r, ps, accountID)
}

func (h *HoldHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/holds", h.Hold)
	router.GET("/api/v1/holds", h.List)
	router.GET("/api/v1/bars/:barId/holds/feed", h.Subscribe)
}
