package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	availerrors "barkeep/internal/availability/errors"
	"barkeep/internal/availability/service"
	apperrors "barkeep/pkg/errors"
	httputil "barkeep/pkg/http"
	"barkeep/pkg/logger"
	"barkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type WindowHandler struct {
	service service.WindowService
	log     *logger.Logger
}

func NewWindowHandler(service service.WindowService, log *logger.Logger) *WindowHandler {
	return &WindowHandler{
		service: service,
		log:     log,
	}
}

func (h *WindowHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var window model.OperatingWindow
	if err := json.NewDecoder(r.Body).Decode(&window); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &window); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, window); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *WindowHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	window, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, window); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WindowHandler) GetByBar(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	windows, err := h.service.GetByBar(r.Context(), ps.ByName("barId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByBar", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, windows); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByBar", "operation", "WriteSuccess", "error", err)
	}
}

// Resolve answers whether a bar is open at date+clock and which window
// applies. Closed slots come back as 422 so callers can distinguish
// them from transport failures.
func (h *WindowHandler) Resolve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	query := r.URL.Query()
	date := query.Get("date")
	clock := query.Get("clock")

	if date == "" || clock == "" {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Both 'date' and 'clock' query parameters are required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Resolve", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	window, err := h.service.ResolveWindow(r.Context(), ps.ByName("barId"), date, clock)
	if err != nil {
		if errors.Is(err, availerrors.ErrNoWindow) {
			err = apperrors.NotFound("Operating window for the requested date")
		} else if errors.Is(err, availerrors.ErrOutsideWindow) {
			err = apperrors.Validation("Requested clock is outside the bar's operating window", nil)
		}
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Resolve", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, window); err != nil {
		h.log.Error("failed to write success response", "handler", "Resolve", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WindowHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WindowHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/windows", h.Create)
	router.GET("/api/v1/windows/id/:id", h.GetByID)
	router.DELETE("/api/v1/windows/id/:id", h.Delete)
	router.GET("/api/v1/bars/:barId/windows", h.GetByBar)
	router.GET("/api/v1/bars/:barId/windows/resolve", h.Resolve)
}
