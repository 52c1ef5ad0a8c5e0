package handler

import (
	"encoding/json"
	"net/http"

	"barkeep/internal/bars/service"
	apperrors "barkeep/pkg/errors"
	httputil "barkeep/pkg/http"
	"barkeep/pkg/logger"
	"barkeep/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BarHandler struct {
	bars    service.BarService
	catalog service.CatalogService
	log     *logger.Logger
}

func NewBarHandler(bars service.BarService, catalog service.CatalogService, log *logger.Logger) *BarHandler {
	return &BarHandler{
		bars:    bars,
		catalog: catalog,
		log:     log,
	}
}

func (h *BarHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var bar model.Bar
	if err := json.NewDecoder(r.Body).Decode(&bar); err != nil {
		h.writeBadBody(w, "Create")
		return
	}

	if err := h.bars.Create(r.Context(), &bar); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, bar); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BarHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bar, err := h.bars.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, bar); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *BarHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset := httputil.ExtractLimitOffset(r)

	bars, total, err := h.bars.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, bars, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "error", err)
	}
}

func (h *BarHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.BarUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		h.writeBadBody(w, "Update")
		return
	}

	if err := h.bars.Update(r.Context(), ps.ByName("id"), &updates); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BarHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.bars.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BarHandler) CreateTable(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var table model.Table
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		h.writeBadBody(w, "CreateTable")
		return
	}
	table.BarID = ps.ByName("id")

	if err := h.catalog.CreateTable(r.Context(), &table); err != nil {
		h.writeError(w, "CreateTable", err)
		return
	}

	if err := httputil.WriteCreated(w, table); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateTable", "error", err)
	}
}

func (h *BarHandler) GetTables(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tables, err := h.catalog.GetTables(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetTables", err)
		return
	}

	if err := httputil.WriteSuccess(w, tables); err != nil {
		h.log.Error("failed to write success response", "handler", "GetTables", "error", err)
	}
}

func (h *BarHandler) SetTableStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Status model.TableStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeBadBody(w, "SetTableStatus")
		return
	}

	if err := h.catalog.SetTableStatus(r.Context(), ps.ByName("tableId"), body.Status); err != nil {
		h.writeError(w, "SetTableStatus", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BarHandler) CreateDrink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var drink model.Drink
	if err := json.NewDecoder(r.Body).Decode(&drink); err != nil {
		h.writeBadBody(w, "CreateDrink")
		return
	}
	drink.BarID = ps.ByName("id")

	if err := h.catalog.CreateDrink(r.Context(), &drink); err != nil {
		h.writeError(w, "CreateDrink", err)
		return
	}

	if err := httputil.WriteCreated(w, drink); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateDrink", "error", err)
	}
}

func (h *BarHandler) GetDrinks(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	drinks, err := h.catalog.GetDrinks(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetDrinks", err)
		return
	}

	if err := httputil.WriteSuccess(w, drinks); err != nil {
		h.log.Error("failed to write success response", "handler", "GetDrinks", "error", err)
	}
}

func (h *BarHandler) writeBadBody(w http.ResponseWriter, handler string) {
	if err := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); err != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", err)
	}
}

func (h *BarHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

func (h *BarHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bars", h.Create)
	router.GET("/api/v1/bars", h.GetAll)
	router.GET("/api/v1/bars/id/:id", h.GetByID)
	router.PATCH("/api/v1/bars/id/:id", h.Update)
	router.DELETE("/api/v1/bars/id/:id", h.Delete)

	router.POST("/api/v1/bars/id/:id/tables", h.CreateTable)
	router.GET("/api/v1/bars/id/:id/tables", h.GetTables)
	router.PATCH("/api/v1/tables/id/:tableId/status", h.SetTableStatus)

	router.POST("/api/v1/bars/id/:id/drinks", h.CreateDrink)
	router.GET("/api/v1/bars/id/:id/drinks", h.GetDrinks)
}
