package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/export"
	"github.com/heartmarshall/premier-dashboard/internal/service/dashboard"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

// maxBodyBytes bounds create and update payloads.
const maxBodyBytes = 64 << 10

// workspace defines what EntityHandler needs from the dashboard.
type workspace interface {
	Resource(e domain.EntityType) (dashboard.Resource, error)
	Export(ctx context.Context, e domain.EntityType, q table.Query) ([]byte, string, error)
	ExportAll(ctx context.Context) ([]byte, string, error)
}

// EntityHandler serves the CRUD, stats and export endpoints of every entity.
// The entity is taken from the {entity} path value.
type EntityHandler struct {
	ws  workspace
	log *slog.Logger
}

// NewEntityHandler creates an EntityHandler.
func NewEntityHandler(ws workspace, logger *slog.Logger) *EntityHandler {
	return &EntityHandler{ws: ws, log: logger.With("handler", "entity")}
}

type listResponse struct {
	Entity string          `json:"entity"`
	Query  string          `json:"q,omitempty"`
	Sort   table.SortState `json:"sort"`
	Items  any             `json:"items"`
}

// List handles GET /api/{entity}?q=&sort=&dir=.
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}

	q := queryFromRequest(r)
	items, err := res.List(q)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Entity: res.Entity().String(),
		Query:  q.Search,
		Sort:   q.Sort,
		Items:  items,
	})
}

// Get handles GET /api/{entity}/{id}.
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, id, ok := h.resourceAndID(w, r)
	if !ok {
		return
	}

	rec, err := res.Get(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Create handles POST /api/{entity}.
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	rec, err := res.Create(r.Context(), fields)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// Update handles PUT /api/{entity}/{id}. Fields absent from the body keep
// their stored value.
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	res, id, ok := h.resourceAndID(w, r)
	if !ok {
		return
	}
	fields, ok := decodeFields(w, r)
	if !ok {
		return
	}

	rec, err := res.Update(r.Context(), id, fields)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /api/{entity}/{id}.
func (h *EntityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res, id, ok := h.resourceAndID(w, r)
	if !ok {
		return
	}

	if err := res.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/{entity}/stats.
func (h *EntityHandler) Stats(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res.Stats())
}

// Export handles GET /api/{entity}/export?q=&sort=&dir=. The workbook holds
// the current view; an empty view answers 422.
func (h *EntityHandler) Export(w http.ResponseWriter, r *http.Request) {
	e := domain.EntityType(r.PathValue("entity"))
	data, name, err := h.ws.Export(r.Context(), e, queryFromRequest(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeFile(w, export.ContentType, name, data)
}

// ExportAll handles GET /api/export.
func (h *EntityHandler) ExportAll(w http.ResponseWriter, r *http.Request) {
	data, name, err := h.ws.ExportAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeFile(w, export.ContentType, name, data)
}

func (h *EntityHandler) resource(w http.ResponseWriter, r *http.Request) (dashboard.Resource, bool) {
	res, err := h.ws.Resource(domain.EntityType(r.PathValue("entity")))
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return res, true
}

func (h *EntityHandler) resourceAndID(w http.ResponseWriter, r *http.Request) (dashboard.Resource, domain.ID, bool) {
	res, ok := h.resource(w, r)
	if !ok {
		return nil, 0, false
	}
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, 0, false
	}
	return res, id, true
}

func queryFromRequest(r *http.Request) table.Query {
	v := r.URL.Query()
	return table.Query{
		Search: v.Get("q"),
		Sort: table.SortState{
			Key: v.Get("sort"),
			Dir: table.ParseDirection(v.Get("dir")),
		},
	}
}

func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return fields, true
}
