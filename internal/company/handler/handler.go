// Package handler is the thin HTTP layer: route the identifier to the
// service, map outcomes to status codes, keep business logic out.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/metrics"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/models"
	"github.com/OpenDiscoveryBiz/dk-provider/internal/company/service"
	dErrors "github.com/OpenDiscoveryBiz/dk-provider/pkg/domain-errors"
)

const projectURL = "https://github.com/OpenDiscoveryBiz/dk-provider"

type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// RegisterRoutes wires the public endpoints onto the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleFrontpage)
	r.Get("/{id}", h.handleLookup)
}

func (h *Handler) handleFrontpage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, projectURL, http.StatusFound)
}

func (h *Handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	record, err := h.svc.Lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	metrics.Lookup("success")
	h.writeJSON(w, http.StatusOK, record, r.URL.Query().Get("pretty") != "")
}

type errorResponse struct {
	Type          string `json:"type"`
	Error         string `json:"error"`
	ErrorDetailed string `json:"error_detailed,omitempty"`
}

// writeError maps domain errors to the wire contract. Data-integrity class
// failures are reported as upstream_down with the detail preserved: callers
// cannot act on the distinction, operators can.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	metrics.Lookup(string(code))

	body := errorResponse{Type: models.TypeOfficial, Error: string(code)}
	switch code {
	case dErrors.CodeMissingID, dErrors.CodeInvalidID, dErrors.CodeNotFound:
	case dErrors.CodeUpstreamDown:
		body.ErrorDetailed = err.Error()
	default:
		code = dErrors.CodeUpstreamDown
		body.Error = string(code)
		body.ErrorDetailed = err.Error()
	}

	h.writeJSON(w, dErrors.ToHTTPStatus(code), body, false)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any, pretty bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(body); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}
