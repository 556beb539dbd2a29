package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"mirath/internal/estate"
	"mirath/internal/faraid"
	"mirath/pkg/platform/httputil"
	"mirath/pkg/requestcontext"
)

// Service defines the estate operations the handler delegates to.
type Service interface {
	CreateEstate(ctx context.Context, name string, netAmount float64, currency string) (*estate.Estate, error)
	GetEstate(ctx context.Context, id string) (*estate.Estate, []*estate.HeirRecord, error)
	AddHeir(ctx context.Context, estateID string, h estate.HeirRecord) (*estate.HeirRecord, error)
	ListHeirs(ctx context.Context, estateID string) ([]*estate.HeirRecord, error)
	RemoveHeir(ctx context.Context, estateID, heirID string) error
	Calculate(ctx context.Context, estateID string) (*faraid.CalculationResult, error)
	CalculateAdHoc(ctx context.Context, input faraid.EstateInput) (*faraid.CalculationResult, error)
}

// Handler wires estate endpoints to the estate service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an estate handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts estate endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/estates", h.HandleCreateEstate)
	r.Get("/estates/{estateID}", h.HandleGetEstate)
	r.Post("/estates/{estateID}/heirs", h.HandleAddHeir)
	r.Get("/estates/{estateID}/heirs", h.HandleListHeirs)
	r.Delete("/estates/{estateID}/heirs/{heirID}", h.HandleRemoveHeir)
	r.Post("/estates/{estateID}/calculate", h.HandleCalculate)
	r.Post("/faraid/calculate", h.HandleCalculateAdHoc)
}

// HandleCreateEstate handles POST /estates.
func (h *Handler) HandleCreateEstate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateEstateRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	created, err := h.service.CreateEstate(ctx, req.Name, req.NetAmount, req.Currency)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "estate created",
		"request_id", requestcontext.RequestID(ctx),
		"estate_id", created.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, created)
}

// HandleGetEstate handles GET /estates/{estateID}.
func (h *Handler) HandleGetEstate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estateID := chi.URLParam(r, "estateID")

	e, heirs, err := h.service.GetEstate(ctx, estateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if heirs == nil {
		heirs = []*estate.HeirRecord{}
	}
	httputil.WriteJSON(w, http.StatusOK, EstateResponse{Estate: e, Heirs: heirs})
}

// HandleAddHeir handles POST /estates/{estateID}/heirs.
func (h *Handler) HandleAddHeir(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estateID := chi.URLParam(r, "estateID")

	var req AddHeirRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	added, err := h.service.AddHeir(ctx, estateID, req.ToRecord())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, added)
}

// HandleListHeirs handles GET /estates/{estateID}/heirs.
func (h *Handler) HandleListHeirs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estateID := chi.URLParam(r, "estateID")

	heirs, err := h.service.ListHeirs(ctx, estateID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if heirs == nil {
		heirs = []*estate.HeirRecord{}
	}
	httputil.WriteJSON(w, http.StatusOK, heirs)
}

// HandleRemoveHeir handles DELETE /estates/{estateID}/heirs/{heirID}.
func (h *Handler) HandleRemoveHeir(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estateID := chi.URLParam(r, "estateID")
	heirID := chi.URLParam(r, "heirID")

	if err := h.service.RemoveHeir(ctx, estateID, heirID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleCalculate handles POST /estates/{estateID}/calculate.
func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	estateID := chi.URLParam(r, "estateID")
	start := time.Now()

	result, err := h.service.Calculate(ctx, estateID)
	if err != nil {
		h.logger.ErrorContext(ctx, "calculation failed",
			"request_id", requestcontext.RequestID(ctx),
			"estate_id", estateID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "calculation completed",
		"request_id", requestcontext.RequestID(ctx),
		"estate_id", estateID,
		"case", result.Case,
		"heirs", len(result.Heirs),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleCalculateAdHoc handles POST /faraid/calculate.
func (h *Handler) HandleCalculateAdHoc(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CalculateRequest
	if err := httputil.Decode(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.CalculateAdHoc(ctx, faraid.EstateInput{
		Amount: req.EstateAmount,
		Heirs:  req.Heirs,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}
