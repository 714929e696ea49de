package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/garunski/telemetry-buffer/pkg/buffer/connectivity"
	apperrors "github.com/garunski/telemetry-buffer/pkg/buffer/errors"
	"github.com/garunski/telemetry-buffer/pkg/buffer/store"
)

// Flusher is the slice of the engine the diagnostics API needs: trigger a
// flush and report the retention limit.
type Flusher interface {
	SendEvents(ctx context.Context) error
	MaxStoredEvents() int
}

type Handler struct {
	logger  logr.Logger
	store   store.EventStore
	flusher Flusher
	signal  connectivity.Signal
}

func NewHandler(logger logr.Logger, st store.EventStore, flusher Flusher, signal connectivity.Signal) *Handler {
	return &Handler{
		logger:  logger,
		store:   st,
		flusher: flusher,
		signal:  signal,
	}
}

func (h *Handler) SetupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Get("/healthz", h.Healthz)
	})

	r.Route("/api/pending", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", h.ListPending)
		r.Delete("/", h.PurgePending)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(10 * time.Second))
		r.Get("/api/stats", h.GetStats)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		r.Post("/api/flush", h.TriggerFlush)
	})

	return r
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}

type StatsResponse struct {
	PendingEvents   int    `json:"pendingEvents"`
	MaxStoredEvents int    `json:"maxStoredEvents"`
	Connectivity    string `json:"connectivity"`
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: pending store not available", apperrors.ErrStoreIterate))
		return
	}

	pending, err := h.store.List()
	if err != nil {
		h.logger.Error(err, "failed to list pending events")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, pending)
}

func (h *Handler) PurgePending(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: pending store not available", apperrors.ErrStoreRemove))
		return
	}

	if err := h.store.Purge(); err != nil {
		h.logger.Error(err, "failed to purge pending events")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Pending events purged"})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: pending store not available", apperrors.ErrStoreIterate))
		return
	}

	count, err := h.store.Count()
	if err != nil {
		h.logger.Error(err, "failed to count pending events")
		WriteError(w, h.logger, err)
		return
	}

	stats := StatsResponse{
		PendingEvents:   count,
		MaxStoredEvents: h.flusher.MaxStoredEvents(),
		Connectivity:    h.signal.State().String(),
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, stats)
}

func (h *Handler) TriggerFlush(w http.ResponseWriter, r *http.Request) {
	if h.flusher == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: engine not available", apperrors.ErrSinkUnavailable))
		return
	}

	if err := h.flusher.SendEvents(r.Context()); err != nil {
		h.logger.Error(err, "failed to flush pending events")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, map[string]string{"message": "Flush completed"})
}
