package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campaign-tracker/internal/adapter/usecase"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the campaign page. The page state (campaign list, draft form
// and confirmation dialog) is shared by every request: the tracker is a
// single-user tool.
type Handler struct {
	list   *usecase.CampaignList
	form   *usecase.Form
	dialog *usecase.Dialog
	logger *slog.Logger
	router chi.Router
}

// Option customises a Handler.
type Option func(*handlerOptions)

type handlerOptions struct {
	metrics bool
}

// WithMetrics exposes Prometheus metrics on /metrics.
func WithMetrics(enabled bool) Option {
	return func(o *handlerOptions) { o.metrics = enabled }
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(list *usecase.CampaignList, logger *slog.Logger, opts ...Option) *Handler {
	var o handlerOptions
	for _, opt := range opts {
		opt(&o)
	}

	h := &Handler{
		list:   list,
		form:   usecase.NewForm(),
		dialog: usecase.NewDialog(),
		logger: logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/", h.handlePage)
	r.Post("/campaigns", h.handleCreate)
	r.Post("/campaigns/{id}/delete", h.handleDelete)
	r.Post("/reload", h.handleReload)
	r.Post("/error/dismiss", h.handleDismiss)
	r.Get("/healthz", h.handleHealth)
	if o.metrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
