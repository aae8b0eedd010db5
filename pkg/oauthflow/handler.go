package oauthflow

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Handler serves the provider redirect-back endpoint. Each request is one
// navigation and gets its own one-shot Completer; the response is always
// a redirect, so the credential never survives in a visible URL.
type Handler struct {
	session SessionCompleter
	cfg     Config
	logger  *slog.Logger
}

// HandlerOption configures a Handler during construction.
type HandlerOption func(*Handler)

// WithHandlerLogger configures the logger for the handler and the
// completers it spawns.
func WithHandlerLogger(l *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = l
	}
}

// NewHandler creates the completion endpoint over the session manager.
func NewHandler(sess SessionCompleter, cfg Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		session: sess,
		cfg:     cfg,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	completer := New(h.session,
		WithRetry(h.cfg.RetryAttempts, h.cfg.RetryDelay),
		WithLogger(h.logger),
	)

	result := completer.Run(r.Context(), r.URL.Query())

	target := h.cfg.FailureURL
	if result == ResultSuccess {
		target = h.cfg.SuccessURL
	}

	h.logger.InfoContext(r.Context(), "oauth completion finished",
		slog.String("result", result.String()),
		logger.Component("oauthflow"),
	)

	// See Other drops the token-bearing URL from the location bar and
	// prevents resubmission on back navigation.
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Handle returns the handler as an http.Handler, matching the mounting
// convention used across service routers.
func (h *Handler) Handle() http.Handler {
	return h
}

// Routes mounts the completion endpoint on a fresh chi router:
//
//	r.Mount("/auth", oauthflow.Routes(handler))
//
// exposes GET /auth/complete.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/complete", h.ServeHTTP)
	return r
}
