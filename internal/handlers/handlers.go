package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
	"github.com/caffeinetrackr/caffeinetrackr/internal/middleware"
)

// Authenticator is the authentication context the handlers delegate to.
type Authenticator interface {
	SignUp(ctx context.Context, w http.ResponseWriter, email, password string) (*auth.User, error)
	Login(ctx context.Context, w http.ResponseWriter, email, password string) (*auth.User, error)
	Logout(w http.ResponseWriter)
}

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	auth   Authenticator
	ui     *layout.StateStore
	logger *slog.Logger
}

// New creates a new Handlers instance with all dependencies.
func New(authenticator Authenticator, ui *layout.StateStore, logger *slog.Logger) *Handlers {
	return &Handlers{
		auth:   authenticator,
		ui:     ui,
		logger: logger,
	}
}

// Mount registers the page and event routes on r. Event routes are the
// ones the layout renders its controls against. Session loading is
// expected to run earlier in the middleware chain.
func (h *Handlers) Mount(r chi.Router) {
	routes := h.ui.Routes()

	r.Get("/", h.Home)

	// Layout events
	r.Post(routes.OpenModal, h.OpenModal)
	r.Post(routes.CloseModal, h.CloseModal)

	// Authentication
	r.Post(routes.SignUp, h.SignUp)
	r.Post(routes.Login, h.Login)
	r.Post(routes.Logout, h.Logout)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/account", h.Account)
	})
}

// saveLayout persists the visitor's layout. On failure the next page
// renders with the modal hidden.
func (h *Handlers) saveLayout(w http.ResponseWriter, l *layout.Layout) {
	if err := h.ui.Save(w, l); err != nil {
		h.logger.Error("failed to save layout state", "error", err)
	}
}

// render writes a page, logging render failures.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, page templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

// returnPath reads the return form field. Only local absolute paths are
// honored; anything else returns "/". url.Parse rejects control bytes,
// which browsers would strip before resolving the Location header.
func returnPath(r *http.Request) string {
	path := r.PostFormValue("return")
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}

	u, err := url.Parse(path)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return path
}
