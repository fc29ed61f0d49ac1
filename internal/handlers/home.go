package handlers

import (
	"net/http"

	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
	"github.com/caffeinetrackr/caffeinetrackr/internal/middleware"
	"github.com/caffeinetrackr/caffeinetrackr/internal/templates/components"
	"github.com/caffeinetrackr/caffeinetrackr/internal/templates/pages"
)

// Home renders the landing page inside the visitor's layout.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.Home(h.ui.Load(r), pageFor(r)))
}

// Account shows the signed-in user's account.
func (h *Handlers) Account(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pages.Account(h.ui.Load(r), pageFor(r)))
}

// pageFor collects what one render of the layout reads from the request.
func pageFor(r *http.Request) layout.Page {
	query := r.URL.Query()

	return layout.Page{
		Session:   middleware.GetSession(r.Context()),
		Path:      r.URL.Path,
		AuthMode:  components.ParseAuthMode(query.Get("auth")),
		AuthError: query.Get("error"),
	}
}
