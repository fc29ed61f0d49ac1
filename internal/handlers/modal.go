package handlers

import (
	"net/http"
)

// OpenModal handles the "Sign up free" control.
func (h *Handlers) OpenModal(w http.ResponseWriter, r *http.Request) {
	l := h.ui.Load(r)
	l.OpenModal()
	h.saveLayout(w, l)

	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// CloseModal handles the close callback from the modal and the auth form's Cancel.
func (h *Handlers) CloseModal(w http.ResponseWriter, r *http.Request) {
	h.closeModal(w, r)

	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

func (h *Handlers) closeModal(w http.ResponseWriter, r *http.Request) {
	l := h.ui.Load(r)
	l.CloseModal()
	h.saveLayout(w, l)
}
