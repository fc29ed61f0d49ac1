package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
	"github.com/caffeinetrackr/caffeinetrackr/internal/domain"
	"github.com/caffeinetrackr/caffeinetrackr/internal/templates/components"
)

// SignUp handles the sign-up form.
func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.SignUp(r.Context(), w, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.authFailed(w, r, components.AuthModeSignUp, err)
		return
	}

	h.logger.Info("user signed up", "user_id", user.ID)
	h.authSucceeded(w, r)
}

// Login handles the log-in form.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Login(r.Context(), w, r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		h.authFailed(w, r, components.AuthModeLogin, err)
		return
	}

	h.logger.Info("user logged in", "user_id", user.ID)
	h.authSucceeded(w, r)
}

// Logout clears the session and redirects back. The layout state is left alone.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(w)
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// authSucceeded invokes the form's close callback and goes home.
func (h *Handlers) authSucceeded(w http.ResponseWriter, r *http.Request) {
	h.closeModal(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// authFailed sends the visitor back to the still-open form with an error code.
func (h *Handlers) authFailed(w http.ResponseWriter, r *http.Request, mode components.AuthMode, err error) {
	code := authErrorCode(err)
	if code == components.AuthErrorServer {
		h.logger.Error("authentication failed", "mode", mode, "error", err)
	} else {
		h.logger.Warn("authentication rejected", "mode", mode, "reason", code)
	}

	query := url.Values{
		"auth":  {string(mode)},
		"error": {code},
	}
	http.Redirect(w, r, "/?"+query.Encode(), http.StatusSeeOther)
}

func authErrorCode(err error) string {
	switch {
	case domain.IsEmailError(err):
		return components.AuthErrorInvalidEmail
	case domain.IsPasswordError(err):
		return components.AuthErrorWeakPassword
	case errors.Is(err, auth.ErrEmailTaken):
		return components.AuthErrorEmailTaken
	case errors.Is(err, auth.ErrInvalidCredentials):
		return components.AuthErrorInvalidCredentials
	default:
		return components.AuthErrorServer
	}
}
