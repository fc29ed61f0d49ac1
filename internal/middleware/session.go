package middleware

import (
	"context"
	"net/http"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
)

type contextKey string

// SessionContextKey is the context key for the session.
const SessionContextKey contextKey = "session"

// SessionLoader reads the current session from a request.
type SessionLoader interface {
	CurrentUser(r *http.Request) *auth.SessionData
}

// Session returns a middleware that loads the session into the request context.
func Session(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session := loader.CurrentUser(r); session != nil {
				r = r.WithContext(WithSession(r.Context(), session))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *auth.SessionData) context.Context {
	return context.WithValue(ctx, SessionContextKey, session)
}

// GetSession retrieves the session from context.
func GetSession(ctx context.Context) *auth.SessionData {
	session, ok := ctx.Value(SessionContextKey).(*auth.SessionData)
	if !ok {
		return nil
	}
	return session
}
