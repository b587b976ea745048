// Package session authenticates requests and carries the caller's identity
// through the request context.
package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/prasetyo/kasrt/internal/auth"
	"github.com/prasetyo/kasrt/internal/group"
	"github.com/prasetyo/kasrt/internal/http/respond"
)

type contextKey struct{}

var actorKey contextKey

// Actor returns the authenticated caller. The bool is false on routes that
// did not pass through RequireAuth.
func Actor(ctx context.Context) (group.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(group.Actor)
	return actor, ok
}

// WithActor stores the caller in the context. Handler tests use it directly;
// production requests go through RequireAuth.
func WithActor(ctx context.Context, actor group.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// RequireAuth validates the Bearer token and stores the resulting actor in
// the request context.
func RequireAuth(tokens *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respond.Error(w, auth.ErrMissingToken)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				respond.Error(w, auth.ErrInvalidToken)
				return
			}

			actor, err := tokens.Validate(parts[1])
			if err != nil {
				respond.Error(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}
