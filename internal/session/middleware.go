package session

import (
	"context"
	"net/http"
	"strings"

	"Isfahan/pkg/kit"
)

type ctxKey string

const identityKey ctxKey = "identity"

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// RequireUser gates a route on a valid bearer token and puts the token's
// identity on the request context.
func RequireUser(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identityFromRequest(jwt, r)
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "login required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin additionally checks the admin flag.
func RequireAdmin(jwt *TokenMaker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identityFromRequest(jwt, r)
			if !ok {
				kit.WriteError(w, r, http.StatusUnauthorized, "login required", nil)
				return
			}
			if !id.IsAdmin {
				kit.WriteError(w, r, http.StatusForbidden, "admin only", nil)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func identityFromRequest(jwt *TokenMaker, r *http.Request) (Identity, bool) {
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return Identity{}, false
	}

	claims, err := jwt.Parse(strings.TrimPrefix(authz, "Bearer "))
	if err != nil || claims.UserID == "" {
		return Identity{}, false
	}

	return Identity{
		ID:      claims.UserID,
		Email:   claims.Email,
		Name:    claims.Name,
		IsAdmin: claims.IsAdmin,
	}, true
}
