package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-places/internal/app"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the resulting
// [models.Identity] in the request context (see [utils.WithIdentity]).
//
// Preflight (OPTIONS) requests pass through untouched. A missing or
// malformed header is answered with 403, a token that fails validation
// with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, ErrEmptyAuthorizationHeader), "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
			writeError(w, r, NewHTTPError(app.MsgNotAuthenticated, http.StatusForbidden, err), "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, NewHTTPError(app.MsgAuthFailed, http.StatusUnauthorized, err), "")
			return
		}

		identity := token.Identity()
		ctx = utils.WithIdentity(ctx, identity)

		// downstream log entries carry the caller
		l := logger.FromRequest(r).With().Str("user_id", identity.UserID).Logger()
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
