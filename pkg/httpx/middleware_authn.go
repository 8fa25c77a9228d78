package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/journal/pkg/slogx"
)

// ErrMissingBearer is passed to the ErrorWriter when no bearer token is sent.
var ErrMissingBearer = errors.New("missing bearer token")

// TokenVerifier resolves a bearer token to the identity it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// AuthnMiddleware requires a valid "Authorization: Bearer" header and puts
// the verified identity into the request context. Failures go to onError,
// or a bare RFC 6750 401 when onError is nil.
func AuthnMiddleware(v TokenVerifier, onError ErrorWriter) Middleware {
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			WriteBearerChallenge(w, "invalid_token", "token verification failed")
			w.WriteHeader(http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := BearerToken(r)
			if !ok {
				onError(w, r, ErrMissingBearer)
				return
			}

			identity, err := v.Verify(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Info("bearer token rejected", "err", err)
				onError(w, r, err)
				return
			}

			ctx = WithIdentity(ctx, identity)
			ctx = slogx.WithContext(ctx, slogx.FromContext(ctx).With("identity", identity))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WriteBearerChallenge sets an RFC 6750 WWW-Authenticate header. The caller
// still writes the status and body.
func WriteBearerChallenge(w http.ResponseWriter, code, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="`+code+`", error_description="`+desc+`"`)
}
