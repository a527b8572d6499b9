package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

type contextKey string

const callerKey contextKey = "caller"

// TokenValidator resolves a bearer token to the calling account
type TokenValidator interface {
	Validate(token string) (common.Address, error)
}

// WithCaller stores the authenticated account in ctx
func WithCaller(ctx context.Context, caller common.Address) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// CallerFromContext returns the authenticated account, if any
func CallerFromContext(ctx context.Context) (common.Address, bool) {
	caller, ok := ctx.Value(callerKey).(common.Address)
	return caller, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(token) == "" {
		return "", auth.ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// RequireCaller rejects requests without a valid bearer token and stores the
// token's account in the request context. onReject writes the failure response.
func RequireCaller(tokens TokenValidator, onReject func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := BearerToken(r)
			if err == nil {
				var caller common.Address
				if caller, err = tokens.Validate(raw); err == nil {
					ctx := WithCaller(r.Context(), caller)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			logger.FromContext(r.Context()).Warn(LogMsgCallerRejected, "path", r.URL.Path, "error", err)
			onReject(w, r, err)
		})
	}
}
