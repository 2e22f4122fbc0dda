package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

const tokenCookieName = "token"

type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (auth.Identity, error)
}

type AuthMiddlewareHandler struct {
	resolver     tokenResolver
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(resolver tokenResolver) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		resolver: resolver,
		allowedPaths: map[string]bool{
			"/health": true,

			// account:
			"/login":           true,
			"/logout":          true,
			"/register":        true,
			"/forgot-password": true,
			"/verify-token":    true,
		},
	}
}

// AuthCheck resolves the "token" cookie into the request identity.
// Everything outside the public paths answers 401 without a valid token.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(tokenCookieName)
			if err != nil || cookie.Value == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteStatusResponse(w, false, "Unauthorized", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			identity, err := h.resolver.ResolveToken(ctx, cookie.Value)
			if err != nil {
				if !errors.Is(err, auth.ErrInvalidToken) {
					log.Errorf("[failed token check] => %s: %s", r.URL.Path, err)
					span.RecordError(err)
				} else {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				}
				pkg.WriteStatusResponse(w, false, "Invalid or expired token", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
