package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-currency-display/internal/jwt"
	"github.com/sbilibin2017/gw-currency-display/internal/logger"
)

//go:generate mockgen -source=visitor.go -destination=visitor_mock.go -package=middlewares

// VisitorTokener issues and reads visitor session tokens.
type VisitorTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	Generate(ctx context.Context, visitorID uuid.UUID) (string, error)
	SetTokenCookie(w http.ResponseWriter, token string)
}

type visitorIDKey struct{}

// VisitorMiddleware identifies the visitor from the session cookie. Visitors
// without a valid session get a fresh id and a new cookie; requests are
// never rejected.
func VisitorMiddleware(tokener VisitorTokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if tokenString, err := tokener.GetTokenFromRequest(ctx, r); err == nil {
				claims, err := tokener.GetClaims(ctx, tokenString)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithVisitorID(ctx, claims.VisitorID.String())))
					return
				}
				logger.Log.Debugw("discarding visitor session", "err", err)
			}

			visitorID := uuid.New()
			token, err := tokener.Generate(ctx, visitorID)
			if err != nil {
				logger.Log.Errorw("failed to issue visitor session", "err", err)
			} else {
				tokener.SetTokenCookie(w, token)
			}

			next.ServeHTTP(w, r.WithContext(WithVisitorID(ctx, visitorID.String())))
		})
	}
}

// WithVisitorID stores the visitor id in ctx.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorIDKey{}, visitorID)
}

// VisitorIDFromContext returns the id set by VisitorMiddleware.
func VisitorIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey{}).(string)
	return id, ok && id != ""
}
