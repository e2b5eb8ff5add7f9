package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dental-tracker-api/internal/config"
)

type contextKey struct{}

var claimsKey contextKey

// AuthMiddleware rejects any request without a valid bearer token and makes
// the verified claims available to handlers through the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenStr, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenStr == "" {
			config.JSON(w, http.StatusUnauthorized, config.ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("invalid bearer token")
			config.JSON(w, http.StatusUnauthorized, config.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
	})
}

func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	if !ok {
		return nil, errors.New("no user claims in context")
	}
	return claims, nil
}
