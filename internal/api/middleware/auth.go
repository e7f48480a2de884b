package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
)

type userContextKey struct{}

var UserContextKey = userContextKey{}

// TokenValidator checks a userToken against the issuing device's session.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.Claims, error)
}

type AuthMiddleware struct {
	validator TokenValidator
}

func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {

	return &AuthMiddleware{validator: validator}

}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims, err := m.validator.ValidateToken(r.Context(), tokenParts[1])
		if err != nil {
			logger.Warn("Token rejected", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid or revoked token"))
			return
		}

		// The device header, when sent, must agree with the token.
		if headerDevice := r.Header.Get(DeviceHeader); headerDevice != "" && headerDevice != claims.DeviceID {
			logger.Warn("Device mismatch", slog.String("tokenDevice", claims.DeviceID))
			response.Error(w, errors.UnauthorizedError("Token was issued to another device"))
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = WithDevice(ctx, claims.DeviceID)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID), slog.String("device_id", claims.DeviceID))
		ctx = WithLogger(ctx, requestScopedLogger)

		requestScopedLogger.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok
}
