package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubValidator accepts exactly one token.
type stubValidator struct {
	token  string
	claims *models.Claims
}

func (s *stubValidator) ValidateToken(_ context.Context, token string) (*models.Claims, error) {
	if token != s.token {
		return nil, errors.New("token rejected")
	}

	return s.claims, nil
}

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	validator := &stubValidator{
		token:  "good-token",
		claims: &models.Claims{UserID: "u1", Email: "lan@example.com", DeviceID: "d1"},
	}
	authMiddleware := middleware.NewAuthMiddleware(validator)

	mockNextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, "u1", claims.UserID)

		deviceID, ok := middleware.DeviceFromContext(r.Context())
		require.True(t, ok, "Device should be in context")
		assert.Equal(t, "d1", deviceID)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		deviceHeader   string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer good-token",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Success - Matching Device Header",
			authHeader:     "Bearer good-token",
			deviceHeader:   "d1",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Authorization header is required"}}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:     "good-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid authorization format"}}`,
		},
		{
			name:           "Fail - Revoked Token",
			authHeader:     "Bearer old-token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Invalid or revoked token"}}`,
		},
		{
			name:           "Fail - Token From Another Device",
			authHeader:     "Bearer good-token",
			deviceHeader:   "d2",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "Token was issued to another device"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			if tc.deviceHeader != "" {
				req.Header.Set(middleware.DeviceHeader, tc.deviceHeader)
			}

			// Add a base logger to the context, simulating the Logging middleware
			baseLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
			req = req.WithContext(middleware.WithLogger(req.Context(), baseLogger))

			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(mockNextHandler).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Unexpected response body")
		})
	}
}

func TestNewAuthMiddleware(t *testing.T) {
	mw := middleware.NewAuthMiddleware(&stubValidator{})
	assert.NotNil(t, mw, "Middleware should not be nil")
}
