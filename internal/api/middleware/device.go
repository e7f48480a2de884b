package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
)

// DeviceHeader identifies the app installation whose local state a request
// reads and writes.
const DeviceHeader = "X-Device-ID"

type deviceContextKey struct{}

const maxDeviceIDLength = 128

// Device requires the X-Device-ID header and stores it in the request context.
func Device(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		deviceID := strings.TrimSpace(r.Header.Get(DeviceHeader))
		if deviceID == "" {
			logger.Warn("Missing device header")
			response.Error(w, errors.BadRequestError("X-Device-ID header is required"))
			return
		}

		if len(deviceID) > maxDeviceIDLength {
			logger.Warn("Device header too long", slog.Int("length", len(deviceID)))
			response.Error(w, errors.BadRequestError("X-Device-ID header is too long"))
			return
		}

		next.ServeHTTP(w, r.WithContext(WithDevice(r.Context(), deviceID)))
	}
}

func WithDevice(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, deviceContextKey{}, deviceID)
}

func DeviceFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(deviceContextKey{}).(string)
	return deviceID, ok && deviceID != ""
}
