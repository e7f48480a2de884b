package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
)

// DeviceRegistry hands out the session and cart of a device.
type DeviceRegistry interface {
	Get(ctx context.Context, deviceID string) (*service.Device, error)
}

// resolveDevice loads the device named by the request context, writing the
// error response when it can not.
func resolveDevice(w http.ResponseWriter, r *http.Request, devices DeviceRegistry) (*service.Device, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	deviceID, ok := middleware.DeviceFromContext(r.Context())
	if !ok {
		logger.Warn("Request without device")
		response.Error(w, errors.BadRequestError("X-Device-ID header is required"))
		return nil, logger, false
	}

	device, err := devices.Get(r.Context(), deviceID)
	if err != nil {
		logger.Error("Failed to load device", slog.String("error", err.Error()))
		response.Error(w, err)
		return nil, logger, false
	}

	return device, logger, true
}

// resolveUser is resolveDevice for routes behind Authenticate.
func resolveUser(w http.ResponseWriter, r *http.Request, devices DeviceRegistry) (*service.Device, *models.User, *slog.Logger, bool) {

	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized access attempt: missing user claims")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, nil, logger, false
	}

	device, logger, ok := resolveDevice(w, r, devices)
	if !ok {
		return nil, nil, logger, false
	}

	user, ok := device.Session.User()
	if !ok || user.ID != claims.UserID {
		logger.Warn("Session no longer signed in")
		response.Error(w, errors.UnauthorizedError("Authentication required"))
		return nil, nil, logger, false
	}

	return device, user, logger, true
}
