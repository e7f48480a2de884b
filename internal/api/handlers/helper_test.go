package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/testutils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/stretchr/testify/require"
)

const (
	testDeviceID = "device-1"
	testUserID   = "u1"
)

var (
	testUser    = models.User{ID: testUserID, Name: "Lan", Email: "lan@example.com", Password: "secret"}
	spiderPlant = models.Product{ID: "1", Name: "Spider Plant", Price: "250.000đ", Image: "spider.png", Category: models.CategoryPlant}
)

// setupDevices -> a device registry over a seeded in-memory backend
func setupDevices(t *testing.T) (*testutils.Backend, *service.Devices) {
	t.Helper()

	backend, _, devices := setupDevicesWithStorage(t)

	return backend, devices
}

func setupDevicesWithStorage(t *testing.T) (*testutils.Backend, *repository.MemoryStorageFactory, *service.Devices) {
	t.Helper()

	backend := testutils.NewBackend()
	backend.AddUser(testUser)
	backend.AddProduct(spiderPlant)
	storage := repository.NewMemoryStorageFactory()

	devices := service.NewDevices(service.DevicesConfig{
		Storage:     storage,
		Users:       backend,
		Carts:       backend,
		Products:    backend,
		Tokens:      service.NewTokenIssuer([]byte("handler-test-key")),
		JoinWorkers: 2,
	})

	return backend, storage, devices
}

// signedInDevice -> testDeviceID signed in as testUser
func signedInDevice(t *testing.T, devices *service.Devices) *service.Device {
	t.Helper()

	device, err := devices.Get(context.Background(), testDeviceID)
	require.NoError(t, err)
	_, err = device.Session.SignIn(context.Background(), testUser.Email, testUser.Password)
	require.NoError(t, err)

	return device
}

// decodeResponse -> the APIResponse envelope with Data decoded into data
func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder, data any) *response.APIResponse {
	t.Helper()

	var envelope struct {
		Success bool                    `json:"success"`
		Data    json.RawMessage         `json:"data"`
		Error   *response.ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	if data != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return &response.APIResponse{Success: envelope.Success, Error: envelope.Error}
}
