package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/plantshop/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHandler(t *testing.T) {
	t.Run("Success - Add Then Read", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		signedInDevice(t, devices)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"1","quantity":2}`), testDeviceID, testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var snapshot models.CartSnapshot
		resp := decodeResponse(t, recorder, &snapshot)
		assert.True(t, resp.Success)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, 2, snapshot.Items[0].Quantity)
		assert.Equal(t, int64(500000), snapshot.Total)
		assert.Equal(t, "500.000đ", snapshot.FormattedTotal)

		recorder = httptest.NewRecorder()
		cartHandler.GetCart()(recorder, testutils.CreateTestRequestWithContext(http.MethodGet, "/cart", nil, testDeviceID, testUserID, nil))
		assert.Equal(t, http.StatusOK, recorder.Code)
		snapshot = models.CartSnapshot{}
		decodeResponse(t, recorder, &snapshot)
		assert.Len(t, snapshot.Items, 1)
	})

	t.Run("Success - Zero Quantity Removes Line", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		device := signedInDevice(t, devices)
		require.NoError(t, device.Cart.AddItem(t.Context(), "1", 3))
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/cart/items/1", strings.NewReader(`{"quantity":0}`), testDeviceID, testUserID, map[string]string{"productId": "1"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var snapshot models.CartSnapshot
		decodeResponse(t, recorder, &snapshot)
		assert.Empty(t, snapshot.Items)
		assert.Equal(t, int64(0), snapshot.Total)
	})

	t.Run("Failure - Missing Quantity", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		signedInDevice(t, devices)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/cart/items/1", strings.NewReader(`{}`), testDeviceID, testUserID, map[string]string{"productId": "1"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.UpdateQuantity()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Failure - Quantity Above Limit", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		device := signedInDevice(t, devices)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/cart/items", strings.NewReader(`{"productId":"1","quantity":9223372036854775807}`), testDeviceID, testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.AddItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Empty(t, device.Cart.Lines())
	})

	t.Run("Failure - Remove Missing Line", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		signedInDevice(t, devices)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart/items/9", nil, testDeviceID, testUserID, map[string]string{"productId": "9"})
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.RemoveItem()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Success - Clear", func(t *testing.T) {
		// Arrange
		backend, devices := setupDevices(t)
		device := signedInDevice(t, devices)
		require.NoError(t, device.Cart.AddItem(t.Context(), "1", 1))
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/cart", nil, testDeviceID, testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.ClearCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, backend.CartsOf(testUserID))
		assert.Empty(t, device.Cart.Lines())
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithDevice(http.MethodGet, "/cart", nil, testDeviceID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Contains(t, resp.Error.Message, "Authentication required")
	})

	t.Run("Failure - Claims For Signed Out Device", func(t *testing.T) {
		// Arrange
		_, devices := setupDevices(t)
		cartHandler := handlers.NewCartHandler(devices)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/cart", nil, testDeviceID, testUserID, nil)
		recorder := httptest.NewRecorder()

		// Act
		cartHandler.GetCart()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
