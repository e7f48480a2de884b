package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/plantshop/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler(t *testing.T) {
	backend := testutils.NewBackend()
	backend.AddProduct(spiderPlant)
	backend.AddProduct(models.Product{ID: "2", Name: "Ceramic Pot", Price: "120.000đ", Category: models.CategoryPot})
	productHandler := handlers.NewProductHandler(service.NewCatalogService(backend))

	t.Run("Success - Filter By Category", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products?category=chauCayTrong", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		var products []models.Product
		decodeResponse(t, recorder, &products)
		require.Len(t, products, 1)
		assert.Equal(t, "2", products[0].ID)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		// Arrange
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/products/99", nil, map[string]string{"id": "99"})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, appErrors.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("Failure - Create Invalid Category", func(t *testing.T) {
		// Arrange
		body := `{"name":"Fern","price":"90.000đ","image":"fern.png","category":"trees"}`
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/products", strings.NewReader(body), nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, 0, backend.Calls("CreateProduct"))
	})
}

func TestContentHandler(t *testing.T) {
	backend := testutils.NewBackend()
	backend.AddGuide(models.PlantCareGuide{ID: 1, Name: "Monstera"})
	backend.SetFAQs([]models.FAQ{{ID: 1, Question: "Ship?", Answer: "Yes"}})
	contentHandler := handlers.NewContentHandler(service.NewContentService(backend))

	t.Run("Success - Guide", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/plant-care-guides/1", nil, map[string]string{"id": "1"})
		recorder := httptest.NewRecorder()

		contentHandler.GetPlantCareGuide()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var guide models.PlantCareGuide
		decodeResponse(t, recorder, &guide)
		assert.Equal(t, "Monstera", guide.Name)
	})

	t.Run("Failure - Non Numeric Guide Id", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/plant-care-guides/abc", nil, map[string]string{"id": "abc"})
		recorder := httptest.NewRecorder()

		contentHandler.GetPlantCareGuide()(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeResponse(t, recorder, nil)
		assert.Equal(t, "Invalid guide id", resp.Error.Message)
	})

	t.Run("Success - FAQs", func(t *testing.T) {
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/faqs", nil, nil)
		recorder := httptest.NewRecorder()

		contentHandler.ListFAQs()(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var faqs []models.FAQ
		decodeResponse(t, recorder, &faqs)
		assert.Len(t, faqs, 1)
	})

	t.Run("Failure - Backend Down", func(t *testing.T) {
		down := testutils.NewBackend()
		down.SetErr(appErrors.ThirdPartyError("Network request failed"))
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/notifications", nil, nil)
		recorder := httptest.NewRecorder()

		handlers.NewContentHandler(service.NewContentService(down)).ListNotifications()(recorder, req)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
	})
}

func TestSearchHandler(t *testing.T) {
	// Arrange
	backend, devices := setupDevices(t)
	searchHandler := handlers.NewSearchHandler(devices, service.NewSearchService(service.NewCatalogService(backend)))

	save := func(q string) {
		req := testutils.CreateTestRequestWithDevice(http.MethodPost, "/search/history", strings.NewReader(`{"query":"`+q+`"}`), testDeviceID, nil)
		recorder := httptest.NewRecorder()
		searchHandler.SaveQuery()(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	// Act
	save("fern")
	save("spider")
	save("fern")

	recorder := httptest.NewRecorder()
	searchHandler.History()(recorder, testutils.CreateTestRequestWithDevice(http.MethodGet, "/search/history", nil, testDeviceID, nil))

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	var history []models.SearchEntry
	decodeResponse(t, recorder, &history)
	require.Len(t, history, 2)
	assert.Equal(t, "fern", history[0].Name)

	recorder = httptest.NewRecorder()
	searchHandler.RemoveQuery()(recorder, testutils.CreateTestRequestWithDevice(http.MethodDelete, "/search/history/fern", nil, testDeviceID, map[string]string{"name": "fern"}))
	history = nil
	decodeResponse(t, recorder, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "spider", history[0].Name)

	recorder = httptest.NewRecorder()
	searchHandler.Search()(recorder, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/search?q=spider", nil, nil))
	var products []models.Product
	decodeResponse(t, recorder, &products)
	assert.Len(t, products, 1)
}

func TestProfileHandler(t *testing.T) {
	// Arrange
	_, storage, devices := setupDevicesWithStorage(t)
	signedInDevice(t, devices)
	profileHandler := handlers.NewProfileHandler(devices, service.NewAvatarStore(storage))

	// Act
	recorder := httptest.NewRecorder()
	profileHandler.SaveAvatar()(recorder, testutils.CreateTestRequestWithContext(http.MethodPut, "/profile/avatar", strings.NewReader(`{"uri":"file:///a.png"}`), testDeviceID, testUserID, nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	body := `{"name":"Lan Nguyen","email":"lan@example.com","address":"1 Le Loi"}`
	profileHandler.UpdateProfile()(recorder, testutils.CreateTestRequestWithContext(http.MethodPut, "/profile", strings.NewReader(body), testDeviceID, testUserID, nil))

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	var profile models.Profile
	decodeResponse(t, recorder, &profile)
	assert.Equal(t, "Lan Nguyen", profile.Name)
	assert.Equal(t, "file:///a.png", profile.Avatar)

	recorder = httptest.NewRecorder()
	profileHandler.RemoveAvatar()(recorder, testutils.CreateTestRequestWithContext(http.MethodDelete, "/profile/avatar", nil, testDeviceID, testUserID, nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	profileHandler.GetProfile()(recorder, testutils.CreateTestRequestWithContext(http.MethodGet, "/profile", nil, testDeviceID, testUserID, nil))
	profile = models.Profile{}
	decodeResponse(t, recorder, &profile)
	assert.Empty(t, profile.Avatar)
	assert.NotContains(t, recorder.Body.String(), "password")
}
