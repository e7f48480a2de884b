package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type SearchHandler struct {
	devices   DeviceRegistry
	search    *service.SearchService
	validator *validator.Validate
}

func NewSearchHandler(devices DeviceRegistry, search *service.SearchService) *SearchHandler {
	return &SearchHandler{devices: devices, search: search, validator: validator.New()}
}

// Search godoc
//	@Summary		Search products
//	@Tags			Search
//	@Produce		json
//	@Param			q	query		string					true	"Query"
//	@Success		200	{array}		models.Product			"Matching products"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/search [get]
func (h *SearchHandler) Search() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.search.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			logger.Error("Search failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// History godoc
//	@Summary		Recent searches
//	@Tags			Search
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Success		200			{array}		models.SearchEntry		"Newest first"
//	@Failure		500			{object}	response.ErrorResponse	"Storage error"
//	@Router			/search/history [get]
func (h *SearchHandler) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		history, err := h.search.History(r.Context(), device.Storage)
		if err != nil {
			logger.Error("Failed to read search history", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, history)
	}
}

// SaveQuery godoc
//	@Summary		Remember a search
//	@Tags			Search
//	@Accept			json
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Param			query		body		models.SaveSearchRequest	true	"Query"
//	@Success		200			{array}		models.SearchEntry		"Updated history"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Router			/search/history [post]
func (h *SearchHandler) SaveQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		var req models.SaveSearchRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		history, err := h.search.SaveQuery(r.Context(), device.Storage, req.Query)
		if err != nil {
			logger.Error("Failed to save search", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, history)
	}
}

// RemoveQuery godoc
//	@Summary		Forget a search
//	@Tags			Search
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Param			name		path		string					true	"Query"
//	@Success		200			{array}		models.SearchEntry		"Updated history"
//	@Router			/search/history/{name} [delete]
func (h *SearchHandler) RemoveQuery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		history, err := h.search.RemoveQuery(r.Context(), device.Storage, r.PathValue("name"))
		if err != nil {
			logger.Error("Failed to remove search", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, history)
	}
}
