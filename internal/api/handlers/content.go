package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
)

type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListNotifications godoc
//	@Summary		Notifications
//	@Tags			Content
//	@Produce		json
//	@Success		200	{array}		models.Notification		"Notifications"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/notifications [get]
func (h *ContentHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		notifications, err := h.content.Notifications(r.Context())
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, notifications)
	}
}

// GetPlantCareGuide godoc
//	@Summary		Plant care guide
//	@Tags			Content
//	@Produce		json
//	@Param			id	path		int						true	"Guide ID"
//	@Success		200	{object}	models.PlantCareGuide	"Guide"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid guide id"
//	@Failure		404	{object}	response.ErrorResponse	"Guide not found"
//	@Router			/plant-care-guides/{id} [get]
func (h *ContentHandler) GetPlantCareGuide() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			logger.Warn("Invalid guide id", slog.String("id", r.PathValue("id")))
			response.Error(w, errors.BadRequestError("Invalid guide id"))
			return
		}

		guide, err := h.content.PlantCareGuide(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get plant care guide", slog.Int("guideId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, guide)
	}
}

// ListFAQs godoc
//	@Summary		FAQs
//	@Tags			Content
//	@Produce		json
//	@Success		200	{array}		models.FAQ				"FAQs"
//	@Failure		502	{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/faqs [get]
func (h *ContentHandler) ListFAQs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		faqs, err := h.content.FAQs(r.Context())
		if err != nil {
			logger.Error("Failed to list FAQs", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, faqs)
	}
}
