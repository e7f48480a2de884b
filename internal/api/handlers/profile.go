package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	service "github.com/aaravmahajanofficial/plantshop/internal/services"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"github.com/aaravmahajanofficial/plantshop/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProfileHandler struct {
	devices   DeviceRegistry
	avatars   *service.AvatarStore
	validator *validator.Validate
}

func NewProfileHandler(devices DeviceRegistry, avatars *service.AvatarStore) *ProfileHandler {
	return &ProfileHandler{devices: devices, avatars: avatars, validator: validator.New()}
}

// GetProfile godoc
//	@Summary		Get profile
//	@Description	Returns the signed-in user with the avatar stored on this device.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	models.Profile			"Current user"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/profile [get]
func (h *ProfileHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, user, _, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		profile := user.Profile()
		profile.Avatar = h.avatars.GetAvatar(r.Context(), device.ID, user.ID)

		response.Success(w, http.StatusOK, profile)
	}
}

// UpdateProfile godoc
//	@Summary		Edit profile
//	@Description	Merges the submitted fields into the signed-in user and saves it.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		models.UpdateProfileRequest	true	"Profile fields"
//	@Success		200		{object}	models.Profile				"Updated user"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		502		{object}	response.ErrorResponse		"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/profile [put]
func (h *ProfileHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, user, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		var req models.UpdateProfileRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid profile input")
			return
		}

		profile, err := device.Session.UpdateProfile(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to update profile", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		profile.Avatar = h.avatars.GetAvatar(r.Context(), device.ID, user.ID)

		logger.Info("Profile updated")
		response.Success(w, http.StatusOK, profile)
	}
}

// SaveAvatar godoc
//	@Summary		Save avatar
//	@Description	Stores the avatar URI for the signed-in user on this device.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			avatar	body		models.AvatarRequest	true	"Avatar URI"
//	@Success		200		{object}	models.Profile			"User with avatar"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/profile/avatar [put]
func (h *ProfileHandler) SaveAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, user, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		var req models.AvatarRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		if err := h.avatars.SaveAvatar(r.Context(), device.ID, user.ID, req.URI); err != nil {
			logger.Error("Failed to save avatar", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		profile := user.Profile()
		profile.Avatar = req.URI

		response.Success(w, http.StatusOK, profile)
	}
}

// RemoveAvatar godoc
//	@Summary		Remove avatar
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	models.Profile			"User without avatar"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/profile/avatar [delete]
func (h *ProfileHandler) RemoveAvatar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, user, _, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		h.avatars.RemoveAvatar(r.Context(), device.ID, user.ID)

		response.Success(w, http.StatusOK, user.Profile())
	}
}
