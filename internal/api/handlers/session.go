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

type SessionHandler struct {
	devices   DeviceRegistry
	validator *validator.Validate
}

func NewSessionHandler(devices DeviceRegistry) *SessionHandler {
	return &SessionHandler{devices: devices, validator: validator.New()}
}

// SignIn godoc
//	@Summary		Sign in
//	@Description	Authenticates the device with email and password and returns the session with its userToken.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Param			credentials	body		models.SignInRequest	true	"User credentials"
//	@Success		200			{object}	models.SessionResponse	"Signed in"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure		429			{object}	response.ErrorResponse	"Too many sign-in attempts"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/session/sign-in [post]
func (h *SessionHandler) SignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		var req models.SignInRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sign-in input")
			return
		}

		session, err := device.Session.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			logger.Warn("Sign-in failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User signed in", slog.String("userId", session.User.ID))
		response.Success(w, http.StatusOK, session)
	}
}

// SignUp godoc
//	@Summary		Sign up
//	@Description	Registers a new user and signs the device in.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Param			user		body		models.SignUpRequest	true	"Registration details"
//	@Success		201			{object}	models.SessionResponse	"Signed up"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error"
//	@Failure		409			{object}	response.ErrorResponse	"User with this email already exists"
//	@Failure		502			{object}	response.ErrorResponse	"Backend unreachable"
//	@Router			/session/sign-up [post]
func (h *SessionHandler) SignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		var req models.SignUpRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid sign-up input")
			return
		}

		session, err := device.Session.SignUp(r.Context(), &req)
		if err != nil {
			logger.Warn("Sign-up failed", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, session)
	}
}

// Restore godoc
//	@Summary		Restore session
//	@Description	Restores the device's session from its stored user without contacting the backend.
//	@Tags			Session
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Success		200			{object}	models.SessionResponse	"Current session"
//	@Failure		500			{object}	response.ErrorResponse	"Storage error"
//	@Router			/session/restore [post]
func (h *SessionHandler) Restore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, logger, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		session, err := device.Session.CheckAuth(r.Context())
		if err != nil {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, session)
	}
}

// SignOut godoc
//	@Summary		Sign out
//	@Description	Signs the device out, revoking its userToken and emptying its cart store.
//	@Tags			Session
//	@Produce		json
//	@Success		200	{object}	models.SessionResponse	"Signed out"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/session/sign-out [post]
func (h *SessionHandler) SignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, logger, ok := resolveUser(w, r, h.devices)
		if !ok {
			return
		}

		if err := device.Session.SignOut(r.Context()); err != nil {
			logger.Error("Failed to sign out", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("User signed out")
		response.Success(w, http.StatusOK, &models.SessionResponse{Authenticated: false})
	}
}

// Redirect godoc
//	@Summary		Route guard
//	@Description	Returns where the app should navigate instead of route, or an empty redirect when route may be shown.
//	@Tags			Session
//	@Produce		json
//	@Param			X-Device-ID	header		string					true	"Device ID"
//	@Param			route		query		string					true	"App route, e.g. /(tabs)/search"
//	@Success		200			{object}	models.RedirectResponse	"Redirect decision"
//	@Router			/session/redirect [get]
func (h *SessionHandler) Redirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		device, _, ok := resolveDevice(w, r, h.devices)
		if !ok {
			return
		}

		segments := service.RouteSegments(r.URL.Query().Get("route"))
		redirect := service.Redirect(segments, device.Session.IsAuthenticated())

		response.Success(w, http.StatusOK, &models.RedirectResponse{Redirect: redirect})
	}
}
