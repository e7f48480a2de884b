package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

// UserObserver is notified after the session's user changes. user is nil
// after sign-out.
type UserObserver func(ctx context.Context, user *models.User)

// Session is the authentication state of one device.
type Session struct {
	mu sync.Mutex

	deviceID string
	storage  repository.DeviceStorage
	users    UserAPI
	limiter  repository.RateLimitRepository
	tokens   *TokenIssuer
	validate *validator.Validate
	policy   *bluemonday.Policy
	now      func() time.Time

	user      *models.User
	token     string
	observers []UserObserver
}

// NewSession builds the session of deviceID. limiter may be nil, in which
// case sign-in attempts are not throttled.
func NewSession(deviceID string, storage repository.DeviceStorage, users UserAPI, limiter repository.RateLimitRepository, tokens *TokenIssuer) *Session {
	return &Session{
		deviceID: deviceID,
		storage:  storage,
		users:    users,
		limiter:  limiter,
		tokens:   tokens,
		validate: validator.New(),
		policy:   bluemonday.StrictPolicy(),
		now:      time.Now,
	}
}

func (s *Session) OnUserChange(observer UserObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, observer)
}

func (s *Session) DeviceID() string {
	return s.deviceID
}

// User returns a copy of the signed-in user.
func (s *Session) User() (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, false
	}

	user := *s.user
	return &user, true
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil
}

// Response describes the session to the app.
func (s *Session) Response() *models.SessionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return &models.SessionResponse{Authenticated: false}
	}

	return s.responseLocked()
}

func (s *Session) SignIn(ctx context.Context, email, password string) (*models.SessionResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.ValidationError("Email and password are required")
	}

	if s.limiter != nil {
		result, err := s.limiter.CheckSignInRateLimit(ctx, email)
		if err != nil {
			return nil, errors.ThirdPartyError("Rate limit check failed").WithError(err)
		}

		if !result.Allowed {
			logger.Warn("Sign-in rate limited", slog.Duration("retryAfter", result.RetryAfter))
			return nil, errors.TooManyRequestsError("Too many sign-in attempts. Please try again later.").
				WithDetail(fmt.Sprintf("retry after %s", result.RetryAfter.Round(time.Second)))
		}
	}

	users, err := s.users.FindUsers(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if len(users) == 0 {
		logger.Info("Sign-in failed", slog.String("email", email))
		return nil, errors.UnauthorizedError("Invalid email or password")
	}

	user := users[0]

	return s.authenticate(ctx, &user)
}

func (s *Session) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SessionResponse, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.ValidationError("Invalid sign-up details").WithError(err)
	}

	email := strings.TrimSpace(req.Email)

	existing, err := s.users.FindUsers(ctx, email, "")
	if err != nil {
		return nil, err
	}

	if len(existing) > 0 {
		return nil, errors.DuplicateEntryError("User with this email already exists")
	}

	user := &models.User{
		ID:       strconv.FormatInt(s.now().UnixMilli(), 10),
		Name:     s.sanitize(req.Name),
		Email:    email,
		Password: req.Password,
		Phone:    s.sanitize(req.Phone),
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	middleware.LoggerFromContext(ctx).Info("User signed up", slog.String("userId", created.ID))

	return s.authenticate(ctx, created)
}

func (s *Session) SignOut(ctx context.Context) error {

	s.mu.Lock()
	if err := s.storage.Delete(ctx, repository.KeyUser, repository.KeyUserToken); err != nil {
		s.mu.Unlock()
		return errors.StorageError("Failed to clear session").WithError(err)
	}

	s.user = nil
	s.token = ""
	observers := s.observers
	s.mu.Unlock()

	notify(ctx, observers, nil)

	return nil
}

// CheckAuth restores the session from device storage at boot without
// contacting the backend.
func (s *Session) CheckAuth(ctx context.Context) (*models.SessionResponse, error) {

	s.mu.Lock()

	var user models.User
	found, err := repository.GetJSON(ctx, s.storage, repository.KeyUser, &user)
	if err != nil {
		s.mu.Unlock()
		return nil, errors.StorageError("Failed to read stored user").WithError(err)
	}

	if !found || user.ID == "" {
		s.user = nil
		s.token = ""
		s.mu.Unlock()
		return &models.SessionResponse{Authenticated: false}, nil
	}

	token, ok, err := s.storage.Get(ctx, repository.KeyUserToken)
	if err != nil {
		s.mu.Unlock()
		return nil, errors.StorageError("Failed to read stored token").WithError(err)
	}

	if !ok || !s.ownsToken(token, user.ID) {
		token, err = s.tokens.Issue(&user, s.deviceID)
		if err != nil {
			s.mu.Unlock()
			return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
		}

		if err := s.storage.Set(ctx, repository.KeyUserToken, token); err != nil {
			s.mu.Unlock()
			return nil, errors.StorageError("Failed to persist session").WithError(err)
		}
	}

	changed := s.user == nil || s.user.ID != user.ID
	s.user = &user
	s.token = token
	observers := s.observers
	resp := s.responseLocked()
	s.mu.Unlock()

	if changed {
		notify(ctx, observers, &user)
	}

	return resp, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.Profile, error) {

	if err := s.validate.Struct(req); err != nil {
		return nil, errors.ValidationError("Invalid profile details").WithError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, errors.UnauthorizedError("User not authenticated")
	}

	updated := *s.user
	updated.Name = s.sanitize(req.Name)
	updated.Email = strings.TrimSpace(req.Email)
	updated.Phone = s.sanitize(req.Phone)
	updated.Address = s.sanitize(req.Address)

	saved, err := s.users.UpdateUser(ctx, &updated)
	if err != nil {
		return nil, err
	}

	if err := repository.SetJSON(ctx, s.storage, repository.KeyUser, saved); err != nil {
		return nil, errors.StorageError("Failed to persist user").WithError(err)
	}

	s.user = saved

	profile := saved.Profile()
	return &profile, nil
}

// VerifyToken reports whether token is the one this device currently holds in
// storage. Signing out deletes it, which revokes the token everywhere.
func (s *Session) VerifyToken(ctx context.Context, token string) error {

	stored, ok, err := s.storage.Get(ctx, repository.KeyUserToken)
	if err != nil {
		return errors.StorageError("Failed to read stored token").WithError(err)
	}

	if !ok || stored != token {
		return errors.UnauthorizedError("Token has been revoked")
	}

	return nil
}

func (s *Session) authenticate(ctx context.Context, user *models.User) (*models.SessionResponse, error) {

	token, err := s.tokens.Issue(user, s.deviceID)
	if err != nil {
		return nil, errors.InternalError("Failed to generate authentication token").WithError(err)
	}

	s.mu.Lock()

	if err := repository.SetJSON(ctx, s.storage, repository.KeyUser, user); err != nil {
		s.mu.Unlock()
		return nil, errors.StorageError("Failed to persist user").WithError(err)
	}

	if err := s.storage.Set(ctx, repository.KeyUserToken, token); err != nil {
		s.mu.Unlock()
		return nil, errors.StorageError("Failed to persist session").WithError(err)
	}

	s.user = user
	s.token = token
	observers := s.observers
	resp := s.responseLocked()
	s.mu.Unlock()

	notify(ctx, observers, user)

	return resp, nil
}

func (s *Session) responseLocked() *models.SessionResponse {
	profile := s.user.Profile()
	return &models.SessionResponse{Authenticated: true, Token: s.token, User: &profile}
}

func (s *Session) ownsToken(token, userID string) bool {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return false
	}

	return claims.DeviceID == s.deviceID && claims.UserID == userID
}

func (s *Session) sanitize(value string) string {
	return strings.TrimSpace(s.policy.Sanitize(value))
}

func notify(ctx context.Context, observers []UserObserver, user *models.User) {
	for _, observer := range observers {
		var copied *models.User
		if user != nil {
			u := *user
			copied = &u
		}
		observer(ctx, copied)
	}
}
