package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// User mirrors the backend's /users record. The password is stored and
// compared in plaintext by the backend.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Profile is the user as returned to the app, without the password.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
	}
}

// for registration
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone"`
}

// for login
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type AvatarRequest struct {
	URI string `json:"uri" validate:"required"`
}

// SessionResponse is returned by every operation that authenticates a device.
type SessionResponse struct {
	Authenticated bool     `json:"authenticated"`
	Token         string   `json:"token,omitempty"`
	User          *Profile `json:"user,omitempty"`
}

type RedirectResponse struct {
	Redirect string `json:"redirect,omitempty"`
}

// Claims carried by the userToken. There is no expiry: a token lives until
// the device signs out.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	DeviceID string `json:"device_id"`
	jwt.RegisteredClaims
}
