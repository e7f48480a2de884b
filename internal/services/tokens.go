package service

import (
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs and parses userTokens with HS256.
type TokenIssuer struct {
	key []byte
	now func() time.Time
}

func NewTokenIssuer(key []byte) *TokenIssuer {
	return &TokenIssuer{key: key, now: time.Now}
}

func (t *TokenIssuer) Issue(user *models.User, deviceID string) (string, error) {

	claims := &models.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		DeviceID: deviceID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(t.now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

func (t *TokenIssuer) Parse(tokenString string) (*models.Claims, error) {

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tok.Header["alg"])
		}
		return t.key, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid || claims.DeviceID == "" || claims.UserID == "" {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
