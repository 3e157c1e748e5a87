package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed input. Callers treat it as "no user" and never surface details.
var ErrInvalidToken = errors.New("invalid token")

// ResetClaims is the payload of a password-reset token.
type ResetClaims struct {
	ResetPassword uint64 `json:"reset_password"`
	jwt.RegisteredClaims
}

// GenerateResetToken mints a short-lived HS256 token carrying the user id.
func GenerateResetToken(secret string, userID uint64, ttl time.Duration) (string, error) {
	claims := ResetClaims{
		ResetPassword: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyResetToken validates signature and expiry and returns the user id.
func VerifyResetToken(secret, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ResetClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*ResetClaims)
	if !ok || !token.Valid || claims.ResetPassword == 0 {
		return 0, ErrInvalidToken
	}
	return claims.ResetPassword, nil
}
