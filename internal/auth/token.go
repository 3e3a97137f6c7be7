package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates the signed session tokens carried in the
// auth cookie. The subject claim is the username.
type TokenManager struct {
	secret     []byte
	expiry     time.Duration
	CookieName string
}

func NewTokenManager(secret, cookieName string, expiresHours int) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		expiry:     time.Duration(expiresHours) * time.Hour,
		CookieName: cookieName,
	}
}

func (tm *TokenManager) Expiry() time.Duration {
	return tm.expiry
}

func (tm *TokenManager) Generate(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse validates signature and expiry and returns the subject username.
func (tm *TokenManager) Parse(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return tm.secret, nil
		},
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

// ExtractToken looks for the session token in the auth cookie first, falling
// back to a bearer Authorization header.
func (tm *TokenManager) ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(tm.CookieName); err == nil {
		if cookie.Value != "" {
			return cookie.Value
		}
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	return ""
}
