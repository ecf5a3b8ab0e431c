package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the JWT payload structure.
type Claims struct {
	UserID int64  `json:"userid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed bearer tokens. The
// secret and lifetime are fixed at construction so tests can run with
// distinct secrets side by side.
type TokenManager struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenManager(secret []byte, lifetime time.Duration) *TokenManager {
	return &TokenManager{secret: secret, lifetime: lifetime}
}

// Issue mints a signed token for the given user. Expiry is a hard
// boundary: now + configured lifetime, no grace window.
func (m *TokenManager) Issue(userID int64, email, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
			Issuer:    "movie-vault-api",
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string and returns its claims.
// Failures map onto ErrTokenExpired, ErrBadSignature, or
// ErrMalformedToken; only the claims of a fully valid token are
// returned.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformedToken
		}
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}
	return claims, nil
}
