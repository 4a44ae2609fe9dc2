package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, badly signed and expired tokens alike
var ErrInvalidToken = errors.New("invalid or expired token")

// JWTClaims custom claims for the session token
type JWTClaims struct {
	AccountID string `json:"userId"`
	jwt.RegisteredClaims
}

// JWTUtil issues and validates session tokens
type JWTUtil struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

// NewJWTUtil creates a new JWTUtil
func NewJWTUtil(secretKey string, ttl time.Duration) *JWTUtil {
	return &JWTUtil{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// WithClock overrides the clock used for issuing and validating tokens
func (ju *JWTUtil) WithClock(now func() time.Time) *JWTUtil {
	if now != nil {
		ju.now = now
	}
	return ju
}

// TTL returns the lifetime of issued tokens
func (ju *JWTUtil) TTL() time.Duration {
	return ju.ttl
}

// GenerateToken signs a token for the account and returns it with its expiry
func (ju *JWTUtil) GenerateToken(accountID string) (string, time.Time, error) {
	issuedAt := ju.now()
	expiresAt := issuedAt.Add(ju.ttl)
	claims := &JWTClaims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Subject:   accountID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(ju.secretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ValidateToken checks signature and expiry. Every failure wraps ErrInvalidToken.
func (ju *JWTUtil) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ju.secretKey), nil
	}, jwt.WithTimeFunc(ju.now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.AccountID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
