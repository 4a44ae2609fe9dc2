package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTUtil_GenerateToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", 15*time.Minute)

	tokenString, expiresAt, err := jwtUtil.GenerateToken("1")

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "1", claims.AccountID)
	assert.Equal(t, "1", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTUtil_ValidateToken_InvalidToken(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Minute)

	_, err := jwtUtil.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = jwtUtil.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTUtil_ValidateToken_Lifetime(t *testing.T) {
	issuedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	now := issuedAt
	jwtUtil := NewJWTUtil("secret", 15*time.Minute).WithClock(func() time.Time { return now })

	tokenString, _, err := jwtUtil.GenerateToken("1")
	require.NoError(t, err)

	now = issuedAt.Add(14*time.Minute + 59*time.Second)
	claims, err := jwtUtil.ValidateToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, "1", claims.AccountID)

	now = issuedAt.Add(15*time.Minute + 1*time.Second)
	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTUtil_ValidateToken_WrongSecret(t *testing.T) {
	jwtUtil1 := NewJWTUtil("secret1", time.Minute)
	jwtUtil2 := NewJWTUtil("secret2", time.Minute)

	tokenString, _, _ := jwtUtil1.GenerateToken("1")

	_, err := jwtUtil2.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTUtil_ValidateToken_InvalidSigningMethod(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Minute)
	claims := &JWTClaims{
		AccountID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// Same secret, different HMAC variant
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, _ := token.SignedString([]byte("secret"))

	_, err := jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "unexpected signing method")
}

func TestJWTUtil_ValidateToken_MissingAccountID(t *testing.T) {
	jwtUtil := NewJWTUtil("secret", time.Minute)

	tokenString, _, err := jwtUtil.GenerateToken("")
	require.NoError(t, err)

	_, err = jwtUtil.ValidateToken(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
