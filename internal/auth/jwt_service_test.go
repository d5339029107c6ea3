package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userauth/internal/model"
)

func testUser() *model.User {
	return &model.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret")
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Name, claims.User.Name)
	assert.Equal(t, user.Email, claims.User.Email)
	assert.Equal(t, user.PasswordHash, claims.User.PasswordHash)
	assert.WithinDuration(t, time.Now().Add(AccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret").GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = NewJWTService("other-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService("secret")
	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("secret")

	claims := &Claims{
		User: *testUser(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSigningMethod(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
