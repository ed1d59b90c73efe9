package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	token, err := svc.GenerateAccessToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Empty(t, claims.ID)
}

func TestJWTService_AccessTokenExpiry(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	issued := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(1, "user@example.com")
	require.NoError(t, err)

	// Parse without validation to inspect the timestamps.
	var claims Claims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)

	assert.Equal(t, issued.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issued.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestJWTService_ExpiredTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(1, "user@example.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)
	other := NewJWTService("other-secret", 30*time.Minute)

	token, err := svc.GenerateAccessToken(1, "user@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_NonHMACTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	// alg=none tokens must never validate.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1, Email: "user@example.com"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_GarbageTokenRejected(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)

	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_RefreshToken(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	tokenID, token, err := svc.GenerateRefreshToken(7, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, uint(7), claims.UserID)

	extracted, err := svc.ExtractTokenID(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	// Each refresh token carries a fresh ID.
	tokenID2, _, err := svc.GenerateRefreshToken(7, "user@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, tokenID, tokenID2)
}

func TestJWTService_ExtractTokenIDFromAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", 30*time.Minute)

	// Access tokens carry no JTI, so extraction must fail.
	token, err := svc.GenerateAccessToken(1, "user@example.com")
	require.NoError(t, err)

	_, err = svc.ExtractTokenID(token)
	assert.Error(t, err)
}
