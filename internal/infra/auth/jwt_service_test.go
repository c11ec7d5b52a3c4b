package auth

import (
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_token_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: ttl}}
	cfg.SecretKey.Token = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, 0)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_PayloadShape(t *testing.T) {
	svc := newTestJWTService(t, 0)
	userID := uuid.New()

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)

	user, ok := claims["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, userID.String(), user["id"])
	assert.NotContains(t, claims, "exp", "no expiry without a configured ttl")
}

func TestJWTService_Verify_Rejects(t *testing.T) {
	svc := newTestJWTService(t, 0)
	userID := uuid.New()

	valid, err := svc.Issue(userID)
	require.NoError(t, err)

	otherSecret := &jwtService{secret: []byte("another-secret"), now: time.Now}
	foreign, err := otherSecret.Issue(userID)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, sessionClaims{
		User: sessionUser{ID: userID.String()},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims{
		User: sessionUser{ID: userID.String()},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": userID.String()}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	badUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		User: sessionUser{ID: "42"},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "three garbage segments", token: "a.b.c"},
		{name: "wrong secret", token: foreign},
		{name: "wrong algorithm", token: hs512},
		{name: "none algorithm", token: unsigned},
		{name: "missing user claim", token: noUser},
		{name: "malformed user id", token: badUser},
		{name: "tampered payload", token: tampered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got, err := svc.Verify(tt.token)
				assert.Error(t, err)
				assert.True(t, errors.Is(err, service.ErrInvalidToken))
				assert.Equal(t, uuid.Nil, got)
			})
		})
	}
}

func TestJWTService_Expiry(t *testing.T) {
	svc := newTestJWTService(t, time.Hour)
	userID := uuid.New()

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(userID)
	require.NoError(t, err)

	t.Run("valid before expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(30 * time.Minute) }

		got, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }

		_, err := svc.Verify(token)
		require.Error(t, err)
		assert.True(t, errors.Is(err, service.ErrInvalidToken))
	})
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
