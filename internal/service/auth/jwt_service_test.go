package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/membuddy/membuddy-api/internal/config"
)

const testSecret = "test-secret-that-is-at-least-32-chars"

func validAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            testSecret,
		TokenAlgorithm:       "HS256",
		TokenLifetimeMinutes: 30,
	}
}

// newTestService creates a service with a fixed clock so expiry behavior
// is deterministic.
func newTestService(t *testing.T, cfg config.AuthConfig, now time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok, "NewJWTService should return an *hmacJWTService")
	impl.timeFunc = func() time.Time { return now }
	return impl
}

func TestNewJWTService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr string
	}{
		{
			name: "valid config",
			cfg:  validAuthConfig(),
		},
		{
			name: "secret too short",
			cfg: config.AuthConfig{
				JWTSecret:            "short",
				TokenAlgorithm:       "HS256",
				TokenLifetimeMinutes: 30,
			},
			wantErr: "at least 32 characters",
		},
		{
			name: "unsupported algorithm",
			cfg: config.AuthConfig{
				JWTSecret:            testSecret,
				TokenAlgorithm:       "RS256",
				TokenLifetimeMinutes: 30,
			},
			wantErr: "unsupported token algorithm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

// TestNewJWTServiceLifetimeFallback verifies the internal default TTL kicks
// in when no lifetime is configured.
func TestNewJWTServiceLifetimeFallback(t *testing.T) {
	cfg := validAuthConfig()
	cfg.TokenLifetimeMinutes = 0

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*hmacJWTService)
	require.True(t, ok)
	assert.Equal(t, 15*time.Minute, impl.tokenLifetime)
}

func TestGenerateAndValidateToken(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, validAuthConfig(), now)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.NotEmpty(t, claims.ID, "token should carry a unique ID")
	assert.True(t, claims.IssuedAt.Equal(now))
	assert.True(t, claims.ExpiresAt.Equal(now.Add(30*time.Minute)))
}

func TestValidateTokenExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, validAuthConfig(), now)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "alice@example.com")
	require.NoError(t, err)

	// Advance the clock past the 30-minute lifetime.
	svc.timeFunc = func() time.Time { return now.Add(31 * time.Minute) }

	claims, err := svc.ValidateToken(ctx, token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenInvalid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, validAuthConfig(), now)
	ctx := context.Background()

	otherCfg := validAuthConfig()
	otherCfg.JWTSecret = "a-completely-different-32-char-secret!!"
	otherSvc := newTestService(t, otherCfg, now)

	wrongKeyToken, err := otherSvc.GenerateToken(ctx, "alice@example.com")
	require.NoError(t, err)

	noSubjectToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed token", token: "not.a.jwt"},
		{name: "empty token", token: ""},
		{name: "wrong signing key", token: wrongKeyToken},
		{name: "missing subject", token: noSubjectToken},
		{name: "unexpected algorithm", token: hs512Token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(ctx, tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
