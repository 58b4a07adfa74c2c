package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/careerpath-backend/internal/platform/ctxutil"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims JWTClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(sub string) JWTClaims {
	return JWTClaims{
		Email:        "asha@example.com",
		UserMetadata: map[string]any{"full_name": "Asha Rao"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "https://auth.example.com",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuth(t *testing.T, cfg AuthConfig) AuthService {
	t.Helper()
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = testSecret
	}
	svc, err := NewAuthService(logger.Nop(), cfg)
	require.NoError(t, err)
	return svc
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService(logger.Nop(), AuthConfig{JWTSecret: "  "})
	assert.Error(t, err)
}

func TestSetContextFromToken(t *testing.T) {
	uid := uuid.New()
	svc := newAuth(t, AuthConfig{Issuer: "https://auth.example.com", Audience: "authenticated"})

	ctx, err := svc.SetContextFromToken(context.Background(), signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(uid.String())))
	require.NoError(t, err)

	rd := ctxutil.GetRequestData(ctx)
	require.NotNil(t, rd)
	assert.Equal(t, uid, rd.UserID)
	assert.Equal(t, "asha@example.com", rd.Email)
	assert.Equal(t, "Asha Rao", rd.DisplayName)
}

func TestSetContextFromTokenRejects(t *testing.T) {
	uid := uuid.New().String()
	expired := validClaims(uid)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noExp := validClaims(uid)
	noExp.ExpiresAt = nil
	wrongIss := validClaims(uid)
	wrongIss.Issuer = "https://elsewhere.example.com"

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"wrong secret", signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims(uid))},
		{"wrong algorithm", signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(uid))},
		{"expired", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{"no expiry", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExp)},
		{"wrong issuer", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongIss)},
		{"subject not a uuid", signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("user-1"))},
	}
	svc := newAuth(t, AuthConfig{Issuer: "https://auth.example.com"})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, err := svc.SetContextFromToken(context.Background(), tt.token)
			assert.Error(t, err)
			assert.Nil(t, ctxutil.GetRequestData(ctx))
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]any
		email    string
		want     string
	}{
		{"name wins", map[string]any{"name": "Ravi", "full_name": "Ravi Kumar"}, "r@example.com", "Ravi"},
		{"full name", map[string]any{"full_name": " Ravi Kumar "}, "r@example.com", "Ravi Kumar"},
		{"blank name falls through", map[string]any{"name": " "}, "ravi.k@example.com", "ravi.k"},
		{"non-string ignored", map[string]any{"name": 42}, "", "User"},
		{"nothing", nil, "", "User"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.metadata, tt.email))
		})
	}
}
