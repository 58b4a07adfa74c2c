package app

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testViper(kv map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range kv {
		v.Set(k, val)
	}
	return v
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := configFrom(testViper(map[string]any{"AUTH_JWT_SECRET": "s"}))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.RoadmapCacheTTL)
	assert.Equal(t, 300*time.Millisecond, cfg.IntakeAutoAdvanceDelay)
	assert.Equal(t, 2*time.Hour, cfg.IntakeSessionTTL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/careerpath?sslmode=disable", cfg.PostgresDSN)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.OTelEnabled)
}

func TestConfigOverrides(t *testing.T) {
	cfg, err := configFrom(testViper(map[string]any{
		"AUTH_JWT_SECRET":      "s",
		"POSTGRES_DSN":         "postgres://u:p@db:5432/x",
		"ROADMAP_CACHE_TTL":    "5m",
		"CORS_ALLOWED_ORIGINS": " https://a.example.com, ,https://b.example.com ",
		"OTEL_ENABLED":         "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.PostgresDSN)
	assert.Equal(t, 5*time.Minute, cfg.RoadmapCacheTTL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.OTelEnabled)
}

func TestConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		kv   map[string]any
	}{
		{"zero cache ttl", map[string]any{"AUTH_JWT_SECRET": "s", "ROADMAP_CACHE_TTL": "0s"}},
		{"negative session ttl", map[string]any{"AUTH_JWT_SECRET": "s", "INTAKE_SESSION_TTL": "-1m"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := configFrom(testViper(tt.kv))
			assert.Error(t, err)
		})
	}
}
