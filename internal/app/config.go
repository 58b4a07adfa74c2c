package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	LogMode     string
	LogLevel    string
	LogHashSalt string

	PostgresDSN string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RoadmapCacheTTL time.Duration

	AuthJWTSecret   string
	AuthJWTIssuer   string
	AuthJWTAudience string

	CORSAllowedOrigins []string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelHeaders     string
	OTelInsecure    bool
	OTelSampleRatio float64
	ServiceName     string
	Environment     string
	Version         string

	IntakeAutoAdvanceDelay time.Duration
	IntakeSessionTTL       time.Duration
	MetricsPollInterval    time.Duration
	ShutdownTimeout        time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_MODE", "development")
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_NAME", "careerpath")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("ROADMAP_CACHE_TTL", "30m")
	v.SetDefault("OTEL_ENABLED", false)
	v.SetDefault("OTEL_SAMPLE_RATIO", 1.0)
	v.SetDefault("OTEL_SERVICE_NAME", "careerpath")
	v.SetDefault("APP_ENVIRONMENT", "development")
	v.SetDefault("INTAKE_AUTO_ADVANCE_DELAY", "300ms")
	v.SetDefault("INTAKE_SESSION_TTL", "2h")
	v.SetDefault("METRICS_POLL_INTERVAL", "15s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
}

// LoadConfig reads an optional .env file, then the process environment.
// Environment values win over .env entries.
func LoadConfig() (Config, error) {
	envFile := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	return configFrom(v)
}

func configFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:        v.GetString("PORT"),
		LogMode:     v.GetString("LOG_MODE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogHashSalt: v.GetString("LOG_HASH_SALT"),

		PostgresDSN: v.GetString("POSTGRES_DSN"),

		RedisAddr:       strings.TrimSpace(v.GetString("REDIS_ADDR")),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		RoadmapCacheTTL: v.GetDuration("ROADMAP_CACHE_TTL"),

		AuthJWTSecret:   v.GetString("AUTH_JWT_SECRET"),
		AuthJWTIssuer:   v.GetString("AUTH_JWT_ISSUER"),
		AuthJWTAudience: v.GetString("AUTH_JWT_AUDIENCE"),

		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),

		OTelEnabled:     v.GetBool("OTEL_ENABLED"),
		OTelEndpoint:    v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTelHeaders:     v.GetString("OTEL_EXPORTER_OTLP_HEADERS"),
		OTelInsecure:    v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
		OTelSampleRatio: v.GetFloat64("OTEL_SAMPLE_RATIO"),
		ServiceName:     v.GetString("OTEL_SERVICE_NAME"),
		Environment:     v.GetString("APP_ENVIRONMENT"),
		Version:         v.GetString("APP_VERSION"),

		IntakeAutoAdvanceDelay: v.GetDuration("INTAKE_AUTO_ADVANCE_DELAY"),
		IntakeSessionTTL:       v.GetDuration("INTAKE_SESSION_TTL"),
		MetricsPollInterval:    v.GetDuration("METRICS_POLL_INTERVAL"),
		ShutdownTimeout:        v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	if cfg.PostgresDSN == "" {
		cfg.PostgresDSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			v.GetString("POSTGRES_USER"),
			v.GetString("POSTGRES_PASSWORD"),
			v.GetString("POSTGRES_HOST"),
			v.GetString("POSTGRES_PORT"),
			v.GetString("POSTGRES_NAME"),
			v.GetString("POSTGRES_SSLMODE"),
		)
	}
	if cfg.RoadmapCacheTTL <= 0 {
		return Config{}, fmt.Errorf("ROADMAP_CACHE_TTL must be positive, got %s", cfg.RoadmapCacheTTL)
	}
	if cfg.IntakeSessionTTL <= 0 {
		return Config{}, fmt.Errorf("INTAKE_SESSION_TTL must be positive, got %s", cfg.IntakeSessionTTL)
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
