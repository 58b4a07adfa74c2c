package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/clients/redis"
	"github.com/yungbote/careerpath-backend/internal/db"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Clients struct {
	Postgres *db.PostgresService
	DB       *gorm.DB
	// Redis is nil when REDIS_ADDR is unset.
	Redis *goredis.Client
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	pg, err := db.NewPostgresService(ctx, log, cfg.PostgresDSN)
	if err != nil {
		return Clients{}, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		_ = pg.Close()
		return Clients{}, fmt.Errorf("postgres automigrate: %w", err)
	}

	rdb, err := redis.NewClient(ctx, log, redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		_ = pg.Close()
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}

	return Clients{Postgres: pg, DB: pg.DB(), Redis: rdb}, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.Postgres != nil {
		_ = c.Postgres.Close()
	}
}
