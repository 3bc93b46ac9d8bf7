package main

import (
	"context"
	"fmt"
	"log"

	"chatdb/config"
	"chatdb/internal/handler"
	"chatdb/internal/proxy"
	"chatdb/internal/redis"
	"chatdb/internal/repository"
	"chatdb/internal/server"
	"chatdb/internal/services"
	"chatdb/pkg/database"
	"chatdb/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource; main exits only after its defers have run.
func run() error {
	cfg := config.LoadConfig()

	mode := logger.DevelopmentMode
	if cfg.AppMode == server.ReleaseMode {
		mode = logger.ProductionMode
	}
	l := logger.New(mode)
	logger.SetGlobalLogger(l)
	defer l.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			l.Errorf("failed to close database: %v", err)
		}
	}()

	access, err := newAccessControl(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to set up access control: %w", err)
	}

	chat := services.NewChatService(repository.NewMessageRepository(db), access, l)
	tokens := services.NewTokenService(cfg.JWTSecret)

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Message: handler.NewMessageHandler(chat),
	}, tokens, func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	})

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// newAccessControl uses Redis grants when REDIS_HOST is set and an empty
// in-memory policy otherwise.
func newAccessControl(cfg *config.Config, l *logger.Logger) (*proxy.AccessControl, error) {
	var rules []proxy.Rule
	if cfg.PersonalChannels {
		rules = append(rules, proxy.PersonalChannelRule)
	}

	redisCfg := redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if !redisCfg.Enabled() {
		l.Warnf("REDIS_HOST not set, channel grants are kept in memory")
		return proxy.NewAccessControl(proxy.NewStaticPolicy(), rules...), nil
	}

	client, err := redis.Connect(context.Background(), redisCfg)
	if err != nil {
		return nil, err
	}
	return proxy.NewAccessControl(redis.NewAccessPolicyStore(client), rules...), nil
}
