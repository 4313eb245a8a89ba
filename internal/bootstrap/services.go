package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eventdesk/eventdesk/config"
	"github.com/eventdesk/eventdesk/internal/directory"
	"github.com/eventdesk/eventdesk/internal/service"
	"github.com/eventdesk/eventdesk/internal/session"
)

// Services is the wired object graph of the portal. Everything is
// constructed explicitly here and passed by reference; no package holds a
// lazily-initialized instance of anything.
type Services struct {
	Tokens    *session.TokenStore
	Directory *directory.Client
	Events    *service.EventService

	// RedisClient is nil when the memory backend is in use.
	RedisClient *redis.Client
}

// Close releases infrastructure held by the service graph.
func (s *Services) Close() error {
	if s.RedisClient != nil {
		return s.RedisClient.Close()
	}
	return nil
}

// NewServices builds the portal's object graph from configuration.
func NewServices(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*Services, error) {
	backend, redisClient, err := connectSessionBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	tokens := session.NewTokenStore(backend, logger)

	dir, err := directory.NewClient(directory.ClientOptions{
		BaseURL:      cfg.Upstream.BaseURL,
		HTTPClient:   &http.Client{Timeout: cfg.Upstream.Timeout},
		Tokens:       tokens,
		Logger:       logger,
		LoginPath:    cfg.Upstream.LoginPath,
		RegisterPath: cfg.Upstream.RegisterPath,
	})
	if err != nil {
		if redisClient != nil {
			_ = redisClient.Close()
		}
		return nil, fmt.Errorf("build directory client: %w", err)
	}

	events := service.NewEventService(service.EventServiceOptions{
		Directory: dir,
		Imaging:   cfg.Imaging.Options(),
		Logger:    logger,
	})

	return &Services{
		Tokens:      tokens,
		Directory:   dir,
		Events:      events,
		RedisClient: redisClient,
	}, nil
}

// connectSessionBackend picks the durable session backend: Redis when
// configured, otherwise the in-memory backend (dev only — sessions are lost
// on restart).
func connectSessionBackend(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (session.Backend, *redis.Client, error) {
	if !cfg.Redis.Enabled() {
		if !cfg.IsDev {
			logger.WarnContext(ctx, "no Redis configured, sessions will not survive restarts")
		}
		return session.NewMemoryBackend(), nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}

	backend := session.NewRedisBackendWithPrefix(client, cfg.Redis.KeyPrefix)
	return backend, client, nil
}
