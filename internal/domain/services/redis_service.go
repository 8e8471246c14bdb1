package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NotMomex/my-store-crm/internal/infrastructure/config"
)

// InterfaceRedisService Redis service interface
type InterfaceRedisService interface {
	Ping(ctx context.Context) error
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
}

// NewRedisClient creates a client from the configured address
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewRedisService wraps an existing client
func NewRedisService(client *redis.Client) InterfaceRedisService {
	return &RedisService{Client: client}
}

// 1 Ping checks the connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// 2 Allow counts a hit against key in a fixed window and reports whether
// the count is still within limit
func (s *RedisService) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	bucket := time.Now().UnixNano() / int64(window)
	k := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	pipe := s.Client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// 3 Close releases the connection pool
func (s *RedisService) Close() error {
	return s.Client.Close()
}
