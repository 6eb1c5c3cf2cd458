package cache

import (
	"context"
	"fmt"
	"time"

	"clinic-records/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("Successfully connected to Redis")

	return client, nil
}

// TokenStore tracks issued tokens. A token is valid only while its key
// exists; logout and refresh delete keys.
type TokenStore struct {
	client redis.Cmdable
}

func NewTokenStore(client redis.Cmdable) *TokenStore {
	return &TokenStore{client: client}
}

// TokenKey is "<kind>_token:<user id>:<token id>".
func TokenKey(kind string, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", kind, userID.String(), tokenID)
}

func (s *TokenStore) Register(ctx context.Context, kind string, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, TokenKey(kind, userID, tokenID), "valid", ttl).Err()
}

func (s *TokenStore) Exists(ctx context.Context, kind string, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, TokenKey(kind, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *TokenStore) Revoke(ctx context.Context, kind string, userID uuid.UUID, tokenID string) error {
	return s.client.Del(ctx, TokenKey(kind, userID, tokenID)).Err()
}
