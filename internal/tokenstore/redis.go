package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/linguadex-backend/internal/logger"
	"github.com/yungbote/linguadex-backend/internal/utils"
)

// RedisStore backs the token store with Redis SET EX, which gives the TTL
// semantics for free and lets sessions survive process restarts.
type RedisStore struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedisStore(log *logger.Logger) (*RedisStore, error) {
	storeLog := log.With("service", "RedisTokenStore")

	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	db := utils.GetEnvAsInt("REDIS_DB", 0, log)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("Failed to connect to Redis: %w", err)
	}
	storeLog.Info("Connected to Redis", "addr", addr)

	return &RedisStore{client: client, log: storeLog}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

func (rs *RedisStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return rs.client.Set(ctx, sessionKey(token), userID.String(), ttl).Err()
}

func (rs *RedisStore) Get(ctx context.Context, token string) (uuid.UUID, bool, error) {
	value, err := rs.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	userID, err := uuid.Parse(value)
	if err != nil {
		rs.log.Warn("Dropping malformed session value", "error", err)
		_ = rs.client.Del(ctx, sessionKey(token)).Err()
		return uuid.Nil, false, nil
	}
	return userID, true, nil
}

func (rs *RedisStore) Delete(ctx context.Context, token string) error {
	return rs.client.Del(ctx, sessionKey(token)).Err()
}
