package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/heating-backoffice/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const sessionPrefix = "session:"

// ErrNoClient is returned when the shared client was never initialised.
var ErrNoClient = errors.New("redis client not initialised")

// Repository stores login sessions keyed by token id.
type Repository interface {
	SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// GetSession returns an empty user id when the session is unknown or expired.
	GetSession(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

func NewRepository() Repository {
	return &redis{}
}

func (r *redis) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

func (r *redis) GetSession(ctx context.Context, sessionID string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", ErrNoClient
	}
	val, err := client.Get(ctx, sessionPrefix+sessionID).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return ErrNoClient
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
