package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-portal/internal/config"
)

// ErrNoSession indicates no token is stored for the given reference.
var ErrNoSession = errors.New("no session")

// TokenStore holds bearer tokens between requests. Save returns the
// opaque reference placed in the session cookie.
type TokenStore interface {
	Save(ctx context.Context, token string, ttl time.Duration) (string, error)
	Load(ctx context.Context, ref string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// CookieStore carries the token in the cookie itself: the reference is
// the token. This is the default, storage-free mode.
type CookieStore struct{}

// NewCookieStore returns the pass-through store.
func NewCookieStore() CookieStore {
	return CookieStore{}
}

func (CookieStore) Save(_ context.Context, token string, _ time.Duration) (string, error) {
	return token, nil
}

func (CookieStore) Load(_ context.Context, ref string) (string, error) {
	if ref == "" {
		return "", ErrNoSession
	}
	return ref, nil
}

func (CookieStore) Delete(context.Context, string) error {
	return nil
}

const redisKeyPrefix = "portal:session:"

// RedisStore keeps tokens server-side under opaque session ids, expiring
// with the token itself.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, token string, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	if ttl <= 0 {
		ttl = time.Hour
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, token, ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *RedisStore) Load(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", ErrNoSession
	}
	token, err := s.client.Get(ctx, redisKeyPrefix+ref).Result()
	if err == redis.Nil {
		return "", ErrNoSession
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisStore) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	return s.client.Del(ctx, redisKeyPrefix+ref).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
