package repositories

import (
	"errors"
	"time"

	"context"

	"github.com/redis/go-redis/v9"

	"github.com/imraac/LMS-backend/internal/logger"
)

const accessTokenKey = "mpesa:access_token"

// ErrTokenNotCached is returned when no gateway token is present in the cache.
var ErrTokenNotCached = errors.New("access token not found in cache")

// MpesaTokenCacheRepository caches the gateway bearer token in Redis,
// so concurrent subscriptions do not each hit the token endpoint.
type MpesaTokenCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration, kept below the gateway token lifetime
}

// NewMpesaTokenCacheRepository creates a new repository instance with the given TTL
func NewMpesaTokenCacheRepository(client *redis.Client, expiration time.Duration) *MpesaTokenCacheRepository {
	return &MpesaTokenCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetAccessToken fetches the cached gateway token.
func (r *MpesaTokenCacheRepository) GetAccessToken(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, accessTokenKey).Result()

	logger.Log.Infow(
		"key", accessTokenKey,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotCached
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetAccessToken caches a freshly obtained gateway token with expiration.
func (r *MpesaTokenCacheRepository) SetAccessToken(ctx context.Context, token string) error {
	err := r.client.Set(ctx, accessTokenKey, token, r.exp).Err()

	logger.Log.Infow(
		"key", accessTokenKey,
		"result", "ok",
		"error", err,
	)

	return err
}
