package redisstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"hirely-api/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenStore keeps opaque refresh tokens in Redis with a TTL,
// mapping token -> user ID. Revocation is a key delete, expiry is Redis TTL.
type RefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore creates a new RefreshTokenStore.
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

// Compile-time check to ensure RefreshTokenStore implements RefreshTokenStore
var _ storage.RefreshTokenStore = (*RefreshTokenStore)(nil)

// Save writes a token -> userID mapping with the given TTL.
func (s *RefreshTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKeyPrefix+token, userID.String(), ttl).Err(); err != nil {
		log.Printf("Error saving refresh token for user %s: %v\n", userID, err)
		return fmt.Errorf("failed to save refresh token: %w", err)
	}
	return nil
}

// Resolve returns the user ID a token belongs to, or storage.ErrNotFound if
// the token is unknown or expired.
func (s *RefreshTokenStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, storage.ErrNotFound
	}
	if err != nil {
		log.Printf("Error resolving refresh token: %v\n", err)
		return uuid.Nil, fmt.Errorf("failed to resolve refresh token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		log.Printf("Malformed user ID stored for refresh token: %v\n", err)
		return uuid.Nil, fmt.Errorf("failed to parse stored user ID: %w", err)
	}
	return userID, nil
}

// Revoke removes a token mapping. Revoking an unknown token is a no-op.
func (s *RefreshTokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+token).Err(); err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("Error revoking refresh token: %v\n", err)
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
