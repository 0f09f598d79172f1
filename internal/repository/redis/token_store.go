package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/peoplecore/hrm-backend-go/internal/domain/attendance"
)

const tokenKeyPrefix = "attendance:qr:"

// TokenStore keeps active QR check-in tokens in Redis with a TTL, so tokens
// expire without any sweeper process.
type TokenStore struct {
	client *goredis.Client
}

func NewTokenStore(client *goredis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Put(ctx context.Context, token, branchID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKeyPrefix+token, branchID, ttl).Err()
}

func (s *TokenStore) BranchFor(ctx context.Context, token string) (string, error) {
	branchID, err := s.client.Get(ctx, tokenKeyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		return "", attendance.ErrInvalidQRToken
	}
	if err != nil {
		return "", fmt.Errorf("get qr token: %w", err)
	}
	return branchID, nil
}
