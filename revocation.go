package goProof

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Revocation is a pure trust-boundary concern: the denylist is consulted
// during verification, before any proof is minted. A proof that already
// exists asserts "this token passed the checks at verification time" and
// is deliberately never invalidated afterwards.

type revocationStore struct {
	redis  *redis.Client
	prefix string
}

func newRevocationStore(redisClient *redis.Client, prefix string) *revocationStore {
	return &revocationStore{
		redis:  redisClient,
		prefix: prefix,
	}
}

func (s *revocationStore) key(tokenID string) string {
	return s.prefix + ":" + tokenID
}

// Revoke denylists tokenID for ttl. Verification of any token carrying
// that jti fails with ErrTokenRevoked until the entry expires.
func (s *revocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := s.redis.Set(ctx, s.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRevocationUnavailable, err)
	}
	return nil
}

// IsRevoked reports whether tokenID is currently denylisted.
func (s *revocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.redis.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrRevocationUnavailable, err)
	}
	return n > 0, nil
}
