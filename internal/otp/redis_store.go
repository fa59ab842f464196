package otp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pending_signup:"

// claimScript deletes the key only when the stored code still matches.
var claimScript = redis.NewScript(`
local raw = redis.call("GET", KEYS[1])
if not raw then
  return 0
end
local reg = cjson.decode(raw)
if reg.code ~= ARGV[1] then
  return 0
end
return redis.call("DEL", KEYS[1])
`)

// RedisStore shares pending registrations between API instances. Keys carry
// a Redis TTL slightly longer than the code lifetime; the stored ExpiresAt
// remains the authoritative expiry.
type RedisStore struct {
	client redis.UniversalClient
	grace  time.Duration
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client, grace: time.Minute}
}

func (s *RedisStore) key(email string) string {
	return redisKeyPrefix + NormalizeEmail(email)
}

func (s *RedisStore) Put(ctx context.Context, reg PendingRegistration) error {
	reg.Email = NormalizeEmail(reg.Email)
	data, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("failed to encode pending registration: %w", err)
	}

	ttl := time.Until(reg.ExpiresAt) + s.grace
	if ttl <= 0 {
		ttl = s.grace
	}
	if err := s.client.Set(ctx, s.key(reg.Email), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store pending registration: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, email string) (*PendingRegistration, error) {
	raw, err := s.client.Get(ctx, s.key(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read pending registration: %w", err)
	}

	var reg PendingRegistration
	if err := json.Unmarshal(raw, &reg); err != nil {
		return nil, fmt.Errorf("failed to decode pending registration: %w", err)
	}
	return &reg, nil
}

func (s *RedisStore) Claim(ctx context.Context, email, code string) (bool, error) {
	n, err := claimScript.Run(ctx, s.client, []string{s.key(email)}, code).Int()
	if err != nil {
		return false, fmt.Errorf("failed to claim pending registration: %w", err)
	}
	return n == 1, nil
}
