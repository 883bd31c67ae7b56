package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mytestspam8-prog/africash/internal/domain/entity"
	errs "github.com/mytestspam8-prog/africash/internal/domain/error"
	coreport "github.com/mytestspam8-prog/africash/internal/domain/port/core"
)

const redisKeyPrefix = "session:"

// redisPayload is the stored session body; expiry lives in the key TTL
type redisPayload struct {
	UserID    uint64    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RedisStore is an alternative session store for deployments that keep
// sessions out of the primary database. Expiry is enforced by Redis key
// TTLs, so DeleteExpired has nothing to do.
type RedisStore struct {
	client       *redis.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) *RedisStore {
	return &RedisStore{
		client:       client,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func redisKey(token string) string {
	return redisKeyPrefix + token
}

// Create persists a new session with a TTL matching its expiry
func (s *RedisStore) Create(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(redisPayload{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	})
	if err != nil {
		return err
	}

	ttl := session.ExpiresAt.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		return errs.ErrSessionNotFound
	}

	if err := s.client.Set(ctx, redisKey(session.Token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Get retrieves a session by token
func (s *RedisStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, redisKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var payload redisPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.Error("Corrupt session payload", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrSessionNotFound
	}

	return &entity.Session{
		Token:     token,
		UserID:    payload.UserID,
		ExpiresAt: payload.ExpiresAt,
		CreatedAt: payload.CreatedAt,
	}, nil
}

// Touch extends the session's expiry by rewriting the payload and the TTL
func (s *RedisStore) Touch(ctx context.Context, token string, expiresAt time.Time) error {
	session, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	session.ExpiresAt = expiresAt
	return s.Create(ctx, session)
}

// Delete removes a session; deleting an unknown token is not an error
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, redisKey(token)).Err(); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys on its own
func (s *RedisStore) DeleteExpired(context.Context, time.Time) error {
	return nil
}
