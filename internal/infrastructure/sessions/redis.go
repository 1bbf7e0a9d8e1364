package sessions

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vidserve/backend/internal/application"
	"github.com/vidserve/backend/pkg/helpers"
)

func sessionKey(sessionID string) string {
	return "user:session:" + sessionID
}

// RedisStore keeps sessions as JSON values with a Redis-enforced TTL.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

var _ application.SessionStore = (*RedisStore)(nil)

func (s *RedisStore) Create(ctx context.Context, sess *application.Session, ttl time.Duration) error {
	return helpers.RedisSetJSON(ctx, s.rdb, sessionKey(sess.SessionID), sess, ttl)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*application.Session, error) {
	var sess application.Session
	found, err := helpers.RedisGetJSON(ctx, s.rdb, sessionKey(sessionID), &sess)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return helpers.RedisDel(ctx, s.rdb, sessionKey(sessionID))
}
