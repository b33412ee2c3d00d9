package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/example/restorun-backoffice/internal/domain"
)

const keyPrefix = "session:"

// RedisStore хранит сессии в Redis под ключами session:<token> с TTL.
type RedisStore struct {
	client redis.Cmdable
}

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func key(token string) string { return keyPrefix + token }

func (st *RedisStore) Save(ctx context.Context, s domain.Session, ttl time.Duration) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	return errors.Wrap(st.client.Set(ctx, key(s.Token), raw, ttl).Err(), "redis set session")
}

func (st *RedisStore) Get(ctx context.Context, token string) (domain.Session, error) {
	raw, err := st.client.Get(ctx, key(token)).Bytes()
	if err == redis.Nil {
		return domain.Session{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "redis get session")
	}
	var s domain.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Session{}, errors.Wrap(err, "decode session")
	}
	s.Token = token
	return s, nil
}

func (st *RedisStore) Delete(ctx context.Context, token string) error {
	return errors.Wrap(st.client.Del(ctx, key(token)).Err(), "redis del session")
}

var _ domain.SessionStore = (*RedisStore)(nil)
