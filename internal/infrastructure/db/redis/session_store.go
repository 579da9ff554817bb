package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campusops/student-api/internal/core/domain"
)

// Hash fields of a session key.
const (
	fieldUserID    = "user_id"
	fieldRole      = "role"
	fieldProfile   = "profile"
	fieldVisited   = "visited"
	fieldViewCount = "view_count"
)

// SessionStore keeps each session as a Redis hash under session:<id>.
// Counters are plain hash fields bumped with HINCRBY, so concurrent
// increments on the same session are never lost. Every write refreshes the
// TTL, giving sessions a sliding expiry from their last write.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}

func (s *SessionStore) Find(ctx context.Context, id string) (*domain.Session, error) {
	fields, err := s.client.HGetAll(ctx, s.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("session load: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrSessionNotFound
	}

	sess := &domain.Session{
		ID:     id,
		UserID: fields[fieldUserID],
		Role:   fields[fieldRole],
	}
	if raw := fields[fieldProfile]; raw != "" {
		var p domain.Profile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("session profile decode: %w", err)
		}
		sess.Profile = &p
	}
	sess.Visited, _ = strconv.ParseInt(fields[fieldVisited], 10, 64)
	sess.ViewCount, _ = strconv.ParseInt(fields[fieldViewCount], 10, 64)

	return sess, nil
}

// Save persists identity and profile state. Counters are deliberately left
// alone: they are owned by the HINCRBY operations, so a save can never
// clobber a concurrent increment.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	values := map[string]any{
		fieldUserID: sess.UserID,
		fieldRole:   sess.Role,
	}
	if sess.Profile != nil {
		raw, err := json.Marshal(sess.Profile)
		if err != nil {
			return fmt.Errorf("session profile encode: %w", err)
		}
		values[fieldProfile] = string(raw)
	} else {
		values[fieldProfile] = ""
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.key(sess.ID), values)
	pipe.Expire(ctx, s.key(sess.ID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

func (s *SessionStore) IncrementVisited(ctx context.Context, id string) (int64, error) {
	return s.increment(ctx, id, fieldVisited)
}

func (s *SessionStore) IncrementViewCount(ctx context.Context, id string) (int64, error) {
	return s.increment(ctx, id, fieldViewCount)
}

func (s *SessionStore) increment(ctx context.Context, id, field string) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.HIncrBy(ctx, s.key(id), field, 1)
	pipe.Expire(ctx, s.key(id), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("session increment %s: %w", field, err)
	}
	return incr.Val(), nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}
