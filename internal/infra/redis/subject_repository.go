package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"edukids-quiz-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// SubjectLoader fetches subject content from a backing store (e.g., Postgres).
type SubjectLoader interface {
	LoadSubject(ctx context.Context, key string) (domain.Subject, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
}

// SubjectRepository caches whole subjects as JSON values in Redis and falls
// back to the loader on cache miss. Unlike a leaderboard service that only
// needs the answer key, the engine serves full question text and hints, so
// the entire subject document is cached.
type SubjectRepository struct {
	client *redis.Client
	loader SubjectLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewSubjectRepository(client *redis.Client, loader SubjectLoader, ttl time.Duration) *SubjectRepository {
	return &SubjectRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *SubjectRepository) GetSubject(ctx context.Context, key string) (domain.Subject, error) {
	cacheKey := r.subjectKey(key)

	if raw, err := r.client.Get(ctx, cacheKey).Result(); err == nil {
		var subject domain.Subject
		if err := json.Unmarshal([]byte(raw), &subject); err == nil {
			return subject, nil
		}
		// Corrupt cache entry: drop it and reload.
		_ = r.client.Del(ctx, cacheKey).Err()
	}

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := r.client.Get(ctx, cacheKey).Result(); err == nil {
			var subject domain.Subject
			if err := json.Unmarshal([]byte(raw), &subject); err == nil {
				return subject, nil
			}
		}

		subject, err := r.loader.LoadSubject(ctx, key)
		if err != nil {
			return domain.Subject{}, err
		}

		if data, err := json.Marshal(subject); err == nil {
			_ = r.client.Set(ctx, cacheKey, data, r.ttlWithJitter()).Err()
		}
		return subject, nil
	})
	if err != nil {
		return domain.Subject{}, err
	}
	return result.(domain.Subject), nil
}

// ListSubjects passes through to the loader; the menu is read once per connect.
func (r *SubjectRepository) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	return r.loader.ListSubjects(ctx)
}

func (r *SubjectRepository) subjectKey(key string) string {
	return "edukids:subject:" + key
}

func (r *SubjectRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
