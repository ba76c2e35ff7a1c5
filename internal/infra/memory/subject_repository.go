package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"edukids-quiz-service/internal/domain"
	"golang.org/x/sync/singleflight"
)

// SubjectLoader fetches subject content from a backing store (e.g., Postgres).
type SubjectLoader interface {
	LoadSubject(ctx context.Context, key string) (domain.Subject, error)
	ListSubjects(ctx context.Context) ([]domain.Subject, error)
}

// SubjectRepository caches subjects with TTL to avoid repeated store hits.
type SubjectRepository struct {
	loader SubjectLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedSubject
}

type cachedSubject struct {
	subject   domain.Subject
	expiresAt time.Time
}

func NewSubjectRepository(loader SubjectLoader, ttl time.Duration) *SubjectRepository {
	return &SubjectRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedSubject),
	}
}

func (r *SubjectRepository) GetSubject(ctx context.Context, key string) (domain.Subject, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.subject, nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(key, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.subject, nil
		}
		r.mu.RUnlock()

		subject, err := r.loader.LoadSubject(ctx, key)
		if err != nil {
			return domain.Subject{}, err
		}

		r.mu.Lock()
		r.cache[key] = cachedSubject{
			subject:   subject,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
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

func (r *SubjectRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticSubjectLoader serves a fixed in-memory bank (the builtin content and tests).
type StaticSubjectLoader struct {
	subjects map[string]domain.Subject
	order    []string
}

func NewStaticSubjectLoader(subjects map[string]domain.Subject, order []string) *StaticSubjectLoader {
	if len(order) == 0 {
		for key := range subjects {
			order = append(order, key)
		}
	}
	return &StaticSubjectLoader{subjects: subjects, order: order}
}

func (l *StaticSubjectLoader) LoadSubject(_ context.Context, key string) (domain.Subject, error) {
	if subject, ok := l.subjects[key]; ok {
		return subject, nil
	}
	return domain.Subject{}, domain.ErrUnknownSubject
}

func (l *StaticSubjectLoader) ListSubjects(_ context.Context) ([]domain.Subject, error) {
	subjects := make([]domain.Subject, 0, len(l.order))
	for _, key := range l.order {
		if subject, ok := l.subjects[key]; ok {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}
