package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"

	"edukids-quiz-service/internal/domain"
)

// lastScoresKey holds the per-subject mapping in the durable key-value store.
const lastScoresKey = "edukids:last-scores"

// KeyValue abstracts the durable string key-value store (in-memory, Redis, etc).
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ScoreTracker computes run results and persists the last score per subject.
// Persistence is best-effort: a failed write leaves the in-memory entry valid.
type ScoreTracker struct {
	store KeyValue

	mu     sync.RWMutex
	scores map[string]domain.LastScoreEntry
}

func NewScoreTracker(store KeyValue) *ScoreTracker {
	return &ScoreTracker{
		store:  store,
		scores: make(map[string]domain.LastScoreEntry),
	}
}

// Load reads the persisted mapping. Absent or corrupt data starts empty and
// never surfaces an error to the caller.
func (t *ScoreTracker) Load(ctx context.Context) {
	raw, ok, err := t.store.Get(ctx, lastScoresKey)
	if err != nil || !ok {
		return
	}
	scores := make(map[string]domain.LastScoreEntry)
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return
	}
	t.mu.Lock()
	t.scores = scores
	t.mu.Unlock()
}

// Record builds the LastScoreEntry for a completed run and overwrites the
// persisted entry for the subject. The returned entry is always valid; the
// error, when non-nil, wraps domain.ErrPersistence and is safe to log and drop.
func (t *ScoreTracker) Record(ctx context.Context, subjectKey string, correct, total, trophies int) (domain.LastScoreEntry, error) {
	entry := domain.LastScoreEntry{
		Trophies:   trophies,
		Percentage: Percentage(correct, total),
		Correct:    correct,
		Total:      total,
	}

	t.mu.Lock()
	t.scores[subjectKey] = entry
	data, err := json.Marshal(t.scores)
	t.mu.Unlock()
	if err != nil {
		return entry, fmt.Errorf("%w: marshal last scores: %v", domain.ErrPersistence, err)
	}

	if err := t.store.Set(ctx, lastScoresKey, string(data)); err != nil {
		return entry, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return entry, nil
}

// Last returns the persisted entry for a subject, if any.
func (t *ScoreTracker) Last(subjectKey string) (domain.LastScoreEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	entry, ok := t.scores[subjectKey]
	return entry, ok
}

// Percentage converts a correct count into a 0-100 score, rounding half up on
// the exact ratio: 2/8 -> 25, 5/8 -> 63.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// StarsFor maps a 0-100 percentage to 0-5 stars, rounding half up and
// clamping: 49 -> 2, 50 -> 3, 100 -> 5.
func StarsFor(percentage int) int {
	stars := int(math.Round(float64(percentage) / 100 * 5))
	if stars < 0 {
		stars = 0
	}
	if stars > 5 {
		stars = 5
	}
	return stars
}
