package quiz

import (
	"context"
	"errors"
	"testing"

	"edukids-quiz-service/internal/domain"
)

func TestPercentageRoundsHalfUp(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{0, 8, 0},
		{2, 8, 25},
		{4, 8, 50},
		{5, 8, 63}, // 62.5 rounds up
		{8, 8, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Percentage(c.correct, c.total); got != c.want {
			t.Fatalf("Percentage(%d, %d)=%d, want %d", c.correct, c.total, got, c.want)
		}
	}
}

func TestStarsForContract(t *testing.T) {
	cases := map[int]int{
		0:   0,
		9:   0,
		10:  1,
		49:  2, // round(2.45) = 2
		50:  3, // round(2.5) = 3
		89:  4,
		90:  5, // round(4.5) = 5
		100: 5,
	}
	for pct, want := range cases {
		if got := StarsFor(pct); got != want {
			t.Fatalf("StarsFor(%d)=%d, want %d", pct, got, want)
		}
	}

	// Monotonic non-decreasing across the whole range.
	prev := StarsFor(0)
	for pct := 1; pct <= 100; pct++ {
		cur := StarsFor(pct)
		if cur < prev {
			t.Fatalf("StarsFor not monotonic at %d: %d < %d", pct, cur, prev)
		}
		prev = cur
	}
}

func TestScoreTrackerRecordOverwritesBySubject(t *testing.T) {
	ctx := context.Background()
	store := newMapKV()
	tracker := NewScoreTracker(store)

	entry, err := tracker.Record(ctx, "math", 8, 8, 80)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if entry.Percentage != 100 || entry.Trophies != 80 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	if _, err := tracker.Record(ctx, "math", 2, 8, -10); err != nil {
		t.Fatalf("record again: %v", err)
	}
	last, ok := tracker.Last("math")
	if !ok || last.Percentage != 25 || last.Trophies != -10 {
		t.Fatalf("expected overwritten entry, got %+v ok=%v", last, ok)
	}

	// A fresh tracker sees the persisted mapping.
	reloaded := NewScoreTracker(store)
	reloaded.Load(ctx)
	last, ok = reloaded.Last("math")
	if !ok || last.Correct != 2 || last.Total != 8 {
		t.Fatalf("expected reloaded entry, got %+v ok=%v", last, ok)
	}
}

func TestScoreTrackerToleratesPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	store := newMapKV()
	store.failSet = true
	tracker := NewScoreTracker(store)

	entry, err := tracker.Record(ctx, "science", 5, 8, 35)
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if entry.Percentage != 63 {
		t.Fatalf("expected in-memory entry despite failed write, got %+v", entry)
	}
	if last, ok := tracker.Last("science"); !ok || last != entry {
		t.Fatalf("expected in-memory entry retained, got %+v ok=%v", last, ok)
	}
}

func TestScoreTrackerLoadToleratesCorruptBlob(t *testing.T) {
	ctx := context.Background()
	store := newMapKV()
	store.values[lastScoresKey] = "{not json"
	tracker := NewScoreTracker(store)
	tracker.Load(ctx)
	if _, ok := tracker.Last("math"); ok {
		t.Fatalf("expected empty mapping after corrupt load")
	}
}

// mapKV is a tiny in-package KeyValue for unit tests.
type mapKV struct {
	values  map[string]string
	failSet bool
}

func newMapKV() *mapKV {
	return &mapKV{values: make(map[string]string)}
}

func (m *mapKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapKV) Set(_ context.Context, key, value string) error {
	if m.failSet {
		return errors.New("quota exceeded")
	}
	m.values[key] = value
	return nil
}

func (m *mapKV) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}
