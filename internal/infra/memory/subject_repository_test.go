package memory

import (
	"context"
	"testing"
	"time"

	"edukids-quiz-service/internal/domain"
)

func TestSubjectRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		SubjectLoader: NewStaticSubjectLoader(map[string]domain.Subject{
			"math": sampleSubject(),
		}, []string{"math"}),
	}
	repo := NewSubjectRepository(loader, time.Minute)

	if _, err := repo.GetSubject(context.Background(), "math"); err != nil {
		t.Fatalf("get subject: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetSubject(context.Background(), "math"); err != nil {
		t.Fatalf("get subject 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStaticLoaderUnknownSubject(t *testing.T) {
	loader := NewStaticSubjectLoader(map[string]domain.Subject{"math": sampleSubject()}, nil)
	if _, err := loader.LoadSubject(context.Background(), "alchemy"); err != domain.ErrUnknownSubject {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestStaticLoaderListKeepsOrder(t *testing.T) {
	subjects := map[string]domain.Subject{
		"math":    {Key: "math"},
		"science": {Key: "science"},
		"art":     {Key: "art"},
	}
	loader := NewStaticSubjectLoader(subjects, []string{"science", "art", "math"})
	list, err := loader.ListSubjects(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"science", "art", "math"}
	for i, key := range want {
		if list[i].Key != key {
			t.Fatalf("expected order %v, got %+v", want, list)
		}
	}
}

type countingLoader struct {
	SubjectLoader
	calls int
}

func (l *countingLoader) LoadSubject(ctx context.Context, key string) (domain.Subject, error) {
	l.calls++
	return l.SubjectLoader.LoadSubject(ctx, key)
}

func sampleSubject() domain.Subject {
	return domain.Subject{
		Key:  "math",
		Name: "Matemática",
		Icon: "M",
		Questions: []domain.Question{
			{
				Text:         "Quanto é 2 + 2?",
				Options:      []string{"3", "4", "5", "6"},
				CorrectIndex: 1,
				Hint:         "Junte 2 com mais 2.",
			},
		},
	}
}
