package redis

import (
	"testing"
	"time"

	"edukids-quiz-service/internal/infra/memory"
	"edukids-quiz-service/internal/quiz"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestSessionStoreSetsAndClearsKeys(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewSessionStore(client, time.Minute, func() *quiz.Session {
		return quiz.NewSession(quiz.NewScoreTracker(memory.NewKV()), quiz.Config{RunSeconds: 180})
	})

	_ = store.GetOrCreate("client-1")
	if !mr.Exists("edukids:session:client-1") {
		t.Fatalf("expected redis key to be set")
	}

	store.Delete("client-1")
	if mr.Exists("edukids:session:client-1") {
		t.Fatalf("expected redis key to be removed")
	}
}
