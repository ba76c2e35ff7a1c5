package profile

import (
	"context"
	"errors"
	"testing"

	"edukids-quiz-service/internal/domain"
	"edukids-quiz-service/internal/infra/memory"
)

func TestSettingsDefaultWhenAbsent(t *testing.T) {
	manager := NewManager(memory.NewKV())
	settings := manager.Settings(context.Background())
	if settings != domain.DefaultAccessibilitySettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(memory.NewKV())

	saved := domain.AccessibilitySettings{TextScale: 1.4, ZoomLevel: 1.2, DarkMode: true, SoundEnabled: false}
	if err := manager.SaveSettings(ctx, saved); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if got := manager.Settings(ctx); got != saved {
		t.Fatalf("expected %+v, got %+v", saved, got)
	}
}

func TestSettingsDefaultWhenCorrupt(t *testing.T) {
	ctx := context.Background()
	store := memory.NewKV()
	_ = store.Set(ctx, "edukids:accessibility", "{broken")
	manager := NewManager(store)
	if got := manager.Settings(ctx); got != domain.DefaultAccessibilitySettings() {
		t.Fatalf("expected defaults on corrupt blob, got %+v", got)
	}
}

func TestUserCacheLifecycle(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(memory.NewKV())

	if _, ok := manager.User(ctx); ok {
		t.Fatalf("expected no cached user")
	}

	user := domain.UserProfile{
		Name:      "Ana Souza",
		Nickname:  "Ana",
		Email:     "ana@example.com",
		AvatarURL: "https://example.com/ana.png",
		Provider:  "google",
	}
	if err := manager.SaveUser(ctx, user); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, ok := manager.User(ctx)
	if !ok || got != user {
		t.Fatalf("expected cached user %+v, got %+v ok=%v", user, got, ok)
	}

	if err := manager.ClearUser(ctx); err != nil {
		t.Fatalf("clear user: %v", err)
	}
	if _, ok := manager.User(ctx); ok {
		t.Fatalf("expected user cleared")
	}
}

func TestSaveSettingsWrapsPersistenceFailure(t *testing.T) {
	manager := NewManager(failingStore{})
	err := manager.SaveSettings(context.Background(), domain.DefaultAccessibilitySettings())
	if !errors.Is(err, domain.ErrPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("storage disabled")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("storage disabled")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("storage disabled")
}
