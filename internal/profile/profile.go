// Package profile persists the current user's display fields and
// accessibility preferences. Neither affects quiz or scoring logic.
package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"edukids-quiz-service/internal/domain"
)

const (
	settingsKey = "edukids:accessibility"
	userKey     = "edukids:user"
)

// Store is the durable string key-value boundary the manager writes through.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Manager loads and saves profile blobs, tolerating absent or corrupt values.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Settings returns the persisted accessibility settings, falling back to
// defaults when nothing valid is stored.
func (m *Manager) Settings(ctx context.Context) domain.AccessibilitySettings {
	raw, ok, err := m.store.Get(ctx, settingsKey)
	if err != nil || !ok {
		return domain.DefaultAccessibilitySettings()
	}
	var settings domain.AccessibilitySettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return domain.DefaultAccessibilitySettings()
	}
	return settings
}

// SaveSettings overwrites the persisted accessibility blob.
func (m *Manager) SaveSettings(ctx context.Context, settings domain.AccessibilitySettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("%w: marshal settings: %v", domain.ErrPersistence, err)
	}
	if err := m.store.Set(ctx, settingsKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// User returns the cached user profile, if one is stored.
func (m *Manager) User(ctx context.Context) (domain.UserProfile, bool) {
	raw, ok, err := m.store.Get(ctx, userKey)
	if err != nil || !ok {
		return domain.UserProfile{}, false
	}
	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return domain.UserProfile{}, false
	}
	return user, true
}

// SaveUser caches the display fields from registration or an identity provider.
func (m *Manager) SaveUser(ctx context.Context, user domain.UserProfile) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%w: marshal user: %v", domain.ErrPersistence, err)
	}
	if err := m.store.Set(ctx, userKey, string(data)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// ClearUser removes the cached profile on sign-out.
func (m *Manager) ClearUser(ctx context.Context) error {
	if err := m.store.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}
