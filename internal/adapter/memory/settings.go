package memory

import (
	"context"
	"sync"

	"github.com/heartmarshall/moderation-backend/internal/domain"
)

// SettingsStore holds the current moderation settings.
type SettingsStore struct {
	mu       sync.RWMutex
	settings domain.Settings
}

// NewSettingsStore creates a store initialised with defaults.
func NewSettingsStore(defaults domain.Settings) *SettingsStore {
	return &SettingsStore{settings: defaults}
}

func (s *SettingsStore) Get(_ context.Context) (domain.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

func (s *SettingsStore) Save(_ context.Context, settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	return nil
}
