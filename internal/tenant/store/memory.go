package store

import (
	"context"
	"fmt"
	"sync"

	"medgate/internal/tenant/models"
	"medgate/pkg/platform/sentinel"
)

// InMemory stores tenant configuration in memory for tests and the demo environment.
type InMemory struct {
	mu      sync.RWMutex
	nextID  int64
	tenants map[string]*models.Tenant
}

// NewInMemory creates an in-memory tenant store.
func NewInMemory() *InMemory {
	return &InMemory{tenants: make(map[string]*models.Tenant)}
}

// Create adds the tenant if the mnemonic is not already taken.
func (s *InMemory) Create(_ context.Context, t *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tenants[t.Mnemonic]; exists {
		return fmt.Errorf("tenant mnemonic must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	s.nextID++
	t.ID = s.nextID
	s.tenants[t.Mnemonic] = t
	return nil
}

// GetByMnemonic retrieves a tenant configuration record by mnemonic.
func (s *InMemory) GetByMnemonic(_ context.Context, mnemonic string) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.tenants[mnemonic]; ok {
		return t, nil
	}
	return nil, sentinel.ErrNotFound
}

// Count returns the total number of tenants.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tenants), nil
}
