package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cloudkitchen-sh/bizplan-backend/internal/business_plan/domain"
)

// MemoryStore keeps the document encoded in process. Every Find decodes a
// fresh copy, so callers never share state with the stored document.
type MemoryStore struct {
	mu  sync.RWMutex
	doc []byte

	// FailWith, when set, is returned from every call. Used to simulate an
	// unavailable backend.
	FailWith error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Find(ctx context.Context) (*domain.BusinessPlan, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	data := s.doc
	s.mu.RUnlock()

	if data == nil {
		return nil, domain.ErrNotFound
	}

	var plan domain.BusinessPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal business plan: %w", err)
	}
	return &plan, nil
}

func (s *MemoryStore) Exists(ctx context.Context) (bool, error) {
	if err := s.check(ctx); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc != nil, nil
}

func (s *MemoryStore) Insert(ctx context.Context, plan *domain.BusinessPlan) error {
	if err := s.check(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal business plan: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		return domain.ErrAlreadyExists
	}
	s.doc = data
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return s.check(ctx)
}

// Count reports how many documents are stored (0 or 1).
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return 0
	}
	return 1
}

func (s *MemoryStore) check(ctx context.Context) error {
	if s.FailWith != nil {
		return s.FailWith
	}
	return ctx.Err()
}
