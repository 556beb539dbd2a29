package store

import (
	"context"
	"sync"

	"mirath/internal/estate"
)

// InMemoryStore keeps estates and rosters in process memory. Used in tests
// and when no PostgreSQL DSN is configured.
type InMemoryStore struct {
	mu      sync.RWMutex
	estates map[string]*estate.Estate
	heirs   map[string][]*estate.HeirRecord
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		estates: make(map[string]*estate.Estate),
		heirs:   make(map[string][]*estate.HeirRecord),
	}
}

func (s *InMemoryStore) SaveEstate(_ context.Context, e *estate.Estate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *e
	s.estates[e.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindEstate(_ context.Context, id string) (*estate.Estate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.estates[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (s *InMemoryStore) AddHeir(_ context.Context, h *estate.HeirRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.estates[h.EstateID]; !ok {
		return ErrNotFound
	}
	copied := *h
	s.heirs[h.EstateID] = append(s.heirs[h.EstateID], &copied)
	return nil
}

func (s *InMemoryStore) ListHeirs(_ context.Context, estateID string) ([]*estate.HeirRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.estates[estateID]; !ok {
		return nil, ErrNotFound
	}
	out := make([]*estate.HeirRecord, 0, len(s.heirs[estateID]))
	for _, h := range s.heirs[estateID] {
		copied := *h
		out = append(out, &copied)
	}
	return out, nil
}

func (s *InMemoryStore) RemoveHeir(_ context.Context, estateID, heirID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.heirs[estateID]
	for i, h := range records {
		if h.ID == heirID {
			s.heirs[estateID] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
