package storage

import (
	"context"
	"sync"

	"github.com/skyfare/flightbooking/internal/domain"
)

// MemoryStore is a process-local Store used in tests and when no redis is
// configured. State does not survive a restart.
type MemoryStore struct {
	mu       sync.Mutex
	searches []domain.RecentSearch
	history  []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) RecentSearches(_ context.Context) ([]domain.RecentSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RecentSearch, len(s.searches))
	copy(out, s.searches)
	return out, nil
}

func (s *MemoryStore) SaveRecentSearches(_ context.Context, searches []domain.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = make([]domain.RecentSearch, len(searches))
	copy(s.searches, searches)
	return nil
}

func (s *MemoryStore) BookingHistory(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out, nil
}

func (s *MemoryStore) AppendBookingHistory(_ context.Context, reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, reference)
	return nil
}

var _ Store = (*MemoryStore)(nil)
