package store

import (
	"sort"
	"sync"

	"github.com/j-r-j/gridiron/internal/domain"
)

// MemoryStore keeps a thread-safe snapshot of completed seasons in memory,
// keyed by year.
type MemoryStore struct {
	mu      sync.RWMutex
	seasons map[int]domain.SeasonRecord
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons: make(map[int]domain.SeasonRecord),
	}
}

// PutSeason stores or replaces the record for a year.
func (s *MemoryStore) PutSeason(rec domain.SeasonRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons[rec.Year] = rec
}

// Season retrieves one year's record.
func (s *MemoryStore) Season(year int) (domain.SeasonRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.seasons[year]
	return rec, ok
}

// Years returns the stored years in ascending order.
func (s *MemoryStore) Years() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	years := make([]int, 0, len(s.seasons))
	for y := range s.seasons {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Latest returns the most recent stored season.
func (s *MemoryStore) Latest() (domain.SeasonRecord, bool) {
	years := s.Years()
	if len(years) == 0 {
		return domain.SeasonRecord{}, false
	}
	return s.Season(years[len(years)-1])
}
