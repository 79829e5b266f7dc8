package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"quizgame/internal/domain"
)

// ResultStore keeps results in an append-only slice.
type ResultStore struct {
	now func() time.Time

	mu      sync.RWMutex
	results []domain.Result
}

func NewResultStore() *ResultStore {
	return NewResultStoreWithClock(time.Now)
}

// NewResultStoreWithClock allows deterministic timestamps in tests.
func NewResultStoreWithClock(now func() time.Time) *ResultStore {
	return &ResultStore{now: now}
}

func (s *ResultStore) InsertResult(_ context.Context, userID int64, countCorrect, countTotal int) (domain.Result, error) {
	res := domain.Result{
		UserID:       userID,
		Timestamp:    s.now().UnixMilli(),
		CountCorrect: countCorrect,
		CountTotal:   countTotal,
	}
	s.mu.Lock()
	s.results = append(s.results, res)
	s.mu.Unlock()
	return res, nil
}

// ListResults returns all results, newest first.
func (s *ResultStore) ListResults(_ context.Context) ([]domain.Result, error) {
	s.mu.RLock()
	out := make([]domain.Result, len(s.results))
	copy(out, s.results)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out, nil
}

func (s *ResultStore) DeleteResultsForUser(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.results[:0]
	for _, r := range s.results {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	s.results = kept
	return nil
}
