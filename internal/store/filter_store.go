package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/storage"
)

const keyMatchFilter = "matchFilter"

// FilterStore holds the active match filter, mutated wholesale from the
// settings screen.
type FilterStore struct {
	kv         storage.Store
	onWriteErr WriteErrorFunc

	mu     sync.Mutex
	filter models.MatchFilter

	writes sync.WaitGroup
}

func NewFilterStore(kv storage.Store, onWriteErr WriteErrorFunc) *FilterStore {
	if onWriteErr == nil {
		onWriteErr = logWriteError
	}
	return &FilterStore{
		kv:         kv,
		onWriteErr: onWriteErr,
		filter:     models.DefaultMatchFilter(),
	}
}

// Load merges the persisted filter over the defaults, so fields missing
// from older blobs fall back. Corrupt JSON keeps the defaults.
func (s *FilterStore) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, keyMatchFilter)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	filter := models.DefaultMatchFilter()
	if err := json.Unmarshal(data, &filter); err != nil {
		return nil
	}

	s.mu.Lock()
	s.filter = filter.Normalized()
	s.mu.Unlock()
	return nil
}

func (s *FilterStore) Get() models.MatchFilter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *FilterStore) Set(filter models.MatchFilter) models.MatchFilter {
	normalized := filter.Normalized()
	s.mu.Lock()
	s.filter = normalized
	s.persistLocked()
	s.mu.Unlock()
	return normalized
}

func (s *FilterStore) persistLocked() {
	data, err := json.Marshal(s.filter)
	if err != nil {
		s.onWriteErr(keyMatchFilter, err)
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.kv.Set(context.Background(), keyMatchFilter, data); err != nil {
			s.onWriteErr(keyMatchFilter, err)
		}
	}()
}

func (s *FilterStore) Flush() {
	s.writes.Wait()
}
