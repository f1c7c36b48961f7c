package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/storage"
)

const keyUserProfile = "userProfile"

// ProfileStore holds the local user's own profile, mutated wholesale
// from the edit screen.
type ProfileStore struct {
	kv         storage.Store
	onWriteErr WriteErrorFunc

	mu      sync.Mutex
	profile models.UserProfile

	writes sync.WaitGroup
}

func NewProfileStore(kv storage.Store, onWriteErr WriteErrorFunc) *ProfileStore {
	if onWriteErr == nil {
		onWriteErr = logWriteError
	}
	return &ProfileStore{
		kv:         kv,
		onWriteErr: onWriteErr,
		profile:    models.DefaultUserProfile(),
	}
}

// Load merges the persisted profile over the defaults. Corrupt JSON
// keeps the defaults.
func (s *ProfileStore) Load(ctx context.Context) error {
	data, err := s.kv.Get(ctx, keyUserProfile)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}

	profile := models.DefaultUserProfile()
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil
	}
	if profile.PhotoURLs == nil {
		profile.PhotoURLs = []string{}
	}
	if profile.ClimbingTypes == nil {
		profile.ClimbingTypes = []models.ClimbingType{}
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *ProfileStore) Get() models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

func (s *ProfileStore) Set(profile models.UserProfile) {
	if profile.PhotoURLs == nil {
		profile.PhotoURLs = []string{}
	}
	if profile.ClimbingTypes == nil {
		profile.ClimbingTypes = []models.ClimbingType{}
	}
	s.mu.Lock()
	s.profile = profile
	s.persistLocked()
	s.mu.Unlock()
}

func (s *ProfileStore) persistLocked() {
	data, err := json.Marshal(s.profile)
	if err != nil {
		s.onWriteErr(keyUserProfile, err)
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.kv.Set(context.Background(), keyUserProfile, data); err != nil {
			s.onWriteErr(keyUserProfile, err)
		}
	}()
}

func (s *ProfileStore) Flush() {
	s.writes.Wait()
}
