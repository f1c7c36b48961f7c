// Package store holds the process-local persistent state: matches and
// their message threads, the swipe exclusion sets, the active filter,
// and the user's own profile. Mutations apply to memory synchronously;
// each one also issues an asynchronous best-effort write to durable
// storage. In-memory state is authoritative for the running session
// whether or not those writes land.
package store

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kaelif/QuickLink/internal/models"
	"github.com/kaelif/QuickLink/internal/storage"
)

const (
	keyMatches    = "matches"
	keyMessages   = "messages"
	keyRemovedIDs = "removedMatchIds"
	keyBlockedIDs = "blockedUserIds"
)

// WriteErrorFunc observes failed persistence writes. Failures never
// propagate to callers; they are reported here and otherwise swallowed.
type WriteErrorFunc func(key string, err error)

func logWriteError(key string, err error) {
	log.Printf("persist %s: %v", key, err)
}

type MatchStore struct {
	kv         storage.Store
	circulate  bool
	onWriteErr WriteErrorFunc
	now        func() time.Time
	newID      func() string

	mu         sync.Mutex
	matches    []models.ClimberProfile
	messages   map[string][]models.Message
	removedIDs []string
	blockedIDs []string

	writes sync.WaitGroup
}

// NewMatchStore builds an empty store. circulatePassedCards is the
// explicit circulate policy: when true, removed match ids are not
// recorded, so those profiles can resurface in later decks.
func NewMatchStore(kv storage.Store, circulatePassedCards bool, onWriteErr WriteErrorFunc) *MatchStore {
	if onWriteErr == nil {
		onWriteErr = logWriteError
	}
	return &MatchStore{
		kv:         kv,
		circulate:  circulatePassedCards,
		onWriteErr: onWriteErr,
		now:        time.Now,
		newID:      uuid.NewString,
		messages:   map[string][]models.Message{},
	}
}

// Load reads persisted state. Corrupt values fall back to empty state
// silently. Threads whose match no longer exists are dropped here and
// never re-persisted.
func (s *MatchStore) Load(ctx context.Context) error {
	var matches []models.ClimberProfile
	if err := s.loadJSON(ctx, keyMatches, &matches); err != nil {
		return err
	}
	messages := map[string][]models.Message{}
	if err := s.loadJSON(ctx, keyMessages, &messages); err != nil {
		return err
	}
	var removed, blocked []string
	if err := s.loadJSON(ctx, keyRemovedIDs, &removed); err != nil {
		return err
	}
	if err := s.loadJSON(ctx, keyBlockedIDs, &blocked); err != nil {
		return err
	}

	known := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		known[m.ID] = struct{}{}
	}
	for matchID := range messages {
		if _, ok := known[matchID]; !ok {
			delete(messages, matchID)
		}
	}

	s.mu.Lock()
	s.matches = matches
	s.messages = messages
	s.removedIDs = removed
	s.blockedIDs = blocked
	s.mu.Unlock()
	return nil
}

func (s *MatchStore) loadJSON(ctx context.Context, key string, out any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt blob: keep the default and move on.
		return nil
	}
	return nil
}

// AddMatch registers a liked climber. Idempotent by id.
func (s *MatchStore) AddMatch(c models.ClimberProfile) bool {
	s.mu.Lock()
	for _, m := range s.matches {
		if m.ID == c.ID {
			s.mu.Unlock()
			return false
		}
	}
	s.matches = append(s.matches, c)
	s.persistMatchesLocked()
	s.mu.Unlock()
	return true
}

// RemoveMatch deletes the match and its whole thread. Unless the
// circulate policy is active the id is recorded so the profile stays out
// of future decks.
func (s *MatchStore) RemoveMatch(matchID string) {
	s.mu.Lock()
	s.removeMatchLocked(matchID)
	s.mu.Unlock()
}

// BlockUser permanently excludes a profile, removing any existing match
// and thread along the way.
func (s *MatchStore) BlockUser(matchID string) {
	s.mu.Lock()
	blocked := false
	for _, id := range s.blockedIDs {
		if id == matchID {
			blocked = true
			break
		}
	}
	if !blocked {
		s.blockedIDs = append(s.blockedIDs, matchID)
		s.persistJSONLocked(keyBlockedIDs, s.blockedIDs)
	}
	s.removeMatchLocked(matchID)
	s.mu.Unlock()
}

func (s *MatchStore) removeMatchLocked(matchID string) {
	next := s.matches[:0:0]
	found := false
	for _, m := range s.matches {
		if m.ID == matchID {
			found = true
			continue
		}
		next = append(next, m)
	}
	if found {
		s.matches = next
		s.persistMatchesLocked()
	}
	if _, ok := s.messages[matchID]; ok {
		delete(s.messages, matchID)
		s.persistJSONLocked(keyMessages, s.messages)
	}
	if !s.circulate {
		for _, id := range s.removedIDs {
			if id == matchID {
				return
			}
		}
		s.removedIDs = append(s.removedIDs, matchID)
		s.persistJSONLocked(keyRemovedIDs, s.removedIDs)
	}
}

// Reset clears matches, threads, and both exclusion sets. Testing/debug
// affordance only.
func (s *MatchStore) Reset() {
	s.mu.Lock()
	s.matches = nil
	s.messages = map[string][]models.Message{}
	s.removedIDs = nil
	s.blockedIDs = nil
	s.persistMatchesLocked()
	s.persistJSONLocked(keyMessages, s.messages)
	s.persistJSONLocked(keyRemovedIDs, []string{})
	s.persistJSONLocked(keyBlockedIDs, []string{})
	s.mu.Unlock()
}

func (s *MatchStore) Matches() []models.ClimberProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ClimberProfile(nil), s.matches...)
}

func (s *MatchStore) Match(matchID string) (models.ClimberProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == matchID {
			return m, true
		}
	}
	return models.ClimberProfile{}, false
}

func (s *MatchStore) MatchIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.matches))
	for _, m := range s.matches {
		ids = append(ids, m.ID)
	}
	return ids
}

func (s *MatchStore) RemovedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.removedIDs...)
}

func (s *MatchStore) BlockedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.blockedIDs...)
}

// Messages returns the thread for a match, empty for ids that are not a
// current match even if stale persisted data still exists for them.
func (s *MatchStore) Messages(matchID string) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isMatchLocked(matchID) {
		return []models.Message{}
	}
	return append([]models.Message(nil), s.messages[matchID]...)
}

// SendMessage appends a user-authored message to a thread. A stale match
// id is a silent no-op.
func (s *MatchStore) SendMessage(matchID, text string) (models.Message, bool) {
	trimmed := strings.TrimSpace(text)
	if runes := []rune(trimmed); len(runes) > models.MaxMessageLength {
		trimmed = string(runes[:models.MaxMessageLength])
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isMatchLocked(matchID) {
		return models.Message{}, false
	}

	msg := models.Message{
		ID:        s.newID(),
		MatchID:   matchID,
		Text:      trimmed,
		IsFromMe:  true,
		CreatedAt: s.now(),
	}
	s.messages[matchID] = append(s.messages[matchID], msg)
	s.persistJSONLocked(keyMessages, s.messages)
	return msg, true
}

func (s *MatchStore) isMatchLocked(matchID string) bool {
	for _, m := range s.matches {
		if m.ID == matchID {
			return true
		}
	}
	return false
}

func (s *MatchStore) persistMatchesLocked() {
	if s.matches == nil {
		s.persistJSONLocked(keyMatches, []models.ClimberProfile{})
		return
	}
	s.persistJSONLocked(keyMatches, s.matches)
}

// persistJSONLocked snapshots the value while the lock is held and hands
// the write to a goroutine, so callers never wait on storage.
func (s *MatchStore) persistJSONLocked(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.onWriteErr(key, err)
		return
	}
	s.writes.Add(1)
	go func() {
		defer s.writes.Done()
		if err := s.kv.Set(context.Background(), key, data); err != nil {
			s.onWriteErr(key, err)
		}
	}()
}

// Flush waits for in-flight persistence writes. Used by tests and at
// shutdown; normal operation never blocks on it.
func (s *MatchStore) Flush() {
	s.writes.Wait()
}
