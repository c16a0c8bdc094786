// Package logbook keeps the durable record of logged portions and favorite
// foods, persisted write-through to a key/value store.
package logbook

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/raine/portionvision/internal/catalog"
	"github.com/raine/portionvision/internal/storage"
	"github.com/rs/zerolog/log"
)

const (
	logsKey      = "portion_logs"
	favoritesKey = "portion_favorites"
)

// Store holds the portion log (most-recent-first, append-only until
// cleared) and the favorite food id set. Every mutation is applied to the
// in-memory state and written through to the KV store in one step.
type Store struct {
	mu        sync.Mutex
	kv        storage.KV
	entries   []LogEntry
	favorites map[string]struct{}
}

// NewStore loads the persisted log and favorites from kv. Missing or
// unparseable state is treated as empty, never as a fatal error.
func NewStore(kv storage.KV) *Store {
	s := &Store{
		kv:        kv,
		favorites: make(map[string]struct{}),
	}
	s.load()
	return s
}

func (s *Store) load() {
	if raw, ok, err := s.kv.Get(logsKey); err != nil {
		log.Warn().Err(err).Msg("failed to read portion log, starting empty")
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.entries); err != nil {
			log.Warn().Err(err).Msg("corrupt portion log, starting empty")
			s.entries = nil
		}
	}

	if raw, ok, err := s.kv.Get(favoritesKey); err != nil {
		log.Warn().Err(err).Msg("failed to read favorites, starting empty")
	} else if ok {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			log.Warn().Err(err).Msg("corrupt favorites, starting empty")
		} else {
			for _, id := range ids {
				s.favorites[id] = struct{}{}
			}
		}
	}
}

func (s *Store) persistEntries() error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}
	return s.kv.Set(logsKey, string(raw))
}

func (s *Store) persistFavorites() error {
	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.kv.Set(favoritesKey, string(raw))
}

// Append prepends an entry to the log (most recent first) and persists the
// updated collection.
func (s *Store) Append(entry LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]LogEntry{entry}, s.entries...)
	if err := s.persistEntries(); err != nil {
		log.Error().Err(err).Msg("failed to persist portion log")
		return err
	}
	log.Info().Str("food", entry.FoodName).Int("calories", entry.Calories).Msg("portion logged")
	return nil
}

// Clear empties the log. This is irreversible; callers are expected to
// have confirmed the action with the user.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	if err := s.kv.Delete(logsKey); err != nil {
		log.Error().Err(err).Msg("failed to clear persisted portion log")
		return err
	}
	log.Info().Msg("portion log cleared")
	return nil
}

// Entries returns the log, most recent first.
func (s *Store) Entries() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// ToggleFavorite flips membership of foodID in the favorite set, persists
// the result and reports whether the food is now a favorite.
func (s *Store) ToggleFavorite(foodID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, present := s.favorites[foodID]
	if present {
		delete(s.favorites, foodID)
	} else {
		s.favorites[foodID] = struct{}{}
	}
	if err := s.persistFavorites(); err != nil {
		log.Error().Err(err).Msg("failed to persist favorites")
		return !present, err
	}
	return !present, nil
}

// IsFavorite reports whether foodID is in the favorite set.
func (s *Store) IsFavorite(foodID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.favorites[foodID]
	return ok
}

// FavoriteCount returns the size of the favorite set.
func (s *Store) FavoriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.favorites)
}

// Analytics derives the log summary in a single pass over the current
// entries. It is recomputed on every call so it can never go stale after
// an append or clear.
func (s *Store) Analytics() Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Analytics{
		PerCategory: make(map[catalog.Category]int),
		EntryCount:  len(s.entries),
	}
	for _, e := range s.entries {
		a.TotalCalories += e.Calories
		if e.Category != "" {
			a.PerCategory[e.Category] += e.Calories
		}
	}
	return a
}
