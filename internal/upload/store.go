package upload

import (
	"sync"
	"time"

	"ifcsheet/domain/core"
	domain "ifcsheet/domain/upload"
)

type entry struct {
	file    *domain.File
	expires time.Time
}

// Store keeps uploaded files in memory for the length of one interaction so
// follow-up choices (sheet, column, chart type, export) can re-run the
// analysis on the same bytes. Entries expire TTL after their last access;
// expired entries are swept on Put. Nothing is persisted.
type Store struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[core.UploadID]*entry
	now        func() time.Time
}

// NewStore creates a store holding at most maxEntries files
func NewStore(ttl time.Duration, maxEntries int) *Store {
	return &Store{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[core.UploadID]*entry),
		now:        time.Now,
	}
}

// Put stores f under a fresh ID, evicting the entry closest to expiry when full
func (s *Store) Put(f *domain.File) core.UploadID {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	for len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}

	f.ID = core.NewUploadID()
	s.entries[f.ID] = &entry{file: f, expires: now.Add(s.ttl)}
	return f.ID
}

// Get returns the file stored under id and extends its lifetime
func (s *Store) Get(id core.UploadID) (*domain.File, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[id]
	if !ok || !now.Before(e.expires) {
		delete(s.entries, id)
		return nil, core.NewNotFoundError(core.ErrUploadNotFound, id.String())
	}
	e.expires = now.Add(s.ttl)
	return e.file, nil
}

// Delete drops id; unknown ids are ignored
func (s *Store) Delete(id core.UploadID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

// Len returns the number of live entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var oldest core.UploadID
	var at time.Time
	for id, e := range s.entries {
		if oldest == "" || e.expires.Before(at) {
			oldest, at = id, e.expires
		}
	}
	delete(s.entries, oldest)
}
