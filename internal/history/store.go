// Package history provides an append-only, in-memory version store for resume snapshots.
// It is a reference implementation of the version-history collaborator: the
// scoring and optimization core stays pure while this package owns IDs and
// timestamps. Persistence remains the host application's responsibility.
package history

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/diffing"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Version is one immutable entry in the history.
type Version struct {
	ID        uuid.UUID             `json:"id"`
	CreatedAt time.Time             `json:"created_at"`
	Label     string                `json:"label,omitempty"`
	Snapshot  *types.ResumeSnapshot `json:"snapshot"`
}

// NotFoundError is returned when a version ID is not in the store.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("version %s not found", e.ID)
}

// Store is an append-only version history. Versions are never modified or
// removed once appended. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	versions []Version
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Append clones the snapshot and records it as a new version, returning the
// stored entry. The caller's snapshot stays independent of the store.
func (s *Store) Append(snapshot *types.ResumeSnapshot, label string) Version {
	version := Version{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Label:     label,
		Snapshot:  snapshot.Clone(),
	}

	s.mu.Lock()
	s.versions = append(s.versions, version)
	s.mu.Unlock()

	return version
}

// Latest returns the most recently appended version, or false when empty.
func (s *Store) Latest() (Version, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.versions) == 0 {
		return Version{}, false
	}
	return s.versions[len(s.versions)-1], true
}

// Get returns the version with the given ID.
func (s *Store) Get(id uuid.UUID) (Version, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, version := range s.versions {
		if version.ID == id {
			return version, nil
		}
	}
	return Version{}, &NotFoundError{ID: id}
}

// List returns all versions in append order.
func (s *Store) List() []Version {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listed := make([]Version, len(s.versions))
	copy(listed, s.versions)
	return listed
}

// Len returns the number of stored versions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.versions)
}

// DiffLatest compares the two most recent versions, oldest as the base.
// Returns false when fewer than two versions exist.
func (s *Store) DiffLatest() (*diffing.Diff, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.versions) < 2 {
		return nil, false
	}
	previous := s.versions[len(s.versions)-2]
	latest := s.versions[len(s.versions)-1]
	return diffing.Compare(previous.Snapshot, latest.Snapshot), true
}
