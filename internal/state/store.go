// Package state holds the application state: the fetched party list and the
// currently selected party.
//
// The store is only mutated through its setters, which the fetch flows in
// package app call after a successful response. Renderers read immutable
// Snapshots and never mutate.
package state

import (
	"sync"

	"github.com/rshade/partyplanner/internal/party"
)

// Store owns the two state cells. It is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	parties     []party.Party
	selected    party.Party
	hasSelected bool

	// issued is the last selection token handed out; committed is the token
	// of the selection currently shown.
	issued    uint64
	committed uint64
}

// New returns a store with an empty list and no selection.
func New() *Store {
	return &Store{parties: []party.Party{}}
}

// SetParties replaces the party list wholesale.
func (s *Store) SetParties(list []party.Party) {
	cp := make([]party.Party, len(list))
	copy(cp, list)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.parties = cp
}

// SetSelected replaces the selection wholesale.
func (s *Store) SetSelected(p party.Party) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = p
	s.hasSelected = true
}

// BeginSelection issues a token for a detail fetch that is about to start.
// Tokens increase in call order.
func (s *Store) BeginSelection() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// CommitSelection sets p as the selection unless a selection begun later has
// already been committed. It reports whether p was stored.
func (s *Store) CommitSelection(token uint64, p party.Party) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.committed {
		return false
	}
	s.committed = token
	s.selected = p
	s.hasSelected = true
	return true
}

// Parties returns a copy of the party list.
func (s *Store) Parties() []party.Party {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := make([]party.Party, len(s.parties))
	copy(cp, s.parties)
	return cp
}

// Selected returns the selected party and whether there is one.
func (s *Store) Selected() (party.Party, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.hasSelected
}

// Snapshot returns a consistent copy of both cells.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Parties: make([]party.Party, len(s.parties))}
	copy(snap.Parties, s.parties)
	if s.hasSelected {
		p := s.selected
		snap.Selected = &p
	}
	return snap
}

// Snapshot is a read-only view of the state handed to renderers.
type Snapshot struct {
	Parties  []party.Party
	Selected *party.Party // nil when nothing is selected
}

// HasParties reports whether the list is non-empty.
func (s Snapshot) HasParties() bool {
	return len(s.Parties) > 0
}

// HasSelection reports whether a party is selected.
func (s Snapshot) HasSelection() bool {
	return s.Selected != nil
}

// Party returns the listed party with the given id.
func (s Snapshot) Party(id int) (party.Party, bool) {
	for _, p := range s.Parties {
		if p.ID == id {
			return p, true
		}
	}
	return party.Party{}, false
}

// WithSelected returns a copy of s showing p as the selection. The store is
// not changed.
func (s Snapshot) WithSelected(p party.Party) Snapshot {
	s.Selected = &p
	return s
}
