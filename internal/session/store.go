// Package session keeps each user's most recently submitted roster in memory.
package session

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/lox/teamsplit/internal/roster"
)

// Store maps user IDs to rosters. It is safe for concurrent use; writes for
// different users never contend on a shared lock.
type Store struct {
	rosters *xsync.Map[int64, roster.Roster]
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{rosters: xsync.NewMap[int64, roster.Roster]()}
}

// Put replaces the roster stored for userID.
func (s *Store) Put(userID int64, r roster.Roster) {
	s.rosters.Store(userID, r.Clone())
}

// Get returns a copy of the roster stored for userID, or an empty roster if
// the user has no session yet.
func (s *Store) Get(userID int64) roster.Roster {
	r, ok := s.rosters.Load(userID)
	if !ok {
		return roster.Roster{}
	}
	return r.Clone()
}

// Has reports whether userID has a stored roster.
func (s *Store) Has(userID int64) bool {
	_, ok := s.rosters.Load(userID)
	return ok
}

// Len returns the number of users with a session.
func (s *Store) Len() int {
	return s.rosters.Size()
}
