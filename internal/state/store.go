package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/liftoff/internal/query"
	"github.com/five82/liftoff/internal/spacex"
)

// LaunchesState is the state of the launches binding.
type LaunchesState = query.State[[]spacex.Launch]

// CommentsState is the state of the comments binding.
type CommentsState = query.State[[]spacex.Comment]

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Launches            LaunchesState
	Timeline            spacex.Grouped
	Comments            CommentsState
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // consecutive settled failures across both bindings
}

// IsOffline returns true when requests have failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// CommentsFor returns the comments state when it was fetched for key. A
// comments state keyed by another flight is reported as loading.
func (s Snapshot) CommentsFor(key string) CommentsState {
	if s.Comments.Key != key {
		return CommentsState{Key: key, Loading: true}
	}
	return s.Comments
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store whose bindings are both loading.
func NewStore() *Store {
	return &Store{snapshot: Snapshot{
		Launches: LaunchesState{Loading: true},
		Comments: CommentsState{Loading: true},
	}}
}

// UpdateLaunches records a launches transition. A successful settle regroups
// the timeline; a failure keeps the previous timeline but records the error.
func (s *Store) UpdateLaunches(st LaunchesState) {
	var timeline spacex.Grouped
	if st.HasData {
		timeline = spacex.GroupByDate(st.Data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Launches = cloneState(st)
	if st.HasData {
		s.snapshot.Timeline = timeline
	}
	s.settled(st.Loading, st.Err)
}

// UpdateComments records a comments transition.
func (s *Store) UpdateComments(st CommentsState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Comments = cloneState(st)
	s.settled(st.Loading, st.Err)
}

func (s *Store) settled(loading bool, err error) {
	if loading {
		return
	}
	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Launches = cloneState(s.snapshot.Launches)
	snap.Comments = cloneState(s.snapshot.Comments)
	snap.Timeline = cloneTimeline(s.snapshot.Timeline)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneState[T any](st query.State[[]T]) query.State[[]T] {
	if len(st.Data) > 0 {
		dup := make([]T, len(st.Data))
		copy(dup, st.Data)
		st.Data = dup
	}
	return st
}

func cloneTimeline(g spacex.Grouped) spacex.Grouped {
	if len(g) == 0 {
		return nil
	}
	dup := make(spacex.Grouped, len(g))
	for i, b := range g {
		launches := make([]spacex.Launch, len(b.Launches))
		copy(launches, b.Launches)
		dup[i] = spacex.DateBucket{Date: b.Date, Launches: launches}
	}
	return dup
}
