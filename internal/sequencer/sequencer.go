// Package sequencer serializes mutating operations per account identity.
//
// Every state-mutating operation crosses at least one asynchronous boundary
// (balance query, oracle draw, asset transfer), and a second operation for
// the same identity scheduled inside that gap would settle against a stale
// read. The sequencer closes the gap with an advisory in-flight flag per
// identity: the flag is taken before the first external call and dropped on
// every exit path. A competing operation is rejected immediately rather than
// queued, so contention surfaces to the caller as a retryable error and an
// abandoned operation can never wedge an account.
//
// Operations for distinct identities never contend.
package sequencer

import (
	"errors"
	"sync"
)

// ErrOperationInProgress rejects the second of two concurrent operations on
// one account. No side effects have occurred; the caller may retry.
var ErrOperationInProgress = errors.New("another operation is in flight for this account")

type Sequencer struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New() *Sequencer {
	return &Sequencer{inFlight: make(map[string]struct{})}
}

// Acquire takes the in-flight flag for owner, failing fast if it is held.
func (s *Sequencer) Acquire(owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, held := s.inFlight[owner]
	if held {
		return ErrOperationInProgress
	}

	s.inFlight[owner] = struct{}{}

	return nil
}

// Release drops the flag. Safe to call for a flag that is not held.
func (s *Sequencer) Release(owner string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, owner)
}

// InFlight reports whether an operation currently holds owner's flag.
func (s *Sequencer) InFlight(owner string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, held := s.inFlight[owner]

	return held
}
