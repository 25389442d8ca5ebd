package main

import (
	"errors"
	"sync"

	"github.com/dodgebc/goban/weiqi"
)

var errDuplicate = errors.New("duplicate final position")

type positionKey struct {
	size int
	hash uint64
}

// CheckManager counts replay results and removes duplicate positions
type CheckManager struct {

	// configuration
	Deduplicate bool
	Verbose     bool

	// counters
	NumReplayed  int
	NumFailed    int
	NumRejected  int
	NumDuplicate int

	// final positions already written
	seen map[positionKey]bool
	mux  sync.Mutex
}

// NewCheckManager properly initializes a CheckManager
func NewCheckManager(deduplicate, verbose bool) *CheckManager {
	checker := &CheckManager{
		Deduplicate: deduplicate,
		Verbose:     verbose,
	}
	if deduplicate {
		checker.seen = make(map[positionKey]bool)
	}
	return checker
}

// Check records a replayed script and returns whether it should be
// written (nil means yes)
func (checker *CheckManager) Check(rec Record, b *weiqi.Board) error {
	checker.mux.Lock()
	defer checker.mux.Unlock()
	checker.NumReplayed++
	if len(rec.Rejected) > 0 {
		checker.NumRejected++
	}
	if checker.Deduplicate {
		key := positionKey{b.Size(), b.Hash()}
		if checker.seen[key] {
			checker.NumDuplicate++
			return errDuplicate
		}
		checker.seen[key] = true
	}
	return nil
}

// AddFailed records scripts that could not be parsed
func (checker *CheckManager) AddFailed(n int) {
	checker.mux.Lock()
	defer checker.mux.Unlock()
	checker.NumFailed += n
}

// Counts returns a consistent copy of the counters
func (checker *CheckManager) Counts() (replayed, failed, rejected, duplicate int) {
	checker.mux.Lock()
	defer checker.mux.Unlock()
	return checker.NumReplayed, checker.NumFailed, checker.NumRejected, checker.NumDuplicate
}
