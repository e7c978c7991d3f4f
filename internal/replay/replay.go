// Package replay lets a frame loop drive a blocking search one callback at a time.
//
// The search runs on its own goroutine but only while the caller is inside
// Advance. Between Advance calls it is parked inside its step callback, so the
// caller may read the grid without locking.
package replay

import (
	"sync/atomic"

	"github.com/pdrpinto/gridpath"
)

// SearchFunc runs one search, invoking onStep after every step and polling
// cancelled at the engine's cancellation points.
type SearchFunc func(onStep gridpath.StepFunc, cancelled func() bool) (gridpath.Result, error)

// Outcome is the final result of a session's search.
type Outcome struct {
	Result gridpath.Result
	Err    error
}

// Session coordinates one search. It is not safe for concurrent use; a single
// frame loop owns it.
type Session struct {
	advance   chan struct{}
	stepped   chan struct{}
	done      chan Outcome
	cancelled atomic.Bool
	outcome   *Outcome
	steps     int
}

// Start launches search parked before its first instruction. Nothing runs
// until the first Advance.
func Start(search SearchFunc) *Session {
	s := &Session{
		advance: make(chan struct{}),
		stepped: make(chan struct{}),
		done:    make(chan Outcome, 1),
	}
	go func() {
		<-s.advance
		result, err := search(s.onStep, s.cancelled.Load)
		s.done <- Outcome{Result: result, Err: err}
	}()
	return s
}

func (s *Session) onStep() {
	s.stepped <- struct{}{}
	<-s.advance
}

// Advance lets the search run until its next step callback or until it
// finishes. It reports whether the search is still in progress.
func (s *Session) Advance() bool {
	if s.outcome != nil {
		return false
	}
	s.advance <- struct{}{}
	select {
	case <-s.stepped:
		s.steps++
		return true
	case outcome := <-s.done:
		s.outcome = &outcome
		return false
	}
}

// Cancel asks the search to stop at its next cancellation point. The search
// still needs Advance calls to observe the request.
func (s *Session) Cancel() { s.cancelled.Store(true) }

// Steps returns how many step callbacks have been released so far.
func (s *Session) Steps() int { return s.steps }

// Outcome returns the result once the search has finished.
func (s *Session) Outcome() (Outcome, bool) {
	if s.outcome == nil {
		return Outcome{}, false
	}
	return *s.outcome, true
}

// Drain advances until the search finishes and returns its outcome.
func (s *Session) Drain() Outcome {
	for s.Advance() {
	}
	return *s.outcome
}
