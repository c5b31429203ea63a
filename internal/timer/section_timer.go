// Package timer provides the per-section countdown that triggers forced
// submission. The countdown fires its callback exactly once; expiry is
// terminal.
package timer

import (
	"errors"
	"sync"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Paused
	Expired
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

var (
	ErrExpired    = errors.New("timer already expired")
	ErrStopped    = errors.New("timer stopped")
	ErrNotIdle    = errors.New("timer is not idle")
	ErrNotRunning = errors.New("timer is not running")
	ErrNotPaused  = errors.New("timer is not paused")
)

// Section counts down one exam section. onExpire receives the active time
// spent (pauses excluded) and runs on its own goroutine.
type Section struct {
	mu        sync.Mutex
	duration  time.Duration
	remaining time.Duration
	resumedAt time.Time
	state     State
	gen       uint64
	t         *time.Timer
	onExpire  func(elapsed time.Duration)
}

func NewSection(duration time.Duration, onExpire func(elapsed time.Duration)) *Section {
	return &Section{
		duration:  duration,
		remaining: duration,
		onExpire:  onExpire,
	}
}

func (s *Section) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.terminalErr(); err != nil {
		return err
	}
	if s.state != Idle {
		return ErrNotIdle
	}
	s.run()
	return nil
}

func (s *Section) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.terminalErr(); err != nil {
		return err
	}
	if s.state != Running {
		return ErrNotRunning
	}
	s.halt()
	s.remaining -= time.Since(s.resumedAt)
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.state = Paused
	return nil
}

func (s *Section) Resume() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.terminalErr(); err != nil {
		return err
	}
	if s.state != Paused {
		return ErrNotPaused
	}
	s.run()
	return nil
}

// Reset returns a non-terminal timer to idle with its full duration.
func (s *Section) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.terminalErr(); err != nil {
		return err
	}
	s.halt()
	s.remaining = s.duration
	s.state = Idle
	return nil
}

// Stop cancels the countdown without firing. It is a no-op once expired.
func (s *Section) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Expired {
		return
	}
	s.halt()
	s.state = Stopped
}

func (s *Section) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Section) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case Running:
		left := s.remaining - time.Since(s.resumedAt)
		if left < 0 {
			return 0
		}
		return left
	case Expired:
		return 0
	}
	return s.remaining
}

// Elapsed is the active time spent so far.
func (s *Section) Elapsed() time.Duration {
	return s.duration - s.Remaining()
}

func (s *Section) terminalErr() error {
	switch s.state {
	case Expired:
		return ErrExpired
	case Stopped:
		return ErrStopped
	}
	return nil
}

// run and halt must be called with mu held.
func (s *Section) run() {
	s.gen++
	gen := s.gen
	s.resumedAt = time.Now()
	s.state = Running
	s.t = time.AfterFunc(s.remaining, func() { s.fire(gen) })
}

func (s *Section) halt() {
	s.gen++
	if s.t != nil {
		s.t.Stop()
		s.t = nil
	}
}

func (s *Section) fire(gen uint64) {
	s.mu.Lock()
	if s.state != Running || gen != s.gen {
		s.mu.Unlock()
		return
	}
	elapsed := s.duration - s.remaining + time.Since(s.resumedAt)
	s.remaining = 0
	s.state = Expired
	s.t = nil
	s.mu.Unlock()

	if s.onExpire != nil {
		s.onExpire(elapsed)
	}
}
