package timer

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitFired(t *testing.T, ch <-chan time.Duration) time.Duration {
	t.Helper()
	select {
	case elapsed := <-ch:
		return elapsed
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
	return 0
}

func TestSection_FiresOnceNeverEarly(t *testing.T) {
	const d = 40 * time.Millisecond
	var calls atomic.Int32
	fired := make(chan time.Duration, 4)
	s := NewSection(d, func(elapsed time.Duration) {
		calls.Add(1)
		fired <- elapsed
	})

	started := time.Now()
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	elapsed := waitFired(t, fired)
	if since := time.Since(started); since < d {
		t.Fatalf("fired after %v, before duration %v", since, d)
	}
	if elapsed < d {
		t.Fatalf("reported elapsed %v shorter than duration %v", elapsed, d)
	}

	time.Sleep(2 * d)
	if n := calls.Load(); n != 1 {
		t.Fatalf("callback ran %d times, want 1", n)
	}
	if s.State() != Expired || s.Remaining() != 0 {
		t.Fatalf("state=%s remaining=%v after expiry", s.State(), s.Remaining())
	}
}

func TestSection_ExpiredIsTerminal(t *testing.T) {
	fired := make(chan time.Duration, 1)
	s := NewSection(5*time.Millisecond, func(elapsed time.Duration) { fired <- elapsed })
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	waitFired(t, fired)

	for name, op := range map[string]func() error{"Start": s.Start, "Resume": s.Resume, "Reset": s.Reset, "Pause": s.Pause} {
		if err := op(); !errors.Is(err, ErrExpired) {
			t.Errorf("%s after expiry = %v, want ErrExpired", name, err)
		}
	}
	s.Stop()
	if s.State() != Expired {
		t.Fatalf("Stop changed an expired timer to %s", s.State())
	}
}

func TestSection_PauseHoldsCountdown(t *testing.T) {
	const d = 50 * time.Millisecond
	fired := make(chan time.Duration, 1)
	s := NewSection(d, func(elapsed time.Duration) { fired <- elapsed })

	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Pause(); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	select {
	case <-fired:
		t.Fatal("fired while paused")
	case <-time.After(3 * d):
	}
	if s.State() != Paused {
		t.Fatalf("state = %s, want paused", s.State())
	}
	if rem := s.Remaining(); rem <= 0 || rem > d {
		t.Fatalf("remaining while paused = %v", rem)
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if elapsed := waitFired(t, fired); elapsed >= 3*d {
		t.Fatalf("elapsed %v includes paused time", elapsed)
	}
}

func TestSection_ResetAndStop(t *testing.T) {
	const d = 30 * time.Millisecond
	var calls atomic.Int32
	s := NewSection(d, func(time.Duration) { calls.Add(1) })

	if err := s.Pause(); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("Pause from idle = %v, want ErrNotRunning", err)
	}
	if err := s.Resume(); !errors.Is(err, ErrNotPaused) {
		t.Fatalf("Resume from idle = %v, want ErrNotPaused", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrNotIdle) {
		t.Fatalf("second Start = %v, want ErrNotIdle", err)
	}
	if err := s.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if s.State() != Idle || s.Remaining() != d {
		t.Fatalf("after Reset state=%s remaining=%v", s.State(), s.Remaining())
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start after Reset: %v", err)
	}
	s.Stop()
	time.Sleep(3 * d)
	if n := calls.Load(); n != 0 {
		t.Fatalf("stopped timer fired %d times", n)
	}
	if err := s.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("Start after Stop = %v, want ErrStopped", err)
	}
}
