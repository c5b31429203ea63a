package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newSessions(f *fixture) *SectionSessions {
	s := NewSectionSessions(f.attempts)
	s.unit = time.Millisecond // 60 configured seconds last 60ms
	return s
}

func waitForSubmission(t *testing.T, f *fixture, id uuid.UUID, section string) int {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		a, err := f.store.FindByID(context.Background(), id)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		for _, sub := range a.Submissions {
			if sub.SectionType == section {
				return sub.TimeSpentSeconds
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("section %s was not submitted", section)
	return 0
}

func TestSectionSessions_ExpirySubmits(t *testing.T) {
	f := newFixture(t)
	sessions := newSessions(f)
	id := f.create(t, "full", nil)

	view, err := sessions.Start(context.Background(), owner, id, "vocabulary")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if view.State != "running" || view.RemainingSeconds > 60 {
		t.Fatalf("timer view = %+v", view)
	}

	spent := waitForSubmission(t, f, id, "vocabulary")
	if spent < 60 {
		t.Fatalf("auto-submit recorded %d seconds, want at least 60", spent)
	}
	if _, err := sessions.Remaining(owner, id, "vocabulary"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Remaining after expiry error = %v", err)
	}
	if _, err := sessions.Start(context.Background(), owner, id, "vocabulary"); !errors.Is(err, ErrSectionLocked) {
		t.Fatalf("restart after expiry error = %v", err)
	}
}

func TestSectionSessions_StopPreventsSubmit(t *testing.T) {
	f := newFixture(t)
	sessions := newSessions(f)
	id := f.create(t, "full", nil)

	if _, err := sessions.Start(context.Background(), owner, id, "listening"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sessions.Stop(id, "listening")
	time.Sleep(150 * time.Millisecond)

	a, _ := f.store.FindByID(context.Background(), id)
	if len(a.Submissions) != 0 {
		t.Fatalf("stopped timer still submitted: %+v", a.Submissions)
	}
}

func TestSectionSessions_ManualSubmitWinsQuietly(t *testing.T) {
	f := newFixture(t)
	sessions := newSessions(f)
	id := f.create(t, "full", nil)

	if _, err := sessions.Start(context.Background(), owner, id, "grammar_reading"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Submitted by hand without stopping the timer; the expiry must not
	// overwrite or duplicate it.
	f.submit(t, id, "grammar_reading")
	time.Sleep(150 * time.Millisecond)

	a, _ := f.store.FindByID(context.Background(), id)
	if len(a.Submissions) != 1 || a.Submissions[0].TimeSpentSeconds != 30 {
		t.Fatalf("submissions = %+v", a.Submissions)
	}
}

func TestSectionSessions_StartGuards(t *testing.T) {
	f := newFixture(t)
	sessions := newSessions(f)
	sessions.unit = 10 * time.Millisecond
	defer sessions.StopAll()
	ctx := context.Background()
	id := f.create(t, "section", strPtr("listening"))

	if _, err := sessions.Start(ctx, "user-2", id, "listening"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("foreign Start error = %v", err)
	}
	if _, err := sessions.Start(ctx, owner, id, "vocabulary"); !errors.Is(err, ErrSectionNotInAttempt) {
		t.Fatalf("foreign section error = %v", err)
	}

	first, err := sessions.Start(ctx, owner, id, "listening")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := sessions.Start(ctx, owner, id, "listening")
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if second.RemainingSeconds > first.RemainingSeconds {
		t.Fatalf("second Start restarted the countdown: %d > %d", second.RemainingSeconds, first.RemainingSeconds)
	}
	if _, err := sessions.Remaining("user-2", id, "listening"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign Remaining error = %v", err)
	}
}
