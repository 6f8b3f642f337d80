package votes

import (
	"testing"
	"time"
)

func TestNextEligibleAt(t *testing.T) {
	voteAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	next := NextEligibleAt(voteAt)

	want := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)

	if !next.Equal(want) {
		t.Errorf("Expected %v, got %v", want, next)
	}
}

func TestVoteCooldownIsTwelveHours(t *testing.T) {
	if VoteCooldown != 43200*time.Second {
		t.Errorf("Expected 43200s cooldown, got %v", VoteCooldown)
	}
}

func TestWaitInsideWindow(t *testing.T) {
	voteAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 11, 30, 15, 0, time.UTC)

	w := Wait(voteAt, now)

	if w == nil {
		t.Fatal("Expected a wait, got nil")
	}

	if w.Hours != 10 || w.Minutes != 29 || w.Seconds != 45 {
		t.Errorf("Expected 10h29m45s, got %dh%dm%ds", w.Hours, w.Minutes, w.Seconds)
	}
}

func TestWaitJustBeforeExpiry(t *testing.T) {
	voteAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 21, 59, 59, 0, time.UTC)

	w := Wait(voteAt, now)

	if w == nil {
		t.Fatal("Expected a wait, got nil")
	}

	if w.Hours != 0 || w.Minutes != 0 || w.Seconds != 1 {
		t.Errorf("Expected 0h0m1s, got %dh%dm%ds", w.Hours, w.Minutes, w.Seconds)
	}
}

func TestWaitAfterWindow(t *testing.T) {
	voteAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Exactly at expiry there is nothing left to wait for
	if w := Wait(voteAt, voteAt.Add(VoteCooldown)); w != nil {
		t.Errorf("Expected nil wait at expiry, got %+v", w)
	}

	// One second past expiry
	if w := Wait(voteAt, voteAt.Add(VoteCooldown+time.Second)); w != nil {
		t.Errorf("Expected nil wait after expiry, got %+v", w)
	}
}

func TestErrCooldownMessage(t *testing.T) {
	next := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	err := ErrCooldown{NextEligibleAt: next}

	if err.Error() == "" {
		t.Error("Expected a non-empty error message")
	}

	if !err.NextEligibleAt.Equal(next) {
		t.Errorf("Expected %v, got %v", next, err.NextEligibleAt)
	}
}
