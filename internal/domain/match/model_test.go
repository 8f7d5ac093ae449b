package match

import (
	"errors"
	"testing"
	"time"
)

func TestParseStatusFilter(t *testing.T) {
	cases := map[string]Status{
		"upcoming": StatusScheduled,
		"UPCOMING": StatusScheduled,
		" Live ":   StatusLive,
		"finished": StatusFinished,
		"Finished": StatusFinished,
	}
	for input, want := range cases {
		got, err := ParseStatusFilter(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %s want %s", input, got, want)
		}
	}

	for _, input := range []string{"bogus", "scheduled", ""} {
		if _, err := ParseStatusFilter(input); !errors.Is(err, ErrInvalidStatusFilter) {
			t.Fatalf("parse %q: expected ErrInvalidStatusFilter, got %v", input, err)
		}
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	if !StatusScheduled.CanTransitionTo(StatusLive) || !StatusLive.CanTransitionTo(StatusFinished) {
		t.Fatalf("expected forward transitions to be allowed")
	}
	if !StatusLive.CanTransitionTo(StatusLive) {
		t.Fatalf("expected same-state update to be allowed")
	}
	if StatusFinished.CanTransitionTo(StatusLive) || StatusLive.CanTransitionTo(StatusScheduled) {
		t.Fatalf("expected backward transitions to be rejected")
	}
	if StatusScheduled.CanTransitionTo(Status("postponed")) {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestMatchValidate_ScoreInvariant(t *testing.T) {
	two, one := 2, 1
	base := Match{
		ID:        "m1",
		KickoffAt: time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC),
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
	}

	scheduled := base
	scheduled.Normalize()
	if err := scheduled.Validate(); err != nil {
		t.Fatalf("scheduled without score should be valid: %v", err)
	}
	if scheduled.League != DefaultLeague || scheduled.Season != DefaultSeason {
		t.Fatalf("expected defaults, got league=%q season=%q", scheduled.League, scheduled.Season)
	}

	scheduled.HomeScore = &two
	if err := scheduled.Validate(); err == nil {
		t.Fatalf("expected error for scheduled match with score")
	}

	finished := base
	finished.Status = StatusFinished
	finished.HomeScore = &two
	if err := finished.Validate(); err == nil {
		t.Fatalf("expected error for finished match missing away score")
	}
	finished.AwayScore = &one
	if err := finished.Validate(); err != nil {
		t.Fatalf("finished match with both scores should be valid: %v", err)
	}
}
