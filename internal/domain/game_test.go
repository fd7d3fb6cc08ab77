package domain

import (
	"errors"
	"testing"
)

func TestGameWithResultIsCopy(t *testing.T) {
	g := Game{ID: "2025-W01-A-B", HomeID: "B", AwayID: "A"}
	played := g.WithResult(Result{HomeScore: 24, AwayScore: 10, WinnerID: "B"})

	if g.Played {
		t.Fatalf("original game mutated by WithResult")
	}
	if !played.Played || played.Result.WinnerID != "B" {
		t.Fatalf("result not recorded: %+v", played)
	}
}

func TestGameOpponent(t *testing.T) {
	g := Game{HomeID: "B", AwayID: "A"}
	if opp, ok := g.Opponent("A"); !ok || opp != "B" {
		t.Fatalf("expected B, got %q ok=%v", opp, ok)
	}
	if opp, ok := g.Opponent("B"); !ok || opp != "A" {
		t.Fatalf("expected A, got %q ok=%v", opp, ok)
	}
	if _, ok := g.Opponent("C"); ok {
		t.Fatalf("expected false for uninvolved team")
	}
	if !g.Involves("A") || g.Involves("C") {
		t.Fatalf("Involves gave wrong answer")
	}
}

func TestScheduleWithResult(t *testing.T) {
	s := SeasonSchedule{
		Year: 2025,
		Games: []Game{
			{ID: "g1", Week: 1, HomeID: "B", AwayID: "A"},
			{ID: "g2", Week: 2, HomeID: "A", AwayID: "B"},
		},
	}

	updated, err := s.WithResult("g1", Result{HomeScore: 20, AwayScore: 17, WinnerID: "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Games[0].Played {
		t.Fatalf("original schedule mutated")
	}
	g, ok := updated.Game("g1")
	if !ok || !g.Played || g.Result.WinnerID != "B" {
		t.Fatalf("result not recorded in copy: %+v", g)
	}
	if updated.Complete() {
		t.Fatalf("schedule reported complete with one game unplayed")
	}

	if _, err := s.WithResult("missing", Result{}); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
}

func TestScheduleQueries(t *testing.T) {
	s := SeasonSchedule{
		Year: 2025,
		Games: []Game{
			{ID: "g1", Week: 1, HomeID: "B", AwayID: "A"},
			{ID: "g2", Week: 2, HomeID: "A", AwayID: "C"},
		},
		ByeWeeks: map[string]int{"A": 7},
	}

	if got := len(s.TeamGames("A")); got != 2 {
		t.Fatalf("expected 2 games for A, got %d", got)
	}
	if got := len(s.WeekGames(2)); got != 1 {
		t.Fatalf("expected 1 game in week 2, got %d", got)
	}
	if wk, ok := s.ByeWeek("A"); !ok || wk != 7 {
		t.Fatalf("expected bye week 7 for A, got %d ok=%v", wk, ok)
	}
	if _, ok := s.ByeWeek("B"); ok {
		t.Fatalf("expected no bye for B")
	}
}

func TestComponentStrings(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Components() {
		s := c.String()
		if s == "" || seen[s] {
			t.Fatalf("component %d has empty or duplicate name %q", c, s)
		}
		seen[s] = true
	}
}

func TestComponentRoundTrip(t *testing.T) {
	for _, c := range Components() {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", c, err)
		}
		var back Component
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if back != c {
			t.Fatalf("round trip changed %s to %s", c, back)
		}
	}
	var back Component
	if err := back.UnmarshalText([]byte("PRESEASON")); err == nil {
		t.Fatalf("expected error for unknown component")
	}
}
