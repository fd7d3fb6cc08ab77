// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/j-r-j/gridiron/internal/config"
	"github.com/j-r-j/gridiron/internal/domain"
	"github.com/j-r-j/gridiron/internal/schedule"
	"github.com/j-r-j/gridiron/internal/sim"
	"github.com/j-r-j/gridiron/internal/standings"
)

// League returns the default 32-team league, failing the test on error.
func League(t *testing.T) *domain.League {
	t.Helper()
	league, err := domain.NewLeague(config.DefaultTeams())
	if err != nil {
		t.Fatalf("building default league: %v", err)
	}
	return league
}

// BaselineStandings returns zero-record standings for the default league.
func BaselineStandings(t *testing.T) []domain.TeamStanding {
	t.Helper()
	return standings.Baseline(League(t))
}

// GeneratedSchedule builds the schedule for year using baseline standings.
func GeneratedSchedule(t *testing.T, year int) domain.SeasonSchedule {
	t.Helper()
	league := League(t)
	s, err := schedule.Generate(league, standings.Baseline(league), year)
	if err != nil {
		t.Fatalf("generating %d schedule: %v", year, err)
	}
	return s
}

// PlayedSchedule builds the schedule for year and fills every result with
// the deterministic home-field simulator.
func PlayedSchedule(t *testing.T, year int) domain.SeasonSchedule {
	t.Helper()
	s := GeneratedSchedule(t, year)
	var simulator sim.HomeField
	for _, g := range s.Games {
		updated, err := s.WithResult(g.ID, simulator.Simulate(g))
		if err != nil {
			t.Fatalf("recording result for %s: %v", g.ID, err)
		}
		s = updated
	}
	return s
}

// FinalStandings plays the year and accumulates its standings.
func FinalStandings(t *testing.T, year int) []domain.TeamStanding {
	t.Helper()
	final, err := standings.Accumulate(League(t), PlayedSchedule(t, year))
	if err != nil {
		t.Fatalf("accumulating %d standings: %v", year, err)
	}
	return final
}
