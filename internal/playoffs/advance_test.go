package playoffs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/j-r-j/gridiron/internal/domain"
)

// resultFor builds a valid result where winner takes the matchup.
func resultFor(m domain.PlayoffMatchup, winner string) domain.Result {
	if winner == m.HomeID {
		return domain.Result{HomeScore: 27, AwayScore: 17, WinnerID: winner}
	}
	return domain.Result{HomeScore: 17, AwayScore: 27, WinnerID: winner}
}

// homeWins plays a round with every home team winning.
func homeWins(ps domain.PlayoffSchedule, round domain.PlayoffRound) map[string]domain.Result {
	results := make(map[string]domain.Result)
	for _, m := range ps.RoundMatchups(round) {
		results[m.ID] = resultFor(m, m.HomeID)
	}
	return results
}

func TestAdvanceReseedsDivisionalRound(t *testing.T) {
	ps, _ := testBracket(t, 2025)

	// Seeds 3 and 4 hold serve, seed 7 upsets seed 2.
	results := make(map[string]domain.Result)
	for _, m := range ps.RoundMatchups(domain.RoundWildCard) {
		winner := m.HomeID
		if m.HomeSeed == 2 {
			winner = m.AwayID
		}
		results[m.ID] = resultFor(m, winner)
	}

	next, err := Advance(ps, domain.RoundWildCard, results)
	if err != nil {
		t.Fatalf("advance wildcard: %v", err)
	}
	if next.State != domain.StateDivisional {
		t.Fatalf("expected divisional state, got %s", next.State)
	}

	for _, conf := range domain.Conferences() {
		one, _ := next.Seed(conf, 1)
		seven, _ := next.Seed(conf, 7)
		three, _ := next.Seed(conf, 3)
		four, _ := next.Seed(conf, 4)

		var confGames []domain.PlayoffMatchup
		for _, m := range next.RoundMatchups(domain.RoundDivisional) {
			if m.Conference == conf {
				confGames = append(confGames, m)
			}
		}
		if len(confGames) != 2 {
			t.Fatalf("%s has %d divisional games, expected 2", conf, len(confGames))
		}

		// The top seed draws the lowest surviving seed, the upset winner.
		var topGame, otherGame domain.PlayoffMatchup
		for _, m := range confGames {
			if m.HomeID == one {
				topGame = m
			} else {
				otherGame = m
			}
		}
		if topGame.AwayID != seven {
			t.Fatalf("%s top seed drew %s (seed %d), expected seed 7 %s", conf, topGame.AwayID, topGame.AwaySeed, seven)
		}
		if wantID := fmt.Sprintf("2025-DIV-%s-1v7", conf); topGame.ID != wantID {
			t.Fatalf("top-seed matchup id %q, expected %q", topGame.ID, wantID)
		}
		if otherGame.HomeID != three || otherGame.AwayID != four {
			t.Fatalf("%s second game is %s vs %s, expected %s hosting %s", conf, otherGame.HomeID, otherGame.AwayID, three, four)
		}
	}
}

func TestAdvanceReplayIsIdempotent(t *testing.T) {
	ps, _ := testBracket(t, 2025)
	results := homeWins(ps, domain.RoundWildCard)

	once, err := Advance(ps, domain.RoundWildCard, results)
	if err != nil {
		t.Fatalf("first advance: %v", err)
	}
	twice, err := Advance(once, domain.RoundWildCard, results)
	if err != nil {
		t.Fatalf("replay advance: %v", err)
	}
	if twice.State != once.State {
		t.Fatalf("replay changed state from %s to %s", once.State, twice.State)
	}
	if len(twice.RoundMatchups(domain.RoundDivisional)) != len(once.RoundMatchups(domain.RoundDivisional)) {
		t.Fatalf("replay rebuilt the divisional round")
	}
}

func TestAdvanceRejectsConflictingReplay(t *testing.T) {
	ps, _ := testBracket(t, 2025)
	results := homeWins(ps, domain.RoundWildCard)

	once, err := Advance(ps, domain.RoundWildCard, results)
	if err != nil {
		t.Fatalf("first advance: %v", err)
	}

	flipped := make(map[string]domain.Result)
	for _, m := range once.RoundMatchups(domain.RoundWildCard) {
		flipped[m.ID] = resultFor(m, m.AwayID)
	}
	if _, err := Advance(once, domain.RoundWildCard, flipped); !errors.Is(err, ErrConflictingResults) {
		t.Fatalf("expected ErrConflictingResults, got %v", err)
	}
}

func TestAdvanceRejectsOutOfOrderRound(t *testing.T) {
	ps, _ := testBracket(t, 2025)
	if _, err := Advance(ps, domain.RoundDivisional, nil); !errors.Is(err, ErrWrongRound) {
		t.Fatalf("expected ErrWrongRound, got %v", err)
	}
}

func TestAdvanceRejectsIncompleteResults(t *testing.T) {
	ps, _ := testBracket(t, 2025)
	results := homeWins(ps, domain.RoundWildCard)
	for id := range results {
		delete(results, id)
		break
	}
	if _, err := Advance(ps, domain.RoundWildCard, results); !errors.Is(err, ErrRoundIncomplete) {
		t.Fatalf("expected ErrRoundIncomplete, got %v", err)
	}
}

func TestAdvanceRejectsInvalidResults(t *testing.T) {
	ps, _ := testBracket(t, 2025)

	results := homeWins(ps, domain.RoundWildCard)
	var firstID string
	for _, m := range ps.RoundMatchups(domain.RoundWildCard) {
		firstID = m.ID
		break
	}

	results[firstID] = domain.Result{HomeScore: 20, AwayScore: 20, WinnerID: ""}
	if _, err := Advance(ps, domain.RoundWildCard, results); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("tie: expected ErrInvalidResult, got %v", err)
	}

	results[firstID] = domain.Result{HomeScore: 30, AwayScore: 3, WinnerID: "outsider"}
	if _, err := Advance(ps, domain.RoundWildCard, results); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("non-participant winner: expected ErrInvalidResult, got %v", err)
	}
}

func TestAdvanceFullBracketRun(t *testing.T) {
	for _, year := range []int{2025, 2026} {
		ps, _ := testBracket(t, year)

		for {
			round, open := ps.CurrentRound()
			if !open {
				break
			}
			next, err := Advance(ps, round, homeWins(ps, round))
			if err != nil {
				t.Fatalf("year %d: advancing %s: %v", year, round, err)
			}
			ps = next
		}

		if ps.State != domain.StateComplete {
			t.Fatalf("year %d: final state %s", year, ps.State)
		}

		sb := ps.RoundMatchups(domain.RoundSuperBowl)
		if len(sb) != 1 {
			t.Fatalf("year %d: %d championship games", year, len(sb))
		}
		game := sb[0]
		if !game.Neutral {
			t.Fatalf("year %d: championship not marked neutral", year)
		}
		if wantID := fmt.Sprintf("%d-SB", year); game.ID != wantID {
			t.Fatalf("year %d: championship id %q, expected %q", year, game.ID, wantID)
		}

		// The home designation follows the year's host conference.
		hostChamp, ok := ps.ConferenceChampion(domain.HostConference(year))
		if !ok || game.HomeID != hostChamp {
			t.Fatalf("year %d: home designation %s, expected %s champion %s",
				year, game.HomeID, domain.HostConference(year), hostChamp)
		}

		champion, ok := ps.SuperBowlChampion()
		if !ok {
			t.Fatalf("year %d: no champion on a complete bracket", year)
		}
		if _, _, seeded := ps.SeedOf(champion); !seeded {
			t.Fatalf("year %d: champion %s was never seeded", year, champion)
		}
	}
}
