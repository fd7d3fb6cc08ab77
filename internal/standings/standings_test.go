package standings

import (
	"errors"
	"testing"

	"github.com/j-r-j/gridiron/internal/config"
	"github.com/j-r-j/gridiron/internal/domain"
)

func testLeague(t *testing.T) *domain.League {
	t.Helper()
	league, err := domain.NewLeague(config.DefaultTeams())
	if err != nil {
		t.Fatalf("building default league: %v", err)
	}
	return league
}

func playedGame(id string, week int, home, away domain.Team, homeScore, awayScore int) domain.Game {
	winner := ""
	if homeScore > awayScore {
		winner = home.ID
	} else if awayScore > homeScore {
		winner = away.ID
	}
	g := domain.Game{ID: id, Week: week, HomeID: home.ID, AwayID: away.ID}
	return g.WithResult(domain.Result{HomeScore: homeScore, AwayScore: awayScore, WinnerID: winner})
}

func standingFor(t *testing.T, all []domain.TeamStanding, teamID string) domain.TeamStanding {
	t.Helper()
	for _, s := range all {
		if s.TeamID == teamID {
			return s
		}
	}
	t.Fatalf("no standing for team %s", teamID)
	return domain.TeamStanding{}
}

func TestAccumulateRecordsAndPointDiff(t *testing.T) {
	league := testLeague(t)
	east := league.DivisionTeams(domain.AFC, domain.East)
	nfcEast := league.DivisionTeams(domain.NFC, domain.East)

	s := domain.SeasonSchedule{Year: 2025, Games: []domain.Game{
		playedGame("g1", 1, east[0], east[1], 27, 10),
		playedGame("g2", 2, east[0], nfcEast[0], 14, 20),
		playedGame("g3", 3, east[1], east[2], 21, 21),
	}}

	all, err := Accumulate(league, s)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}

	winner := standingFor(t, all, east[0].ID)
	if winner.Wins != 1 || winner.Losses != 1 || winner.Ties != 0 {
		t.Fatalf("unexpected record for %s: %+v", east[0].ID, winner)
	}
	if winner.PointDiff != (27-10)+(14-20) {
		t.Fatalf("unexpected point diff %d", winner.PointDiff)
	}
	if winner.DivWins != 1 || winner.ConfWins != 1 {
		t.Fatalf("divisional win not bucketed: %+v", winner)
	}
	if winner.ConfLosses != 0 {
		t.Fatalf("interconference loss counted as conference loss: %+v", winner)
	}

	tied := standingFor(t, all, east[2].ID)
	if tied.Ties != 1 || tied.DivTies != 1 || tied.ConfTies != 1 {
		t.Fatalf("tie not bucketed: %+v", tied)
	}
}

func TestAccumulateStrengthOfSchedule(t *testing.T) {
	league := testLeague(t)
	east := league.DivisionTeams(domain.AFC, domain.East)

	// east[1] beats east[2]; east[0] then beats east[1]. east[0]'s only
	// opponent finished 1-1.
	s := domain.SeasonSchedule{Year: 2025, Games: []domain.Game{
		playedGame("g1", 1, east[1], east[2], 24, 3),
		playedGame("g2", 2, east[0], east[1], 17, 13),
	}}

	all, err := Accumulate(league, s)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}
	got := standingFor(t, all, east[0].ID).StrengthOfSchedule
	if got != 0.5 {
		t.Fatalf("expected strength of schedule 0.5, got %v", got)
	}
}

func TestAccumulateIgnoresUnplayedGames(t *testing.T) {
	league := testLeague(t)
	east := league.DivisionTeams(domain.AFC, domain.East)

	s := domain.SeasonSchedule{Year: 2025, Games: []domain.Game{
		{ID: "g1", Week: 1, HomeID: east[0].ID, AwayID: east[1].ID},
	}}

	all, err := Accumulate(league, s)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}
	if got := standingFor(t, all, east[0].ID).GamesPlayed(); got != 0 {
		t.Fatalf("unplayed game counted: %d games", got)
	}
}

func TestAccumulateRejectsContradictoryResult(t *testing.T) {
	league := testLeague(t)
	east := league.DivisionTeams(domain.AFC, domain.East)

	g := domain.Game{ID: "g1", Week: 1, HomeID: east[0].ID, AwayID: east[1].ID}
	bad := g.WithResult(domain.Result{HomeScore: 10, AwayScore: 24, WinnerID: east[0].ID})
	s := domain.SeasonSchedule{Year: 2025, Games: []domain.Game{bad}}

	if _, err := Accumulate(league, s); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("expected ErrInvalidResult, got %v", err)
	}

	tiedWithWinner := g.WithResult(domain.Result{HomeScore: 14, AwayScore: 14, WinnerID: east[0].ID})
	s.Games = []domain.Game{tiedWithWinner}
	if _, err := Accumulate(league, s); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("expected ErrInvalidResult for tied score with winner, got %v", err)
	}
}

func TestAccumulateAssignsRankPermutations(t *testing.T) {
	league := testLeague(t)
	east := league.DivisionTeams(domain.AFC, domain.East)

	s := domain.SeasonSchedule{Year: 2025, Games: []domain.Game{
		playedGame("g1", 1, east[0], east[1], 30, 7),
		playedGame("g2", 2, east[2], east[3], 20, 13),
	}}

	all, err := Accumulate(league, s)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}

	for _, conf := range domain.Conferences() {
		confRanks := make(map[int]bool)
		for _, div := range domain.Divisions() {
			divRanks := make(map[int]bool)
			for _, team := range league.DivisionTeams(conf, div) {
				st := standingFor(t, all, team.ID)
				if st.DivisionRank < 1 || st.DivisionRank > domain.TeamsPerDivision || divRanks[st.DivisionRank] {
					t.Fatalf("%s %s division ranks are not a permutation: %+v", conf, div, st)
				}
				divRanks[st.DivisionRank] = true
				if confRanks[st.ConferenceRank] {
					t.Fatalf("%s conference rank %d repeated", conf, st.ConferenceRank)
				}
				confRanks[st.ConferenceRank] = true
			}
		}
	}

	// Both winners are 1-0 with identical tiebreaks; the id fallback puts
	// the lower id first.
	if standingFor(t, all, east[0].ID).DivisionRank != 1 {
		t.Fatalf("expected %s to rank first in its division", east[0].ID)
	}
	if standingFor(t, all, east[1].ID).DivisionRank < 3 {
		t.Fatalf("expected %s to rank behind both winners", east[1].ID)
	}
}

func TestBaselineShape(t *testing.T) {
	league := testLeague(t)
	base := Baseline(league)

	if len(base) != domain.NumTeams {
		t.Fatalf("expected %d standings, got %d", domain.NumTeams, len(base))
	}
	for _, s := range base {
		if s.GamesPlayed() != 0 {
			t.Fatalf("baseline standing has games played: %+v", s)
		}
		if s.DivisionRank < 1 || s.DivisionRank > domain.TeamsPerDivision {
			t.Fatalf("baseline division rank out of range: %+v", s)
		}
	}
}
