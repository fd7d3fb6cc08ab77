package playoffs

import (
	"errors"
	"testing"

	"github.com/j-r-j/gridiron/internal/config"
	"github.com/j-r-j/gridiron/internal/domain"
	"github.com/j-r-j/gridiron/internal/standings"
)

func testLeague(t *testing.T) *domain.League {
	t.Helper()
	league, err := domain.NewLeague(config.DefaultTeams())
	if err != nil {
		t.Fatalf("building default league: %v", err)
	}
	return league
}

func testBracket(t *testing.T, year int) (domain.PlayoffSchedule, *domain.League) {
	t.Helper()
	league := testLeague(t)
	ps, err := GenerateBracket(league, standings.Baseline(league), year)
	if err != nil {
		t.Fatalf("generating bracket: %v", err)
	}
	return ps, league
}

func TestGenerateBracketSeedsSevenDistinctPerConference(t *testing.T) {
	ps, league := testBracket(t, 2025)

	for _, conf := range domain.Conferences() {
		seen := make(map[string]bool)
		for seed := 1; seed <= domain.PlayoffSeeds; seed++ {
			team, ok := ps.Seed(conf, seed)
			if !ok {
				t.Fatalf("%s seed %d missing", conf, seed)
			}
			if seen[team] {
				t.Fatalf("%s team %s holds two seeds", conf, team)
			}
			seen[team] = true
			info, ok := league.Team(team)
			if !ok || info.Conference != conf {
				t.Fatalf("seeded team %s is not in %s", team, conf)
			}
		}
	}
}

func TestGenerateBracketTopFourAreDivisionLeaders(t *testing.T) {
	league := testLeague(t)
	final := standings.Baseline(league)
	byTeam := make(map[string]domain.TeamStanding, len(final))
	for _, s := range final {
		byTeam[s.TeamID] = s
	}

	ps, err := GenerateBracket(league, final, 2025)
	if err != nil {
		t.Fatalf("generating bracket: %v", err)
	}
	for _, conf := range domain.Conferences() {
		for seed := 1; seed <= domain.DivisionsPerConference; seed++ {
			team, _ := ps.Seed(conf, seed)
			if byTeam[team].DivisionRank != 1 {
				t.Fatalf("%s seed %d team %s is not a division leader", conf, seed, team)
			}
		}
		for seed := domain.DivisionsPerConference + 1; seed <= domain.PlayoffSeeds; seed++ {
			team, _ := ps.Seed(conf, seed)
			if byTeam[team].DivisionRank == 1 {
				t.Fatalf("%s wildcard seed %d team %s is a division leader", conf, seed, team)
			}
		}
	}
}

func TestGenerateBracketWildcardPairings(t *testing.T) {
	ps, _ := testBracket(t, 2025)

	matchups := ps.RoundMatchups(domain.RoundWildCard)
	if len(matchups) != 6 {
		t.Fatalf("expected 6 wildcard games, got %d", len(matchups))
	}

	for _, conf := range domain.Conferences() {
		want := map[int]int{2: 7, 3: 6, 4: 5}
		one, _ := ps.Seed(conf, 1)
		for _, m := range matchups {
			if m.Conference != conf {
				continue
			}
			if m.HomeID == one || m.AwayID == one {
				t.Fatalf("top seed %s appears in the wildcard round", one)
			}
			if low, ok := want[m.HomeSeed]; !ok || m.AwaySeed != low {
				t.Fatalf("unexpected wildcard pairing %dv%d in %s", m.HomeSeed, m.AwaySeed, conf)
			}
			delete(want, m.HomeSeed)
		}
		if len(want) != 0 {
			t.Fatalf("%s missing wildcard pairings %v", conf, want)
		}
	}
}

func TestGenerateBracketRejectsBadStandings(t *testing.T) {
	league := testLeague(t)
	final := standings.Baseline(league)

	if _, err := GenerateBracket(league, final[:20], 2025); !errors.Is(err, ErrInvalidStandings) {
		t.Fatalf("short standings: expected ErrInvalidStandings, got %v", err)
	}

	// Demote every leader of one division: no rank-1 team left.
	broken := make([]domain.TeamStanding, len(final))
	copy(broken, final)
	cell := league.DivisionTeams(domain.AFC, domain.East)
	for i := range broken {
		if broken[i].TeamID == cell[0].ID && broken[i].DivisionRank == 1 {
			broken[i].DivisionRank = 2
		}
	}
	if _, err := GenerateBracket(league, broken, 2025); !errors.Is(err, ErrInvalidStandings) {
		t.Fatalf("missing leader: expected ErrInvalidStandings, got %v", err)
	}
}
