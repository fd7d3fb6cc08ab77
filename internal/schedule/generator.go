package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

// Accepted year range. Anything outside is a configuration error, not a
// rotation the tables cannot express.
const (
	MinYear = 1920
	MaxYear = 9999
)

// ErrInvalidInput marks a fatal input-contract violation on Generate.
var ErrInvalidInput = errors.New("invalid schedule input")

// RankPolicy selects, for a team that finished the previous season at the
// given division rank, its opponent from another division's standings. A
// policy must pick a distinct opponent per rank or the validator's
// standings and extra-game gates will flag the output.
type RankPolicy func(rank int, pool []domain.TeamStanding) (string, error)

// StraightRank pairs a team with the opponent that finished the same
// division rank the previous season.
func StraightRank(rank int, pool []domain.TeamStanding) (string, error) {
	for _, s := range pool {
		if s.DivisionRank == rank {
			return s.TeamID, nil
		}
	}
	return "", fmt.Errorf("no opponent with division rank %d", rank)
}

// Option adjusts generator behavior.
type Option func(*generator)

// WithRankPolicy overrides the rank-matching policy for the
// standings-based and extra-game components.
func WithRankPolicy(p RankPolicy) Option {
	return func(g *generator) {
		if p != nil {
			g.policy = p
		}
	}
}

type generator struct {
	league *domain.League
	year   int
	prev   map[string]domain.TeamStanding
	policy RankPolicy
	byes   map[string]int
}

// roundCalendar maps weeks 1-17 to the round played in that week. The six
// divisional rounds sit on the bye weeks: games vacated by resting teams are
// deferred to week 18, which ends up an all-divisional 16-game slate.
type roundRef struct {
	component domain.Component
	index     int
}

var roundCalendar = [18]roundRef{
	1:  {domain.ComponentIntraconfRotation, 0},
	2:  {domain.ComponentInterconfRotation, 0},
	3:  {domain.ComponentStandingsIntraconf, 0},
	4:  {domain.ComponentIntraconfRotation, 1},
	5:  {domain.ComponentDivisional, 0},
	6:  {domain.ComponentInterconfRotation, 1},
	7:  {domain.ComponentDivisional, 1},
	8:  {domain.ComponentIntraconfRotation, 2},
	9:  {domain.ComponentDivisional, 2},
	10: {domain.ComponentInterconfRotation, 2},
	11: {domain.ComponentDivisional, 3},
	12: {domain.ComponentStandingsIntraconf, 1},
	13: {domain.ComponentDivisional, 4},
	14: {domain.ComponentDivisional, 5},
	15: {domain.ComponentExtraGame, 0},
	16: {domain.ComponentIntraconfRotation, 3},
	17: {domain.ComponentInterconfRotation, 3},
}

// Generate builds the complete 272-game season for the league and year.
// Previous-season standings feed the rank-matched components; the output is
// fully determined by (league, prev, year, policy).
func Generate(league *domain.League, prev []domain.TeamStanding, year int, opts ...Option) (domain.SeasonSchedule, error) {
	if league == nil {
		return domain.SeasonSchedule{}, fmt.Errorf("%w: nil league", ErrInvalidInput)
	}
	if year < MinYear || year > MaxYear {
		return domain.SeasonSchedule{}, fmt.Errorf("%w: year %d outside [%d,%d]", ErrInvalidInput, year, MinYear, MaxYear)
	}
	prevByTeam, err := indexStandings(league, prev)
	if err != nil {
		return domain.SeasonSchedule{}, err
	}

	g := &generator{
		league: league,
		year:   year,
		prev:   prevByTeam,
		policy: StraightRank,
		byes:   AssignByeWeeks(league),
	}
	for _, opt := range opts {
		opt(g)
	}

	var games []domain.Game
	for week := 1; week < domain.RegularSeasonWeeks; week++ {
		specs, err := g.buildRound(roundCalendar[week])
		if err != nil {
			return domain.SeasonSchedule{}, err
		}
		placed, err := g.placeRound(specs, week)
		if err != nil {
			return domain.SeasonSchedule{}, err
		}
		games = append(games, placed...)
	}

	sort.Slice(games, func(i, j int) bool {
		if games[i].Week != games[j].Week {
			return games[i].Week < games[j].Week
		}
		return games[i].HomeID < games[j].HomeID
	})
	assignSlots(games)
	for i := range games {
		games[i].ID = gameID(year, games[i])
	}

	return domain.SeasonSchedule{Year: year, Games: games, ByeWeeks: g.byes}, nil
}

func (g *generator) buildRound(ref roundRef) ([]gameSpec, error) {
	switch ref.component {
	case domain.ComponentDivisional:
		return divisionalRound(g.league, ref.index), nil
	case domain.ComponentIntraconfRotation:
		return intraRotationRound(g.league, g.year, ref.index), nil
	case domain.ComponentInterconfRotation:
		return interRotationRound(g.league, g.year, ref.index), nil
	case domain.ComponentStandingsIntraconf:
		return standingsRound(g, ref.index)
	case domain.ComponentExtraGame:
		return extraGameRound(g)
	}
	return nil, fmt.Errorf("unknown component %v", ref.component)
}

// placeRound turns a round's specs into games in the given week. A game
// whose teams rest that week defers to week 18; the bye templates guarantee
// both participants rest together, so a one-sided bye is a hard error.
func (g *generator) placeRound(specs []gameSpec, week int) ([]domain.Game, error) {
	games := make([]domain.Game, 0, len(specs))
	for _, spec := range specs {
		homeBye := g.byes[spec.home] == week
		awayBye := g.byes[spec.away] == week
		if homeBye != awayBye {
			return nil, fmt.Errorf("bye templates misaligned with round calendar: %s vs %s in week %d",
				spec.home, spec.away, week)
		}
		placedWeek := week
		if homeBye {
			placedWeek = domain.RegularSeasonWeeks
		}
		games = append(games, domain.Game{
			Week:       placedWeek,
			HomeID:     spec.home,
			AwayID:     spec.away,
			Component:  spec.component,
			Divisional: spec.component == domain.ComponentDivisional,
			Conference: componentSameConference(spec.component),
		})
	}
	return games, nil
}

func componentSameConference(c domain.Component) bool {
	switch c {
	case domain.ComponentDivisional, domain.ComponentIntraconfRotation, domain.ComponentStandingsIntraconf:
		return true
	case domain.ComponentInterconfRotation, domain.ComponentExtraGame:
		return false
	}
	return false
}

// assignSlots labels each week's games with broadcast slots. The label is
// cosmetic; games must already be sorted by week then home id.
func assignSlots(games []domain.Game) {
	start := 0
	for start < len(games) {
		end := start
		for end < len(games) && games[end].Week == games[start].Week {
			end++
		}
		n := end - start
		for i := start; i < end; i++ {
			games[i].Slot = slotFor(i-start, n)
		}
		start = end
	}
}

func slotFor(index, total int) domain.TimeSlot {
	switch {
	case index == 0:
		return domain.SlotThursdayNight
	case index == total-1:
		return domain.SlotMondayNight
	case index == total-2:
		return domain.SlotSundayNight
	case index <= total/2:
		return domain.SlotSundayEarly
	default:
		return domain.SlotSundayLate
	}
}

func gameID(year int, g domain.Game) string {
	return fmt.Sprintf("%d-W%02d-%s-%s", year, g.Week, g.AwayID, g.HomeID)
}

// indexStandings checks that the previous-season standings cover exactly the
// league's teams with a 1-4 rank permutation per division.
func indexStandings(league *domain.League, prev []domain.TeamStanding) (map[string]domain.TeamStanding, error) {
	if len(prev) != domain.NumTeams {
		return nil, fmt.Errorf("%w: expected standings for %d teams, got %d", ErrInvalidInput, domain.NumTeams, len(prev))
	}
	byTeam := make(map[string]domain.TeamStanding, len(prev))
	for _, s := range prev {
		if _, ok := league.Team(s.TeamID); !ok {
			return nil, fmt.Errorf("%w: standings reference unknown team %s", ErrInvalidInput, s.TeamID)
		}
		if _, dup := byTeam[s.TeamID]; dup {
			return nil, fmt.Errorf("%w: duplicate standings for team %s", ErrInvalidInput, s.TeamID)
		}
		byTeam[s.TeamID] = s
	}
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			seen := make(map[int]bool, domain.TeamsPerDivision)
			for _, t := range league.DivisionTeams(conf, div) {
				s, ok := byTeam[t.ID]
				if !ok {
					return nil, fmt.Errorf("%w: missing standings for team %s", ErrInvalidInput, t.ID)
				}
				if s.DivisionRank < 1 || s.DivisionRank > domain.TeamsPerDivision || seen[s.DivisionRank] {
					return nil, fmt.Errorf("%w: %s %s division ranks are not a 1-%d permutation",
						ErrInvalidInput, conf, div, domain.TeamsPerDivision)
				}
				seen[s.DivisionRank] = true
			}
		}
	}
	return byTeam, nil
}

// divisionStandings returns the previous-season standings of one division's
// four teams, ordered by team id.
func (g *generator) divisionStandings(conf domain.Conference, div domain.Division) []domain.TeamStanding {
	out := make([]domain.TeamStanding, 0, domain.TeamsPerDivision)
	for _, t := range g.league.DivisionTeams(conf, div) {
		out = append(out, g.prev[t.ID])
	}
	return out
}
