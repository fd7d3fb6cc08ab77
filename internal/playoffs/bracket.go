// Package playoffs builds and advances the single-elimination postseason
// bracket. Rounds after the wildcard are re-seeded from actual results
// rather than read off a fixed bracket chart.
package playoffs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

// ErrInvalidStandings marks final standings that cannot seed a bracket.
var ErrInvalidStandings = errors.New("invalid final standings")

// wildcardPairs are the fixed wildcard seed pairings; seed 1 has the bye.
var wildcardPairs = [3][2]int{{2, 7}, {3, 6}, {4, 5}}

// GenerateBracket seeds seven teams per conference from final standings and
// builds the wildcard round. Seeds 1-4 go to the division leaders ordered by
// conference rank, seeds 5-7 to the best remaining teams by conference rank.
func GenerateBracket(league *domain.League, final []domain.TeamStanding, year int) (domain.PlayoffSchedule, error) {
	if league == nil {
		return domain.PlayoffSchedule{}, fmt.Errorf("%w: nil league", ErrInvalidStandings)
	}
	byTeam := make(map[string]domain.TeamStanding, len(final))
	for _, s := range final {
		if _, ok := league.Team(s.TeamID); !ok {
			return domain.PlayoffSchedule{}, fmt.Errorf("%w: unknown team %s", ErrInvalidStandings, s.TeamID)
		}
		byTeam[s.TeamID] = s
	}
	if len(byTeam) != domain.NumTeams {
		return domain.PlayoffSchedule{}, fmt.Errorf("%w: expected %d teams, got %d", ErrInvalidStandings, domain.NumTeams, len(byTeam))
	}

	ps := domain.PlayoffSchedule{
		Year:   year,
		State:  domain.StateWildCard,
		Seeds:  make(map[domain.Conference]map[int]string, 2),
		Rounds: make(map[domain.PlayoffRound][]domain.PlayoffMatchup, 1),
	}

	for _, conf := range domain.Conferences() {
		seeds, err := seedConference(league, byTeam, conf)
		if err != nil {
			return domain.PlayoffSchedule{}, err
		}
		ps.Seeds[conf] = seeds

		for _, pair := range wildcardPairs {
			high, low := pair[0], pair[1]
			ps.Rounds[domain.RoundWildCard] = append(ps.Rounds[domain.RoundWildCard], domain.PlayoffMatchup{
				ID:         fmt.Sprintf("%d-WC-%s-%dv%d", year, conf, high, low),
				Round:      domain.RoundWildCard,
				Conference: conf,
				HomeID:     seeds[high],
				AwayID:     seeds[low],
				HomeSeed:   high,
				AwaySeed:   low,
			})
		}
	}

	return ps, nil
}

// seedConference orders a conference's playoff field. Conference ranks come
// from the standings accumulator and already encode the tiebreak chain.
func seedConference(league *domain.League, byTeam map[string]domain.TeamStanding, conf domain.Conference) (map[int]string, error) {
	var leaders, rest []domain.TeamStanding
	for _, t := range league.ConferenceTeams(conf) {
		s := byTeam[t.ID]
		if s.DivisionRank == 1 {
			leaders = append(leaders, s)
		} else {
			rest = append(rest, s)
		}
	}
	if len(leaders) != domain.DivisionsPerConference {
		return nil, fmt.Errorf("%w: %s has %d division leaders, expected %d",
			ErrInvalidStandings, conf, len(leaders), domain.DivisionsPerConference)
	}

	byConferenceRank := func(list []domain.TeamStanding) {
		sort.Slice(list, func(i, j int) bool {
			if list[i].ConferenceRank != list[j].ConferenceRank {
				return list[i].ConferenceRank < list[j].ConferenceRank
			}
			return list[i].TeamID < list[j].TeamID
		})
	}
	byConferenceRank(leaders)
	byConferenceRank(rest)

	seeds := make(map[int]string, domain.PlayoffSeeds)
	for i, s := range leaders {
		seeds[i+1] = s.TeamID
	}
	for i := 0; i < domain.PlayoffSeeds-domain.DivisionsPerConference; i++ {
		seeds[domain.DivisionsPerConference+1+i] = rest[i].TeamID
	}
	return seeds, nil
}
