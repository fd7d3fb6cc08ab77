// Package standings is the reference standings accumulator: it folds played
// games into the TeamStanding records the scheduling core consumes. The core
// itself only ever reads these records.
package standings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

// ErrInvalidResult marks a recorded game result that contradicts itself.
var ErrInvalidResult = errors.New("invalid game result")

type tally struct {
	wins, losses, ties             int
	pointsFor, pointsAgainst       int
	confWins, confLosses, confTies int
	divWins, divLosses, divTies    int
	opponents                      []string
}

// Accumulate folds every played game of a schedule into one standing per
// team. Unplayed games are ignored, so partial-season standings work the
// same way. Strength of schedule is the average win percentage of the
// opponents actually faced, counted with multiplicity.
func Accumulate(league *domain.League, s domain.SeasonSchedule) ([]domain.TeamStanding, error) {
	if league == nil {
		return nil, errors.New("nil league")
	}

	tallies := make(map[string]*tally, domain.NumTeams)
	for _, t := range league.Teams() {
		tallies[t.ID] = &tally{}
	}

	for _, g := range s.Games {
		if !g.Played {
			continue
		}
		home, ok := league.Team(g.HomeID)
		if !ok {
			return nil, fmt.Errorf("game %s references unknown team %s", g.ID, g.HomeID)
		}
		away, ok := league.Team(g.AwayID)
		if !ok {
			return nil, fmt.Errorf("game %s references unknown team %s", g.ID, g.AwayID)
		}
		if err := checkResult(g); err != nil {
			return nil, err
		}

		sameConf := home.Conference == away.Conference
		sameDiv := sameConf && home.Division == away.Division

		ht, at := tallies[home.ID], tallies[away.ID]
		ht.pointsFor += g.Result.HomeScore
		ht.pointsAgainst += g.Result.AwayScore
		at.pointsFor += g.Result.AwayScore
		at.pointsAgainst += g.Result.HomeScore
		ht.opponents = append(ht.opponents, away.ID)
		at.opponents = append(at.opponents, home.ID)

		switch g.Result.WinnerID {
		case home.ID:
			record(ht, at, sameConf, sameDiv)
		case away.ID:
			record(at, ht, sameConf, sameDiv)
		default:
			ht.ties++
			at.ties++
			if sameConf {
				ht.confTies++
				at.confTies++
			}
			if sameDiv {
				ht.divTies++
				at.divTies++
			}
		}
	}

	byTeam := make(map[string]domain.TeamStanding, domain.NumTeams)
	for id, t := range tallies {
		byTeam[id] = domain.TeamStanding{
			TeamID:     id,
			Wins:       t.wins,
			Losses:     t.losses,
			Ties:       t.ties,
			PointDiff:  t.pointsFor - t.pointsAgainst,
			ConfWins:   t.confWins,
			ConfLosses: t.confLosses,
			ConfTies:   t.confTies,
			DivWins:    t.divWins,
			DivLosses:  t.divLosses,
			DivTies:    t.divTies,
		}
	}

	for id, t := range tallies {
		if len(t.opponents) == 0 {
			continue
		}
		var sum float64
		for _, opp := range t.opponents {
			sum += byTeam[opp].WinPct()
		}
		s := byTeam[id]
		s.StrengthOfSchedule = sum / float64(len(t.opponents))
		byTeam[id] = s
	}

	assignRanks(league, byTeam)

	out := make([]domain.TeamStanding, 0, domain.NumTeams)
	for _, t := range league.Teams() {
		out = append(out, byTeam[t.ID])
	}
	return out, nil
}

func record(winner, loser *tally, sameConf, sameDiv bool) {
	winner.wins++
	loser.losses++
	if sameConf {
		winner.confWins++
		loser.confLosses++
	}
	if sameDiv {
		winner.divWins++
		loser.divLosses++
	}
}

func checkResult(g domain.Game) error {
	r := g.Result
	if r.WinnerID != "" && !g.Involves(r.WinnerID) {
		return fmt.Errorf("%w: game %s winner %s is not a participant", ErrInvalidResult, g.ID, r.WinnerID)
	}
	if r.HomeScore != r.AwayScore {
		want := g.HomeID
		if r.AwayScore > r.HomeScore {
			want = g.AwayID
		}
		if r.WinnerID != want {
			return fmt.Errorf("%w: game %s winner %s disagrees with score %d-%d", ErrInvalidResult, g.ID, r.WinnerID, r.HomeScore, r.AwayScore)
		}
	} else if r.WinnerID != "" {
		return fmt.Errorf("%w: game %s has a winner but a tied score", ErrInvalidResult, g.ID)
	}
	return nil
}

// assignRanks fills division ranks 1-4 and conference ranks 1-16 using the
// forward seeding tiebreak chain.
func assignRanks(league *domain.League, byTeam map[string]domain.TeamStanding) {
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			ranked := sortedStandings(league.DivisionTeams(conf, div), byTeam)
			for i, s := range ranked {
				s.DivisionRank = i + 1
				byTeam[s.TeamID] = s
			}
		}
		ranked := sortedStandings(league.ConferenceTeams(conf), byTeam)
		for i, s := range ranked {
			updated := byTeam[s.TeamID]
			updated.ConferenceRank = i + 1
			byTeam[s.TeamID] = updated
		}
	}
}

func sortedStandings(teams []domain.Team, byTeam map[string]domain.TeamStanding) []domain.TeamStanding {
	out := make([]domain.TeamStanding, 0, len(teams))
	for _, t := range teams {
		out = append(out, byTeam[t.ID])
	}
	sort.Slice(out, func(i, j int) bool { return domain.BetterRecord(out[i], out[j]) })
	return out
}

// Baseline returns the deterministic zero-record standings used to seed a
// league's first generated season: ranks follow team-id order.
func Baseline(league *domain.League) []domain.TeamStanding {
	byTeam := make(map[string]domain.TeamStanding, domain.NumTeams)
	for _, conf := range domain.Conferences() {
		rank := 0
		for _, div := range domain.Divisions() {
			for slot, t := range league.DivisionTeams(conf, div) {
				rank++
				byTeam[t.ID] = domain.TeamStanding{
					TeamID:         t.ID,
					DivisionRank:   slot + 1,
					ConferenceRank: rank,
				}
			}
		}
	}
	out := make([]domain.TeamStanding, 0, domain.NumTeams)
	for _, t := range league.Teams() {
		out = append(out, byTeam[t.ID])
	}
	return out
}
