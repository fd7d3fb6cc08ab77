package schedule

import (
	"fmt"

	"github.com/j-r-j/gridiron/internal/domain"
)

// gameSpec is a matchup before week placement.
type gameSpec struct {
	home      string
	away      string
	component domain.Component
}

// divisionalRoundPairs lists, per divisional round, the {home, away} team
// slots inside every division. Rounds 1-3 are the first leg of the double
// round-robin, rounds 4-6 the rematches with hosting flipped, leaving every
// team at 3 home and 3 away.
var divisionalRoundPairs = [6][2][2]int{
	{{0, 1}, {2, 3}},
	{{0, 2}, {1, 3}},
	{{0, 3}, {1, 2}},
	{{1, 0}, {3, 2}},
	{{2, 0}, {3, 1}},
	{{3, 0}, {2, 1}},
}

// divisionalRound builds one league-wide divisional round: two games inside
// each of the eight divisions, sixteen games total.
func divisionalRound(league *domain.League, round int) []gameSpec {
	specs := make([]gameSpec, 0, 16)
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			teams := league.DivisionTeams(conf, div)
			for _, pair := range divisionalRoundPairs[round] {
				specs = append(specs, gameSpec{
					home:      teams[pair[0]].ID,
					away:      teams[pair[1]].ID,
					component: domain.ComponentDivisional,
				})
			}
		}
	}
	return specs
}

// crossDivisionRound builds one round of the full 4x4 block between two
// divisions: slot i of the first division meets slot (i+round) mod 4 of the
// second, hosting decided by slot-index parity so every team finishes the
// block at 2 home and 2 away.
func crossDivisionRound(first, second []domain.Team, round int, component domain.Component) []gameSpec {
	specs := make([]gameSpec, 0, 4)
	for i := 0; i < domain.TeamsPerDivision; i++ {
		j := (i + round) % domain.TeamsPerDivision
		home, away := first[i].ID, second[j].ID
		if (i+j)%2 != 0 {
			home, away = away, home
		}
		specs = append(specs, gameSpec{home: home, away: away, component: component})
	}
	return specs
}

// intraRotationRound builds one round of component B across both
// conferences: each division against its three-year-cycle partner.
func intraRotationRound(league *domain.League, year, round int) []gameSpec {
	specs := make([]gameSpec, 0, 16)
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			partner := IntraconferenceOpponent(div, year)
			if partner <= div {
				continue // each pairing built once, from its lower division
			}
			first := league.DivisionTeams(conf, div)
			second := league.DivisionTeams(conf, partner)
			specs = append(specs, crossDivisionRound(first, second, round, domain.ComponentIntraconfRotation)...)
		}
	}
	return specs
}

// interRotationRound builds one round of component C: each AFC division
// against its four-year-cycle NFC partner.
func interRotationRound(league *domain.League, year, round int) []gameSpec {
	specs := make([]gameSpec, 0, 16)
	for _, div := range domain.Divisions() {
		partner := InterconferenceOpponent(domain.AFC, div, year)
		first := league.DivisionTeams(domain.AFC, div)
		second := league.DivisionTeams(domain.NFC, partner)
		specs = append(specs, crossDivisionRound(first, second, round, domain.ComponentInterconfRotation)...)
	}
	return specs
}

// standingsCycle returns the conference's four divisions ordered so that
// consecutive entries belong to different rotation pairings. Orienting the
// cycle (each division hosting its successor) splits every team's two
// standings games 1 home / 1 away.
func standingsCycle(year int) [4]domain.Division {
	partner := IntraconferenceOpponent(domain.East, year)
	var others []domain.Division
	for _, div := range domain.Divisions() {
		if div != domain.East && div != partner {
			others = append(others, div)
		}
	}
	return [4]domain.Division{domain.East, others[0], partner, others[1]}
}

// standingsRound builds one of the two component-D rounds: rank-matched
// games between same-conference divisions not already paired by the
// rotation. Round 0 runs the forward cycle edges, round 1 the returns.
func standingsRound(g *generator, round int) ([]gameSpec, error) {
	specs := make([]gameSpec, 0, 16)
	cycle := standingsCycle(g.year)
	for _, conf := range domain.Conferences() {
		for i := 0; i < 4; i += 2 {
			var hostDiv, guestDiv domain.Division
			if round == 0 {
				hostDiv, guestDiv = cycle[i], cycle[i+1]
			} else {
				hostDiv, guestDiv = cycle[i+1], cycle[(i+2)%4]
			}
			block, err := g.rankMatchedBlock(conf, hostDiv, conf, guestDiv, domain.ComponentStandingsIntraconf)
			if err != nil {
				return nil, err
			}
			specs = append(specs, block...)
		}
	}
	return specs, nil
}

// extraGameRound builds component E: one cross-conference, rank-matched game
// per team, every game hosted by the year's host conference.
func extraGameRound(g *generator) ([]gameSpec, error) {
	host := ExtraGameHostConference(g.year)
	specs := make([]gameSpec, 0, 16)
	for _, div := range domain.Divisions() {
		partner := ExtraGameOpponentDivision(domain.AFC, div, g.year)
		var block []gameSpec
		var err error
		if host == domain.AFC {
			block, err = g.rankMatchedBlock(domain.AFC, div, domain.NFC, partner, domain.ComponentExtraGame)
		} else {
			block, err = g.rankMatchedBlock(domain.NFC, partner, domain.AFC, div, domain.ComponentExtraGame)
		}
		if err != nil {
			return nil, err
		}
		specs = append(specs, block...)
	}
	return specs, nil
}

// rankMatchedBlock pairs each host-division team, by its previous-season
// division rank, with the opponent the rank policy selects from the guest
// division. The host side hosts every game in the block.
func (g *generator) rankMatchedBlock(hostConf domain.Conference, hostDiv domain.Division,
	guestConf domain.Conference, guestDiv domain.Division, component domain.Component) ([]gameSpec, error) {

	pool := g.divisionStandings(guestConf, guestDiv)
	specs := make([]gameSpec, 0, domain.TeamsPerDivision)
	for _, team := range g.league.DivisionTeams(hostConf, hostDiv) {
		rank := g.prev[team.ID].DivisionRank
		opponent, err := g.policy(rank, pool)
		if err != nil {
			return nil, fmt.Errorf("matching %s (rank %d) against %s %s: %w",
				team.ID, rank, guestConf, guestDiv, err)
		}
		specs = append(specs, gameSpec{home: team.ID, away: opponent, component: component})
	}
	return specs, nil
}
