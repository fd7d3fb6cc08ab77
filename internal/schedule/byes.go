package schedule

import "github.com/j-r-j/gridiron/internal/domain"

// Bye window bounds.
const (
	ByeWindowStart = 5
	ByeWindowEnd   = 14
)

// byeTemplates maps each (conference, division) cell to the bye weeks of its
// four teams in team-id slot order. The weeks line up with the divisional
// rounds of the round calendar so that the two teams of every vacated
// divisional game rest in the same week; the vacated games form week 18.
// Every division spans exactly two distinct weeks.
var byeTemplates = map[domain.Conference]map[domain.Division][4]int{
	domain.AFC: {
		domain.East:  {5, 5, 11, 11},
		domain.North: {11, 11, 5, 5},
		domain.South: {7, 13, 7, 13},
		domain.West:  {13, 7, 13, 7},
	},
	domain.NFC: {
		domain.East:  {9, 14, 14, 9},
		domain.North: {14, 9, 9, 14},
		domain.South: {5, 5, 11, 11},
		domain.West:  {7, 13, 7, 13},
	},
}

// AssignByeWeeks maps every team to its one bye week in [5,14] from the
// fixed per-division templates. The assignment is deterministic given the
// league's team-id ordering.
func AssignByeWeeks(league *domain.League) map[string]int {
	byes := make(map[string]int, domain.NumTeams)
	for _, conf := range domain.Conferences() {
		for _, div := range domain.Divisions() {
			template := byeTemplates[conf][div]
			for slot, team := range league.DivisionTeams(conf, div) {
				byes[team.ID] = template[slot]
			}
		}
	}
	return byes
}
