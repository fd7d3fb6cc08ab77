package domain

// DraftOrder is the immutable entry-draft snapshot for a year: 32 team ids,
// position 1 holding the first overall pick.
type DraftOrder struct {
	Year  int      `json:"year"`
	Picks []string `json:"picks"`
}

// Position returns a team's 1-based pick position.
func (d DraftOrder) Position(teamID string) (int, bool) {
	for i, id := range d.Picks {
		if id == teamID {
			return i + 1, true
		}
	}
	return 0, false
}
