package domain

// TeamStanding is the read-only record produced by the standings
// accumulator. The scheduling core consumes it for rank-matched components,
// playoff seeding, and draft ordering, and never mutates it.
type TeamStanding struct {
	TeamID             string  `json:"teamId"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Ties               int     `json:"ties"`
	PointDiff          int     `json:"pointDiff"`
	StrengthOfSchedule float64 `json:"strengthOfSchedule"`
	ConfWins           int     `json:"confWins"`
	ConfLosses         int     `json:"confLosses"`
	ConfTies           int     `json:"confTies"`
	DivWins            int     `json:"divWins"`
	DivLosses          int     `json:"divLosses"`
	DivTies            int     `json:"divTies"`
	DivisionRank       int     `json:"divisionRank"`
	ConferenceRank     int     `json:"conferenceRank"`
}

// GamesPlayed counts decided plus tied games.
func (s TeamStanding) GamesPlayed() int {
	return s.Wins + s.Losses + s.Ties
}

func winPct(wins, losses, ties int) float64 {
	games := wins + losses + ties
	if games == 0 {
		return 0
	}
	return (float64(wins) + 0.5*float64(ties)) / float64(games)
}

// WinPct returns overall winning percentage, counting ties as half a win.
func (s TeamStanding) WinPct() float64 {
	return winPct(s.Wins, s.Losses, s.Ties)
}

// ConfWinPct returns winning percentage in conference games.
func (s TeamStanding) ConfWinPct() float64 {
	return winPct(s.ConfWins, s.ConfLosses, s.ConfTies)
}

// DivWinPct returns winning percentage in division games.
func (s TeamStanding) DivWinPct() float64 {
	return winPct(s.DivWins, s.DivLosses, s.DivTies)
}

// compareRecords walks the seeding tiebreak chain and returns >0 when a is
// the better record, <0 when b is, and 0 on a dead heat. Team id is left to
// the callers so both orderings stay deterministic.
func compareRecords(a, b TeamStanding) int {
	pairs := [][2]float64{
		{a.WinPct(), b.WinPct()},
		{a.StrengthOfSchedule, b.StrengthOfSchedule},
		{float64(a.PointDiff), float64(b.PointDiff)},
		{a.ConfWinPct(), b.ConfWinPct()},
		{a.DivWinPct(), b.DivWinPct()},
	}
	for _, p := range pairs {
		if p[0] > p[1] {
			return 1
		}
		if p[0] < p[1] {
			return -1
		}
	}
	return 0
}

// BetterRecord reports whether a ranks ahead of b for seeding: descending
// win pct, strength of schedule, point differential, conference win pct,
// division win pct, then ascending team id.
func BetterRecord(a, b TeamStanding) bool {
	if c := compareRecords(a, b); c != 0 {
		return c > 0
	}
	return a.TeamID < b.TeamID
}

// WorseRecord orders the same chain reversed for draft positioning: the
// worse record earns the earlier pick. Exact ties still fall back to
// ascending team id.
func WorseRecord(a, b TeamStanding) bool {
	if c := compareRecords(a, b); c != 0 {
		return c < 0
	}
	return a.TeamID < b.TeamID
}
