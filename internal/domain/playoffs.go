package domain

import (
	"fmt"
	"sort"
)

// PlayoffSeeds is the number of teams seeded per conference.
const PlayoffSeeds = 7

// PlayoffRound identifies one of the four postseason rounds.
type PlayoffRound int

const (
	RoundWildCard PlayoffRound = iota
	RoundDivisional
	RoundConference
	RoundSuperBowl
)

func (r PlayoffRound) String() string {
	switch r {
	case RoundWildCard:
		return "WILD_CARD"
	case RoundDivisional:
		return "DIVISIONAL"
	case RoundConference:
		return "CONFERENCE"
	case RoundSuperBowl:
		return "SUPER_BOWL"
	}
	return fmt.Sprintf("PlayoffRound(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler so rounds serve as JSON map
// keys.
func (r PlayoffRound) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *PlayoffRound) UnmarshalText(text []byte) error {
	switch string(text) {
	case "WILD_CARD":
		*r = RoundWildCard
	case "DIVISIONAL":
		*r = RoundDivisional
	case "CONFERENCE":
		*r = RoundConference
	case "SUPER_BOWL":
		*r = RoundSuperBowl
	default:
		return fmt.Errorf("unknown playoff round %q", string(text))
	}
	return nil
}

// BracketState is the explicit state of the playoff state machine: the round
// currently awaiting results, or Complete.
type BracketState int

const (
	StateWildCard BracketState = iota
	StateDivisional
	StateConference
	StateSuperBowl
	StateComplete
)

func (s BracketState) String() string {
	switch s {
	case StateWildCard:
		return "WILD_CARD"
	case StateDivisional:
		return "DIVISIONAL"
	case StateConference:
		return "CONFERENCE"
	case StateSuperBowl:
		return "SUPER_BOWL"
	case StateComplete:
		return "COMPLETE"
	}
	return fmt.Sprintf("BracketState(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s BracketState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *BracketState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "WILD_CARD":
		*s = StateWildCard
	case "DIVISIONAL":
		*s = StateDivisional
	case "CONFERENCE":
		*s = StateConference
	case "SUPER_BOWL":
		*s = StateSuperBowl
	case "COMPLETE":
		*s = StateComplete
	default:
		return fmt.Errorf("unknown bracket state %q", string(text))
	}
	return nil
}

// PendingRound returns the round the bracket is waiting on. ok is false once
// the bracket is complete.
func (s BracketState) PendingRound() (PlayoffRound, bool) {
	switch s {
	case StateWildCard:
		return RoundWildCard, true
	case StateDivisional:
		return RoundDivisional, true
	case StateConference:
		return RoundConference, true
	case StateSuperBowl:
		return RoundSuperBowl, true
	}
	return 0, false
}

// PlayoffMatchup is one postseason game. Neutral is set only for the Super
// Bowl, where the home designation is record-keeping rather than venue.
type PlayoffMatchup struct {
	ID         string       `json:"id"`
	Round      PlayoffRound `json:"round"`
	Conference Conference   `json:"conference"`
	Neutral    bool         `json:"neutral"`
	HomeID     string       `json:"homeId"`
	AwayID     string       `json:"awayId"`
	HomeSeed   int          `json:"homeSeed"`
	AwaySeed   int          `json:"awaySeed"`
	Played     bool         `json:"played"`
	Result     Result       `json:"result"`
}

// WithResult returns a copy of the matchup with the result recorded.
func (m PlayoffMatchup) WithResult(r Result) PlayoffMatchup {
	m.Played = true
	m.Result = r
	return m
}

// Winner returns the winning team id of a played matchup.
func (m PlayoffMatchup) Winner() (string, bool) {
	if !m.Played || m.Result.WinnerID == "" {
		return "", false
	}
	return m.Result.WinnerID, true
}

// Loser returns the losing team id of a played matchup.
func (m PlayoffMatchup) Loser() (string, bool) {
	w, ok := m.Winner()
	if !ok {
		return "", false
	}
	if w == m.HomeID {
		return m.AwayID, true
	}
	return m.HomeID, true
}

// WinnerSeed returns the original seed of the matchup winner.
func (m PlayoffMatchup) WinnerSeed() (int, bool) {
	w, ok := m.Winner()
	if !ok {
		return 0, false
	}
	if w == m.HomeID {
		return m.HomeSeed, true
	}
	return m.AwaySeed, true
}

// PlayoffSchedule is the incrementally built bracket: per-conference seed
// maps, each round's matchups, and the state machine position. Only the
// wildcard round exists until wildcard results are fed back in.
type PlayoffSchedule struct {
	Year   int                              `json:"year"`
	State  BracketState                     `json:"state"`
	Seeds  map[Conference]map[int]string    `json:"seeds"`
	Rounds map[PlayoffRound][]PlayoffMatchup `json:"rounds"`
}

// Clone deep-copies the bracket so advancing never mutates the input.
func (p PlayoffSchedule) Clone() PlayoffSchedule {
	out := PlayoffSchedule{
		Year:   p.Year,
		State:  p.State,
		Seeds:  make(map[Conference]map[int]string, len(p.Seeds)),
		Rounds: make(map[PlayoffRound][]PlayoffMatchup, len(p.Rounds)),
	}
	for conf, seeds := range p.Seeds {
		m := make(map[int]string, len(seeds))
		for seed, team := range seeds {
			m[seed] = team
		}
		out.Seeds[conf] = m
	}
	for round, matchups := range p.Rounds {
		ms := make([]PlayoffMatchup, len(matchups))
		copy(ms, matchups)
		out.Rounds[round] = ms
	}
	return out
}

// CurrentRound returns the round awaiting results; ok is false once the
// bracket is complete.
func (p PlayoffSchedule) CurrentRound() (PlayoffRound, bool) {
	return p.State.PendingRound()
}

// RoundMatchups returns a copy of the matchups built for a round.
func (p PlayoffSchedule) RoundMatchups(round PlayoffRound) []PlayoffMatchup {
	ms, ok := p.Rounds[round]
	if !ok {
		return nil
	}
	out := make([]PlayoffMatchup, len(ms))
	copy(out, ms)
	return out
}

// Seed looks up the team holding a seed in a conference.
func (p PlayoffSchedule) Seed(conf Conference, seed int) (string, bool) {
	team, ok := p.Seeds[conf][seed]
	return team, ok
}

// SeedOf returns the conference and seed a team holds, if it made the field.
func (p PlayoffSchedule) SeedOf(teamID string) (Conference, int, bool) {
	for _, conf := range Conferences() {
		for seed, team := range p.Seeds[conf] {
			if team == teamID {
				return conf, seed, true
			}
		}
	}
	return 0, 0, false
}

// EliminationRound returns the round a seeded team lost in. ok is false for
// teams that never made the field or have not been eliminated.
func (p PlayoffSchedule) EliminationRound(teamID string) (PlayoffRound, bool) {
	for round, matchups := range p.Rounds {
		for _, m := range matchups {
			if loser, ok := m.Loser(); ok && loser == teamID {
				return round, true
			}
		}
	}
	return 0, false
}

// TeamsAlive lists seeded teams not yet eliminated, ordered by id.
func (p PlayoffSchedule) TeamsAlive() []string {
	var alive []string
	for _, conf := range Conferences() {
		for _, team := range p.Seeds[conf] {
			if _, out := p.EliminationRound(team); !out {
				alive = append(alive, team)
			}
		}
	}
	sort.Strings(alive)
	return alive
}

// ConferenceChampion returns the winner of a conference's championship game.
func (p PlayoffSchedule) ConferenceChampion(conf Conference) (string, bool) {
	for _, m := range p.Rounds[RoundConference] {
		if m.Conference == conf {
			return m.Winner()
		}
	}
	return "", false
}

// SuperBowlChampion returns the league champion once the bracket completes.
func (p PlayoffSchedule) SuperBowlChampion() (string, bool) {
	for _, m := range p.Rounds[RoundSuperBowl] {
		return m.Winner()
	}
	return "", false
}
