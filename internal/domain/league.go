package domain

import (
	"errors"
	"fmt"
	"sort"
)

// League shape constants. Membership is fixed for a scheduling run.
const (
	NumTeams               = 32
	TeamsPerDivision       = 4
	DivisionsPerConference = 4
	RegularSeasonWeeks     = 18
	GamesPerTeam           = 17
	LeagueGames            = 272
)

// ErrInvalidLeague marks a malformed league configuration. Callers get it
// wrapped with detail about what was wrong.
var ErrInvalidLeague = errors.New("invalid league membership")

// Conference identifies one of the two league conferences.
type Conference int

const (
	AFC Conference = iota
	NFC
)

func (c Conference) String() string {
	switch c {
	case AFC:
		return "AFC"
	case NFC:
		return "NFC"
	}
	return fmt.Sprintf("Conference(%d)", int(c))
}

// Opposite returns the other conference.
func (c Conference) Opposite() Conference {
	if c == AFC {
		return NFC
	}
	return AFC
}

// MarshalText implements encoding.TextMarshaler so conferences render as
// names in JSON payloads and map keys.
func (c Conference) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Conference) UnmarshalText(text []byte) error {
	parsed, err := ParseConference(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseConference converts a conference name to its value.
func ParseConference(s string) (Conference, error) {
	switch s {
	case "AFC":
		return AFC, nil
	case "NFC":
		return NFC, nil
	}
	return 0, fmt.Errorf("unknown conference %q", s)
}

// Conferences lists both conferences in a stable order.
func Conferences() []Conference {
	return []Conference{AFC, NFC}
}

// Division indexes one of the four divisions inside a conference.
type Division int

const (
	East Division = iota
	North
	South
	West
)

func (d Division) String() string {
	switch d {
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Division(%d)", int(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Division) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Division) UnmarshalText(text []byte) error {
	parsed, err := ParseDivision(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDivision converts a division name to its value.
func ParseDivision(s string) (Division, error) {
	switch s {
	case "East":
		return East, nil
	case "North":
		return North, nil
	case "South":
		return South, nil
	case "West":
		return West, nil
	}
	return 0, fmt.Errorf("unknown division %q", s)
}

// Divisions lists the four divisions in index order.
func Divisions() []Division {
	return []Division{East, North, South, West}
}

// HostConference returns the conference designated for league-wide hosting
// duties in a year: AFC in odd years, NFC in even years. The same parity
// drives the seventeenth-game host and the Super Bowl home designation.
func HostConference(year int) Conference {
	if year%2 != 0 {
		return AFC
	}
	return NFC
}

// Team is immutable franchise reference data.
type Team struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Conference Conference `json:"conference"`
	Division   Division   `json:"division"`
}

// League holds validated, fixed membership for a scheduling run: 32 teams
// split into 2 conferences of 4 divisions of 4 teams.
type League struct {
	teams []Team
	byID  map[string]Team
}

// NewLeague validates membership and returns a League. Any shape violation
// is a fatal configuration error wrapping ErrInvalidLeague.
func NewLeague(teams []Team) (*League, error) {
	if len(teams) != NumTeams {
		return nil, fmt.Errorf("%w: expected %d teams, got %d", ErrInvalidLeague, NumTeams, len(teams))
	}

	byID := make(map[string]Team, len(teams))
	cells := make(map[Conference]map[Division]int)
	for _, t := range teams {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: team with empty id", ErrInvalidLeague)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate team id %s", ErrInvalidLeague, t.ID)
		}
		if t.Conference != AFC && t.Conference != NFC {
			return nil, fmt.Errorf("%w: team %s has unknown conference", ErrInvalidLeague, t.ID)
		}
		if t.Division < East || t.Division > West {
			return nil, fmt.Errorf("%w: team %s has unknown division", ErrInvalidLeague, t.ID)
		}
		byID[t.ID] = t
		if cells[t.Conference] == nil {
			cells[t.Conference] = make(map[Division]int)
		}
		cells[t.Conference][t.Division]++
	}

	for _, conf := range Conferences() {
		for _, div := range Divisions() {
			if n := cells[conf][div]; n != TeamsPerDivision {
				return nil, fmt.Errorf("%w: %s %s has %d teams, expected %d",
					ErrInvalidLeague, conf, div, n, TeamsPerDivision)
			}
		}
	}

	sorted := make([]Team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	return &League{teams: sorted, byID: byID}, nil
}

// Teams returns all 32 teams ordered by id.
func (l *League) Teams() []Team {
	out := make([]Team, len(l.teams))
	copy(out, l.teams)
	return out
}

// Team looks up a team by id.
func (l *League) Team(id string) (Team, bool) {
	t, ok := l.byID[id]
	return t, ok
}

// ConferenceTeams returns a conference's 16 teams ordered by id.
func (l *League) ConferenceTeams(conf Conference) []Team {
	out := make([]Team, 0, NumTeams/2)
	for _, t := range l.teams {
		if t.Conference == conf {
			out = append(out, t)
		}
	}
	return out
}

// DivisionTeams returns a division's 4 teams ordered by id. The slot
// position in this ordering is what bye templates and rank baselines key on.
func (l *League) DivisionTeams(conf Conference, div Division) []Team {
	out := make([]Team, 0, TeamsPerDivision)
	for _, t := range l.teams {
		if t.Conference == conf && t.Division == div {
			out = append(out, t)
		}
	}
	return out
}
