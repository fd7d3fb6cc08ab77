package domain

import "fmt"

// Component classifies which scheduling rule produced a regular-season game.
// The set is closed: every consumer switches exhaustively over it so a new
// component is a compile-time-visible change.
type Component int

const (
	ComponentDivisional Component = iota
	ComponentIntraconfRotation
	ComponentInterconfRotation
	ComponentStandingsIntraconf
	ComponentExtraGame
)

func (c Component) String() string {
	switch c {
	case ComponentDivisional:
		return "DIVISIONAL"
	case ComponentIntraconfRotation:
		return "INTRACONF_ROTATION"
	case ComponentInterconfRotation:
		return "INTERCONF_ROTATION"
	case ComponentStandingsIntraconf:
		return "STANDINGS_INTRACONF"
	case ComponentExtraGame:
		return "EXTRA_GAME"
	}
	return fmt.Sprintf("Component(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Component) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Component) UnmarshalText(text []byte) error {
	switch string(text) {
	case "DIVISIONAL":
		*c = ComponentDivisional
	case "INTRACONF_ROTATION":
		*c = ComponentIntraconfRotation
	case "INTERCONF_ROTATION":
		*c = ComponentInterconfRotation
	case "STANDINGS_INTRACONF":
		*c = ComponentStandingsIntraconf
	case "EXTRA_GAME":
		*c = ComponentExtraGame
	default:
		return fmt.Errorf("unknown component %q", string(text))
	}
	return nil
}

// Components lists all five components in generation order.
func Components() []Component {
	return []Component{
		ComponentDivisional,
		ComponentIntraconfRotation,
		ComponentInterconfRotation,
		ComponentStandingsIntraconf,
		ComponentExtraGame,
	}
}

// TimeSlot is a secondary, non-invariant-bearing broadcast label.
type TimeSlot string

const (
	SlotThursdayNight TimeSlot = "THURSDAY_NIGHT"
	SlotSundayEarly   TimeSlot = "SUNDAY_EARLY"
	SlotSundayLate    TimeSlot = "SUNDAY_LATE"
	SlotSundayNight   TimeSlot = "SUNDAY_NIGHT"
	SlotMondayNight   TimeSlot = "MONDAY_NIGHT"
)

// Result captures the outcome of a played game. WinnerID is empty on a tie.
type Result struct {
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	WinnerID  string `json:"winnerId,omitempty"`
}

// Game is an immutable scheduled matchup. Recording a result produces a new
// value rather than mutating shared state.
type Game struct {
	ID         string    `json:"id"`
	Week       int       `json:"week"`
	HomeID     string    `json:"homeId"`
	AwayID     string    `json:"awayId"`
	Component  Component `json:"component"`
	Divisional bool      `json:"divisional"`
	Conference bool      `json:"conference"`
	Slot       TimeSlot  `json:"slot"`
	Played     bool      `json:"played"`
	Result     Result    `json:"result"`
}

// WithResult returns a copy of the game with the result recorded.
func (g Game) WithResult(r Result) Game {
	g.Played = true
	g.Result = r
	return g
}

// Involves reports whether the team participates in the game.
func (g Game) Involves(teamID string) bool {
	return g.HomeID == teamID || g.AwayID == teamID
}

// Opponent returns the other participant from the given team's perspective.
func (g Game) Opponent(teamID string) (string, bool) {
	switch teamID {
	case g.HomeID:
		return g.AwayID, true
	case g.AwayID:
		return g.HomeID, true
	}
	return "", false
}
