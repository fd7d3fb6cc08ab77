package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownGame marks a keyed schedule update against a missing game id.
var ErrUnknownGame = errors.New("unknown game id")

// SeasonSchedule is one year's full slate of regular-season games plus the
// bye-week assignment that shaped it.
type SeasonSchedule struct {
	Year     int            `json:"year"`
	Games    []Game         `json:"games"`
	ByeWeeks map[string]int `json:"byeWeeks"`
}

// Game looks up a game by id.
func (s SeasonSchedule) Game(id string) (Game, bool) {
	for _, g := range s.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// TeamGames returns the games involving a team, in schedule order.
func (s SeasonSchedule) TeamGames(teamID string) []Game {
	var out []Game
	for _, g := range s.Games {
		if g.Involves(teamID) {
			out = append(out, g)
		}
	}
	return out
}

// WeekGames returns the games placed in a week, in schedule order.
func (s SeasonSchedule) WeekGames(week int) []Game {
	var out []Game
	for _, g := range s.Games {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// ByeWeek returns a team's assigned bye week.
func (s SeasonSchedule) ByeWeek(teamID string) (int, bool) {
	w, ok := s.ByeWeeks[teamID]
	return w, ok
}

// WithResult returns a new schedule with the result recorded on the game
// with the given id. The receiver is left untouched.
func (s SeasonSchedule) WithResult(gameID string, r Result) (SeasonSchedule, error) {
	idx := -1
	for i, g := range s.Games {
		if g.ID == gameID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SeasonSchedule{}, fmt.Errorf("%w: %s", ErrUnknownGame, gameID)
	}

	games := make([]Game, len(s.Games))
	copy(games, s.Games)
	games[idx] = games[idx].WithResult(r)

	return SeasonSchedule{Year: s.Year, Games: games, ByeWeeks: s.ByeWeeks}, nil
}

// Complete reports whether every game has a recorded result.
func (s SeasonSchedule) Complete() bool {
	for _, g := range s.Games {
		if !g.Played {
			return false
		}
	}
	return true
}
