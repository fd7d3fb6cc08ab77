// Package sim holds the game-result simulator the pipeline consumes as an
// external collaborator. Implementations must be deterministic: the whole
// pipeline is replayable from identical inputs.
package sim

import (
	"github.com/cespare/xxhash/v2"

	"github.com/j-r-j/gridiron/internal/domain"
)

// Simulator produces the result of a scheduled matchup.
type Simulator interface {
	Simulate(g domain.Game) domain.Result
}

// HomeField always lets the home side win. Point totals are drawn from a
// hash of the matchup id so scores vary between games while repeated runs
// stay byte-for-byte reproducible.
type HomeField struct{}

// NewHomeField returns the home-side-wins simulator.
func NewHomeField() HomeField {
	return HomeField{}
}

// Simulate implements Simulator.
func (HomeField) Simulate(g domain.Game) domain.Result {
	h := xxhash.Sum64String(g.ID)
	home := 17 + int(h%21)
	margin := 1 + int((h>>8)%17)
	away := home - margin
	if away < 0 {
		away = 0
	}
	return domain.Result{
		HomeScore: home,
		AwayScore: away,
		WinnerID:  g.HomeID,
	}
}
