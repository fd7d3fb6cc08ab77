// Package draft computes the entry-draft order from regular-season finish
// and playoff elimination round, applying the seeding tiebreak chain in
// reverse so the worse record earns the earlier pick.
package draft

import (
	"errors"
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

var (
	// ErrBracketIncomplete guards against ordering a draft off a bracket
	// that has rounds still to play.
	ErrBracketIncomplete = errors.New("playoff bracket is not complete")
	// ErrInvalidStandings marks final standings that do not cover the league.
	ErrInvalidStandings = errors.New("invalid final standings")
	// ErrUnknownTeam is returned by lookups for ids outside the order.
	ErrUnknownTeam = errors.New("team not in draft order")
)

// group indexes the draft partitions in pick order.
type group int

const (
	groupNonPlayoff group = iota
	groupWildCardLoser
	groupDivisionalLoser
	groupConferenceLoser
	groupSuperBowlLoser
	groupSuperBowlWinner
)

func (g group) String() string {
	switch g {
	case groupNonPlayoff:
		return "missed the playoffs"
	case groupWildCardLoser:
		return "lost in the wildcard round"
	case groupDivisionalLoser:
		return "lost in the divisional round"
	case groupConferenceLoser:
		return "lost in the conference championship"
	case groupSuperBowlLoser:
		return "lost the Super Bowl"
	case groupSuperBowlWinner:
		return "won the Super Bowl"
	}
	return fmt.Sprintf("group(%d)", int(g))
}

// Calculate partitions all 32 teams by playoff exit, orders each group by
// the reversed tiebreak chain, and concatenates them into picks 1-32. The
// returned order is an immutable snapshot for the year.
func Calculate(final []domain.TeamStanding, ps domain.PlayoffSchedule) (domain.DraftOrder, error) {
	if ps.State != domain.StateComplete {
		return domain.DraftOrder{}, fmt.Errorf("%w: state is %s", ErrBracketIncomplete, ps.State)
	}
	if len(final) != domain.NumTeams {
		return domain.DraftOrder{}, fmt.Errorf("%w: expected %d teams, got %d", ErrInvalidStandings, domain.NumTeams, len(final))
	}

	groups := make(map[group][]domain.TeamStanding)
	seen := make(map[string]bool, domain.NumTeams)
	for _, s := range final {
		if seen[s.TeamID] {
			return domain.DraftOrder{}, fmt.Errorf("%w: duplicate team %s", ErrInvalidStandings, s.TeamID)
		}
		seen[s.TeamID] = true
		g, err := classify(s.TeamID, ps)
		if err != nil {
			return domain.DraftOrder{}, err
		}
		groups[g] = append(groups[g], s)
	}

	picks := make([]string, 0, domain.NumTeams)
	for _, g := range []group{
		groupNonPlayoff,
		groupWildCardLoser,
		groupDivisionalLoser,
		groupConferenceLoser,
		groupSuperBowlLoser,
		groupSuperBowlWinner,
	} {
		members := groups[g]
		sort.Slice(members, func(i, j int) bool { return domain.WorseRecord(members[i], members[j]) })
		for _, s := range members {
			picks = append(picks, s.TeamID)
		}
	}
	if len(picks) != domain.NumTeams {
		return domain.DraftOrder{}, fmt.Errorf("%w: partition produced %d picks", ErrInvalidStandings, len(picks))
	}

	return domain.DraftOrder{Year: ps.Year, Picks: picks}, nil
}

func classify(teamID string, ps domain.PlayoffSchedule) (group, error) {
	if champ, ok := ps.SuperBowlChampion(); ok && champ == teamID {
		return groupSuperBowlWinner, nil
	}
	if _, _, seeded := ps.SeedOf(teamID); !seeded {
		return groupNonPlayoff, nil
	}
	round, out := ps.EliminationRound(teamID)
	if !out {
		return 0, fmt.Errorf("%w: seeded team %s was never eliminated", ErrBracketIncomplete, teamID)
	}
	switch round {
	case domain.RoundWildCard:
		return groupWildCardLoser, nil
	case domain.RoundDivisional:
		return groupDivisionalLoser, nil
	case domain.RoundConference:
		return groupConferenceLoser, nil
	case domain.RoundSuperBowl:
		return groupSuperBowlLoser, nil
	}
	return 0, fmt.Errorf("unknown elimination round %v for team %s", round, teamID)
}

// Position returns a team's 1-based pick, derived from the produced order.
func Position(order domain.DraftOrder, teamID string) (int, error) {
	pos, ok := order.Position(teamID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	return pos, nil
}

// Explain renders a human-readable justification for a team's pick from the
// same standings and bracket the order was computed from.
func Explain(order domain.DraftOrder, final []domain.TeamStanding, ps domain.PlayoffSchedule, teamID string) (string, error) {
	pos, ok := order.Position(teamID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	g, err := classify(teamID, ps)
	if err != nil {
		return "", err
	}
	var standing domain.TeamStanding
	found := false
	for _, s := range final {
		if s.TeamID == teamID {
			standing = s
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("%w: no standings for %s", ErrInvalidStandings, teamID)
	}
	return fmt.Sprintf("%s picks %d overall: %s; finished %d-%d-%d (%.3f), strength of schedule %.3f, point differential %+d",
		teamID, pos, g, standing.Wins, standing.Losses, standing.Ties,
		standing.WinPct(), standing.StrengthOfSchedule, standing.PointDiff), nil
}
