package playoffs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/j-r-j/gridiron/internal/domain"
)

// Sequencing and result errors. Advancing out of order is a programming
// error on the caller's side and always fails loudly.
var (
	ErrWrongRound         = errors.New("cannot advance round out of order")
	ErrRoundNotBuilt      = errors.New("round has not been built")
	ErrRoundIncomplete    = errors.New("round results incomplete")
	ErrInvalidResult      = errors.New("invalid matchup result")
	ErrConflictingResults = errors.New("results conflict with completed round")
)

// Advance records a round's results and builds the next round, returning a
// new schedule; the input is never mutated. Feeding identical results for an
// already-advanced round is a no-op, so replays cannot fork the bracket;
// conflicting replays are rejected.
func Advance(ps domain.PlayoffSchedule, round domain.PlayoffRound, results map[string]domain.Result) (domain.PlayoffSchedule, error) {
	pending, open := ps.State.PendingRound()
	if !open || round < pending {
		return replayCheck(ps, round, results)
	}
	if round > pending {
		return domain.PlayoffSchedule{}, fmt.Errorf("%w: round %s is pending, got %s", ErrWrongRound, pending, round)
	}

	next := ps.Clone()
	matchups := next.Rounds[round]
	if len(matchups) == 0 {
		return domain.PlayoffSchedule{}, fmt.Errorf("%w: %s", ErrRoundNotBuilt, round)
	}
	for i, m := range matchups {
		r, ok := results[m.ID]
		if !ok {
			return domain.PlayoffSchedule{}, fmt.Errorf("%w: missing result for %s", ErrRoundIncomplete, m.ID)
		}
		if err := checkResult(m, r); err != nil {
			return domain.PlayoffSchedule{}, err
		}
		matchups[i] = m.WithResult(r)
	}
	next.Rounds[round] = matchups

	switch round {
	case domain.RoundWildCard:
		if err := buildDivisional(&next); err != nil {
			return domain.PlayoffSchedule{}, err
		}
		next.State = domain.StateDivisional
	case domain.RoundDivisional:
		if err := buildConference(&next); err != nil {
			return domain.PlayoffSchedule{}, err
		}
		next.State = domain.StateConference
	case domain.RoundConference:
		if err := buildSuperBowl(&next); err != nil {
			return domain.PlayoffSchedule{}, err
		}
		next.State = domain.StateSuperBowl
	case domain.RoundSuperBowl:
		next.State = domain.StateComplete
	}

	return next, nil
}

// replayCheck handles results for a round that already advanced: identical
// results return the schedule untouched, anything else is rejected.
func replayCheck(ps domain.PlayoffSchedule, round domain.PlayoffRound, results map[string]domain.Result) (domain.PlayoffSchedule, error) {
	matchups, ok := ps.Rounds[round]
	if !ok {
		return domain.PlayoffSchedule{}, fmt.Errorf("%w: %s", ErrRoundNotBuilt, round)
	}
	for _, m := range matchups {
		r, ok := results[m.ID]
		if !ok {
			return domain.PlayoffSchedule{}, fmt.Errorf("%w: missing result for %s", ErrConflictingResults, m.ID)
		}
		if !m.Played || m.Result != r {
			return domain.PlayoffSchedule{}, fmt.Errorf("%w: %s", ErrConflictingResults, m.ID)
		}
	}
	return ps, nil
}

func checkResult(m domain.PlayoffMatchup, r domain.Result) error {
	if r.WinnerID != m.HomeID && r.WinnerID != m.AwayID {
		return fmt.Errorf("%w: matchup %s winner %q is not a participant", ErrInvalidResult, m.ID, r.WinnerID)
	}
	if r.HomeScore == r.AwayScore {
		return fmt.Errorf("%w: matchup %s cannot end tied", ErrInvalidResult, m.ID)
	}
	want := m.HomeID
	if r.AwayScore > r.HomeScore {
		want = m.AwayID
	}
	if r.WinnerID != want {
		return fmt.Errorf("%w: matchup %s winner %s disagrees with score %d-%d",
			ErrInvalidResult, m.ID, r.WinnerID, r.HomeScore, r.AwayScore)
	}
	return nil
}

type seededTeam struct {
	seed int
	team string
}

// roundWinners collects a conference's winners from a completed round,
// ordered best (lowest) seed first.
func roundWinners(ps *domain.PlayoffSchedule, round domain.PlayoffRound, conf domain.Conference) ([]seededTeam, error) {
	var winners []seededTeam
	for _, m := range ps.Rounds[round] {
		if m.Conference != conf {
			continue
		}
		team, ok := m.Winner()
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrRoundIncomplete, m.ID)
		}
		seed, _ := m.WinnerSeed()
		winners = append(winners, seededTeam{seed: seed, team: team})
	}
	sort.Slice(winners, func(i, j int) bool { return winners[i].seed < winners[j].seed })
	return winners, nil
}

// buildDivisional re-seeds after the wildcard round: seed 1 hosts the
// lowest-seeded surviving winner, the other two winners meet with the
// higher original seed hosting.
func buildDivisional(ps *domain.PlayoffSchedule) error {
	for _, conf := range domain.Conferences() {
		winners, err := roundWinners(ps, domain.RoundWildCard, conf)
		if err != nil {
			return err
		}
		if len(winners) != 3 {
			return fmt.Errorf("%w: %s has %d wildcard winners, expected 3", ErrRoundIncomplete, conf, len(winners))
		}
		one, ok := ps.Seeds[conf][1]
		if !ok {
			return fmt.Errorf("%w: %s has no top seed", ErrRoundNotBuilt, conf)
		}

		lowest := winners[2]
		mid := []seededTeam{winners[0], winners[1]}
		ps.Rounds[domain.RoundDivisional] = append(ps.Rounds[domain.RoundDivisional],
			matchup(ps.Year, "DIV", domain.RoundDivisional, conf, seededTeam{1, one}, lowest),
			matchup(ps.Year, "DIV", domain.RoundDivisional, conf, mid[0], mid[1]),
		)
	}
	return nil
}

// buildConference pairs each conference's two divisional winners.
func buildConference(ps *domain.PlayoffSchedule) error {
	for _, conf := range domain.Conferences() {
		winners, err := roundWinners(ps, domain.RoundDivisional, conf)
		if err != nil {
			return err
		}
		if len(winners) != 2 {
			return fmt.Errorf("%w: %s has %d divisional winners, expected 2", ErrRoundIncomplete, conf, len(winners))
		}
		ps.Rounds[domain.RoundConference] = append(ps.Rounds[domain.RoundConference],
			matchup(ps.Year, "CONF", domain.RoundConference, conf, winners[0], winners[1]))
	}
	return nil
}

// buildSuperBowl pairs the conference champions at a neutral site. The home
// designation is record-keeping only and follows the year's host-conference
// parity, keeping the pipeline clock-free.
func buildSuperBowl(ps *domain.PlayoffSchedule) error {
	champs := make(map[domain.Conference]seededTeam, 2)
	for _, conf := range domain.Conferences() {
		winners, err := roundWinners(ps, domain.RoundConference, conf)
		if err != nil {
			return err
		}
		if len(winners) != 1 {
			return fmt.Errorf("%w: %s has %d conference champions, expected 1", ErrRoundIncomplete, conf, len(winners))
		}
		champs[conf] = winners[0]
	}

	homeConf := domain.HostConference(ps.Year)
	home, away := champs[homeConf], champs[homeConf.Opposite()]
	ps.Rounds[domain.RoundSuperBowl] = []domain.PlayoffMatchup{{
		ID:         fmt.Sprintf("%d-SB", ps.Year),
		Round:      domain.RoundSuperBowl,
		Conference: homeConf,
		Neutral:    true,
		HomeID:     home.team,
		AwayID:     away.team,
		HomeSeed:   home.seed,
		AwaySeed:   away.seed,
	}}
	return nil
}

// matchup builds a non-neutral playoff game with the better seed hosting.
func matchup(year int, tag string, round domain.PlayoffRound, conf domain.Conference, a, b seededTeam) domain.PlayoffMatchup {
	home, away := a, b
	if b.seed < a.seed {
		home, away = b, a
	}
	return domain.PlayoffMatchup{
		ID:         fmt.Sprintf("%d-%s-%s-%dv%d", year, tag, conf, home.seed, away.seed),
		Round:      round,
		Conference: conf,
		HomeID:     home.team,
		AwayID:     away.team,
		HomeSeed:   home.seed,
		AwaySeed:   away.seed,
	}
}
