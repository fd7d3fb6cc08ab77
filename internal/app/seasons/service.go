// Package seasons orchestrates the full pipeline for a league year:
// schedule generation, validation, simulated play, standings, the playoff
// bracket, and the next entry draft order.
package seasons

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/j-r-j/gridiron/internal/domain"
	"github.com/j-r-j/gridiron/internal/draft"
	"github.com/j-r-j/gridiron/internal/logging"
	"github.com/j-r-j/gridiron/internal/metrics"
	"github.com/j-r-j/gridiron/internal/playoffs"
	"github.com/j-r-j/gridiron/internal/schedule"
	"github.com/j-r-j/gridiron/internal/sim"
	"github.com/j-r-j/gridiron/internal/standings"
)

// ErrValidationFailed wraps a schedule that tripped validator gates. The
// full report travels in the error message; gates also reach the metrics
// recorder.
var ErrValidationFailed = errors.New("schedule failed validation")

// Store defines the persistence contract the service needs.
type Store interface {
	PutSeason(rec domain.SeasonRecord)
	Season(year int) (domain.SeasonRecord, bool)
	Years() []int
}

// Option adjusts service construction.
type Option func(*Service)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithRankPolicy overrides the generator's rank-matching policy.
func WithRankPolicy(p schedule.RankPolicy) Option {
	return func(s *Service) { s.policy = p }
}

// Service coordinates the season pipeline using a Store and a Simulator.
type Service struct {
	store     Store
	simulator sim.Simulator
	logger    *slog.Logger
	metrics   *metrics.Recorder
	policy    schedule.RankPolicy
}

// NewService constructs a Service with the provided collaborators.
func NewService(store Store, simulator sim.Simulator, opts ...Option) *Service {
	s := &Service{
		store:     store,
		simulator: simulator,
		policy:    schedule.StraightRank,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RunSeason executes one full league year: generate, validate, simulate,
// accumulate, bracket, advance, and order the draft. The produced record is
// stored and returned; prev feeds the rank-matched schedule components.
func (s *Service) RunSeason(league *domain.League, prev []domain.TeamStanding, year int) (domain.SeasonRecord, error) {
	start := time.Now()
	sched, err := schedule.Generate(league, prev, year, schedule.WithRankPolicy(s.policy))
	s.metrics.RecordGeneration(year, time.Since(start), err)
	if err != nil {
		return domain.SeasonRecord{}, fmt.Errorf("generating %d schedule: %w", year, err)
	}
	logging.Info(s.logger, "schedule generated",
		logging.FieldYear, year,
		logging.FieldCount, len(sched.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)

	report, err := schedule.Validate(sched, league, prev)
	if err != nil {
		return domain.SeasonRecord{}, fmt.Errorf("validating %d schedule: %w", year, err)
	}
	s.metrics.RecordValidation(report.Gates())
	if !report.Pass() {
		for _, f := range report.Failures {
			logging.Warn(s.logger, "validation gate failed",
				logging.FieldYear, year,
				logging.FieldGate, f.Gate,
				"detail", f.Detail,
			)
		}
		return domain.SeasonRecord{}, fmt.Errorf("%w: year %d gates %v", ErrValidationFailed, year, report.Gates())
	}

	sched, err = s.playRegularSeason(sched)
	if err != nil {
		return domain.SeasonRecord{}, err
	}

	final, err := standings.Accumulate(league, sched)
	if err != nil {
		return domain.SeasonRecord{}, fmt.Errorf("accumulating %d standings: %w", year, err)
	}

	bracket, err := s.playPostseason(league, final, year)
	if err != nil {
		return domain.SeasonRecord{}, err
	}

	order, err := draft.Calculate(final, bracket)
	if err != nil {
		return domain.SeasonRecord{}, fmt.Errorf("calculating %d draft order: %w", year, err)
	}
	s.metrics.RecordDraftOrder()

	champion, _ := bracket.SuperBowlChampion()
	logging.Info(s.logger, "season complete",
		logging.FieldYear, year,
		logging.FieldChampion, champion,
	)

	rec := domain.SeasonRecord{
		Year:      year,
		Schedule:  sched,
		Standings: final,
		Playoffs:  bracket,
		Draft:     order,
	}
	s.store.PutSeason(rec)
	return rec, nil
}

// RunDynasty runs count consecutive seasons from startYear, threading each
// year's final standings into the next year's generation. The first season
// is seeded from the deterministic baseline standings.
func (s *Service) RunDynasty(league *domain.League, startYear, count int) ([]domain.SeasonRecord, error) {
	if count < 1 {
		return nil, fmt.Errorf("dynasty length must be positive, got %d", count)
	}
	prev := standings.Baseline(league)
	records := make([]domain.SeasonRecord, 0, count)
	for year := startYear; year < startYear+count; year++ {
		rec, err := s.RunSeason(league, prev, year)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
		prev = rec.Standings
	}
	return records, nil
}

func (s *Service) playRegularSeason(sched domain.SeasonSchedule) (domain.SeasonSchedule, error) {
	played := 0
	for week := 1; week <= domain.RegularSeasonWeeks; week++ {
		for _, g := range sched.WeekGames(week) {
			updated, err := sched.WithResult(g.ID, s.simulator.Simulate(g))
			if err != nil {
				return domain.SeasonSchedule{}, fmt.Errorf("recording result for %s: %w", g.ID, err)
			}
			sched = updated
			played++
		}
	}
	s.metrics.RecordGamesSimulated(played)
	return sched, nil
}

func (s *Service) playPostseason(league *domain.League, final []domain.TeamStanding, year int) (domain.PlayoffSchedule, error) {
	bracket, err := playoffs.GenerateBracket(league, final, year)
	if err != nil {
		return domain.PlayoffSchedule{}, fmt.Errorf("seeding %d bracket: %w", year, err)
	}

	for {
		round, open := bracket.CurrentRound()
		if !open {
			return bracket, nil
		}
		results := make(map[string]domain.Result)
		for _, m := range bracket.RoundMatchups(round) {
			results[m.ID] = s.simulator.Simulate(domain.Game{
				ID:     m.ID,
				HomeID: m.HomeID,
				AwayID: m.AwayID,
			})
		}
		advanced, err := playoffs.Advance(bracket, round, results)
		s.metrics.RecordPlayoffAdvance(round.String(), err)
		if err != nil {
			return domain.PlayoffSchedule{}, fmt.Errorf("advancing %s: %w", round, err)
		}
		logging.Info(s.logger, "playoff round complete",
			logging.FieldYear, year,
			logging.FieldRound, round.String(),
			logging.FieldCount, len(results),
		)
		bracket = advanced
	}
}
