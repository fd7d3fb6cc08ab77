package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/j-r-j/gridiron/internal/app/seasons"
	"github.com/j-r-j/gridiron/internal/config"
	"github.com/j-r-j/gridiron/internal/domain"
	"github.com/j-r-j/gridiron/internal/export"
	"github.com/j-r-j/gridiron/internal/logging"
	"github.com/j-r-j/gridiron/internal/metrics"
	"github.com/j-r-j/gridiron/internal/schedule"
	"github.com/j-r-j/gridiron/internal/sim"
	"github.com/j-r-j/gridiron/internal/standings"
	"github.com/j-r-j/gridiron/internal/store"
)

const version = "0.1.0"

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:    "season",
		Usage:   "generate, validate, and simulate league seasons",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "teams",
				Usage: "YAML file with the 32-team league (defaults to the built-in league)",
				Value: cfg.TeamsFile,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "directory for exported season files",
				Value: cfg.OutputDir,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "export format: json or yaml",
				Value: cfg.ExportFormat,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error",
				Value: cfg.LogLevel,
			},
		},
		Commands: []*cli.Command{
			scheduleCommand(cfg),
			simulateCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func scheduleCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "generate and validate a single regular-season schedule",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "year",
				Usage:    "league year to schedule",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			logger := newLogger(c, cfg)
			league, err := loadLeague(c.String("teams"))
			if err != nil {
				return err
			}

			year := c.Int("year")
			sched, err := schedule.Generate(league, standings.Baseline(league), year)
			if err != nil {
				return fmt.Errorf("generating schedule: %w", err)
			}
			report, err := schedule.Validate(sched, league, standings.Baseline(league))
			if err != nil {
				return fmt.Errorf("validating schedule: %w", err)
			}
			if !report.Pass() {
				for _, f := range report.Failures {
					logging.Warn(logger, "gate failed", logging.FieldGate, f.Gate, "detail", f.Detail)
				}
				return fmt.Errorf("schedule failed %d validation gates", len(report.Failures))
			}

			writer := export.NewWriter(c.String("output"), export.ParseFormat(c.String("format")))
			path, err := writer.WriteSchedule(sched)
			if err != nil {
				return fmt.Errorf("exporting schedule: %w", err)
			}
			logging.Info(logger, "schedule written",
				logging.FieldYear, year,
				logging.FieldCount, len(sched.Games),
				logging.FieldPath, path,
			)
			return nil
		},
	}
}

func simulateCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "run one or more full seasons, regular season through draft order",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "year",
				Usage:    "first league year to simulate",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "seasons",
				Usage: "number of consecutive seasons to run",
				Value: 1,
			},
		},
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			logger := newLogger(c, cfg)
			league, err := loadLeague(c.String("teams"))
			if err != nil {
				return err
			}

			recorder, promHandler, shutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
				Enabled:      cfg.Metrics.Enabled,
				ServiceName:  cfg.Metrics.ServiceName,
				OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
				OtlpInsecure: cfg.Metrics.OtlpInsecure,
			})
			if err != nil {
				return fmt.Errorf("setting up metrics: %w", err)
			}
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					logging.Warn(logger, "metrics shutdown failed", "error", err)
				}
			}()
			if promHandler != nil {
				go serveMetrics(logger, cfg.Metrics.Port, promHandler)
			}

			svc := seasons.NewService(store.NewMemoryStore(), sim.HomeField{},
				seasons.WithLogger(logger),
				seasons.WithMetrics(recorder),
			)
			records, err := svc.RunDynasty(league, c.Int("year"), c.Int("seasons"))
			if err != nil {
				return fmt.Errorf("running seasons: %w", err)
			}

			writer := export.NewWriter(c.String("output"), export.ParseFormat(c.String("format")))
			for _, rec := range records {
				path, err := writer.WriteSeason(rec)
				if err != nil {
					return fmt.Errorf("exporting season %d: %w", rec.Year, err)
				}
				champion, _ := rec.Playoffs.SuperBowlChampion()
				logging.Info(logger, "season written",
					logging.FieldYear, rec.Year,
					logging.FieldChampion, champion,
					logging.FieldPath, path,
				)
			}
			return nil
		},
	}
}

func newLogger(c *cli.Context, cfg config.Config) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   c.String("log-level"),
		Format:  cfg.LogFormat,
		Service: "season",
		Version: version,
	})
}

func loadLeague(teamsFile string) (*domain.League, error) {
	teams := config.DefaultTeams()
	if teamsFile != "" {
		loaded, err := config.LoadTeams(teamsFile)
		if err != nil {
			return nil, fmt.Errorf("loading teams: %w", err)
		}
		teams = loaded
	}
	league, err := domain.NewLeague(teams)
	if err != nil {
		return nil, fmt.Errorf("building league: %w", err)
	}
	return league, nil
}

func serveMetrics(logger *slog.Logger, port string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	addr := ":" + port
	logging.Info(logger, "metrics endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logging.Error(logger, "metrics endpoint failed", err)
	}
}
