package config

import (
	"testing"

	"github.com/j-r-j/gridiron/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TeamsFile != "" {
		t.Fatalf("expected empty teams file by default, got %s", cfg.TeamsFile)
	}
	if cfg.OutputDir != defaultOutputDir {
		t.Fatalf("expected default output dir %s, got %s", defaultOutputDir, cfg.OutputDir)
	}
	if cfg.ExportFormat != defaultExportFormat {
		t.Fatalf("expected default export format %s, got %s", defaultExportFormat, cfg.ExportFormat)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("expected default metrics port %s, got %s", defaultMetricsPort, cfg.Metrics.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envTeamsFile, "teams.yaml")
	t.Setenv(envOutputDir, "/tmp/out")
	t.Setenv(envExportFormat, "yaml")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envMetricsEnabled, "true")
	t.Setenv(envMetricsPort, "9999")
	t.Setenv(envOtlpEndpoint, "collector:4318")

	cfg := Load()

	if cfg.TeamsFile != "teams.yaml" {
		t.Fatalf("expected teams file override, got %s", cfg.TeamsFile)
	}
	if cfg.OutputDir != "/tmp/out" {
		t.Fatalf("expected output dir override, got %s", cfg.OutputDir)
	}
	if cfg.ExportFormat != "yaml" {
		t.Fatalf("expected export format yaml, got %s", cfg.ExportFormat)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.LogLevel)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled")
	}
	if cfg.Metrics.Port != "9999" {
		t.Fatalf("expected metrics port 9999, got %s", cfg.Metrics.Port)
	}
	if cfg.Metrics.OtlpEndpoint != "collector:4318" {
		t.Fatalf("expected otlp endpoint override, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestBoolEnvFallsBackOnGarbage(t *testing.T) {
	t.Setenv(envMetricsEnabled, "maybe")
	if cfg := Load(); cfg.Metrics.Enabled {
		t.Fatalf("expected invalid bool to fall back to default")
	}
}

func TestDefaultTeamsFormValidLeague(t *testing.T) {
	league, err := domain.NewLeague(DefaultTeams())
	if err != nil {
		t.Fatalf("default teams rejected: %v", err)
	}
	if got := len(league.Teams()); got != domain.NumTeams {
		t.Fatalf("expected %d teams, got %d", domain.NumTeams, got)
	}
}
