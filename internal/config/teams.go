package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/j-r-j/gridiron/internal/domain"
)

type teamsFile struct {
	Teams []teamEntry `yaml:"teams"`
}

type teamEntry struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Conference string `yaml:"conference"`
	Division   string `yaml:"division"`
}

// LoadTeams reads league membership from a YAML file. Shape violations are
// left to domain.NewLeague so callers get one error taxonomy.
func LoadTeams(path string) ([]domain.Team, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading teams file: %w", err)
	}
	var parsed teamsFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parsing teams file %s: %w", path, err)
	}

	teams := make([]domain.Team, 0, len(parsed.Teams))
	for _, entry := range parsed.Teams {
		conf, err := domain.ParseConference(entry.Conference)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", entry.ID, err)
		}
		div, err := domain.ParseDivision(entry.Division)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", entry.ID, err)
		}
		teams = append(teams, domain.Team{
			ID:         entry.ID,
			Name:       entry.Name,
			Conference: conf,
			Division:   div,
		})
	}
	return teams, nil
}

// DefaultTeams returns the embedded 32-team league used when no teams file
// is configured.
func DefaultTeams() []domain.Team {
	entries := []struct {
		id, name string
		conf     domain.Conference
		div      domain.Division
	}{
		{"BUF", "Buffalo", domain.AFC, domain.East},
		{"MIA", "Miami", domain.AFC, domain.East},
		{"NE", "New England", domain.AFC, domain.East},
		{"NYJ", "New York Jets", domain.AFC, domain.East},
		{"BAL", "Baltimore", domain.AFC, domain.North},
		{"CIN", "Cincinnati", domain.AFC, domain.North},
		{"CLE", "Cleveland", domain.AFC, domain.North},
		{"PIT", "Pittsburgh", domain.AFC, domain.North},
		{"HOU", "Houston", domain.AFC, domain.South},
		{"IND", "Indianapolis", domain.AFC, domain.South},
		{"JAX", "Jacksonville", domain.AFC, domain.South},
		{"TEN", "Tennessee", domain.AFC, domain.South},
		{"DEN", "Denver", domain.AFC, domain.West},
		{"KC", "Kansas City", domain.AFC, domain.West},
		{"LAC", "Los Angeles Chargers", domain.AFC, domain.West},
		{"LV", "Las Vegas", domain.AFC, domain.West},
		{"DAL", "Dallas", domain.NFC, domain.East},
		{"NYG", "New York Giants", domain.NFC, domain.East},
		{"PHI", "Philadelphia", domain.NFC, domain.East},
		{"WAS", "Washington", domain.NFC, domain.East},
		{"CHI", "Chicago", domain.NFC, domain.North},
		{"DET", "Detroit", domain.NFC, domain.North},
		{"GB", "Green Bay", domain.NFC, domain.North},
		{"MIN", "Minnesota", domain.NFC, domain.North},
		{"ATL", "Atlanta", domain.NFC, domain.South},
		{"CAR", "Carolina", domain.NFC, domain.South},
		{"NO", "New Orleans", domain.NFC, domain.South},
		{"TB", "Tampa Bay", domain.NFC, domain.South},
		{"ARI", "Arizona", domain.NFC, domain.West},
		{"LAR", "Los Angeles Rams", domain.NFC, domain.West},
		{"SEA", "Seattle", domain.NFC, domain.West},
		{"SF", "San Francisco", domain.NFC, domain.West},
	}

	teams := make([]domain.Team, 0, len(entries))
	for _, e := range entries {
		teams = append(teams, domain.Team{ID: e.id, Name: e.name, Conference: e.conf, Division: e.div})
	}
	return teams
}
