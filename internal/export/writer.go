// Package export writes season records to disk for downstream tooling. All
// writes are atomic (temp file plus rename) and tracked in a manifest.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/xid"
	"gopkg.in/yaml.v3"

	"github.com/j-r-j/gridiron/internal/domain"
)

// Format selects the on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name, defaulting unknown values to JSON.
func ParseFormat(s string) Format {
	if Format(s) == FormatYAML {
		return FormatYAML
	}
	return FormatJSON
}

// Writer persists season records under a base directory.
type Writer struct {
	basePath string
	format   Format
	runID    string
}

// NewWriter constructs a writer rooted at basePath. Each writer carries a
// unique run id that tags the manifest entries it produces.
func NewWriter(basePath string, format Format) *Writer {
	if format != FormatYAML {
		format = FormatJSON
	}
	return &Writer{
		basePath: basePath,
		format:   format,
		runID:    xid.New().String(),
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// RunID exposes the writer's run id.
func (w *Writer) RunID() string {
	if w == nil {
		return ""
	}
	return w.runID
}

// WriteSeason writes one season record and updates the manifest, returning
// the written path.
func (w *Writer) WriteSeason(rec domain.SeasonRecord) (string, error) {
	if w == nil {
		return "", fmt.Errorf("export writer not configured")
	}
	path := w.seasonPath(rec.Year)
	if err := w.writeFile(path, rec); err != nil {
		return "", err
	}
	if err := w.appendManifest(filepath.Base(path)); err != nil {
		return "", err
	}
	return path, nil
}

// WriteSchedule writes a bare schedule (no results) for a year, returning
// the written path.
func (w *Writer) WriteSchedule(s domain.SeasonSchedule) (string, error) {
	if w == nil {
		return "", fmt.Errorf("export writer not configured")
	}
	path := filepath.Join(w.basePath, fmt.Sprintf("schedule-%d.%s", s.Year, w.format))
	if err := w.writeFile(path, s); err != nil {
		return "", err
	}
	if err := w.appendManifest(filepath.Base(path)); err != nil {
		return "", err
	}
	return path, nil
}

func (w *Writer) seasonPath(year int) string {
	return filepath.Join(w.basePath, fmt.Sprintf("season-%d.%s", year, w.format))
}

func (w *Writer) writeFile(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	var data []byte
	var err error
	switch w.format {
	case FormatYAML:
		data, err = yaml.Marshal(payload)
	default:
		data, err = json.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}
	return nil
}

type manifest struct {
	RunID     string   `json:"runId"`
	UpdatedAt string   `json:"updatedAt"`
	Files     []string `json:"files"`
}

func (w *Writer) manifestPath() string {
	return filepath.Join(w.basePath, "manifest.json")
}

func (w *Writer) appendManifest(file string) error {
	m := manifest{RunID: w.runID}
	if raw, err := os.ReadFile(w.manifestPath()); err == nil {
		_ = json.Unmarshal(raw, &m)
	}

	for _, existing := range m.Files {
		if existing == file {
			file = ""
			break
		}
	}
	if file != "" {
		m.Files = append(m.Files, file)
	}
	m.RunID = w.runID
	m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := w.manifestPath() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, w.manifestPath())
}
