package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/j-r-j/gridiron/internal/domain"
)

func sampleRecord(year int) domain.SeasonRecord {
	return domain.SeasonRecord{
		Year: year,
		Schedule: domain.SeasonSchedule{
			Year: year,
			Games: []domain.Game{
				{ID: "2025-W01-BUF-NE", Week: 1, HomeID: "NE", AwayID: "BUF"},
			},
			ByeWeeks: map[string]int{"NE": 7},
		},
		Draft: domain.DraftOrder{Year: year, Picks: []string{"BUF", "NE"}},
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat("yaml"); got != FormatYAML {
		t.Fatalf("expected yaml, got %s", got)
	}
	if got := ParseFormat("json"); got != FormatJSON {
		t.Fatalf("expected json, got %s", got)
	}
	if got := ParseFormat("parquet"); got != FormatJSON {
		t.Fatalf("expected unknown format to default to json, got %s", got)
	}
}

func TestWriteSeasonJSON(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, FormatJSON)

	path, err := w.WriteSeason(sampleRecord(2025))
	if err != nil {
		t.Fatalf("write season: %v", err)
	}
	if filepath.Base(path) != "season-2025.json" {
		t.Fatalf("unexpected file name %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var rec domain.SeasonRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Year != 2025 || len(rec.Schedule.Games) != 1 {
		t.Fatalf("round trip lost data: %+v", rec)
	}
}

func TestWriteScheduleYAML(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, FormatYAML)

	path, err := w.WriteSchedule(sampleRecord(2025).Schedule)
	if err != nil {
		t.Fatalf("write schedule: %v", err)
	}
	if filepath.Base(path) != "schedule-2025.yaml" {
		t.Fatalf("unexpected file name %s", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["year"] != 2025 {
		t.Fatalf("unexpected year in yaml output: %v", decoded["year"])
	}
}

func TestManifestTracksFilesOnce(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, FormatJSON)

	if _, err := w.WriteSeason(sampleRecord(2025)); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if _, err := w.WriteSeason(sampleRecord(2026)); err != nil {
		t.Fatalf("second write: %v", err)
	}
	// Rewriting a season must not duplicate its manifest entry.
	if _, err := w.WriteSeason(sampleRecord(2025)); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if m.RunID != w.RunID() {
		t.Fatalf("manifest run id %s, expected %s", m.RunID, w.RunID())
	}
	if len(m.Files) != 2 {
		t.Fatalf("expected 2 manifest files, got %v", m.Files)
	}
	if m.UpdatedAt == "" {
		t.Fatalf("manifest missing update time")
	}
}

func TestWriterRunIDsAreUnique(t *testing.T) {
	a := NewWriter(t.TempDir(), FormatJSON)
	b := NewWriter(t.TempDir(), FormatJSON)
	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Fatalf("expected distinct non-empty run ids, got %q and %q", a.RunID(), b.RunID())
	}
}
