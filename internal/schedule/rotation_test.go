package schedule

import (
	"testing"

	"github.com/j-r-j/gridiron/internal/domain"
)

func TestIntraconferencePairingIsSymmetric(t *testing.T) {
	for year := 2020; year <= 2040; year++ {
		for _, div := range domain.Divisions() {
			partner := IntraconferenceOpponent(div, year)
			if partner == div {
				t.Fatalf("year %d: %s paired with itself", year, div)
			}
			if back := IntraconferenceOpponent(partner, year); back != div {
				t.Fatalf("year %d: %s -> %s -> %s, not symmetric", year, div, partner, back)
			}
		}
	}
}

func TestIntraconferenceCoversAllPartnersInThreeYears(t *testing.T) {
	for start := 2020; start <= 2030; start++ {
		for _, div := range domain.Divisions() {
			seen := make(map[domain.Division]bool)
			for offset := 0; offset < 3; offset++ {
				seen[IntraconferenceOpponent(div, start+offset)] = true
			}
			if len(seen) != 3 || seen[div] {
				t.Fatalf("years %d-%d: %s partners %v do not cover the other three divisions",
					start, start+2, div, seen)
			}
		}
	}
}

func TestInterconferencePairingIsSymmetric(t *testing.T) {
	for year := 2020; year <= 2040; year++ {
		for _, div := range domain.Divisions() {
			nfcDiv := InterconferenceOpponent(domain.AFC, div, year)
			if back := InterconferenceOpponent(domain.NFC, nfcDiv, year); back != div {
				t.Fatalf("year %d: AFC %s -> NFC %s -> AFC %s, not symmetric", year, div, nfcDiv, back)
			}
		}
	}
}

func TestInterconferenceCoversAllDivisionsInFourYears(t *testing.T) {
	for start := 2020; start <= 2030; start++ {
		for _, conf := range domain.Conferences() {
			for _, div := range domain.Divisions() {
				seen := make(map[domain.Division]bool)
				for offset := 0; offset < 4; offset++ {
					seen[InterconferenceOpponent(conf, div, start+offset)] = true
				}
				if len(seen) != 4 {
					t.Fatalf("years %d-%d: %s %s opponents %v do not cover all four divisions",
						start, start+3, conf, div, seen)
				}
			}
		}
	}
}

func TestExtraGameLagsInterconferenceByTwoYears(t *testing.T) {
	for year := 2020; year <= 2040; year++ {
		for _, conf := range domain.Conferences() {
			for _, div := range domain.Divisions() {
				extra := ExtraGameOpponentDivision(conf, div, year)
				if want := InterconferenceOpponent(conf, div, year-2); extra != want {
					t.Fatalf("year %d: %s %s extra-game division %s, expected %s", year, conf, div, extra, want)
				}
				if extra == InterconferenceOpponent(conf, div, year) {
					t.Fatalf("year %d: %s %s extra game repeats the current rotation pairing", year, conf, div)
				}
			}
		}
	}
}

func TestExtraGameHostConferenceAlternates(t *testing.T) {
	for year := 2020; year <= 2040; year++ {
		host := ExtraGameHostConference(year)
		if year%2 == 1 && host != domain.AFC {
			t.Fatalf("year %d: expected AFC to host, got %s", year, host)
		}
		if year%2 == 0 && host != domain.NFC {
			t.Fatalf("year %d: expected NFC to host, got %s", year, host)
		}
	}
}

func TestRotationTablesTotalBeforeEpoch(t *testing.T) {
	// Historical years index the same cycles, with no negative lookups.
	for year := 1920; year < RotationEpoch; year += 7 {
		for _, div := range domain.Divisions() {
			if p := IntraconferenceOpponent(div, year); p == div {
				t.Fatalf("year %d: %s paired with itself", year, div)
			}
			for _, conf := range domain.Conferences() {
				InterconferenceOpponent(conf, div, year)
				ExtraGameOpponentDivision(conf, div, year)
			}
		}
	}
}
