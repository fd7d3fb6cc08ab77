package domain

// SeasonRecord bundles everything computed for one league year. It is the
// unit the store keeps and the exporter writes.
type SeasonRecord struct {
	Year      int             `json:"year"`
	Schedule  SeasonSchedule  `json:"schedule"`
	Standings []TeamStanding  `json:"standings"`
	Playoffs  PlayoffSchedule `json:"playoffs"`
	Draft     DraftOrder      `json:"draft"`
}
