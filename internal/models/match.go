package models

import "time"

// Match is a completed match seen from player A's side. Y is 1 when A won.
// Historical rows are always stored winner-first with Y=1, and ingested
// results that omit y are read the same way.
type Match struct {
	Date       time.Time `json:"date"`
	Tour       string    `json:"tour,omitempty"`
	Tournament string    `json:"tournament,omitempty"`
	Level      string    `json:"level,omitempty"`
	Surface    string    `json:"surface"`
	BestOf     int       `json:"best_of,omitempty" validate:"omitempty,oneof=3 5"`
	PlayerA    string    `json:"player_a" validate:"required"`
	PlayerB    string    `json:"player_b" validate:"required,nefield=PlayerA"`
	Round      string    `json:"round,omitempty"`
	Y          int       `json:"y" validate:"oneof=0 1"`
}

// Year of the match date.
func (m Match) Year() int {
	return m.Date.Year()
}
