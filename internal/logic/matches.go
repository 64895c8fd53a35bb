package logic

import (
	"sort"

	"github.com/courtside/tennis-predictor/internal/models"
)

var (
	mainDrawLevels = map[string]bool{"G": true, "M": true, "A": true, "C": true}
	mainDrawRounds = map[string]bool{"R128": true, "R64": true, "R32": true, "R16": true, "QF": true, "SF": true, "F": true}
)

// IsMainDraw reports whether a match is a best-of-3/5 main-draw match at tour level.
func IsMainDraw(m models.Match) bool {
	return mainDrawLevels[m.Level] && mainDrawRounds[m.Round] && (m.BestOf == 3 || m.BestOf == 5)
}

// FilterMainDraw keeps main-draw matches, preserving order.
func FilterMainDraw(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if IsMainDraw(m) {
			out = append(out, m)
		}
	}
	return out
}

// SortByDate orders matches chronologically; same-day matches keep their input order.
func SortByDate(matches []models.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
}

// ScoredMatch is a match with the engine's pre-match probability for player A.
type ScoredMatch struct {
	models.Match
	Delta float64
	PA    float64
}

// ReplayMatches runs matches through a fresh engine in date order and records
// the pre-match probability of every result.
func ReplayMatches(matches []models.Match, cfg EloConfig) (*SurfaceElo, []ScoredMatch) {
	sorted := make([]models.Match, len(matches))
	copy(sorted, matches)
	SortByDate(sorted)

	engine := NewSurfaceElo(cfg)
	scored := make([]ScoredMatch, 0, len(sorted))
	for _, m := range sorted {
		delta, p := engine.ProcessMatch(m.PlayerA, m.PlayerB, m.Surface, m.Y)
		scored = append(scored, ScoredMatch{Match: m, Delta: delta, PA: p})
	}
	return engine, scored
}
