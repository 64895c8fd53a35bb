package logic

import "math"

// staticRatings is the hand-curated surface table served when no match history is loaded.
var staticRatings = map[string]map[string]float64{
	"Novak Djokovic":     {"Hard": 2100, "Clay": 2050, "Grass": 2080},
	"Carlos Alcaraz":     {"Hard": 2080, "Clay": 2070, "Grass": 2040},
	"Jannik Sinner":      {"Hard": 2070, "Clay": 2020, "Grass": 2030},
	"Daniil Medvedev":    {"Hard": 2060, "Clay": 1950, "Grass": 2000},
	"Rafael Nadal":       {"Hard": 2040, "Clay": 2150, "Grass": 1980},
	"Alexander Zverev":   {"Hard": 2050, "Clay": 2040, "Grass": 2010},
	"Andrey Rublev":      {"Hard": 2030, "Clay": 2000, "Grass": 1990},
	"Casper Ruud":        {"Hard": 2010, "Clay": 2060, "Grass": 1970},
	"Stefanos Tsitsipas": {"Hard": 2020, "Clay": 2030, "Grass": 1980},
	"Taylor Fritz":       {"Hard": 2000, "Clay": 1920, "Grass": 1970},
	"Roger Federer":      {"Hard": 2020, "Clay": 1980, "Grass": 2100},
	"Andy Murray":        {"Hard": 1990, "Clay": 1970, "Grass": 2000},
}

const staticDefaultRating = 1500

// StaticRatings predicts from the fixed table with the classic 400-point Elo curve.
type StaticRatings struct{}

func (StaticRatings) rating(player, surface string) float64 {
	if bySurface, ok := staticRatings[player]; ok {
		if r, ok := bySurface[surface]; ok {
			return r
		}
	}
	return staticDefaultRating
}

// WinProbability is the probability that a beats b on the given match-history surface.
func (r StaticRatings) WinProbability(a, b, surface string) float64 {
	diff := r.rating(a, surface) - r.rating(b, surface)
	return 1 / (1 + math.Pow(10, -diff/400))
}
