package logic

import "math"

const probEpsilon = 1e-6

// Metrics summarises how well pre-match probabilities predicted results.
type Metrics struct {
	LogLoss  float64 `json:"log_loss"`
	Brier    float64 `json:"brier"`
	Accuracy float64 `json:"accuracy"`
	Samples  int     `json:"samples"`
}

// Evaluate scores matches symmetrically: every match is also counted from
// player B's side, so winner-first history does not bias the metrics.
func Evaluate(scored []ScoredMatch) Metrics {
	var m Metrics
	if len(scored) == 0 {
		return m
	}

	var ll, brier float64
	var correct int
	add := func(y, p float64) {
		pc := math.Min(math.Max(p, probEpsilon), 1-probEpsilon)
		ll += -(y*math.Log(pc) + (1-y)*math.Log(1-pc))
		brier += (p - y) * (p - y)
		if (p > 0.5) == (y == 1) {
			correct++
		}
		m.Samples++
	}

	for _, s := range scored {
		y := float64(s.Y)
		add(y, s.PA)
		add(1-y, 1-s.PA)
	}

	n := float64(m.Samples)
	m.LogLoss = ll / n
	m.Brier = brier / n
	m.Accuracy = float64(correct) / n
	return m
}
