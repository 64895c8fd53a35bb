package logic

import (
	"math"
	"sync"
)

// EloConfig holds the surface-aware Elo hyper-parameters.
type EloConfig struct {
	K              float64 // update step
	Scale          float64 // logistic slope applied to the blended rating gap
	Alpha          float64 // weight of the global rating in the blend
	InitRating     float64
	UnknownSurface string
}

// DefaultEloConfig returns the parameters used when no tuned file is available.
func DefaultEloConfig() EloConfig {
	return EloConfig{
		K:              32,
		Scale:          0.004,
		Alpha:          0.40,
		InitRating:     1500,
		UnknownSurface: "Unknown",
	}
}

type surfaceKey struct {
	player  string
	surface string
}

// SurfaceElo tracks a global rating and one rating per surface for every player.
// A player's strength on a surface is surface + Alpha*global.
type SurfaceElo struct {
	cfg EloConfig

	mu      sync.RWMutex
	global  map[string]float64
	surface map[surfaceKey]float64
	matches int
}

func NewSurfaceElo(cfg EloConfig) *SurfaceElo {
	if cfg.InitRating == 0 {
		cfg.InitRating = 1500
	}
	if cfg.UnknownSurface == "" {
		cfg.UnknownSurface = "Unknown"
	}
	return &SurfaceElo{
		cfg:     cfg,
		global:  make(map[string]float64),
		surface: make(map[surfaceKey]float64),
	}
}

func (e *SurfaceElo) Config() EloConfig { return e.cfg }

// get must be called with mu held.
func (e *SurfaceElo) get(player, surface string) (g, s float64) {
	g, ok := e.global[player]
	if !ok {
		g = e.cfg.InitRating
	}
	s, ok = e.surface[surfaceKey{player, surface}]
	if !ok {
		s = e.cfg.InitRating
	}
	return g, s
}

func (e *SurfaceElo) probFromDelta(delta float64) float64 {
	return 1.0 / (1.0 + math.Exp(-e.cfg.Scale*delta))
}

func (e *SurfaceElo) delta(a, b, surface string) float64 {
	gA, sA := e.get(a, surface)
	gB, sB := e.get(b, surface)
	return (sA + e.cfg.Alpha*gA) - (sB + e.cfg.Alpha*gB)
}

// ProcessMatch applies one result. y is 1 when a won, 0 when b won.
// It returns the pre-match blended gap and a's pre-match win probability.
func (e *SurfaceElo) ProcessMatch(a, b, surface string, y int) (delta, pA float64) {
	if surface == "" {
		surface = e.cfg.UnknownSurface
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	gA, sA := e.get(a, surface)
	gB, sB := e.get(b, surface)

	delta = (sA + e.cfg.Alpha*gA) - (sB + e.cfg.Alpha*gB)
	pA = e.probFromDelta(delta)

	score := float64(y)
	stepA := e.cfg.K * (score - pA)
	stepB := e.cfg.K * ((1 - score) - (1 - pA))

	e.global[a] = gA + stepA
	e.surface[surfaceKey{a, surface}] = sA + stepA
	e.global[b] = gB + stepB
	e.surface[surfaceKey{b, surface}] = sB + stepB
	e.matches++

	return delta, pA
}

// WinProbability is the probability that a beats b on the given match-history surface.
func (e *SurfaceElo) WinProbability(a, b, surface string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.probFromDelta(e.delta(a, b, surface))
}

// Rating returns the global and surface rating of a player.
func (e *SurfaceElo) Rating(player, surface string) (global, onSurface float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.get(player, surface)
}

// Players is the number of players with a global rating.
func (e *SurfaceElo) Players() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.global)
}

// Matches is the number of results applied so far.
func (e *SurfaceElo) Matches() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.matches
}
