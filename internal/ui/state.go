package ui

import (
	"sync"

	"github.com/courtside/tennis-predictor/internal/models"
)

// State is everything the page remembers between events.
type State struct {
	Names *NameStore

	mu      sync.RWMutex
	surface models.Surface
}

func NewState(names *NameStore) *State {
	return &State{Names: names, surface: models.DefaultSurface}
}

func (s *State) Surface() models.Surface {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surface
}

// advanceSurface moves to the next surface and returns it.
func (s *State) advanceSurface() models.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surface = s.surface.Next()
	return s.surface
}
