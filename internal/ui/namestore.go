package ui

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var errNoNames = errors.New("name source returned no players")

// NameStore is the ordered list of player names offered for autocomplete.
type NameStore struct {
	mu     sync.RWMutex
	names  []string
	logger *zap.SugaredLogger
}

func NewNameStore(logger *zap.Logger) *NameStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NameStore{logger: logger.Sugar()}
}

// Load reads the list once. Any failure, including an empty list, leaves the
// store empty and is only logged.
func (s *NameStore) Load(ctx context.Context, src NamesSource) {
	names, err := src.PlayerNames(ctx)
	if err == nil && len(names) == 0 {
		err = errNoNames
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logger.Errorw("Error loading players", "error", err)
		s.names = nil
		return
	}
	s.names = append([]string(nil), names...)
	s.logger.Infow("Loaded player names", "count", len(names))
}

// Names returns the loaded names in source order.
func (s *NameStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names
}

func (s *NameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}
