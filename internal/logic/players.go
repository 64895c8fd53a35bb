package logic

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// fallbackPlayerNames is served when every configured source fails.
var fallbackPlayerNames = []string{
	"Novak Djokovic", "Carlos Alcaraz", "Jannik Sinner", "Daniil Medvedev", "Rafael Nadal",
	"Alexander Zverev", "Andrey Rublev", "Casper Ruud", "Stefanos Tsitsipas", "Taylor Fritz",
	"Roger Federer", "Andy Murray", "Stan Wawrinka", "Marin Cilic", "Dominic Thiem",
	"Iga Swiatek", "Aryna Sabalenka", "Coco Gauff", "Jessica Pegula", "Elena Rybakina",
}

// FallbackPlayerNames returns a sorted copy of the built-in name list.
func FallbackPlayerNames() []string {
	names := append([]string(nil), fallbackPlayerNames...)
	sort.Strings(names)
	return names
}

type playerService struct {
	cache   NamesCache
	sources []PlayerNameSource
	logger  *zap.SugaredLogger

	// in-process copy of the first resolved list, used when there is no cache
	mu     sync.RWMutex
	loaded []string
}

// NewPlayerService tries the cache, then each source in order, then the built-in list.
// cache may be nil, in which case the first list a source returns is kept in memory.
func NewPlayerService(cache NamesCache, logger *zap.Logger, sources ...PlayerNameSource) PlayerService {
	return &playerService{cache: cache, sources: sources, logger: logger.Sugar()}
}

func (s *playerService) GetPlayerNames(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		names, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warnw("Names cache read failed", "error", err)
		} else if len(names) > 0 {
			return names, nil
		}
	} else {
		s.mu.RLock()
		loaded := s.loaded
		s.mu.RUnlock()
		if loaded != nil {
			return loaded, nil
		}
	}

	for i, src := range s.sources {
		names, err := src.PlayerNames(ctx)
		if err != nil {
			s.logger.Warnw("Player name source failed", "source", i, "error", err)
			continue
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		if s.cache != nil {
			if err := s.cache.Set(ctx, names); err != nil {
				s.logger.Warnw("Names cache write failed", "error", err)
			}
		} else {
			s.mu.Lock()
			s.loaded = names
			s.mu.Unlock()
		}
		return names, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.logger.Infow("Serving built-in player names", "count", len(fallbackPlayerNames))
	return FallbackPlayerNames(), nil
}
