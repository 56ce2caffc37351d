package memory

import (
	"context"
	"sync"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/storage"
)

// Storage keeps encoded games in a map. It stores the same records as the
// Redis backend, so a game that survives one survives the other.
type Storage struct {
	mu      sync.RWMutex
	records map[model.GameID][]byte
}

// New creates an empty in-memory store
func New() *Storage {
	return &Storage{
		records: make(map[model.GameID][]byte),
	}
}

var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := storage.EncodeGame(game)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[game.ID] = data
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	data, ok := s.records[id]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrGameNotFound
	}
	return storage.DecodeGame(data)
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *Storage) GameExists(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.records[id]
	return ok, nil
}

// Count returns the number of stored games
func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
