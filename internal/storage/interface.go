package storage

import (
	"context"

	"github.com/mcoot/sosgame/internal/model"
)

// Storage keeps live games between moves. Implementations hand out copies,
// so a game returned by GetGame can be changed freely before SaveGame.
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	// GetGame returns model.ErrGameNotFound for unknown or expired games
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	GameExists(ctx context.Context, id model.GameID) (bool, error)
}
