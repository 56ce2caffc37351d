package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/sosgame/internal/dependencies/clock"
	"github.com/mcoot/sosgame/internal/dependencies/random"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 10
)

// CreateOptions describes a new game
type CreateOptions struct {
	BoardSize      int
	Mode           string
	StartingPlayer model.Player                    // PlayerNone means red
	Seats          map[model.Player]model.SeatKind // Missing players are human
	BotStrategy    string                          // Empty means the default strategy
}

// MoveResult is the outcome of a successful placement
type MoveResult struct {
	Game        *model.Game
	Player      model.Player
	NewSegments []model.Segment
}

// Controller runs stored games through the engine
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// Serializes load-play-save so two moves on one game cannot interleave
	mu sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame validates the options, builds a fresh game and stores it
func (c *Controller) CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error) {
	engine, err := New(opts.BoardSize, opts.Mode, opts.StartingPlayer)
	if err != nil {
		return nil, err
	}

	seats := map[model.Player]model.SeatKind{
		model.PlayerRed:  model.SeatHuman,
		model.PlayerBlue: model.SeatHuman,
	}
	for p, kind := range opts.Seats {
		if !p.IsValid() {
			return nil, model.ErrInvalidPlayer
		}
		if kind != model.SeatHuman && kind != model.SeatComputer {
			return nil, model.ErrInvalidSeat
		}
		seats[p] = kind
	}

	strategy := opts.BotStrategy
	if strategy == "" {
		strategy = model.DefaultBotStrategy
	}
	if !isKnownStrategy(strategy) {
		return nil, model.ErrUnknownStrategy
	}

	now := c.clock.Now()
	g := engine.Snapshot()
	g.ID = model.GameID(c.random.String(GameIDLength, GameIDAlphabet))
	g.Seats = seats
	g.BotStrategy = strategy
	g.CreatedAt = now
	g.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.String("mode", string(g.Mode)),
		slog.Int("board_size", g.Board.Size),
		slog.String("starting_player", string(g.CurrentPlayer)),
		slog.String("red_seat", string(seats[model.PlayerRed])),
		slog.String("blue_seat", string(seats[model.PlayerBlue])),
	)

	return g, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// LoadEngine retrieves a game and rebuilds its engine
func (c *Controller) LoadEngine(ctx context.Context, id model.GameID) (*model.Game, *Engine, error) {
	g, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	engine, err := Restore(g)
	if err != nil {
		c.logger.Error("stored game is invalid",
			slog.String("game_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}
	return g, engine, nil
}

// PlaceLetter plays a letter for the current player. seat is who is asking:
// a human client may only move for a human seat and the bot service only for
// a computer seat.
func (c *Controller) PlaceLetter(ctx context.Context, id model.GameID, seat model.SeatKind, row, col int, letter string) (*MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, engine, err := c.LoadEngine(ctx, id)
	if err != nil {
		return nil, err
	}

	if engine.IsOver() {
		return nil, model.ErrGameOver
	}

	mover := engine.CurrentPlayer()
	if g.Seat(mover) != seat {
		return nil, model.ErrNotPlayerTurn
	}

	before := len(engine.CompletedLines())
	if err := engine.PlaceLetter(row, col, letter); err != nil {
		return nil, err
	}
	newSegments := engine.CompletedLines()[before:]

	updated := engine.Snapshot()
	updated.ID = g.ID
	updated.Seats = g.Seats
	updated.BotStrategy = g.BotStrategy
	updated.MoveCount = g.MoveCount + 1
	updated.CreatedAt = g.CreatedAt
	updated.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveGame(ctx, updated); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("letter placed",
		slog.String("game_id", string(g.ID)),
		slog.String("player", string(mover)),
		slog.Int("row", row),
		slog.Int("col", col),
		slog.Int("new_lines", len(newSegments)),
	)

	if updated.Over {
		c.logger.Info("game concluded",
			slog.String("game_id", string(g.ID)),
			slog.String("winner", string(updated.Winner)),
			slog.Int("red_score", engine.RedScore()),
			slog.Int("blue_score", engine.BlueScore()),
			slog.Int("moves", updated.MoveCount),
		)
	}

	return &MoveResult{
		Game:        updated,
		Player:      mover,
		NewSegments: newSegments,
	}, nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	exists, err := c.storage.GameExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrGameNotFound
	}

	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}

func isKnownStrategy(name string) bool {
	for _, s := range model.ValidBotStrategies() {
		if s == name {
			return true
		}
	}
	return false
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, opts CreateOptions) (*model.Game, error)
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	LoadEngine(ctx context.Context, id model.GameID) (*model.Game, *Engine, error)
	PlaceLetter(ctx context.Context, id model.GameID, seat model.SeatKind, row, col int, letter string) (*MoveResult, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

var _ ControllerInterface = (*Controller)(nil)
