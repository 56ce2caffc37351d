package bot

import (
	"context"
	"log/slog"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/game"
)

// MaxBotIterations bounds PlayComputerTurns; no game has more moves than this
const MaxBotIterations = model.MaxBoardSize * model.MaxBoardSize

// BotMove is a single move made by a computer seat
type BotMove struct {
	Player      model.Player
	Move        model.Move
	NewSegments []model.Segment
}

// Service plays computer seats and offers hints
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// PlayComputerTurns keeps moving for computer seats until the game ends or a
// human is to move. It returns every move made so callers can report them.
func (s *Service) PlayComputerTurns(ctx context.Context, gameID model.GameID) ([]BotMove, error) {
	var moves []BotMove

	for range MaxBotIterations {
		g, engine, err := s.gameController.LoadEngine(ctx, gameID)
		if err != nil {
			return moves, err
		}

		if !g.ComputerToMove() {
			break
		}

		strategy, err := s.strategyFor(g)
		if err != nil {
			return moves, err
		}

		move, err := strategy.ChooseMove(engine)
		if err != nil {
			return moves, err
		}

		result, err := s.gameController.PlaceLetter(ctx, gameID, model.SeatComputer, move.Row, move.Col, move.Letter.String())
		if err != nil {
			return moves, err
		}

		s.logger.Debug("computer moved",
			slog.String("game_id", string(gameID)),
			slog.String("player", string(result.Player)),
			slog.Int("row", move.Row),
			slog.Int("col", move.Col),
			slog.String("letter", move.Letter.String()),
		)

		moves = append(moves, BotMove{
			Player:      result.Player,
			Move:        move,
			NewSegments: result.NewSegments,
		})
	}

	return moves, nil
}

// Suggest returns the move the game's strategy would make for the current
// player. The game is not changed.
func (s *Service) Suggest(ctx context.Context, gameID model.GameID) (model.Move, error) {
	g, engine, err := s.gameController.LoadEngine(ctx, gameID)
	if err != nil {
		return model.Move{}, err
	}

	if engine.IsOver() {
		return model.Move{}, model.ErrGameOver
	}

	strategy, err := s.strategyFor(g)
	if err != nil {
		return model.Move{}, err
	}

	return strategy.ChooseMove(engine)
}

// strategyFor returns the game's strategy, falling back to the default one
func (s *Service) strategyFor(g *model.Game) (Strategy, error) {
	if st, ok := s.strategies[g.BotStrategy]; ok {
		return st, nil
	}
	if st, ok := s.strategies[model.DefaultBotStrategy]; ok {
		return st, nil
	}
	return nil, model.ErrUnknownStrategy
}
