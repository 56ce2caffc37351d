package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func newGame(id model.GameID) *model.Game {
	return &model.Game{
		ID:            id,
		Mode:          model.ModeGeneral,
		Board:         testutil.BoardFromRows("SOS", "...", "..."),
		CurrentPlayer: model.PlayerBlue,
		Segments: []model.Segment{
			{Start: model.Position{Row: 0, Col: 0}, End: model.Position{Row: 0, Col: 2}, Player: model.PlayerRed},
		},
		Seats:       map[model.Player]model.SeatKind{model.PlayerBlue: model.SeatComputer},
		BotStrategy: model.BotStrategyEasy,
		MoveCount:   3,
		CreatedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newGame("game-1")

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game, retrieved)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSavedGameIsIsolatedFromCaller() {
	game := newGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	// Mutating the caller's copy after saving does not leak into storage
	game.Board.Cells[2][2] = model.LetterO
	game.Seats[model.PlayerRed] = model.SeatComputer

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.Empty, retrieved.Board.Cells[2][2])
	s.Equal(model.SeatHuman, retrieved.Seat(model.PlayerRed))

	// Mutating a retrieved copy does not leak either
	retrieved.Segments = nil
	again, _ := s.storage.GetGame(s.ctx, "game-1")
	s.Len(again.Segments, 1)
}

func (s *StorageSuite) TestSaveOverwrites() {
	game := newGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	game.Over = true
	game.Winner = model.PlayerRed
	_ = s.storage.SaveGame(s.ctx, game)

	retrieved, _ := s.storage.GetGame(s.ctx, "game-1")
	s.True(retrieved.Over)
	s.Equal(model.PlayerRed, retrieved.Winner)
	s.Equal(1, s.storage.Count())
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, newGame("game-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteMissingGameIsNoop() {
	s.NoError(s.storage.DeleteGame(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestGameExists() {
	exists, err := s.storage.GameExists(s.ctx, "game-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveGame(s.ctx, newGame("game-1"))

	exists, err = s.storage.GameExists(s.ctx, "game-1")
	s.Require().NoError(err)
	s.True(exists)
}
