package factory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/game"
	redisstorage "github.com/mcoot/sosgame/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: human against computer in simple mode until someone wins or it draws
func (s *IntegrationSuite) TestHumanAgainstComputer() {
	s.app.QueueGameIDs("GAME01")

	g, err := s.app.GameController.CreateGame(s.ctx, game.CreateOptions{
		BoardSize: 3,
		Mode:      "simple",
		Seats:     map[model.Player]model.SeatKind{model.PlayerBlue: model.SeatComputer},
	})
	s.Require().NoError(err)
	s.Equal(model.GameID("GAME01"), g.ID)

	// Red plays S in the corner; blue (all-zero random) answers in the first empty cell
	_, err = s.app.GameController.PlaceLetter(s.ctx, g.ID, model.SeatHuman, 0, 0, "S")
	s.Require().NoError(err)
	moves, err := s.app.BotService.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Equal(model.Move{Position: model.Position{Row: 0, Col: 1}, Letter: model.LetterS}, moves[0].Move)

	// Red cannot move for the computer and the computer cannot move for red
	_, err = s.app.GameController.PlaceLetter(s.ctx, g.ID, model.SeatComputer, 2, 2, "S")
	s.ErrorIs(err, model.ErrNotPlayerTurn)

	// Red sets up S-O along the diagonal with O at (1,1); blue completes it
	_, err = s.app.GameController.PlaceLetter(s.ctx, g.ID, model.SeatHuman, 1, 1, "O")
	s.Require().NoError(err)
	moves, err = s.app.BotService.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Require().Len(moves, 1)
	s.Len(moves[0].NewSegments, 1)

	final, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.True(final.Over)
	s.Equal(model.PlayerBlue, final.Winner)
	s.Equal(model.PlayerBlue, final.CurrentPlayer)
	s.Equal(4, final.MoveCount)

	_, err = s.app.GameController.PlaceLetter(s.ctx, g.ID, model.SeatHuman, 2, 0, "S")
	s.ErrorIs(err, model.ErrGameOver)
}

// Test: two computers fill the board in general mode
func (s *IntegrationSuite) TestComputerAgainstComputer() {
	s.app.QueueGameIDs("GAME02")

	g, err := s.app.GameController.CreateGame(s.ctx, game.CreateOptions{
		BoardSize: 5,
		Mode:      "general",
		Seats: map[model.Player]model.SeatKind{
			model.PlayerRed:  model.SeatComputer,
			model.PlayerBlue: model.SeatComputer,
		},
	})
	s.Require().NoError(err)

	moves, err := s.app.BotService.PlayComputerTurns(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Len(moves, 25)

	final, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.True(final.Over)
	s.True(final.Board.IsFull())

	red, blue := final.Score(model.PlayerRed), final.Score(model.PlayerBlue)
	s.Equal(len(final.Segments), red+blue)
	switch {
	case red > blue:
		s.Equal(model.PlayerRed, final.Winner)
	case blue > red:
		s.Equal(model.PlayerBlue, final.Winner)
	default:
		s.Equal(model.PlayerNone, final.Winner)
	}
}

// Test: hints do not change the game
func (s *IntegrationSuite) TestHintIsAdvisory() {
	s.app.QueueGameIDs("GAME03")
	g, err := s.app.GameController.CreateGame(s.ctx, game.CreateOptions{BoardSize: 4, Mode: "general"})
	s.Require().NoError(err)

	move, err := s.app.BotService.Suggest(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 0, Col: 0}, move.Position)

	after, err := s.app.GameController.GetGame(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(16, after.Board.EmptyCount())
	s.Equal(0, after.MoveCount)
}

// Factory configuration

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	g, err := app.GameController.CreateGame(context.Background(), game.CreateOptions{BoardSize: 3, Mode: "simple"})
	if err != nil {
		t.Fatal(err)
	}
	if len(g.ID) != game.GameIDLength {
		t.Errorf("expected ID of length %d, got %q", game.GameIDLength, g.ID)
	}
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	if _, err := New(Config{StorageType: "postgres"}); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
	if _, err := New(Config{StorageType: StorageTypeRedis}); err == nil {
		t.Fatal("expected error without redis config")
	}
}

func TestNewSeededIsReproducible(t *testing.T) {
	seed := uint64(7)
	play := func() []string {
		app, err := New(Config{RandomSeed: &seed})
		if err != nil {
			t.Fatal(err)
		}
		ctx := context.Background()
		g, err := app.GameController.CreateGame(ctx, game.CreateOptions{
			BoardSize: 4,
			Mode:      "general",
			Seats: map[model.Player]model.SeatKind{
				model.PlayerRed:  model.SeatComputer,
				model.PlayerBlue: model.SeatComputer,
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := app.BotService.PlayComputerTurns(ctx, g.ID); err != nil {
			t.Fatal(err)
		}
		final, err := app.GameController.GetGame(ctx, g.ID)
		if err != nil {
			t.Fatal(err)
		}
		return append([]string{string(final.ID)}, final.Board.Rows()...)
	}

	first, second := play(), play()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded runs differ: %v vs %v", first, second)
		}
	}
}

func TestNewWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	ctx := context.Background()
	g, err := app.GameController.CreateGame(ctx, game.CreateOptions{BoardSize: 3, Mode: "simple"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := app.GameController.PlaceLetter(ctx, g.ID, model.SeatHuman, 1, 1, "O"); err != nil {
		t.Fatal(err)
	}

	stored, err := app.GameController.GetGame(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := stored.Board.Rows()[1]; got != ".O." {
		t.Errorf("expected middle row .O., got %q", got)
	}
	if !mr.Exists("sosgame:game:" + string(g.ID)) {
		t.Error("expected game key in redis")
	}
}
