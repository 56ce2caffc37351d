package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/testutil"
)

func TestParsePlayer(t *testing.T) {
	tests := []struct {
		input string
		want  model.Player
		err   error
	}{
		{"red", model.PlayerRed, nil},
		{" Blue ", model.PlayerBlue, nil},
		{"RED", model.PlayerRed, nil},
		{"", model.PlayerNone, model.ErrInvalidPlayer},
		{"green", model.PlayerNone, model.ErrInvalidPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParsePlayer(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, model.PlayerBlue, model.PlayerRed.Opponent())
	assert.Equal(t, model.PlayerRed, model.PlayerBlue.Opponent())
	assert.Equal(t, model.PlayerNone, model.PlayerNone.Opponent())
}

func TestParseMode(t *testing.T) {
	m, err := model.ParseMode("  GENERAL ")
	require.NoError(t, err)
	assert.Equal(t, model.ModeGeneral, m)

	m, err = model.ParseMode("Simple")
	require.NoError(t, err)
	assert.Equal(t, model.ModeSimple, m)

	_, err = model.ParseMode("")
	assert.ErrorIs(t, err, model.ErrInvalidGameMode)
	_, err = model.ParseMode("blitz")
	assert.ErrorIs(t, err, model.ErrInvalidGameMode)
}

func TestParseLetter(t *testing.T) {
	l, err := model.ParseLetter(" s")
	require.NoError(t, err)
	assert.Equal(t, model.LetterS, l)

	l, err = model.ParseLetter("o")
	require.NoError(t, err)
	assert.Equal(t, model.LetterO, l)

	for _, bad := range []string{"", "X", "SO", "0"} {
		_, err := model.ParseLetter(bad)
		assert.ErrorIs(t, err, model.ErrInvalidLetter, "input %q", bad)
	}

	assert.Equal(t, "S", model.LetterS.String())
	assert.Equal(t, "", model.Empty.String())
}

func TestParseSeatKind(t *testing.T) {
	kind, err := model.ParseSeatKind("")
	require.NoError(t, err)
	assert.Equal(t, model.SeatHuman, kind)

	kind, err = model.ParseSeatKind("Computer")
	require.NoError(t, err)
	assert.Equal(t, model.SeatComputer, kind)

	_, err = model.ParseSeatKind("robot")
	assert.ErrorIs(t, err, model.ErrInvalidSeat)
}

func TestErrorsWrapInvalidMove(t *testing.T) {
	assert.ErrorIs(t, model.ErrCellOccupied, model.ErrInvalidMove)
	assert.ErrorIs(t, model.ErrGameOver, model.ErrInvalidMove)
	assert.NotErrorIs(t, model.ErrOutOfBounds, model.ErrInvalidMove)
}

func TestGameSeatsDefaultToHuman(t *testing.T) {
	g := &model.Game{CurrentPlayer: model.PlayerRed}

	assert.Equal(t, model.SeatHuman, g.Seat(model.PlayerRed))
	assert.False(t, g.ComputerToMove())

	g.Seats = map[model.Player]model.SeatKind{model.PlayerRed: model.SeatComputer}
	assert.True(t, g.ComputerToMove())

	g.Over = true
	assert.False(t, g.ComputerToMove())
}

func TestGameScoreAndClone(t *testing.T) {
	g := &model.Game{
		ID:            "G1",
		Mode:          model.ModeGeneral,
		Board:         testutil.BoardFromRows("SOS", "...", "..."),
		CurrentPlayer: model.PlayerBlue,
		Segments: []model.Segment{
			{Start: model.Position{Row: 0, Col: 0}, End: model.Position{Row: 0, Col: 2}, Player: model.PlayerRed},
		},
		Seats:     map[model.Player]model.SeatKind{model.PlayerBlue: model.SeatComputer},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 1, g.Score(model.PlayerRed))
	assert.Equal(t, 0, g.Score(model.PlayerBlue))

	c := g.Clone()
	require.NoError(t, c.Board.Place(model.Position{Row: 2, Col: 2}, model.LetterO))
	c.Segments = append(c.Segments, model.Segment{Player: model.PlayerBlue})
	c.Seats[model.PlayerRed] = model.SeatComputer

	assert.Equal(t, model.Empty, g.Board.Get(model.Position{Row: 2, Col: 2}))
	assert.Len(t, g.Segments, 1)
	assert.Equal(t, model.SeatHuman, g.Seat(model.PlayerRed))
	assert.Equal(t, g.CreatedAt, c.CreatedAt)
}

func TestBotStrategies(t *testing.T) {
	assert.Equal(t, []string{model.BotStrategyEasy}, model.ValidBotStrategies())
	assert.Equal(t, "Easy", model.BotStrategyDisplayName(model.BotStrategyEasy))
	assert.Equal(t, "custom", model.BotStrategyDisplayName("custom"))
}
