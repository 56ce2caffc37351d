package game

import (
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/scoring"
)

// Snapshot copies the engine state into a game record. Session fields such as
// the ID, seats and timestamps are left for the caller.
func (e *Engine) Snapshot() *model.Game {
	return &model.Game{
		Mode:          e.mode,
		Board:         e.board.Clone(),
		CurrentPlayer: e.current,
		Over:          e.over,
		Winner:        e.winner,
		Segments:      e.CompletedLines(),
	}
}

// Restore rebuilds an engine from a stored record. Scores are recounted from
// the recorded lines.
func Restore(g *model.Game) (*Engine, error) {
	if g.Board == nil {
		return nil, model.ErrInvalidBoardSize
	}
	if err := g.Board.Validate(); err != nil {
		return nil, err
	}

	m, err := model.ParseMode(string(g.Mode))
	if err != nil {
		return nil, err
	}

	if !g.CurrentPlayer.IsValid() {
		return nil, model.ErrInvalidPlayer
	}
	if g.Winner != model.PlayerNone && !g.Winner.IsValid() {
		return nil, model.ErrInvalidPlayer
	}

	return &Engine{
		board:    g.Board.Clone(),
		mode:     m,
		current:  g.CurrentPlayer,
		over:     g.Over,
		winner:   g.Winner,
		segments: append([]model.Segment(nil), g.Segments...),
		scores:   scoring.Tally(g.Segments),
	}, nil
}
