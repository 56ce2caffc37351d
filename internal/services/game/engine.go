package game

import (
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/scoring"
)

// Engine holds the state of one SOS game and enforces its rules.
//
// PlaceLetter is the only mutating operation. An Engine is not safe for
// concurrent use; callers that share one must synchronize externally.
type Engine struct {
	board    *model.Board
	mode     model.Mode
	current  model.Player
	over     bool
	winner   model.Player
	segments []model.Segment
	scores   map[model.Player]int
}

// New creates a game on an empty board. size must be in [3,8], mode is matched
// case- and whitespace-insensitively, and an empty starting player means red.
func New(size int, mode string, starting model.Player) (*Engine, error) {
	board, err := model.NewBoard(size)
	if err != nil {
		return nil, err
	}

	m, err := model.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	if starting == model.PlayerNone {
		starting = model.DefaultStartingPlayer
	}
	if !starting.IsValid() {
		return nil, model.ErrInvalidPlayer
	}

	return &Engine{
		board:   board,
		mode:    m,
		current: starting,
		winner:  model.PlayerNone,
		scores: map[model.Player]int{
			model.PlayerRed:  0,
			model.PlayerBlue: 0,
		},
	}, nil
}

// PlaceLetter places letter at (row, col) for the current player, records any
// SOS lines it completes, applies the mode's end rule and passes the turn.
// On error nothing about the game has changed.
func (e *Engine) PlaceLetter(row, col int, letter string) error {
	if e.over {
		return model.ErrGameOver
	}

	l, err := model.ParseLetter(letter)
	if err != nil {
		return err
	}

	pos := model.Position{Row: row, Col: col}
	if err := e.board.Place(pos, l); err != nil {
		return err
	}

	mover := e.current
	e.afterMove(pos, l, mover)

	if !e.over {
		e.current = mover.Opponent()
	}
	return nil
}

// Play applies a move chosen by a strategy
func (e *Engine) Play(move model.Move) error {
	return e.PlaceLetter(move.Row, move.Col, move.Letter.String())
}

// afterMove records new lines for mover and decides whether the game is over
func (e *Engine) afterMove(pos model.Position, letter model.Letter, mover model.Player) {
	found := scoring.FindSegments(e.board, pos, letter, mover)
	e.segments = append(e.segments, found...)
	e.scores[mover] += len(found)

	e.over, e.winner = conclude(e.mode, len(found) > 0, e.board.IsFull(), mover, e.scores[model.PlayerRed], e.scores[model.PlayerBlue])
}

// CurrentPlayer returns the player to move, or the last mover once the game is over
func (e *Engine) CurrentPlayer() model.Player {
	return e.current
}

// IsOver reports whether the game has ended
func (e *Engine) IsOver() bool {
	return e.over
}

// Winner returns the winning player, or PlayerNone while playing or on a draw
func (e *Engine) Winner() model.Player {
	return e.winner
}

// Mode returns the scoring mode
func (e *Engine) Mode() model.Mode {
	return e.mode
}

// Size returns the board dimension
func (e *Engine) Size() int {
	return e.board.Size
}

// Score returns the number of lines owned by p
func (e *Engine) Score(p model.Player) int {
	return e.scores[p]
}

// RedScore returns red's line count
func (e *Engine) RedScore() int {
	return e.scores[model.PlayerRed]
}

// BlueScore returns blue's line count
func (e *Engine) BlueScore() int {
	return e.scores[model.PlayerBlue]
}

// CompletedLines returns the recorded lines in completion order
func (e *Engine) CompletedLines() []model.Segment {
	return append([]model.Segment(nil), e.segments...)
}

// Board returns a copy of the board
func (e *Engine) Board() *model.Board {
	return e.board.Clone()
}

// Cell returns the letter at (row, col)
func (e *Engine) Cell(row, col int) (model.Letter, error) {
	return e.board.Cell(model.Position{Row: row, Col: col})
}

// IsEmpty reports whether (row, col) is unoccupied
func (e *Engine) IsEmpty(row, col int) (bool, error) {
	return e.board.IsEmpty(model.Position{Row: row, Col: col})
}

// IsFull reports whether every cell is occupied
func (e *Engine) IsFull() bool {
	return e.board.IsFull()
}
