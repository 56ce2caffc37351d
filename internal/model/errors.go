package model

import (
	"errors"
	"fmt"
)

// Rule errors. All of them are raised before any state is changed.
var (
	ErrInvalidBoardSize = errors.New("board size must be an integer between 3 and 8")
	ErrInvalidGameMode  = errors.New("game mode must be simple or general")
	ErrInvalidLetter    = errors.New("letter must be S or O")
	ErrOutOfBounds      = errors.New("position is outside the board")
	ErrInvalidMove      = errors.New("invalid move")
	ErrNoEmptyCell      = errors.New("no empty cell left")

	// Both wrap ErrInvalidMove
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameOver     = fmt.Errorf("%w: game over", ErrInvalidMove)
)

// Session errors
var (
	ErrInvalidPlayer   = errors.New("player must be red or blue")
	ErrInvalidSeat     = errors.New("seat must be human or computer")
	ErrNotPlayerTurn   = errors.New("not this seat's turn")
	ErrGameNotFound    = errors.New("game not found")
	ErrUnknownStrategy = errors.New("unknown bot strategy")
)
