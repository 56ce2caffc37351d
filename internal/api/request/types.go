package request

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/mcoot/sosgame/internal/model"
)

// CreateGameRequest is the request body for creating a game.
// BoardSize is kept raw so a string or fractional value can be rejected.
type CreateGameRequest struct {
	BoardSize      json.RawMessage `json:"board_size"`
	Mode           string          `json:"mode,omitempty"`
	StartingPlayer string          `json:"starting_player,omitempty"`
	Red            string          `json:"red,omitempty"`
	Blue           string          `json:"blue,omitempty"`
	Strategy       string          `json:"strategy,omitempty"`
}

// ParseBoardSize returns the board size if it is a JSON integer in range
func (r CreateGameRequest) ParseBoardSize() (int, error) {
	raw := bytes.TrimSpace(r.BoardSize)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, model.ErrInvalidBoardSize
	}

	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, model.ErrInvalidBoardSize
	}
	if err := model.ValidateBoardSize(n); err != nil {
		return 0, err
	}
	return n, nil
}

// Seats returns the seat for each player named in the request
func (r CreateGameRequest) Seats() (map[model.Player]model.SeatKind, error) {
	red, err := model.ParseSeatKind(r.Red)
	if err != nil {
		return nil, err
	}
	blue, err := model.ParseSeatKind(r.Blue)
	if err != nil {
		return nil, err
	}
	return map[model.Player]model.SeatKind{
		model.PlayerRed:  red,
		model.PlayerBlue: blue,
	}, nil
}

// PlaceRequest is the request body for placing a letter
type PlaceRequest struct {
	Row    *int   `json:"row"`
	Col    *int   `json:"col"`
	Letter string `json:"letter"`
}
