package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/sosgame/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidBoardSize = "INVALID_BOARD_SIZE"
	CodeInvalidGameMode  = "INVALID_GAME_MODE"
	CodeInvalidLetter    = "INVALID_LETTER"
	CodeInvalidPlayer    = "INVALID_PLAYER"
	CodeInvalidSeat      = "INVALID_SEAT"
	CodeUnknownStrategy  = "UNKNOWN_STRATEGY"
	CodeOutOfBounds      = "OUT_OF_BOUNDS"
	CodeCellOccupied     = "CELL_OCCUPIED"
	CodeGameOver         = "GAME_OVER"
	CodeInvalidMove      = "INVALID_MOVE"
	CodeNotYourTurn      = "NOT_YOUR_TURN"
	CodeNoEmptyCell      = "NO_EMPTY_CELL"
	CodeGameNotFound     = "GAME_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Specific move errors wrap ErrInvalidMove, so they are matched first
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrInvalidBoardSize):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoardSize, "Board size must be an integer from 3 to 8"}}
	case errors.Is(err, model.ErrInvalidGameMode):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGameMode, "Mode must be simple or general"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidLetter, "Letter must be S or O"}}
	case errors.Is(err, model.ErrInvalidPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, "Player must be red or blue"}}
	case errors.Is(err, model.ErrInvalidSeat):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSeat, "Seat must be human or computer"}}
	case errors.Is(err, model.ErrUnknownStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownStrategy, "Unknown computer strategy"}}
	case errors.Is(err, model.ErrOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeOutOfBounds, "Position is outside the board"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCellOccupied, "Cell is already occupied"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusConflict, APIError{CodeInvalidMove, "Invalid move"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "The current player is not yours to move"}}
	case errors.Is(err, model.ErrNoEmptyCell):
		return &httpError{http.StatusConflict, APIError{CodeNoEmptyCell, "No empty cell left"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
