package response

import (
	"time"

	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/bot"
)

// Position is a board coordinate
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// Line is a completed SOS
type Line struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Player string   `json:"player"`
}

// LinesFromModel converts segments, never returning nil
func LinesFromModel(segments []model.Segment) []Line {
	lines := make([]Line, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, Line{
			Start:  PositionFromModel(seg.Start),
			End:    PositionFromModel(seg.End),
			Player: string(seg.Player),
		})
	}
	return lines
}

// Scores holds each player's line count
type Scores struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

// Seats says who plays for each player
type Seats struct {
	Red  string `json:"red"`
	Blue string `json:"blue"`
}

// Game is the full state of a game
type Game struct {
	ID            string     `json:"id"`
	Mode          string     `json:"mode"`
	BoardSize     int        `json:"board_size"`
	Board         [][]string `json:"board"`
	CurrentPlayer string     `json:"current_player"`
	Over          bool       `json:"over"`
	Winner        *string    `json:"winner"`
	Scores        Scores     `json:"scores"`
	Lines         []Line     `json:"lines"`
	Seats         Seats      `json:"seats"`
	Strategy      string     `json:"strategy"`
	MoveCount     int        `json:"move_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// GameFromModel converts a model.Game. Empty cells are "".
func GameFromModel(g *model.Game) Game {
	board := make([][]string, g.Board.Size)
	for row := range board {
		board[row] = make([]string, g.Board.Size)
		for col := range board[row] {
			board[row][col] = g.Board.Cells[row][col].String()
		}
	}

	var winner *string
	if g.Over && g.Winner != model.PlayerNone {
		w := string(g.Winner)
		winner = &w
	}

	return Game{
		ID:            string(g.ID),
		Mode:          string(g.Mode),
		BoardSize:     g.Board.Size,
		Board:         board,
		CurrentPlayer: string(g.CurrentPlayer),
		Over:          g.Over,
		Winner:        winner,
		Scores: Scores{
			Red:  g.Score(model.PlayerRed),
			Blue: g.Score(model.PlayerBlue),
		},
		Lines: LinesFromModel(g.Segments),
		Seats: Seats{
			Red:  string(g.Seat(model.PlayerRed)),
			Blue: string(g.Seat(model.PlayerBlue)),
		},
		Strategy:  g.BotStrategy,
		MoveCount: g.MoveCount,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// Move is a letter at a position
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// MoveFromModel converts a model.Move
func MoveFromModel(m model.Move) Move {
	return Move{Row: m.Row, Col: m.Col, Letter: m.Letter.String()}
}

// ComputerMove is a move made by a computer seat
type ComputerMove struct {
	Player   string `json:"player"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Letter   string `json:"letter"`
	NewLines []Line `json:"new_lines"`
}

// ComputerMovesFromBot converts moves reported by the bot service
func ComputerMovesFromBot(moves []bot.BotMove) []ComputerMove {
	result := make([]ComputerMove, 0, len(moves))
	for _, m := range moves {
		result = append(result, ComputerMove{
			Player:   string(m.Player),
			Row:      m.Move.Row,
			Col:      m.Move.Col,
			Letter:   m.Move.Letter.String(),
			NewLines: LinesFromModel(m.NewSegments),
		})
	}
	return result
}

// MoveResponse is the response for placing a letter
type MoveResponse struct {
	Game          Game           `json:"game"`
	NewLines      []Line         `json:"new_lines"`
	ComputerMoves []ComputerMove `json:"computer_moves"`
}

// ComputerMovesResponse is the response for advancing computer seats
type ComputerMovesResponse struct {
	Game          Game           `json:"game"`
	ComputerMoves []ComputerMove `json:"computer_moves"`
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}
