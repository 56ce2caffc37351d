package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/sosgame/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameState:
		o.printGameState(v)
	case MoveResult:
		o.printMoveResult(v)
	case ComputerMovesResult:
		o.printComputerMovesResult(v)
	case Move:
		fmt.Fprintf(o.w, "Hint: %s at row %d, col %d\n", v.Letter, v.Row, v.Col)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Position response type (matches API)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Line response type
type Line struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Player string   `json:"player"`
}

// Scores response type
type Scores struct {
	Red  int `json:"red"`
	Blue int `json:"blue"`
}

// Seats response type
type Seats struct {
	Red  string `json:"red"`
	Blue string `json:"blue"`
}

// GameState response type
type GameState struct {
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
}

// Move response type
type Move struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter"`
}

// ComputerMove response type
type ComputerMove struct {
	Player   string `json:"player"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Letter   string `json:"letter"`
	NewLines []Line `json:"new_lines"`
}

// MoveResult response type
type MoveResult struct {
	Game          GameState      `json:"game"`
	NewLines      []Line         `json:"new_lines"`
	ComputerMoves []ComputerMove `json:"computer_moves"`
}

// ComputerMovesResult response type
type ComputerMovesResult struct {
	Game          GameState      `json:"game"`
	ComputerMoves []ComputerMove `json:"computer_moves"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGameState(g GameState) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Mode: %s\n", g.Mode)
	fmt.Fprintf(o.w, "Seats: red=%s blue=%s\n", g.Seats.Red, g.Seats.Blue)
	if g.Seats.Red == string(model.SeatComputer) || g.Seats.Blue == string(model.SeatComputer) {
		fmt.Fprintf(o.w, "Computer: %s\n", model.BotStrategyDisplayName(g.Strategy))
	}
	fmt.Fprintf(o.w, "Scores: red=%d blue=%d\n", g.Scores.Red, g.Scores.Blue)

	fmt.Fprintln(o.w)
	printBoard(o.w, g.Board)
	fmt.Fprintln(o.w)

	switch {
	case !g.Over:
		fmt.Fprintf(o.w, "To move: %s\n", g.CurrentPlayer)
	case g.Winner != nil:
		fmt.Fprintf(o.w, "Winner: %s\n", *g.Winner)
	default:
		fmt.Fprintln(o.w, "Result: draw")
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	if n := len(m.NewLines); n > 0 {
		fmt.Fprintf(o.w, "Completed %s\n", plural(n, "SOS", "SOSes"))
	}
	o.printComputerMoves(m.ComputerMoves)
	fmt.Fprintln(o.w)
	o.printGameState(m.Game)
}

func (o *Output) printComputerMovesResult(r ComputerMovesResult) {
	if len(r.ComputerMoves) == 0 {
		fmt.Fprintln(o.w, "No computer turns were due")
	}
	o.printComputerMoves(r.ComputerMoves)
	fmt.Fprintln(o.w)
	o.printGameState(r.Game)
}

func (o *Output) printComputerMoves(moves []ComputerMove) {
	for _, m := range moves {
		fmt.Fprintf(o.w, "%s (computer) plays %s at row %d, col %d", m.Player, m.Letter, m.Row, m.Col)
		if n := len(m.NewLines); n > 0 {
			fmt.Fprintf(o.w, " completing %s", plural(n, "SOS", "SOSes"))
		}
		fmt.Fprintln(o.w)
	}
}

// printBoard renders cells with row and column indices; "" is an empty cell
func printBoard(w io.Writer, cells [][]string) {
	size := len(cells)
	if size == 0 {
		return
	}

	border := "   +" + strings.Repeat("---", size) + "+"

	fmt.Fprint(w, "    ")
	for col := 0; col < size; col++ {
		fmt.Fprintf(w, " %d ", col)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, border)

	for row := 0; row < size; row++ {
		fmt.Fprintf(w, " %d |", row)
		for col := 0; col < size; col++ {
			cell := cells[row][col]
			if cell == "" {
				cell = "."
			}
			fmt.Fprintf(w, " %s ", cell)
		}
		fmt.Fprintln(w, "|")
	}

	fmt.Fprintln(w, border)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
