package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mcoot/sosgame/internal/model"
)

// RecordVersion is written into every encoded game
const RecordVersion = 1

// ErrCorruptRecord is returned when stored bytes do not decode to a valid game
var ErrCorruptRecord = errors.New("corrupt game record")

// record is the stored form of a game. The board is kept as one string per
// row with '.' for empty cells.
type record struct {
	Version       int               `json:"v"`
	ID            string            `json:"id"`
	Mode          string            `json:"mode"`
	Rows          []string          `json:"rows"`
	CurrentPlayer string            `json:"current_player"`
	Over          bool              `json:"over"`
	Winner        string            `json:"winner,omitempty"`
	Segments      []segmentRecord   `json:"segments"`
	Seats         map[string]string `json:"seats"`
	BotStrategy   string            `json:"bot_strategy"`
	MoveCount     int               `json:"move_count"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// segmentRecord packs a segment as [startRow, startCol, endRow, endCol]
type segmentRecord struct {
	Cells  [4]int `json:"c"`
	Player string `json:"p"`
}

// EncodeGame serializes a game for storage
func EncodeGame(g *model.Game) ([]byte, error) {
	if g.Board == nil {
		return nil, fmt.Errorf("%w: game %s has no board", ErrCorruptRecord, g.ID)
	}

	rec := record{
		Version:       RecordVersion,
		ID:            string(g.ID),
		Mode:          string(g.Mode),
		Rows:          g.Board.Rows(),
		CurrentPlayer: string(g.CurrentPlayer),
		Over:          g.Over,
		Winner:        string(g.Winner),
		Segments:      make([]segmentRecord, len(g.Segments)),
		Seats:         make(map[string]string, len(g.Seats)),
		BotStrategy:   g.BotStrategy,
		MoveCount:     g.MoveCount,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	for i, seg := range g.Segments {
		rec.Segments[i] = segmentRecord{
			Cells:  [4]int{seg.Start.Row, seg.Start.Col, seg.End.Row, seg.End.Col},
			Player: string(seg.Player),
		}
	}
	for p, kind := range g.Seats {
		rec.Seats[string(p)] = string(kind)
	}

	return json.Marshal(rec)
}

// DecodeGame parses and checks a stored game. Anything that could not have
// been written by EncodeGame is reported as ErrCorruptRecord.
func DecodeGame(data []byte) (*model.Game, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if rec.Version != RecordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptRecord, rec.Version)
	}

	board, err := boardFromRows(rec.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	mode, err := model.ParseMode(rec.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	current, err := model.ParsePlayer(rec.CurrentPlayer)
	if err != nil {
		return nil, fmt.Errorf("%w: current player: %v", ErrCorruptRecord, err)
	}

	g := &model.Game{
		ID:            model.GameID(rec.ID),
		Mode:          mode,
		Board:         board,
		CurrentPlayer: current,
		Over:          rec.Over,
		Winner:        model.Player(rec.Winner),
		Segments:      make([]model.Segment, len(rec.Segments)),
		Seats:         make(map[model.Player]model.SeatKind, len(rec.Seats)),
		BotStrategy:   rec.BotStrategy,
		MoveCount:     rec.MoveCount,
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
	if g.Winner != model.PlayerNone && !g.Winner.IsValid() {
		return nil, fmt.Errorf("%w: winner %q", ErrCorruptRecord, rec.Winner)
	}
	for i, seg := range rec.Segments {
		owner, err := model.ParsePlayer(seg.Player)
		if err != nil {
			return nil, fmt.Errorf("%w: segment %d: %v", ErrCorruptRecord, i, err)
		}
		g.Segments[i] = model.Segment{
			Start:  model.Position{Row: seg.Cells[0], Col: seg.Cells[1]},
			End:    model.Position{Row: seg.Cells[2], Col: seg.Cells[3]},
			Player: owner,
		}
	}
	for name, kindName := range rec.Seats {
		p, err := model.ParsePlayer(name)
		if err != nil {
			return nil, fmt.Errorf("%w: seat %q: %v", ErrCorruptRecord, name, err)
		}
		kind, err := model.ParseSeatKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("%w: seat %q: %v", ErrCorruptRecord, name, err)
		}
		g.Seats[p] = kind
	}

	return g, nil
}

func boardFromRows(rows []string) (*model.Board, error) {
	board, err := model.NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for row, line := range rows {
		if len(line) != board.Size {
			return nil, model.ErrInvalidBoardSize
		}
		for col := 0; col < len(line); col++ {
			if line[col] == '.' {
				continue
			}
			if err := board.Place(model.Position{Row: row, Col: col}, model.Letter(line[col])); err != nil {
				return nil, err
			}
		}
	}
	return board, nil
}
