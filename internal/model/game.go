package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Game is the stored form of an SOS game and the seats driving it
type Game struct {
	ID            GameID
	Mode          Mode
	Board         *Board
	CurrentPlayer Player
	Over          bool
	Winner        Player    // PlayerNone while in progress or on a draw
	Segments      []Segment // Append-only, in completion order

	Seats       map[Player]SeatKind
	BotStrategy string
	MoveCount   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Seat returns who plays for p, defaulting to human
func (g *Game) Seat(p Player) SeatKind {
	if kind, ok := g.Seats[p]; ok {
		return kind
	}
	return SeatHuman
}

// ComputerToMove returns true if the game is live and a computer holds the current seat
func (g *Game) ComputerToMove() bool {
	return !g.Over && g.Seat(g.CurrentPlayer) == SeatComputer
}

// Score counts the segments owned by p
func (g *Game) Score(p Player) int {
	n := 0
	for _, seg := range g.Segments {
		if seg.Player == p {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	if g.Board != nil {
		c.Board = g.Board.Clone()
	}
	c.Segments = append([]Segment(nil), g.Segments...)
	if g.Seats != nil {
		c.Seats = make(map[Player]SeatKind, len(g.Seats))
		for p, kind := range g.Seats {
			c.Seats[p] = kind
		}
	}
	return &c
}
