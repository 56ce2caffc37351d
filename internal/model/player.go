package model

import "strings"

// Player identifies one of the two sides of an SOS game
type Player string

const (
	PlayerRed  Player = "red"
	PlayerBlue Player = "blue"

	// PlayerNone marks the absence of a winner (game in progress or drawn)
	PlayerNone Player = ""
)

// DefaultStartingPlayer moves first when no starting player is given
const DefaultStartingPlayer = PlayerRed

// Players returns both players in turn order starting from red
func Players() []Player {
	return []Player{PlayerRed, PlayerBlue}
}

// Opponent returns the other player
func (p Player) Opponent() Player {
	switch p {
	case PlayerRed:
		return PlayerBlue
	case PlayerBlue:
		return PlayerRed
	default:
		return PlayerNone
	}
}

// IsValid returns true for red and blue
func (p Player) IsValid() bool {
	return p == PlayerRed || p == PlayerBlue
}

// ParsePlayer normalizes case and whitespace before matching a player name
func ParsePlayer(s string) (Player, error) {
	p := Player(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return PlayerNone, ErrInvalidPlayer
	}
	return p, nil
}

// SeatKind says who makes the moves for a player
type SeatKind string

const (
	SeatHuman    SeatKind = "human"
	SeatComputer SeatKind = "computer"
)

// ParseSeatKind normalizes a seat name; empty input means human
func ParseSeatKind(s string) (SeatKind, error) {
	switch SeatKind(strings.ToLower(strings.TrimSpace(s))) {
	case "", SeatHuman:
		return SeatHuman, nil
	case SeatComputer:
		return SeatComputer, nil
	default:
		return "", ErrInvalidSeat
	}
}
