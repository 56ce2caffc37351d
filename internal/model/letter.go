package model

import "strings"

// Letter is the content of a board cell
type Letter rune

const (
	Empty   Letter = 0
	LetterS Letter = 'S'
	LetterO Letter = 'O'
)

// Letters returns the two playable letters, S first
func Letters() []Letter {
	return []Letter{LetterS, LetterO}
}

// IsValid returns true for S and O
func (l Letter) IsValid() bool {
	return l == LetterS || l == LetterO
}

// String returns "S", "O" or "" for an empty cell
func (l Letter) String() string {
	if l == Empty {
		return ""
	}
	return string(rune(l))
}

// ParseLetter trims and uppercases s; only "S" and "O" are accepted
func ParseLetter(s string) (Letter, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "S":
		return LetterS, nil
	case "O":
		return LetterO, nil
	default:
		return Empty, ErrInvalidLetter
	}
}
