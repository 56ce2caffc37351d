package model

import "strings"

// Mode selects the scoring and termination rules of a game
type Mode string

const (
	ModeSimple  Mode = "simple"  // First completed SOS wins
	ModeGeneral Mode = "general" // Most SOS lines on a full board wins
)

// DefaultMode is used by front ends that do not ask for a mode
const DefaultMode = ModeSimple

// Modes returns all supported modes
func Modes() []Mode {
	return []Mode{ModeSimple, ModeGeneral}
}

// ParseMode trims and lowercases s before matching it against the known modes
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeSimple, ModeGeneral:
		return m, nil
	default:
		return "", ErrInvalidGameMode
	}
}
