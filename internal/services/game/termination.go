package game

import (
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/scoring"
)

// conclude applies the end-of-game rule for mode after a move by mover.
// scored is true if the move completed at least one line and full is true if
// the board has no empty cell left.
func conclude(mode model.Mode, scored, full bool, mover model.Player, red, blue int) (over bool, winner model.Player) {
	switch mode {
	case model.ModeSimple:
		if scored {
			return true, mover
		}
		if full {
			return true, model.PlayerNone
		}
	case model.ModeGeneral:
		if full {
			return true, scoring.Leader(red, blue)
		}
	}
	return false, model.PlayerNone
}
