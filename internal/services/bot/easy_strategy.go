package bot

import (
	"github.com/mcoot/sosgame/internal/dependencies/random"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/scoring"
)

// EasyStrategy takes a scoring move when one exists and otherwise plays a
// random letter in a random empty cell
type EasyStrategy struct {
	random random.Random
}

// NewEasyStrategy creates a new EasyStrategy
func NewEasyStrategy(rnd random.Random) *EasyStrategy {
	return &EasyStrategy{random: rnd}
}

// ChooseMove picks uniformly among scoring moves for the current player, or
// uniformly among empty cells and letters when nothing scores.
// Candidates are enumerated row-major with S before O.
func (s *EasyStrategy) ChooseMove(view GameView) (model.Move, error) {
	board := view.Board()
	mover := view.CurrentPlayer()

	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return model.Move{}, model.ErrNoEmptyCell
	}

	var scoringMoves []model.Move
	for _, pos := range empty {
		for _, letter := range model.Letters() {
			if len(scoring.FindSegments(board, pos, letter, mover)) > 0 {
				scoringMoves = append(scoringMoves, model.Move{Position: pos, Letter: letter})
			}
		}
	}

	if len(scoringMoves) > 0 {
		return scoringMoves[s.random.Intn(len(scoringMoves))], nil
	}

	letters := model.Letters()
	pos := empty[s.random.Intn(len(empty))]
	letter := letters[s.random.Intn(len(letters))]
	return model.Move{Position: pos, Letter: letter}, nil
}
