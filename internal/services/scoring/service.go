package scoring

import "github.com/mcoot/sosgame/internal/model"

// Directions are the four axes three colinear cells can lie on
var Directions = []model.Position{
	{Row: 0, Col: 1},  // horizontal
	{Row: 1, Col: 0},  // vertical
	{Row: 1, Col: 1},  // diagonal
	{Row: 1, Col: -1}, // anti-diagonal
}

// FindSegments returns every SOS line completed by placing letter at pos for mover.
//
// Only lines through pos can be new, so only its neighbours along each axis are
// read. The cell at pos itself is never read, which lets callers evaluate a
// hypothetical move on a board where pos is still empty.
func FindSegments(board *model.Board, pos model.Position, letter model.Letter, mover model.Player) []model.Segment {
	var found []model.Segment

	switch letter {
	case model.LetterO:
		// O can only be the middle of a line
		for _, d := range Directions {
			a, b := pos.Sub(d), pos.Add(d)
			if isS(board, a) && isS(board, b) {
				found = append(found, model.Segment{Start: a, End: b, Player: mover})
			}
		}
	case model.LetterS:
		for _, d := range Directions {
			// pos starts the line
			mid, far := pos.Add(d), pos.Add(d).Add(d)
			if isO(board, mid) && isS(board, far) {
				found = append(found, model.Segment{Start: pos, End: far, Player: mover})
			}
			// pos ends the line
			mid, far = pos.Sub(d), pos.Sub(d).Sub(d)
			if isO(board, mid) && isS(board, far) {
				found = append(found, model.Segment{Start: far, End: pos, Player: mover})
			}
		}
	}

	return found
}

// IsScoringMove returns true if placing letter at pos would complete at least one line
func IsScoringMove(board *model.Board, pos model.Position, letter model.Letter) bool {
	return len(FindSegments(board, pos, letter, model.PlayerNone)) > 0
}

// Tally counts segments per player
func Tally(segments []model.Segment) map[model.Player]int {
	scores := map[model.Player]int{
		model.PlayerRed:  0,
		model.PlayerBlue: 0,
	}
	for _, seg := range segments {
		scores[seg.Player]++
	}
	return scores
}

// Leader returns the player with the strictly higher score, or PlayerNone on a tie
func Leader(red, blue int) model.Player {
	switch {
	case red > blue:
		return model.PlayerRed
	case blue > red:
		return model.PlayerBlue
	default:
		return model.PlayerNone
	}
}

func isS(board *model.Board, pos model.Position) bool {
	return board.InBounds(pos) && board.Get(pos) == model.LetterS
}

func isO(board *model.Board, pos model.Position) bool {
	return board.InBounds(pos) && board.Get(pos) == model.LetterO
}
