package testutil

import "github.com/mcoot/sosgame/internal/model"

// BoardFromRows builds a board from row strings where '.' or ' ' is an empty cell.
// The board size is the number of rows. It panics on invalid input.
func BoardFromRows(rows ...string) *model.Board {
	board, err := model.NewBoard(len(rows))
	if err != nil {
		panic(err)
	}
	for row, letters := range rows {
		for col, ch := range letters {
			if ch == '.' || ch == ' ' {
				continue
			}
			if err := board.Place(model.Position{Row: row, Col: col}, model.Letter(ch)); err != nil {
				panic(err)
			}
		}
	}
	return board
}
