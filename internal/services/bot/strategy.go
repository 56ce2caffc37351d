package bot

import "github.com/mcoot/sosgame/internal/model"

// GameView is the read-only state a strategy decides from
type GameView interface {
	// Board returns a board the strategy may inspect but not play on
	Board() *model.Board
	// CurrentPlayer is the player the move is chosen for
	CurrentPlayer() model.Player
}

// Strategy proposes moves. It never changes the game it reads.
type Strategy interface {
	ChooseMove(view GameView) (model.Move, error)
}
