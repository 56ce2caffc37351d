package bot

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/sosgame/internal/dependencies/mocks"
	"github.com/mcoot/sosgame/internal/dependencies/random"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/game"
	"github.com/mcoot/sosgame/internal/services/scoring"
	"github.com/mcoot/sosgame/internal/testutil"
)

// fixedView is a GameView over a fixed board
type fixedView struct {
	board  *model.Board
	player model.Player
}

func (v fixedView) Board() *model.Board          { return v.board.Clone() }
func (v fixedView) CurrentPlayer() model.Player { return v.player }

type EasyStrategySuite struct {
	suite.Suite
	random   *mocks.MockRandom
	strategy *EasyStrategy
}

func TestEasyStrategySuite(t *testing.T) {
	suite.Run(t, new(EasyStrategySuite))
}

func (s *EasyStrategySuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.strategy = NewEasyStrategy(s.random)
}

func (s *EasyStrategySuite) TestTakesOnlyScoringMove() {
	view := fixedView{board: testutil.BoardFromRows("S.S", "...", "..."), player: model.PlayerRed}

	move, err := s.strategy.ChooseMove(view)
	s.Require().NoError(err)

	s.Equal(model.Move{Position: model.Position{Row: 0, Col: 1}, Letter: model.LetterO}, move)
}

func (s *EasyStrategySuite) TestPicksAmongScoringMovesInRowMajorOrder() {
	// Scoring moves: (0,1) O, (3,2) S
	view := fixedView{board: testutil.BoardFromRows("S.S.", "....", "....", "SO.."), player: model.PlayerBlue}
	s.random.QueueIntn(1)

	move, err := s.strategy.ChooseMove(view)
	s.Require().NoError(err)

	s.Equal(model.Move{Position: model.Position{Row: 3, Col: 2}, Letter: model.LetterS}, move)
	s.Equal([]int{2}, s.random.IntnCalls)
}

func (s *EasyStrategySuite) TestFallsBackToRandomCellAndLetter() {
	view := fixedView{board: testutil.BoardFromRows("...", "...", "..."), player: model.PlayerRed}
	s.random.QueueIntn(4, 1)

	move, err := s.strategy.ChooseMove(view)
	s.Require().NoError(err)

	s.Equal(model.Move{Position: model.Position{Row: 1, Col: 1}, Letter: model.LetterO}, move)
	s.Equal([]int{9, 2}, s.random.IntnCalls)
}

func (s *EasyStrategySuite) TestFallbackOnlyConsidersEmptyCells() {
	view := fixedView{board: testutil.BoardFromRows("OOO", "O.O", "OOO"), player: model.PlayerRed}
	s.random.QueueIntn(0, 0)

	move, err := s.strategy.ChooseMove(view)
	s.Require().NoError(err)

	s.Equal(model.Position{Row: 1, Col: 1}, move.Position)
	s.Equal(model.LetterS, move.Letter)
}

func (s *EasyStrategySuite) TestFullBoardHasNoMove() {
	view := fixedView{board: testutil.BoardFromRows("SOS", "OSO", "SOS"), player: model.PlayerRed}

	_, err := s.strategy.ChooseMove(view)

	s.ErrorIs(err, model.ErrNoEmptyCell)
}

func (s *EasyStrategySuite) TestDoesNotMutateView() {
	board := testutil.BoardFromRows("S.S", "...", "...")
	view := fixedView{board: board, player: model.PlayerRed}

	_, err := s.strategy.ChooseMove(view)
	s.Require().NoError(err)

	s.Equal([]string{"S.S", "...", "..."}, board.Rows())
}

func (s *EasyStrategySuite) TestAcceptsEngineAsView() {
	engine, err := game.New(3, "simple", model.PlayerRed)
	s.Require().NoError(err)
	s.Require().NoError(engine.PlaceLetter(0, 0, "S"))
	s.Require().NoError(engine.PlaceLetter(1, 1, "O"))

	move, err := s.strategy.ChooseMove(engine)
	s.Require().NoError(err)

	s.Equal(model.Move{Position: model.Position{Row: 2, Col: 2}, Letter: model.LetterS}, move)
	s.Require().NoError(engine.Play(move))
	s.True(engine.IsOver())
	s.Equal(model.PlayerRed, engine.Winner())
}

// Whole games with a seeded source: every move lands on an empty cell and a
// scoring move is taken whenever one is available.
func (s *EasyStrategySuite) TestSeededGamesAlwaysPlayLegalMoves() {
	for seed := uint64(1); seed <= 20; seed++ {
		strategy := NewEasyStrategy(random.NewSeeded(seed))
		for _, mode := range model.Modes() {
			engine, err := game.New(5, string(mode), model.PlayerRed)
			s.Require().NoError(err)

			for !engine.IsOver() {
				board := engine.Board()
				hadScoring := hasScoringMove(board, engine.CurrentPlayer())

				move, err := strategy.ChooseMove(engine)
				s.Require().NoError(err)

				empty, err := board.IsEmpty(move.Position)
				s.Require().NoError(err)
				s.True(empty)
				if hadScoring {
					s.True(scoring.IsScoringMove(board, move.Position, move.Letter))
				}

				s.Require().NoError(engine.Play(move))
			}
		}
	}
}

func (s *EasyStrategySuite) TestSameSeedSameGame() {
	play := func(seed uint64) []string {
		strategy := NewEasyStrategy(random.NewSeeded(seed))
		engine, err := game.New(4, "general", model.PlayerRed)
		s.Require().NoError(err)
		for !engine.IsOver() {
			move, err := strategy.ChooseMove(engine)
			s.Require().NoError(err)
			s.Require().NoError(engine.Play(move))
		}
		return engine.Board().Rows()
	}

	s.Equal(play(42), play(42))
}

func hasScoringMove(board *model.Board, player model.Player) bool {
	for _, pos := range board.EmptyPositions() {
		for _, letter := range model.Letters() {
			if len(scoring.FindSegments(board, pos, letter, player)) > 0 {
				return true
			}
		}
	}
	return false
}
