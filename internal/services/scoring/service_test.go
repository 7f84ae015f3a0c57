package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
	board   *model.Board
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
	s.board = model.NewBoard()
}

// place puts tiles for word from start, with the given status
func (s *ServiceSuite) place(start model.Position, horizontal bool, word string, status model.TileStatus) []model.Position {
	var out []model.Position
	for i, letter := range word {
		pos := start.Step(horizontal, i)
		s.board.Set(pos, &model.Tile{Letter: letter, Points: model.LetterPoints[letter]}, status)
		out = append(out, pos)
	}
	return out
}

func (s *ServiceSuite) move(start model.Position, horizontal bool, length int, placed []model.Position) *model.Move {
	word := ""
	for i := range length {
		word += string(s.board.Get(start.Step(horizontal, i)).Tile.Face())
	}
	return &model.Move{
		Horizontal: horizontal,
		Placed:     placed,
		Words:      []model.WordMatch{{Word: word, StartPos: start, Horizontal: horizontal, Length: length}},
	}
}

func (s *ServiceSuite) TestSingleTileOnPlainCell() {
	placed := s.place(model.Center, true, "K", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(model.Center, true, 1, placed))
	s.Equal(5, score.Total)
	s.Equal(5, score.Base)
	s.Equal(1, score.WordMultiplier)
	s.Equal(0, score.Bonus)
}

func (s *ServiceSuite) TestCatAcrossCenter() {
	placed := s.place(testutil.Pos(7, 6), true, "CAT", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(7, 6), true, 3, placed))
	s.Equal(5, score.Total)
	s.Require().Len(score.Words, 1)
	s.Equal(5, score.Words[0].Score)
}

func (s *ServiceSuite) TestLetterMultiplierBeforeWordMultiplier() {
	// Row 3: DW at col 3, DL at col 7
	placed := s.place(testutil.Pos(3, 3), true, "ZEBRAS", model.TileStatusPending)
	placed = placed[:5]
	s.board.Clear(testutil.Pos(3, 8))

	// Z on DW (10), E, B, R, A on DL at col 7 (1*2)
	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(3, 3), true, 5, placed))
	s.Equal(10+1+3+1+2, score.Base)
	s.Equal(2, score.WordMultiplier)
	s.Equal((10+1+3+1+2)*2, score.Total)
}

func (s *ServiceSuite) TestTripleLetter() {
	// Row 5: TL at col 5
	placed := s.place(testutil.Pos(5, 5), true, "QI", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(5, 5), true, 2, placed))
	s.Equal(31, score.Total)
}

func (s *ServiceSuite) TestTwoWordMultipliersCompound() {
	// Row 0: TW at 0 and 7
	placed := s.place(testutil.Pos(0, 0), true, "ABCDEFGH", model.TileStatusPending)

	// DL at col 3 doubles D
	base := 1 + 3 + 3 + 2*2 + 1 + 4 + 2 + 4
	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(0, 0), true, 8, placed))
	s.Equal(base, score.Base)
	s.Equal(9, score.WordMultiplier)
	s.Equal(base*9, score.Total)
}

func (s *ServiceSuite) TestLockedTilesContributeNothing() {
	s.place(testutil.Pos(7, 6), true, "CAT", model.TileStatusLocked)
	placed := s.place(testutil.Pos(7, 9), true, "S", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(7, 6), true, 4, placed))
	s.Equal(1, score.Total)
}

func (s *ServiceSuite) TestLockedPremiumNotReused() {
	// Locked Z sits on the DW at (3,3)
	s.place(testutil.Pos(3, 3), true, "ZA", model.TileStatusLocked)
	placed := s.place(testutil.Pos(3, 5), true, "P", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(3, 3), true, 3, placed))
	s.Equal(3, score.Total)
	s.Equal(1, score.WordMultiplier)
}

func (s *ServiceSuite) TestBlankScoresZero() {
	s.board.Set(model.Center, &model.Tile{Letter: model.BlankLetter, Assigned: 'Q'}, model.TileStatusPending)
	placed := []model.Position{model.Center}
	placed = append(placed, s.place(testutil.Pos(7, 8), true, "I", model.TileStatusPending)...)

	score := s.service.ScoreMove(s.board, s.move(model.Center, true, 2, placed))
	s.Equal(1, score.Total)
}

func (s *ServiceSuite) TestBingoBonus() {
	placed := s.place(testutil.Pos(7, 4), true, "RETAINS", model.TileStatusPending)

	score := s.service.ScoreMove(s.board, s.move(testutil.Pos(7, 4), true, 7, placed))
	s.Equal(model.BingoBonus, score.Bonus)
	s.Equal(score.Base*score.WordMultiplier+model.BingoBonus, score.Total)
}

func (s *ServiceSuite) TestCrossWordsAddUp() {
	s.place(testutil.Pos(6, 6), true, "C", model.TileStatusLocked)
	placed := s.place(testutil.Pos(7, 6), true, "AT", model.TileStatusPending)
	move := s.move(testutil.Pos(7, 6), true, 2, placed)
	move.Words = append(move.Words, model.WordMatch{Word: "CA", StartPos: testutil.Pos(6, 6), Horizontal: false, Length: 2})

	// AT = 1 + 1, CA = 1 (C locked)
	score := s.service.ScoreMove(s.board, move)
	s.Require().Len(score.Words, 2)
	s.Equal(2, score.Words[0].Score)
	s.Equal(1, score.Words[1].Score)
	s.Equal(3, score.Total)
}

// Standings tests

func (s *ServiceSuite) TestStandings() {
	scores := []model.PlayerScore{
		{Index: 0, Name: "A", Score: 10},
		{Index: 1, Name: "B", Score: 30},
		{Index: 2, Name: "C", Score: 10},
	}
	standings := s.service.Standings(scores)
	s.Equal([]int{1, 0, 2}, []int{standings[0].Index, standings[1].Index, standings[2].Index})

	winner, ok := s.service.DetermineWinner(scores)
	s.True(ok)
	s.Equal(1, winner)
}

func (s *ServiceSuite) TestDetermineWinnerTie() {
	scores := []model.PlayerScore{{Index: 0, Score: 20}, {Index: 1, Score: 20}}
	_, ok := s.service.DetermineWinner(scores)
	s.False(ok)

	_, ok = s.service.DetermineWinner(nil)
	s.False(ok)
}
