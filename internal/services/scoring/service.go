package scoring

import (
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Service scores validated moves and ranks players
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// ScoreMove scores every word of a validated move against the board's
// pending tiles. Only tiles placed this turn contribute letter points and
// trigger premiums; previously locked letters score nothing.
func (s *Service) ScoreMove(board *model.Board, move *model.Move) model.MoveScore {
	result := model.MoveScore{WordMultiplier: 1}

	for i, word := range move.Words {
		base, mult := s.ScoreWord(board, word)
		word.Score = base * mult
		result.Words = append(result.Words, word)
		result.Total += word.Score

		if i == 0 {
			result.Base = base
			result.WordMultiplier = mult
		}
	}

	if len(move.Placed) == model.RackSize {
		result.Bonus = model.BingoBonus
		result.Total += model.BingoBonus
	}
	return result
}

// ScoreWord returns the letter sum and word multiplier for one word.
// Letter multipliers apply before the word multiplier.
func (s *Service) ScoreWord(board *model.Board, word model.WordMatch) (base, multiplier int) {
	multiplier = 1
	for _, pos := range word.Positions() {
		cell := board.Get(pos)
		if cell.Tile == nil || cell.Status != model.TileStatusPending {
			continue
		}
		premium := model.PremiumAt(pos)
		base += cell.Tile.Points * premium.LetterMultiplier()
		multiplier *= premium.WordMultiplier()
	}
	return base, multiplier
}

// Standings returns the scoreboard sorted by score, highest first. Ties
// keep seat order.
func (s *Service) Standings(scores []model.PlayerScore) []model.PlayerScore {
	out := slices.Clone(scores)
	slices.SortStableFunc(out, func(a, b model.PlayerScore) int {
		return b.Score - a.Score
	})
	return out
}

// DetermineWinner returns the seat index of the sole leader, or false on
// a tie or an empty scoreboard
func (s *Service) DetermineWinner(scores []model.PlayerScore) (int, bool) {
	if len(scores) == 0 {
		return 0, false
	}
	top := lo.MaxBy(scores, func(a, b model.PlayerScore) bool { return a.Score > b.Score })
	leaders := lo.CountBy(scores, func(p model.PlayerScore) bool { return p.Score == top.Score })
	if leaders > 1 {
		return 0, false
	}
	return top.Index, true
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreMove(board *model.Board, move *model.Move) model.MoveScore
	ScoreWord(board *model.Board, word model.WordMatch) (base, multiplier int)
	Standings(scores []model.PlayerScore) []model.PlayerScore
	DetermineWinner(scores []model.PlayerScore) (int, bool)
}

var _ ServiceInterface = (*Service)(nil)
