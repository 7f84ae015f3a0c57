package board

import (
	"log/slog"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Service stages tiles from the active player's rack onto the board.
// It mutates the game in place; persisting is the caller's job.
type Service struct {
	logger *slog.Logger
}

// New creates a new board Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Place moves a tile from the active player's rack onto an empty cell as a
// pending tile. Blanks must be given the letter they stand for.
func (s *Service) Place(game *model.Game, tileID model.TileID, pos model.Position, assign rune) error {
	if err := s.ValidatePlacement(game.Board, pos); err != nil {
		return err
	}

	rack := &game.ActivePlayer().Rack
	slot, ok := rack.Find(tileID)
	if !ok {
		return model.ErrTileNotInRack
	}

	if rack.Slots[slot].IsBlank() {
		if err := ValidateLetter(assign); err != nil {
			return err
		}
	}

	tile := rack.Take(slot)
	if tile.IsBlank() {
		tile.Assigned = unicode.ToUpper(assign)
	}

	game.Board.Set(pos, tile, model.TileStatusPending)
	game.Staging = append(game.Staging, model.StagedPlacement{
		TileID:   tile.ID,
		RackSlot: slot,
		Position: pos,
	})
	game.Phase = model.GamePhaseTilesPending
	return nil
}

// Undo returns the most recently placed pending tile to its rack slot.
// Nothing changes if that slot has been filled since.
func (s *Service) Undo(game *model.Game) (model.StagedPlacement, error) {
	if len(game.Staging) == 0 {
		return model.StagedPlacement{}, model.ErrNothingToUndo
	}

	last := game.Staging[len(game.Staging)-1]
	rack := &game.ActivePlayer().Rack
	if last.RackSlot < 0 || last.RackSlot >= len(rack.Slots) || rack.Slots[last.RackSlot] != nil {
		return last, model.ErrRackSlotTaken
	}

	game.Staging = game.Staging[:len(game.Staging)-1]
	if tile := game.Board.Clear(last.Position); tile != nil {
		if tile.IsBlank() {
			tile.Assigned = 0
		}
		rack.Put(last.RackSlot, tile)
	}

	if len(game.Staging) == 0 {
		game.Phase = model.GamePhaseIdle
	}
	return last, nil
}

// Rollback returns every pending tile to the rack. Returns the number of
// tiles moved.
func (s *Service) Rollback(game *model.Game) int {
	count := 0
	for len(game.Staging) > 0 {
		if _, err := s.Undo(game); err != nil {
			s.logger.Error("rollback failed", slog.String("game_id", string(game.ID)), slog.Any("error", err))
			break
		}
		count++
	}
	return count
}

// Commit locks every pending tile in place and clears the staging list
func (s *Service) Commit(game *model.Game) []model.Position {
	positions := s.PendingPositions(game)
	for _, pos := range positions {
		cell := game.Board.Get(pos)
		game.Board.Set(pos, cell.Tile, model.TileStatusLocked)
	}
	game.Staging = nil
	game.Phase = model.GamePhaseIdle
	return positions
}

// PendingPositions returns the cells staged this turn, in placement order
func (s *Service) PendingPositions(game *model.Game) []model.Position {
	return lo.Map(game.Staging, func(p model.StagedPlacement, _ int) model.Position {
		return p.Position
	})
}

// ClearBoard rolls back pending tiles and removes every locked tile.
// Returns the removed locked tiles so they can go back in the bag.
func (s *Service) ClearBoard(game *model.Game) []model.Tile {
	s.Rollback(game)

	var removed []model.Tile
	for _, pos := range game.Board.Positions(model.TileStatusLocked) {
		if tile := game.Board.Clear(pos); tile != nil {
			removed = append(removed, *tile)
		}
	}
	return removed
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !board.IsValidPosition(pos) {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrCellOccupied
	}
	return nil
}

// ValidateLetter checks if a letter is a valid A-Z character
func ValidateLetter(letter rune) error {
	if !model.IsLetter(unicode.ToUpper(letter)) {
		return model.ErrInvalidLetter
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Place(game *model.Game, tileID model.TileID, pos model.Position, assign rune) error
	Undo(game *model.Game) (model.StagedPlacement, error)
	Rollback(game *model.Game) int
	Commit(game *model.Game) []model.Position
	PendingPositions(game *model.Game) []model.Position
	ClearBoard(game *model.Game) []model.Tile
}

var _ ServiceInterface = (*Service)(nil)
