package game

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// ExchangeResult is the outcome of committing an exchange
type ExchangeResult struct {
	// Cancelled is set when nothing was marked. The turn is not used up.
	Cancelled bool

	Exchanged int
	Drawn     int
	Game      *model.Game
}

// EnterExchange switches the active player into exchange mode, first
// sending any pending tiles back to the rack
func (c *Controller) EnterExchange(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase == model.GamePhaseExchanging {
			return nil
		}
		c.boardService.Rollback(game)
		game.Phase = model.GamePhaseExchanging
		game.ExchangeMarked = nil
		return nil
	})
}

// ToggleExchange marks or unmarks a rack tile for exchange
func (c *Controller) ToggleExchange(ctx context.Context, gameID model.GameID, tileID model.TileID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase != model.GamePhaseExchanging {
			return model.ErrNotExchanging
		}
		if _, ok := game.ActivePlayer().Rack.Find(tileID); !ok {
			return model.ErrTileNotInRack
		}

		if idx := slices.Index(game.ExchangeMarked, tileID); idx >= 0 {
			game.ExchangeMarked = slices.Delete(game.ExchangeMarked, idx, idx+1)
		} else {
			game.ExchangeMarked = append(game.ExchangeMarked, tileID)
		}
		return nil
	})
}

// CancelExchange leaves exchange mode without using the turn
func (c *Controller) CancelExchange(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase != model.GamePhaseExchanging {
			return model.ErrNotExchanging
		}
		game.ExchangeMarked = nil
		game.Phase = model.GamePhaseIdle
		return nil
	})
}

// CommitExchange swaps every marked tile for a fresh one from the bag and
// ends the turn. With nothing marked it behaves like CancelExchange.
// At most one tile is drawn per exchanged tile; when the bag runs short
// some of the freed slots stay empty.
func (c *Controller) CommitExchange(ctx context.Context, gameID model.GameID) (*ExchangeResult, error) {
	result := &ExchangeResult{}

	game, err := c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase != model.GamePhaseExchanging {
			return model.ErrNotExchanging
		}

		if len(game.ExchangeMarked) == 0 {
			game.Phase = model.GamePhaseIdle
			result.Cancelled = true
			return nil
		}

		rack := &game.ActivePlayer().Rack
		var removed []model.Tile
		var freed []int
		for _, id := range game.ExchangeMarked {
			slot, ok := rack.Find(id)
			if !ok {
				continue
			}
			removed = append(removed, *rack.Take(slot))
			freed = append(freed, slot)
		}

		// Only the freed slots are refilled
		result.Drawn = c.bagService.DrawInto(rack, game.Bag, freed)
		c.bagService.Return(game.Bag, removed...)
		result.Exchanged = len(removed)

		game.History = append(game.History, model.MoveRecord{
			Kind:        model.MoveKindExchange,
			TurnNumber:  game.TurnNumber,
			PlayerIndex: game.CurrentTurn,
			Exchanged:   len(removed),
			Timestamp:   c.clock.Now(),
		})
		game.AdvanceTurn()
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.Game = game
	c.logger.Info("exchange committed",
		slog.String("game_id", string(gameID)),
		slog.Bool("cancelled", result.Cancelled),
		slog.Int("exchanged", result.Exchanged),
		slog.Int("drawn", result.Drawn),
	)
	return result, nil
}
