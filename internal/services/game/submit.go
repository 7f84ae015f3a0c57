package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// SubmitResult is the outcome of a submit that was not rejected
type SubmitResult struct {
	// Ignored is set when another submit for the same game was already in
	// flight. Nothing else is filled in.
	Ignored bool

	PlayerIndex int
	Score       model.MoveScore
	TilesDrawn  int
	Finished    bool
	Game        *model.Game
}

// Submit validates the pending tiles, checks every word against the
// dictionary and, if all pass, scores and commits the move and hands the
// turn on.
//
// A structural rejection leaves the tiles pending. A dictionary rejection
// or dictionary failure sends every pending tile back to the rack.
func (c *Controller) Submit(ctx context.Context, gameID model.GameID) (*SubmitResult, error) {
	gl := c.lockFor(gameID)
	gl.mu.Lock()

	if gl.submitting {
		gl.mu.Unlock()
		c.logger.Debug("submit ignored, already in progress", slog.String("game_id", string(gameID)))
		return &SubmitResult{Ignored: true}, nil
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			c.forget(gameID, gl)
		}
		gl.mu.Unlock()
		return nil, err
	}
	if game.IsFinished() {
		gl.mu.Unlock()
		return nil, model.ErrGameComplete
	}
	if game.Phase == model.GamePhaseExchanging {
		gl.mu.Unlock()
		return nil, model.ErrExchangeMode
	}

	move, err := c.validator.Validate(game.Board, c.boardService.PendingPositions(game), game.FirstMove)
	if err != nil {
		gl.mu.Unlock()
		c.logger.Info("move rejected",
			slog.String("game_id", string(gameID)),
			slog.String("reason", err.Error()),
		)
		return nil, err
	}

	gl.submitting = true
	gl.mu.Unlock()

	started := c.clock.Now()
	invalid, lookupErr := c.checkWords(ctx, move.Words)

	gl.mu.Lock()
	defer func() {
		gl.submitting = false
		gl.mu.Unlock()
	}()

	// The outcome is stored even if the caller has gone away
	ctx = context.WithoutCancel(ctx)

	if lookupErr != nil || len(invalid) > 0 {
		if err := c.rollback(ctx, gameID); err != nil {
			return nil, err
		}
		if lookupErr != nil {
			c.logger.Warn("dictionary unavailable",
				slog.String("game_id", string(gameID)),
				slog.String("error", lookupErr.Error()),
			)
			return nil, fmt.Errorf("%w: %w", model.ErrOracleUnavailable, lookupErr)
		}
		c.logger.Info("words rejected",
			slog.String("game_id", string(gameID)),
			slog.Any("words", invalid),
		)
		return nil, &WordRejectionError{Words: invalid}
	}

	// Only this submit can have touched the game since it was loaded
	game, err = c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	score := c.scoringService.ScoreMove(game.Board, move)
	playerIndex := game.CurrentTurn
	player := game.ActivePlayer()

	game.AwardScore(score.Total)
	c.boardService.Commit(game)
	drawn := c.bagService.Refill(&player.Rack, game.Bag)
	game.FirstMove = false

	game.History = append(game.History, model.MoveRecord{
		Kind:        model.MoveKindPlay,
		TurnNumber:  game.TurnNumber,
		PlayerIndex: playerIndex,
		Words:       score.Words,
		Score:       score.Total,
		Bingo:       score.Bonus > 0,
		Timestamp:   c.clock.Now(),
	})

	finished := game.Bag.Remaining() == 0 && player.Rack.Count() == 0
	if finished {
		game.Phase = model.GamePhaseFinished
	} else {
		game.AdvanceTurn()
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("move accepted",
		slog.String("game_id", string(gameID)),
		slog.Int("player", playerIndex),
		slog.Any("words", lo.Map(score.Words, func(w model.WordMatch, _ int) string { return w.Word })),
		slog.Int("score", score.Total),
		slog.Duration("lookup_duration", c.clock.Since(started)),
		slog.Bool("finished", finished),
	)

	return &SubmitResult{
		PlayerIndex: playerIndex,
		Score:       score,
		TilesDrawn:  drawn,
		Finished:    finished,
		Game:        game,
	}, nil
}

// checkWords asks the oracle about every word concurrently. It returns the
// words the oracle rejected, or an error if any lookup could not be answered
// in time.
func (c *Controller) checkWords(ctx context.Context, words []model.WordMatch) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.OracleTimeout)
	defer cancel()

	valid := make([]bool, len(words))
	g, gctx := errgroup.WithContext(ctx)
	for i, w := range words {
		g.Go(func() error {
			ok, err := c.oracle.Lookup(gctx, w.Word)
			if err != nil {
				return err
			}
			valid[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var invalid []string
	for i, w := range words {
		if !valid[i] {
			invalid = append(invalid, w.Word)
		}
	}
	return lo.Uniq(invalid), nil
}

// rollback sends every pending tile back to the rack. Callers hold the
// game lock.
func (c *Controller) rollback(ctx context.Context, gameID model.GameID) error {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	c.boardService.Rollback(game)
	return c.save(ctx, game)
}
