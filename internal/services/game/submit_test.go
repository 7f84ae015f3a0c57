package game

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

func (s *ControllerSuite) TestSubmitFirstMove() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)

	result, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(result.Ignored)
	s.Equal(0, result.PlayerIndex)
	s.Equal(5, result.Score.Total)
	s.Equal(3, result.TilesDrawn)
	s.Require().Len(result.Score.Words, 1)
	s.Equal("CAT", result.Score.Words[0].Word)

	stored := s.reload(game.ID)
	s.Equal(5, stored.Players[0].Score)
	s.Equal(1, stored.CurrentTurn)
	s.Equal(2, stored.TurnNumber)
	s.False(stored.FirstMove)
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
	s.True(stored.Board.IsLocked(testutil.Pos(7, 7)))
	s.Empty(stored.Staging)
	s.Len(stored.History, 1)
	s.NoError(stored.CheckTileOwnership())
}

func (s *ControllerSuite) TestSubmitStructuralRejectionKeepsTilesPending() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(0, 0), true)

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrMustCoverCenter)
	var rej *validator.RejectionError
	s.ErrorAs(err, &rej)

	stored := s.reload(game.ID)
	s.Len(stored.Staging, 3)
	s.Equal(model.GamePhaseTilesPending, stored.Phase)
	s.Equal(0, stored.CurrentTurn)
	s.Equal(0, stored.Players[0].Score)
}

func (s *ControllerSuite) TestSubmitNothingPlaced() {
	game, _ := s.newGame("CATSQIZ")

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNoTilesPlaced)
}

func (s *ControllerSuite) TestSubmitInvalidWordRollsBack() {
	game, ids := s.newGame("CATSQIZ")
	before := s.reload(game.ID).Players[0].Rack.Tiles()
	// T A C
	s.placeWord(game, []model.TileID{ids[2], ids[1], ids[0]}, testutil.Pos(7, 6), true)

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidWord)
	var rej *WordRejectionError
	s.Require().ErrorAs(err, &rej)
	s.Equal([]string{"TAC"}, rej.Words)

	stored := s.reload(game.ID)
	s.Equal(0, stored.Board.OccupiedCount())
	s.Equal(before, stored.Players[0].Rack.Tiles())
	s.Equal(model.GamePhaseIdle, stored.Phase)
	s.Equal(0, stored.CurrentTurn)
	s.True(stored.FirstMove)
}

func (s *ControllerSuite) TestSubmitSingleLetterWordRejected() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:1], model.Center, true)

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidWord)
}

func (s *ControllerSuite) TestSubmitOracleFailureRollsBack() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	s.setLookup(func(ctx context.Context, word string) (bool, error) {
		return false, errors.New("connection refused")
	})

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrOracleUnavailable)

	stored := s.reload(game.ID)
	s.Equal(0, stored.Board.OccupiedCount())
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
	s.Equal(0, stored.CurrentTurn)
}

func (s *ControllerSuite) TestSubmitOracleTimeoutRollsBack() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	s.setLookup(func(ctx context.Context, word string) (bool, error) {
		<-ctx.Done()
		return false, ctx.Err()
	})

	_, err := s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrOracleUnavailable)
	s.ErrorIs(err, context.DeadlineExceeded)
	s.Equal(0, s.reload(game.ID).Board.OccupiedCount())
}

func (s *ControllerSuite) TestSubmitCallerCancelledStillRollsBack() {
	mini := miniredis.RunT(s.T())
	client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
	s.T().Cleanup(func() { _ = client.Close() })
	s.useStorage(redisstorage.NewWithClient(client, redisstorage.DefaultConfig()))

	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	s.setLookup(func(lookupCtx context.Context, word string) (bool, error) {
		cancel()
		return false, lookupCtx.Err()
	})

	_, err := s.controller.Submit(ctx, game.ID)
	s.ErrorIs(err, model.ErrOracleUnavailable)
	s.ErrorIs(err, context.Canceled)

	stored := s.reload(game.ID)
	s.Empty(stored.Staging)
	s.Equal(0, stored.Board.OccupiedCount())
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
	s.Equal(model.GamePhaseIdle, stored.Phase)
	s.Equal(0, stored.CurrentTurn)
}

func (s *ControllerSuite) TestSubmitExtendingWord() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	_, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)

	// Bob adds an S to make CATS
	game = s.reload(game.ID)
	bobIDs := testutil.GiveTiles(game, 1, "S")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	_, err = s.controller.PlaceTile(s.ctx, game.ID, bobIDs[0], testutil.Pos(7, 9), 0)
	s.Require().NoError(err)

	result, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(1, result.PlayerIndex)
	s.Equal("CATS", result.Score.Words[0].Word)
	s.Equal(1, result.Score.Total)

	stored := s.reload(game.ID)
	s.Equal(1, stored.Players[1].Score)
	s.Equal(0, stored.CurrentTurn)
}

func (s *ControllerSuite) TestSubmitDisconnectedAfterFirstMove() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	_, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)

	game = s.reload(game.ID)
	bobIDs := testutil.GiveTiles(game, 1, "AT")
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.placeWord(game, bobIDs, testutil.Pos(0, 0), true)

	_, err = s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotConnected)
}

func (s *ControllerSuite) TestSubmitBingo() {
	game, ids := s.newGame("RETAINS")
	s.placeWord(game, ids, testutil.Pos(7, 4), true)

	result, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.BingoBonus, result.Score.Bonus)
	s.Equal(7+model.BingoBonus, result.Score.Total)
	s.True(s.reload(game.ID).History[0].Bingo)
}

func (s *ControllerSuite) TestConcurrentSubmitIsIgnored() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)

	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	s.setLookup(func(ctx context.Context, word string) (bool, error) {
		if calls.Add(1) == 1 {
			close(entered)
		}
		<-release
		return true, nil
	})

	type outcome struct {
		result *SubmitResult
		err    error
	}
	done := make(chan outcome)
	go func() {
		r, err := s.controller.Submit(context.Background(), game.ID)
		done <- outcome{r, err}
	}()
	<-entered

	second, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(second.Ignored)

	_, err = s.controller.Undo(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrSubmitInProgress)
	_, err = s.controller.EnterExchange(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrSubmitInProgress)

	close(release)
	first := <-done
	s.Require().NoError(first.err)
	s.False(first.result.Ignored)
	s.Equal(int32(1), calls.Load())

	stored := s.reload(game.ID)
	s.Equal(5, stored.Players[0].Score)
	s.Equal(1, stored.CurrentTurn)
}

func (s *ControllerSuite) TestGameFinishesWhenBagAndRackEmpty() {
	game, ids := s.newGame("QI")
	game = s.reload(game.ID)
	game.Bag.Tiles = nil
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.placeWord(game, ids, model.Center, true)

	result, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.Finished)
	s.Equal(0, result.TilesDrawn)

	stored := s.reload(game.ID)
	s.Equal(model.GamePhaseFinished, stored.Phase)
	s.Equal(0, stored.CurrentTurn)

	_, err = s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameComplete)
	_, err = s.controller.EnterExchange(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameComplete)
}
