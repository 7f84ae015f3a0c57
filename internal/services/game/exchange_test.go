package game

import (
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

func (s *ControllerSuite) TestEnterExchangeRollsBackPending() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:2], testutil.Pos(7, 6), true)

	stored, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhaseExchanging, stored.Phase)
	s.Equal(0, stored.Board.OccupiedCount())
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
}

func (s *ControllerSuite) TestPlacementDisabledWhileExchanging() {
	game, ids := s.newGame("CATSQIZ")
	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)

	_, err = s.controller.PlaceTile(s.ctx, game.ID, ids[0], model.Center, 0)
	s.ErrorIs(err, model.ErrExchangeMode)
	_, err = s.controller.Submit(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrExchangeMode)
}

func (s *ControllerSuite) TestToggleExchange() {
	game, ids := s.newGame("CATSQIZ")

	_, err := s.controller.ToggleExchange(s.ctx, game.ID, ids[0])
	s.ErrorIs(err, model.ErrNotExchanging)

	_, err = s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)

	stored, err := s.controller.ToggleExchange(s.ctx, game.ID, ids[0])
	s.Require().NoError(err)
	s.Equal([]model.TileID{ids[0]}, stored.ExchangeMarked)

	stored, err = s.controller.ToggleExchange(s.ctx, game.ID, ids[0])
	s.Require().NoError(err)
	s.Empty(stored.ExchangeMarked)

	bob := s.reload(game.ID).Players[1].Rack.Slots[0].ID
	_, err = s.controller.ToggleExchange(s.ctx, game.ID, bob)
	s.ErrorIs(err, model.ErrTileNotInRack)
}

func (s *ControllerSuite) TestCommitExchangeSwapsMarkedTiles() {
	game, ids := s.newGame("CATSQIZ")
	bagBefore := s.reload(game.ID).Bag.Remaining()

	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	for _, id := range ids[:3] {
		_, err = s.controller.ToggleExchange(s.ctx, game.ID, id)
		s.Require().NoError(err)
	}

	result, err := s.controller.CommitExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(result.Cancelled)
	s.Equal(3, result.Exchanged)
	s.Equal(3, result.Drawn)

	stored := s.reload(game.ID)
	s.Equal(bagBefore, stored.Bag.Remaining())
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
	for _, id := range ids[:3] {
		_, held := stored.Players[0].Rack.Find(id)
		s.False(held)
	}
	for _, id := range ids[3:] {
		_, held := stored.Players[0].Rack.Find(id)
		s.True(held)
	}
	s.Equal(1, stored.CurrentTurn)
	s.Equal(model.GamePhaseIdle, stored.Phase)
	s.Equal(model.MoveKindExchange, stored.History[0].Kind)
	s.NoError(stored.CheckTileOwnership())
}

func (s *ControllerSuite) TestCommitExchangeWithNothingMarkedCancels() {
	game, _ := s.newGame("CATSQIZ")
	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)

	result, err := s.controller.CommitExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(result.Cancelled)

	stored := s.reload(game.ID)
	s.Equal(0, stored.CurrentTurn)
	s.Equal(model.GamePhaseIdle, stored.Phase)
	s.Empty(stored.History)
}

func (s *ControllerSuite) TestCommitExchangeShortBag() {
	game, ids := s.newGame("CATSQIZ")

	// Leave a single tile in the bag
	game = s.reload(game.ID)
	game.Bag.Tiles = game.Bag.Tiles[:1]
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	for _, id := range ids[:2] {
		_, err = s.controller.ToggleExchange(s.ctx, game.ID, id)
		s.Require().NoError(err)
	}

	result, err := s.controller.CommitExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(2, result.Exchanged)
	s.Equal(1, result.Drawn)

	stored := s.reload(game.ID)
	s.Equal(6, stored.Players[0].Rack.Count())
	s.Equal(2, stored.Bag.Remaining())
}

func (s *ControllerSuite) TestCommitExchangeShortRackDrawsOnlyForMarked() {
	game, ids := s.newGame("CATSQIZ")

	// End game: three slots left empty when the bag ran dry, then another
	// player's exchange put two tiles back
	game = s.reload(game.ID)
	for slot := 4; slot < model.RackSize; slot++ {
		game.Players[0].Rack.Take(slot)
	}
	game.Bag.Tiles = []model.Tile{{ID: 900, Letter: 'E', Points: 1}, {ID: 901, Letter: 'O', Points: 1}}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	s.Require().Equal(4, s.reload(game.ID).Players[0].Rack.Count())

	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	_, err = s.controller.ToggleExchange(s.ctx, game.ID, ids[0])
	s.Require().NoError(err)

	result, err := s.controller.CommitExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(1, result.Exchanged)
	s.Equal(1, result.Drawn)

	stored := s.reload(game.ID)
	s.Equal(4, stored.Players[0].Rack.Count())
	s.Equal(2, stored.Bag.Remaining())
	_, held := stored.Players[0].Rack.Find(ids[0])
	s.False(held)
	s.NotNil(stored.Players[0].Rack.Slots[0])
	for slot := 4; slot < model.RackSize; slot++ {
		s.Nil(stored.Players[0].Rack.Slots[slot])
	}
}

func (s *ControllerSuite) TestCancelExchange() {
	game, ids := s.newGame("CATSQIZ")
	_, err := s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	_, err = s.controller.ToggleExchange(s.ctx, game.ID, ids[0])
	s.Require().NoError(err)

	stored, err := s.controller.CancelExchange(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.GamePhaseIdle, stored.Phase)
	s.Empty(stored.ExchangeMarked)
	s.Equal(0, stored.CurrentTurn)

	_, err = s.controller.CancelExchange(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotExchanging)
}
