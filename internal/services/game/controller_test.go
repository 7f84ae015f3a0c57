package game

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/bag"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	"github.com/mcoot/scrabblegame-go/internal/storage"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    storage.Storage
	dictionary *dictionary.Service
	controller *Controller
	clock      *mocks.MockClock
	ctx        context.Context

	mu     sync.Mutex
	lookup func(ctx context.Context, word string) (bool, error)
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()
	s.useStorage(memory.New())
}

// useStorage rebuilds the controller and dictionary on top of store
func (s *ControllerSuite) useStorage(store storage.Storage) {
	s.storage = store
	rnd := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	s.dictionary = dictionary.New(s.storage, logger)
	s.Require().NoError(s.dictionary.LoadWords([]string{"CAT", "CATS", "AT", "TO", "QI", "RETAINS", "ZA"}))
	s.setLookup(s.dictionary.Lookup)

	oracle := dictionary.OracleFunc(func(ctx context.Context, word string) (bool, error) {
		s.mu.Lock()
		fn := s.lookup
		s.mu.Unlock()
		return fn(ctx, word)
	})

	cfg := DefaultConfig()
	cfg.OracleTimeout = 200 * time.Millisecond

	s.controller = NewController(
		s.storage,
		bag.New(rnd, logger),
		board.New(logger),
		validator.New(validator.Options{}, logger),
		scoring.New(),
		oracle,
		s.clock,
		rnd,
		cfg,
		logger,
	)
}

func (s *ControllerSuite) setLookup(fn func(ctx context.Context, word string) (bool, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookup = fn
}

// newGame creates a two player game and gives the first player the given rack
func (s *ControllerSuite) newGame(rack string) (*model.Game, []model.TileID) {
	game, err := s.controller.CreateGame(s.ctx, []string{"Alice", "Bob"}, nil)
	s.Require().NoError(err)
	ids := testutil.GiveTiles(game, 0, rack)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game, ids
}

func (s *ControllerSuite) reload(id model.GameID) *model.Game {
	game, err := s.controller.GetGame(s.ctx, id)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) placeWord(game *model.Game, ids []model.TileID, start model.Position, horizontal bool) {
	for i, id := range ids {
		_, err := s.controller.PlaceTile(s.ctx, game.ID, id, start.Step(horizontal, i), 0)
		s.Require().NoError(err)
	}
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameDealsRacks() {
	game, err := s.controller.CreateGame(s.ctx, []string{"Alice", "Bob"}, nil)
	s.Require().NoError(err)

	s.Equal(model.GameID("game-1"), game.ID)
	s.Len(game.Players, 2)
	s.Equal("Alice", game.Players[0].Name)
	for _, p := range game.Players {
		s.Equal(model.RackSize, p.Rack.Count())
	}
	s.Equal(model.TotalTiles-14, game.Bag.Remaining())
	s.True(game.FirstMove)
	s.Equal(model.GamePhaseIdle, game.Phase)
	s.NoError(game.CheckTileOwnership())
}

func (s *ControllerSuite) TestCreateGameDefaultsToFourPlayers() {
	game, err := s.controller.CreateGame(s.ctx, nil, nil)
	s.Require().NoError(err)
	s.Len(game.Players, model.MaxPlayers)
	s.Equal("Player 4", game.Players[3].Name)
}

func (s *ControllerSuite) TestCreateGameTooManyPlayers() {
	_, err := s.controller.CreateGame(s.ctx, []string{"a", "b", "c", "d", "e"}, nil)
	s.ErrorIs(err, model.ErrTooManyPlayers)
}

func (s *ControllerSuite) TestCreateGameSeededIsReproducible() {
	seed := int64(7)
	a, err := s.controller.CreateGame(s.ctx, []string{"A"}, &seed)
	s.Require().NoError(err)
	b, err := s.controller.CreateGame(s.ctx, []string{"A"}, &seed)
	s.Require().NoError(err)

	s.NotEqual(a.ID, b.ID)
	s.Equal(a.Players[0].Rack.Tiles(), b.Players[0].Rack.Tiles())
	s.Equal(a.Bag.Tiles, b.Bag.Tiles)
}

// Placement tests

func (s *ControllerSuite) TestPlaceTileIsPersisted() {
	game, ids := s.newGame("CATSQIZ")

	_, err := s.controller.PlaceTile(s.ctx, game.ID, ids[0], model.Center, 0)
	s.Require().NoError(err)

	stored := s.reload(game.ID)
	s.Equal(model.GamePhaseTilesPending, stored.Phase)
	s.False(stored.Board.IsEmpty(model.Center))
	s.NoError(stored.CheckTileOwnership())
}

func (s *ControllerSuite) TestPlaceTileFailureDoesNotMutate() {
	game, ids := s.newGame("CATSQIZ")
	_, err := s.controller.PlaceTile(s.ctx, game.ID, ids[0], model.Center, 0)
	s.Require().NoError(err)

	_, err = s.controller.PlaceTile(s.ctx, game.ID, ids[1], model.Center, 0)
	s.ErrorIs(err, model.ErrCellOccupied)

	stored := s.reload(game.ID)
	s.Equal(ids[1], stored.Players[0].Rack.Slots[1].ID)
	s.Len(stored.Staging, 1)
}

func (s *ControllerSuite) TestPlaceTileUnknownGame() {
	_, err := s.controller.PlaceTile(s.ctx, "nope", 1, model.Center, 0)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestUnknownGamesLeaveNoLocks() {
	game, _ := s.newGame("CATSQIZ")

	_, err := s.controller.Undo(s.ctx, "missing-1")
	s.ErrorIs(err, model.ErrGameNotFound)
	_, err = s.controller.Submit(s.ctx, "missing-2")
	s.ErrorIs(err, model.ErrGameNotFound)
	s.ErrorIs(s.controller.DeleteGame(s.ctx, "missing-3"), model.ErrGameNotFound)
	_, err = s.controller.EnterExchange(s.ctx, game.ID)
	s.Require().NoError(err)

	s.controller.locksMu.Lock()
	defer s.controller.locksMu.Unlock()
	s.Len(s.controller.locks, 1)
	s.Contains(s.controller.locks, game.ID)
}

func (s *ControllerSuite) TestUndoAndRecall() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)

	_, err := s.controller.Undo(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(s.reload(game.ID).Staging, 2)

	_, err = s.controller.Recall(s.ctx, game.ID)
	s.Require().NoError(err)
	stored := s.reload(game.ID)
	s.Empty(stored.Staging)
	s.Equal(model.RackSize, stored.Players[0].Rack.Count())
	s.Equal(model.GamePhaseIdle, stored.Phase)

	before := s.reload(game.ID)
	undone, err := s.controller.Undo(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Empty(undone.Staging)
	s.Equal(before, s.reload(game.ID))
}

// Reset tests

func (s *ControllerSuite) TestResetBoard() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	_, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)

	reset, err := s.controller.ResetBoard(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, reset.Board.OccupiedCount())
	s.True(reset.FirstMove)
	s.Equal(5, reset.Players[0].Score)
	s.Equal(model.MoveKindReset, reset.History[len(reset.History)-1].Kind)
	s.NoError(reset.CheckTileOwnership())
}

// Summary tests

func (s *ControllerSuite) TestSummary() {
	game, ids := s.newGame("CATSQIZ")
	s.placeWord(game, ids[:3], testutil.Pos(7, 6), true)
	_, err := s.controller.Submit(s.ctx, game.ID)
	s.Require().NoError(err)

	summary, err := s.controller.Summary(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(summary.HasWinner)
	s.Equal(0, summary.Winner)
	s.Equal("Alice", summary.Standings[0].Name)
	s.Equal(5, summary.Standings[0].Score)
}

func (s *ControllerSuite) TestDeleteGame() {
	game, _ := s.newGame("CATSQIZ")

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))
	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)

	s.ErrorIs(s.controller.DeleteGame(s.ctx, game.ID), model.ErrGameNotFound)
}

func (s *ControllerSuite) TestListGames() {
	a, _ := s.newGame("CAT")
	b, _ := s.newGame("CAT")

	ids, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{a.ID, b.ID}, ids)
}
