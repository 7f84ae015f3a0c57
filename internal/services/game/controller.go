package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/bag"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

// Config holds game controller settings
type Config struct {
	// OracleTimeout bounds the dictionary checks of a single submit
	OracleTimeout time.Duration
}

// DefaultConfig returns sensible defaults for the controller
func DefaultConfig() Config {
	return Config{
		OracleTimeout: 5 * time.Second,
	}
}

// gameLock serialises operations on one game. submitting is set while a
// submit is waiting on the dictionary with mu released.
type gameLock struct {
	mu         sync.Mutex
	submitting bool
}

// Controller manages game state machine and turn flow
type Controller struct {
	storage        storage.Storage
	bagService     *bag.Service
	boardService   *board.Service
	validator      *validator.Validator
	scoringService *scoring.Service
	oracle         dictionary.Oracle
	clock          clock.Clock
	random         random.Random
	cfg            Config
	logger         *slog.Logger

	locksMu sync.Mutex
	locks   map[model.GameID]*gameLock
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	bagService *bag.Service,
	boardService *board.Service,
	validator *validator.Validator,
	scoringService *scoring.Service,
	oracle dictionary.Oracle,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:        storage,
		bagService:     bagService,
		boardService:   boardService,
		validator:      validator,
		scoringService: scoringService,
		oracle:         oracle,
		clock:          clock,
		random:         random,
		cfg:            cfg,
		logger:         logger,
		locks:          make(map[model.GameID]*gameLock),
	}
}

func (c *Controller) lockFor(gameID model.GameID) *gameLock {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()
	gl, ok := c.locks[gameID]
	if !ok {
		gl = &gameLock{}
		c.locks[gameID] = gl
	}
	return gl
}

// forget drops the lock entry for a game that no longer exists. Callers
// hold gl.mu.
func (c *Controller) forget(gameID model.GameID, gl *gameLock) {
	c.locksMu.Lock()
	defer c.locksMu.Unlock()
	if c.locks[gameID] == gl {
		delete(c.locks, gameID)
	}
}

// errUnchanged tells mutate that fn left the game as it was.
var errUnchanged = errors.New("game unchanged")

// mutate loads a game under its lock, applies fn and saves the result.
// Nothing is saved if fn fails or reports errUnchanged.
func (c *Controller) mutate(ctx context.Context, gameID model.GameID, fn func(game *model.Game) error) (*model.Game, error) {
	gl := c.lockFor(gameID)
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if gl.submitting {
		return nil, model.ErrSubmitInProgress
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			c.forget(gameID, gl)
		}
		return nil, err
	}
	if game.IsFinished() {
		return nil, model.ErrGameComplete
	}

	if err := fn(game); err != nil {
		if errors.Is(err, errUnchanged) {
			return game, nil
		}
		return nil, err
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// CreateGame deals a new game. With no names, four default players are
// seated. A non-nil seed makes the tile order reproducible.
func (c *Controller) CreateGame(ctx context.Context, names []string, seed *int64) (*model.Game, error) {
	if len(names) > model.MaxPlayers {
		return nil, model.ErrTooManyPlayers
	}
	if len(names) == 0 {
		for i := range model.MaxPlayers {
			names = append(names, fmt.Sprintf("Player %d", i+1))
		}
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:         model.GameID(c.random.ID()),
		Phase:      model.GamePhaseIdle,
		TurnNumber: 1,
		FirstMove:  true,
		Board:      model.NewBoard(),
		Bag:        c.bagService.NewBag(seed),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		player := model.Player{Name: name, Rack: model.NewRack()}
		c.bagService.Refill(&player.Rack, game.Bag)
		game.Players = append(game.Players, player)
	}

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(game.Players)),
		slog.Bool("seeded", seed != nil),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the IDs of every stored game
func (c *Controller) ListGames(ctx context.Context) ([]model.GameID, error) {
	return c.storage.ListGames(ctx)
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	gl := c.lockFor(gameID)
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if gl.submitting {
		return model.ErrSubmitInProgress
	}
	if _, err := c.storage.GetGame(ctx, gameID); err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			c.forget(gameID, gl)
		}
		return err
	}
	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}
	c.forget(gameID, gl)

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// PlaceTile stages a tile from the active player's rack onto the board
func (c *Controller) PlaceTile(ctx context.Context, gameID model.GameID, tileID model.TileID, pos model.Position, assign rune) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase == model.GamePhaseExchanging {
			return model.ErrExchangeMode
		}
		return c.boardService.Place(game, tileID, pos, assign)
	})
}

// Undo returns the most recently placed pending tile to the rack. With
// nothing pending the game is returned untouched.
func (c *Controller) Undo(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		_, err := c.boardService.Undo(game)
		if errors.Is(err, model.ErrNothingToUndo) {
			return errUnchanged
		}
		return err
	})
}

// Recall returns every pending tile to the rack
func (c *Controller) Recall(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		c.boardService.Rollback(game)
		return nil
	})
}

// ResetBoard clears every tile from the board back into the bag and makes
// the next play a first move again. Scores are kept.
func (c *Controller) ResetBoard(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.mutate(ctx, gameID, func(game *model.Game) error {
		if game.Phase == model.GamePhaseExchanging {
			return model.ErrExchangeMode
		}

		removed := c.boardService.ClearBoard(game)
		c.bagService.Return(game.Bag, removed...)
		game.ResetToFirstMove()
		game.Phase = model.GamePhaseIdle
		game.History = append(game.History, model.MoveRecord{
			Kind:        model.MoveKindReset,
			TurnNumber:  game.TurnNumber,
			PlayerIndex: game.CurrentTurn,
			Timestamp:   c.clock.Now(),
		})

		c.logger.Info("board reset",
			slog.String("game_id", string(game.ID)),
			slog.Int("tiles_returned", len(removed)),
		)
		return nil
	})
}

// Summary returns the standings and current leader
func (c *Controller) Summary(ctx context.Context, gameID model.GameID) (*model.GameSummary, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	scores := game.Scores()
	winner, ok := c.scoringService.DetermineWinner(scores)
	return &model.GameSummary{
		GameID:    game.ID,
		Phase:     game.Phase,
		Standings: c.scoringService.Standings(scores),
		Winner:    winner,
		HasWinner: ok,
	}, nil
}
