package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/clock"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/bag"
	"github.com/mcoot/scrabblegame-go/internal/services/board"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/scoring"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	"github.com/mcoot/scrabblegame-go/internal/storage"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabblegame-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Oracle is what submits check words against. It is the dictionary
	// service unless a remote oracle is configured.
	Oracle dictionary.Oracle

	// Services
	DictionaryService *dictionary.Service
	BagService        *bag.Service
	BoardService      *board.Service
	Validator         *validator.Validator
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the dictionary file (optional)
	// If empty, words already in storage are used, else the built-in list
	DictionaryPath string
	// OracleURL is a remote word validation endpoint (optional)
	// If empty, words are checked against the local dictionary
	OracleURL string
	// OracleAttempts is the retry budget for the remote oracle
	OracleAttempts uint
	// OracleCacheSize bounds the verdict cache in front of the remote oracle
	OracleCacheSize int
	// GameConfig holds controller settings (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// ValidatorOptions selects validation behaviour
	ValidatorOptions validator.Options
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// dictionary loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	gameCfg := cfg.GameConfig
	if gameCfg.OracleTimeout == 0 {
		gameCfg = game.DefaultConfig()
	}

	dictService := dictionary.New(store, logger)
	if cfg.DictionaryPath != "" {
		if err := dictService.LoadFromFile(ctx, cfg.DictionaryPath); err != nil {
			return nil, err
		}
	} else if err := dictService.LoadFromStorage(ctx); err != nil {
		if !errors.Is(err, model.ErrDictionaryNotLoaded) {
			return nil, err
		}
		if err := dictService.LoadDefault(ctx); err != nil {
			return nil, err
		}
	}

	var oracle dictionary.Oracle = dictService
	if cfg.OracleURL != "" {
		httpCfg := dictionary.DefaultHTTPConfig()
		httpCfg.URL = cfg.OracleURL
		if cfg.OracleAttempts > 0 {
			httpCfg.Attempts = cfg.OracleAttempts
		}
		cacheSize := cfg.OracleCacheSize
		if cacheSize <= 0 {
			cacheSize = 10000
		}
		cached, err := dictionary.NewCachingOracle(dictionary.NewHTTPOracle(httpCfg, logger), cacheSize)
		if err != nil {
			return nil, err
		}
		oracle = cached
		logger.Info("using remote dictionary", slog.String("url", cfg.OracleURL))
	}

	return newWithDependencies(store, clk, rnd, dictService, oracle, gameCfg, cfg.ValidatorOptions, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	dictService *dictionary.Service,
	oracle dictionary.Oracle,
	gameCfg game.Config,
	validatorOpts validator.Options,
	logger *slog.Logger,
) *App {
	bagService := bag.New(rnd, logger)
	boardService := board.New(logger)
	moveValidator := validator.New(validatorOpts, logger)
	scoringService := scoring.New()
	gameController := game.NewController(
		store,
		bagService,
		boardService,
		moveValidator,
		scoringService,
		oracle,
		clk,
		rnd,
		gameCfg,
		logger,
	)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Oracle:            oracle,
		DictionaryService: dictService,
		BagService:        bagService,
		BoardService:      boardService,
		Validator:         moveValidator,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}
