package factory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
	"github.com/mcoot/scrabblegame-go/internal/storage/memory"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom

	mu     sync.Mutex
	oracle dictionary.Oracle
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Words are checked against the dictionary service until SetOracle is called.
func NewTestApp() *TestApp {
	return NewTestAppWithOptions(validator.Options{})
}

// NewTestAppWithOptions is NewTestApp with explicit validator options
func NewTestAppWithOptions(opts validator.Options) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := testutil.NopLogger()

	t := &TestApp{
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}

	dictService := dictionary.New(store, logger)
	t.oracle = dictService

	switchable := dictionary.OracleFunc(func(ctx context.Context, word string) (bool, error) {
		t.mu.Lock()
		o := t.oracle
		t.mu.Unlock()
		return o.Lookup(ctx, word)
	})

	gameCfg := game.DefaultConfig()
	gameCfg.OracleTimeout = time.Second

	t.App = newWithDependencies(store, mockClock, mockRandom, dictService, switchable, gameCfg, opts, logger)
	return t
}

// SetOracle replaces the oracle submits consult
func (t *TestApp) SetOracle(o dictionary.Oracle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.oracle = o
}

// LoadTestDictionary loads the built-in word list
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadDefault(context.Background())
}
