package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/storage"
)

//go:embed words.txt
var defaultWords string

// Service is an in-process word list
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		words:   make(map[string]struct{}),
	}
}

// Normalize upper-cases a word and trims surrounding whitespace
func Normalize(word string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(word))
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return s.LoadFromReader(ctx, file)
}

// LoadDefault loads the built-in word list
func (s *Service) LoadDefault(ctx context.Context) error {
	return s.LoadFromReader(ctx, strings.NewReader(defaultWords))
}

// LoadFromReader loads one word per line and saves the list to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := Normalize(scanner.Text())
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(words)
}

func (s *Service) loadWords(words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make(map[string]struct{}, len(words))
	for _, word := range words {
		s.words[Normalize(word)] = struct{}{}
	}
	s.loaded = true
	s.logger.Info("dictionary loaded", slog.Int("words", len(s.words)))
	return nil
}

// IsValidWord checks if a word exists in the dictionary.
// Words must be at least 2 characters.
func (s *Service) IsValidWord(word string) bool {
	word = Normalize(word)
	if len([]rune(word)) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[word]
	return ok
}

// Lookup implements Oracle against the loaded word list
func (s *Service) Lookup(ctx context.Context, word string) (bool, error) {
	if !s.IsLoaded() {
		return false, model.ErrDictionaryNotLoaded
	}
	return s.IsValidWord(word), nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Interface check
type ServiceInterface interface {
	Oracle
	IsValidWord(word string) bool
	IsLoaded() bool
	WordCount() int
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadDefault(ctx context.Context) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
