package storage

import (
	"context"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Storage defines the interface for data persistence. Implementations
// hand out independent copies: a game read from storage is only
// visible to others once saved back.
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	ListGames(ctx context.Context) ([]model.GameID, error)

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
