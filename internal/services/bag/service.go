package bag

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Service creates and manages tile bags
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new bag Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// NewBag builds a full, shuffled 100-tile bag. A non-nil seed makes the
// initial tile order reproducible.
func (s *Service) NewBag(seed *int64) *model.TileBag {
	letters := lo.Keys(model.LetterDistribution)
	slices.Sort(letters)

	tiles := make([]model.Tile, 0, model.TotalTiles)
	for _, letter := range letters {
		for range model.LetterDistribution[letter] {
			tiles = append(tiles, model.Tile{
				ID:     model.TileID(len(tiles)),
				Letter: letter,
				Points: model.LetterPoints[letter],
			})
		}
	}

	rnd := s.random
	if seed != nil {
		rnd = random.NewSeeded(*seed)
	}

	bag := &model.TileBag{Tiles: tiles}
	shuffle(bag, rnd)
	return bag
}

// Refill draws tiles into every empty rack slot, lowest slot first, until
// the rack is full or the bag runs out. Returns the number drawn.
func (s *Service) Refill(rack *model.Rack, bag *model.TileBag) int {
	return s.DrawInto(rack, bag, rack.EmptySlots())
}

// DrawInto draws one tile for each of the given slots, in order, until the
// bag runs out. Slots that are already taken are skipped. Returns the
// number drawn.
func (s *Service) DrawInto(rack *model.Rack, bag *model.TileBag, slots []int) int {
	drawn := 0
	for _, slot := range slots {
		if slot < 0 || slot >= len(rack.Slots) || rack.Slots[slot] != nil {
			continue
		}
		tile, ok := bag.Draw()
		if !ok {
			break
		}
		rack.Put(slot, &tile)
		drawn++
	}
	return drawn
}

// Return puts tiles back into the bag and reshuffles it
func (s *Service) Return(bag *model.TileBag, tiles ...model.Tile) {
	if len(tiles) == 0 {
		return
	}
	bag.Return(tiles...)
	shuffle(bag, s.random)
	s.logger.Debug("tiles returned to bag", slog.Int("count", len(tiles)), slog.Int("remaining", bag.Remaining()))
}

// shuffle is a Fisher-Yates shuffle
func shuffle(bag *model.TileBag, rnd random.Random) {
	for i := len(bag.Tiles) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		bag.Tiles[i], bag.Tiles[j] = bag.Tiles[j], bag.Tiles[i]
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBag(seed *int64) *model.TileBag
	Refill(rack *model.Rack, bag *model.TileBag) int
	Return(bag *model.TileBag, tiles ...model.Tile)
}

var _ ServiceInterface = (*Service)(nil)
