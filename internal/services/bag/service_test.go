package bag

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabblegame-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabblegame-go/internal/dependencies/random"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(random.New(), testutil.NopLogger())
}

func letters(tiles []model.Tile) []rune {
	return lo.Map(tiles, func(t model.Tile, _ int) rune { return t.Letter })
}

func (s *ServiceSuite) TestNewBagHasFullDistribution() {
	bag := s.service.NewBag(nil)
	s.Equal(model.TotalTiles, bag.Remaining())

	counts := lo.CountValues(letters(bag.Tiles))
	for letter, want := range model.LetterDistribution {
		s.Equal(want, counts[letter], "letter %c", letter)
	}

	for _, t := range bag.Tiles {
		s.Equal(model.LetterPoints[t.Letter], t.Points)
	}
	s.Len(lo.UniqBy(bag.Tiles, func(t model.Tile) model.TileID { return t.ID }), model.TotalTiles)
}

func (s *ServiceSuite) TestDrawEmptiesBag() {
	bag := s.service.NewBag(nil)
	for range model.TotalTiles {
		_, ok := bag.Draw()
		s.Require().True(ok)
	}
	_, ok := bag.Draw()
	s.False(ok)
	s.Equal(0, bag.Remaining())
}

func (s *ServiceSuite) TestSeededBagsAreReproducible() {
	seed := int64(1234)
	a := s.service.NewBag(&seed)
	b := s.service.NewBag(&seed)
	s.Equal(a.Tiles, b.Tiles)

	other := int64(99)
	c := s.service.NewBag(&other)
	s.NotEqual(letters(a.Tiles), letters(c.Tiles))
}

func (s *ServiceSuite) TestRefillFillsEmptySlots() {
	bag := s.service.NewBag(nil)
	rack := model.NewRack()
	rack.Put(2, &model.Tile{ID: 500, Letter: 'A'})

	drawn := s.service.Refill(&rack, bag)
	s.Equal(6, drawn)
	s.Equal(7, rack.Count())
	s.Equal(model.TileID(500), rack.Slots[2].ID)
	s.Equal(model.TotalTiles-6, bag.Remaining())
}

func (s *ServiceSuite) TestRefillStopsWhenBagRunsOut() {
	bag := &model.TileBag{Tiles: []model.Tile{{ID: 1, Letter: 'A'}, {ID: 2, Letter: 'B'}}}
	rack := model.NewRack()

	drawn := s.service.Refill(&rack, bag)
	s.Equal(2, drawn)
	s.Equal(2, rack.Count())
	s.NotNil(rack.Slots[0])
	s.NotNil(rack.Slots[1])
	s.Nil(rack.Slots[2])
}

func (s *ServiceSuite) TestDrawIntoOnlyFillsGivenSlots() {
	bag := s.service.NewBag(nil)
	rack := model.NewRack()
	rack.Put(0, &model.Tile{ID: 500, Letter: 'A'})

	drawn := s.service.DrawInto(&rack, bag, []int{0, 3})
	s.Equal(1, drawn)
	s.Equal(2, rack.Count())
	s.Equal(model.TileID(500), rack.Slots[0].ID)
	s.NotNil(rack.Slots[3])
	s.Equal(model.TotalTiles-1, bag.Remaining())
}

func (s *ServiceSuite) TestReturnShufflesBackIn() {
	rnd := mocks.NewMockRandom()
	svc := New(rnd, testutil.NopLogger())
	bag := &model.TileBag{Tiles: []model.Tile{{ID: 1, Letter: 'A'}, {ID: 2, Letter: 'B'}}}

	// Fisher-Yates over 3 tiles asks for j in [0,3) then [0,2)
	rnd.QueueIntn(0, 0)
	svc.Return(bag, model.Tile{ID: 3, Letter: model.BlankLetter, Assigned: 'X'})

	s.Equal(3, bag.Remaining())
	s.Equal([]model.TileID{2, 3, 1}, lo.Map(bag.Tiles, func(t model.Tile, _ int) model.TileID { return t.ID }))
	blank, _ := lo.Find(bag.Tiles, func(t model.Tile) bool { return t.IsBlank() })
	s.Equal(rune(0), blank.Assigned)
}
