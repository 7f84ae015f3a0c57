package testutil

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// NewGame builds an unshuffled game with empty racks and a full bag
func NewGame(players int) *model.Game {
	g := &model.Game{
		ID:         "test-game",
		Phase:      model.GamePhaseIdle,
		TurnNumber: 1,
		FirstMove:  true,
		Board:      model.NewBoard(),
		Bag:        &model.TileBag{},
	}
	for i := range players {
		g.Players = append(g.Players, model.Player{
			Name: fmt.Sprintf("Player %d", i+1),
			Rack: model.NewRack(),
		})
	}

	letters := lo.Keys(model.LetterDistribution)
	slices.Sort(letters)
	for _, letter := range letters {
		for range model.LetterDistribution[letter] {
			g.Bag.Tiles = append(g.Bag.Tiles, model.Tile{
				ID:     model.TileID(len(g.Bag.Tiles)),
				Letter: letter,
				Points: model.LetterPoints[letter],
			})
		}
	}
	return g
}

// takeFromBag removes the first tile with the given letter from the bag
func takeFromBag(g *model.Game, letter rune) model.Tile {
	idx := slices.IndexFunc(g.Bag.Tiles, func(t model.Tile) bool { return t.Letter == letter })
	if idx < 0 {
		panic(fmt.Sprintf("no %c left in bag", letter))
	}
	tile := g.Bag.Tiles[idx]
	g.Bag.Tiles = slices.Delete(g.Bag.Tiles, idx, idx+1)
	return tile
}

// GiveTiles replaces a player's rack with tiles spelling letters, taken
// from the bag so tile accounting stays intact. Use '?' for a blank.
// Returns the tile IDs in slot order.
func GiveTiles(g *model.Game, player int, letters string) []model.TileID {
	rack := &g.Players[player].Rack
	for slot, t := range rack.Slots {
		if t != nil {
			g.Bag.Tiles = append(g.Bag.Tiles, *t)
			rack.Slots[slot] = nil
		}
	}

	var ids []model.TileID
	for slot, letter := range []rune(letters) {
		tile := takeFromBag(g, letter)
		rack.Put(slot, &tile)
		ids = append(ids, tile.ID)
	}
	return ids
}

// LockWord lays a word onto the board as if it had already been played.
// Cells already holding a tile are skipped.
func LockWord(g *model.Game, start model.Position, horizontal bool, word string) {
	for i, letter := range []rune(word) {
		pos := start.Step(horizontal, i)
		if !g.Board.IsEmpty(pos) {
			continue
		}
		tile := takeFromBag(g, letter)
		g.Board.Set(pos, &tile, model.TileStatusLocked)
	}
	g.FirstMove = false
}

// Pos is shorthand for a board position
func Pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}
