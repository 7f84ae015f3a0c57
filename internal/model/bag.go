package model

// TileBag is the pool of undrawn tiles. Tiles are kept shuffled so
// drawing from the end is a uniform draw.
type TileBag struct {
	Tiles []Tile
}

// Draw removes and returns one tile, or false if the bag is empty
func (b *TileBag) Draw() (Tile, bool) {
	if len(b.Tiles) == 0 {
		return Tile{}, false
	}
	last := len(b.Tiles) - 1
	t := b.Tiles[last]
	b.Tiles = b.Tiles[:last]
	return t, true
}

// Remaining returns the number of undrawn tiles
func (b *TileBag) Remaining() int {
	return len(b.Tiles)
}

// Return puts tiles back in the bag. Callers reshuffle afterwards.
func (b *TileBag) Return(tiles ...Tile) {
	for _, t := range tiles {
		if t.IsBlank() {
			t.Assigned = 0
		}
		b.Tiles = append(b.Tiles, t)
	}
}
