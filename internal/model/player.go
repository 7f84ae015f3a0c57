package model

// RackSize is the number of slots each player's rack holds
const RackSize = 7

// Rack holds a player's private tiles. Empty slots are nil.
type Rack struct {
	Slots []*Tile
}

// NewRack creates a rack with every slot empty
func NewRack() Rack {
	return Rack{Slots: make([]*Tile, RackSize)}
}

// Find returns the slot holding the tile with the given ID
func (r *Rack) Find(id TileID) (int, bool) {
	for i, t := range r.Slots {
		if t != nil && t.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Take empties a slot and returns its tile
func (r *Rack) Take(slot int) *Tile {
	if slot < 0 || slot >= len(r.Slots) {
		return nil
	}
	t := r.Slots[slot]
	r.Slots[slot] = nil
	return t
}

// Put places a tile into the given slot, returning false if the slot is taken
func (r *Rack) Put(slot int, tile *Tile) bool {
	if slot < 0 || slot >= len(r.Slots) || r.Slots[slot] != nil {
		return false
	}
	r.Slots[slot] = tile
	return true
}

// EmptySlots returns the indexes of every empty slot, lowest first
func (r *Rack) EmptySlots() []int {
	var out []int
	for i, t := range r.Slots {
		if t == nil {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of tiles held
func (r *Rack) Count() int {
	return len(r.Slots) - len(r.EmptySlots())
}

// Tiles returns a copy of every held tile in slot order
func (r *Rack) Tiles() []Tile {
	var out []Tile
	for _, t := range r.Slots {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

// Player is a participant seated at a game
type Player struct {
	Name  string
	Score int
	Rack  Rack
}

// PlayerScore is one line of the scoreboard
type PlayerScore struct {
	Index int
	Name  string
	Score int
}
