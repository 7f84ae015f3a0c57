package model

// BoardSize is the dimension of the square board
const BoardSize = 15

// Center is the star cell every first move must cover
var Center = Position{Row: 7, Col: 7}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Neighbours returns the four orthogonally adjacent positions, which may be off the board
func (p Position) Neighbours() []Position {
	return []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
}

// Step returns the position offset by n cells along the given axis
func (p Position) Step(horizontal bool, n int) Position {
	if horizontal {
		return Position{Row: p.Row, Col: p.Col + n}
	}
	return Position{Row: p.Row + n, Col: p.Col}
}

// Cell is a single square of the board
type Cell struct {
	Tile   *Tile      // nil when empty
	Status TileStatus // Meaningful only when Tile is set
}

// Board is the shared 15x15 grid
type Board struct {
	Size  int
	Cells [][]Cell // Row-major: Cells[row][col]
}

// NewBoard creates an empty board
func NewBoard() *Board {
	cells := make([][]Cell, BoardSize)
	for i := range cells {
		cells[i] = make([]Cell, BoardSize)
	}
	return &Board{
		Size:  BoardSize,
		Cells: cells,
	}
}

// Get returns the cell at the given position, or an empty cell if out of bounds
func (b *Board) Get(pos Position) Cell {
	if !b.IsValidPosition(pos) {
		return Cell{}
	}
	return b.Cells[pos.Row][pos.Col]
}

// Set places a tile at the given position with the given status
func (b *Board) Set(pos Position, tile *Tile, status TileStatus) {
	if b.IsValidPosition(pos) {
		b.Cells[pos.Row][pos.Col] = Cell{Tile: tile, Status: status}
	}
}

// Clear empties the cell at pos and returns whatever tile was there
func (b *Board) Clear(pos Position) *Tile {
	if !b.IsValidPosition(pos) {
		return nil
	}
	tile := b.Cells[pos.Row][pos.Col].Tile
	b.Cells[pos.Row][pos.Col] = Cell{}
	return tile
}

// IsEmpty returns true if the cell at the given position holds no tile
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos).Tile == nil
}

// IsLocked returns true if the cell holds a tile from an accepted move
func (b *Board) IsLocked(pos Position) bool {
	cell := b.Get(pos)
	return cell.Tile != nil && cell.Status == TileStatusLocked
}

// IsValidPosition returns true if the position is within bounds
func (b *Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// Positions returns every occupied position whose tile has the given status, in row-major order
func (b *Board) Positions(status TileStatus) []Position {
	var out []Position
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			cell := b.Cells[row][col]
			if cell.Tile != nil && cell.Status == status {
				out = append(out, Position{Row: row, Col: col})
			}
		}
	}
	return out
}

// OccupiedCount returns the number of cells holding a tile
func (b *Board) OccupiedCount() int {
	count := 0
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			if b.Cells[row][col].Tile != nil {
				count++
			}
		}
	}
	return count
}

// WordMatch is a word read off the board as part of a move
type WordMatch struct {
	Word       string
	StartPos   Position
	Horizontal bool // true = left-to-right, false = top-to-bottom
	Length     int
	Score      int // Filled in by scoring
}

// Positions returns every cell the word covers
func (w WordMatch) Positions() []Position {
	out := make([]Position, w.Length)
	for i := range w.Length {
		out[i] = w.StartPos.Step(w.Horizontal, i)
	}
	return out
}

// Move is the structurally valid result of validating the pending tiles
type Move struct {
	Horizontal bool
	Placed     []Position  // Pending positions, in reading order
	Words      []WordMatch // Main word first, then any cross-words
}

// BingoBonus is awarded for playing every rack tile in one move
const BingoBonus = 50

// MoveScore is the scoring breakdown of an accepted move
type MoveScore struct {
	Words          []WordMatch // Each with its own Score
	Base           int         // Main word letter sum after letter multipliers
	WordMultiplier int         // Main word product of word multipliers
	Bonus          int
	Total          int
}
