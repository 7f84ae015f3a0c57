package model

// TileID uniquely identifies a physical tile within a game
type TileID int

// BlankLetter is the letter printed on a blank tile
const BlankLetter = '?'

// TileStatus describes the lifecycle stage of a tile on the board
type TileStatus string

const (
	TileStatusPending TileStatus = "pending" // Placed this turn, not yet submitted
	TileStatusLocked  TileStatus = "locked"  // Part of an accepted move
)

// Tile is a single letter tile
type Tile struct {
	ID       TileID
	Letter   rune // A-Z, or BlankLetter
	Points   int
	Assigned rune // Letter a blank stands for once placed, 0 otherwise
}

// IsBlank returns true for the two zero-point wildcard tiles
func (t Tile) IsBlank() bool {
	return t.Letter == BlankLetter
}

// Face returns the letter the tile spells when read on the board
func (t Tile) Face() rune {
	if t.IsBlank() {
		return t.Assigned
	}
	return t.Letter
}

// LetterPoints is the face value of each letter
var LetterPoints = map[rune]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
	BlankLetter: 0,
}

// LetterDistribution is how many of each tile a fresh bag holds
var LetterDistribution = map[rune]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
	'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
	'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1,
	BlankLetter: 2,
}

// TotalTiles is the size of a full tile set
const TotalTiles = 100

// IsLetter reports whether r is an uppercase A-Z letter
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
