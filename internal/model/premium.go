package model

// Premium is the multiplier printed on a board square
type Premium string

const (
	PremiumNone         Premium = ""
	PremiumDoubleLetter Premium = "DL"
	PremiumTripleLetter Premium = "TL"
	PremiumDoubleWord   Premium = "DW"
	PremiumTripleWord   Premium = "TW"
)

// LetterMultiplier returns the factor applied to a tile placed on this square
func (p Premium) LetterMultiplier() int {
	switch p {
	case PremiumDoubleLetter:
		return 2
	case PremiumTripleLetter:
		return 3
	default:
		return 1
	}
}

// WordMultiplier returns the factor applied to a word covering this square
func (p Premium) WordMultiplier() int {
	switch p {
	case PremiumDoubleWord:
		return 2
	case PremiumTripleWord:
		return 3
	default:
		return 1
	}
}

// premiumLayout is the standard board. T=TW D=DW t=TL d=DL.
// The center star carries no multiplier.
var premiumLayout = [BoardSize]string{
	"T..d...T...d..T",
	".D...t...t...D.",
	"..D...d.d...D..",
	"d..D...d...D..d",
	"....D.....D....",
	".t...t...t...t.",
	"..d...d.d...d..",
	"T..d.......d..T",
	"..d...d.d...d..",
	".t...t...t...t.",
	"....D.....D....",
	"d..D...d...D..d",
	"..D...d.d...D..",
	".D...t...t...D.",
	"T..d...T...d..T",
}

// PremiumAt returns the multiplier printed at pos
func PremiumAt(pos Position) Premium {
	if pos.Row < 0 || pos.Row >= BoardSize || pos.Col < 0 || pos.Col >= BoardSize {
		return PremiumNone
	}
	switch premiumLayout[pos.Row][pos.Col] {
	case 'T':
		return PremiumTripleWord
	case 'D':
		return PremiumDoubleWord
	case 't':
		return PremiumTripleLetter
	case 'd':
		return PremiumDoubleLetter
	default:
		return PremiumNone
	}
}

// PremiumSquare pairs a position with its multiplier
type PremiumSquare struct {
	Position Position
	Premium  Premium
}

// PremiumSquares lists every square that carries a multiplier
func PremiumSquares() []PremiumSquare {
	var out []PremiumSquare
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Position{Row: row, Col: col}
			if p := PremiumAt(pos); p != PremiumNone {
				out = append(out, PremiumSquare{Position: pos, Premium: p})
			}
		}
	}
	return out
}
