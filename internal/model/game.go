package model

import (
	"fmt"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// GamePhase is the coarse state of the turn in progress
type GamePhase string

const (
	GamePhaseIdle         GamePhase = "idle"          // Active player has nothing staged
	GamePhaseTilesPending GamePhase = "tiles_pending" // One or more tiles staged on the board
	GamePhaseExchanging   GamePhase = "exchanging"    // Active player is marking tiles to swap
	GamePhaseFinished     GamePhase = "finished"      // Bag and a rack ran dry
)

// MaxPlayers is the number of seats at a table
const MaxPlayers = 4

// StagedPlacement records where a pending tile came from so it can go back
type StagedPlacement struct {
	TileID   TileID
	RackSlot int
	Position Position
}

// Game is a single game of Scrabble
type Game struct {
	ID    GameID
	Phase GamePhase

	Players     []Player
	CurrentTurn int // Index into Players
	TurnNumber  int // Starts at 1
	FirstMove   bool

	Board *Board
	Bag   *TileBag

	// Placement order for undo
	Staging []StagedPlacement

	// Tiles marked for exchange, in marking order
	ExchangeMarked []TileID

	History []MoveRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActivePlayer returns the player whose turn it is
func (g *Game) ActivePlayer() *Player {
	return &g.Players[g.CurrentTurn]
}

// AwardScore adds points to the active player's score. Scores never go down.
func (g *Game) AwardScore(points int) {
	if points <= 0 {
		return
	}
	g.ActivePlayer().Score += points
}

// AdvanceTurn hands the turn to the next seat
func (g *Game) AdvanceTurn() {
	g.CurrentTurn = (g.CurrentTurn + 1) % len(g.Players)
	g.TurnNumber++
	g.ExchangeMarked = nil
	if g.Phase != GamePhaseFinished {
		g.Phase = GamePhaseIdle
	}
}

// ResetToFirstMove returns the game to the state where the next play must cover the center
func (g *Game) ResetToFirstMove() {
	g.FirstMove = true
}

// IsFinished returns true once the game has ended
func (g *Game) IsFinished() bool {
	return g.Phase == GamePhaseFinished
}

// GameSummary is the scoreboard with the current leader
type GameSummary struct {
	GameID    GameID
	Phase     GamePhase
	Standings []PlayerScore // Highest score first
	Winner    int           // Seat index, valid when HasWinner
	HasWinner bool          // False on a tie
}

// IsMarked returns true if the tile is marked for exchange
func (g *Game) IsMarked(id TileID) bool {
	for _, m := range g.ExchangeMarked {
		if m == id {
			return true
		}
	}
	return false
}

// Scores returns the scoreboard in seat order
func (g *Game) Scores() []PlayerScore {
	out := make([]PlayerScore, len(g.Players))
	for i, p := range g.Players {
		out[i] = PlayerScore{Index: i, Name: p.Name, Score: p.Score}
	}
	return out
}

// CheckTileOwnership verifies every tile is in exactly one of the bag, a rack or the board
func (g *Game) CheckTileOwnership() error {
	seen := make(map[TileID]string, TotalTiles)
	claim := func(id TileID, where string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("%w: tile %d in both %s and %s", ErrTileAccounting, id, prev, where)
		}
		seen[id] = where
		return nil
	}

	for _, t := range g.Bag.Tiles {
		if err := claim(t.ID, "bag"); err != nil {
			return err
		}
	}
	for i := range g.Players {
		for _, t := range g.Players[i].Rack.Slots {
			if t == nil {
				continue
			}
			if err := claim(t.ID, fmt.Sprintf("rack %d", i)); err != nil {
				return err
			}
		}
	}
	for row := range g.Board.Cells {
		for _, cell := range g.Board.Cells[row] {
			if cell.Tile == nil {
				continue
			}
			if err := claim(cell.Tile.ID, "board"); err != nil {
				return err
			}
		}
	}

	if len(seen) != TotalTiles {
		return fmt.Errorf("%w: %d tiles accounted for, want %d", ErrTileAccounting, len(seen), TotalTiles)
	}
	return nil
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g

	c.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		c.Players[i] = p
		c.Players[i].Rack = Rack{Slots: make([]*Tile, len(p.Rack.Slots))}
		for j, t := range p.Rack.Slots {
			if t != nil {
				tile := *t
				c.Players[i].Rack.Slots[j] = &tile
			}
		}
	}

	if g.Board != nil {
		c.Board = &Board{Size: g.Board.Size, Cells: make([][]Cell, len(g.Board.Cells))}
		for row := range g.Board.Cells {
			c.Board.Cells[row] = make([]Cell, len(g.Board.Cells[row]))
			for col, cell := range g.Board.Cells[row] {
				if cell.Tile != nil {
					tile := *cell.Tile
					cell.Tile = &tile
				}
				c.Board.Cells[row][col] = cell
			}
		}
	}

	if g.Bag != nil {
		c.Bag = &TileBag{Tiles: append([]Tile(nil), g.Bag.Tiles...)}
	}

	c.Staging = append([]StagedPlacement(nil), g.Staging...)
	c.ExchangeMarked = append([]TileID(nil), g.ExchangeMarked...)
	c.History = append([]MoveRecord(nil), g.History...)
	return &c
}
