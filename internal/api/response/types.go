package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// Tile represents a tile in API responses
type Tile struct {
	ID       int    `json:"id"`
	Letter   string `json:"letter"`
	Points   int    `json:"points"`
	Blank    bool   `json:"blank,omitempty"`
	Assigned string `json:"assigned,omitempty"`
}

// TileFromModel converts a model.Tile
func TileFromModel(t model.Tile) Tile {
	out := Tile{
		ID:     int(t.ID),
		Letter: string(t.Letter),
		Points: t.Points,
		Blank:  t.IsBlank(),
	}
	if t.Assigned != 0 {
		out.Assigned = string(t.Assigned)
	}
	return out
}

// RackSlot is one slot of a rack; Tile is nil when the slot is empty
type RackSlot struct {
	Slot   int   `json:"slot"`
	Tile   *Tile `json:"tile"`
	Marked bool  `json:"marked,omitempty"`
}

// Player represents a seat in API responses
type Player struct {
	Index  int        `json:"index"`
	Name   string     `json:"name"`
	Score  int        `json:"score"`
	Rack   []RackSlot `json:"rack"`
	Active bool       `json:"active"`
}

// Cell is an occupied board square
type Cell struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Tile    Tile   `json:"tile"`
	Status  string `json:"status"`
	Premium string `json:"premium,omitempty"`
}

// Word is a word formed by a move
type Word struct {
	Word       string `json:"word"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Horizontal bool   `json:"horizontal"`
	Score      int    `json:"score"`
}

// WordFromModel converts a model.WordMatch
func WordFromModel(w model.WordMatch) Word {
	return Word{
		Word:       w.Word,
		Row:        w.StartPos.Row,
		Col:        w.StartPos.Col,
		Horizontal: w.Horizontal,
		Score:      w.Score,
	}
}

// Move is an entry of the game history
type Move struct {
	Kind        string    `json:"kind"`
	TurnNumber  int       `json:"turn_number"`
	PlayerIndex int       `json:"player_index"`
	Words       []Word    `json:"words,omitempty"`
	Score       int       `json:"score"`
	Bingo       bool      `json:"bingo,omitempty"`
	Exchanged   int       `json:"exchanged,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// GameState is the full state of a game as a client renders it
type GameState struct {
	ID           string    `json:"id"`
	Phase        string    `json:"phase"`
	CurrentTurn  int       `json:"current_turn"`
	TurnNumber   int       `json:"turn_number"`
	FirstMove    bool      `json:"first_move"`
	BagRemaining int       `json:"bag_remaining"`
	Players      []Player  `json:"players"`
	Board        []Cell    `json:"board"`
	Pending      []Cell    `json:"pending"`
	History      []Move    `json:"history"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GameStateFromModel converts a model.Game
func GameStateFromModel(g *model.Game) GameState {
	players := make([]Player, len(g.Players))
	for i, p := range g.Players {
		rack := make([]RackSlot, len(p.Rack.Slots))
		for slot, t := range p.Rack.Slots {
			rack[slot] = RackSlot{Slot: slot}
			if t != nil {
				tile := TileFromModel(*t)
				rack[slot].Tile = &tile
				rack[slot].Marked = g.IsMarked(t.ID)
			}
		}
		players[i] = Player{
			Index:  i,
			Name:   p.Name,
			Score:  p.Score,
			Rack:   rack,
			Active: i == g.CurrentTurn,
		}
	}

	cellAt := func(pos model.Position) Cell {
		c := g.Board.Get(pos)
		return Cell{
			Row:     pos.Row,
			Col:     pos.Col,
			Tile:    TileFromModel(*c.Tile),
			Status:  string(c.Status),
			Premium: string(model.PremiumAt(pos)),
		}
	}

	// Pending tiles are listed in placement order
	pending := lo.Map(g.Staging, func(sp model.StagedPlacement, _ int) Cell {
		return cellAt(sp.Position)
	})

	history := lo.Map(g.History, func(m model.MoveRecord, _ int) Move {
		return Move{
			Kind:        string(m.Kind),
			TurnNumber:  m.TurnNumber,
			PlayerIndex: m.PlayerIndex,
			Words:       lo.Map(m.Words, func(w model.WordMatch, _ int) Word { return WordFromModel(w) }),
			Score:       m.Score,
			Bingo:       m.Bingo,
			Exchanged:   m.Exchanged,
			Timestamp:   m.Timestamp,
		}
	})

	return GameState{
		ID:           string(g.ID),
		Phase:        string(g.Phase),
		CurrentTurn:  g.CurrentTurn,
		TurnNumber:   g.TurnNumber,
		FirstMove:    g.FirstMove,
		BagRemaining: g.Bag.Remaining(),
		Players:      players,
		Board:        lo.Map(g.Board.Positions(model.TileStatusLocked), func(pos model.Position, _ int) Cell { return cellAt(pos) }),
		Pending:      pending,
		History:      history,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// Score is the breakdown of a move's points
type Score struct {
	Words          []Word `json:"words"`
	Base           int    `json:"base"`
	WordMultiplier int    `json:"word_multiplier"`
	Bonus          int    `json:"bonus"`
	Total          int    `json:"total"`
}

// ScoreFromModel converts a model.MoveScore
func ScoreFromModel(s model.MoveScore) Score {
	return Score{
		Words:          lo.Map(s.Words, func(w model.WordMatch, _ int) Word { return WordFromModel(w) }),
		Base:           s.Base,
		WordMultiplier: s.WordMultiplier,
		Bonus:          s.Bonus,
		Total:          s.Total,
	}
}

// SubmitResponse is the result of a submit
type SubmitResponse struct {
	Ignored     bool       `json:"ignored"`
	PlayerIndex int        `json:"player_index"`
	Score       *Score     `json:"score,omitempty"`
	TilesDrawn  int        `json:"tiles_drawn"`
	Finished    bool       `json:"finished"`
	Game        *GameState `json:"game,omitempty"`
}

// SubmitResponseFromResult converts a game.SubmitResult
func SubmitResponseFromResult(r *game.SubmitResult) SubmitResponse {
	out := SubmitResponse{
		Ignored:     r.Ignored,
		PlayerIndex: r.PlayerIndex,
		TilesDrawn:  r.TilesDrawn,
		Finished:    r.Finished,
	}
	if r.Ignored {
		return out
	}
	score := ScoreFromModel(r.Score)
	out.Score = &score
	if r.Game != nil {
		state := GameStateFromModel(r.Game)
		out.Game = &state
	}
	return out
}

// ExchangeResponse is the result of committing an exchange
type ExchangeResponse struct {
	Cancelled bool      `json:"cancelled"`
	Exchanged int       `json:"exchanged"`
	Drawn     int       `json:"drawn"`
	Game      GameState `json:"game"`
}

// ExchangeResponseFromResult converts a game.ExchangeResult
func ExchangeResponseFromResult(r *game.ExchangeResult) ExchangeResponse {
	return ExchangeResponse{
		Cancelled: r.Cancelled,
		Exchanged: r.Exchanged,
		Drawn:     r.Drawn,
		Game:      GameStateFromModel(r.Game),
	}
}

// Standing is one line of the scoreboard
type Standing struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Summary is the scoreboard of a game
type Summary struct {
	GameID    string     `json:"game_id"`
	Phase     string     `json:"phase"`
	Standings []Standing `json:"standings"`
	Winner    *int       `json:"winner"`
}

// SummaryFromModel converts a model.GameSummary
func SummaryFromModel(s *model.GameSummary) Summary {
	out := Summary{
		GameID: string(s.GameID),
		Phase:  string(s.Phase),
		Standings: lo.Map(s.Standings, func(p model.PlayerScore, _ int) Standing {
			return Standing{Index: p.Index, Name: p.Name, Score: p.Score}
		}),
	}
	if s.HasWinner {
		winner := s.Winner
		out.Winner = &winner
	}
	return out
}

// GameList lists the stored games
type GameList struct {
	Games []string `json:"games"`
}

// PremiumSquare is a board square that carries a multiplier
type PremiumSquare struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Premium string `json:"premium"`
}

// Premiums lists the multiplier squares of the board
type Premiums struct {
	Size    int             `json:"size"`
	Squares []PremiumSquare `json:"squares"`
}

// PremiumsFromModel converts the board layout
func PremiumsFromModel(squares []model.PremiumSquare) Premiums {
	return Premiums{
		Size: model.BoardSize,
		Squares: lo.Map(squares, func(sq model.PremiumSquare, _ int) PremiumSquare {
			return PremiumSquare{Row: sq.Position.Row, Col: sq.Position.Col, Premium: string(sq.Premium)}
		}),
	}
}

// WordValidation is the dictionary oracle's answer
type WordValidation struct {
	Valid bool   `json:"valid"`
	Word  string `json:"word"`
}

// Health is the health check response
type Health struct {
	Status     string `json:"status"`
	Dictionary int    `json:"dictionary_words"`
}
