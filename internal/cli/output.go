package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GameState:
		o.printGameState(v)
	case response.SubmitResponse:
		o.printSubmit(v)
	case response.ExchangeResponse:
		o.printExchange(v)
	case response.Summary:
		o.printSummary(v)
	case response.GameList:
		o.printGameList(v)
	case response.WordValidation:
		o.printWord(v)
	case response.Premiums:
		o.printPremiums(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		fmt.Fprintf(o.w, "Dictionary: %d words\n", v.Dictionary)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) {
	fmt.Fprintf(o.w, "Game: %s\n", g.ID)
	fmt.Fprintf(o.w, "Phase: %s\n", g.Phase)
	fmt.Fprintf(o.w, "Turn: %d\n", g.TurnNumber)
	fmt.Fprintf(o.w, "Bag: %d tiles\n", g.BagRemaining)
	fmt.Fprintln(o.w)

	o.printBoard(g)
	fmt.Fprintln(o.w)

	for _, p := range g.Players {
		marker := "  "
		if p.Active {
			marker = "> "
		}
		fmt.Fprintf(o.w, "%s%s: %d points\n", marker, p.Name, p.Score)
		if p.Active {
			fmt.Fprintf(o.w, "  Rack: %s\n", formatRack(p.Rack))
		}
	}

	if len(g.History) > 0 {
		last := g.History[len(g.History)-1]
		fmt.Fprintf(o.w, "\nLast move: %s\n", formatMove(g, last))
	}
}

// formatRack lists rack tiles as id:letter(points); * marks exchange picks
func formatRack(rack []response.RackSlot) string {
	parts := lo.FilterMap(rack, func(s response.RackSlot, _ int) (string, bool) {
		if s.Tile == nil {
			return "", false
		}
		mark := ""
		if s.Marked {
			mark = "*"
		}
		return fmt.Sprintf("%d:%s(%d)%s", s.Tile.ID, s.Tile.Letter, s.Tile.Points, mark), true
	})
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

func formatMove(g response.GameState, m response.Move) string {
	name := fmt.Sprintf("player %d", m.PlayerIndex+1)
	if m.PlayerIndex < len(g.Players) {
		name = g.Players[m.PlayerIndex].Name
	}
	switch m.Kind {
	case "play":
		words := lo.Map(m.Words, func(w response.Word, _ int) string { return w.Word })
		return fmt.Sprintf("%s played %s for %d", name, strings.Join(words, ", "), m.Score)
	case "exchange":
		return fmt.Sprintf("%s exchanged %d tiles", name, m.Exchanged)
	default:
		return fmt.Sprintf("%s reset the board", name)
	}
}

// premiumSymbols marks empty premium squares
var premiumSymbols = map[model.Premium]string{
	model.PremiumTripleWord:   "=",
	model.PremiumDoubleWord:   "-",
	model.PremiumTripleLetter: "\"",
	model.PremiumDoubleLetter: "'",
}

// cellText renders a tile: blanks in lower case, pending tiles in brackets
func cellText(c response.Cell) string {
	letter := c.Tile.Letter
	if c.Tile.Blank {
		letter = strings.ToLower(c.Tile.Assigned)
	}
	if c.Status == string(model.TileStatusPending) {
		return "[" + letter + "]"
	}
	return " " + letter + " "
}

func (o *Output) printBoard(g response.GameState) {
	cells := make(map[model.Position]string)
	for _, c := range append(g.Board, g.Pending...) {
		cells[model.Position{Row: c.Row, Col: c.Col}] = cellText(c)
	}

	// Print column headers
	fmt.Fprint(o.w, "    ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(o.w, "%2d ", col)
	}
	fmt.Fprintln(o.w)

	border := "   +" + strings.Repeat("---", model.BoardSize) + "+"
	fmt.Fprintln(o.w, border)

	for row := 0; row < model.BoardSize; row++ {
		fmt.Fprintf(o.w, "%2d |", row)
		for col := 0; col < model.BoardSize; col++ {
			pos := model.Position{Row: row, Col: col}
			if text, ok := cells[pos]; ok {
				fmt.Fprint(o.w, text)
				continue
			}
			symbol, ok := premiumSymbols[model.PremiumAt(pos)]
			switch {
			case pos == model.Center:
				symbol = "*"
			case !ok:
				symbol = "."
			}
			fmt.Fprintf(o.w, " %s ", symbol)
		}
		fmt.Fprintln(o.w, "|")
	}

	fmt.Fprintln(o.w, border)
}

func (o *Output) printSubmit(r response.SubmitResponse) {
	if r.Ignored {
		fmt.Fprintln(o.w, "Another submission is in progress; ignored")
		return
	}

	if r.Score != nil {
		for _, w := range r.Score.Words {
			fmt.Fprintf(o.w, "%s: %d\n", w.Word, w.Score)
		}
		if r.Score.Bonus > 0 {
			fmt.Fprintf(o.w, "Bingo bonus: %d\n", r.Score.Bonus)
		}
		fmt.Fprintf(o.w, "Scored %d points, drew %d tiles\n", r.Score.Total, r.TilesDrawn)
	}
	if r.Finished {
		fmt.Fprintln(o.w, "Game over!")
	}
	if r.Game != nil {
		fmt.Fprintln(o.w)
		o.printGameState(*r.Game)
	}
}

func (o *Output) printExchange(r response.ExchangeResponse) {
	if r.Cancelled {
		fmt.Fprintln(o.w, "Nothing marked; exchange cancelled")
	} else {
		fmt.Fprintf(o.w, "Exchanged %d tiles, drew %d\n", r.Exchanged, r.Drawn)
	}
	fmt.Fprintln(o.w)
	o.printGameState(r.Game)
}

func (o *Output) printSummary(s response.Summary) {
	fmt.Fprintf(o.w, "Game: %s (%s)\n", s.GameID, s.Phase)
	for i, p := range s.Standings {
		fmt.Fprintf(o.w, "  %d. %s: %d points\n", i+1, p.Name, p.Score)
	}
	if s.Winner != nil {
		winner, ok := lo.Find(s.Standings, func(p response.Standing) bool { return p.Index == *s.Winner })
		if ok {
			fmt.Fprintf(o.w, "Leader: %s\n", winner.Name)
		}
	} else {
		fmt.Fprintln(o.w, "Leader: tied")
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, id := range l.Games {
		fmt.Fprintln(o.w, id)
	}
}

func (o *Output) printWord(v response.WordValidation) {
	if v.Valid {
		fmt.Fprintf(o.w, "%s is a valid word\n", v.Word)
	} else {
		fmt.Fprintf(o.w, "%s is not a valid word\n", v.Word)
	}
}

func (o *Output) printPremiums(p response.Premiums) {
	counts := lo.CountValuesBy(p.Squares, func(sq response.PremiumSquare) string { return sq.Premium })
	for _, premium := range []string{"TW", "DW", "TL", "DL"} {
		fmt.Fprintf(o.w, "%s: %d squares\n", premium, counts[premium])
	}
}
