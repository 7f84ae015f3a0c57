package validator

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// Options tunes which words a move produces
type Options struct {
	// CrossWords also reports every perpendicular word of two or more
	// letters formed through a newly placed tile
	CrossWords bool
}

// RejectionError explains why a move is structurally invalid
type RejectionError struct {
	Reason error
	At     *model.Position // Offending cell, when there is one
}

func (e *RejectionError) Error() string {
	return e.Reason.Error()
}

func (e *RejectionError) Unwrap() error {
	return e.Reason
}

func reject(reason error, at *model.Position) error {
	return &RejectionError{Reason: reason, At: at}
}

// Validator checks that pending tiles form a legal placement and reads
// off the words they make. It never touches the dictionary.
type Validator struct {
	opts   Options
	logger *slog.Logger
}

// New creates a new Validator
func New(opts Options, logger *slog.Logger) *Validator {
	return &Validator{
		opts:   opts,
		logger: logger,
	}
}

// Validate applies the placement rules in order and returns the first
// failure, or the move describing the words formed.
func (v *Validator) Validate(board *model.Board, pending []model.Position, firstMove bool) (*model.Move, error) {
	if len(pending) == 0 {
		return nil, reject(model.ErrNoTilesPlaced, nil)
	}

	if firstMove && !slices.Contains(pending, model.Center) {
		return nil, reject(model.ErrMustCoverCenter, nil)
	}

	sameRow := lo.EveryBy(pending, func(p model.Position) bool { return p.Row == pending[0].Row })
	sameCol := lo.EveryBy(pending, func(p model.Position) bool { return p.Col == pending[0].Col })
	if !sameRow && !sameCol {
		return nil, reject(model.ErrNotStraightLine, nil)
	}

	horizontal := sameRow
	if len(pending) == 1 {
		horizontal = singleTileAxis(board, pending[0])
	}

	placed := slices.Clone(pending)
	slices.SortFunc(placed, func(a, b model.Position) int {
		if horizontal {
			return a.Col - b.Col
		}
		return a.Row - b.Row
	})

	first, last := placed[0], placed[len(placed)-1]
	for pos := first; pos != last; pos = pos.Step(horizontal, 1) {
		if board.IsEmpty(pos) {
			at := pos
			return nil, reject(model.ErrGapInWord, &at)
		}
	}

	if !firstMove && !touchesLocked(board, placed) {
		return nil, reject(model.ErrNotConnected, nil)
	}

	move := &model.Move{
		Horizontal: horizontal,
		Placed:     placed,
		Words:      []model.WordMatch{readWord(board, first, horizontal)},
	}

	if v.opts.CrossWords {
		for _, pos := range placed {
			cross := readWord(board, pos, !horizontal)
			if cross.Length >= 2 {
				move.Words = append(move.Words, cross)
			}
		}
	}

	v.logger.Debug("move validated",
		slog.Int("tiles", len(placed)),
		slog.Bool("horizontal", horizontal),
		slog.Any("words", lo.Map(move.Words, func(w model.WordMatch, _ int) string { return w.Word })),
	)
	return move, nil
}

// singleTileAxis picks the direction for a lone tile: horizontal if it has a
// left or right neighbour, vertical if it only has neighbours above or
// below, horizontal otherwise.
func singleTileAxis(board *model.Board, pos model.Position) bool {
	if !board.IsEmpty(pos.Step(true, -1)) || !board.IsEmpty(pos.Step(true, 1)) {
		return true
	}
	if !board.IsEmpty(pos.Step(false, -1)) || !board.IsEmpty(pos.Step(false, 1)) {
		return false
	}
	return true
}

func touchesLocked(board *model.Board, placed []model.Position) bool {
	return lo.SomeBy(placed, func(p model.Position) bool {
		return lo.SomeBy(p.Neighbours(), board.IsLocked)
	})
}

// readWord extends from pos in both directions along the axis to the
// maximal contiguous run of occupied cells
func readWord(board *model.Board, pos model.Position, horizontal bool) model.WordMatch {
	start := pos
	for !board.IsEmpty(start.Step(horizontal, -1)) {
		start = start.Step(horizontal, -1)
	}

	var sb strings.Builder
	length := 0
	for cur := start; !board.IsEmpty(cur); cur = cur.Step(horizontal, 1) {
		sb.WriteRune(board.Get(cur).Tile.Face())
		length++
	}

	return model.WordMatch{
		Word:       sb.String(),
		StartPos:   start,
		Horizontal: horizontal,
		Length:     length,
	}
}

// Interface for dependency injection
type ValidatorInterface interface {
	Validate(board *model.Board, pending []model.Position, firstMove bool) (*model.Move, error)
}

var _ ValidatorInterface = (*Validator)(nil)
