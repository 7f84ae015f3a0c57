package game

import (
	"fmt"
	"strings"

	"github.com/mcoot/scrabblegame-go/internal/model"
)

// WordRejectionError lists the words the dictionary did not accept
type WordRejectionError struct {
	Words []string
}

func (e *WordRejectionError) Error() string {
	return fmt.Sprintf("Not a valid word: %s", strings.Join(e.Words, ", "))
}

func (e *WordRejectionError) Unwrap() error {
	return model.ErrInvalidWord
}
