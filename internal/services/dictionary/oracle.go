package dictionary

import "context"

// Oracle answers whether a word is acceptable. An error means the oracle
// could not give an answer, not that the word is invalid.
type Oracle interface {
	Lookup(ctx context.Context, word string) (bool, error)
}

// OracleFunc adapts a function to the Oracle interface
type OracleFunc func(ctx context.Context, word string) (bool, error)

// Lookup calls f
func (f OracleFunc) Lookup(ctx context.Context, word string) (bool, error) {
	return f(ctx, word)
}
