package model

import "time"

// MoveKind identifies what a turn consisted of
type MoveKind string

const (
	MoveKindPlay     MoveKind = "play"
	MoveKindExchange MoveKind = "exchange"
	MoveKindReset    MoveKind = "reset"
)

// MoveRecord is an entry in the game history
type MoveRecord struct {
	Kind        MoveKind
	TurnNumber  int
	PlayerIndex int
	Words       []WordMatch // For plays
	Score       int         // For plays, including bonus
	Bingo       bool
	Exchanged   int // For exchanges
	Timestamp   time.Time
}
