package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound     = errors.New("game not found")
	ErrGameComplete     = errors.New("game is already complete")
	ErrTooManyPlayers   = errors.New("too many players")
	ErrSubmitInProgress = errors.New("a submission is already in progress")

	// Placement errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrTileNotInRack   = errors.New("tile is not in the active player's rack")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrNothingToUndo   = errors.New("no pending tiles to undo")
	ErrRackSlotTaken   = errors.New("rack slot is not empty")

	// Exchange errors
	ErrExchangeMode  = errors.New("action not allowed while exchanging")
	ErrNotExchanging = errors.New("not in exchange mode")

	// Move rejections (structural)
	ErrNoTilesPlaced   = errors.New("No tiles placed!")
	ErrMustCoverCenter = errors.New("First word must cover the center star!")
	ErrNotStraightLine = errors.New("Tiles must be in a straight line!")
	ErrGapInWord       = errors.New("No gaps allowed in your word!")
	ErrNotConnected    = errors.New("New tiles must connect to existing words!")

	// Move rejections (dictionary)
	ErrInvalidWord       = errors.New("not a valid word")
	ErrOracleUnavailable = errors.New("dictionary unavailable")

	// Invariant errors
	ErrTileAccounting = errors.New("tile accounting mismatch")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
