package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
	"github.com/mcoot/scrabblegame-go/internal/services/validator"
)

// APIError represents an API error response
type APIError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Words   []string `json:"words,omitempty"`
	At      *Cell    `json:"at,omitempty"`
}

// Cell locates an offending square in a rejection
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidLetter         = "INVALID_LETTER"
	CodeInvalidPosition       = "INVALID_POSITION"
	CodeGameNotFound          = "GAME_NOT_FOUND"
	CodeGameComplete          = "GAME_COMPLETE"
	CodeTooManyPlayers        = "TOO_MANY_PLAYERS"
	CodeSubmitInProgress      = "SUBMIT_IN_PROGRESS"
	CodeCellOccupied          = "CELL_OCCUPIED"
	CodeTileNotInRack         = "TILE_NOT_IN_RACK"
	CodeExchangeMode          = "EXCHANGE_MODE"
	CodeNotExchanging         = "NOT_EXCHANGING"
	CodeInvalidPlacement      = "INVALID_PLACEMENT"
	CodeInvalidWord           = "INVALID_WORD"
	CodeDictionaryUnavailable = "DICTIONARY_UNAVAILABLE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var rejection *validator.RejectionError
	if errors.As(err, &rejection) {
		apiErr := APIError{Code: CodeInvalidPlacement, Message: rejection.Error()}
		if rejection.At != nil {
			apiErr.At = &Cell{Row: rejection.At.Row, Col: rejection.At.Col}
		}
		return &httpError{http.StatusUnprocessableEntity, apiErr}
	}

	var wordErr *game.WordRejectionError
	if errors.As(err, &wordErr) {
		return &httpError{http.StatusUnprocessableEntity, APIError{
			Code:    CodeInvalidWord,
			Message: wordErr.Error(),
			Words:   wordErr.Words,
		}}
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameComplete, Message: "Game is already complete"}}
	case errors.Is(err, model.ErrTooManyPlayers):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeTooManyPlayers, Message: "A game seats at most 4 players"}}
	case errors.Is(err, model.ErrSubmitInProgress):
		return &httpError{http.StatusConflict, APIError{Code: CodeSubmitInProgress, Message: "A submission is already in progress"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidPosition, Message: "Invalid board position"}}
	case errors.Is(err, model.ErrInvalidLetter):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidLetter, Message: "Letter must be A-Z"}}
	case errors.Is(err, model.ErrCellOccupied):
		return &httpError{http.StatusConflict, APIError{Code: CodeCellOccupied, Message: "Cell is already occupied"}}
	case errors.Is(err, model.ErrTileNotInRack):
		return &httpError{http.StatusConflict, APIError{Code: CodeTileNotInRack, Message: "Tile is not in your rack"}}
	case errors.Is(err, model.ErrExchangeMode):
		return &httpError{http.StatusConflict, APIError{Code: CodeExchangeMode, Message: "Not allowed while exchanging"}}
	case errors.Is(err, model.ErrNotExchanging):
		return &httpError{http.StatusConflict, APIError{Code: CodeNotExchanging, Message: "Not in exchange mode"}}
	case errors.Is(err, model.ErrOracleUnavailable), errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeDictionaryUnavailable, Message: "Dictionary unavailable"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}

// PanicHandler answers a recovered panic with a JSON internal error
func PanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	WriteError(w, NewInternalError())
}
