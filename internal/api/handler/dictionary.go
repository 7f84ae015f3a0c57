package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
)

// DictionaryHandler serves word lookups against the local word list
type DictionaryHandler struct {
	dictionary *dictionary.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dictionary *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{dictionary: dictionary}
}

// Validate handles POST /api/v1/dictionary/validate
func (h *DictionaryHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	word := dictionary.Normalize(req.Word)
	if word == "" {
		WriteError(w, NewInvalidRequestError("No word provided"))
		return
	}

	valid, err := h.dictionary.Lookup(r.Context(), word)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.WordValidation{Valid: valid, Word: word})
}
