package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblegame-go/internal/api/request"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/model"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{gameController: gameController}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// decode reads an optional JSON body. An empty body leaves v untouched.
func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil && !errors.Is(err, io.EOF) {
		return NewInvalidRequestError("Invalid request body")
	}
	return nil
}

// writeGame writes the state of a game or the error that produced it
func writeGame(w http.ResponseWriter, status int, g *model.Game, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.GameStateFromModel(g))
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), req.Players, req.Seed)
	writeGame(w, http.StatusCreated, g, err)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	games := make([]string, len(ids))
	for i, id := range ids {
		games[i] = string(id)
	}
	response.JSON(w, http.StatusOK, response.GameList{Games: games})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Place handles POST /api/v1/games/{id}/place
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	var assign rune
	if req.Letter != "" {
		letters := []rune(dictionary.Normalize(req.Letter))
		if len(letters) != 1 {
			WriteError(w, model.ErrInvalidLetter)
			return
		}
		assign = letters[0]
	}

	pos := model.Position{Row: req.Row, Col: req.Col}
	g, err := h.gameController.PlaceTile(r.Context(), gameID(r), model.TileID(req.TileID), pos, assign)
	writeGame(w, http.StatusOK, g, err)
}

// Undo handles POST /api/v1/games/{id}/undo
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.Undo(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// Recall handles POST /api/v1/games/{id}/recall
func (h *GameHandler) Recall(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.Recall(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// Submit handles POST /api/v1/games/{id}/submit
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.Submit(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	status := http.StatusOK
	if result.Ignored {
		status = http.StatusAccepted
	}
	response.JSON(w, status, response.SubmitResponseFromResult(result))
}

// EnterExchange handles POST /api/v1/games/{id}/exchange
func (h *GameHandler) EnterExchange(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.EnterExchange(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// ToggleExchange handles POST /api/v1/games/{id}/exchange/toggle
func (h *GameHandler) ToggleExchange(w http.ResponseWriter, r *http.Request) {
	var req request.ToggleExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	g, err := h.gameController.ToggleExchange(r.Context(), gameID(r), model.TileID(req.TileID))
	writeGame(w, http.StatusOK, g, err)
}

// CommitExchange handles POST /api/v1/games/{id}/exchange/commit
func (h *GameHandler) CommitExchange(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.CommitExchange(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.ExchangeResponseFromResult(result))
}

// CancelExchange handles POST /api/v1/games/{id}/exchange/cancel
func (h *GameHandler) CancelExchange(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.CancelExchange(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// Reset handles POST /api/v1/games/{id}/reset
func (h *GameHandler) Reset(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.ResetBoard(r.Context(), gameID(r))
	writeGame(w, http.StatusOK, g, err)
}

// Summary handles GET /api/v1/games/{id}/summary
func (h *GameHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.gameController.Summary(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SummaryFromModel(summary))
}

// Premiums handles GET /api/v1/board/premiums
func (h *GameHandler) Premiums(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.PremiumsFromModel(model.PremiumSquares()))
}
