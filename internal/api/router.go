package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabblegame-go/internal/api/apierr"
	"github.com/mcoot/scrabblegame-go/internal/api/handler"
	"github.com/mcoot/scrabblegame-go/internal/api/response"
	"github.com/mcoot/scrabblegame-go/internal/middleware"
	"github.com/mcoot/scrabblegame-go/internal/services/dictionary"
	"github.com/mcoot/scrabblegame-go/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    *game.Controller
	DictionaryService *dictionary.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apierr.PanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)

	games := api.PathPrefix("/games/{id}").Subrouter()
	games.HandleFunc("", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("", gameHandler.Delete).Methods(http.MethodDelete)
	games.HandleFunc("/summary", gameHandler.Summary).Methods(http.MethodGet)

	// Move staging
	games.HandleFunc("/place", gameHandler.Place).Methods(http.MethodPost)
	games.HandleFunc("/undo", gameHandler.Undo).Methods(http.MethodPost)
	games.HandleFunc("/recall", gameHandler.Recall).Methods(http.MethodPost)
	games.HandleFunc("/submit", gameHandler.Submit).Methods(http.MethodPost)
	games.HandleFunc("/reset", gameHandler.Reset).Methods(http.MethodPost)

	// Exchange mode
	games.HandleFunc("/exchange", gameHandler.EnterExchange).Methods(http.MethodPost)
	games.HandleFunc("/exchange/toggle", gameHandler.ToggleExchange).Methods(http.MethodPost)
	games.HandleFunc("/exchange/commit", gameHandler.CommitExchange).Methods(http.MethodPost)
	games.HandleFunc("/exchange/cancel", gameHandler.CancelExchange).Methods(http.MethodPost)

	api.HandleFunc("/board/premiums", gameHandler.Premiums).Methods(http.MethodGet)
	api.HandleFunc("/dictionary/validate", dictionaryHandler.Validate).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler(cfg.DictionaryService)).Methods(http.MethodGet)

	return r
}

func healthHandler(dict *dictionary.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		response.JSON(w, http.StatusOK, response.Health{
			Status:     "ok",
			Dictionary: dict.WordCount(),
		})
	}
}
