package request

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Players []string `json:"players,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`
}

// PlaceRequest is the request body for placing a tile
type PlaceRequest struct {
	TileID int    `json:"tile_id"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Letter string `json:"letter,omitempty"` // Required for blanks
}

// ToggleExchangeRequest is the request body for marking a tile for exchange
type ToggleExchangeRequest struct {
	TileID int `json:"tile_id"`
}

// ValidateWordRequest is the request body for a dictionary lookup
type ValidateWordRequest struct {
	Word string `json:"word"`
}
