package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Game      string
	StateFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SCRABBLE_SERVER", "http://localhost:8080"),
		Game:      os.Getenv("SCRABBLE_GAME"),
		StateFile: getEnvOrDefault("SCRABBLE_STATE_FILE", defaultStateFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadGame loads the current game ID from the state file if not already set
func (c *Config) LoadGame() error {
	if c.Game != "" {
		return nil
	}

	data, err := os.ReadFile(c.StateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No game selected yet
		}
		return err
	}

	c.Game = strings.TrimSpace(string(data))
	return nil
}

// SaveGame makes id the current game for later commands
func (c *Config) SaveGame(id string) error {
	c.Game = id

	dir := filepath.Dir(c.StateFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.StateFile, []byte(id), 0600)
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrabble/game"
	}
	return filepath.Join(home, ".scrabble", "game")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
