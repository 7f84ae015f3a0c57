package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SCRABBLE_PORT
const EnvPrefix = "SCRABBLE"

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds server configuration
type Config struct {
	Host string
	Port int

	LogLevel  string // debug, info, warn, error
	LogFormat string // json or text

	Storage      string
	RedisURL     string
	RedisGameTTL time.Duration

	// DictionaryPath is a word list file. Empty uses the built-in list.
	DictionaryPath string

	// OracleURL points at a remote word validation endpoint. Empty uses the
	// local dictionary.
	OracleURL       string
	OracleAttempts  uint
	OracleCacheSize int
	SubmitTimeout   time.Duration

	CrossWords bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("redis_game_ttl", 24*time.Hour)
	v.SetDefault("dictionary_path", "")
	v.SetDefault("oracle_url", "")
	v.SetDefault("oracle_attempts", 3)
	v.SetDefault("oracle_cache_size", 10000)
	v.SetDefault("submit_timeout", 5*time.Second)
	v.SetDefault("cross_words", false)
}

// Load reads configuration from, in increasing priority: defaults, the
// optional config file, and SCRABBLE_* environment variables. An optional
// .env file is loaded into the environment first without overriding
// variables that are already set.
func Load(configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		LogLevel:        v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		Storage:         strings.ToLower(v.GetString("storage")),
		RedisURL:        v.GetString("redis_url"),
		RedisGameTTL:    v.GetDuration("redis_game_ttl"),
		DictionaryPath:  v.GetString("dictionary_path"),
		OracleURL:       v.GetString("oracle_url"),
		OracleAttempts:  v.GetUint("oracle_attempts"),
		OracleCacheSize: v.GetInt("oracle_cache_size"),
		SubmitTimeout:   v.GetDuration("submit_timeout"),
		CrossWords:      v.GetBool("cross_words"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for impossible values
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Storage != StorageMemory && c.Storage != StorageRedis {
		errs = append(errs, fmt.Errorf("storage must be %q or %q, got %q", StorageMemory, StorageRedis, c.Storage))
	}
	if c.Storage == StorageRedis && c.RedisURL == "" {
		errs = append(errs, errors.New("redis_url required when storage is redis"))
	}
	if c.SubmitTimeout <= 0 {
		errs = append(errs, errors.New("submit_timeout must be positive"))
	}
	if c.OracleCacheSize <= 0 {
		errs = append(errs, errors.New("oracle_cache_size must be positive"))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, fmt.Errorf("log_format must be json or text, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
