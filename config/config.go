package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full service configuration. It is built once at startup and
// treated as immutable afterwards.
type Config struct {
	Server ServerConfig
	Engine EngineConfig
	Search SearchConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host string
	Port int
}

// EngineConfig is the fixed yt-dlp extraction profile. One explicit record
// with named fields; nothing mutates it per request.
type EngineConfig struct {
	BinaryPath       string
	Quiet            bool
	FlatExtraction   bool
	FormatPreference string
}

// SearchConfig bounds the two search families. The legacy POST endpoint asks
// the search provider for 10 results, the catalog GET endpoint for 20.
type SearchConfig struct {
	LegacyLimit  int
	CatalogLimit int
}

// LogConfig controls log verbosity and optional rotated file output.
type LogConfig struct {
	Level      string
	OutputPath string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
		},
		Engine: EngineConfig{
			BinaryPath:       "yt-dlp",
			Quiet:            true,
			FlatExtraction:   false,
			FormatPreference: "bestaudio/best",
		},
		Search: SearchConfig{
			LegacyLimit:  10,
			CatalogLimit: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, an optional .env file, and
// viper-bound flags and HIFI_-prefixed environment variables. Flag binding
// happens in the command entry point before this runs.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	cfg := Default()

	cfg.Server.Host = stringOr("server-host", cfg.Server.Host)
	cfg.Server.Port = intOr("server-port", cfg.Server.Port)

	cfg.Engine.BinaryPath = stringOr("ytdlp-path", cfg.Engine.BinaryPath)
	cfg.Engine.FormatPreference = stringOr("format-preference", cfg.Engine.FormatPreference)
	cfg.Engine.FlatExtraction = viper.GetBool("flat-extraction")

	cfg.Search.LegacyLimit = intOr("legacy-search-limit", cfg.Search.LegacyLimit)
	cfg.Search.CatalogLimit = intOr("catalog-search-limit", cfg.Search.CatalogLimit)

	cfg.Log.Level = stringOr("log-level", cfg.Log.Level)
	cfg.Log.OutputPath = stringOr("log-file", cfg.Log.OutputPath)

	return cfg
}

func stringOr(key, fallback string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return fallback
}
