package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Denys1771/hifi-backend/cmd"
	"github.com/Denys1771/hifi-backend/config"
	"github.com/Denys1771/hifi-backend/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "hifi-backend",
	Short: "HiFi Music API - resolve searches into playable audio streams",
	Long: `hifi-backend exposes an HTTP JSON API that searches for music tracks
and resolves them into playable audio stream URLs through the yt-dlp
extraction engine.`,
	RunE: runServer,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("server-host", "0.0.0.0", "HTTP server host")
	rootCmd.PersistentFlags().Int("server-port", 8000, "HTTP server port")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "optional log file path (rotated)")
	rootCmd.PersistentFlags().String("ytdlp-path", "yt-dlp", "path to the yt-dlp binary")
	rootCmd.PersistentFlags().String("format-preference", "bestaudio/best", "yt-dlp format preference expression")
	rootCmd.PersistentFlags().Bool("flat-extraction", false, "skip per-entry format resolution")
	rootCmd.PersistentFlags().Int("legacy-search-limit", 10, "result bound for the POST search endpoint")
	rootCmd.PersistentFlags().Int("catalog-search-limit", 20, "result bound for the GET search endpoint")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bind flags: %v\n", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("HIFI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cfg = config.Load()
	logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		OutputPath: cfg.Log.OutputPath,
	})
}

func runServer(_ *cobra.Command, _ []string) error {
	log := logger.L()
	defer log.Sync()

	return cmd.StartWebServer(cfg, log)
}
