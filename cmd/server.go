package cmd

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Denys1771/hifi-backend/config"
	"github.com/Denys1771/hifi-backend/extractor"
	"github.com/Denys1771/hifi-backend/handlers"
	"github.com/Denys1771/hifi-backend/metrics"
	"github.com/Denys1771/hifi-backend/middleware"
	"github.com/Denys1771/hifi-backend/services"
)

// StartWebServer wires the service graph and runs the HTTP server.
func StartWebServer(cfg *config.Config, logger *zap.Logger) error {
	// Set production mode if not specified
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize services
	m := metrics.New()
	engine := extractor.NewClient(extractor.Options{
		BinaryPath:       cfg.Engine.BinaryPath,
		Quiet:            cfg.Engine.Quiet,
		FlatExtraction:   cfg.Engine.FlatExtraction,
		FormatPreference: cfg.Engine.FormatPreference,
	})
	resolver := services.NewResolver(engine, cfg.Search, logger, m)

	// Initialize handlers
	searchHandler := handlers.NewSearchHandler(resolver)
	trackHandler := handlers.NewTrackHandler(resolver)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply middleware
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))

	// Setup routes
	setupRoutes(r, m, searchHandler, trackHandler, healthHandler)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("HiFi backend starting",
		zap.String("addr", addr),
		zap.String("ytdlp", cfg.Engine.BinaryPath))

	return r.Run(addr)
}

// setupRoutes configures all the HTTP routes
func setupRoutes(r *gin.Engine, m *metrics.Metrics, searchHandler *handlers.SearchHandler, trackHandler *handlers.TrackHandler, healthHandler *handlers.HealthHandler) {
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	// API routes group
	apiGroup := r.Group("/api")
	{
		// Both search families live on the same path, split by method
		apiGroup.POST("/search", searchHandler.SearchLegacy)
		apiGroup.GET("/search", searchHandler.SearchCatalog)

		apiGroup.GET("/track/:id", trackHandler.GetTrack)
		apiGroup.GET("/stream/:id", trackHandler.Stream)
		apiGroup.GET("/download/:id", trackHandler.Download)
	}
}
