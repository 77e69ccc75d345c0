package main // Entry point package

import (
	"database/sql"
	"log" // Logging library

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/certification-consulting-api/internal/config"   // Internal config loader
	"github.com/iliyamo/certification-consulting-api/internal/database" // MySQL open + probe
	"github.com/iliyamo/certification-consulting-api/internal/handler"
	"github.com/iliyamo/certification-consulting-api/internal/middleware"
	"github.com/iliyamo/certification-consulting-api/internal/queue"
	"github.com/iliyamo/certification-consulting-api/internal/router" // Internal router setup
	queuepublisher "github.com/iliyamo/certification-consulting-api/internal/service"
)

func main() {
	_ = godotenv.Load() // Load .env if present; real env wins
	cfg := config.Load()

	// The database is a diagnostic-only dependency: a failed connect is
	// logged and the service runs without it.
	var db *sql.DB
	if cfg.DatabaseConfigured() {
		var err error
		db, err = database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("database: unavailable: %v", err)
			db = nil
		}
	}

	// Redis backs the topic catalog cache; nil disables caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, response cache disabled")
	}
	topicsCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	if cfg.ChatConsumerEnabled {
		go func() {
			if err := queue.StartChatConsumer(); err != nil {
				log.Printf("chat-consumer: stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	chat := handler.NewChatHandler(queuepublisher.PublishChatHandled)
	diag := handler.NewDiagnosticHandler(cfg, db)
	router.RegisterRoutes(e, chat, diag, topicsCache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
