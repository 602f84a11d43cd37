// Package main is the entry point for TerraCreatures.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/samdwyer/terracreatures/internal/config"
	"github.com/samdwyer/terracreatures/internal/game"
	"github.com/samdwyer/terracreatures/internal/save"
	"github.com/samdwyer/terracreatures/internal/save/sqlite"
	"github.com/samdwyer/terracreatures/internal/telemetry"
	"github.com/samdwyer/terracreatures/internal/ui"
)

type appConfig struct {
	Game game.Config `envPrefix:"TERRACREATURES_"`

	SaveBackend string `env:"TERRACREATURES_SAVE_BACKEND" envDefault:"file"`
	SavePath    string `env:"TERRACREATURES_SAVE_PATH" envDefault:"terracreatures_save.json"`
	LogPath     string `env:"TERRACREATURES_LOG_PATH" envDefault:"terracreatures.log"`
	OtelEnabled bool   `env:"TERRACREATURES_OTEL_ENABLED" envDefault:"false"`
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if err := run(); err != nil {
		log.Fatalf("terracreatures: %v", err)
	}
}

func run() error {
	var cfg appConfig
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}

	// The terminal belongs to tcell, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	sessionID := uuid.NewString()
	log.SetPrefix("[" + sessionID[:8] + "] ")

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.OtelEnabled, sessionID)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	}
	defer func() {
		if err := shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	store, err := openStore(ctx, cfg.SaveBackend, cfg.SavePath)
	if err != nil {
		return err
	}
	defer store.Close()

	g, err := game.New(ctx, cfg.Game, store, nil)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	defer screen.Close()

	log.Printf("session %s started", sessionID)
	err = g.Run(ctx, ui.NewFrontend(screen, g.Species()))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openStore(ctx context.Context, backend, path string) (save.Store, error) {
	switch backend {
	case "file", "":
		fs, err := save.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case "sqlite":
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("open save database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown save backend %q", backend)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the header
	// is built here.
	apiKey := os.Getenv("HONEYCOMB_TERRACREATURES_API_KEY")
	dataset := os.Getenv("HONEYCOMB_TERRACREATURES_DATASET")
	if dataset == "" {
		dataset = "terracreatures"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
