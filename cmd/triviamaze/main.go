// Package main is the entry point for Trivia Maze.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tomswanson/triviamaze/data"
	"github.com/tomswanson/triviamaze/internal/config"
	"github.com/tomswanson/triviamaze/internal/controller"
	"github.com/tomswanson/triviamaze/internal/entity"
	"github.com/tomswanson/triviamaze/internal/game"
	"github.com/tomswanson/triviamaze/internal/logging"
	"github.com/tomswanson/triviamaze/internal/maze"
	"github.com/tomswanson/triviamaze/internal/telemetry"
	"github.com/tomswanson/triviamaze/internal/trivia"
	"github.com/tomswanson/triviamaze/internal/ui"
)

func main() {
	// Load .env for local development. Not fatal - env vars might be set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.File, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			logger.Warnw("telemetry setup failed; running without observability", "err", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Errorw("telemetry shutdown failed", "err", err)
				}
			}()
		}
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorw("game error", "err", err)
		fmt.Fprintf(os.Stderr, "triviamaze: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) error {
	// Load the question data before touching the terminal so a malformed
	// record produces a readable diagnostic.
	raw, err := data.Questions()
	if err != nil {
		return fmt.Errorf("read embedded question data: %w", err)
	}
	questions, err := trivia.ParseRecords(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("load question data: %w", err)
	}

	storePath := filepath.Join(os.TempDir(), fmt.Sprintf("triviamaze-%s.db", uuid.NewString()))
	store, err := trivia.NewStore(storePath, questions)
	if err != nil {
		return fmt.Errorf("build question store: %w", err)
	}
	defer store.Close()
	logger.Infow("question store loaded",
		"questions", store.Len(), "categories", store.Categories(), "path", storePath)

	seed := cfg.Maze.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	bank := trivia.NewBank(store, rng)

	m, err := maze.Build(ctx, cfg.Maze.Rows, cfg.Maze.Cols, rng, bank, cfg.MazeSettings())
	if err != nil {
		return fmt.Errorf("build maze: %w", err)
	}
	logger.Infow("maze built",
		"rows", m.Rows(), "cols", m.Cols(), "seed", seed,
		"entrance", m.Entrance(), "exit", m.Exit())

	adventurer, err := entity.NewAdventurer(cfg.Adventurer.Name, rng)
	if err != nil {
		return fmt.Errorf("create adventurer: %w", err)
	}

	policy, err := game.PolicyFromString(cfg.Game.WrongAnswerPolicy)
	if err != nil {
		return err
	}
	model := game.NewModel(m, adventurer, rng, game.Settings{
		Policy:            policy,
		WrongAnswerDamage: cfg.Game.WrongAnswerDamage,
		RequirePillars:    cfg.Game.RequirePillars,
	}, logger)

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	defer screen.Close()

	ctrl := controller.New(model, screen, ui.NewRenderer(screen), logger)
	return ctrl.Run(ctx)
}
