package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lmileski/natural-selection-game-program/config"
	"github.com/lmileski/natural-selection-game-program/game"
	"github.com/lmileski/natural-selection-game-program/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window")
	rounds := flag.Int("rounds", 0, "Override game.rounds (0 = use config)")
	boardLength := flag.Int("board", 0, "Override board.length (0 = use config)")
	starvation := flag.Int("starvation", 0, "Override predator.starvation (0 = use config)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config, then time-based)")
	outDir := flag.String("out", "", "CSV output directory (empty = no CSV)")
	dbPath := flag.String("db", "", "SQLite archive path (empty = no archive)")
	snapshotPath := flag.String("snapshot", "", "Write a JSON snapshot at game end")
	resumePath := flag.String("resume", "", "Resume the game saved in this snapshot")
	logLevel := flag.String("log-level", "info", "Log level (debug|info|warn|error)")
	quiet := flag.Bool("quiet", false, "Drop log output below errors")

	flag.Parse()

	game.SetupLogging(*logLevel, *quiet)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Flag overrides go through the settings layer so they face the same
	// validation as file values.
	overrides := []struct {
		category, field string
		value           int
	}{
		{"board", "length", *boardLength},
		{"game", "rounds", *rounds},
		{"predator", "starvation", *starvation},
	}
	for _, o := range overrides {
		if o.value == 0 {
			continue
		}
		if err := cfg.Set(o.category, o.field, strconv.Itoa(o.value)); err != nil {
			slog.Error("invalid flag override", "setting", o.category+"."+o.field, "error", err)
			os.Exit(1)
		}
	}
	if *outDir == "" {
		*outDir = cfg.Output.Dir
	}
	if *dbPath == "" {
		*dbPath = cfg.Output.Archive
	}
	if *snapshotPath == "" {
		*snapshotPath = cfg.Output.Snapshot
	}

	opts := game.Options{
		Seed:         *seed,
		OutputDir:    *outDir,
		ArchivePath:  *dbPath,
		SnapshotPath: *snapshotPath,
	}

	g, err := newGame(cfg, opts, *resumePath)
	if err != nil {
		slog.Error("failed to set up game", "error", err)
		os.Exit(1)
	}

	if *headless {
		slog.Info("starting headless game",
			"board", cfg.Board.Length,
			"rounds", g.Rounds(),
			"seed", g.Seed(),
		)
		sum, err := g.RunHeadless()
		if err != nil {
			slog.Error("game failed", "error", err)
			os.Exit(1)
		}
		sum.Log()
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.UI.Width), int32(cfg.UI.Height), "Natural Selection")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.UI.TargetFPS))

	viewer := game.NewViewer(cfg, opts, g)
	for !rl.WindowShouldClose() {
		viewer.Update()
		viewer.Draw()
	}
}

func newGame(cfg *config.Config, opts game.Options, resumePath string) (*game.Game, error) {
	if resumePath == "" {
		return game.New(cfg, opts), nil
	}
	snap, err := telemetry.LoadSnapshot(resumePath)
	if err != nil {
		return nil, err
	}
	return game.NewFromSnapshot(cfg, opts, snap), nil
}
