// Package game runs whole games on top of the board core: the
// scatter/resolve/clear round loop, event and highlight recording, and
// the end-of-game outputs.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lmileski/natural-selection-game-program/archive"
	"github.com/lmileski/natural-selection-game-program/board"
	"github.com/lmileski/natural-selection-game-program/config"
	"github.com/lmileski/natural-selection-game-program/telemetry"
)

// Options controls a single game run.
type Options struct {
	Seed         int64  // overrides the configured seed when nonzero
	OutputDir    string // CSV output directory, empty disables
	ArchivePath  string // SQLite archive, empty disables
	SnapshotPath string // JSON snapshot written at game end, empty disables

	// Source overrides the seeded generator. Tests script it; production
	// leaves it nil.
	Source board.Source
}

// Game owns one game from setup through the final report.
type Game struct {
	cfg  *config.Config
	opts Options

	seed      int64
	bcfg      board.Config
	grid      *board.Grid
	rounds    int
	startedAt time.Time

	collector  *telemetry.Collector
	detector   *telemetry.HighlightDetector
	highlights []telemetry.Highlight

	lastReport  board.Report
	haveReport  bool
	resolved    bool // cells hold a resolved round awaiting AdvanceRound
	predsGone   bool
	preyGone    bool
}

// New builds a game from the configuration: grid, starting population,
// collector, and the start-of-game records.
func New(cfg *config.Config, opts Options) *Game {
	g := &Game{
		cfg:       cfg,
		opts:      opts,
		seed:      resolveSeed(cfg, opts),
		bcfg:      boardConfig(cfg),
		rounds:    cfg.Game.Rounds,
		startedAt: time.Now(),
		collector: telemetry.NewCollector(),
		detector:  telemetry.NewHighlightDetector(),
	}
	g.grid = board.NewGrid(g.bcfg, g.source())
	g.recordStart()
	return g
}

// NewFromSnapshot resumes a saved game. Board shape, starvation budget,
// game length, and the win tally come from the snapshot; output options
// come from opts.
func NewFromSnapshot(cfg *config.Config, opts Options, snap *telemetry.Snapshot) *Game {
	g := &Game{
		cfg:       cfg,
		opts:      opts,
		seed:      snap.Seed,
		bcfg:      board.Config{BoardLength: snap.BoardLength, Starvation: snap.Starvation},
		rounds:    snap.Rounds,
		startedAt: time.Now(),
		collector: telemetry.NewCollector(),
		detector:  telemetry.NewHighlightDetector(),
	}
	if opts.Seed != 0 {
		g.seed = opts.Seed
	}
	g.grid = snap.Restore(g.source())
	g.recordStart()
	return g
}

func (g *Game) source() board.Source {
	if g.opts.Source != nil {
		return g.opts.Source
	}
	return rand.New(rand.NewSource(g.seed))
}

func (g *Game) recordStart() {
	predators, prey := g.grid.LevelHistograms()
	g.collector.RecordStart(predators, prey)
	ev := telemetry.NewGameStartEvent(g.rounds)
	ev.Log()
	g.collector.RecordEvent(ev)
}

func resolveSeed(cfg *config.Config, opts Options) int64 {
	if opts.Seed != 0 {
		return opts.Seed
	}
	if cfg.Game.Seed != 0 {
		return cfg.Game.Seed
	}
	return time.Now().UnixNano()
}

// boardConfig translates validated settings into the core's parameters.
func boardConfig(cfg *config.Config) board.Config {
	bcfg := board.Config{
		BoardLength: cfg.Board.Length,
		Starvation:  cfg.Predator.Starvation,
	}
	if cfg.Game.CustomStart {
		bcfg.PredatorStart = []board.LevelCount{
			{Level: cfg.Predator.StartingLevel, Count: cfg.Predator.StartingCount},
		}
		bcfg.PreyStart = []board.LevelCount{
			{Level: cfg.Prey.StartingLevel, Count: cfg.Prey.StartingCount},
		}
	}
	return bcfg
}

// Grid exposes the board for presentation reads.
func (g *Game) Grid() *board.Grid { return g.grid }

// Seed is the seed this game runs under.
func (g *Game) Seed() int64 { return g.seed }

// Rounds is the configured game length.
func (g *Game) Rounds() int { return g.rounds }

// Finished reports whether the final round has been resolved.
func (g *Game) Finished() bool { return g.grid.Round() >= g.rounds }

// LastReport returns the most recent round report, if any round has run.
func (g *Game) LastReport() (board.Report, bool) {
	return g.lastReport, g.haveReport
}

// Highlights returns the highlights detected so far.
func (g *Game) Highlights() []telemetry.Highlight { return g.highlights }

// Step plays one round: scatter the pools onto the cells, resolve every
// cell, and record the results. The cells keep the resolved contents for
// presentation until AdvanceRound. Stepping a finished game is a caller
// bug.
func (g *Game) Step() board.Report {
	if g.Finished() {
		panic("game: Step after the final round")
	}
	g.AdvanceRound()

	g.grid.Scatter()
	rep := g.grid.ResolveRound()
	g.resolved = true
	g.lastReport = rep
	g.haveReport = true

	g.collector.RecordRound(rep)
	g.record(telemetry.NewRoundResolvedEvent(rep.Round, rep.Winner.String()))
	if rep.CulledPredators > 0 {
		g.record(telemetry.NewCapCullEvent(rep.Round, "predators", rep.CulledPredators))
	}
	if rep.CulledPrey > 0 {
		g.record(telemetry.NewCapCullEvent(rep.Round, "prey", rep.CulledPrey))
	}
	if rep.Totals.Predators == 0 && !g.predsGone {
		g.predsGone = true
		g.record(telemetry.NewExtinctionEvent(rep.Round, "predators"))
	}
	if rep.Totals.Prey == 0 && !g.preyGone {
		g.preyGone = true
		g.record(telemetry.NewExtinctionEvent(rep.Round, "prey"))
	}

	hs := g.detector.Check(rep)
	for _, h := range hs {
		h.Log()
	}
	g.highlights = append(g.highlights, hs...)
	return rep
}

func (g *Game) record(ev telemetry.Event) {
	ev.Log()
	g.collector.RecordEvent(ev)
}

// AdvanceRound clears the cells after their results have been shown. The
// viewer calls it once the round's animation is done; headless runs call
// Step back to back and let Step clear for them.
func (g *Game) AdvanceRound() {
	if g.resolved {
		g.grid.ClearForNextRound()
		g.resolved = false
	}
}

// Summary is the end-of-game report.
type Summary struct {
	Winner     board.Outcome
	Tally      board.Tally
	Rounds     int
	Seed       int64
	Start      telemetry.Histogram
	End        telemetry.Histogram
	Highlights []telemetry.Highlight
}

// Finish computes the overall result and writes the configured outputs:
// CSV logs, the SQLite archive row, and the JSON snapshot.
func (g *Game) Finish() (Summary, error) {
	predators, prey := g.grid.LevelHistograms()
	sum := Summary{
		Winner:     g.grid.OverallWinner(),
		Tally:      g.grid.Wins(),
		Rounds:     g.grid.Round(),
		Seed:       g.seed,
		Start:      g.collector.Start(),
		End:        telemetry.Histogram{Predators: predators, Prey: prey},
		Highlights: g.highlights,
	}
	g.record(telemetry.NewGameEndEvent(g.grid.Round(), sum.Winner.String()))

	rows := g.collector.Rows()

	om, err := telemetry.NewOutputManager(g.opts.OutputDir)
	if err != nil {
		return sum, err
	}
	if err := om.WriteConfig(g.cfg); err != nil {
		return sum, err
	}
	if err := g.collector.Flush(om, sum.End); err != nil {
		return sum, err
	}

	if err := g.archiveGame(sum, rows); err != nil {
		return sum, err
	}

	if g.opts.SnapshotPath != "" {
		snap := telemetry.NewSnapshot(g.grid, g.bcfg, g.seed, g.rounds)
		if err := telemetry.SaveSnapshot(snap, g.opts.SnapshotPath); err != nil {
			return sum, err
		}
	}
	return sum, nil
}

func (g *Game) archiveGame(sum Summary, rows []telemetry.RoundStats) error {
	store, err := archive.Open(g.opts.ArchivePath)
	if err != nil {
		return err
	}
	defer store.Close()

	meta := archive.GameMeta{
		StartedAt:    g.startedAt,
		BoardLength:  g.bcfg.BoardLength,
		Rounds:       sum.Rounds,
		Seed:         g.seed,
		Winner:       sum.Winner.String(),
		PredatorWins: sum.Tally.Predator,
		PreyWins:     sum.Tally.Prey,
	}
	rounds := make([]archive.RoundRow, len(rows))
	for i, r := range rows {
		rounds[i] = archive.RoundRow{
			Round:            r.Round,
			Predators:        r.Predators,
			Prey:             r.Prey,
			AvgPredatorLevel: r.AvgPredatorLevel,
			AvgPreyLevel:     r.AvgPreyLevel,
			Winner:           r.Winner,
		}
	}
	if _, err := store.SaveGame(meta, rounds); err != nil {
		return fmt.Errorf("archiving game: %w", err)
	}
	return nil
}

// RunHeadless plays every remaining round back to back and finishes.
func (g *Game) RunHeadless() (Summary, error) {
	for !g.Finished() {
		g.Step()
	}
	g.AdvanceRound()
	return g.Finish()
}
