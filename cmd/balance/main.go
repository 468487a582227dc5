// Package main searches for game parameters that give predators and prey
// an even chance, by minimizing the distance of the predator win rate
// from 50% over batches of seeded headless games.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"gonum.org/v1/gonum/optimize"

	"github.com/lmileski/natural-selection-game-program/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 20, "Number of seeded games per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	outPath := flag.String("out", "", "Write the balanced config as YAML (empty = print only)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg := config.Cfg()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	e := &evaluator{
		boardLength: cfg.Board.Length,
		rounds:      cfg.Game.Rounds,
		seeds:       evalSeeds,
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			loss := e.objective(x)
			starvation, level := clampParams(x)
			fmt.Printf("Eval %d: starvation=%d level=%d predator_win_rate=%.3f loss=%.3f\n",
				e.evals, starvation, level, e.lastRate, loss)
			return loss
		},
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
	}

	initX := []float64{
		float64(cfg.Predator.Starvation),
		float64(cfg.Predator.StartingLevel),
	}

	fmt.Printf("Balancing on a %dx%d board, %d rounds, %d seeds per evaluation\n",
		cfg.Board.Length, cfg.Board.Length, cfg.Game.Rounds, *seeds)

	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	starvation, level := clampParams(result.X)
	rate := e.winRate(starvation, level)
	fmt.Printf("\nBest parameters after %d evaluations:\n", e.evals)
	fmt.Printf("  predator.starvation: %d\n", starvation)
	fmt.Printf("  predator.starting_level: %d\n", level)
	fmt.Printf("  predator win rate: %.3f\n", rate)

	if *outPath == "" {
		return
	}

	// Export the balanced values as a config the game can run directly.
	// Custom start puts the found level on the board; prey keep theirs.
	apply := [][3]string{
		{"predator", "starvation", strconv.Itoa(starvation)},
		{"predator", "starting_level", strconv.Itoa(level)},
		{"predator", "starting_count", strconv.Itoa(e.startCount())},
		{"game", "custom_start", "true"},
	}
	for _, a := range apply {
		if err := cfg.Set(a[0], a[1], a[2]); err != nil {
			log.Fatalf("applying %s.%s: %v", a[0], a[1], err)
		}
	}
	if err := cfg.WriteYAML(*outPath); err != nil {
		log.Fatalf("failed to write config: %v", err)
	}
	fmt.Printf("Balanced config saved to: %s\n", *outPath)
}
