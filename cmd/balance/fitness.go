package main

import (
	"math"
	"math/rand"

	"github.com/lmileski/natural-selection-game-program/board"
)

// evaluator scores parameter vectors by how close the predator win rate
// over a batch of seeded headless games lands to an even split.
type evaluator struct {
	boardLength int
	rounds      int
	seeds       []int64

	evals    int
	lastRate float64
}

// Parameter bounds: the starvation budget and the predator starting
// skill level. Values outside the bounds are clamped, not rejected, so
// the simplex can wander without crashing a game.
const (
	minStarvation = 1
	maxStarvation = 6
	minLevel      = 0
	maxLevel      = 8
)

func clampParams(x []float64) (starvation, level int) {
	starvation = int(math.Round(x[0]))
	if starvation < minStarvation {
		starvation = minStarvation
	}
	if starvation > maxStarvation {
		starvation = maxStarvation
	}
	level = int(math.Round(x[1]))
	if level < minLevel {
		level = minLevel
	}
	if level > maxLevel {
		level = maxLevel
	}
	return starvation, level
}

// objective is the function handed to the optimizer: distance of the
// predator win rate from 0.5.
func (e *evaluator) objective(x []float64) float64 {
	starvation, level := clampParams(x)
	rate := e.winRate(starvation, level)
	e.evals++
	e.lastRate = rate
	return math.Abs(rate - 0.5)
}

// winRate plays one game per seed with the candidate parameters and
// returns the predators' share of wins, counting an overall tie as half
// a win.
func (e *evaluator) winRate(starvation, predLevel int) float64 {
	count := e.startCount()
	var score float64
	for _, seed := range e.seeds {
		cfg := board.Config{
			BoardLength: e.boardLength,
			Starvation:  starvation,
			PredatorStart: []board.LevelCount{
				{Level: predLevel, Count: count},
			},
		}
		g := board.NewGrid(cfg, rand.New(rand.NewSource(seed)))
		for r := 0; r < e.rounds; r++ {
			g.Scatter()
			g.ResolveRound()
			g.ClearForNextRound()
		}
		switch g.OverallWinner() {
		case board.PredatorWin:
			score++
		case board.Tie:
			score += 0.5
		}
	}
	return score / float64(len(e.seeds))
}

// startCount matches the default distribution's 16, trimmed to capacity
// on small boards.
func (e *evaluator) startCount() int {
	capacity := e.boardLength * e.boardLength * board.MaxPerCell
	if capacity < 16 {
		return capacity
	}
	return 16
}
