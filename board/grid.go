package board

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/lmileski/natural-selection-game-program/animal"
)

// Board length bounds. The board is always square.
const (
	MinBoardLength = 1
	MaxBoardLength = 8
)

// LevelCount asks for Count animals at skill level Level.
type LevelCount struct {
	Level int
	Count int
}

// Config carries the parameters the core needs. Values are validated by
// the settings layer before they get here; NewGrid treats violations as
// caller bugs.
type Config struct {
	BoardLength int
	Starvation  int // starting starvation budget for every predator

	// Starting populations per side. Nil means the default distribution:
	// a triangle over levels 2 through 8 (1,2,3,4,3,2,1 animals), cut to
	// the first four on a one-cell board.
	PredatorStart []LevelCount
	PreyStart     []LevelCount
}

// Totals is the aggregate census of the survivor pools. Averages are
// rounded to one decimal; an empty side averages 0.
type Totals struct {
	Predators        int
	Prey             int
	AvgPredatorLevel float64
	AvgPreyLevel     float64
	AvgStarvation    float64 // mean remaining budget over living predators
}

// Tally counts round wins per side across a game.
type Tally struct {
	Predator int
	Prey     int
}

// Report summarizes one resolved round for presentation and logging.
type Report struct {
	Round           int
	Totals          Totals
	Winner          Outcome // side with the larger net population change
	Majority        Outcome // side that won the most cells
	Tally           Tally
	CulledPredators int // removed by the population cap this round
	CulledPrey      int
}

// Grid owns the cells and the survivor pools that exist between rounds.
// All state is mutated only by the methods below; readers take snapshots
// after a call returns.
type Grid struct {
	Cells [][]*Cell // Cells[row][col]

	cfg       Config
	src       Source
	round     int // completed rounds; 0 is the starting census
	predators []*animal.Predator
	prey      []*animal.Prey
	totals    Totals
	wins      Tally
}

// NewGrid builds the cells and the starting population and takes the
// initial census. Configuration outside the documented bounds panics:
// the settings layer owns turning user input into errors.
func NewGrid(cfg Config, src Source) *Grid {
	validate(cfg)
	g := &Grid{cfg: cfg, src: src}
	g.Cells = newCells(cfg.BoardLength)
	g.predators, g.prey = startingAnimals(cfg)
	g.totals = g.census()
	return g
}

// RestoreGrid rebuilds a grid between rounds from saved state. The cells
// come back empty; the next scatter repopulates them.
func RestoreGrid(cfg Config, src Source, round int, wins Tally, predators []*animal.Predator, prey []*animal.Prey) *Grid {
	validate(cfg)
	g := &Grid{cfg: cfg, src: src, round: round, wins: wins}
	g.Cells = newCells(cfg.BoardLength)
	g.predators = predators
	g.prey = prey
	if len(g.predators) > g.Capacity() || len(g.prey) > g.Capacity() {
		panic(fmt.Sprintf("board: restored population exceeds capacity %d (predators %d, prey %d)",
			g.Capacity(), len(g.predators), len(g.prey)))
	}
	g.totals = g.census()
	return g
}

func validate(cfg Config) {
	if cfg.BoardLength < MinBoardLength || cfg.BoardLength > MaxBoardLength {
		panic(fmt.Sprintf("board: board length %d outside [%d, %d]", cfg.BoardLength, MinBoardLength, MaxBoardLength))
	}
	if cfg.Starvation < 1 {
		panic(fmt.Sprintf("board: starvation budget %d below 1", cfg.Starvation))
	}
}

func newCells(length int) [][]*Cell {
	cells := make([][]*Cell, length)
	for row := range cells {
		cells[row] = make([]*Cell, length)
		for col := range cells[row] {
			cells[row][col] = NewCell(Position{Row: row, Col: col})
		}
	}
	return cells
}

// DefaultStart is the fixed starting distribution: 16 animals per side in
// a triangle over skill levels 2 through 8.
func DefaultStart() []LevelCount {
	return []LevelCount{{2, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 3}, {7, 2}, {8, 1}}
}

func startingAnimals(cfg Config) ([]*animal.Predator, []*animal.Prey) {
	capacity := cfg.BoardLength * cfg.BoardLength * MaxPerCell

	predStart, predDefault := cfg.PredatorStart, false
	if predStart == nil {
		predStart, predDefault = DefaultStart(), true
	}
	preyStart, preyDefault := cfg.PreyStart, false
	if preyStart == nil {
		preyStart, preyDefault = DefaultStart(), true
	}

	var predators []*animal.Predator
	for _, lc := range predStart {
		assertStart(lc, capacity)
		for i := 0; i < lc.Count; i++ {
			predators = append(predators, animal.NewPredator(lc.Level, 0, cfg.Starvation))
		}
	}
	var prey []*animal.Prey
	for _, lc := range preyStart {
		assertStart(lc, capacity)
		for i := 0; i < lc.Count; i++ {
			prey = append(prey, animal.NewPrey(lc.Level, 0))
		}
	}

	// The default 16 do not fit a one-cell board; keep the first four.
	if predDefault && len(predators) > capacity {
		predators = predators[:capacity]
	}
	if preyDefault && len(prey) > capacity {
		prey = prey[:capacity]
	}
	if len(predators) > capacity || len(prey) > capacity {
		panic(fmt.Sprintf("board: starting population exceeds capacity %d (predators %d, prey %d)",
			capacity, len(predators), len(prey)))
	}
	return predators, prey
}

func assertStart(lc LevelCount, capacity int) {
	if lc.Level < 0 {
		panic(fmt.Sprintf("board: negative starting level %d", lc.Level))
	}
	if lc.Count < 0 || lc.Count > capacity {
		panic(fmt.Sprintf("board: starting count %d outside [0, %d]", lc.Count, capacity))
	}
}

// Capacity is the population cap per side for the whole board.
func (g *Grid) Capacity() int {
	return g.cfg.BoardLength * g.cfg.BoardLength * MaxPerCell
}

// Round is the number of completed rounds.
func (g *Grid) Round() int { return g.round }

// Wins is the running round-win tally.
func (g *Grid) Wins() Tally { return g.wins }

// Totals is the aggregate census after the last resolution (or the
// starting census before the first). The previous census is always
// defined: NewGrid takes the first one.
func (g *Grid) Totals() Totals { return g.totals }

// Survivors exposes the between-round pools. Read-only for callers.
func (g *Grid) Survivors() ([]*animal.Predator, []*animal.Prey) {
	return g.predators, g.prey
}

// Scatter places every pooled animal on a uniformly random cell,
// re-rolling draws that land on a cell already holding four of that side.
// The pools fitting under Capacity is a caller contract; violating it
// panics rather than looping forever.
func (g *Grid) Scatter() {
	if len(g.predators) > g.Capacity() || len(g.prey) > g.Capacity() {
		panic(fmt.Sprintf("board: population exceeds capacity %d (predators %d, prey %d)",
			g.Capacity(), len(g.predators), len(g.prey)))
	}
	length := g.cfg.BoardLength
	for _, pred := range g.predators {
		for {
			row, col := g.src.Intn(length), g.src.Intn(length)
			cell := g.Cells[row][col]
			if len(cell.Predators) < MaxPerCell {
				cell.Predators = append(cell.Predators, pred)
				break
			}
		}
	}
	for _, py := range g.prey {
		for {
			row, col := g.src.Intn(length), g.src.Intn(length)
			cell := g.Cells[row][col]
			if len(cell.Prey) < MaxPerCell {
				cell.Prey = append(cell.Prey, py)
				break
			}
		}
	}
}

// ResolveRound resolves every cell, collects the survivors into fresh
// pools, culls any excess above Capacity, recomputes the census, and
// advances the round counter. The round winner is the side whose total
// grew the most against the previous census; the majority outcome is the
// side that took the most cells.
func (g *Grid) ResolveRound() Report {
	resolving := g.round + 1

	var predWins, preyWins int
	predators := make([]*animal.Predator, 0, len(g.predators))
	prey := make([]*animal.Prey, 0, len(g.prey))
	for _, row := range g.Cells {
		for _, cell := range row {
			res := cell.ResolveRound(resolving, g.cfg.Starvation, g.src)
			switch res.Outcome {
			case PredatorWin:
				predWins++
			case PreyWin:
				preyWins++
			}
			predators = append(predators, cell.Predators...)
			prey = append(prey, cell.Prey...)
		}
	}

	// Cull the weakest above the cap. The sort is stable, so equal-skill
	// animals at the cutoff survive in collection order (row-major cell
	// order, cell contents in resolution order).
	sort.SliceStable(predators, func(i, j int) bool {
		return predators[i].SkillLevel > predators[j].SkillLevel
	})
	sort.SliceStable(prey, func(i, j int) bool {
		return prey[i].SkillLevel > prey[j].SkillLevel
	})
	report := Report{Round: resolving}
	if over := len(predators) - g.Capacity(); over > 0 {
		report.CulledPredators = over
		predators = predators[:g.Capacity()]
	}
	if over := len(prey) - g.Capacity(); over > 0 {
		report.CulledPrey = over
		prey = prey[:g.Capacity()]
	}
	g.predators, g.prey = predators, prey
	g.round = resolving

	prev := g.totals
	g.totals = g.census()
	predGain := g.totals.Predators - prev.Predators
	preyGain := g.totals.Prey - prev.Prey
	switch {
	case predGain > preyGain:
		report.Winner = PredatorWin
		g.wins.Predator++
	case preyGain > predGain:
		report.Winner = PreyWin
		g.wins.Prey++
	default:
		report.Winner = Tie
	}
	switch {
	case predWins > preyWins:
		report.Majority = PredatorWin
	case preyWins > predWins:
		report.Majority = PreyWin
	default:
		report.Majority = Tie
	}
	report.Totals = g.totals
	report.Tally = g.wins
	return report
}

// ClearForNextRound empties every cell between showing results and the
// next scatter. Cells keep their last result for readers.
func (g *Grid) ClearForNextRound() {
	for _, row := range g.Cells {
		for _, cell := range row {
			cell.Predators = nil
			cell.Prey = nil
		}
	}
}

// OverallWinner is the side with more round wins after the configured
// number of rounds. An equal tally is an explicit tie.
func (g *Grid) OverallWinner() Outcome {
	switch {
	case g.wins.Predator > g.wins.Prey:
		return PredatorWin
	case g.wins.Prey > g.wins.Predator:
		return PreyWin
	default:
		return Tie
	}
}

// LevelHistograms maps skill level to population per side, for the
// start-of-game and end-of-game reports.
func (g *Grid) LevelHistograms() (predators, prey map[int]int) {
	predators = make(map[int]int)
	for _, p := range g.predators {
		predators[p.SkillLevel]++
	}
	prey = make(map[int]int)
	for _, p := range g.prey {
		prey[p.SkillLevel]++
	}
	return predators, prey
}

func (g *Grid) census() Totals {
	t := Totals{Predators: len(g.predators), Prey: len(g.prey)}
	if len(g.predators) > 0 {
		levels := make([]float64, len(g.predators))
		budgets := make([]float64, len(g.predators))
		for i, p := range g.predators {
			levels[i] = float64(p.SkillLevel)
			budgets[i] = float64(p.RoundsUntilStarvation)
		}
		t.AvgPredatorLevel = round1(stat.Mean(levels, nil))
		t.AvgStarvation = round1(stat.Mean(budgets, nil))
	}
	if len(g.prey) > 0 {
		levels := make([]float64, len(g.prey))
		for i, p := range g.prey {
			levels[i] = float64(p.SkillLevel)
		}
		t.AvgPreyLevel = round1(stat.Mean(levels, nil))
	}
	return t
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
