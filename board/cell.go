// Package board implements the simulation core: per-cell survival
// resolution and grid-wide orchestration with population caps and
// aggregate accounting.
package board

import (
	"sort"

	"github.com/lmileski/natural-selection-game-program/animal"
)

// MaxPerCell is the most animals of one side a cell can hold.
const MaxPerCell = 4

// Position locates a cell on the board. Fixed at creation.
type Position struct {
	Row int
	Col int
}

// Outcome identifies which side won a resolution.
type Outcome int

const (
	Tie Outcome = iota
	PredatorWin
	PreyWin
)

func (o Outcome) String() string {
	switch o {
	case PredatorWin:
		return "predators"
	case PreyWin:
		return "prey"
	default:
		return "tie"
	}
}

// Result records what one round of resolution did to a cell. Birth and
// death counts satisfy conservation: animals after + deaths equals
// animals before + births, per side.
type Result struct {
	Outcome        Outcome
	PredatorBirths int
	PredatorDeaths int
	PreyBirths     int
	PreyDeaths     int
}

// Cell is one square of the board and the unit of independent combat.
// Contents are replaced by the grid's scatter step each round; Last holds
// the most recent resolution for presentation reads.
type Cell struct {
	Position  Position
	Predators []*animal.Predator
	Prey      []*animal.Prey
	Last      Result
}

// NewCell creates an empty cell at the given position.
func NewCell(pos Position) *Cell {
	return &Cell{Position: pos}
}

// ResolveRound runs one round of combat among the cell's occupants and
// replaces its contents with the survivors and offspring.
//
// Prey are sorted ascending by skill so the weakest are attacked first;
// predators are sorted descending so the strongest eat first. Each
// predator eats at most one prey per round: a strictly higher skill always
// catches, an equal skill catches on an unbiased coin flip, a lower skill
// never does. A predator that eats dies reproducing, leaving two offspring
// at skill levels one above and one below its own (floored at zero). A
// predator that fails to eat loses one round of its starvation budget and
// dies when the budget is gone. A prey that was the cell's only prey and
// was not eaten likewise dies reproducing two offspring. The returned
// outcome goes to whichever side had the larger net population change.
func (c *Cell) ResolveRound(round, starvation int, src Source) Result {
	sort.SliceStable(c.Prey, func(i, j int) bool {
		return c.Prey[i].SkillLevel < c.Prey[j].SkillLevel
	})
	sort.SliceStable(c.Predators, func(i, j int) bool {
		return c.Predators[i].SkillLevel > c.Predators[j].SkillLevel
	})

	var (
		deadPredators = make(map[*animal.Predator]bool)
		deadPrey      = make(map[*animal.Prey]bool)
		bornPredators []*animal.Predator
		bornPrey      []*animal.Prey
	)

	// The parent is consumed by reproducing; every meal is two births
	// and two deaths.
	eat := func(parent *animal.Predator, eaten *animal.Prey) {
		deadPredators[parent] = true
		deadPrey[eaten] = true
		kids := parent.Offspring(round+1, starvation)
		bornPredators = append(bornPredators, kids[0], kids[1])
	}

	for _, pred := range c.Predators {
		ate := false
		for _, py := range c.Prey {
			if deadPrey[py] {
				continue
			}
			if pred.SkillLevel > py.SkillLevel {
				eat(pred, py)
				ate = true
				break
			}
			if pred.SkillLevel == py.SkillLevel && src.Intn(2) == 0 {
				eat(pred, py)
				ate = true
				break
			}
			// Higher-skill prey always evades; keep scanning.
		}
		if !ate {
			pred.RoundsUntilStarvation--
		}
	}

	// A sole prey reproduces if it survived the round. The check is
	// against the cell's starting count, not the count after eating.
	if len(c.Prey) == 1 && !deadPrey[c.Prey[0]] {
		parent := c.Prey[0]
		deadPrey[parent] = true
		kids := parent.Offspring(round + 1)
		bornPrey = append(bornPrey, kids[0], kids[1])
	}

	for _, pred := range c.Predators {
		if !deadPredators[pred] && pred.Starving() {
			deadPredators[pred] = true
		}
	}

	survivors := make([]*animal.Predator, 0, len(c.Predators)+len(bornPredators))
	for _, pred := range c.Predators {
		if !deadPredators[pred] {
			survivors = append(survivors, pred)
		}
	}
	c.Predators = append(survivors, bornPredators...)

	remaining := make([]*animal.Prey, 0, len(c.Prey)+len(bornPrey))
	for _, py := range c.Prey {
		if !deadPrey[py] {
			remaining = append(remaining, py)
		}
	}
	c.Prey = append(remaining, bornPrey...)

	res := Result{
		PredatorBirths: len(bornPredators),
		PredatorDeaths: len(deadPredators),
		PreyBirths:     len(bornPrey),
		PreyDeaths:     len(deadPrey),
	}
	predNet := res.PredatorBirths - res.PredatorDeaths
	preyNet := res.PreyBirths - res.PreyDeaths
	switch {
	case predNet > preyNet:
		res.Outcome = PredatorWin
	case preyNet > predNet:
		res.Outcome = PreyWin
	default:
		res.Outcome = Tie
	}
	c.Last = res
	return res
}
