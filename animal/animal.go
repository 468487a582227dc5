// Package animal defines the predator and prey entities.
package animal

import "fmt"

// Predator hunts prey that share its cell. Its skill level is its ability
// to catch; it dies when its starvation budget runs out before it eats.
type Predator struct {
	SkillLevel            int
	BirthRound            int // round the animal was created, immutable
	RoundsUntilStarvation int // decremented each round the predator fails to eat
}

// Prey evades predators that share its cell. Its skill level is its
// ability to evade.
type Prey struct {
	SkillLevel int
	BirthRound int // round the animal was created, immutable
}

// NewPredator creates a predator. Skill levels are never negative.
func NewPredator(level, birthRound, starvation int) *Predator {
	if level < 0 {
		panic(fmt.Sprintf("animal: negative predator skill level %d", level))
	}
	return &Predator{
		SkillLevel:            level,
		BirthRound:            birthRound,
		RoundsUntilStarvation: starvation,
	}
}

// NewPrey creates a prey animal. Skill levels are never negative.
func NewPrey(level, birthRound int) *Prey {
	if level < 0 {
		panic(fmt.Sprintf("animal: negative prey skill level %d", level))
	}
	return &Prey{SkillLevel: level, BirthRound: birthRound}
}

// Starving reports whether the predator's budget is exhausted.
func (p *Predator) Starving() bool {
	return p.RoundsUntilStarvation <= 0
}

// Offspring returns the predator's two children, born on the given round
// with a fresh starvation budget. Reproduction consumes the parent; the
// caller records its death.
func (p *Predator) Offspring(birthRound, starvation int) [2]*Predator {
	hi, lo := offspringLevels(p.SkillLevel)
	return [2]*Predator{
		NewPredator(hi, birthRound, starvation),
		NewPredator(lo, birthRound, starvation),
	}
}

// Offspring returns the prey's two children, born on the given round.
// Reproduction consumes the parent; the caller records its death.
func (p *Prey) Offspring(birthRound int) [2]*Prey {
	hi, lo := offspringLevels(p.SkillLevel)
	return [2]*Prey{
		NewPrey(hi, birthRound),
		NewPrey(lo, birthRound),
	}
}

// offspringLevels returns the two skill levels produced by reproduction:
// parent+1 and parent-1, except that a level-0 parent's lower child stays
// at 0 rather than going negative.
func offspringLevels(parent int) (hi, lo int) {
	hi = parent + 1
	lo = parent - 1
	if lo < 0 {
		lo = 0
	}
	return hi, lo
}
