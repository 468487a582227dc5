package board

import (
	"testing"

	"github.com/lmileski/natural-selection-game-program/animal"
)

// scriptSource feeds predetermined draws to the code under test.
type scriptSource struct {
	vals []int
	i    int
}

func (s *scriptSource) Intn(n int) int {
	if s.i >= len(s.vals) {
		return 0
	}
	v := s.vals[s.i] % n
	s.i++
	return v
}

func TestResolveRound(t *testing.T) {
	tests := []struct {
		name          string
		predators     []*animal.Predator
		prey          []*animal.Prey
		want          Outcome
		wantPredators int
		wantPrey      int
	}{
		{
			name: "empty cell ties",
			want: Tie,
		},
		{
			name:     "sole prey reproduces",
			prey:     []*animal.Prey{animal.NewPrey(1, 1)},
			want:     PreyWin,
			wantPrey: 2,
		},
		{
			name:     "sole prey at level zero",
			prey:     []*animal.Prey{animal.NewPrey(0, 1)},
			want:     PreyWin,
			wantPrey: 2,
		},
		{
			name:          "lone predator waits",
			predators:     []*animal.Predator{animal.NewPredator(0, 1, 2)},
			want:          Tie,
			wantPredators: 1,
		},
		{
			name:      "lone predator starves",
			predators: []*animal.Predator{animal.NewPredator(1, 1, 1)},
			want:      PreyWin,
		},
		{
			name:          "prey outskills predator",
			predators:     []*animal.Predator{animal.NewPredator(5, 1, 2)},
			prey:          []*animal.Prey{animal.NewPrey(10, 1)},
			want:          PreyWin,
			wantPredators: 1,
			wantPrey:      2,
		},
		{
			name:          "predator outskills prey",
			predators:     []*animal.Predator{animal.NewPredator(3, 1, 2)},
			prey:          []*animal.Prey{animal.NewPrey(2, 1)},
			want:          PredatorWin,
			wantPredators: 2,
		},
		{
			name: "one eats one starves",
			predators: []*animal.Predator{
				animal.NewPredator(3, 1, 2),
				animal.NewPredator(0, 1, 1),
			},
			prey:          []*animal.Prey{animal.NewPrey(2, 1)},
			want:          PredatorWin,
			wantPredators: 2,
		},
		{
			name:      "eats weakest of two",
			predators: []*animal.Predator{animal.NewPredator(3, 1, 2)},
			prey: []*animal.Prey{
				animal.NewPrey(2, 1),
				animal.NewPrey(4, 1),
			},
			want:          PredatorWin,
			wantPredators: 2,
			wantPrey:      1,
		},
		{
			name:      "outskilled predator survives",
			predators: []*animal.Predator{animal.NewPredator(1, 1, 2)},
			prey: []*animal.Prey{
				animal.NewPrey(2, 1),
				animal.NewPrey(3, 1),
			},
			want:          Tie,
			wantPredators: 1,
			wantPrey:      2,
		},
		{
			name: "both predators eat",
			predators: []*animal.Predator{
				animal.NewPredator(4, 1, 2),
				animal.NewPredator(5, 1, 1),
			},
			prey: []*animal.Prey{
				animal.NewPrey(2, 1),
				animal.NewPrey(3, 1),
			},
			want:          PredatorWin,
			wantPredators: 4,
		},
		{
			name: "two starve after miss",
			predators: []*animal.Predator{
				animal.NewPredator(4, 1, 1),
				animal.NewPredator(5, 1, 1),
				animal.NewPredator(6, 1, 1),
			},
			prey:          []*animal.Prey{animal.NewPrey(2, 1)},
			want:          Tie,
			wantPredators: 2,
		},
		{
			name: "strongest eat first",
			predators: []*animal.Predator{
				animal.NewPredator(4, 1, 2),
				animal.NewPredator(5, 1, 1),
				animal.NewPredator(6, 1, 1),
			},
			prey: []*animal.Prey{
				animal.NewPrey(8, 1),
				animal.NewPrey(2, 1),
				animal.NewPrey(1, 1),
			},
			want:          PredatorWin,
			wantPredators: 5,
			wantPrey:      1,
		},
		{
			name: "four on four",
			predators: []*animal.Predator{
				animal.NewPredator(4, 1, 1),
				animal.NewPredator(5, 1, 1),
				animal.NewPredator(8, 1, 1),
				animal.NewPredator(7, 1, 1),
			},
			prey: []*animal.Prey{
				animal.NewPrey(10, 1),
				animal.NewPrey(9, 1),
				animal.NewPrey(5, 1),
				animal.NewPrey(6, 1),
			},
			want:          PredatorWin,
			wantPredators: 4,
			wantPrey:      2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := NewCell(Position{})
			cell.Predators = tt.predators
			cell.Prey = tt.prey

			got := cell.ResolveRound(1, 2, &scriptSource{})
			if got.Outcome != tt.want {
				t.Errorf("outcome = %v, want %v", got.Outcome, tt.want)
			}
			if len(cell.Predators) != tt.wantPredators {
				t.Errorf("predators = %d, want %d", len(cell.Predators), tt.wantPredators)
			}
			if len(cell.Prey) != tt.wantPrey {
				t.Errorf("prey = %d, want %d", len(cell.Prey), tt.wantPrey)
			}
		})
	}
}

func TestResolveRoundWaitingPredatorLosesBudget(t *testing.T) {
	cell := NewCell(Position{})
	cell.Predators = []*animal.Predator{animal.NewPredator(0, 1, 2)}

	cell.ResolveRound(1, 2, &scriptSource{})
	if got := cell.Predators[0].RoundsUntilStarvation; got != 1 {
		t.Errorf("starvation budget = %d, want 1", got)
	}
}

func TestResolveRoundEatsWeakestFirst(t *testing.T) {
	// Strongest predators eat first and pick off the weakest prey; the
	// skill-8 prey evades the leftover skill-4 predator.
	cell := NewCell(Position{})
	cell.Predators = []*animal.Predator{
		animal.NewPredator(4, 1, 2),
		animal.NewPredator(5, 1, 1),
		animal.NewPredator(6, 1, 1),
	}
	cell.Prey = []*animal.Prey{
		animal.NewPrey(8, 1),
		animal.NewPrey(2, 1),
		animal.NewPrey(1, 1),
	}

	got := cell.ResolveRound(1, 2, &scriptSource{})
	if got.Outcome != PredatorWin {
		t.Fatalf("outcome = %v, want %v", got.Outcome, PredatorWin)
	}
	if len(cell.Prey) != 1 || cell.Prey[0].SkillLevel != 8 {
		t.Errorf("surviving prey = %+v, want one at skill 8", cell.Prey)
	}
	// Survivor first, then offspring of the skill-6 and skill-5 eaters.
	wantLevels := []int{4, 7, 5, 6, 4}
	if len(cell.Predators) != len(wantLevels) {
		t.Fatalf("predators = %d, want %d", len(cell.Predators), len(wantLevels))
	}
	for i, want := range wantLevels {
		if cell.Predators[i].SkillLevel != want {
			t.Errorf("predator %d skill = %d, want %d", i, cell.Predators[i].SkillLevel, want)
		}
	}
}

func TestResolveRoundEqualSkillFlip(t *testing.T) {
	t.Run("flip favors predator", func(t *testing.T) {
		cell := NewCell(Position{})
		cell.Predators = []*animal.Predator{animal.NewPredator(2, 1, 2)}
		cell.Prey = []*animal.Prey{animal.NewPrey(2, 1)}

		got := cell.ResolveRound(1, 2, &scriptSource{vals: []int{0}})
		if got.Outcome != PredatorWin {
			t.Errorf("outcome = %v, want %v", got.Outcome, PredatorWin)
		}
		if len(cell.Prey) != 0 || len(cell.Predators) != 2 {
			t.Errorf("populations = %d predators, %d prey, want 2, 0", len(cell.Predators), len(cell.Prey))
		}
	})

	t.Run("flip favors prey", func(t *testing.T) {
		cell := NewCell(Position{})
		cell.Predators = []*animal.Predator{animal.NewPredator(2, 1, 2)}
		cell.Prey = []*animal.Prey{animal.NewPrey(2, 1)}

		got := cell.ResolveRound(1, 2, &scriptSource{vals: []int{1}})
		// The sole prey survives the flip and reproduces.
		if got.Outcome != PreyWin {
			t.Errorf("outcome = %v, want %v", got.Outcome, PreyWin)
		}
		if len(cell.Prey) != 2 || len(cell.Predators) != 1 {
			t.Errorf("populations = %d predators, %d prey, want 1, 2", len(cell.Predators), len(cell.Prey))
		}
		if cell.Predators[0].RoundsUntilStarvation != 1 {
			t.Errorf("starvation budget = %d, want 1", cell.Predators[0].RoundsUntilStarvation)
		}
	})

	t.Run("one flip per encounter", func(t *testing.T) {
		cell := NewCell(Position{})
		cell.Predators = []*animal.Predator{animal.NewPredator(2, 1, 2)}
		cell.Prey = []*animal.Prey{
			animal.NewPrey(2, 1),
			animal.NewPrey(2, 2),
		}

		// First draw lets the older prey evade, second eats the younger.
		src := &scriptSource{vals: []int{1, 0}}
		got := cell.ResolveRound(2, 2, src)
		if src.i != 2 {
			t.Errorf("draws consumed = %d, want 2", src.i)
		}
		if got.Outcome != PredatorWin {
			t.Errorf("outcome = %v, want %v", got.Outcome, PredatorWin)
		}
		if len(cell.Prey) != 1 || cell.Prey[0].BirthRound != 1 {
			t.Errorf("surviving prey = %+v, want the one born round 1", cell.Prey)
		}
	})
}

func TestResolveRoundOffspring(t *testing.T) {
	cell := NewCell(Position{})
	cell.Predators = []*animal.Predator{animal.NewPredator(0, 1, 1)}
	cell.Prey = []*animal.Prey{animal.NewPrey(0, 1)}

	got := cell.ResolveRound(3, 5, &scriptSource{vals: []int{0}})
	if got.Outcome != PredatorWin {
		t.Fatalf("outcome = %v, want %v", got.Outcome, PredatorWin)
	}
	if len(cell.Predators) != 2 {
		t.Fatalf("predators = %d, want 2", len(cell.Predators))
	}
	// A level-zero parent floors its lower child at zero. Offspring are
	// born into the next round with a fresh budget.
	if cell.Predators[0].SkillLevel != 1 || cell.Predators[1].SkillLevel != 0 {
		t.Errorf("offspring levels = %d, %d, want 1, 0", cell.Predators[0].SkillLevel, cell.Predators[1].SkillLevel)
	}
	for i, kid := range cell.Predators {
		if kid.BirthRound != 4 {
			t.Errorf("offspring %d birth round = %d, want 4", i, kid.BirthRound)
		}
		if kid.RoundsUntilStarvation != 5 {
			t.Errorf("offspring %d starvation budget = %d, want 5", i, kid.RoundsUntilStarvation)
		}
	}
}

func TestResolveRoundLonePreyRuleUsesStartingCount(t *testing.T) {
	// Two prey started the round; the survivor does not reproduce even
	// though it ends up alone.
	cell := NewCell(Position{})
	cell.Predators = []*animal.Predator{animal.NewPredator(4, 1, 2)}
	cell.Prey = []*animal.Prey{
		animal.NewPrey(2, 1),
		animal.NewPrey(3, 1),
	}

	got := cell.ResolveRound(1, 2, &scriptSource{})
	if got.PreyBirths != 0 {
		t.Errorf("prey births = %d, want 0", got.PreyBirths)
	}
	if len(cell.Prey) != 1 || cell.Prey[0].SkillLevel != 3 {
		t.Errorf("surviving prey = %+v, want one at skill 3", cell.Prey)
	}
}

func TestResolveRoundConservation(t *testing.T) {
	cell := NewCell(Position{})
	cell.Predators = []*animal.Predator{
		animal.NewPredator(4, 1, 1),
		animal.NewPredator(5, 1, 1),
		animal.NewPredator(8, 1, 1),
		animal.NewPredator(7, 1, 1),
	}
	cell.Prey = []*animal.Prey{
		animal.NewPrey(10, 1),
		animal.NewPrey(9, 1),
		animal.NewPrey(5, 1),
		animal.NewPrey(6, 1),
	}
	predatorsBefore, preyBefore := len(cell.Predators), len(cell.Prey)

	got := cell.ResolveRound(1, 2, &scriptSource{})
	if len(cell.Predators)+got.PredatorDeaths != predatorsBefore+got.PredatorBirths {
		t.Errorf("predator conservation broken: %d after + %d deaths != %d before + %d births",
			len(cell.Predators), got.PredatorDeaths, predatorsBefore, got.PredatorBirths)
	}
	if len(cell.Prey)+got.PreyDeaths != preyBefore+got.PreyBirths {
		t.Errorf("prey conservation broken: %d after + %d deaths != %d before + %d births",
			len(cell.Prey), got.PreyDeaths, preyBefore, got.PreyBirths)
	}
}

func TestResolveRoundStoresLast(t *testing.T) {
	cell := NewCell(Position{Row: 1, Col: 2})
	cell.Prey = []*animal.Prey{animal.NewPrey(1, 1)}

	got := cell.ResolveRound(1, 2, &scriptSource{})
	if cell.Last != got {
		t.Errorf("Last = %+v, want %+v", cell.Last, got)
	}
}
