package telemetry

import (
	"testing"

	"github.com/lmileski/natural-selection-game-program/board"
)

func TestNewRoundStats(t *testing.T) {
	rep := board.Report{
		Round: 3,
		Totals: board.Totals{
			Predators:        7,
			Prey:             12,
			AvgPredatorLevel: 4.3,
			AvgPreyLevel:     5.1,
			AvgStarvation:    1.6,
		},
		Winner:          board.PreyWin,
		Majority:        board.Tie,
		Tally:           board.Tally{Predator: 1, Prey: 2},
		CulledPredators: 0,
		CulledPrey:      2,
	}

	row := NewRoundStats(rep)
	if row.Round != 3 || row.Predators != 7 || row.Prey != 12 {
		t.Errorf("counts = %d/%d/%d, want 3/7/12", row.Round, row.Predators, row.Prey)
	}
	if row.AvgPredatorLevel != 4.3 || row.AvgPreyLevel != 5.1 || row.AvgStarvation != 1.6 {
		t.Errorf("averages = %v/%v/%v", row.AvgPredatorLevel, row.AvgPreyLevel, row.AvgStarvation)
	}
	if row.Winner != "prey" || row.Majority != "tie" {
		t.Errorf("winner = %q, majority = %q", row.Winner, row.Majority)
	}
	if row.CulledPrey != 2 {
		t.Errorf("culled prey = %d, want 2", row.CulledPrey)
	}
}

func TestHistogramRows(t *testing.T) {
	tests := []struct {
		name      string
		hist      Histogram
		wantLen   int
		wantLevel map[int][2]int // level -> {predators, prey}
	}{
		{
			name:    "empty histogram has no rows",
			hist:    Histogram{},
			wantLen: 0,
		},
		{
			name: "padded from zero through the top level",
			hist: Histogram{
				Predators: map[int]int{2: 1, 5: 4},
				Prey:      map[int]int{3: 2},
			},
			wantLen: 6,
			wantLevel: map[int][2]int{
				0: {0, 0},
				2: {1, 0},
				3: {0, 2},
				5: {4, 0},
			},
		},
		{
			name: "prey side sets the top level",
			hist: Histogram{
				Predators: map[int]int{0: 1},
				Prey:      map[int]int{8: 1},
			},
			wantLen: 9,
			wantLevel: map[int][2]int{
				0: {1, 0},
				8: {0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := tt.hist.Rows()
			if len(rows) != tt.wantLen {
				t.Fatalf("len(rows) = %d, want %d", len(rows), tt.wantLen)
			}
			for i, row := range rows {
				if row.Level != i {
					t.Errorf("rows[%d].Level = %d, want %d", i, row.Level, i)
				}
			}
			for level, want := range tt.wantLevel {
				row := rows[level]
				if row.Predators != want[0] || row.Prey != want[1] {
					t.Errorf("level %d = %d/%d, want %d/%d",
						level, row.Predators, row.Prey, want[0], want[1])
				}
			}
		})
	}
}
