package ui

import (
	"testing"

	"github.com/lmileski/natural-selection-game-program/board"
)

func TestDiagonalOrder(t *testing.T) {
	tests := []struct {
		length    int
		wantWaves int
	}{
		{1, 1},
		{2, 3},
		{5, 9},
		{8, 15},
	}

	for _, tt := range tests {
		waves := DiagonalOrder(tt.length)
		if len(waves) != tt.wantWaves {
			t.Errorf("DiagonalOrder(%d) has %d waves, want %d", tt.length, len(waves), tt.wantWaves)
			continue
		}

		seen := make(map[board.Position]int)
		for d, wave := range waves {
			for _, pos := range wave {
				if pos.Row+pos.Col != d {
					t.Errorf("length %d: %+v in wave %d, want wave %d", tt.length, pos, d, pos.Row+pos.Col)
				}
				seen[pos]++
			}
		}
		if len(seen) != tt.length*tt.length {
			t.Errorf("length %d: %d distinct cells, want %d", tt.length, len(seen), tt.length*tt.length)
		}
		for pos, n := range seen {
			if n != 1 {
				t.Errorf("length %d: %+v appears %d times", tt.length, pos, n)
			}
		}
	}
}

func TestDiagonalOrderCorners(t *testing.T) {
	waves := DiagonalOrder(4)
	first, last := waves[0], waves[len(waves)-1]
	if len(first) != 1 || first[0] != (board.Position{Row: 0, Col: 0}) {
		t.Errorf("first wave = %+v, want the top-left corner alone", first)
	}
	if len(last) != 1 || last[0] != (board.Position{Row: 3, Col: 3}) {
		t.Errorf("last wave = %+v, want the bottom-right corner alone", last)
	}
}
