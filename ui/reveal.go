// Package ui renders the board, HUD, and control panel for the graphical
// mode. It only reads simulation state; the game package owns mutation.
package ui

import "github.com/lmileski/natural-selection-game-program/board"

// DiagonalOrder groups cell positions into reveal waves: the first wave
// is the top-left corner, each following wave is the next anti-diagonal,
// sweeping to the bottom-right. A round's results animate one wave at a
// time.
func DiagonalOrder(length int) [][]board.Position {
	waves := make([][]board.Position, 2*length-1)
	for d := range waves {
		for row := 0; row < length; row++ {
			col := d - row
			if col < 0 || col >= length {
				continue
			}
			waves[d] = append(waves[d], board.Position{Row: row, Col: col})
		}
	}
	return waves
}
