package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lmileski/natural-selection-game-program/board"
)

// Cell fill colors by last outcome. Unrevealed cells stay neutral.
var (
	neutralColor     = rl.NewColor(38, 46, 56, 255)
	predatorWinColor = rl.NewColor(82, 40, 46, 255)
	preyWinColor     = rl.NewColor(40, 70, 48, 255)
	tieColor         = rl.NewColor(52, 56, 64, 255)
	gridLineColor    = rl.NewColor(24, 28, 34, 255)

	predatorColor = rl.NewColor(226, 110, 92, 255)
	preyColor     = rl.NewColor(130, 200, 120, 255)
)

// BoardView draws the grid into a fixed square screen region.
type BoardView struct {
	X, Y, Size float32 // pixel region, Size is the square's side
}

// Draw renders every cell. Cells in the first revealedWaves waves of
// order show their last outcome tint and their animals; the rest stay
// neutral so results sweep in diagonally.
func (v BoardView) Draw(cells [][]*board.Cell, order [][]board.Position, revealedWaves int) {
	length := len(cells)
	if length == 0 {
		return
	}
	cellSize := v.Size / float32(length)

	revealed := make(map[board.Position]bool)
	for d := 0; d < revealedWaves && d < len(order); d++ {
		for _, pos := range order[d] {
			revealed[pos] = true
		}
	}

	for _, row := range cells {
		for _, cell := range row {
			x := v.X + float32(cell.Position.Col)*cellSize
			y := v.Y + float32(cell.Position.Row)*cellSize

			fill := neutralColor
			if revealed[cell.Position] {
				fill = outcomeColor(cell.Last.Outcome)
			}
			rl.DrawRectangleV(rl.Vector2{X: x, Y: y}, rl.Vector2{X: cellSize, Y: cellSize}, fill)
			rl.DrawRectangleLinesEx(rl.Rectangle{X: x, Y: y, Width: cellSize, Height: cellSize}, 1, gridLineColor)

			if revealed[cell.Position] {
				drawAnimals(cell, x, y, cellSize)
			}
		}
	}
}

func outcomeColor(o board.Outcome) rl.Color {
	switch o {
	case board.PredatorWin:
		return predatorWinColor
	case board.PreyWin:
		return preyWinColor
	default:
		return tieColor
	}
}

// drawAnimals draws predators along the cell's top half and prey along
// the bottom, radius scaled with skill level.
func drawAnimals(cell *board.Cell, x, y, size float32) {
	slot := size / float32(board.MaxPerCell)
	for i, p := range cell.Predators {
		if i >= board.MaxPerCell {
			break
		}
		cx := x + slot*(float32(i)+0.5)
		cy := y + size*0.3
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, animalRadius(p.SkillLevel, slot), predatorColor)
	}
	for i, p := range cell.Prey {
		if i >= board.MaxPerCell {
			break
		}
		cx := x + slot*(float32(i)+0.5)
		cy := y + size*0.7
		rl.DrawCircleV(rl.Vector2{X: cx, Y: cy}, animalRadius(p.SkillLevel, slot), preyColor)
	}
}

func animalRadius(level int, slot float32) float32 {
	r := slot * (0.18 + 0.03*float32(level))
	max := slot * 0.45
	if r > max {
		r = max
	}
	return r
}
