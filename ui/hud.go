package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lmileski/natural-selection-game-program/board"
)

// HUDData holds everything the HUD shows for the current round.
type HUDData struct {
	Round  int
	Rounds int
	Totals board.Totals
	Tally  board.Tally

	Winner     board.Outcome
	Majority   board.Outcome
	HaveReport bool // false before the first round resolves

	Finished      bool
	OverallWinner board.Outcome
}

// HUD renders the round readout down the side panel.
type HUD struct {
	X, Y int32
}

// Draw renders the HUD at its panel position.
func (h HUD) Draw(data HUDData) {
	x, y := h.X, h.Y

	rl.DrawText("Natural Selection", x, y, 20, rl.White)
	y += 30

	rl.DrawText(fmt.Sprintf("Round %d / %d", data.Round, data.Rounds), x, y, 16, rl.LightGray)
	y += 26

	rl.DrawText(fmt.Sprintf("Predators: %d  (avg level %.1f)", data.Totals.Predators, data.Totals.AvgPredatorLevel),
		x, y, 16, predatorColor)
	y += 20
	rl.DrawText(fmt.Sprintf("  avg starvation budget %.1f", data.Totals.AvgStarvation), x, y, 16, predatorColor)
	y += 20
	rl.DrawText(fmt.Sprintf("Prey: %d  (avg level %.1f)", data.Totals.Prey, data.Totals.AvgPreyLevel),
		x, y, 16, preyColor)
	y += 26

	if data.HaveReport {
		rl.DrawText(fmt.Sprintf("Round winner: %s", data.Winner), x, y, 16, rl.LightGray)
		y += 20
		rl.DrawText(fmt.Sprintf("Cell majority: %s", data.Majority), x, y, 16, rl.Gray)
		y += 20
	}
	rl.DrawText(fmt.Sprintf("Tally: predators %d - %d prey", data.Tally.Predator, data.Tally.Prey),
		x, y, 16, rl.LightGray)
	y += 30

	if data.Finished {
		rl.DrawText(fmt.Sprintf("GAME OVER - %s", overallLabel(data.OverallWinner)), x, y, 20, rl.Yellow)
	}
}

func overallLabel(o board.Outcome) string {
	switch o {
	case board.PredatorWin:
		return "predators win"
	case board.PreyWin:
		return "prey win"
	default:
		return "tie game"
	}
}
