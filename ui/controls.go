package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lmileski/natural-selection-game-program/board"
)

// Actions is what the user asked for this frame.
type Actions struct {
	NewGame bool
	Toggle  bool // start or pause automatic play
	Step    bool // play a single round while paused
}

// ControlPanel holds the slider state for the next game's parameters.
// Sliders apply on New Game only; a running game never changes shape.
type ControlPanel struct {
	X, Y int32

	BoardLength float32
	Rounds      float32
	Starvation  float32
}

// NewControlPanel seeds the sliders from the current parameters.
func NewControlPanel(x, y int32, boardLength, rounds, starvation int) *ControlPanel {
	return &ControlPanel{
		X:           x,
		Y:           y,
		BoardLength: float32(boardLength),
		Rounds:      float32(rounds),
		Starvation:  float32(starvation),
	}
}

// Values returns the slider settings rounded to their integer parameters.
func (p *ControlPanel) Values() (boardLength, rounds, starvation int) {
	return int(p.BoardLength + 0.5), int(p.Rounds + 0.5), int(p.Starvation + 0.5)
}

// Draw renders the panel and returns the actions the user triggered.
// raygui widgets report interaction from the draw call itself.
func (p *ControlPanel) Draw(running, finished bool) Actions {
	x := float32(p.X)
	y := float32(p.Y)
	var actions Actions

	boardLength, rounds, starvation := p.Values()

	rl.DrawText("Next game", p.X, p.Y, 16, rl.White)
	y += 26

	rl.DrawText(fmt.Sprintf("Board %dx%d", boardLength, boardLength), p.X, int32(y), 14, rl.LightGray)
	y += 18
	p.BoardLength = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 200, Height: 18},
		"", "", p.BoardLength,
		float32(board.MinBoardLength), float32(board.MaxBoardLength),
	)
	y += 28

	rl.DrawText(fmt.Sprintf("Rounds %d", rounds), p.X, int32(y), 14, rl.LightGray)
	y += 18
	p.Rounds = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 200, Height: 18},
		"", "", p.Rounds, 1, 50,
	)
	y += 28

	rl.DrawText(fmt.Sprintf("Starvation budget %d", starvation), p.X, int32(y), 14, rl.LightGray)
	y += 18
	p.Starvation = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 200, Height: 18},
		"", "", p.Starvation, 1, 6,
	)
	y += 34

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 96, Height: 30}, "New Game") {
		actions.NewGame = true
	}
	toggleText := "Start"
	if running {
		toggleText = "Pause"
	}
	if !finished {
		if gui.Button(rl.Rectangle{X: x + 104, Y: y, Width: 96, Height: 30}, toggleText) {
			actions.Toggle = true
		}
	}
	y += 38

	if !running && !finished {
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: 96, Height: 30}, "Step") {
			actions.Step = true
		}
	}

	return actions
}
