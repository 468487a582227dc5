package game

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lmileski/natural-selection-game-program/board"
	"github.com/lmileski/natural-selection-game-program/config"
	"github.com/lmileski/natural-selection-game-program/ui"
)

// viewerPhase is where the round animation stands.
type viewerPhase int

const (
	phaseIdle      viewerPhase = iota // waiting to play the next round
	phaseRevealing                    // sweeping the results in, wave by wave
	phaseShowing                      // results up, countdown to the next round
	phaseDone                         // game over, summary on screen
)

// Viewer drives a game from the raylib main loop. The simulation only
// advances between frames; drawing reads state and never mutates it.
type Viewer struct {
	cfg  *config.Config
	opts Options
	game *Game

	view  ui.BoardView
	hud   ui.HUD
	panel *ui.ControlPanel

	order    [][]board.Position
	revealed int
	timer    float64
	phase    viewerPhase
	running  bool

	pending ui.Actions
}

// NewViewer lays out the window around the given game.
func NewViewer(cfg *config.Config, opts Options, g *Game) *Viewer {
	v := &Viewer{cfg: cfg, opts: opts}
	v.attach(g)

	boardSize := float32(cfg.UI.Height) - 40
	v.view = ui.BoardView{X: 20, Y: 20, Size: boardSize}
	panelX := int32(boardSize) + 60
	v.hud = ui.HUD{X: panelX, Y: 20}
	v.panel = ui.NewControlPanel(panelX, 300,
		cfg.Board.Length, cfg.Game.Rounds, cfg.Predator.Starvation)
	return v
}

func (v *Viewer) attach(g *Game) {
	v.game = g
	v.order = ui.DiagonalOrder(len(g.Grid().Cells))
	v.revealed = 0
	v.timer = 0
	v.phase = phaseIdle
	v.running = false
	if g.Finished() {
		v.phase = phaseDone
	}
}

// Update consumes last frame's control actions and advances the
// animation clock and, when due, the simulation.
func (v *Viewer) Update() {
	v.handleActions()

	dt := float64(rl.GetFrameTime())
	switch v.phase {
	case phaseIdle:
		if v.running && !v.game.Finished() {
			v.stepRound()
		}
	case phaseRevealing:
		v.timer += dt
		for v.timer >= v.cfg.UI.RevealTick && v.revealed < len(v.order) {
			v.timer -= v.cfg.UI.RevealTick
			v.revealed++
		}
		if v.revealed >= len(v.order) {
			v.phase = phaseShowing
			v.timer = 0
		}
	case phaseShowing:
		v.timer += dt
		if v.timer >= v.cfg.UI.RoundPause {
			v.game.AdvanceRound()
			if v.game.Finished() {
				v.finish()
			} else {
				v.phase = phaseIdle
			}
		}
	}
}

func (v *Viewer) stepRound() {
	v.game.Step()
	v.phase = phaseRevealing
	v.revealed = 0
	v.timer = 0
}

func (v *Viewer) finish() {
	v.phase = phaseDone
	v.running = false
	if sum, err := v.game.Finish(); err == nil {
		sum.Log()
	}
}

func (v *Viewer) handleActions() {
	actions := v.pending
	v.pending = ui.Actions{}

	if actions.NewGame {
		v.newGame()
		return
	}
	if actions.Toggle {
		v.running = !v.running
	}
	if actions.Step && v.phase == phaseIdle && !v.game.Finished() {
		v.stepRound()
	}
}

// newGame applies the panel's slider values through the settings layer
// and starts over. Invalid combinations leave the config untouched, so a
// slider can never smuggle a bad value past validation.
func (v *Viewer) newGame() {
	boardLength, rounds, starvation := v.panel.Values()
	v.cfg.Set("board", "length", strconv.Itoa(boardLength))
	v.cfg.Set("game", "rounds", strconv.Itoa(rounds))
	v.cfg.Set("predator", "starvation", strconv.Itoa(starvation))
	v.attach(New(v.cfg, v.opts))
}

// Draw renders the frame. Control widgets report clicks from the draw
// call; they are stored and applied on the next Update.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(16, 20, 26, 255))

	revealed := v.revealed
	if v.phase == phaseShowing || v.phase == phaseDone {
		revealed = len(v.order)
	}
	v.view.Draw(v.game.Grid().Cells, v.order, revealed)

	data := ui.HUDData{
		Round:         v.game.Grid().Round(),
		Rounds:        v.game.Rounds(),
		Totals:        v.game.Grid().Totals(),
		Tally:         v.game.Grid().Wins(),
		Finished:      v.phase == phaseDone,
		OverallWinner: v.game.Grid().OverallWinner(),
	}
	if rep, ok := v.game.LastReport(); ok {
		data.Winner = rep.Winner
		data.Majority = rep.Majority
		data.HaveReport = true
	}
	v.hud.Draw(data)

	v.pending = v.panel.Draw(v.running, v.phase == phaseDone)

	rl.EndDrawing()
}
