package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/lmileski/natural-selection-game-program/board"
)

// HighlightType identifies the kind of highlight.
type HighlightType string

const (
	HighlightLeadChange HighlightType = "lead_change"
	HighlightCollapse   HighlightType = "population_collapse"
)

// Highlight marks a round worth revisiting when reading a game's log.
type Highlight struct {
	Type        HighlightType
	Round       int
	Description string
}

// Log writes the highlight through slog.
func (h Highlight) Log() {
	slog.Info("highlight",
		"type", string(h.Type),
		"round", h.Round,
		"description", h.Description,
	)
}

// HighlightDetector watches the stream of round reports for lead changes
// in the running win tally and for population collapses.
type HighlightDetector struct {
	hasPrev bool
	prev    board.Report
	leader  board.Outcome // tally leader after the last round checked
}

// NewHighlightDetector creates a detector with no history.
func NewHighlightDetector() *HighlightDetector {
	return &HighlightDetector{leader: board.Tie}
}

// Check analyzes one round's report and returns any triggered highlights.
// Reports must arrive in round order.
func (d *HighlightDetector) Check(rep board.Report) []Highlight {
	var highlights []Highlight

	leader := tallyLeader(rep.Tally)
	if d.hasPrev && leader != d.leader {
		highlights = append(highlights, Highlight{
			Type:  HighlightLeadChange,
			Round: rep.Round,
			Description: fmt.Sprintf("tally lead moved from %s to %s (%d-%d)",
				d.leader, leader, rep.Tally.Predator, rep.Tally.Prey),
		})
	}

	// A side losing half or more of its population in one round. Tiny
	// populations churn constantly, so require at least four before.
	if d.hasPrev {
		if h := collapse("predators", rep.Round, d.prev.Totals.Predators, rep.Totals.Predators); h != nil {
			highlights = append(highlights, *h)
		}
		if h := collapse("prey", rep.Round, d.prev.Totals.Prey, rep.Totals.Prey); h != nil {
			highlights = append(highlights, *h)
		}
	}

	d.prev = rep
	d.leader = leader
	d.hasPrev = true
	return highlights
}

func collapse(side string, round, before, after int) *Highlight {
	if before < 4 || after > before/2 {
		return nil
	}
	return &Highlight{
		Type:        HighlightCollapse,
		Round:       round,
		Description: fmt.Sprintf("%s collapsed from %d to %d", side, before, after),
	}
}

func tallyLeader(t board.Tally) board.Outcome {
	switch {
	case t.Predator > t.Prey:
		return board.PredatorWin
	case t.Prey > t.Predator:
		return board.PreyWin
	default:
		return board.Tie
	}
}
