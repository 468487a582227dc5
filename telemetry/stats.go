// Package telemetry provides round statistics, CSV reporting, JSON
// snapshots, and highlight detection for finished and running games.
package telemetry

import (
	"github.com/lmileski/natural-selection-game-program/board"
)

// RoundStats is one row of the round log. Column names match the
// spreadsheet the lab works from.
type RoundStats struct {
	Round            int     `csv:"Round"`
	Predators        int     `csv:"Predator Population"`
	Prey             int     `csv:"Prey Population"`
	AvgPredatorLevel float64 `csv:"Average Predator Level"`
	AvgPreyLevel     float64 `csv:"Average Prey Level"`
	AvgStarvation    float64 `csv:"Average Rounds Until Starvation"`
	Winner           string  `csv:"Animal Team Winner"`
	Majority         string  `csv:"Cell Majority Winner"`
	CulledPredators  int     `csv:"Culled Predators"`
	CulledPrey       int     `csv:"Culled Prey"`
}

// NewRoundStats flattens a round report into a log row.
func NewRoundStats(rep board.Report) RoundStats {
	return RoundStats{
		Round:            rep.Round,
		Predators:        rep.Totals.Predators,
		Prey:             rep.Totals.Prey,
		AvgPredatorLevel: rep.Totals.AvgPredatorLevel,
		AvgPreyLevel:     rep.Totals.AvgPreyLevel,
		AvgStarvation:    rep.Totals.AvgStarvation,
		Winner:           rep.Winner.String(),
		Majority:         rep.Majority.String(),
		CulledPredators:  rep.CulledPredators,
		CulledPrey:       rep.CulledPrey,
	}
}

// Histogram maps skill level to population, per side.
type Histogram struct {
	Predators map[int]int
	Prey      map[int]int
}

// HistogramRow is one level of an exported histogram.
type HistogramRow struct {
	Level     int `csv:"Skill Level"`
	Predators int `csv:"Predator Population"`
	Prey      int `csv:"Prey Population"`
}

// Rows flattens the histogram for export, padded from level 0 through the
// highest populated level on either side so the spreadsheet axis has no
// gaps. An empty histogram produces no rows.
func (h Histogram) Rows() []HistogramRow {
	max := -1
	for level := range h.Predators {
		if level > max {
			max = level
		}
	}
	for level := range h.Prey {
		if level > max {
			max = level
		}
	}
	if max < 0 {
		return nil
	}
	rows := make([]HistogramRow, max+1)
	for level := 0; level <= max; level++ {
		rows[level] = HistogramRow{
			Level:     level,
			Predators: h.Predators[level],
			Prey:      h.Prey[level],
		}
	}
	return rows
}
