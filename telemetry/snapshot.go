package telemetry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lmileski/natural-selection-game-program/animal"
	"github.com/lmileski/natural-selection-game-program/board"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 1

// Snapshot holds a game's complete between-round state. It captures the
// survivor pools rather than cell contents: between rounds the pools are
// the authoritative population, and a restored game rebuilds its cells on
// the next scatter.
type Snapshot struct {
	Version int   `json:"version"`
	Seed    int64 `json:"seed"`

	BoardLength int `json:"board_length"`
	Starvation  int `json:"starvation"`
	Rounds      int `json:"rounds"`

	Round        int `json:"round"`
	PredatorWins int `json:"predator_wins"`
	PreyWins     int `json:"prey_wins"`

	Predators []PredatorState `json:"predators"`
	Prey      []PreyState     `json:"prey"`
}

// PredatorState is one predator's saved attributes.
type PredatorState struct {
	SkillLevel            int `json:"skill_level"`
	BirthRound            int `json:"birth_round"`
	RoundsUntilStarvation int `json:"rounds_until_starvation"`
}

// PreyState is one prey's saved attributes.
type PreyState struct {
	SkillLevel int `json:"skill_level"`
	BirthRound int `json:"birth_round"`
}

// NewSnapshot captures a grid's state between rounds.
func NewSnapshot(g *board.Grid, cfg board.Config, seed int64, rounds int) *Snapshot {
	predators, prey := g.Survivors()
	snap := &Snapshot{
		Version:      SnapshotVersion,
		Seed:         seed,
		BoardLength:  cfg.BoardLength,
		Starvation:   cfg.Starvation,
		Rounds:       rounds,
		Round:        g.Round(),
		PredatorWins: g.Wins().Predator,
		PreyWins:     g.Wins().Prey,
	}
	for _, p := range predators {
		snap.Predators = append(snap.Predators, PredatorState{
			SkillLevel:            p.SkillLevel,
			BirthRound:            p.BirthRound,
			RoundsUntilStarvation: p.RoundsUntilStarvation,
		})
	}
	for _, p := range prey {
		snap.Prey = append(snap.Prey, PreyState{
			SkillLevel: p.SkillLevel,
			BirthRound: p.BirthRound,
		})
	}
	return snap
}

// Restore rebuilds a grid from the snapshot. The next scatter repopulates
// the cells.
func (s *Snapshot) Restore(src board.Source) *board.Grid {
	cfg := board.Config{BoardLength: s.BoardLength, Starvation: s.Starvation}
	predators := make([]*animal.Predator, 0, len(s.Predators))
	for _, p := range s.Predators {
		pred := animal.NewPredator(p.SkillLevel, p.BirthRound, p.RoundsUntilStarvation)
		predators = append(predators, pred)
	}
	prey := make([]*animal.Prey, 0, len(s.Prey))
	for _, p := range s.Prey {
		prey = append(prey, animal.NewPrey(p.SkillLevel, p.BirthRound))
	}
	wins := board.Tally{Predator: s.PredatorWins, Prey: s.PreyWins}
	return board.RestoreGrid(cfg, src, s.Round, wins, predators, prey)
}

// SaveSnapshot writes the snapshot to path as indented JSON.
func SaveSnapshot(s *Snapshot, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot from path and checks its version.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", s.Version, SnapshotVersion)
	}
	return &s, nil
}
