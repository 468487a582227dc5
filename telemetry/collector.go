package telemetry

import "github.com/lmileski/natural-selection-game-program/board"

// Collector accumulates per-round rows and events over one game. It only
// gathers; writing is the output manager's job.
type Collector struct {
	start  Histogram
	rows   []RoundStats
	events []Event
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordStart captures the level histograms of the starting population.
func (c *Collector) RecordStart(predators, prey map[int]int) {
	c.start = Histogram{Predators: predators, Prey: prey}
}

// RecordRound appends one resolved round.
func (c *Collector) RecordRound(rep board.Report) {
	c.rows = append(c.rows, NewRoundStats(rep))
}

// RecordEvent retains an event for the end-of-game summary.
func (c *Collector) RecordEvent(e Event) {
	c.events = append(c.events, e)
}

// Start returns the starting histogram.
func (c *Collector) Start() Histogram { return c.start }

// Rows returns the accumulated round log.
func (c *Collector) Rows() []RoundStats { return c.rows }

// Events returns the accumulated events in record order.
func (c *Collector) Events() []Event { return c.events }

// Flush writes the round log and both histograms through the output
// manager and resets the collector for the next game. The end histogram
// comes from the caller: the collector never reads the grid itself.
func (c *Collector) Flush(om *OutputManager, end Histogram) error {
	if err := om.WriteRoundLog(c.rows); err != nil {
		return err
	}
	if err := om.WriteHistogram("start_populations", c.start); err != nil {
		return err
	}
	if err := om.WriteHistogram("end_populations", end); err != nil {
		return err
	}
	c.start = Histogram{}
	c.rows = nil
	c.events = nil
	return nil
}
