package telemetry

import "log/slog"

// EventType identifies game events.
type EventType string

const (
	EventGameStart     EventType = "game_start"
	EventRoundResolved EventType = "round_resolved"
	EventExtinction    EventType = "extinction"
	EventCapCull       EventType = "cap_cull"
	EventGameEnd       EventType = "game_end"
)

// Event is a single notable moment in a game.
type Event struct {
	Type  EventType
	Round int
	Side  string // side involved, empty for whole-game events
	Count int    // meaning depends on Type: animals culled, rounds planned, ...
}

// NewGameStartEvent marks the start of a game of the given length.
func NewGameStartEvent(rounds int) Event {
	return Event{Type: EventGameStart, Count: rounds}
}

// NewRoundResolvedEvent marks one completed resolution pass.
func NewRoundResolvedEvent(round int, winner string) Event {
	return Event{Type: EventRoundResolved, Round: round, Side: winner}
}

// NewExtinctionEvent marks a side's population hitting zero.
func NewExtinctionEvent(round int, side string) Event {
	return Event{Type: EventExtinction, Round: round, Side: side}
}

// NewCapCullEvent marks animals removed by the population cap.
func NewCapCullEvent(round int, side string, culled int) Event {
	return Event{Type: EventCapCull, Round: round, Side: side, Count: culled}
}

// NewGameEndEvent marks the end of a game and its overall winner.
func NewGameEndEvent(round int, winner string) Event {
	return Event{Type: EventGameEnd, Round: round, Side: winner}
}

// Log writes the event through slog.
func (e Event) Log() {
	slog.Info("event",
		"type", string(e.Type),
		"round", e.Round,
		"side", e.Side,
		"count", e.Count,
	)
}
