package game

import "fmt"

const eventLogCapacity = 64

// EventKind classifies something that happened during a tick.
type EventKind uint8

const (
	EventPhase EventKind = iota
	EventShot
	EventEnemyDestroyed
	EventPlayerHit
	EventDefeat
	EventWave
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	EventPhase:          "phase",
	EventShot:           "shot",
	EventEnemyDestroyed: "enemy_destroyed",
	EventPlayerHit:      "player_hit",
	EventDefeat:         "defeat",
	EventWave:           "wave",
}

func (k EventKind) String() string {
	if k >= eventKindCount {
		return "unknown"
	}
	return eventKindNames[k]
}

// Event is one recorded gameplay event.
type Event struct {
	Tick   int
	Kind   EventKind
	X, Y   float64
	Owner  Owner  // for shots: who fired
	Detail string // human-readable detail, e.g. "rammed" or "idle → running"
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] enemy_destroyed  shot (412,118)
func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-16s %s (%.0f,%.0f)", e.Tick, e.Kind, e.Detail, e.X, e.Y)
}

// EventLog keeps a ring buffer of recent events for the HUD feed, running
// totals per kind, and a queue of events not yet handed to the frame driver.
type EventLog struct {
	entries []Event
	head    int
	count   int
	totals  [eventKindCount]int
	pending []Event
}

func NewEventLog() *EventLog {
	return &EventLog{entries: make([]Event, eventLogCapacity)}
}

// Add records e.
func (el *EventLog) Add(e Event) {
	el.entries[el.head] = e
	el.head = (el.head + 1) % len(el.entries)
	if el.count < len(el.entries) {
		el.count++
	}
	if e.Kind < eventKindCount {
		el.totals[e.Kind]++
	}
	el.pending = append(el.pending, e)
}

// Recent returns up to n entries, oldest first.
func (el *EventLog) Recent(n int) []Event {
	if n > el.count || n < 0 {
		n = el.count
	}
	out := make([]Event, n)
	size := len(el.entries)
	for i := 0; i < n; i++ {
		idx := (el.head - n + i + size) % size
		out[i] = el.entries[idx]
	}
	return out
}

// Drain returns and forgets the events added since the last Drain.
func (el *EventLog) Drain() []Event {
	out := el.pending
	el.pending = nil
	return out
}

// Total returns how many events of kind have been recorded since the log was created.
func (el *EventLog) Total(kind EventKind) int {
	if kind >= eventKindCount {
		return 0
	}
	return el.totals[kind]
}
