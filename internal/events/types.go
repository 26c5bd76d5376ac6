package events

import (
	"time"

	"jordanella.com/coc-farm-go/internal/loot"
)

// EventType represents different types of events in the system
type EventType string

const (
	// Search events
	EventTypeBaseChecked EventType = "base.checked"
	EventTypeBaseFound   EventType = "base.found"

	// Attack events
	EventTypeAttackCompleted EventType = "attack.completed"

	// Session events
	EventTypeSessionStarted   EventType = "session.started"
	EventTypeSessionCompleted EventType = "session.completed"
)

// AllTypes lists every event the bot publishes
var AllTypes = []EventType{
	EventTypeSessionStarted,
	EventTypeBaseChecked,
	EventTypeBaseFound,
	EventTypeAttackCompleted,
	EventTypeSessionCompleted,
}

// Data keys
const (
	KeyReading    = "reading"
	KeyLoot       = "loot"
	KeyTotals     = "totals"
	KeySearches   = "searches"
	KeyAttack     = "attack"
	KeyAttacks    = "attacks"
	KeyElapsed    = "elapsed"
	KeyTargets    = "targets"
	KeyThresholds = "thresholds"
	KeyError      = "error"
)

// Event represents a system event with metadata
type Event struct {
	Type      EventType              // Type of event
	Source    string                 // Component that emitted event
	Timestamp time.Time              // When the event occurred
	Data      map[string]interface{} // Event-specific data
}

// EventHandler is a function that processes an event
type EventHandler func(Event)

// SubscriptionID uniquely identifies a subscription
type SubscriptionID int64

// EventBus defines the interface for event pub/sub
type EventBus interface {
	Subscribe(eventType EventType, handler EventHandler) SubscriptionID
	Unsubscribe(id SubscriptionID)
	Publish(event Event)
	Stop()
}

// Publisher is the part of EventBus producers need
type Publisher interface {
	Publish(event Event)
}

func copyReading(r loot.Reading) loot.Reading {
	out := loot.NewReading()
	for k, v := range r {
		out[k] = v
	}
	return out
}

// NewSessionStartedEvent creates a session started event
func NewSessionStartedEvent(thresholds loot.Thresholds, targets loot.Amounts) Event {
	return Event{
		Type:      EventTypeSessionStarted,
		Source:    "bot",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			KeyThresholds: thresholds,
			KeyTargets:    targets,
		},
	}
}

// NewBaseCheckedEvent creates an event for a base that was read during search
func NewBaseCheckedEvent(reading loot.Reading, searches int, qualified bool) Event {
	eventType := EventTypeBaseChecked
	if qualified {
		eventType = EventTypeBaseFound
	}
	return Event{
		Type:      eventType,
		Source:    "search",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			KeyReading:  copyReading(reading),
			KeySearches: searches,
		},
	}
}

// NewAttackCompletedEvent creates an attack completed event
func NewAttackCompletedEvent(attack int, gained loot.Reading, totals loot.Totals) Event {
	return Event{
		Type:      EventTypeAttackCompleted,
		Source:    "attack",
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			KeyAttack: attack,
			KeyLoot:   copyReading(gained),
			KeyTotals: totals,
		},
	}
}

// NewSessionCompletedEvent creates a session completed event. err is nil
// when the goals were reached.
func NewSessionCompletedEvent(attacks int, totals loot.Totals, elapsed time.Duration, err error) Event {
	data := map[string]interface{}{
		KeyAttacks: attacks,
		KeyTotals:  totals,
		KeyElapsed: elapsed,
	}
	if err != nil {
		data[KeyError] = err.Error()
	}
	return Event{
		Type:      EventTypeSessionCompleted,
		Source:    "bot",
		Timestamp: time.Now(),
		Data:      data,
	}
}
