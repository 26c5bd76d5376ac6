package logging

import (
	"github.com/rs/zerolog"

	"jordanella.com/coc-farm-go/internal/events"
)

// EventLogger writes every published event at debug level
type EventLogger struct {
	logger        zerolog.Logger
	eventBus      events.EventBus
	subscriptions []events.SubscriptionID
}

// NewEventLogger subscribes to all bot events
func NewEventLogger(eventBus events.EventBus, logger zerolog.Logger) *EventLogger {
	el := &EventLogger{
		logger:   logger,
		eventBus: eventBus,
	}

	for _, eventType := range events.AllTypes {
		el.subscriptions = append(el.subscriptions, eventBus.Subscribe(eventType, el.handleEvent))
	}

	return el
}

func (el *EventLogger) handleEvent(event events.Event) {
	el.logger.Debug().
		Str("event_type", string(event.Type)).
		Str("source", event.Source).
		Fields(event.Data).
		Msg("Event")
}

// Close unsubscribes from the bus
func (el *EventLogger) Close() error {
	for _, id := range el.subscriptions {
		el.eventBus.Unsubscribe(id)
	}
	el.subscriptions = nil
	return nil
}
