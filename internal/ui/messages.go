package ui

import (
	"pricewatch/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// statusClearMsg clears a transient status bar message
type statusClearMsg struct {
	seq int
}
