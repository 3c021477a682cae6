package service

import "sync"

// EventType defines the type of event
type EventType string

const (
	EventChartCreated     EventType = "chart_created"
	EventChartUpdated     EventType = "chart_updated"
	EventChartDeleted     EventType = "chart_deleted"
	EventSelectionChanged EventType = "selection_changed"
)

// Event is a chart lifecycle or selection notification. Every event names
// the chart it concerns; Fields carries type-specific extras.
type Event struct {
	Type    EventType         `json:"type"`
	ChartID string            `json:"chart_id"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// EventBus fans events out to subscriber channels. Delivery is best-effort:
// a subscriber that cannot keep up misses events rather than blocking the
// publisher.
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	eb.subscribers = append(eb.subscribers, ch)
	eb.mu.Unlock()
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
