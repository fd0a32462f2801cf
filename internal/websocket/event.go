package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
	EventTypeToggled  EventType = "toggled"
	EventTypeAdvanced EventType = "advanced"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeTransaction  EntityType = "transaction"
	EntityTypeRecurring    EntityType = "recurring"
	EntityTypeIncomeSource EntityType = "income_source"
	EntityTypeCategory     EntityType = "category"
)

// Event is the message pushed to an owner's connections after a mutation commits.
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`
	Entity    EntityType  `json:"entity"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// DeletedPayload identifies a removed entity
type DeletedPayload struct {
	ID string `json:"id"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeTransaction, payload)
}

func TransactionUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeTransaction, payload)
}

func TransactionDeleted(id string) Event {
	return NewEvent(EventTypeDeleted, EntityTypeTransaction, DeletedPayload{ID: id})
}

func RecurringCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeRecurring, payload)
}

func RecurringUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeRecurring, payload)
}

func RecurringToggled(payload interface{}) Event {
	return NewEvent(EventTypeToggled, EntityTypeRecurring, payload)
}

func RecurringDeleted(id string) Event {
	return NewEvent(EventTypeDeleted, EntityTypeRecurring, DeletedPayload{ID: id})
}

// RecurringAdvanced is published by the scheduler after occurrences were recorded
func RecurringAdvanced(payload interface{}) Event {
	return NewEvent(EventTypeAdvanced, EntityTypeRecurring, payload)
}

func IncomeSourceCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeIncomeSource, payload)
}

func IncomeSourceUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeIncomeSource, payload)
}

func IncomeSourceToggled(payload interface{}) Event {
	return NewEvent(EventTypeToggled, EntityTypeIncomeSource, payload)
}

func IncomeSourceDeleted(id string) Event {
	return NewEvent(EventTypeDeleted, EntityTypeIncomeSource, DeletedPayload{ID: id})
}

func CategoryCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeCategory, payload)
}

func CategoryUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeCategory, payload)
}

func CategoryDeleted(id string) Event {
	return NewEvent(EventTypeDeleted, EntityTypeCategory, DeletedPayload{ID: id})
}
