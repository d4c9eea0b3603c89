package events

import (
	"time"

	"github.com/spec-kit/reclamation-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserCreated              EventType = "user_created"
	EventReclamationCreated       EventType = "reclamation_created"
	EventReclamationStatusChanged EventType = "reclamation_status_changed"
	EventReclamationAssigned      EventType = "reclamation_assigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// ReclamationCreatedPayload payload.
type ReclamationCreatedPayload struct {
	ReferenceKey string                   `json:"reference_key"`
	Subject      string                   `json:"subject"`
	Status       domain.ReclamationStatus `json:"status"`
}

// ReclamationStatusChangedPayload payload.
type ReclamationStatusChangedPayload struct {
	OldStatus domain.ReclamationStatus `json:"old_status"`
	NewStatus domain.ReclamationStatus `json:"new_status"`
}

// ReclamationAssignedPayload payload.
type ReclamationAssignedPayload struct {
	AssignedTo *string `json:"assigned_to,omitempty"`
}
