package domain

import "time"

// ReclamationStatus labels lifecycle states for reclamations. The API accepts
// free-form status strings; these constants cover the well-known values.
type ReclamationStatus string

const (
	ReclamationStatusOpen       ReclamationStatus = "open"
	ReclamationStatusInProgress ReclamationStatus = "in_progress"
	ReclamationStatusResolved   ReclamationStatus = "resolved"
	ReclamationStatusClosed     ReclamationStatus = "closed"
)

// Reclamation is the aggregate for guest complaints and service requests.
// AssignedTo, when set, is always a user identifier, never a name.
type Reclamation struct {
	ID           string
	ReferenceKey string
	Subject      string
	Description  string
	RoomNumber   string
	Category     string
	GuestName    string
	Status       ReclamationStatus
	AssignedTo   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
