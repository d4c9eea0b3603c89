package dto

import "time"

// CreateReclamationRequest payload.
type CreateReclamationRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	RoomNumber  string `json:"roomNumber"`
	Category    string `json:"category"`
	GuestName   string `json:"guestName"`
	Status      string `json:"status"`
}

// UpdateReclamationRequest payload; nil fields are left unchanged.
type UpdateReclamationRequest struct {
	Subject     *string `json:"subject"`
	Description *string `json:"description"`
	RoomNumber  *string `json:"roomNumber"`
	Category    *string `json:"category"`
	GuestName   *string `json:"guestName"`
	Status      *string `json:"status"`
}

// UpdateStatusRequest payload for the specialized status-update operation.
// AssignedTo accepts either a 24-hex user identifier or a staff name.
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

// ReclamationResponse response.
type ReclamationResponse struct {
	ID           string    `json:"id"`
	ReferenceKey string    `json:"referenceKey"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description,omitempty"`
	RoomNumber   string    `json:"roomNumber,omitempty"`
	Category     string    `json:"category,omitempty"`
	GuestName    string    `json:"guestName,omitempty"`
	Status       string    `json:"status"`
	AssignedTo   *string   `json:"assignedTo,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
