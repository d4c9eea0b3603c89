package domain

import "time"

// User is the domain model for hotel staff accounts. Name doubles as a
// human-readable handle when assigning reclamations and is assumed unique in
// practice, though uniqueness is not enforced by the store.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProjection is the reduced view of a user returned on login. It never
// carries credential material.
type UserProjection struct {
	ID    string
	Name  string
	Email string
	Role  string
}

// Project strips a user down to its login projection.
func (u *User) Project() UserProjection {
	return UserProjection{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
