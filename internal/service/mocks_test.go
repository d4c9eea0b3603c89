package service_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/reclamation-service/internal/domain"
	"github.com/spec-kit/reclamation-service/internal/repository"
	apperrors "github.com/spec-kit/reclamation-service/pkg/util"
)

// Mock repositories backed by in-memory maps. Identifiers are real ObjectIDs
// so that shape checks behave exactly as against the store.

type mockUserRepository struct {
	mu          sync.Mutex
	users       map[string]domain.User
	nameLookups int
	failWith    error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]domain.User{}}
}

func (m *mockUserRepository) Create(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID().Hex()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepository) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		result = append(result, user)
	}
	return result, nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &user, nil
}

func (m *mockUserRepository) GetByName(_ context.Context, name string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nameLookups++
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Name == name {
			found := user
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) Update(_ context.Context, id string, update repository.UserUpdate) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.Department != nil {
		user.Department = *update.Department
	}
	m.users[id] = user
	return &user, nil
}

func (m *mockUserRepository) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return 0, apperrors.NewValidationError("malformed identifier", nil)
	}
	if _, ok := m.users[id]; !ok {
		return 0, nil
	}
	delete(m.users, id)
	return 1, nil
}

type mockReclamationRepository struct {
	mu           sync.Mutex
	reclamations map[string]domain.Reclamation
	failWith     error
}

func newMockReclamationRepository() *mockReclamationRepository {
	return &mockReclamationRepository{reclamations: map[string]domain.Reclamation{}}
}

func (m *mockReclamationRepository) Create(_ context.Context, reclamation *domain.Reclamation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	now := time.Now().UTC()
	reclamation.ID = primitive.NewObjectID().Hex()
	reclamation.CreatedAt = now
	reclamation.UpdatedAt = now
	m.reclamations[reclamation.ID] = *reclamation
	return nil
}

func (m *mockReclamationRepository) List(_ context.Context) ([]domain.Reclamation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := make([]domain.Reclamation, 0, len(m.reclamations))
	for _, reclamation := range m.reclamations {
		result = append(result, reclamation)
	}
	return result, nil
}

func (m *mockReclamationRepository) GetByID(_ context.Context, id string) (*domain.Reclamation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	reclamation, ok := m.reclamations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &reclamation, nil
}

func (m *mockReclamationRepository) UpdateFields(_ context.Context, id string, update repository.ReclamationUpdate) (*domain.Reclamation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	reclamation, ok := m.reclamations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if update.Subject != nil {
		reclamation.Subject = *update.Subject
	}
	if update.Description != nil {
		reclamation.Description = *update.Description
	}
	if update.RoomNumber != nil {
		reclamation.RoomNumber = *update.RoomNumber
	}
	if update.Category != nil {
		reclamation.Category = *update.Category
	}
	if update.GuestName != nil {
		reclamation.GuestName = *update.GuestName
	}
	if update.Status != nil {
		reclamation.Status = *update.Status
	}
	reclamation.UpdatedAt = time.Now().UTC()
	m.reclamations[id] = reclamation
	return &reclamation, nil
}

func (m *mockReclamationRepository) UpdateStatus(_ context.Context, id string, status domain.ReclamationStatus, assignedTo *string) (*domain.Reclamation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	if assignedTo != nil && !domain.IsObjectIDHex(*assignedTo) {
		return nil, apperrors.NewValidationError("malformed identifier", nil)
	}
	reclamation, ok := m.reclamations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	reclamation.Status = status
	if assignedTo != nil {
		value := *assignedTo
		reclamation.AssignedTo = &value
	}
	reclamation.UpdatedAt = time.Now().UTC()
	m.reclamations[id] = reclamation
	return &reclamation, nil
}

func (m *mockReclamationRepository) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !domain.IsObjectIDHex(id) {
		return 0, apperrors.NewValidationError("malformed identifier", nil)
	}
	if _, ok := m.reclamations[id]; !ok {
		return 0, nil
	}
	delete(m.reclamations, id)
	return 1, nil
}
