package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/reclamation-service/internal/auth"
	"github.com/spec-kit/reclamation-service/internal/config"
	"github.com/spec-kit/reclamation-service/internal/domain"
	"github.com/spec-kit/reclamation-service/internal/events"
	"github.com/spec-kit/reclamation-service/internal/repository"
	apperrors "github.com/spec-kit/reclamation-service/pkg/util"
)

// DirectoryService coordinates staff user workflows.
type DirectoryService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// DirectoryDependencies bundles requirements for the directory service.
type DirectoryDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// UserCreateInput describes user creation payload.
type UserCreateInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

// UserUpdateInput describes the optional fields of a user update.
type UserUpdateInput struct {
	Name       *string
	Email      *string
	Password   *string
	Role       *string
	Department *string
}

// NewDirectoryService builds the service.
func NewDirectoryService(cfg config.Config, deps DirectoryDependencies) *DirectoryService {
	return &DirectoryService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// CreateUser creates a new staff account. The submitted password is stored
// only as a bcrypt hash.
func (s *DirectoryService) CreateUser(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		PasswordHash: hash,
		Role:         input.Role,
		Department:   input.Department,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventUserCreated,
		EntityID: user.ID,
		Payload: events.UserCreatedPayload{
			Name: user.Name,
			Role: user.Role,
		},
	})
	return user, nil
}

// ListUsers returns all staff accounts.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// Login verifies a name/password pair and returns the user projection. An
// unknown name is a not-found condition; a credential mismatch is an
// unauthorized one.
func (s *DirectoryService) Login(ctx context.Context, name, password string) (*domain.UserProjection, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("user", map[string]any{"name": name})
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid password")
	}
	projection := user.Project()
	return &projection, nil
}

// UpdateUser merges the submitted fields into an existing account. A new
// password is re-hashed before it reaches the store.
func (s *DirectoryService) UpdateUser(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	update := repository.UserUpdate{
		Name:       input.Name,
		Email:      input.Email,
		Role:       input.Role,
		Department: input.Department,
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.MapError(err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// DeleteUser removes an account by identifier. Deleting an absent account is
// still reported as success; callers cannot distinguish the two outcomes.
func (s *DirectoryService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *DirectoryService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
