package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/reclamation-service/internal/domain"
	"github.com/spec-kit/reclamation-service/internal/events"
	"github.com/spec-kit/reclamation-service/internal/repository"
	apperrors "github.com/spec-kit/reclamation-service/pkg/util"
)

// ReclamationService coordinates reclamation workflows, including the
// status-update flow that resolves assignee references.
type ReclamationService struct {
	reclamations repository.ReclamationRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// ReclamationDependencies bundles repositories for the reclamation service.
type ReclamationDependencies struct {
	ReclamationRepo repository.ReclamationRepository
	UserRepo        repository.UserRepository
	Dispatcher      events.Dispatcher
}

// ReclamationCreateInput describes reclamation creation payload.
type ReclamationCreateInput struct {
	Subject     string
	Description string
	RoomNumber  string
	Category    string
	GuestName   string
	Status      domain.ReclamationStatus
}

// ReclamationUpdateInput describes the optional fields of a generic update.
type ReclamationUpdateInput struct {
	Subject     *string
	Description *string
	RoomNumber  *string
	Category    *string
	GuestName   *string
	Status      *domain.ReclamationStatus
}

// NewReclamationService constructs the service.
func NewReclamationService(deps ReclamationDependencies) *ReclamationService {
	return &ReclamationService{
		reclamations: deps.ReclamationRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// CreateReclamation records a new complaint. Status defaults to open.
func (s *ReclamationService) CreateReclamation(ctx context.Context, input ReclamationCreateInput) (*domain.Reclamation, error) {
	reclamation := &domain.Reclamation{
		ReferenceKey: generateReferenceKey(),
		Subject:      strings.TrimSpace(input.Subject),
		Description:  strings.TrimSpace(input.Description),
		RoomNumber:   input.RoomNumber,
		Category:     input.Category,
		GuestName:    input.GuestName,
		Status:       input.Status,
	}
	if reclamation.Status == "" {
		reclamation.Status = domain.ReclamationStatusOpen
	}

	if err := s.reclamations.Create(ctx, reclamation); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventReclamationCreated,
		EntityID: reclamation.ID,
		Payload: events.ReclamationCreatedPayload{
			ReferenceKey: reclamation.ReferenceKey,
			Subject:      reclamation.Subject,
			Status:       reclamation.Status,
		},
	})
	return reclamation, nil
}

// ListReclamations returns all complaint records.
func (s *ReclamationService) ListReclamations(ctx context.Context) ([]domain.Reclamation, error) {
	reclamations, err := s.reclamations.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return reclamations, nil
}

// UpdateStatus applies a status change and, when an assignee reference is
// given, resolves it to a user identifier before persisting. The reclamation
// is checked first; no user lookup happens for a missing reclamation, and a
// failed name resolution leaves the record untouched.
func (s *ReclamationService) UpdateStatus(ctx context.Context, id string, status domain.ReclamationStatus, assignee *domain.AssigneeRef) (*domain.Reclamation, error) {
	reclamation, err := s.reclamations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("reclamation", map[string]any{"reclamation_id": id})
		}
		return nil, apperrors.MapError(err)
	}

	assignedTo, err := s.resolveAssignee(ctx, assignee)
	if err != nil {
		return nil, err
	}

	oldStatus := reclamation.Status
	updated, err := s.reclamations.UpdateStatus(ctx, reclamation.ID, status, assignedTo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("reclamation", map[string]any{"reclamation_id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:     events.EventReclamationStatusChanged,
		EntityID: updated.ID,
		Payload: events.ReclamationStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: updated.Status,
		},
	})
	if assignedTo != nil {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventReclamationAssigned,
			EntityID: updated.ID,
			Payload: events.ReclamationAssignedPayload{
				AssignedTo: updated.AssignedTo,
			},
		})
	}
	return updated, nil
}

// resolveAssignee turns an assignee reference into a user identifier. An
// identifier reference passes through unchanged; a name reference requires a
// directory lookup.
func (s *ReclamationService) resolveAssignee(ctx context.Context, assignee *domain.AssigneeRef) (*string, error) {
	if assignee == nil {
		return nil, nil
	}
	switch assignee.Kind() {
	case domain.AssigneeKindID:
		id := assignee.Value()
		return &id, nil
	case domain.AssigneeKindName:
		user, err := s.users.GetByName(ctx, assignee.Value())
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, apperrors.NewNotFound("assigned user", map[string]any{"name": assignee.Value()})
			}
			return nil, apperrors.MapError(err)
		}
		return &user.ID, nil
	default:
		return nil, apperrors.NewValidationError("unknown assignee reference", nil)
	}
}

// UpdateReclamation merges the submitted fields into an existing record and
// refreshes its updatedAt timestamp.
func (s *ReclamationService) UpdateReclamation(ctx context.Context, id string, input ReclamationUpdateInput) (*domain.Reclamation, error) {
	update := repository.ReclamationUpdate{
		Subject:     input.Subject,
		Description: input.Description,
		RoomNumber:  input.RoomNumber,
		Category:    input.Category,
		GuestName:   input.GuestName,
		Status:      input.Status,
	}
	reclamation, err := s.reclamations.UpdateFields(ctx, id, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("reclamation", map[string]any{"reclamation_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return reclamation, nil
}

// DeleteReclamation removes a record by identifier. Deleting an absent record
// is still reported as success.
func (s *ReclamationService) DeleteReclamation(ctx context.Context, id string) error {
	if _, err := s.reclamations.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func generateReferenceKey() string {
	return "REC-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *ReclamationService) publishEvent(ctx context.Context, event events.Event) {
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
