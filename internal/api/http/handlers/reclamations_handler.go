package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/reclamation-service/internal/api/dto"
	"github.com/spec-kit/reclamation-service/internal/domain"
	"github.com/spec-kit/reclamation-service/internal/service"
	apperrors "github.com/spec-kit/reclamation-service/pkg/util"
)

// ReclamationsHandler manages complaint tracker endpoints.
type ReclamationsHandler struct {
	service *service.ReclamationService
}

// NewReclamationsHandler constructs handler.
func NewReclamationsHandler(reclamationService *service.ReclamationService) *ReclamationsHandler {
	return &ReclamationsHandler{service: reclamationService}
}

// CreateReclamation handles POST /api/reclamations/create.
func (h *ReclamationsHandler) CreateReclamation(c *fiber.Ctx) error {
	var req dto.CreateReclamationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Subject == "" {
		return apperrors.NewValidationError("subject required", nil)
	}

	reclamation, err := h.service.CreateReclamation(c.Context(), service.ReclamationCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		GuestName:   req.GuestName,
		Status:      domain.ReclamationStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": reclamationResponse(reclamation)})
}

// ListReclamations handles GET /api/reclamations.
func (h *ReclamationsHandler) ListReclamations(c *fiber.Ctx) error {
	reclamations, err := h.service.ListReclamations(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ReclamationResponse, 0, len(reclamations))
	for i := range reclamations {
		items = append(items, reclamationResponse(&reclamations[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateStatus handles PUT /api/reclamations/:id/status. The assignedTo field
// is classified once here: a 24-hex value is an identifier, anything else is
// a staff name resolved by the service.
func (h *ReclamationsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	var assignee *domain.AssigneeRef
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		ref := domain.ParseAssigneeRef(*req.AssignedTo)
		assignee = &ref
	}

	reclamation, err := h.service.UpdateStatus(c.Context(), c.Params("id"), domain.ReclamationStatus(req.Status), assignee)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reclamationResponse(reclamation)})
}

// UpdateReclamation handles PUT /api/reclamations/update/:id.
func (h *ReclamationsHandler) UpdateReclamation(c *fiber.Ctx) error {
	var req dto.UpdateReclamationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.ReclamationUpdateInput{
		Subject:     req.Subject,
		Description: req.Description,
		RoomNumber:  req.RoomNumber,
		Category:    req.Category,
		GuestName:   req.GuestName,
	}
	if req.Status != nil {
		status := domain.ReclamationStatus(*req.Status)
		input.Status = &status
	}

	reclamation, err := h.service.UpdateReclamation(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": reclamationResponse(reclamation)})
}

// DeleteReclamation handles DELETE /api/reclamations/:id. Succeeds even when
// nothing matched the identifier.
func (h *ReclamationsHandler) DeleteReclamation(c *fiber.Ctx) error {
	if err := h.service.DeleteReclamation(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "reclamation deleted"}})
}

func reclamationResponse(reclamation *domain.Reclamation) dto.ReclamationResponse {
	return dto.ReclamationResponse{
		ID:           reclamation.ID,
		ReferenceKey: reclamation.ReferenceKey,
		Subject:      reclamation.Subject,
		Description:  reclamation.Description,
		RoomNumber:   reclamation.RoomNumber,
		Category:     reclamation.Category,
		GuestName:    reclamation.GuestName,
		Status:       string(reclamation.Status),
		AssignedTo:   reclamation.AssignedTo,
		CreatedAt:    reclamation.CreatedAt,
		UpdatedAt:    reclamation.UpdatedAt,
	}
}
