package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/appointment-service/internal/api/dto"
	"github.com/spec-kit/appointment-service/internal/auth"
	"github.com/spec-kit/appointment-service/internal/service"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// AppointmentsHandler manages booking endpoints.
type AppointmentsHandler struct {
	service *service.AppointmentService
	baseURL string
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService, baseURL string) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService, baseURL: baseURL}
}

// List GET /appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	page := parseInt(c.Query("page"), 1)
	appts, err := h.service.List(c.Context(), principal.User.ID, page)
	if err != nil {
		return err
	}

	items := make([]dto.AppointmentResponse, 0, len(appts))
	for i := range appts {
		items = append(items, appointmentResponse(&appts[i], h.baseURL))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Book POST /appointments.
func (h *AppointmentsHandler) Book(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	appt, err := h.service.Book(c.Context(), principal.User.ID, req.ProviderID, req.Date)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": appointmentResponse(appt, h.baseURL)})
}

// Cancel DELETE /appointments/:id.
func (h *AppointmentsHandler) Cancel(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid appointment id", nil)
	}

	appt, err := h.service.Cancel(c.Context(), id, principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentResponse(appt, h.baseURL)})
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
