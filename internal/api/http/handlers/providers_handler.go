package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/appointment-service/internal/api/dto"
	"github.com/spec-kit/appointment-service/internal/auth"
	"github.com/spec-kit/appointment-service/internal/service"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// ProvidersHandler serves provider discovery, availability and the
// provider's own day schedule.
type ProvidersHandler struct {
	service *service.ProviderService
	baseURL string
}

// NewProvidersHandler constructs handler.
func NewProvidersHandler(providerService *service.ProviderService, baseURL string) *ProvidersHandler {
	return &ProvidersHandler{service: providerService, baseURL: baseURL}
}

// List GET /providers.
func (h *ProvidersHandler) List(c *fiber.Ctx) error {
	page := parseInt(c.Query("page"), 1)
	providers, err := h.service.ListProviders(c.Context(), page)
	if err != nil {
		return err
	}

	items := make([]dto.UserResponse, 0, len(providers))
	for i := range providers {
		items = append(items, userResponse(&providers[i], h.baseURL))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Availability GET /providers/:providerId/available.
func (h *ProvidersHandler) Availability(c *fiber.Ctx) error {
	providerID, err := strconv.ParseInt(c.Params("providerId"), 10, 64)
	if err != nil {
		return apperrors.NewValidationError("invalid provider id", nil)
	}
	date, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return err
	}

	slots, err := h.service.DayAvailability(c.Context(), providerID, date)
	if err != nil {
		return err
	}

	items := make([]dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		items = append(items, dto.SlotResponse{
			Time:      slot.Time,
			Value:     slot.Value,
			Available: slot.Available,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Schedule GET /schedule. Provider-only; lists the caller's appointments
// for the requested day with the booking user expanded.
func (h *ProvidersHandler) Schedule(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("user required")
	}

	date, err := parseDateQuery(c.Query("date"))
	if err != nil {
		return err
	}

	appts, err := h.service.DaySchedule(c.Context(), principal.User.ID, date)
	if err != nil {
		return err
	}

	items := make([]dto.ScheduleEntryResponse, 0, len(appts))
	for _, appt := range appts {
		entry := dto.ScheduleEntryResponse{
			ID:   appt.ID,
			Date: appt.Date,
		}
		if appt.User != nil {
			entry.User = userResponse(appt.User, h.baseURL)
		}
		items = append(items, entry)
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseDateQuery(val string) (time.Time, error) {
	if val == "" {
		return time.Time{}, apperrors.NewValidationError("date query parameter required", nil)
	}
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("invalid date", map[string]any{"date": val})
	}
	return t, nil
}
