package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/appointment-service/internal/clock"
	"github.com/spec-kit/appointment-service/internal/domain"
	"github.com/spec-kit/appointment-service/internal/repository"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// workday hours offered by every provider
var scheduleHours = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

// Slot is one bookable hour in a provider's day.
type Slot struct {
	Time      string
	Value     time.Time
	Available bool
}

// ProviderService serves provider discovery, availability and schedules.
type ProviderService struct {
	users        repository.UserRepository
	appointments repository.AppointmentRepository
	clock        clock.Clock
}

// ProviderDependencies bundles collaborators for the provider service.
type ProviderDependencies struct {
	UserRepo        repository.UserRepository
	AppointmentRepo repository.AppointmentRepository
	Clock           clock.Clock
}

// NewProviderService constructs the service.
func NewProviderService(deps ProviderDependencies) *ProviderService {
	c := deps.Clock
	if c == nil {
		c = clock.System()
	}
	return &ProviderService{
		users:        deps.UserRepo,
		appointments: deps.AppointmentRepo,
		clock:        c,
	}
}

// ListProviders returns provider accounts with avatars, paginated.
func (s *ProviderService) ListProviders(ctx context.Context, page int) ([]domain.User, error) {
	if page <= 0 {
		page = 1
	}
	return s.users.ListProviders(ctx, appointmentsPerPage, (page-1)*appointmentsPerPage)
}

// DayAvailability lists the provider's hour slots for the day containing
// date. A slot is available when it starts in the future and no active
// appointment occupies it.
func (s *ProviderService) DayAvailability(ctx context.Context, providerID int64, date time.Time) ([]Slot, error) {
	if _, err := s.users.GetProviderByID(ctx, providerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("provider", nil)
		}
		return nil, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	appts, err := s.appointments.ListByProviderBetween(ctx, providerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	taken := make(map[int64]bool, len(appts))
	for _, appt := range appts {
		taken[appt.Date.Unix()] = true
	}

	now := s.clock.Now()
	slots := make([]Slot, 0, len(scheduleHours))
	for _, hour := range scheduleHours {
		value := dayStart.Add(time.Duration(hour) * time.Hour)
		slots = append(slots, Slot{
			Time:      value.Format("15:04"),
			Value:     value,
			Available: value.After(now) && !taken[value.Unix()],
		})
	}
	return slots, nil
}

// DaySchedule returns the provider's own active appointments for the day
// containing date, with the booking user expanded. The caller must be a
// provider.
func (s *ProviderService) DaySchedule(ctx context.Context, providerID int64, date time.Time) ([]domain.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	return s.appointments.ListByProviderBetween(ctx, providerID, dayStart, dayEnd)
}
