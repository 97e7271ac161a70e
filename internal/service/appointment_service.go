package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/appointment-service/internal/clock"
	"github.com/spec-kit/appointment-service/internal/domain"
	"github.com/spec-kit/appointment-service/internal/events"
	"github.com/spec-kit/appointment-service/internal/repository"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

const appointmentsPerPage = 20

// cancellationLead is the minimum notice before an appointment's start
// during which cancellation is still allowed.
const cancellationLead = 2 * time.Hour

// AppointmentService enforces the booking and cancellation rules.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
	clock        clock.Clock
}

// AppointmentDependencies bundles collaborators for the appointment service.
type AppointmentDependencies struct {
	AppointmentRepo repository.AppointmentRepository
	UserRepo        repository.UserRepository
	Dispatcher      events.Dispatcher
	Clock           clock.Clock
}

// NewAppointmentService constructs the service.
func NewAppointmentService(deps AppointmentDependencies) *AppointmentService {
	c := deps.Clock
	if c == nil {
		c = clock.System()
	}
	return &AppointmentService{
		appointments: deps.AppointmentRepo,
		users:        deps.UserRepo,
		dispatcher:   deps.Dispatcher,
		clock:        c,
	}
}

// List returns up to 20 active appointments for the booking user, ordered
// by date ascending, offset by (page-1)*20. Page is 1-based.
func (s *AppointmentService) List(ctx context.Context, userID int64, page int) ([]domain.Appointment, error) {
	if page <= 0 {
		page = 1
	}
	return s.appointments.ListByUser(ctx, userID, appointmentsPerPage, (page-1)*appointmentsPerPage)
}

// Book validates and creates an appointment at the hour slot containing
// date. The stored date is always the start of the hour: booking 19:34
// books the 19:00 slot.
func (s *AppointmentService) Book(ctx context.Context, userID, providerID int64, date time.Time) (*domain.Appointment, error) {
	provider, err := s.users.GetProviderByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotAProvider()
		}
		return nil, err
	}

	hourStart := clock.HourStart(date)
	if hourStart.Before(s.clock.Now()) {
		return nil, apperrors.NewPastDate()
	}

	taken, err := s.appointments.ExistsActiveAt(ctx, providerID, hourStart)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewSlotUnavailable()
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		UserID:     userID,
		ProviderID: provider.ID,
		Date:       hourStart,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, apperrors.NewSlotUnavailable()
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventAppointmentBooked,
		AppointmentID: appt.ID,
		Payload: events.AppointmentBookedPayload{
			UserID:     userID,
			UserName:   user.Name,
			ProviderID: provider.ID,
			Date:       hourStart,
		},
	})
	return appt, nil
}

// Cancel marks an appointment canceled when requested by its owner with at
// least two hours of notice before the appointment starts.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID, userID int64) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("appointment", nil)
		}
		return nil, err
	}

	if appt.UserID != userID {
		return nil, apperrors.NewForbidden("you don't have permission to cancel this appointment")
	}
	if appt.Canceled() {
		return nil, apperrors.NewAlreadyCanceled()
	}

	now := s.clock.Now()
	if now.After(appt.Date.Add(-cancellationLead)) {
		return nil, apperrors.NewCancellationWindow()
	}

	appt.CanceledAt = &now
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:          events.EventAppointmentCanceled,
		AppointmentID: appt.ID,
		Payload: events.AppointmentCanceledPayload{
			UserID:        appt.UserID,
			UserName:      appt.User.Name,
			ProviderID:    appt.ProviderID,
			ProviderName:  appt.Provider.Name,
			ProviderEmail: appt.Provider.Email,
			Date:          appt.Date,
		},
	})
	return appt, nil
}

func (s *AppointmentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
