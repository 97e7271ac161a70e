package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/appointment-service/internal/clock"
	"github.com/spec-kit/appointment-service/internal/domain"
	"github.com/spec-kit/appointment-service/internal/events"
	"github.com/spec-kit/appointment-service/internal/mail"
	"github.com/spec-kit/appointment-service/internal/repository"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

// NotificationService reacts to appointment events with in-app
// notifications and email, and serves the provider notification inbox.
type NotificationService struct {
	dispatcher    events.Dispatcher
	notifications repository.NotificationRepository
	mailer        mail.Mailer
	logger        *zap.Logger
}

// NotificationDependencies bundles collaborators.
type NotificationDependencies struct {
	Dispatcher       events.Dispatcher
	NotificationRepo repository.NotificationRepository
	Mailer           mail.Mailer
	Logger           *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(deps NotificationDependencies) *NotificationService {
	return &NotificationService{
		dispatcher:    deps.Dispatcher,
		notifications: deps.NotificationRepo,
		mailer:        deps.Mailer,
		logger:        deps.Logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentBooked, n.handleAppointmentBooked)
	n.dispatcher.Subscribe(events.EventAppointmentCanceled, n.handleAppointmentCanceled)
}

func (n *NotificationService) handleAppointmentBooked(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentBookedPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", event.Payload)
	}

	notification := &domain.Notification{
		UserID:    payload.ProviderID,
		Content:   fmt.Sprintf("New booking from %s for %s", payload.UserName, clock.FormatLong(payload.Date)),
		CreatedAt: event.Timestamp,
	}
	if err := n.notifications.Create(ctx, notification); err != nil {
		n.logger.Error("create booking notification",
			zap.Int64("appointment_id", event.AppointmentID),
			zap.Int64("provider_id", payload.ProviderID),
			zap.Error(err))
		return err
	}
	return nil
}

func (n *NotificationService) handleAppointmentCanceled(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentCanceledPayload)
	if !ok {
		return fmt.Errorf("unexpected payload type %T", event.Payload)
	}

	msg := mail.Message{
		To:      payload.ProviderEmail,
		ToName:  payload.ProviderName,
		Subject: "Appointment canceled",
		Body: fmt.Sprintf("Hello %s, the appointment with %s scheduled for %s was canceled.",
			payload.ProviderName, payload.UserName, clock.FormatLong(payload.Date)),
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		n.logger.Error("send cancellation mail",
			zap.Int64("appointment_id", event.AppointmentID),
			zap.Error(err))
		return err
	}
	return nil
}

// List returns the newest notifications for the given provider user.
func (n *NotificationService) List(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	return n.notifications.ListByUser(ctx, userID, limit)
}

// MarkRead flags a notification as read. Only the recipient may do so.
func (n *NotificationService) MarkRead(ctx context.Context, userID int64, id string) (*domain.Notification, error) {
	notification, err := n.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFound("notification", nil)
		}
		return nil, err
	}
	if notification.UserID != userID {
		return nil, apperrors.NewForbidden("notification belongs to another user")
	}
	return n.notifications.MarkRead(ctx, id)
}
