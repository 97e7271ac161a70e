package service

import (
	"context"
	"time"

	"github.com/spec-kit/appointment-service/internal/domain"
	"github.com/spec-kit/appointment-service/internal/events"
	"github.com/spec-kit/appointment-service/internal/mail"
)

type fakeAppointmentRepo struct {
	createFn                func(ctx context.Context, appt *domain.Appointment) error
	updateFn                func(ctx context.Context, appt *domain.Appointment) error
	getByIDFn               func(ctx context.Context, id int64) (*domain.Appointment, error)
	listByUserFn            func(ctx context.Context, userID int64, limit, offset int) ([]domain.Appointment, error)
	existsActiveAtFn        func(ctx context.Context, providerID int64, date time.Time) (bool, error)
	listByProviderBetweenFn func(ctx context.Context, providerID int64, from, to time.Time) ([]domain.Appointment, error)
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appt)
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appt *domain.Appointment) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, appt)
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeAppointmentRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Appointment, error) {
	if f.listByUserFn == nil {
		panic("ListByUser not configured")
	}
	return f.listByUserFn(ctx, userID, limit, offset)
}

func (f *fakeAppointmentRepo) ExistsActiveAt(ctx context.Context, providerID int64, date time.Time) (bool, error) {
	if f.existsActiveAtFn == nil {
		panic("ExistsActiveAt not configured")
	}
	return f.existsActiveAtFn(ctx, providerID, date)
}

func (f *fakeAppointmentRepo) ListByProviderBetween(ctx context.Context, providerID int64, from, to time.Time) ([]domain.Appointment, error) {
	if f.listByProviderBetweenFn == nil {
		panic("ListByProviderBetween not configured")
	}
	return f.listByProviderBetweenFn(ctx, providerID, from, to)
}

type fakeUserRepo struct {
	createFn          func(ctx context.Context, user *domain.User) error
	updateFn          func(ctx context.Context, user *domain.User) error
	getByIDFn         func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	getProviderByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	listProvidersFn   func(ctx context.Context, limit, offset int) ([]domain.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	if f.updateFn == nil {
		panic("Update not configured")
	}
	return f.updateFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getByEmailFn == nil {
		panic("GetByEmail not configured")
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) GetProviderByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.getProviderByIDFn == nil {
		panic("GetProviderByID not configured")
	}
	return f.getProviderByIDFn(ctx, id)
}

func (f *fakeUserRepo) ListProviders(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if f.listProvidersFn == nil {
		panic("ListProviders not configured")
	}
	return f.listProvidersFn(ctx, limit, offset)
}

type fakeNotificationRepo struct {
	createFn     func(ctx context.Context, n *domain.Notification) error
	listByUserFn func(ctx context.Context, userID int64, limit int) ([]domain.Notification, error)
	getByIDFn    func(ctx context.Context, id string) (*domain.Notification, error)
	markReadFn   func(ctx context.Context, id string) (*domain.Notification, error)
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, n)
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Notification, error) {
	if f.listByUserFn == nil {
		panic("ListByUser not configured")
	}
	return f.listByUserFn(ctx, userID, limit)
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	if f.markReadFn == nil {
		panic("MarkRead not configured")
	}
	return f.markReadFn(ctx, id)
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

// recordingDispatcher captures published events.
type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
