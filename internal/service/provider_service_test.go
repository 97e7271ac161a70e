package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/appointment-service/internal/clock"
	"github.com/spec-kit/appointment-service/internal/domain"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

func TestDayAvailability_MarksPastAndTakenSlots(t *testing.T) {
	now := time.Date(2025, 6, 1, 11, 30, 0, 0, time.UTC)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	users := &fakeUserRepo{
		getProviderByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return providerUser(id), nil
		},
	}
	appts := &fakeAppointmentRepo{
		listByProviderBetweenFn: func(_ context.Context, _ int64, from, to time.Time) ([]domain.Appointment, error) {
			assert.Equal(t, day, from)
			assert.Equal(t, day.AddDate(0, 0, 1), to)
			return []domain.Appointment{
				{ID: 1, ProviderID: 2, Date: day.Add(14 * time.Hour)},
			}, nil
		},
	}
	svc := NewProviderService(ProviderDependencies{
		UserRepo:        users,
		AppointmentRepo: appts,
		Clock:           clock.Fixed(now),
	})

	slots, err := svc.DayAvailability(context.Background(), 2, day)
	require.NoError(t, err)
	require.Len(t, slots, 12)

	byTime := make(map[string]Slot, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot
	}

	assert.False(t, byTime["08:00"].Available, "past slot")
	assert.False(t, byTime["11:00"].Available, "slot already started")
	assert.True(t, byTime["12:00"].Available)
	assert.False(t, byTime["14:00"].Available, "taken slot")
	assert.True(t, byTime["19:00"].Available)
}

func TestDayAvailability_UnknownProvider(t *testing.T) {
	users := &fakeUserRepo{
		getProviderByIDFn: func(_ context.Context, _ int64) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := NewProviderService(ProviderDependencies{
		UserRepo:        users,
		AppointmentRepo: &fakeAppointmentRepo{},
	})

	_, err := svc.DayAvailability(context.Background(), 99, time.Now())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDaySchedule_QueriesContainingDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	appts := &fakeAppointmentRepo{
		listByProviderBetweenFn: func(_ context.Context, providerID int64, from, to time.Time) ([]domain.Appointment, error) {
			assert.Equal(t, int64(2), providerID)
			assert.Equal(t, day, from)
			assert.Equal(t, day.AddDate(0, 0, 1), to)
			return []domain.Appointment{
				{ID: 7, ProviderID: 2, Date: day.Add(9 * time.Hour), User: &domain.User{ID: 5, Name: "Alice"}},
			}, nil
		},
	}
	svc := NewProviderService(ProviderDependencies{
		UserRepo:        &fakeUserRepo{},
		AppointmentRepo: appts,
	})

	schedule, err := svc.DaySchedule(context.Background(), 2, day.Add(15*time.Hour+30*time.Minute))
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, "Alice", schedule[0].User.Name)
}

func TestListProviders_Paginates(t *testing.T) {
	var gotLimit, gotOffset int
	users := &fakeUserRepo{
		listProvidersFn: func(_ context.Context, limit, offset int) ([]domain.User, error) {
			gotLimit, gotOffset = limit, offset
			return []domain.User{*providerUser(2)}, nil
		},
	}
	svc := NewProviderService(ProviderDependencies{
		UserRepo:        users,
		AppointmentRepo: &fakeAppointmentRepo{},
	})

	providers, err := svc.ListProviders(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, providers, 1)
	assert.Equal(t, 20, gotLimit)
	assert.Equal(t, 20, gotOffset)
}
