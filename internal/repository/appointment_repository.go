package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/appointment-service/internal/domain"
)

// ErrSlotTaken is returned when the partial unique index on
// (provider_id, date) rejects an insert, i.e. the slot was booked by a
// concurrent request after the availability check.
var ErrSlotTaken = errors.New("appointment slot already taken")

const uniqueViolationCode = "23505"

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	Update(ctx context.Context, appt *domain.Appointment) error
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Appointment, error)
	ExistsActiveAt(ctx context.Context, providerID int64, date time.Time) (bool, error)
	ListByProviderBetween(ctx context.Context, providerID int64, from, to time.Time) ([]domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (user_id, provider_id, date)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		appt.UserID,
		appt.ProviderID,
		appt.Date,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *domain.Appointment) error {
	const query = `
        UPDATE appointments SET canceled_at=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, appt.CanceledAt, appt.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// GetByID loads an appointment with its provider expanded, including the
// provider's email for cancellation mail.
func (r *appointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	const query = `
        SELECT a.id, a.user_id, a.provider_id, a.date, a.canceled_at, a.created_at, a.updated_at,
               p.id, p.name, p.email, p.provider,
               u.id, u.name, u.email, u.provider
        FROM appointments a
        JOIN users p ON p.id = a.provider_id
        JOIN users u ON u.id = a.user_id
        WHERE a.id=$1`

	var (
		appt     domain.Appointment
		provider domain.User
		user     domain.User
	)
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.UserID,
		&appt.ProviderID,
		&appt.Date,
		&appt.CanceledAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&provider.ID,
		&provider.Name,
		&provider.Email,
		&provider.Provider,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Provider,
	); err != nil {
		return nil, err
	}
	appt.Provider = &provider
	appt.User = &user
	return &appt, nil
}

// ListByUser returns active appointments for the booking user ordered by
// date ascending, with the provider and avatar expanded.
func (r *appointmentRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Appointment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT a.id, a.user_id, a.provider_id, a.date, a.canceled_at, a.created_at, a.updated_at,
               p.id, p.name, p.email, p.provider,
               f.id, f.name, f.path, f.created_at
        FROM appointments a
        JOIN users p ON p.id = a.provider_id
        LEFT JOIN files f ON f.id = p.avatar_id
        WHERE a.user_id=$1 AND a.canceled_at IS NULL
        ORDER BY a.date
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointmentsWithProvider(rows)
}

func (r *appointmentRepository) ExistsActiveAt(ctx context.Context, providerID int64, date time.Time) (bool, error) {
	const query = `
        SELECT EXISTS (
            SELECT 1 FROM appointments
            WHERE provider_id=$1 AND date=$2 AND canceled_at IS NULL
        )`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, providerID, date).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByProviderBetween returns a provider's active appointments inside
// [from, to), ordered by date, with the booking user expanded.
func (r *appointmentRepository) ListByProviderBetween(ctx context.Context, providerID int64, from, to time.Time) ([]domain.Appointment, error) {
	const query = `
        SELECT a.id, a.user_id, a.provider_id, a.date, a.canceled_at, a.created_at, a.updated_at,
               u.id, u.name, u.email, u.provider
        FROM appointments a
        JOIN users u ON u.id = a.user_id
        WHERE a.provider_id=$1 AND a.canceled_at IS NULL AND a.date >= $2 AND a.date < $3
        ORDER BY a.date`

	rows, err := r.pool.Query(ctx, query, providerID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Appointment
	for rows.Next() {
		var (
			appt domain.Appointment
			user domain.User
		)
		if err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.ProviderID,
			&appt.Date,
			&appt.CanceledAt,
			&appt.CreatedAt,
			&appt.UpdatedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Provider,
		); err != nil {
			return nil, err
		}
		appt.User = &user
		result = append(result, appt)
	}
	return result, rows.Err()
}

func scanAppointmentsWithProvider(rows pgx.Rows) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for rows.Next() {
		var (
			appt          domain.Appointment
			provider      domain.User
			avatarID      *int64
			avatarName    *string
			avatarPath    *string
			avatarCreated *time.Time
		)
		if err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.ProviderID,
			&appt.Date,
			&appt.CanceledAt,
			&appt.CreatedAt,
			&appt.UpdatedAt,
			&provider.ID,
			&provider.Name,
			&provider.Email,
			&provider.Provider,
			&avatarID,
			&avatarName,
			&avatarPath,
			&avatarCreated,
		); err != nil {
			return nil, err
		}
		if avatarID != nil {
			provider.Avatar = &domain.File{
				ID:        *avatarID,
				Name:      *avatarName,
				Path:      *avatarPath,
				CreatedAt: *avatarCreated,
			}
		}
		appt.Provider = &provider
		result = append(result, appt)
	}
	return result, rows.Err()
}
