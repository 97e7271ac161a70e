package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/appointment-service/internal/domain"
)

// UserRepository defines persistence access for users and providers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetProviderByID(ctx context.Context, id int64) (*domain.User, error)
	ListProviders(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `u.id, u.name, u.email, u.password_hash, u.provider, u.avatar_id,
       u.created_at, u.updated_at, f.id, f.name, f.path, f.created_at`

const userJoin = `FROM users u LEFT JOIN files f ON f.id = u.avatar_id`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, provider, avatar_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Provider,
		user.AvatarID,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET name=$1, email=$2, password_hash=$3, provider=$4, avatar_id=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Provider,
		user.AvatarID,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` ` + userJoin + ` WHERE u.id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` ` + userJoin + ` WHERE u.email=$1`
	return r.fetchSingle(ctx, query, email)
}

// GetProviderByID resolves a user only when the provider flag is set.
func (r *userRepository) GetProviderByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` ` + userJoin + ` WHERE u.id=$1 AND u.provider=TRUE`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) ListProviders(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + userColumns + ` ` + userJoin + `
        WHERE u.provider=TRUE ORDER BY u.name LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *user)
	}
	return result, rows.Err()
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, query, arg))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user          domain.User
		avatarID      *int64
		avatarName    *string
		avatarPath    *string
		avatarCreated *time.Time
	)
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Provider,
		&user.AvatarID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&avatarID,
		&avatarName,
		&avatarPath,
		&avatarCreated,
	); err != nil {
		return nil, err
	}
	if avatarID != nil {
		user.Avatar = &domain.File{
			ID:        *avatarID,
			Name:      *avatarName,
			Path:      *avatarPath,
			CreatedAt: *avatarCreated,
		}
	}
	return &user, nil
}
