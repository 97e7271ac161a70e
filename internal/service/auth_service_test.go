package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/appointment-service/internal/auth"
	"github.com/spec-kit/appointment-service/internal/config"
	"github.com/spec-kit/appointment-service/internal/domain"
	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

type fakeFileRepo struct {
	createFn  func(ctx context.Context, file *domain.File) error
	getByIDFn func(ctx context.Context, id int64) (*domain.File, error)
}

func (f *fakeFileRepo) Create(ctx context.Context, file *domain.File) error {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, file)
}

func (f *fakeFileRepo) GetByID(ctx context.Context, id int64) (*domain.File, error) {
	if f.getByIDFn == nil {
		panic("GetByID not configured")
	}
	return f.getByIDFn(ctx, id)
}

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	users := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return bookingUser(1), nil
		},
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, FileRepo: &fakeFileRepo{}})

	_, _, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1", false)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "CONFLICT"))
}

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	var created *domain.User
	users := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, pgx.ErrNoRows
		},
		createFn: func(_ context.Context, user *domain.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, FileRepo: &fakeFileRepo{}})

	user, token, _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1", true)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.True(t, user.Provider)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NoError(t, auth.ComparePassword(created.PasswordHash, "secret1"))
	assert.NotEmpty(t, token)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestLogin_RejectsWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("right", 4)
	require.NoError(t, err)

	users := &fakeUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: "alice@example.com", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, FileRepo: &fakeFileRepo{}})

	_, _, _, err = svc.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestUpdateProfile_RequiresOldPasswordForChange(t *testing.T) {
	hash, err := auth.HashPassword("current", 4)
	require.NoError(t, err)

	users := &fakeUserRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.User, error) {
			return &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, FileRepo: &fakeFileRepo{}})

	newPassword := "changed1"
	_, err = svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{Password: &newPassword})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	wrong := "nope"
	_, err = svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{OldPassword: &wrong, Password: &newPassword})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "UNAUTHORIZED"))
}

func TestUpdateProfile_SetsAvatarWhenFileExists(t *testing.T) {
	var saved *domain.User
	users := &fakeUserRepo{
		getByIDFn: func(_ context.Context, _ int64) (*domain.User, error) {
			return &domain.User{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil
		},
		updateFn: func(_ context.Context, user *domain.User) error {
			saved = user
			return nil
		},
	}
	files := &fakeFileRepo{
		getByIDFn: func(_ context.Context, id int64) (*domain.File, error) {
			return &domain.File{ID: id, Path: "abc.png"}, nil
		},
	}
	svc := NewAuthService(testAuthConfig(), AuthDependencies{UserRepo: users, FileRepo: files})

	avatarID := int64(3)
	user, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdateInput{AvatarID: &avatarID})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, user.AvatarID)
	assert.Equal(t, int64(3), *user.AvatarID)
}
