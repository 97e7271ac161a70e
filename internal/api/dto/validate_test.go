package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/appointment-service/pkg/util"
)

func TestValidate_BookAppointmentRequest(t *testing.T) {
	err := Validate(BookAppointmentRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "VALIDATION_FAILED"))

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Details, "ProviderID")
	assert.Contains(t, domainErr.Details, "Date")

	err = Validate(BookAppointmentRequest{
		ProviderID: 2,
		Date:       time.Date(2025, 6, 1, 19, 34, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestValidate_RegisterRequest(t *testing.T) {
	err := Validate(RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Details, "Email")

	err = Validate(RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"})
	require.Error(t, err)

	err = Validate(RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	assert.NoError(t, err)
}
