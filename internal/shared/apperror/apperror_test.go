package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestWith_KeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("disk gone")
	err := apperror.With(apperror.ErrStorageUnavailable, cause)

	assert.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, apperror.ErrStorageQuota)
	assert.Equal(t, "Storage is currently unavailable: disk gone", err.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))
}

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		wrapped := fmt.Errorf("save: %w", apperror.With(apperror.ErrStorageQuota, errors.New("full")))
		httpErr := apperror.ToHTTP(wrapped)
		assert.Equal(t, http.StatusInsufficientStorage, httpErr.Status)
		assert.Equal(t, apperror.CodeStorageQuota, httpErr.Code)
	})

	t.Run("unknown error hides its text", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: password authentication failed"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "password")
	})
}

type sample struct {
	EmployeeCode string `json:"employeeId" validate:"required,notblank"`
	Email        string `json:"email" validate:"omitempty,email"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	apperror.Register(v)

	err := apperror.MapValidationError(v.Struct(sample{EmployeeCode: "   "}))
	assert.EqualError(t, err, "Employee Id is required")

	err = apperror.MapValidationError(v.Struct(sample{EmployeeCode: "E1", Email: "nope"}))
	assert.EqualError(t, err, "Email is invalid")

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.ErrorIs(t, err, apperror.New(apperror.CodeInvalidInput, "Invalid input", http.StatusBadRequest))
}
