package employeeerrors

import (
	"net/http"

	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee code is required",
		http.StatusBadRequest,
	)
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"Gender must be male or female",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
)

var ErrInvalidSort = apperror.New(
	apperror.CodeInvalidInput,
	"sort must be one of name, employeeId, gender, status",
	http.StatusBadRequest,
)
