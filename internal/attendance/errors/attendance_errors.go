package attendanceerrors

import (
	"net/http"

	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
)

var (
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be present, absent or late",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"No attendance session: the roster is empty",
		http.StatusNotFound,
	)
)

var ErrEmployeeRequired = apperror.New(
	apperror.CodeInvalidInput,
	"employeeId or employeeCode is required",
	http.StatusBadRequest,
)
