package payrollerrors

import (
	"net/http"

	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"Rates and contractor fee must not be negative",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Export format must be csv or xlsx",
		http.StatusBadRequest,
	)
	ErrPayrollEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in payroll",
		http.StatusNotFound,
	)
)
