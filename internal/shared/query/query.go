// Package query parses the shared query-string parameters (date, month,
// year, limit) used across handlers.
package query

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidDate  = apperror.New(apperror.CodeInvalidInput, "date must be YYYY-MM-DD", http.StatusBadRequest)
	ErrInvalidMonth = apperror.New(apperror.CodeInvalidInput, "month must be between 1 and 12", http.StatusBadRequest)
	ErrInvalidYear  = apperror.New(apperror.CodeInvalidInput, "year must be between 1970 and 9999", http.StatusBadRequest)
	ErrInvalidLimit = apperror.New(apperror.CodeInvalidInput, "limit must be a non-negative integer", http.StatusBadRequest)
)

// Date reads a YYYY-MM-DD value from the query string or, failing that, the
// path parameter of the same name. Missing means today.
func Date(c *gin.Context, name string, now time.Time) (domain.Date, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		raw = strings.TrimSpace(c.Param(name))
	}
	if raw == "" {
		return domain.DateOf(now), nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return domain.Date{}, ErrInvalidDate
	}
	return d, nil
}

// Period reads month (1..12) and year, defaulting to the current ones.
func Period(c *gin.Context, now time.Time) (time.Month, int, error) {
	month := now.Month()
	year := now.Year()

	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, ErrInvalidMonth
		}
		month = time.Month(m)
	}
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			return 0, 0, ErrInvalidYear
		}
		year = y
	}
	return month, year, nil
}

func Limit(c *gin.Context, def int) (int, error) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidLimit
	}
	return n, nil
}
