package payroll

import "github.com/vivek068790/Employee-Register-App/internal/domain"

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type PayrollResponse struct {
	Rows    []domain.PayrollData `json:"rows"`
	Summary Summary              `json:"summary"`
	Rates   RateTable            `json:"rates"`
}
