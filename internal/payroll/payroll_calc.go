package payroll

import (
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
)

// MonthlyPayroll returns one row per current employee, in roster order.
// Only present-status records count; late and absent days are unpaid. The
// contractor fee applies even with zero days present.
func MonthlyPayroll(snap recordstore.Snapshot, month time.Month, year int, rates RateTable) []domain.PayrollData {
	presentDays := make(map[string]int, len(snap.Employees))
	for _, r := range snap.Records {
		if r.Status == domain.StatusPresent && r.Date.InMonth(month, year) {
			presentDays[r.EmployeeID]++
		}
	}

	out := make([]domain.PayrollData, len(snap.Employees))
	for i, e := range snap.Employees {
		days := presentDays[e.ID]
		rate := rates.DailyRate(e.Gender)
		salary := days * rate
		out[i] = domain.PayrollData{
			EmployeeID:             e.ID,
			EmployeeCode:           e.Code,
			Name:                   e.Name,
			Gender:                 e.Gender,
			DaysPresent:            days,
			DailyRate:              rate,
			TotalSalary:            salary,
			ContractorFee:          rates.ContractorFee,
			TotalWithContractorFee: salary + rates.ContractorFee,
			Month:                  month.String(),
			Year:                   year,
		}
	}
	return out
}

type Summary struct {
	Month                  string `json:"month"`
	Year                   int    `json:"year"`
	Employees              int    `json:"employees"`
	TotalSalary            int    `json:"totalSalary"`
	TotalContractorFees    int    `json:"totalContractorFees"`
	TotalWithContractorFee int    `json:"totalWithContractorFee"`
}

func Summarize(rows []domain.PayrollData, month time.Month, year int) Summary {
	s := Summary{Month: month.String(), Year: year, Employees: len(rows)}
	for _, p := range rows {
		s.TotalSalary += p.TotalSalary
		s.TotalContractorFees += p.ContractorFee
		s.TotalWithContractorFee += p.TotalWithContractorFee
	}
	return s
}
