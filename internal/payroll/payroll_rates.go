package payroll

import (
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	payrollerrors "github.com/vivek068790/Employee-Register-App/internal/payroll/errors"
)

// RateTable holds the daily rate per gender and the flat monthly
// contractor fee charged for every employee.
type RateTable struct {
	Male          int `json:"male"`
	Female        int `json:"female"`
	ContractorFee int `json:"contractorFee"`
}

func DefaultRates() RateTable {
	return RateTable{Male: 450, Female: 400, ContractorFee: 50}
}

func (r RateTable) DailyRate(g domain.Gender) int {
	if g == domain.GenderMale {
		return r.Male
	}
	return r.Female
}

func (r RateTable) Validate() error {
	if r.Male < 0 || r.Female < 0 || r.ContractorFee < 0 {
		return payrollerrors.ErrInvalidRate
	}
	return nil
}
