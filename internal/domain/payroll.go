package domain

// PayrollData is one employee's pay for a month. Amounts are whole rupees.
type PayrollData struct {
	EmployeeID             string `json:"employeeId"`
	EmployeeCode           string `json:"employeeCode"`
	Name                   string `json:"name"`
	Gender                 Gender `json:"gender"`
	DaysPresent            int    `json:"daysPresent"`
	DailyRate              int    `json:"dailyRate"`
	TotalSalary            int    `json:"totalSalary"`
	ContractorFee          int    `json:"contractorFee"`
	TotalWithContractorFee int    `json:"totalWithContractorFee"`
	Month                  string `json:"month"`
	Year                   int    `json:"year"`
}
