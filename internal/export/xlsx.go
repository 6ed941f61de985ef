package export

import (
	"fmt"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"

	"github.com/xuri/excelize/v2"
)

const payrollSheet = "Payroll"

// PayrollXLSX writes the payroll rows plus a totals line to a single-sheet
// workbook. Numeric columns stay numeric.
func PayrollXLSX(rows []domain.PayrollData, month time.Month, year int) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), payrollSheet); err != nil {
		return nil, err
	}

	header := make([]any, len(payrollHeader))
	for i, h := range payrollHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(payrollSheet, "A1", &header); err != nil {
		return nil, err
	}

	var salary, fees, total int
	for i, p := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			p.Name, p.EmployeeCode, string(p.Gender), p.DaysPresent, p.DailyRate,
			p.TotalSalary, p.ContractorFee, p.TotalWithContractorFee, p.Month, p.Year,
		}
		if err := f.SetSheetRow(payrollSheet, cell, &row); err != nil {
			return nil, err
		}
		salary += p.TotalSalary
		fees += p.ContractorFee
		total += p.TotalWithContractorFee
	}

	totalsRow := len(rows) + 2
	totals := []any{"Total", "", "", "", "", salary, fees, total, month.String(), year}
	if err := f.SetSheetRow(payrollSheet, fmt.Sprintf("A%d", totalsRow), &totals); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(payrollSheet, "A1", "J1", bold); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(payrollSheet, fmt.Sprintf("A%d", totalsRow), fmt.Sprintf("J%d", totalsRow), bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(payrollSheet, "A", "A", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
