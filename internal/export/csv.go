// Package export renders attendance sessions and payroll runs as
// downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
)

const notMarked = "Not marked"

var (
	attendanceHeader = []string{"Name", "Employee ID", "Gender", "Status", "Date"}
	payrollHeader    = []string{
		"Name", "Employee ID", "Gender", "Days Present", "Daily Rate",
		"Basic Salary", "Contractor Fee", "Total with Contractor Fee", "Month", "Year",
	}
)

// AttendanceCSV lists every employee on the roster with their status in
// session, "Not marked" when they have no record.
func AttendanceCSV(employees []domain.Employee, session domain.AttendanceSession) ([]byte, error) {
	status := make(map[string]domain.Status, len(session.Records))
	for _, r := range session.Records {
		status[r.EmployeeID] = r.Status
	}

	rows := make([][]string, 0, len(employees)+1)
	rows = append(rows, attendanceHeader)
	for _, e := range employees {
		st := notMarked
		if s, ok := status[e.ID]; ok {
			st = string(s)
		}
		rows = append(rows, []string{e.Name, e.Code, string(e.Gender), st, session.Date.String()})
	}
	return writeCSV(rows)
}

func PayrollCSV(rows []domain.PayrollData) ([]byte, error) {
	out := make([][]string, 0, len(rows)+1)
	out = append(out, payrollHeader)
	for _, p := range rows {
		out = append(out, []string{
			p.Name,
			p.EmployeeCode,
			string(p.Gender),
			strconv.Itoa(p.DaysPresent),
			strconv.Itoa(p.DailyRate),
			strconv.Itoa(p.TotalSalary),
			strconv.Itoa(p.ContractorFee),
			strconv.Itoa(p.TotalWithContractorFee),
			p.Month,
			strconv.Itoa(p.Year),
		})
	}
	return writeCSV(out)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
