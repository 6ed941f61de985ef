package report

import (
	"math"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
)

type MonthlyStats struct {
	Month             time.Month `json:"month"`
	Year              int        `json:"year"`
	TotalWorkingDays  int        `json:"totalWorkingDays"`
	TotalPresent      int        `json:"totalPresent"`
	TotalAbsent       int        `json:"totalAbsent"`
	TotalLate         int        `json:"totalLate"`
	TotalEmployees    int        `json:"totalEmployees"`
	MaleEmployees     int        `json:"maleEmployees"`
	FemaleEmployees   int        `json:"femaleEmployees"`
	AverageAttendance int        `json:"averageAttendance"`
}

type DayStats struct {
	Date          domain.Date `json:"date"`
	Present       int         `json:"present"`
	Absent        int         `json:"absent"`
	Late          int         `json:"late"`
	Unmarked      int         `json:"unmarked"`
	Total         int         `json:"total"`
	Percentage    int         `json:"percentage"`
	MalePresent   int         `json:"malePresent"`
	FemalePresent int         `json:"femalePresent"`
}

type OverallStats struct {
	TotalSessions     int `json:"totalSessions"`
	AverageAttendance int `json:"averageAttendance"`
	MaleEmployees     int `json:"maleEmployees"`
	FemaleEmployees   int `json:"femaleEmployees"`
}

type EmployeeMonthStats struct {
	EmployeeID     string `json:"employeeId"`
	EmployeeCode   string `json:"employeeCode"`
	Name           string `json:"name"`
	TotalSessions  int    `json:"totalSessions"`
	PresentCount   int    `json:"presentCount"`
	AbsentCount    int    `json:"absentCount"`
	LateCount      int    `json:"lateCount"`
	AttendanceRate int    `json:"attendanceRate"`
}

// Monthly aggregates every record dated in (month, year). A working day
// is any date with at least one record.
func Monthly(snap recordstore.Snapshot, month time.Month, year int) MonthlyStats {
	stats := MonthlyStats{
		Month:          month,
		Year:           year,
		TotalEmployees: len(snap.Employees),
	}
	for _, e := range snap.Employees {
		switch e.Gender {
		case domain.GenderMale:
			stats.MaleEmployees++
		case domain.GenderFemale:
			stats.FemaleEmployees++
		}
	}

	days := make(map[domain.Date]struct{})
	for _, r := range snap.Records {
		if !r.Date.InMonth(month, year) {
			continue
		}
		days[r.Date] = struct{}{}
		switch r.Status {
		case domain.StatusPresent:
			stats.TotalPresent++
		case domain.StatusAbsent:
			stats.TotalAbsent++
		case domain.StatusLate:
			stats.TotalLate++
		}
	}
	stats.TotalWorkingDays = len(days)
	stats.AverageAttendance = percent(stats.TotalPresent, stats.TotalEmployees*stats.TotalWorkingDays)
	return stats
}

func Daily(snap recordstore.Snapshot, date domain.Date) DayStats {
	byID := indexEmployees(snap.Employees)
	stats := DayStats{Date: date, Total: len(snap.Employees)}

	marked := 0
	for _, r := range snap.Records {
		if r.Date != date {
			continue
		}
		marked++
		switch r.Status {
		case domain.StatusPresent:
			stats.Present++
			switch byID[r.EmployeeID].Gender {
			case domain.GenderMale:
				stats.MalePresent++
			case domain.GenderFemale:
				stats.FemalePresent++
			}
		case domain.StatusAbsent:
			stats.Absent++
		case domain.StatusLate:
			stats.Late++
		}
	}
	stats.Unmarked = stats.Total - marked
	if stats.Unmarked < 0 {
		stats.Unmarked = 0
	}
	stats.Percentage = percent(stats.Present, stats.Total)
	return stats
}

// Overall averages the per-session present percentage over every
// session.
func Overall(snap recordstore.Snapshot) OverallStats {
	stats := OverallStats{}
	for _, e := range snap.Employees {
		switch e.Gender {
		case domain.GenderMale:
			stats.MaleEmployees++
		case domain.GenderFemale:
			stats.FemaleEmployees++
		}
	}

	sessions := AllSessions(snap)
	stats.TotalSessions = len(sessions)
	if len(sessions) == 0 {
		return stats
	}
	sum := 0.0
	for _, s := range sessions {
		sum += float64(s.PresentCount) / float64(s.TotalEmployees) * 100
	}
	stats.AverageAttendance = int(math.Round(sum / float64(len(sessions))))
	return stats
}

// MonthlyByEmployee breaks a month down per employee, in roster order.
func MonthlyByEmployee(snap recordstore.Snapshot, month time.Month, year int) []EmployeeMonthStats {
	byEmployee := make(map[string]*EmployeeMonthStats, len(snap.Employees))
	out := make([]EmployeeMonthStats, len(snap.Employees))
	for i, e := range snap.Employees {
		out[i] = EmployeeMonthStats{EmployeeID: e.ID, EmployeeCode: e.Code, Name: e.Name}
		byEmployee[e.ID] = &out[i]
	}

	for _, r := range snap.Records {
		if !r.Date.InMonth(month, year) {
			continue
		}
		st, ok := byEmployee[r.EmployeeID]
		if !ok {
			continue
		}
		st.TotalSessions++
		switch r.Status {
		case domain.StatusPresent:
			st.PresentCount++
		case domain.StatusAbsent:
			st.AbsentCount++
		case domain.StatusLate:
			st.LateCount++
		}
	}
	for i := range out {
		out[i].AttendanceRate = percent(out[i].PresentCount, out[i].TotalSessions)
	}
	return out
}

// percent is round(part/whole*100), zero when whole is zero.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
