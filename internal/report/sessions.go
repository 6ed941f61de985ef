// Package report derives read-only views (sessions, unmarked lists, monthly
// statistics) from a record store snapshot. Nothing here mutates state.
package report

import (
	"sort"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
)

// SessionForDate reports ok=false when the roster is empty. Head-count is
// the current roster, not the roster as of date.
func SessionForDate(snap recordstore.Snapshot, date domain.Date) (domain.AttendanceSession, bool) {
	if len(snap.Employees) == 0 {
		return domain.AttendanceSession{}, false
	}

	session := domain.AttendanceSession{
		Date:           date,
		Records:        recordsOn(snap.Records, date),
		TotalEmployees: len(snap.Employees),
	}
	for _, r := range session.Records {
		switch r.Status {
		case domain.StatusPresent:
			session.PresentCount++
		case domain.StatusAbsent:
			session.AbsentCount++
		case domain.StatusLate:
			session.LateCount++
		}
	}
	return session, true
}

// AllSessions returns one session per distinct record date, in the order the
// dates first appear in the record list.
func AllSessions(snap recordstore.Snapshot) []domain.AttendanceSession {
	out := make([]domain.AttendanceSession, 0)
	for _, date := range distinctDates(snap.Records) {
		if session, ok := SessionForDate(snap, date); ok {
			out = append(out, session)
		}
	}
	return out
}

// RecentSessions returns up to limit sessions, newest date first.
func RecentSessions(snap recordstore.Snapshot, limit int) []domain.AttendanceSession {
	sessions := AllSessions(snap)
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[j].Date.Before(sessions[i].Date)
	})
	if limit >= 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions
}

// EmployeesWithStatus resolves the employees whose record on date has the
// given status. Records pointing at unknown employees are skipped.
func EmployeesWithStatus(snap recordstore.Snapshot, date domain.Date, status domain.Status) []domain.Employee {
	byID := indexEmployees(snap.Employees)
	out := make([]domain.Employee, 0)
	for _, r := range snap.Records {
		if r.Date != date || r.Status != status {
			continue
		}
		if e, ok := byID[r.EmployeeID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// UnmarkedEmployees returns, in roster order, every employee without a
// record on date.
func UnmarkedEmployees(snap recordstore.Snapshot, date domain.Date) []domain.Employee {
	marked := make(map[string]struct{})
	for _, r := range snap.Records {
		if r.Date == date {
			marked[r.EmployeeID] = struct{}{}
		}
	}

	out := make([]domain.Employee, 0)
	for _, e := range snap.Employees {
		if _, ok := marked[e.ID]; !ok {
			out = append(out, e)
		}
	}
	return out
}

// StatusOf returns the status of employeeID on date, if marked.
func StatusOf(snap recordstore.Snapshot, employeeID string, date domain.Date) (domain.Status, bool) {
	for _, r := range snap.Records {
		if r.EmployeeID == employeeID && r.Date == date {
			return r.Status, true
		}
	}
	return "", false
}

func recordsOn(records []domain.AttendanceRecord, date domain.Date) []domain.AttendanceRecord {
	out := make([]domain.AttendanceRecord, 0)
	for _, r := range records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

func distinctDates(records []domain.AttendanceRecord) []domain.Date {
	seen := make(map[domain.Date]struct{})
	dates := make([]domain.Date, 0)
	for _, r := range records {
		if _, ok := seen[r.Date]; ok {
			continue
		}
		seen[r.Date] = struct{}{}
		dates = append(dates, r.Date)
	}
	return dates
}

func indexEmployees(employees []domain.Employee) map[string]domain.Employee {
	byID := make(map[string]domain.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return byID
}
