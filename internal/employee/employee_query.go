package employee

import (
	"sort"
	"strings"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
)

const (
	SortByName       = "name"
	SortByEmployeeID = "employeeId"
	SortByGender     = "gender"
	SortByStatus     = "status"

	statusUnmarked = "unmarked"
)

type ListQuery struct {
	Search string
	SortBy string
	Desc   bool
	// Date, when set, fills AttendanceStatus and drives SortByStatus.
	Date domain.Date
}

// matches does a case-insensitive substring search over name, code and
// position.
func matches(e domain.Employee, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Name), term) ||
		strings.Contains(strings.ToLower(e.Code), term) ||
		strings.Contains(strings.ToLower(e.Position), term)
}

func filterAndSort(employees []domain.Employee, q ListQuery, statusOf func(id string) string) []domain.Employee {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		if matches(e, term) {
			out = append(out, e)
		}
	}

	if q.SortBy == "" {
		return out
	}

	key := func(e domain.Employee) string {
		switch q.SortBy {
		case SortByEmployeeID:
			return strings.ToLower(e.Code)
		case SortByGender:
			return string(e.Gender)
		case SortByStatus:
			return statusOf(e.ID)
		default:
			return strings.ToLower(e.Name)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if q.Desc {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}

func validSort(sortBy string) bool {
	switch sortBy {
	case "", SortByName, SortByEmployeeID, SortByGender, SortByStatus:
		return true
	}
	return false
}
