package attendance

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/glassdash/crm-backend-go/internal/domain/attendance"
	"github.com/glassdash/crm-backend-go/internal/domain/employee"
)

const dayKeyLayout = "2006-01-02"

// normalizeDay parses a free-form date string ("Sat Dec 13 2025",
// "2025-12-13", "12/13/2025", ...) into the canonical day key. Parsing is
// pinned to UTC so the key does not depend on the runtime's time zone.
func normalizeDay(raw string) (string, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return "", err
	}
	return t.Format(dayKeyLayout), nil
}

// normalizeStatus buckets any raw status string into Present or Absent.
// Only "active" and "present" (case-insensitive) count as Present.
func normalizeStatus(raw string) attendance.Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active", "present":
		return attendance.StatusPresent
	default:
		return attendance.StatusAbsent
	}
}

// matchEmployee resolves a raw subject name to an employee by trimmed,
// lowercased equality. Exactly one employee must match; zero or multiple
// matches both yield no resolution so an ambiguous row cannot land on the
// wrong ledger.
func matchEmployee(name string, employees []employee.Employee) (employee.Employee, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return employee.Employee{}, false
	}

	var matched employee.Employee
	count := 0
	for _, e := range employees {
		if strings.ToLower(strings.TrimSpace(e.Name)) == key {
			matched = e
			count++
		}
	}
	if count != 1 {
		return employee.Employee{}, false
	}
	return matched, true
}
