package attendance

import "strings"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Ledger maps a calendar-day key (YYYY-MM-DD) to the status of each
// employee on that day. Each (day, employee) pair holds at most one status;
// a later write overwrites the earlier one with no history retained.
type Ledger map[string]map[string]Status

// Mark records status for an employee on a day, overwriting any prior value
// for that exact pair.
func (l Ledger) Mark(day, employeeID string, status Status) {
	if l[day] == nil {
		l[day] = make(map[string]Status)
	}
	l[day][employeeID] = status
}

// StatusOf returns the recorded status for the pair, defaulting to Absent
// when no entry exists.
func (l Ledger) StatusOf(day, employeeID string) Status {
	if status, ok := l[day][employeeID]; ok {
		return status
	}
	return StatusAbsent
}

// PresentDays counts the days within the YYYY-MM period on which the
// employee is recorded Present.
func (l Ledger) PresentDays(period, employeeID string) int {
	count := 0
	for day, entries := range l {
		if strings.HasPrefix(day, period+"-") && entries[employeeID] == StatusPresent {
			count++
		}
	}
	return count
}

// Clone copies the ledger so a merge can be buffered and committed in one
// write.
func (l Ledger) Clone() Ledger {
	cp := make(Ledger, len(l))
	for day, entries := range l {
		dayCp := make(map[string]Status, len(entries))
		for id, status := range entries {
			dayCp[id] = status
		}
		cp[day] = dayCp
	}
	return cp
}
