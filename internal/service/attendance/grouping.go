package attendance

import (
	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/attendance"
)

// GroupRecords collapses raw upstream records into one row per
// (employee, calendar date), in first-encounter order.
//
// The upstream delivers check-in and check-out as separate rows when
// they land on different fetches, and overlapping pages can repeat
// whole sessions. The reducer merges session lists by session ID (a
// later duplicate overwrites the earlier one but keeps its original
// list position), tracks the earliest check-in and latest check-out,
// and recomputes totals from the merged sessions. Records with a
// missing or unparseable date share a per-employee sentinel key so they
// still collapse instead of producing one row each. Malformed input
// never fails; it degrades into a sentinel-keyed group.
func GroupRecords(records []attendance.Record) []attendance.Grouped {
	groups := make([]attendance.Grouped, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		// A JSON null in the items array decodes to a zero Record.
		if isEmptyRecord(rec) {
			continue
		}

		key := rec.GroupKey()
		if i, ok := index[key]; ok {
			mergeRecord(&groups[i], rec)
		} else {
			index[key] = len(groups)
			groups = append(groups, newGroup(rec))
		}
	}

	return groups
}

func isEmptyRecord(rec attendance.Record) bool {
	return rec.EmployeeID == "" && rec.Date == "" && len(rec.Sessions) == 0
}

func newGroup(rec attendance.Record) attendance.Grouped {
	g := attendance.Grouped{
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		Date:         rec.Date,
		Status:       rec.Status,
		Sessions:     mergeSessions(nil, rec.Sessions),
	}
	g.FirstCheckIn = minCheckIn(rec.CheckIn, g.Sessions)
	g.LastCheckOut = maxCheckOut(rec.CheckOut, g.Sessions)
	recompute(&g)
	return g
}

func mergeRecord(g *attendance.Grouped, rec attendance.Record) {
	g.Sessions = mergeSessions(g.Sessions, rec.Sessions)

	if candidate := minCheckIn(rec.CheckIn, rec.Sessions); candidate != nil {
		if g.FirstCheckIn == nil || candidate.Before(g.FirstCheckIn.Time) {
			g.FirstCheckIn = candidate
		}
	}
	if candidate := maxCheckOut(rec.CheckOut, rec.Sessions); candidate != nil {
		if g.LastCheckOut == nil || candidate.After(g.LastCheckOut.Time) {
			g.LastCheckOut = candidate
		}
	}

	if rec.HasStatus(attendance.StatusPresent) {
		g.Status = attendance.StatusPresent
	}

	recompute(g)
}

// mergeSessions unions two session lists keyed by session ID. Insertion
// order is kept; a duplicate ID takes the newer value at the older
// position.
func mergeSessions(existing, incoming []attendance.Session) []attendance.Session {
	merged := make([]attendance.Session, 0, len(existing)+len(incoming))
	pos := make(map[string]int, len(existing)+len(incoming))

	add := func(s attendance.Session) {
		if i, ok := pos[s.ID]; ok {
			merged[i] = s
			return
		}
		pos[s.ID] = len(merged)
		merged = append(merged, s)
	}

	for _, s := range existing {
		add(s)
	}
	for _, s := range incoming {
		add(s)
	}
	return merged
}

// recompute rederives every aggregate from the merged session list.
// Totals are never trusted from any single input record.
func recompute(g *attendance.Grouped) {
	g.SessionsCount = len(g.Sessions)

	var total float64
	open := false
	for _, s := range g.Sessions {
		total += s.Hours
		if s.CheckOut == nil {
			open = true
		}
	}
	g.TotalWorkedHours = total
	g.HasOpenSession = open

	g.IsOvernight = g.FirstCheckIn != nil && g.LastCheckOut != nil &&
		g.FirstCheckIn.DateKey() != g.LastCheckOut.DateKey()
}

func minCheckIn(recordLevel *attendance.Time, sessions []attendance.Session) *attendance.Time {
	min := recordLevel
	for _, s := range sessions {
		if s.CheckIn == nil {
			continue
		}
		if min == nil || s.CheckIn.Before(min.Time) {
			min = s.CheckIn
		}
	}
	return min
}

func maxCheckOut(recordLevel *attendance.Time, sessions []attendance.Session) *attendance.Time {
	max := recordLevel
	for _, s := range sessions {
		if s.CheckOut == nil {
			continue
		}
		if max == nil || s.CheckOut.After(max.Time) {
			max = s.CheckOut
		}
	}
	return max
}
