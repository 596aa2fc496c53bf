package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) *attendance.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	require.NoError(t, err)
	return &attendance.Time{Time: parsed}
}

func session(t *testing.T, id, checkIn, checkOut string, hours float64) attendance.Session {
	t.Helper()
	s := attendance.Session{ID: id, Hours: hours}
	if checkIn != "" {
		s.CheckIn = at(t, checkIn)
	}
	if checkOut != "" {
		s.CheckOut = at(t, checkOut)
	}
	return s
}

func TestGroupRecords_MergesSplitCheckInCheckOut(t *testing.T) {
	t.Parallel()

	// One employee/day arriving as two records: the morning check-in
	// fetch and the evening check-out fetch, each carrying the same
	// session under a different completeness.
	records := []attendance.Record{
		{
			EmployeeID:   "emp-1",
			EmployeeName: "Ayu Lestari",
			Date:         "2026-03-02T00:00:00",
			CheckIn:      at(t, "2026-03-02T08:01:00"),
			Status:       "Pending",
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T08:01:00", "", 0),
			},
		},
		{
			EmployeeID:   "emp-1",
			EmployeeName: "Ayu Lestari",
			Date:         "2026-03-02T00:00:00",
			CheckOut:     at(t, "2026-03-02T17:12:00"),
			Status:       "Present",
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T08:01:00", "2026-03-02T17:12:00", 9.18),
			},
		},
	}

	// Act
	groups := GroupRecords(records)

	// Assert
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "emp-1", g.EmployeeID)
	assert.Equal(t, 1, g.SessionsCount)
	assert.Equal(t, "2026-03-02T08:01:00", g.FirstCheckIn.Format("2006-01-02T15:04:05"))
	assert.Equal(t, "2026-03-02T17:12:00", g.LastCheckOut.Format("2006-01-02T15:04:05"))
	assert.Equal(t, 9.18, g.TotalWorkedHours)
	assert.False(t, g.HasOpenSession)
	assert.Equal(t, attendance.StatusPresent, g.Status)
}

func TestGroupRecords_DuplicateSessionKeepsOriginalPosition(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{
			EmployeeID: "emp-1",
			Date:       "2026-03-02",
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T08:00:00", "", 0),
				session(t, "s-2", "2026-03-02T13:00:00", "2026-03-02T17:00:00", 4),
			},
		},
		{
			EmployeeID: "emp-1",
			Date:       "2026-03-02",
			Sessions: []attendance.Session{
				// Same ID as the first session, now completed. The
				// newer value must land at the original index, before
				// s-2.
				session(t, "s-1", "2026-03-02T08:00:00", "2026-03-02T12:00:00", 4),
			},
		},
	}

	// Act
	groups := GroupRecords(records)

	// Assert
	require.Len(t, groups, 1)
	g := groups[0]
	require.Len(t, g.Sessions, 2)
	assert.Equal(t, "s-1", g.Sessions[0].ID)
	assert.Equal(t, "s-2", g.Sessions[1].ID)
	require.NotNil(t, g.Sessions[0].CheckOut)
	assert.Equal(t, 8.0, g.TotalWorkedHours)
	assert.Equal(t, 2, g.SessionsCount)
}

func TestGroupRecords_FirstEncounterOrder(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{EmployeeID: "emp-2", Date: "2026-03-02", Sessions: []attendance.Session{session(t, "b-1", "2026-03-02T09:00:00", "", 0)}},
		{EmployeeID: "emp-1", Date: "2026-03-02", Sessions: []attendance.Session{session(t, "a-1", "2026-03-02T08:00:00", "", 0)}},
		{EmployeeID: "emp-2", Date: "2026-03-03", Sessions: []attendance.Session{session(t, "b-2", "2026-03-03T09:00:00", "", 0)}},
		{EmployeeID: "emp-1", Date: "2026-03-02", Sessions: []attendance.Session{session(t, "a-2", "2026-03-02T13:00:00", "", 0)}},
	}

	// Act
	groups := GroupRecords(records)

	// Assert: output order follows the first appearance of each
	// (employee, date) pair, not sorted order.
	require.Len(t, groups, 3)
	assert.Equal(t, "emp-2", groups[0].EmployeeID)
	assert.Equal(t, "2026-03-02", groups[0].Date)
	assert.Equal(t, "emp-1", groups[1].EmployeeID)
	assert.Equal(t, "emp-2", groups[2].EmployeeID)
	assert.Equal(t, "2026-03-03", groups[2].Date)
	assert.Equal(t, 2, groups[1].SessionsCount)
}

func TestGroupRecords_MalformedDatesCollapsePerEmployee(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{EmployeeID: "emp-1", Date: "not-a-date", Sessions: []attendance.Session{session(t, "s-1", "2026-03-02T08:00:00", "", 0)}},
		{EmployeeID: "emp-1", Date: "", Sessions: []attendance.Session{session(t, "s-2", "2026-03-02T09:00:00", "", 0)}},
		{EmployeeID: "emp-2", Date: "also-bad", Sessions: []attendance.Session{session(t, "s-3", "2026-03-02T10:00:00", "", 0)}},
	}

	// Act
	groups := GroupRecords(records)

	// Assert: bad dates share one sentinel bucket per employee instead
	// of producing one row each.
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].SessionsCount)
	assert.Equal(t, "emp-1", groups[0].EmployeeID)
	assert.Equal(t, 1, groups[1].SessionsCount)
	assert.Equal(t, "emp-2", groups[1].EmployeeID)
}

func TestGroupRecords_TotalsRecomputedFromSessions(t *testing.T) {
	t.Parallel()

	// The record-level total disagrees with its own session list. The
	// session list wins.
	records := []attendance.Record{
		{
			EmployeeID:       "emp-1",
			Date:             "2026-03-02",
			TotalWorkedHours: 99,
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T08:00:00", "2026-03-02T12:00:00", 4),
				session(t, "s-2", "2026-03-02T13:00:00", "2026-03-02T16:30:00", 3.5),
			},
		},
	}

	// Act
	groups := GroupRecords(records)

	// Assert
	require.Len(t, groups, 1)
	assert.Equal(t, 7.5, groups[0].TotalWorkedHours)
	assert.Equal(t, 2, groups[0].SessionsCount)
}

func TestGroupRecords_OpenSessionAndOvernightFlags(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{
			EmployeeID: "emp-1",
			Date:       "2026-03-02",
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T22:00:00", "2026-03-03T06:00:00", 8),
			},
		},
		{
			EmployeeID: "emp-2",
			Date:       "2026-03-02",
			Sessions: []attendance.Session{
				session(t, "s-2", "2026-03-02T08:00:00", "", 0),
			},
		},
	}

	// Act
	groups := GroupRecords(records)

	// Assert
	require.Len(t, groups, 2)
	assert.True(t, groups[0].IsOvernight)
	assert.False(t, groups[0].HasOpenSession)
	assert.True(t, groups[1].HasOpenSession)
	assert.False(t, groups[1].IsOvernight)
}

func TestGroupRecords_StatusPromotionSurvivesLaterRecords(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{EmployeeID: "emp-1", Date: "2026-03-02", Status: "Pending"},
		{EmployeeID: "emp-1", Date: "2026-03-02", Status: " Present "},
		{EmployeeID: "emp-1", Date: "2026-03-02", Status: "Late"},
	}

	// Act
	groups := GroupRecords(records)

	// Assert: once any record says Present, the group stays Present.
	require.Len(t, groups, 1)
	assert.Equal(t, attendance.StatusPresent, groups[0].Status)
}

func TestGroupRecords_Idempotent(t *testing.T) {
	t.Parallel()

	// Overlapping pages repeat the exact same record. Feeding the input
	// twice must not change any aggregate.
	base := []attendance.Record{
		{
			EmployeeID: "emp-1",
			Date:       "2026-03-02",
			Status:     "Present",
			Sessions: []attendance.Session{
				session(t, "s-1", "2026-03-02T08:00:00", "2026-03-02T12:00:00", 4),
			},
		},
	}
	doubled := append(append([]attendance.Record{}, base...), base...)

	// Act
	once := GroupRecords(base)
	twice := GroupRecords(doubled)

	// Assert
	require.Len(t, once, 1)
	require.Len(t, twice, 1)
	assert.Equal(t, once[0], twice[0])
}

func TestGroupRecords_SkipsEmptyRecords(t *testing.T) {
	t.Parallel()

	records := []attendance.Record{
		{},
		{EmployeeID: "emp-1", Date: "2026-03-02"},
		{},
	}

	// Act
	groups := GroupRecords(records)

	// Assert
	require.Len(t, groups, 1)
	assert.Equal(t, "emp-1", groups[0].EmployeeID)
}

func TestGroupRecords_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupRecords(nil))
	assert.Empty(t, GroupRecords([]attendance.Record{}))
}

func TestNormalizeDateKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-03-02", attendance.NormalizeDateKey("2026-03-02"))
	assert.Equal(t, "2026-03-02", attendance.NormalizeDateKey("2026-03-02T00:00:00"))
	assert.Equal(t, "invalid-date", attendance.NormalizeDateKey(""))
	assert.Equal(t, "invalid-date", attendance.NormalizeDateKey("02/03/2026"))
	assert.Equal(t, "invalid-date", attendance.NormalizeDateKey("2026-13-99T00:00:00"))
}
