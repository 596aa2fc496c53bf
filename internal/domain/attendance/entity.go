package attendance

import (
	"encoding/json"
	"strings"
	"time"
)

// apiTimeLayouts lists the timestamp shapes the upstream API is known to
// emit. The first match wins.
var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Time wraps time.Time to tolerate the upstream API's zone-less ISO
// timestamps.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return lastErr
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format("2006-01-02T15:04:05"))
}

// DateKey returns the calendar-date portion used for grouping and
// overnight detection.
func (t Time) DateKey() string {
	return t.Format("2006-01-02")
}

// GeoPoint is a latitude/longitude pair attached to a check-in or
// check-out.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Session is a single check-in/check-out span within a working day.
// ID is unique and used for de-duplication when pages overlap.
type Session struct {
	ID               string    `json:"sessionId"`
	CheckIn          *Time     `json:"checkInTime"`
	CheckOut         *Time     `json:"checkOutTime,omitempty"`
	Hours            float64   `json:"hours"`
	CheckInLocation  *GeoPoint `json:"checkInLocation,omitempty"`
	CheckOutLocation *GeoPoint `json:"checkOutLocation,omitempty"`
	LocationName     *string   `json:"locationName,omitempty"`
}

// Record is a raw attendance row as delivered by the upstream API. One
// employee/day can arrive as several records (check-in and check-out on
// separate fetches, multiple shifts, overlapping pages).
type Record struct {
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName"`
	Date             string    `json:"date"`
	CheckIn          *Time     `json:"checkInTime,omitempty"`
	CheckOut         *Time     `json:"checkOutTime,omitempty"`
	TotalWorkedHours float64   `json:"totalWorkedHours"`
	Status           string    `json:"status"`
	Sessions         []Session `json:"sessions"`
}

// Grouped is the aggregated per-employee-per-day view of one or more
// Records.
type Grouped struct {
	EmployeeID       string    `json:"employeeId"`
	EmployeeName     string    `json:"employeeName"`
	Date             string    `json:"date"`
	FirstCheckIn     *Time     `json:"firstCheckIn,omitempty"`
	LastCheckOut     *Time     `json:"lastCheckOut,omitempty"`
	TotalWorkedHours float64   `json:"totalWorkedHours"`
	SessionsCount    int       `json:"sessionsCount"`
	HasOpenSession   bool      `json:"hasOpenSession"`
	IsOvernight      bool      `json:"isOvernight"`
	Sessions         []Session `json:"sessions"`
	Status           string    `json:"status"`
}

// StatusPresent is the one status label the grouping reducer promotes
// across merged records.
const StatusPresent = "Present"

// sentinelDateKey groups records whose date field is missing or
// unparseable so they still collapse per employee instead of one row per
// record.
const sentinelDateKey = "invalid-date"

// NormalizeDateKey extracts the YYYY-MM-DD portion of an upstream date
// string, or the sentinel key when the value is absent or malformed.
func NormalizeDateKey(date string) string {
	if len(date) < 10 {
		return sentinelDateKey
	}
	day := date[:10]
	if _, err := time.Parse("2006-01-02", day); err != nil {
		return sentinelDateKey
	}
	return day
}

// GroupKey is the (employee, calendar date) identity of a Record.
func (r Record) GroupKey() string {
	return r.EmployeeID + "|" + NormalizeDateKey(r.Date)
}

// HasStatus reports whether the record carries the given status label,
// ignoring surrounding whitespace.
func (r Record) HasStatus(status string) bool {
	return strings.TrimSpace(r.Status) == status
}
