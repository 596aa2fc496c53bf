package attendance

import "context"

type AttendanceService interface {
	// Daily returns one grouped row per (employee, date) for the given
	// day's raw upstream records.
	Daily(ctx context.Context, filter DailyFilter) (ListResult, error)

	// History returns grouped rows for a single employee over a date
	// range.
	History(ctx context.Context, filter HistoryFilter) (ListResult, error)
}
