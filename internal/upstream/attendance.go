package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/attendance"
)

// recordPage is the paginated payload of both attendance endpoints.
// TotalCount is the upstream's raw row count, before any client-side
// grouping.
type recordPage struct {
	Items      []attendance.Record `json:"items"`
	TotalCount int64               `json:"totalCount"`
}

// DailyAttendance fetches one page of raw attendance records for a
// calendar date.
func (c *Client) DailyAttendance(ctx context.Context, filter attendance.DailyFilter) ([]attendance.Record, int64, error) {
	query := url.Values{}
	query.Set("date", filter.Date)
	if filter.SearchName != "" {
		query.Set("SearchName", filter.SearchName)
	}
	query.Set("pageNumber", strconv.Itoa(filter.Page))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))
	if filter.SortField != "" {
		query.Set("sortField", filter.SortField)
	}
	if filter.SortOrder != "" {
		query.Set("sortOrder", filter.SortOrder)
	}

	var page recordPage
	if err := c.get(ctx, "/api/Attendance/daily", query, &page); err != nil {
		return nil, 0, err
	}
	return page.Items, page.TotalCount, nil
}

// AttendanceHistory fetches one page of a single employee's raw records
// over a date range.
func (c *Client) AttendanceHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Record, int64, error) {
	query := url.Values{}
	query.Set("employeeId", filter.EmployeeID)
	query.Set("startDate", filter.StartDate)
	query.Set("endDate", filter.EndDate)
	query.Set("pageNumber", strconv.Itoa(filter.Page))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))

	var page recordPage
	if err := c.get(ctx, "/api/Attendance/history", query, &page); err != nil {
		return nil, 0, err
	}
	return page.Items, page.TotalCount, nil
}
