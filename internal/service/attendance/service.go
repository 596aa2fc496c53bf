package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/cache"
)

// RecordFetcher is the slice of the upstream client this service needs.
type RecordFetcher interface {
	DailyAttendance(ctx context.Context, filter attendance.DailyFilter) ([]attendance.Record, int64, error)
	AttendanceHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Record, int64, error)
}

type AttendanceServiceImpl struct {
	fetcher RecordFetcher
	cache   *cache.TTLCache
}

func NewAttendanceService(fetcher RecordFetcher) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		fetcher: fetcher,
		cache:   cache.New(30 * time.Second),
	}
}

// Daily implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Daily(ctx context.Context, filter attendance.DailyFilter) (attendance.ListResult, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResult{}, err
	}

	key := dailyCacheKey(filter)
	if cached, ok := a.cache.Get(key); ok {
		return cached.(attendance.ListResult), nil
	}

	records, totalCount, err := a.fetcher.DailyAttendance(ctx, filter)
	if err != nil {
		return attendance.ListResult{}, fmt.Errorf("failed to fetch daily attendance: %w", err)
	}

	result := groupedResult(records, totalCount, filter.Page, filter.PageSize)
	a.cache.Set(key, result)
	return result, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListResult, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResult{}, err
	}

	records, totalCount, err := a.fetcher.AttendanceHistory(ctx, filter)
	if err != nil {
		return attendance.ListResult{}, fmt.Errorf("failed to fetch attendance history: %w", err)
	}

	return groupedResult(records, totalCount, filter.Page, filter.PageSize), nil
}

// Invalidate drops cached snapshots, e.g. on logout.
func (a *AttendanceServiceImpl) Invalidate() {
	a.cache.Reset()
}

// groupedResult reduces raw records and wraps them with the upstream's
// pagination meta. TotalCount is the upstream's pre-grouping row count
// and is deliberately not reconciled with the grouped row count.
func groupedResult(records []attendance.Record, totalCount int64, page, pageSize int) attendance.ListResult {
	groups := GroupRecords(records)
	return attendance.ListResult{
		Items: groups,
		Meta: attendance.Meta{
			Page:       page,
			PageSize:   pageSize,
			TotalCount: totalCount,
			GroupCount: len(groups),
		},
	}
}

func dailyCacheKey(f attendance.DailyFilter) string {
	return "daily|" + f.Date + "|" + f.SearchName + "|" +
		strconv.Itoa(f.Page) + "|" + strconv.Itoa(f.PageSize) + "|" +
		f.SortField + "|" + f.SortOrder
}
