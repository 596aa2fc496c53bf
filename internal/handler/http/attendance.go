package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/handler/http/response"
)

type AttendanceHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Daily implements AttendanceHandler.
func (h *attendanceHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	filter := attendance.DailyFilter{
		Date:       r.URL.Query().Get("date"),
		SearchName: r.URL.Query().Get("SearchName"),
		SortField:  r.URL.Query().Get("sortField"),
		SortOrder:  r.URL.Query().Get("sortOrder"),
		Page:       queryInt(r, "pageNumber", 1),
		PageSize:   queryInt(r, "pageSize", 20),
	}

	result, err := h.attendanceService.Daily(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := attendance.HistoryFilter{
		EmployeeID: r.URL.Query().Get("employeeId"),
		StartDate:  r.URL.Query().Get("startDate"),
		EndDate:    r.URL.Query().Get("endDate"),
		Page:       queryInt(r, "pageNumber", 1),
		PageSize:   queryInt(r, "pageSize", 20),
	}

	result, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func queryInt(r *http.Request, name string, fallback int) int {
	if raw := r.URL.Query().Get(name); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			return value
		}
	}
	return fallback
}
