package employee

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/employee"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
)

// EmployeeDirectory is the slice of the upstream client this service
// needs.
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error)
	GetEmployee(ctx context.Context, id string) (employee.Employee, error)
	CreateEmployee(ctx context.Context, req employee.UpsertRequest) (employee.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req employee.UpsertRequest) (employee.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
}

type EmployeeServiceImpl struct {
	directory EmployeeDirectory
}

func NewEmployeeService(directory EmployeeDirectory) employee.EmployeeService {
	return &EmployeeServiceImpl{directory: directory}
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) (employee.ListResult, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListResult{}, err
	}

	items, totalCount, err := e.directory.ListEmployees(ctx, filter)
	if err != nil {
		return employee.ListResult{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ListResult{
		Items:      items,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalCount: totalCount,
	}, nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	result, err := e.directory.GetEmployee(ctx, id)
	if err != nil {
		return employee.Employee{}, mapNotFound(err)
	}
	return result, nil
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.UpsertRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	result, err := e.directory.CreateEmployee(ctx, req)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpsertRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	result, err := e.directory.UpdateEmployee(ctx, id, req)
	if err != nil {
		return employee.Employee{}, mapNotFound(err)
	}
	return result, nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := e.directory.DeleteEmployee(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func mapNotFound(err error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return employee.ErrEmployeeNotFound
	}
	return fmt.Errorf("upstream employee request failed: %w", err)
}
