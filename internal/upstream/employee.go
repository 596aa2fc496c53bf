package upstream

import (
	"context"
	"net/url"
	"strconv"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/employee"
)

type employeePage struct {
	Items      []employee.Employee `json:"items"`
	TotalCount int64               `json:"totalCount"`
}

// ListEmployees fetches one page of employees, optionally filtered by a
// name search.
func (c *Client) ListEmployees(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("SearchName", filter.Search)
	}
	query.Set("pageNumber", strconv.Itoa(filter.Page))
	query.Set("pageSize", strconv.Itoa(filter.PageSize))

	var page employeePage
	if err := c.get(ctx, "/api/Employee", query, &page); err != nil {
		return nil, 0, err
	}
	return page.Items, page.TotalCount, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (employee.Employee, error) {
	var result employee.Employee
	if err := c.get(ctx, "/api/Employee/"+url.PathEscape(id), nil, &result); err != nil {
		return employee.Employee{}, err
	}
	return result, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req employee.UpsertRequest) (employee.Employee, error) {
	var result employee.Employee
	if err := c.post(ctx, "/api/Employee", req, &result); err != nil {
		return employee.Employee{}, err
	}
	return result, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id string, req employee.UpsertRequest) (employee.Employee, error) {
	var result employee.Employee
	if err := c.put(ctx, "/api/Employee/"+url.PathEscape(id), req, &result); err != nil {
		return employee.Employee{}, err
	}
	return result, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/Employee/"+url.PathEscape(id))
}
