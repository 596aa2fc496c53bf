package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, filter ListFilter) (ListResult, error)
	Get(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req UpsertRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpsertRequest) (Employee, error)
	Delete(ctx context.Context, id string) error
}
