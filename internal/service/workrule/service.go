package workrule

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/workrule"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
)

// ConfigClient is the slice of the upstream client this service needs.
type ConfigClient interface {
	ListWorkRules(ctx context.Context) ([]workrule.WorkRule, error)
	CreateWorkRule(ctx context.Context, req workrule.WorkRuleRequest) (workrule.WorkRule, error)
	UpdateWorkRule(ctx context.Context, id string, req workrule.WorkRuleRequest) (workrule.WorkRule, error)
	DeleteWorkRule(ctx context.Context, id string) error

	ListShifts(ctx context.Context) ([]workrule.Shift, error)
	CreateShift(ctx context.Context, req workrule.ShiftRequest) (workrule.Shift, error)
	UpdateShift(ctx context.Context, id string, req workrule.ShiftRequest) (workrule.Shift, error)
	DeleteShift(ctx context.Context, id string) error

	ListSalaryConfigs(ctx context.Context) ([]workrule.SalaryConfig, error)
	UpsertSalaryConfig(ctx context.Context, req workrule.SalaryConfigRequest) (workrule.SalaryConfig, error)
}

type WorkRuleServiceImpl struct {
	client ConfigClient
}

func NewWorkRuleService(client ConfigClient) workrule.WorkRuleService {
	return &WorkRuleServiceImpl{client: client}
}

func (w *WorkRuleServiceImpl) ListWorkRules(ctx context.Context) ([]workrule.WorkRule, error) {
	rules, err := w.client.ListWorkRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work rules: %w", err)
	}
	return rules, nil
}

func (w *WorkRuleServiceImpl) CreateWorkRule(ctx context.Context, req workrule.WorkRuleRequest) (workrule.WorkRule, error) {
	if err := req.Validate(); err != nil {
		return workrule.WorkRule{}, err
	}
	rule, err := w.client.CreateWorkRule(ctx, req)
	if err != nil {
		return workrule.WorkRule{}, fmt.Errorf("failed to create work rule: %w", err)
	}
	return rule, nil
}

func (w *WorkRuleServiceImpl) UpdateWorkRule(ctx context.Context, id string, req workrule.WorkRuleRequest) (workrule.WorkRule, error) {
	if err := req.Validate(); err != nil {
		return workrule.WorkRule{}, err
	}
	rule, err := w.client.UpdateWorkRule(ctx, id, req)
	if err != nil {
		return workrule.WorkRule{}, mapConfigError(err, workrule.ErrWorkRuleNotFound)
	}
	return rule, nil
}

func (w *WorkRuleServiceImpl) DeleteWorkRule(ctx context.Context, id string) error {
	if err := w.client.DeleteWorkRule(ctx, id); err != nil {
		return mapConfigError(err, workrule.ErrWorkRuleNotFound)
	}
	return nil
}

func (w *WorkRuleServiceImpl) ListShifts(ctx context.Context) ([]workrule.Shift, error) {
	shifts, err := w.client.ListShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, nil
}

func (w *WorkRuleServiceImpl) CreateShift(ctx context.Context, req workrule.ShiftRequest) (workrule.Shift, error) {
	if err := req.Validate(); err != nil {
		return workrule.Shift{}, err
	}
	shift, err := w.client.CreateShift(ctx, req)
	if err != nil {
		return workrule.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

func (w *WorkRuleServiceImpl) UpdateShift(ctx context.Context, id string, req workrule.ShiftRequest) (workrule.Shift, error) {
	if err := req.Validate(); err != nil {
		return workrule.Shift{}, err
	}
	shift, err := w.client.UpdateShift(ctx, id, req)
	if err != nil {
		return workrule.Shift{}, mapConfigError(err, workrule.ErrShiftNotFound)
	}
	return shift, nil
}

func (w *WorkRuleServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := w.client.DeleteShift(ctx, id); err != nil {
		return mapConfigError(err, workrule.ErrShiftNotFound)
	}
	return nil
}

func (w *WorkRuleServiceImpl) ListSalaryConfigs(ctx context.Context) ([]workrule.SalaryConfig, error) {
	configs, err := w.client.ListSalaryConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary configurations: %w", err)
	}
	return configs, nil
}

func (w *WorkRuleServiceImpl) UpsertSalaryConfig(ctx context.Context, req workrule.SalaryConfigRequest) (workrule.SalaryConfig, error) {
	if err := req.Validate(); err != nil {
		return workrule.SalaryConfig{}, err
	}
	config, err := w.client.UpsertSalaryConfig(ctx, req)
	if err != nil {
		return workrule.SalaryConfig{}, fmt.Errorf("failed to upsert salary configuration: %w", err)
	}
	return config, nil
}

func mapConfigError(err error, notFound error) error {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return notFound
	}
	return fmt.Errorf("upstream configuration request failed: %w", err)
}
