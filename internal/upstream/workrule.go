package upstream

import (
	"context"
	"net/url"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/workrule"
)

// Work rules

func (c *Client) ListWorkRules(ctx context.Context) ([]workrule.WorkRule, error) {
	var rules []workrule.WorkRule
	if err := c.get(ctx, "/api/WorkRule", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

func (c *Client) CreateWorkRule(ctx context.Context, req workrule.WorkRuleRequest) (workrule.WorkRule, error) {
	var rule workrule.WorkRule
	if err := c.post(ctx, "/api/WorkRule", req, &rule); err != nil {
		return workrule.WorkRule{}, err
	}
	return rule, nil
}

func (c *Client) UpdateWorkRule(ctx context.Context, id string, req workrule.WorkRuleRequest) (workrule.WorkRule, error) {
	var rule workrule.WorkRule
	if err := c.put(ctx, "/api/WorkRule/"+url.PathEscape(id), req, &rule); err != nil {
		return workrule.WorkRule{}, err
	}
	return rule, nil
}

func (c *Client) DeleteWorkRule(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/WorkRule/"+url.PathEscape(id))
}

// Shifts

func (c *Client) ListShifts(ctx context.Context) ([]workrule.Shift, error) {
	var shifts []workrule.Shift
	if err := c.get(ctx, "/api/Shift", nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) CreateShift(ctx context.Context, req workrule.ShiftRequest) (workrule.Shift, error) {
	var shift workrule.Shift
	if err := c.post(ctx, "/api/Shift", req, &shift); err != nil {
		return workrule.Shift{}, err
	}
	return shift, nil
}

func (c *Client) UpdateShift(ctx context.Context, id string, req workrule.ShiftRequest) (workrule.Shift, error) {
	var shift workrule.Shift
	if err := c.put(ctx, "/api/Shift/"+url.PathEscape(id), req, &shift); err != nil {
		return workrule.Shift{}, err
	}
	return shift, nil
}

func (c *Client) DeleteShift(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/Shift/"+url.PathEscape(id))
}

// Salary configuration

func (c *Client) ListSalaryConfigs(ctx context.Context) ([]workrule.SalaryConfig, error) {
	var configs []workrule.SalaryConfig
	if err := c.get(ctx, "/api/Salary", nil, &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

func (c *Client) UpsertSalaryConfig(ctx context.Context, req workrule.SalaryConfigRequest) (workrule.SalaryConfig, error) {
	var config workrule.SalaryConfig
	if err := c.post(ctx, "/api/Salary", req, &config); err != nil {
		return workrule.SalaryConfig{}, err
	}
	return config, nil
}
