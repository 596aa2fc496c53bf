package workrule

import "context"

type WorkRuleService interface {
	ListWorkRules(ctx context.Context) ([]WorkRule, error)
	CreateWorkRule(ctx context.Context, req WorkRuleRequest) (WorkRule, error)
	UpdateWorkRule(ctx context.Context, id string, req WorkRuleRequest) (WorkRule, error)
	DeleteWorkRule(ctx context.Context, id string) error

	ListShifts(ctx context.Context) ([]Shift, error)
	CreateShift(ctx context.Context, req ShiftRequest) (Shift, error)
	UpdateShift(ctx context.Context, id string, req ShiftRequest) (Shift, error)
	DeleteShift(ctx context.Context, id string) error

	ListSalaryConfigs(ctx context.Context) ([]SalaryConfig, error)
	UpsertSalaryConfig(ctx context.Context, req SalaryConfigRequest) (SalaryConfig, error)
}
