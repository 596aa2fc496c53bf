package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/workrule"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkRuleHandler interface {
	ListWorkRules(w http.ResponseWriter, r *http.Request)
	CreateWorkRule(w http.ResponseWriter, r *http.Request)
	UpdateWorkRule(w http.ResponseWriter, r *http.Request)
	DeleteWorkRule(w http.ResponseWriter, r *http.Request)

	ListShifts(w http.ResponseWriter, r *http.Request)
	CreateShift(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	ListSalaryConfigs(w http.ResponseWriter, r *http.Request)
	UpsertSalaryConfig(w http.ResponseWriter, r *http.Request)
}

type workRuleHandlerImpl struct {
	workRuleService workrule.WorkRuleService
}

func NewWorkRuleHandler(workRuleService workrule.WorkRuleService) WorkRuleHandler {
	return &workRuleHandlerImpl{
		workRuleService: workRuleService,
	}
}

func (h *workRuleHandlerImpl) ListWorkRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.workRuleService.ListWorkRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workRuleHandlerImpl) CreateWorkRule(w http.ResponseWriter, r *http.Request) {
	var req workrule.WorkRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workRuleService.CreateWorkRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Work rule created successfully", result)
}

func (h *workRuleHandlerImpl) UpdateWorkRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req workrule.WorkRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workRuleService.UpdateWorkRule(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work rule updated successfully", result)
}

func (h *workRuleHandlerImpl) DeleteWorkRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workRuleService.DeleteWorkRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Work rule deleted successfully", nil)
}

func (h *workRuleHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.workRuleService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workRuleHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req workrule.ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workRuleService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created successfully", result)
}

func (h *workRuleHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req workrule.ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workRuleService.UpdateShift(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated successfully", result)
}

func (h *workRuleHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workRuleService.DeleteShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

func (h *workRuleHandlerImpl) ListSalaryConfigs(w http.ResponseWriter, r *http.Request) {
	result, err := h.workRuleService.ListSalaryConfigs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func (h *workRuleHandlerImpl) UpsertSalaryConfig(w http.ResponseWriter, r *http.Request) {
	var req workrule.SalaryConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workRuleService.UpsertSalaryConfig(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary configuration saved successfully", result)
}
