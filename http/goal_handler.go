package http

import (
	"net/http"

	"personal-site/domain"
	"personal-site/service"
)

type GoalHandler struct {
	goals *service.GoalService
	plans *service.GoalPlanService
}

func NewGoalHandler(goals *service.GoalService, plans *service.GoalPlanService) *GoalHandler {
	return &GoalHandler{goals: goals, plans: plans}
}

// Goal always answers 200 for a well-formed request whose inputs are in
// range; an unreachable goal comes back with available=false.
func (h *GoalHandler) Goal(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.GoalInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.goals.RequiredContribution(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

func (h *GoalHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.GoalPlanInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.plans.Plan(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}
