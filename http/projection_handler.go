package http

import (
	"net/http"
	"strconv"

	"personal-site/domain"
	"personal-site/service"
)

type ProjectionHandler struct {
	service *service.ProjectionService
}

func NewProjectionHandler(service *service.ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{service: service}
}

func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.ProjectionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Project(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

func (h *ProjectionHandler) SIP(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.SIPInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.ProjectSIP(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

func (h *ProjectionHandler) LumpSum(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.LumpSumInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.ProjectLumpSum(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

func (h *ProjectionHandler) Inflation(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.InflationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.ProjectInflation(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

// Double answers GET /finance/double?rate=12.
func (h *ProjectionHandler) Double(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	rate, err := strconv.ParseFloat(r.URL.Query().Get("rate"), 64)
	if err != nil {
		http.Error(w, "rate must be a number", http.StatusBadRequest)
		return
	}

	result, err := h.service.YearsToDouble(rate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}

// Words answers GET /finance/words?amount=12345678.
func (h *ProjectionHandler) Words(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		http.Error(w, "amount must be a number", http.StatusBadRequest)
		return
	}

	result, err := h.service.Describe(amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, result)
}
