package http

import (
	"net/http"
	"strconv"

	"personal-site/domain"
	"personal-site/service"
)

type HistoryHandler struct {
	service *service.HistoryService
}

func NewHistoryHandler(service *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.Recent(limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.CalculationRecord{}
	}
	writeJSON(w, r, records)
}
