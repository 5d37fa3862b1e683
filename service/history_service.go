package service

import (
	"personal-site/domain"
	"personal-site/repository"
)

type HistoryService struct {
	repo repository.CalculationRepository
}

func NewHistoryService(repo repository.CalculationRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Recent returns the latest calculations, newest first. A non-positive limit
// selects DefaultHistoryLimit; limits above MaxHistoryLimit are clamped.
func (s *HistoryService) Recent(limit int) ([]domain.CalculationRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.Recent(limit)
}
