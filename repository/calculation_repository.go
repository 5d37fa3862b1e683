package repository

import "personal-site/domain"

type CalculationRepository interface {
	Save(record domain.CalculationRecord) error
	// Recent returns up to limit records, newest first.
	Recent(limit int) ([]domain.CalculationRecord, error)
}
