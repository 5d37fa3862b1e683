package domain

import "time"

type CalculationKind string

const (
	KindProjection CalculationKind = "projection"
	KindInflation  CalculationKind = "inflation"
	KindGoal       CalculationKind = "goal"
)

// CalculationRecord is one entry of the calculation history.
type CalculationRecord struct {
	ID                string          `json:"id"`
	Kind              CalculationKind `json:"kind"`
	Principal         float64         `json:"principal"`
	Contribution      float64         `json:"contribution"`
	AnnualRatePercent float64         `json:"annualRatePercent"`
	Years             float64         `json:"years"`
	Result            float64         `json:"result"`
	CreatedAt         time.Time       `json:"createdAt"`
}
