package domain

// ProjectionInput combines an upfront principal with a monthly contribution.
type ProjectionInput struct {
	Principal            float64 `json:"principal"`
	PeriodicContribution float64 `json:"periodicContribution"`
	AnnualRatePercent    float64 `json:"annualRatePercent"`
	Years                float64 `json:"years"`
}

// SIPInput is a projection with only a monthly contribution.
type SIPInput struct {
	MonthlyContribution float64 `json:"monthlyContribution"`
	AnnualRatePercent   float64 `json:"annualRatePercent"`
	Years               float64 `json:"years"`
}

// LumpSumInput is a projection with only an upfront principal.
type LumpSumInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Years             float64 `json:"years"`
}

type ProjectionResult struct {
	FutureValue        float64 `json:"futureValue"`
	PrincipalComponent float64 `json:"principalComponent"` // total money put in
	EarningsComponent  float64 `json:"earningsComponent"`
	YearsToDouble      float64 `json:"yearsToDouble"`
}

type InflationInput struct {
	CurrentValue         float64 `json:"currentValue"`
	InflationRatePercent float64 `json:"inflationRatePercent"`
	Years                float64 `json:"years"`
}

type InflationResult struct {
	AdjustedValue float64 `json:"adjustedValue"`
	Increase      float64 `json:"increase"`
}

type DoublingResult struct {
	AnnualRatePercent float64 `json:"annualRatePercent"`
	YearsToDouble     float64 `json:"yearsToDouble"`
}

type WordsResult struct {
	Amount    float64 `json:"amount"`
	Words     string  `json:"words"`
	Formatted string  `json:"formatted"`
}
