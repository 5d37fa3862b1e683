package domain

type GoalInput struct {
	GoalAmount        float64 `json:"goalAmount"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	Years             float64 `json:"years"`
	Timing            string  `json:"timing,omitempty"` // "due" (default) or "ordinary"
}

// GoalResult is unavailable (Available false) when the inputs have no
// solution; Reason then says why and the amounts are zero.
type GoalResult struct {
	Available           bool    `json:"available"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalContributed    float64 `json:"totalContributed"`
	ExpectedEarnings    float64 `json:"expectedEarnings"`
	Timing              string  `json:"timing"`
	Reason              string  `json:"reason,omitempty"`
}

type GoalPlanInput struct {
	GoalAmount             float64 `json:"goalAmount"`
	AnnualRatePercent      float64 `json:"annualRatePercent"`
	MinYears               int     `json:"minYears"`
	MaxYears               int     `json:"maxYears"`
	MaxMonthlyContribution float64 `json:"maxMonthlyContribution"` // 0 means no cap
	Timing                 string  `json:"timing,omitempty"`
}

type GoalPlanOption struct {
	Years               int     `json:"years"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	TotalContributed    float64 `json:"totalContributed"`
	ExpectedEarnings    float64 `json:"expectedEarnings"`
}

type GoalPlanResult struct {
	RecommendedYears int              `json:"recommendedYears"`
	Options          []GoalPlanOption `json:"options"`
}
