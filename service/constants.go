package service

import "time"

const (
	MaxAmount      = 1_000_000_000_000.0 // 1 lakh crore
	MaxRatePercent = 100.0               // 100% annual
	MaxYears       = 100

	// goal plan
	MaxPlanRangeYears = 50

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500

	DefaultCacheTTL = 24 * time.Hour

	// tasks can be scheduled from today up to six days ahead
	TaskScheduleDays = 7
)
