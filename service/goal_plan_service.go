package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"personal-site/domain"
	"personal-site/finance"
)

// ErrNoAffordableHorizon means every horizon in the range needs more than
// the monthly cap.
var ErrNoAffordableHorizon = errors.New("no horizon fits the monthly contribution cap")

type GoalPlanService struct {
	goals *GoalService
}

func NewGoalPlanService(goals *GoalService) *GoalPlanService {
	return &GoalPlanService{goals: goals}
}

// Plan evaluates every whole-year horizon between MinYears and MaxYears and
// recommends the shortest one whose contribution fits MaxMonthlyContribution.
func (s *GoalPlanService) Plan(
	ctx context.Context,
	input domain.GoalPlanInput,
) (domain.GoalPlanResult, error) {

	if input.GoalAmount <= 0 {
		return domain.GoalPlanResult{}, invalid("goal amount must be positive")
	}
	if input.GoalAmount > MaxAmount {
		return domain.GoalPlanResult{}, invalid("goal amount exceeds the maximum of %.2f", MaxAmount)
	}
	if input.AnnualRatePercent <= 0 || input.AnnualRatePercent > MaxRatePercent {
		return domain.GoalPlanResult{}, invalid("annual rate must be in (0, %.2f]", MaxRatePercent)
	}
	if input.MinYears <= 0 || input.MaxYears <= 0 {
		return domain.GoalPlanResult{}, invalid("years must be positive")
	}
	if input.MinYears > input.MaxYears {
		return domain.GoalPlanResult{}, invalid("minimum years greater than maximum")
	}
	if input.MaxYears > MaxYears {
		return domain.GoalPlanResult{}, invalid("maximum years exceed the limit of %d", MaxYears)
	}
	if input.MaxYears-input.MinYears > MaxPlanRangeYears {
		return domain.GoalPlanResult{}, invalid("year range exceeds %d years", MaxPlanRangeYears)
	}
	if input.MaxMonthlyContribution < 0 {
		return domain.GoalPlanResult{}, invalid("monthly contribution cap cannot be negative")
	}
	timing, err := finance.ParseTiming(input.Timing)
	if err != nil {
		return domain.GoalPlanResult{}, err
	}

	options := []domain.GoalPlanOption{}
	for years := input.MinYears; years <= input.MaxYears; years++ {
		res := s.goals.solve(input.GoalAmount, input.AnnualRatePercent, float64(years), timing)
		if !res.Available {
			slog.WarnContext(ctx, "skipping horizon", "years", years, "reason", res.Reason)
			continue
		}
		if input.MaxMonthlyContribution > 0 && res.MonthlyContribution > input.MaxMonthlyContribution {
			continue
		}
		options = append(options, domain.GoalPlanOption{
			Years:               years,
			MonthlyContribution: res.MonthlyContribution,
			TotalContributed:    res.TotalContributed,
			ExpectedEarnings:    res.ExpectedEarnings,
		})
	}

	if len(options) == 0 {
		return domain.GoalPlanResult{}, fmt.Errorf("%w: %d-%d years at %.2f per month",
			ErrNoAffordableHorizon, input.MinYears, input.MaxYears, input.MaxMonthlyContribution)
	}

	return domain.GoalPlanResult{
		RecommendedYears: options[0].Years,
		Options:          options,
	}, nil
}
