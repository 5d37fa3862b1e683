package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"personal-site/domain"
	"personal-site/finance"
	"personal-site/repository"
)

type GoalService struct {
	repo repository.CalculationRepository
	now  func() time.Time
}

func NewGoalService(repo repository.CalculationRepository) *GoalService {
	return &GoalService{repo: repo, now: time.Now}
}

// RequiredContribution works out the monthly SIP that reaches GoalAmount.
// Inputs without a solution (zero rate, zero horizon, ...) give an
// unavailable result rather than an error.
func (s *GoalService) RequiredContribution(
	ctx context.Context,
	input domain.GoalInput,
) (domain.GoalResult, error) {

	timing, err := finance.ParseTiming(input.Timing)
	if err != nil {
		return domain.GoalResult{}, err
	}
	if input.GoalAmount > MaxAmount {
		return domain.GoalResult{}, invalid("goal amount exceeds the maximum of %.2f", MaxAmount)
	}
	if input.AnnualRatePercent > MaxRatePercent {
		return domain.GoalResult{}, invalid("annual rate exceeds the maximum of %.2f%%", MaxRatePercent)
	}
	if input.Years > MaxYears {
		return domain.GoalResult{}, invalid("years exceed the maximum of %d", MaxYears)
	}

	result := s.solve(input.GoalAmount, input.AnnualRatePercent, input.Years, timing)
	if result.Available {
		rec := domain.CalculationRecord{
			ID:                uuid.NewString(),
			Kind:              domain.KindGoal,
			Principal:         input.GoalAmount,
			AnnualRatePercent: input.AnnualRatePercent,
			Years:             input.Years,
			Result:            result.MonthlyContribution,
			CreatedAt:         s.now().UTC(),
		}
		if err := s.repo.Save(rec); err != nil {
			slog.WarnContext(ctx, "failed to save goal calculation", "err", err)
		}
	}
	return result, nil
}

func (s *GoalService) solve(goal, rate, years float64, timing finance.Timing) domain.GoalResult {
	monthly, err := finance.RequiredContribution(goal, rate, years, timing)
	if err != nil {
		return domain.GoalResult{
			Available: false,
			Timing:    timing.String(),
			Reason:    err.Error(),
		}
	}

	perMonth := decimal.NewFromFloat(monthly).Round(2)
	total := invested(0, perMonth.InexactFloat64(), years).Round(2)
	return domain.GoalResult{
		Available:           true,
		MonthlyContribution: perMonth.InexactFloat64(),
		TotalContributed:    total.InexactFloat64(),
		ExpectedEarnings:    decimal.NewFromFloat(goal).Round(2).Sub(total).InexactFloat64(),
		Timing:              timing.String(),
	}
}
