package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"personal-site/domain"
	"personal-site/finance"
	"personal-site/repository"
)

type ProjectionService struct {
	repo     repository.CalculationRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	locale   language.Tag
	now      func() time.Time
}

type ProjectionOption func(*ProjectionService)

// WithCacheTTL sets how long cached results live.
func WithCacheTTL(ttl time.Duration) ProjectionOption {
	return func(s *ProjectionService) { s.cacheTTL = ttl }
}

// WithLocale sets the locale used to format amounts.
func WithLocale(tag language.Tag) ProjectionOption {
	return func(s *ProjectionService) { s.locale = tag }
}

// NewProjectionService creates a ProjectionService that records every
// calculation in repo and memoizes results in cache.
func NewProjectionService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	opts ...ProjectionOption,
) *ProjectionService {
	s := &ProjectionService{
		repo:     repo,
		cache:    cache,
		cacheTTL: DefaultCacheTTL,
		locale:   finance.DefaultLocale,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Project computes the future value of a principal plus a monthly
// contribution, split into money invested and money earned.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {

	if err := validateProjection(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	key := fmt.Sprintf("projection:%g:%g:%g:%g",
		input.Principal, input.PeriodicContribution, input.AnnualRatePercent, input.Years)

	var result domain.ProjectionResult
	if !s.cached(ctx, key, &result) {
		lump, err := finance.ProjectLumpSum(input.Principal, input.AnnualRatePercent, input.Years)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		sip, err := finance.ProjectSIP(input.PeriodicContribution, input.AnnualRatePercent, input.Years)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		double, err := finance.YearsToDouble(input.AnnualRatePercent)
		if err != nil {
			return domain.ProjectionResult{}, err
		}

		futureValue := lump + sip
		if math.IsInf(futureValue, 0) {
			return domain.ProjectionResult{}, finance.ErrNumericOverflow
		}
		fv, principal, earnings := splitCents(futureValue,
			invested(input.Principal, input.PeriodicContribution, input.Years))

		result = domain.ProjectionResult{
			FutureValue:        fv,
			PrincipalComponent: principal,
			EarningsComponent:  earnings,
			YearsToDouble:      roundCents(double),
		}
		s.store(ctx, key, result)
	}

	s.record(domain.CalculationRecord{
		Kind:              domain.KindProjection,
		Principal:         input.Principal,
		Contribution:      input.PeriodicContribution,
		AnnualRatePercent: input.AnnualRatePercent,
		Years:             input.Years,
		Result:            result.FutureValue,
	})

	return result, nil
}

// ProjectSIP projects a monthly contribution on its own.
func (s *ProjectionService) ProjectSIP(ctx context.Context, input domain.SIPInput) (domain.ProjectionResult, error) {
	return s.Project(ctx, domain.ProjectionInput{
		PeriodicContribution: input.MonthlyContribution,
		AnnualRatePercent:    input.AnnualRatePercent,
		Years:                input.Years,
	})
}

// ProjectLumpSum projects an upfront principal on its own.
func (s *ProjectionService) ProjectLumpSum(ctx context.Context, input domain.LumpSumInput) (domain.ProjectionResult, error) {
	return s.Project(ctx, domain.ProjectionInput{
		Principal:         input.Principal,
		AnnualRatePercent: input.AnnualRatePercent,
		Years:             input.Years,
	})
}

// ProjectInflation returns the future cost of something worth CurrentValue today.
func (s *ProjectionService) ProjectInflation(
	ctx context.Context,
	input domain.InflationInput,
) (domain.InflationResult, error) {

	if input.CurrentValue <= 0 {
		return domain.InflationResult{}, invalid("current value must be positive")
	}
	if input.CurrentValue > MaxAmount {
		return domain.InflationResult{}, invalid("current value exceeds the maximum of %.2f", MaxAmount)
	}
	if err := validateRateAndYears(input.InflationRatePercent, input.Years); err != nil {
		return domain.InflationResult{}, err
	}

	key := fmt.Sprintf("inflation:%g:%g:%g", input.CurrentValue, input.InflationRatePercent, input.Years)

	var result domain.InflationResult
	if !s.cached(ctx, key, &result) {
		adjusted, err := finance.ProjectInflationAdjusted(input.CurrentValue, input.InflationRatePercent, input.Years)
		if err != nil {
			return domain.InflationResult{}, err
		}
		value, _, increase := splitCents(adjusted, decimal.NewFromFloat(input.CurrentValue))
		result = domain.InflationResult{
			AdjustedValue: value,
			Increase:      increase,
		}
		s.store(ctx, key, result)
	}

	s.record(domain.CalculationRecord{
		Kind:              domain.KindInflation,
		Principal:         input.CurrentValue,
		AnnualRatePercent: input.InflationRatePercent,
		Years:             input.Years,
		Result:            result.AdjustedValue,
	})

	return result, nil
}

func (s *ProjectionService) YearsToDouble(annualRatePercent float64) (domain.DoublingResult, error) {
	years, err := finance.YearsToDouble(annualRatePercent)
	if err != nil {
		return domain.DoublingResult{}, err
	}
	return domain.DoublingResult{
		AnnualRatePercent: annualRatePercent,
		YearsToDouble:     roundCents(years),
	}, nil
}

// Describe spells an amount in crore/lakh/thousand and formats it for the
// configured locale.
func (s *ProjectionService) Describe(amount float64) (domain.WordsResult, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return domain.WordsResult{}, invalid("amount must be a finite number")
	}
	return domain.WordsResult{
		Amount:    amount,
		Words:     finance.NumberToLocaleWords(amount),
		Formatted: finance.FormatAmount(s.locale, amount),
	}, nil
}

func (s *ProjectionService) cached(ctx context.Context, key string, out any) bool {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		slog.Warn("discarding unreadable cache entry", "key", key, "err", err)
		return false
	}
	return true
}

// store caches a result; failure is not critical.
func (s *ProjectionService) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		slog.Warn("failed to encode result for cache", "key", key, "err", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		slog.Warn("failed to cache result", "key", key, "err", err)
	}
}

func (s *ProjectionService) record(rec domain.CalculationRecord) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = s.now().UTC()
	if err := s.repo.Save(rec); err != nil {
		slog.Warn("failed to save calculation", "kind", rec.Kind, "err", err)
	}
}

func validateProjection(input domain.ProjectionInput) error {
	if input.Principal < 0 {
		return invalid("principal cannot be negative")
	}
	if input.PeriodicContribution < 0 {
		return invalid("periodic contribution cannot be negative")
	}
	if input.Principal == 0 && input.PeriodicContribution == 0 {
		return invalid("either principal or periodic contribution must be positive")
	}
	if input.Principal > MaxAmount || input.PeriodicContribution > MaxAmount {
		return invalid("amount exceeds the maximum of %.2f", MaxAmount)
	}
	return validateRateAndYears(input.AnnualRatePercent, input.Years)
}

func validateRateAndYears(rate, years float64) error {
	if math.IsNaN(rate) || rate <= 0 {
		return invalid("annual rate must be positive")
	}
	if rate > MaxRatePercent {
		return invalid("annual rate exceeds the maximum of %.2f%%", MaxRatePercent)
	}
	if math.IsNaN(years) || years <= 0 {
		return invalid("years must be positive")
	}
	if years > MaxYears {
		return invalid("years exceed the maximum of %d", MaxYears)
	}
	return nil
}

// invalid builds an error matching finance.ErrInvalidInput.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{finance.ErrInvalidInput}, args...)...)
}
