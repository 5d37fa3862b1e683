package service

import (
	"context"
	"errors"
	"testing"

	"personal-site/domain"
	"personal-site/finance"
)

func newGoalPlanService() (*GoalPlanService, *MockCalculationRepository) {
	repo := &MockCalculationRepository{}
	return NewGoalPlanService(NewGoalService(repo)), repo
}

func TestPlan_RecommendsShortestAffordableHorizon(t *testing.T) {

	service, repo := newGoalPlanService()

	result, err := service.Plan(context.Background(), domain.GoalPlanInput{
		GoalAmount:             1000000,
		AnnualRatePercent:      12,
		MinYears:               5,
		MaxYears:               15,
		MaxMonthlyContribution: 5000,
		Timing:                 "ordinary",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 10 years needs 4347.09/month, 9 years needs more than 5000
	if result.RecommendedYears != 10 {
		t.Errorf("expected 10 years, got %d", result.RecommendedYears)
	}
	if len(result.Options) != 6 {
		t.Errorf("expected horizons 10..15, got %d options", len(result.Options))
	}
	for i := 1; i < len(result.Options); i++ {
		if result.Options[i].MonthlyContribution >= result.Options[i-1].MonthlyContribution {
			t.Errorf("expected contributions to fall as the horizon grows")
		}
	}
	if len(repo.Saved) != 0 {
		t.Errorf("plan evaluation should not fill the history")
	}
}

func TestPlan_NoCap(t *testing.T) {

	service, _ := newGoalPlanService()

	result, err := service.Plan(context.Background(), domain.GoalPlanInput{
		GoalAmount:        500000,
		AnnualRatePercent: 8,
		MinYears:          1,
		MaxYears:          3,
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RecommendedYears != 1 || len(result.Options) != 3 {
		t.Errorf("expected every horizon to qualify, got %+v", result)
	}
}

func TestPlan_NothingFits(t *testing.T) {

	service, _ := newGoalPlanService()

	_, err := service.Plan(context.Background(), domain.GoalPlanInput{
		GoalAmount:             10000000,
		AnnualRatePercent:      10,
		MinYears:               1,
		MaxYears:               5,
		MaxMonthlyContribution: 1000,
	})

	if !errors.Is(err, ErrNoAffordableHorizon) {
		t.Errorf("expected ErrNoAffordableHorizon, got %v", err)
	}
}

func TestPlan_InvalidInput(t *testing.T) {

	service, _ := newGoalPlanService()
	ctx := context.Background()

	cases := []domain.GoalPlanInput{
		{GoalAmount: 0, AnnualRatePercent: 10, MinYears: 1, MaxYears: 5},
		{GoalAmount: 1000, AnnualRatePercent: 0, MinYears: 1, MaxYears: 5},
		{GoalAmount: 1000, AnnualRatePercent: 10, MinYears: 6, MaxYears: 5},
		{GoalAmount: 1000, AnnualRatePercent: 10, MinYears: 0, MaxYears: 5},
		{GoalAmount: 1000, AnnualRatePercent: 10, MinYears: 1, MaxYears: 99},
		{GoalAmount: 1000, AnnualRatePercent: 10, MinYears: 1, MaxYears: 5, MaxMonthlyContribution: -1},
		{GoalAmount: 1000, AnnualRatePercent: 10, MinYears: 1, MaxYears: 5, Timing: "yearly"},
	}

	for _, input := range cases {
		if _, err := service.Plan(ctx, input); !errors.Is(err, finance.ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}
