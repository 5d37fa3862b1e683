package repository

import (
	"path/filepath"
	"testing"
	"time"

	"personal-site/domain"
)

func sampleRecords() []domain.CalculationRecord {
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	return []domain.CalculationRecord{
		{ID: "a", Kind: domain.KindProjection, Contribution: 5000, AnnualRatePercent: 12, Years: 5, Result: 412431.83, CreatedAt: base},
		{ID: "b", Kind: domain.KindInflation, Principal: 100000, AnnualRatePercent: 6, Years: 5, Result: 133822.56, CreatedAt: base.Add(time.Minute)},
		{ID: "c", Kind: domain.KindGoal, Principal: 1000000, AnnualRatePercent: 12, Years: 10, Result: 4347.09, CreatedAt: base.Add(2 * time.Minute)},
	}
}

func checkRecent(t *testing.T, repo CalculationRepository) {
	t.Helper()

	for _, rec := range sampleRecords() {
		if err := repo.Save(rec); err != nil {
			t.Fatalf("save %s: %v", rec.ID, err)
		}
	}

	got, err := repo.Recent(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("expected newest first [c b], got [%s %s]", got[0].ID, got[1].ID)
	}
	if got[0].Kind != domain.KindGoal || got[0].Result != 4347.09 {
		t.Errorf("record not round-tripped: %+v", got[0])
	}

	all, err := repo.Recent(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 records with limit 0, got %d", len(all))
	}
}

func TestCalculationRepositoryMemory_Recent(t *testing.T) {
	checkRecent(t, NewCalculationRepositoryMemory())
}

func TestCalculationRepositorySQLite_Recent(t *testing.T) {

	repo, err := OpenCalculationRepositorySQLite(filepath.Join(t.TempDir(), "history", "calc.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()

	checkRecent(t, repo)

	got, err := repo.Recent(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[0].CreatedAt.Equal(sampleRecords()[2].CreatedAt) {
		t.Errorf("expected created_at to survive, got %v", got[0].CreatedAt)
	}
}
