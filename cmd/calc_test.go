package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"personal-site/domain"
)

// isolate points config and data at temp dirs so runs never touch $HOME.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("PERSONAL_SITE_LOG_LEVEL", "error")
}

func execute(t *testing.T, args ...string) []byte {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--json"))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.Bytes()
}

func TestCalcSIP_RecordsHistory(t *testing.T) {

	isolate(t)

	var result domain.ProjectionResult
	raw := execute(t, "calc", "sip", "--monthly", "5000", "--rate", "12", "--years", "5")
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	if result.FutureValue != 412431.83 {
		t.Errorf("expected 412431.83, got %.2f", result.FutureValue)
	}

	var records []domain.CalculationRecord
	raw = execute(t, "history", "--limit", "5")
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	if len(records) != 1 || records[0].Result != 412431.83 {
		t.Errorf("expected the SIP run in history, got %+v", records)
	}
}

func TestCalcGoal_Ordinary(t *testing.T) {

	isolate(t)

	var result domain.GoalResult
	raw := execute(t, "calc", "goal", "--goal", "1000000", "--rate", "12", "--years", "10", "--timing", "ordinary")
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	if !result.Available || result.MonthlyContribution != 4347.09 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestCalcWords(t *testing.T) {

	isolate(t)

	var result domain.WordsResult
	raw := execute(t, "calc", "words", "12345678")
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decoding %s: %v", raw, err)
	}
	if result.Words != "1 Crore, 23 Lakh, 45 Thousand" {
		t.Errorf("unexpected words: %q", result.Words)
	}
}

func TestCalcSIP_InvalidInput(t *testing.T) {

	isolate(t)

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"calc", "sip", "--monthly", "0", "--rate", "12", "--years", "5"})
	if err := rootCmd.Execute(); err == nil {
		t.Errorf("expected an error when nothing is invested")
	}
}
