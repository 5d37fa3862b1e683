package cli

import (
	"strings"
	"testing"
	"time"
)

func TestRenderTable(t *testing.T) {

	out := RenderTable(Table{
		Title:   "Projection",
		Headers: []string{"Field", "Value"},
		Rows: [][]string{
			{"Future value", "4,12,431.83"},
			{"---"},
			{"Years", "5"},
		},
	})

	for _, want := range []string{"Projection", "Future value", "4,12,431.83", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 8 {
		t.Errorf("expected 8 lines, got %d:\n%s", got, out)
	}
}

func TestRenderTable_Empty(t *testing.T) {

	if out := RenderTable(Table{}); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestFormatHelpers(t *testing.T) {

	if got := FormatPercent(12); got != "12.00%" {
		t.Errorf("FormatPercent: got %q", got)
	}
	if got := FormatYears(1); got != "1 year" {
		t.Errorf("FormatYears(1): got %q", got)
	}
	if got := FormatYears(2.5); got != "2.5 years" {
		t.Errorf("FormatYears(2.5): got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "-" {
		t.Errorf("FormatDate(zero): got %q", got)
	}
	if got := Truncate("watch later list", 6); got != "watch…" {
		t.Errorf("Truncate: got %q", got)
	}
	if got := Checkbox(true); got != "[x]" {
		t.Errorf("Checkbox: got %q", got)
	}
}

func TestRenderTitle(t *testing.T) {

	out := RenderTitle("1 Crore, 23 Lakh")

	if !strings.Contains(out, "1 Crore, 23 Lakh") {
		t.Errorf("expected title text in output:\n%s", out)
	}
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Errorf("expected a rounded border:\n%s", out)
	}
}
