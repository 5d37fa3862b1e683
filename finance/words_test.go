package finance

import (
	"testing"

	"golang.org/x/text/language"
)

func TestNumberToLocaleWords(t *testing.T) {

	cases := []struct {
		amount float64
		want   string
	}{
		{12345678, "1 Crore, 23 Lakh, 45 Thousand"},
		{10_000_000, "1 Crore, 0 Lakh, 0 Thousand"},
		{9_999_999, "99 Lakh, 99 Thousand"},
		{100_000, "1 Lakh, 0 Thousand"},
		{99_999, "99 Thousand"},
		{1_000, "1 Thousand"},
		{999, "999"},
		{999.5, "999.5"},
		{0, "0"},
		{412431.83, "4 Lakh, 12 Thousand"},
		{250_000_000, "25 Crore, 0 Lakh, 0 Thousand"},
	}

	for _, tc := range cases {
		if got := NumberToLocaleWords(tc.amount); got != tc.want {
			t.Errorf("%v: expected %q, got %q", tc.amount, tc.want, got)
		}
	}
}

func TestScaleWords_CustomUnits(t *testing.T) {

	western := Scale{
		{Name: "Million", Size: 1_000_000},
		{Name: "Thousand", Size: 1_000},
	}

	if got := western.Words(12_345_678); got != "12 Million, 345 Thousand" {
		t.Errorf("unexpected words: %q", got)
	}
}

func TestFormatAmount_GroupsDigits(t *testing.T) {

	got := FormatAmount(language.AmericanEnglish, 1234567.891)
	if got != "1,234,567.89" {
		t.Errorf("expected 1,234,567.89, got %q", got)
	}
}

func TestParseLocale_FallsBack(t *testing.T) {

	if ParseLocale("") != DefaultLocale {
		t.Errorf("expected default locale for empty string")
	}
	if ParseLocale("not a tag!") != DefaultLocale {
		t.Errorf("expected default locale for malformed tag")
	}
	if ParseLocale("en-US") != language.AmericanEnglish {
		t.Errorf("expected en-US to parse")
	}
}
