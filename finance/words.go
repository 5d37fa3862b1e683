package finance

import (
	"math"
	"strconv"
	"strings"
)

// Unit is one tier of a number-naming scale.
type Unit struct {
	Name string
	Size float64
}

// Scale lists tiers from the largest unit to the smallest.
type Scale []Unit

// IndianScale names amounts in crore, lakh and thousand.
var IndianScale = Scale{
	{Name: "Crore", Size: 10_000_000},
	{Name: "Lakh", Size: 100_000},
	{Name: "Thousand", Size: 1_000},
}

// NumberToLocaleWords spells amount using IndianScale,
// e.g. 12345678 -> "1 Crore, 23 Lakh, 45 Thousand".
func NumberToLocaleWords(amount float64) string {
	return IndianScale.Words(amount)
}

// Words emits a whole count for the largest tier amount reaches and for every
// smaller tier after it. The remainder under the smallest tier is dropped, and
// amounts below the smallest tier are printed as plain numbers.
func (s Scale) Words(amount float64) string {
	start := -1
	for i, u := range s {
		if amount >= u.Size {
			start = i
			break
		}
	}
	if start < 0 || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}

	parts := make([]string, 0, len(s)-start)
	for i := start; i < len(s); i++ {
		rest := amount
		if i > start {
			rest = math.Mod(amount, s[i-1].Size)
		}
		count := math.Floor(rest / s[i].Size)
		parts = append(parts, strconv.FormatFloat(count, 'f', 0, 64)+" "+s[i].Name)
	}
	return strings.Join(parts, ", ")
}
