package cli

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// For any amount, FormatMoney should:
// 1. Have exactly 2 decimal places
// 2. Group the integer part in threes with commas
// 3. Preserve the numeric value when parsed back
func TestProperty_MoneyFormatting(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	groupedPattern := regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)

	properties.Property("FormatMoney produces grouped two-decimal output", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatMoney(amount)

			if amount < 0 && !strings.HasPrefix(formatted, "-") {
				t.Logf("Expected - prefix for %f, got %s", amount, formatted)
				return false
			}

			numPart := strings.TrimPrefix(formatted, "-")
			parts := strings.Split(numPart, ".")
			if len(parts) != 2 || len(parts[1]) != 2 {
				t.Logf("Expected 2 decimal places for %f, got %s", amount, formatted)
				return false
			}

			if !groupedPattern.MatchString(parts[0]) {
				t.Logf("Bad grouping for %f: %s", amount, formatted)
				return false
			}

			return true
		},
		gen.Float64Range(-1e12, 1e12),
	))

	properties.Property("FormatMoney preserves value", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatMoney(amount)
			parsed, err := strconv.ParseFloat(strings.ReplaceAll(formatted, ",", ""), 64)
			if err != nil {
				t.Logf("Unparsable output for %f: %s", amount, formatted)
				return false
			}

			rounded := math.Round(amount*100) / 100
			if math.Abs(parsed-rounded) > 0.01 {
				t.Logf("Value not preserved: original=%f, formatted=%s, parsed=%f", amount, formatted, parsed)
				return false
			}
			return true
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("FormatQuantity never ends with a trailing zero or dot", prop.ForAll(
		func(q float64) bool {
			formatted := FormatQuantity(q)
			if strings.Contains(formatted, ".") && strings.HasSuffix(formatted, "0") {
				return false
			}
			return !strings.HasSuffix(formatted, ".")
		},
		gen.Float64Range(0, 1e6),
	))

	properties.TestingRun(t)
}

func TestFormatMoneyExamples(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{999.999, "1,000.00"},
		{1000, "1,000.00"},
		{100000, "100,000.00"},
		{1000000, "1,000,000.00"},
		{-1234.56, "-1,234.56"},
		{12345678.90, "12,345,678.90"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			if result := FormatMoney(tc.amount); result != tc.expected {
				t.Errorf("FormatMoney(%f) = %s, want %s", tc.amount, result, tc.expected)
			}
		})
	}
}

func TestFormatPercentExamples(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{0, "0.00%"},
		{1.5, "+1.50%"},
		{-2.5, "-2.50%"},
		{100, "+100.00%"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			if result := FormatPercent(tc.value); result != tc.expected {
				t.Errorf("FormatPercent(%f) = %s, want %s", tc.value, result, tc.expected)
			}
		})
	}
}

func TestFormatOptional(t *testing.T) {
	if got := FormatOptional(nil); got != Missing {
		t.Errorf("FormatOptional(nil) = %s, want %s", got, Missing)
	}
	v := 1234.5
	if got := FormatOptional(&v); got != "1,234.50" {
		t.Errorf("FormatOptional(&%f) = %s, want 1,234.50", v, got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString(short, 10) = %s", got)
	}
	if got := TruncateString("a longer string", 10); got != "a longe..." {
		t.Errorf("TruncateString = %s, want a longe...", got)
	}
}
