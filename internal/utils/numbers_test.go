package utils

import (
	"strings"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := map[string]float64{
		"12,500":    12500,
		" -200 ":    -200,
		"1,234.5":   1234.5,
		"":          0,
		"abc":       0,
		"NaN":       0,
		"12,500 km": 12500,
		"6000km":    6000,
		"-200 Km":   -200,
		".5":        0.5,
		"1e400":     0,
		"km 200":    0,
	}
	for in, want := range cases {
		if got := ParseNumber(in); got != want {
			t.Fatalf("ParseNumber(%q) = %v want %v", in, got, want)
		}
	}
}

func TestParseWholeNumber(t *testing.T) {
	cases := map[string]int64{
		"12 days": 12,
		"7.9":     7,
		"-5":      -5,
		"1,200":   1,
		"":        0,
		"-":       0,
		"x3":      0,
	}
	for in, want := range cases {
		if got := ParseWholeNumber(in); got != want {
			t.Fatalf("ParseWholeNumber(%q) = %v want %v", in, got, want)
		}
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{1.5: 2, 1.4: 1, -4: -4, -2.5: -2, 0.5: 1}
	for in, want := range cases {
		if got := RoundHalfUp(in); got != want {
			t.Fatalf("RoundHalfUp(%v) = %v want %v", in, got, want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	cases := map[float64]string{
		0:         "0",
		200:       "200",
		1500:      "1,500",
		1234567:   "1,234,567",
		1234.5:    "1,234.5",
		-12500:    "-12,500",
		999.12345: "999.123",
		1e20:      "100,000,000,000,000,000,000",
		-3e18:     "-3,000,000,000,000,000,000",
	}
	for in, want := range cases {
		if got := FormatThousands(in); got != want {
			t.Fatalf("FormatThousands(%v) = %q want %q", in, got, want)
		}
	}
}

func TestFormatThousandsLargeSpreadsheetValue(t *testing.T) {
	got := FormatThousands(ParseNumber("123456789012345678901"))
	if strings.HasPrefix(got, "-") || !strings.HasPrefix(got, "123,456,789,012,345,6") {
		t.Fatalf("large value formatted as %q", got)
	}
}
