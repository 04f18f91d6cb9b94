package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads spreadsheet style numbers such as "12,500", " -200 " or
// "6000km": separators are dropped and the leading number is used.
// Anything without a leading number becomes 0.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	lead := leadingFloat.FindString(s)
	if lead == "" {
		return 0
	}
	v, err := strconv.ParseFloat(lead, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseWholeNumber parses the leading integer of s ("12 days" -> 12, "7.9" -> 7).
// Separators are not stripped; "1,200" yields 1.
func ParseWholeNumber(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	for i, r := range s {
		if (r == '-' || r == '+') && i == 0 {
			end = i + 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// RoundHalfUp rounds .5 towards positive infinity.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// FormatThousands renders v with comma group separators and at most three decimals.
func FormatThousands(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v < 1e15 {
		v = math.Round(v*1000) / 1000
	}
	whole := math.Floor(v)
	frac := ""
	if f := v - whole; f > 0 {
		frac = strings.TrimRight(strconv.FormatFloat(f, 'f', 3, 64)[1:], "0")
		if frac == "." {
			frac = ""
		}
	}
	return sign + groupThousands(strconv.FormatFloat(whole, 'f', 0, 64)) + frac
}

func groupThousands(digits string) string {
	var out strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
