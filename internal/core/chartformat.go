package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// siPrefix pairs a magnitude threshold with its SI suffix.
type siPrefix struct {
	threshold float64
	suffix    string
}

var siPrefixes = []siPrefix{
	{1e24, "Y"},
	{1e21, "Z"},
	{1e18, "E"},
	{1e15, "P"},
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "K"},
}

// FormatWithSIPrefix renders a value with an SI magnitude suffix, trimming
// trailing zeros. Useful for FLOP-scale parameter values.
func FormatWithSIPrefix(value float64, precision int) string {
	if value == 0 {
		return "0"
	}

	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	for _, p := range siPrefixes {
		if abs >= p.threshold {
			scaled := strconv.FormatFloat(abs/p.threshold, 'f', precision, 64)
			scaled = strings.TrimRight(scaled, "0")
			scaled = strings.TrimRight(scaled, ".")
			return sign + scaled + p.suffix
		}
	}

	return sign + trimFloat(abs)
}

// FormatTickValue renders an axis tick: SI prefixes from a thousand up,
// plain formatting below.
func FormatTickValue(value float64) string {
	if math.Abs(value) >= 1000 {
		return FormatWithSIPrefix(value, 1)
	}
	return trimFloat(value)
}

// FormatTooltipValue renders a hover/tooltip value with more precision than
// an axis tick.
func FormatTooltipValue(value float64) string {
	if math.Abs(value) >= 1000 {
		return FormatWithSIPrefix(value, 2)
	}
	return trimFloat(value)
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
