package core

import "testing"

func TestFormatWithSIPrefix(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		precision int
		want      string
	}{
		{name: "zero", value: 0, precision: 1, want: "0"},
		{name: "below a thousand", value: 999, precision: 1, want: "999"},
		{name: "thousands", value: 1500, precision: 1, want: "1.5K"},
		{name: "trailing zeros trimmed", value: 2000, precision: 2, want: "2K"},
		{name: "millions", value: 3_400_000, precision: 1, want: "3.4M"},
		{name: "billions", value: 1e9, precision: 1, want: "1G"},
		{name: "trillions", value: 2.5e12, precision: 1, want: "2.5T"},
		{name: "FLOP scale", value: 1e24, precision: 1, want: "1Y"},
		{name: "beyond the table stays in yotta", value: 2.5e25, precision: 1, want: "25Y"},
		{name: "negative", value: -1500, precision: 1, want: "-1.5K"},
		{name: "negative below threshold", value: -42, precision: 1, want: "-42"},
		{name: "fractional", value: 0.5, precision: 1, want: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWithSIPrefix(tt.value, tt.precision); got != tt.want {
				t.Fatalf("FormatWithSIPrefix(%v, %d) = %q, want %q", tt.value, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatTickValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{42, "42"},
		{42.5, "42.5"},
		{999.99, "999.99"},
		{1000, "1K"},
		{1e20, "100E"},
		{-2500, "-2.5K"},
	}

	for _, tt := range tests {
		if got := FormatTickValue(tt.value); got != tt.want {
			t.Errorf("FormatTickValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatTooltipValue(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{42.25, "42.25"},
		{1250, "1.25K"},
		{1256, "1.26K"},
		{100, "100"},
	}

	for _, tt := range tests {
		if got := FormatTooltipValue(tt.value); got != tt.want {
			t.Errorf("FormatTooltipValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
