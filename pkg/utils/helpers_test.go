package utils

import (
	"math"
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want interface{}
	}{
		{"5", 5},
		{" 42 ", 42},
		{"3.14", 3.14},
		{"-0.5", -0.5},
		{"UP001_HM1", "UP001_HM1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParseValue(tt.in); got != tt.want {
			t.Errorf("ParseValue(%q) = %v (%T), want %v", tt.in, got, got, tt.want)
		}
	}
}

func TestNumeric(t *testing.T) {
	tests := []struct {
		in   interface{}
		want float64
	}{
		{5, 5},
		{int64(7), 7},
		{2.5, 2.5},
		{float32(1.5), 1.5},
		{"12.25", 12.25},
		{" 3 ", 3},
		{"junk", 0},
		{nil, 0},
		{true, 0},
	}
	for _, tt := range tests {
		if got := Numeric(tt.in); got != tt.want {
			t.Errorf("Numeric(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumericPassesNaNThrough(t *testing.T) {
	if got := Numeric(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Numeric(NaN) = %v, want NaN", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"abc", "abc"},
		{5, "5"},
		{int64(-2), "-2"},
		{2.5, "2.5"},
		{100.0, "100"},
		{math.NaN(), "NaN"},
		{time.Date(2026, time.September, 5, 13, 0, 0, 0, time.Local), "2026-09-05"},
		{struct{}{}, ""},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2026, time.September, 5, 0, 0, 0, 0, time.Local)
	inputs := []interface{}{
		"2026-09-05",
		"2026-09-05 16:20:00",
		"05-09-2026",
		"05/09/2026 08:00:00",
		"2026/09/05",
		time.Date(2026, time.September, 5, 23, 59, 0, 0, time.Local),
	}
	for _, in := range inputs {
		got, ok := ParseDate(in)
		if !ok {
			t.Errorf("ParseDate(%v) not ok", in)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateRejectsJunk(t *testing.T) {
	for _, in := range []interface{}{"", "  ", "not-a-date", 42, nil} {
		if _, ok := ParseDate(in); ok {
			t.Errorf("ParseDate(%v) accepted junk", in)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(nil) || !IsBlank("") || !IsBlank("   ") {
		t.Error("blank values not detected")
	}
	if IsBlank("x") || IsBlank(0) {
		t.Error("non-blank values flagged as blank")
	}
}
