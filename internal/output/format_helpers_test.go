package output

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatRate(t *testing.T) {
	if got, want := FormatRate(decimal.NewFromFloat(0.07)), "7.00%"; got != want {
		t.Errorf("FormatRate(0.07) = %q, want %q", got, want)
	}
}

func TestIntAndBoolToString(t *testing.T) {
	if got, want := intToString(42), "42"; got != want {
		t.Errorf("intToString(42) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}
