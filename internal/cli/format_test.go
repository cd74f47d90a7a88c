package cli

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{45000, "45,000"},
		{1234567, "1,234,567"},
		{-1234567, "-1,234,567"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{45000, "$45,000"},
		{1250.5, "$1,250.50"},
		{0, "$0"},
		{999.99, "$999.99"},
		{1250.999, "$1,251"},
		{1250.994, "$1,250.99"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatBudget_MaskedWhileHidden(t *testing.T) {
	if got := FormatBudget(45000, false); got != MaskedBudget {
		t.Errorf("hidden budget = %q, want mask %q", got, MaskedBudget)
	}
	if got := FormatBudget(45000, true); got != "$45,000" {
		t.Errorf("revealed budget = %q, want $45,000", got)
	}
}

func TestFormatPercent_RoundsToWhole(t *testing.T) {
	if got := FormatPercent(40.0); got != "40%" {
		t.Errorf("FormatPercent(40) = %q, want 40%%", got)
	}
	if got := FormatPercent(100.0 / 3.0); got != "33%" {
		t.Errorf("FormatPercent(33.3) = %q, want 33%%", got)
	}
}
