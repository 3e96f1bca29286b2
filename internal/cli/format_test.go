package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.3, "$12.30"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-45.6, "-$45.60"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatCycle(t *testing.T) {
	if got := FormatCycle("fortnightly"); got != "/fn" {
		t.Errorf("FormatCycle(fortnightly) = %q, want /fn", got)
	}
	if got := FormatCycle("odd"); got != "/odd" {
		t.Errorf("FormatCycle(odd) = %q, want /odd", got)
	}
}

func TestFormatNumber(t *testing.T) {
	if got := FormatNumber(1234567); got != "1,234,567" {
		t.Errorf("FormatNumber(1234567) = %q", got)
	}
	if got := FormatNumber(-12); got != "-12" {
		t.Errorf("FormatNumber(-12) = %q", got)
	}
}
