package money

import "testing"

func TestFormatDropsZeroCents(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{5, "$5"},
		{1250, "$1,250"},
		{1250.5, "$1,250.5"},
		{999999.99, "$999,999.99"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Fatalf("Format(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatExactAlwaysTwoPlaces(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{12.5, "$12.50"},
		{1250.75, "$1,250.75"},
	}
	for _, c := range cases {
		if got := FormatExact(c.in); got != c.want {
			t.Fatalf("FormatExact(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSigned(t *testing.T) {
	if got := FormatSigned(100); got != "+$100.00" {
		t.Fatalf("unexpected credit %q", got)
	}
	if got := FormatSigned(-40.5); got != "-$40.50" {
		t.Fatalf("unexpected debit %q", got)
	}
}
