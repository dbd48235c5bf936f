package utils

import "testing"

func TestFormatINRGrouping(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0.00"},
		{950, "Rs 950.00"},
		{1500.5, "Rs 1,500.50"},
		{123456, "Rs 1,23,456.00"},
		{12345678.9, "Rs 1,23,45,678.90"},
		{-2500, "-Rs 2,500.00"},
	}
	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Fatalf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
