package utils

import "testing"

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  int
		want int
	}{
		{"42", 0, 42},
		{"-7", 0, -7},
		{"", 10, 10},
		{"x", 5, 5},
		{"4.2", 1, 1},
	}
	for _, tc := range cases {
		if got := AtoiDefault(tc.in, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d, want %d", tc.in, tc.def, got, tc.want)
		}
	}
}

func TestAtofDefault(t *testing.T) {
	cases := []struct {
		in   string
		def  float64
		want float64
	}{
		{"4.25", 0, 4.25},
		{"350", 0, 350},
		{"", 1.5, 1.5},
		{"abc", 2, 2},
	}
	for _, tc := range cases {
		if got := AtofDefault(tc.in, tc.def); got != tc.want {
			t.Fatalf("AtofDefault(%q, %v) = %v, want %v", tc.in, tc.def, got, tc.want)
		}
	}
}
