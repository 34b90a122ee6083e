package ids

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewRand_NumericInRange(t *testing.T) {
	g := NewRand()
	for i := 0; i < 1000; i++ {
		n := g.Numeric()
		if n < 0 || n >= RefSpace {
			t.Fatalf("Numeric() = %d, want [0,%d)", n, RefSpace)
		}
	}
}

func TestNewRand_RefShape(t *testing.T) {
	g := NewRand()
	for i := 0; i < 100; i++ {
		ref := g.Ref("FA")
		rest, found := strings.CutPrefix(ref, "FA-")
		if !found {
			t.Fatalf("Ref = %q, want FA- prefix", ref)
		}
		n, err := strconv.Atoi(rest)
		if err != nil {
			t.Fatalf("Ref suffix %q not numeric: %v", rest, err)
		}
		if n < 0 || n >= RefSpace {
			t.Fatalf("Ref number %d out of range", n)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		prefix string
		n      int
		want   string
	}{
		{"T", 42, "T-42"},
		{"P", 0, "P-0"},
		{"FA", 9999, "FA-9999"},
		{"TB", 7, "TB-7"},
	}
	for _, tc := range tests {
		if got := Format(tc.prefix, tc.n); got != tc.want {
			t.Errorf("Format(%q, %d) = %q, want %q", tc.prefix, tc.n, got, tc.want)
		}
	}
}
