// Package ids isolates confirmation-identifier generation behind an
// injectable interface. The simulated gateways hand out placeholder
// references (FA-1234, T-87, a bare listing number) in place of keys a real
// identifier-issuing authority would mint; keeping the generator injectable
// lets tests assert on deterministic values.
package ids

import (
	"math/rand/v2"
	"strconv"
)

// RefSpace bounds generated numbers: every identifier is in [0, RefSpace).
const RefSpace = 10000

// Generator produces confirmation identifiers for simulated operations.
//
// Implementations must be safe for concurrent use.
type Generator interface {
	// Numeric returns a number in [0, RefSpace).
	Numeric() int
	// Ref returns prefix + "-" + a number in [0, RefSpace), e.g. "FA-512".
	Ref(prefix string) string
}

// randGenerator is the default Generator backed by math/rand/v2, whose
// top-level functions are safe for concurrent use.
type randGenerator struct{}

// NewRand returns the default random Generator.
func NewRand() Generator { return randGenerator{} }

func (randGenerator) Numeric() int { return rand.IntN(RefSpace) }

func (g randGenerator) Ref(prefix string) string {
	return Format(prefix, g.Numeric())
}

// Format renders a prefixed reference from its parts, e.g. Format("T", 42)
// returns "T-42".
func Format(prefix string, n int) string {
	return prefix + "-" + strconv.Itoa(n)
}
