package treap

import (
	"github.com/taylorza/go-lfsr"
)

// DefaultSeed is the priority source seed used by New.
const DefaultSeed uint16 = 43670

// PrioritySource yields node priorities in [0, 65536).
// A Set calls it once per node it creates.
type PrioritySource func() uint16

// lfsrSource returns a deterministic priority stream from a 16-bit linear
// feedback shift register. The sequence repeats after its full period, which
// is fine here: priorities don't need to be unique, just well spread.
func lfsrSource(seed uint16) PrioritySource {
	gen := lfsr.NewLfsr16(seed)
	return func() uint16 {
		v, _ := gen.Next()
		return v
	}
}
