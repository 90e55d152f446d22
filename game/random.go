package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Source produces uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed means time-seeded.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

// between draws uniformly from the closed range [min, max].
func between(src Source, min, max int) int {
	if min > max {
		panic(fmt.Sprintf("game: invalid random range [%d,%d]", min, max))
	}
	return min + src.IntN(max-min+1)
}
