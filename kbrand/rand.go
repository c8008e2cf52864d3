package kbrand

import "math/rand/v2"

// Source picks a uniformly-distributed integer in [0, n). Implementations
// must handle n <= 0 by returning 0 (callers are expected not to call with
// n <= 0, but the engine guards against an empty graph before calling).
type Source interface {
	Intn(n int) int
}

// Default is a Source backed by math/rand/v2's package-level generator.
type Default struct{}

// Intn returns a uniformly-distributed integer in [0, n).
func (Default) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}
