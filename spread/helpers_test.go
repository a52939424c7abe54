package spread_test

import "math/rand"

// randSource returns a fresh deterministic stream for graph construction.
func randSource(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }
