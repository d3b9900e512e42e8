package loans

import "math"

// RNG is a 32-bit linear congruential generator using the Numerical
// Recipes constants. Each value owns its state; there is no package-level
// generator.
type RNG struct {
	state uint32
}

// NewRNG returns a generator positioned before its first draw.
func NewRNG(seed uint32) *RNG {
	return &RNG{state: seed}
}

// Next advances the state and returns state/(2^32-1), a value in [0, 1].
func (g *RNG) Next() float64 {
	g.state = 1664525*g.state + 1013904223
	return float64(g.state) / 0xffffffff
}

// Intn draws once and returns floor(r*n) in [0, n-1]. A draw of exactly
// 1.0 maps to n-1.
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(g.Next() * float64(n)))
	if i >= n {
		i = n - 1
	}
	return i
}

// PickOne draws a single element uniformly.
func PickOne[T any](g *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[g.Intn(len(items))]
}

// PickSome draws a size in [min, max] and then that many distinct
// elements, one draw per element.
func PickSome[T any](g *RNG, items []T, min, max int) []T {
	count := int(math.Floor(g.Next()*float64(max-min+1))) + min
	if count > max {
		count = max
	}
	if count < min {
		count = min
	}

	remaining := append([]T(nil), items...)
	out := make([]T, 0, count)
	for i := 0; i < count && len(remaining) > 0; i++ {
		idx := g.Intn(len(remaining))
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}
