package loans

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Next_KnownSequence(t *testing.T) {
	rng := NewRNG(0)

	assert.Equal(t, 1013904223.0/4294967295.0, rng.Next())
	assert.Equal(t, uint32(1013904223), rng.state)

	assert.Equal(t, 1196435762.0/4294967295.0, rng.Next())
	assert.Equal(t, uint32(1196435762), rng.state)
}

func TestRNG_Next_WrapsAt32Bits(t *testing.T) {
	rng := NewRNG(0xffffffff)
	v := rng.Next()

	// (1664525*(2^32-1) + 1013904223) mod 2^32
	assert.Equal(t, uint32(1013904223-1664525), rng.state)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestRNG_SameSeedSameStream(t *testing.T) {
	a, b := NewRNG(20241021), NewRNG(20241021)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestRNG_Intn(t *testing.T) {
	rng := NewRNG(7)
	for i := 0; i < 1000; i++ {
		n := rng.Intn(10)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 10)
	}
	assert.Equal(t, 0, rng.Intn(0))
}

func TestRNG_Intn_ClampsExactOne(t *testing.T) {
	// Find the seed whose next state is 0xffffffff so the draw is exactly 1.0.
	// state' = 1664525*s + 1013904223 = 2^32-1 (mod 2^32)
	inv := modInverse(1664525)
	seed := (uint32(0xffffffff) - 1013904223) * inv

	rng := NewRNG(seed)
	assert.Equal(t, 9, rng.Intn(10))
	assert.Equal(t, uint32(0xffffffff), rng.state)
}

func TestPickSome_DistinctWithinBounds(t *testing.T) {
	rng := NewRNG(42)
	items := []string{"a", "b", "c", "d", "e"}
	for i := 0; i < 500; i++ {
		got := PickSome(rng, items, 1, 3)
		assert.GreaterOrEqual(t, len(got), 1)
		assert.LessOrEqual(t, len(got), 3)

		seen := map[string]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate %s", v)
			seen[v] = true
		}
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestPickOne_Empty(t *testing.T) {
	assert.Equal(t, "", PickOne(NewRNG(1), []string{}))
}

// modInverse returns the multiplicative inverse of an odd a modulo 2^32.
func modInverse(a uint32) uint32 {
	x := a
	for i := 0; i < 5; i++ {
		x *= 2 - a*x
	}
	return x
}
