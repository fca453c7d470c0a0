// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func magFromUint64(t rapid.TestingT, c *Context, v uint64) magnitude {
	m, err := c.fromUint64(v)
	if err != nil {
		panic(err)
	}
	return m
}

// wordsPerUint64 is how many Words of the build's chosen width make up
// one uint64 chunk (1 on a 64-bit build, 2 on a 32-bit build).
const wordsPerUint64 = 64 / _W

// wordsFromUint64 splits v into wordsPerUint64 Words, least-significant
// first, so chunks can be concatenated into a larger magnitude at a
// fixed, build-independent stride.
func wordsFromUint64(v uint64) []Word {
	ws := make([]Word, wordsPerUint64)
	for i := range ws {
		ws[i] = Word(v)
		v >>= _W
	}
	return ws
}

// magFromWords draws a multi-limb magnitude directly from randomly
// chosen uint64 chunks, rather than going through a single uint64/
// uint32 value, so tests exercising it can actually reach Karatsuba's
// recursive split (a value built from a single native-width value
// never has more than one or two limbs).
func magFromWords(rt *rapid.T, minChunks, maxChunks int) magnitude {
	chunks := rapid.SliceOfN(rapid.Uint64(), minChunks, maxChunks).Draw(rt, "chunks")
	m := make(magnitude, 0, len(chunks)*wordsPerUint64)
	for _, w := range chunks {
		m = append(m, wordsFromUint64(w)...)
	}
	return m.norm()
}

func TestMagnitudeAddCommutative(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		y := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "y"))

		xy, err := c.add(nil, x, y)
		require.NoError(rt, err)
		yx, err := c.add(nil, y, x)
		require.NoError(rt, err)
		require.Equal(rt, 0, xy.cmp(yx))
	})
}

func TestMagnitudeAddSubRoundTrip(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		y := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "y"))

		sum, err := c.add(nil, x, y)
		require.NoError(rt, err)
		back, err := c.sub(nil, sum, y)
		require.NoError(rt, err)
		require.Equal(rt, 0, back.cmp(x))
	})
}

func TestMagnitudeShiftRoundTrip(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		n := uint(rapid.IntRange(0, 200).Draw(rt, "n"))

		shifted, err := c.shl(nil, x, n)
		require.NoError(rt, err)
		back, err := c.shr(nil, shifted, n)
		require.NoError(rt, err)
		require.Equal(rt, 0, back.cmp(x))
	})
}

func TestMagnitudeCmpAntisymmetric(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		y := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "y"))
		require.Equal(rt, -x.cmp(y), y.cmp(x))
	})
}

func TestMagnitudeMulMatchesUint64(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Uint32().Draw(rt, "x")
		y := rapid.Uint32().Draw(rt, "y")

		mx := magFromUint64(rt, c, uint64(x))
		my := magFromUint64(rt, c, uint64(y))
		product, err := c.mul(nil, mx, my)
		require.NoError(rt, err)

		want := magFromUint64(rt, c, uint64(x)*uint64(y))
		require.Equal(rt, 0, product.cmp(want))
	})
}

func TestMagnitudeDivModLaw(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		y := magFromUint64(rt, c, rapid.Uint64Range(1, 1<<32).Draw(rt, "y"))

		q, r, err := c.divmod(x, y)
		require.NoError(rt, err)
		require.True(rt, r.cmp(y) < 0)

		qy, err := c.mul(nil, q, y)
		require.NoError(rt, err)
		back, err := c.add(nil, qy, r)
		require.NoError(rt, err)
		require.Equal(rt, 0, back.cmp(x))
	})
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	c := NewDefaultContext()
	c.SetKaratsubaThreshold(2)
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "x"))
		y := magFromUint64(rt, c, rapid.Uint64().Draw(rt, "y"))

		viaKaratsuba, err := c.mul(nil, x, y)
		require.NoError(rt, err)
		viaSchoolbook, err := c.mulBasic(nil, x, y)
		require.NoError(rt, err)
		require.Equal(rt, 0, viaKaratsuba.cmp(viaSchoolbook))
	})
}

// TestKaratsubaMultiLimbMatchesSchoolbook draws operands spanning
// several uint64 chunks (well above the lowered threshold), so
// karatsuba's recursive split is actually entered rather than falling
// straight through to mulBasic, unlike the single-limb draws above.
func TestKaratsubaMultiLimbMatchesSchoolbook(t *testing.T) {
	c := NewDefaultContext()
	c.SetKaratsubaThreshold(2)
	rapid.Check(t, func(rt *rapid.T) {
		x := magFromWords(rt, 2, 6)
		y := magFromWords(rt, 2, 6)

		// mul (not karatsuba directly) so operands get ordered
		// len(x) >= len(y) the way karatsuba requires.
		viaKaratsuba, err := c.mul(nil, x, y)
		require.NoError(rt, err)
		viaSchoolbook, err := c.mulBasic(nil, x, y)
		require.NoError(rt, err)
		require.Equal(rt, 0, viaKaratsuba.cmp(viaSchoolbook),
			"karatsuba(%v, %v) = %v, want %v", x, y, viaKaratsuba, viaSchoolbook)
	})
}
