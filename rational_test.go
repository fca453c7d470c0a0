// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratFromInt64s(t *testing.T, c *Context, num, den int64) *Rational {
	n, d := &BigInteger{}, &BigInteger{}
	_, err := c.FromInt64(n, num)
	require.NoError(t, err)
	_, err = c.FromInt64(d, den)
	require.NoError(t, err)
	r := &Rational{}
	_, err = c.FromBigIntegers(r, n, d)
	require.NoError(t, err)
	return r
}

func TestRationalNormalizeReducesToLowestTerms(t *testing.T) {
	c := NewDefaultContext()
	cases := []struct {
		num, den     int64
		wantNum, wantDen int64
	}{
		{2, 4, 1, 2},
		{-2, 4, -1, 2},
		{2, -4, -1, 2},
		{0, 5, 0, 1},
		{6, 3, 2, 1},
	}
	for _, tc := range cases {
		r := ratFromInt64s(t, c, tc.num, tc.den)
		num := &BigInteger{abs: r.num, neg: r.numNeg}
		den := &BigInteger{abs: r.denOrOne()}
		gotNum, _ := num.ToInt64()
		gotDen, _ := den.ToInt64()
		assert.Equal(t, tc.wantNum, gotNum, "num of %d/%d", tc.num, tc.den)
		assert.Equal(t, tc.wantDen, gotDen, "den of %d/%d", tc.num, tc.den)
	}
}

func TestRationalDenIsOneAfterIntegerResult(t *testing.T) {
	c := NewDefaultContext()
	r := ratFromInt64s(t, c, 10, 5)
	assert.True(t, r.DenIsOne())
}

func TestRationalArithmetic(t *testing.T) {
	c := NewDefaultContext()
	// 1/2 + 1/3 = 5/6
	x := ratFromInt64s(t, c, 1, 2)
	y := ratFromInt64s(t, c, 1, 3)
	z := &Rational{}
	_, err := c.RatAdd(z, x, y)
	require.NoError(t, err)
	num := &BigInteger{abs: z.num, neg: z.numNeg}
	den := &BigInteger{abs: z.denOrOne()}
	gotNum, _ := num.ToInt64()
	gotDen, _ := den.ToInt64()
	assert.Equal(t, int64(5), gotNum)
	assert.Equal(t, int64(6), gotDen)
}

func TestRationalCmp(t *testing.T) {
	c := NewDefaultContext()
	half := ratFromInt64s(t, c, 1, 2)
	third := ratFromInt64s(t, c, 1, 3)

	cmp, err := c.Cmp(half, third)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = c.Cmp(third, half)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = c.Cmp(half, half)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}
