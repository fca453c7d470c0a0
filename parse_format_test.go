// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEndToEndScenarios(t *testing.T) {
	c := NewDefaultContext()

	t.Run("negative over negative reduces", func(t *testing.T) {
		n := &Number{}
		_, err := c.FromString(n, "-8/-12", 10)
		require.NoError(t, err)
		text, err := c.ToString(n, 10)
		require.NoError(t, err)
		assert.Equal(t, "2/3", text)
	})

	t.Run("base-0 hex to int64", func(t *testing.T) {
		n := &Number{}
		_, err := c.FromString(n, "0xff", 0)
		require.NoError(t, err)
		got, ok := n.ToInt64()
		require.True(t, ok)
		assert.Equal(t, int64(255), got)
	})

	t.Run("int64 max overflows by one", func(t *testing.T) {
		n := &Number{}
		_, err := c.FromString(n, "9223372036854775807", 0)
		require.NoError(t, err)
		got, ok := n.ToInt64()
		require.True(t, ok)
		assert.Equal(t, int64(9223372036854775807), got)

		one := &Number{}
		_, err = c.NumberFromInt64(one, 1)
		require.NoError(t, err)
		sum := &Number{}
		_, err = c.NumberAdd(sum, n, one)
		require.NoError(t, err)
		_, ok = sum.ToInt64()
		assert.False(t, ok, "int64 max + 1 should no longer fit in int64")
	})

	t.Run("pow then modexp", func(t *testing.T) {
		n := &Number{}
		_, err := c.FromString(n, "-2", 10)
		require.NoError(t, err)
		powResult := &Number{}
		_, err = c.NumberPow(powResult, n, 5)
		require.NoError(t, err)
		text, err := c.ToString(powResult, 10)
		require.NoError(t, err)
		assert.Equal(t, "-32", text)

		base, mod := &Number{}, &Number{}
		_, err = c.NumberFromInt64(base, 4)
		require.NoError(t, err)
		_, err = c.NumberFromInt64(mod, 497)
		require.NoError(t, err)
		modResult := &Number{}
		_, err = c.NumberModExp(modResult, base, 13, mod)
		require.NoError(t, err)
		text, err = c.ToString(modResult, 10)
		require.NoError(t, err)
		assert.Equal(t, "445", text)
	})
}

func TestFromStringBasePrefixes(t *testing.T) {
	c := NewDefaultContext()
	cases := map[string]int64{
		"0x1A":  26,
		"0X1a":  26,
		"0o17":  15,
		"017":   15,
		"0b101": 5,
		"-0x10": -16,
		"+42":   42,
		"0":     0,
	}
	for s, want := range cases {
		n := &Number{}
		_, err := c.FromString(n, s, 0)
		require.NoError(t, err, "parsing %q", s)
		got, ok := n.integer.ToInt64()
		require.True(t, ok)
		assert.Equal(t, want, got, "parsing %q", s)
	}
}

func TestFromStringExplicitBase(t *testing.T) {
	c := NewDefaultContext()
	n := &Number{}
	_, err := c.FromString(n, "ff", 16)
	require.NoError(t, err)
	got, ok := n.integer.ToInt64()
	require.True(t, ok)
	assert.Equal(t, int64(255), got)

	text, err := c.ToString(n, 16)
	require.NoError(t, err)
	assert.Equal(t, "ff", text)

	_, err = c.FromString(n, "1", 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.FromString(n, "1", 37)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFromStringRational(t *testing.T) {
	c := NewDefaultContext()
	n := &Number{}
	_, err := c.FromString(n, " 3/6 ", 0)
	require.NoError(t, err)
	assert.False(t, n.IsInteger())
	text, err := c.ToString(n, 0)
	require.NoError(t, err)
	assert.Equal(t, "1/2", text)
}

func TestFromStringRejectsGarbage(t *testing.T) {
	c := NewDefaultContext()
	for _, s := range []string{"", "  ", "12x", "0x", "--1", "1/0", "1/"} {
		n := &Number{}
		_, err := c.FromString(n, s, 0)
		assert.Error(t, err, "expected error parsing %q", s)
	}
}

func TestParseFormatRoundTripInt64(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int64().Draw(rt, "v")
		n := &Number{}
		if _, err := c.NumberFromInt64(n, v); err != nil {
			rt.Fatal(err)
		}
		text, err := c.ToString(n, 0)
		if err != nil {
			rt.Fatal(err)
		}
		back := &Number{}
		if _, err := c.FromString(back, text, 0); err != nil {
			rt.Fatalf("reparsing %q: %v", text, err)
		}
		cmp, err := c.NumberCmp(n, back)
		if err != nil {
			rt.Fatal(err)
		}
		if cmp != 0 {
			rt.Fatalf("round trip mismatch: %d -> %q -> different value", v, text)
		}
	})
}

func TestParseFormatRoundTripRational(t *testing.T) {
	c := NewDefaultContext()
	rapid.Check(t, func(rt *rapid.T) {
		numV := rapid.Int64().Draw(rt, "num")
		denV := rapid.Int64Range(1, 1<<31).Draw(rt, "den")
		n := &Number{}
		num, den := &BigInteger{}, &BigInteger{}
		if _, err := c.FromInt64(num, numV); err != nil {
			rt.Fatal(err)
		}
		if _, err := c.FromInt64(den, denV); err != nil {
			rt.Fatal(err)
		}
		if _, err := c.FromBigIntegers(&n.ratVal, num, den); err != nil {
			rt.Fatal(err)
		}
		n.isRat = true
		n.demote()

		text, err := c.ToString(n, 0)
		if err != nil {
			rt.Fatal(err)
		}
		back := &Number{}
		if _, err := c.FromString(back, text, 0); err != nil {
			rt.Fatalf("reparsing %q: %v", text, err)
		}
		cmp, err := c.NumberCmp(n, back)
		if err != nil {
			rt.Fatal(err)
		}
		if cmp != 0 {
			rt.Fatalf("round trip mismatch for %d/%d via %q", numV, denV, text)
		}
	})
}
