// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file provides the elementary single-limb operations used by
// magnitude (multi-precision unsigned integer) arithmetic. This build
// uses 64-bit limbs; see limb32.go for the 32-bit variant, selected
// with the "bignum32" build tag.

//go:build !bignum32

package bignum

import "math/bits"

// Word is a single digit of a multi-precision unsigned integer, base
// _B = 2^_W. The zero value is a valid, zero digit.
type Word uint64

const (
	_W = 64      // bits per Word
	_B = 1 << _W // digit base (conceptual; doesn't fit in a Word)
	_M = ^Word(0) // digit mask, also the largest representable Word
)

// addWW returns the sum x+y+c as a double-width (z1, z0) pair, with
// c == 0 or 1.
func addWW(x, y, c Word) (z1, z0 Word) {
	lo, carry := bits.Add64(uint64(x), uint64(y), uint64(c))
	return Word(carry), Word(lo)
}

// subWW returns the difference x-y-c as a double-width (z1, z0) pair,
// with c == 0 or 1; z1 is the borrow.
func subWW(x, y, c Word) (z1, z0 Word) {
	lo, borrow := bits.Sub64(uint64(x), uint64(y), uint64(c))
	return Word(borrow), Word(lo)
}

// mulWW returns the product x*y as a double-width (z1, z0) pair.
func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Word(hi), Word(lo)
}

// mulAddWWW returns x*y+c as a double-width (z1, z0) pair.
func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	z1, lo := mulWW(x, y)
	sum, carry := bits.Add64(uint64(lo), uint64(c), 0)
	z0 = Word(sum)
	z1 += Word(carry)
	return
}

// divWW returns (q, r) such that q*y+r == u1<<_W+u0 and 0 <= r < y,
// given u1 < y (so the quotient fits in a Word). If u1 >= y the
// result is undefined (the caller must not invoke divWW in that
// case); mirrors the teacher's "undefined" overflow contract.
func divWW(u1, u0, y Word) (q, r Word) {
	qq, rr := bits.Div64(uint64(u1), uint64(u0), uint64(y))
	return Word(qq), Word(rr)
}

// bitLenWord returns the number of bits required to represent x; it
// is 0 for x == 0.
func bitLenWord(x Word) int {
	return bits.Len64(uint64(x))
}

// leadingZerosWord returns the number of leading zero bits in x,
// counting from the most significant bit. It is _W for x == 0.
func leadingZerosWord(x Word) uint {
	return uint(bits.LeadingZeros64(uint64(x)))
}

// trailingZerosWord returns the number of trailing zero bits in x. It
// is _W for x == 0.
func trailingZerosWord(x Word) uint {
	return uint(bits.TrailingZeros64(uint64(x)))
}
