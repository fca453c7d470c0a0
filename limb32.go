// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 32-bit limb variant of limb64.go, built with -tags bignum32. Same
// contracts, half the width; useful on platforms where a 64x64->128
// multiply is expensive or for exercising the engine's limb-count
// sensitive code paths (Karatsuba split points, division loop length)
// at a different granularity during testing.

//go:build bignum32

package bignum

import "math/bits"

type Word uint32

const (
	_W = 32
	_B = 1 << _W
	_M = ^Word(0)
)

func addWW(x, y, c Word) (z1, z0 Word) {
	lo, carry := bits.Add32(uint32(x), uint32(y), uint32(c))
	return Word(carry), Word(lo)
}

func subWW(x, y, c Word) (z1, z0 Word) {
	lo, borrow := bits.Sub32(uint32(x), uint32(y), uint32(c))
	return Word(borrow), Word(lo)
}

func mulWW(x, y Word) (z1, z0 Word) {
	hi, lo := bits.Mul32(uint32(x), uint32(y))
	return Word(hi), Word(lo)
}

func mulAddWWW(x, y, c Word) (z1, z0 Word) {
	z1, lo := mulWW(x, y)
	sum, carry := bits.Add32(uint32(lo), uint32(c), 0)
	z0 = Word(sum)
	z1 += Word(carry)
	return
}

func divWW(u1, u0, y Word) (q, r Word) {
	qq, rr := bits.Div32(uint32(u1), uint32(u0), uint32(y))
	return Word(qq), Word(rr)
}

func bitLenWord(x Word) int {
	return bits.Len32(uint32(x))
}

func leadingZerosWord(x Word) uint {
	return uint(bits.LeadingZeros32(uint32(x)))
}

func trailingZerosWord(x Word) uint {
	return uint(bits.TrailingZeros32(uint32(x)))
}
