// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Division on magnitudes. The design deliberately specifies binary
// restoring division (align the divisor by shifting it left to match
// the dividend's bit length, then walk the alignment back down one
// bit at a time, subtracting and recording a quotient bit whenever
// the shifted divisor fits) rather than Knuth's Algorithm D that
// bford-go's nat.divLarge uses: simplicity and an easy correctness
// argument are worth more here than the constant-factor speedup a
// multi-limb-estimate long division gives.

package bignum

// divmod computes x = q*y + r, 0 <= r < y, for y != 0, using binary
// restoring division. Both results are freshly allocated and
// normalized; neither aliases x or y.
func (c *Context) divmod(x, y magnitude) (q, r magnitude, err error) {
	if x.cmp(y) < 0 {
		r, err = c.set(nil, x)
		return nil, r, err
	}
	if len(y) == 1 {
		qq, rw, err := c.divW(nil, x, y[0])
		if err != nil {
			return nil, nil, err
		}
		if rw == 0 {
			return qq, nil, nil
		}
		rr, err := c.fromUint64(uint64(rw))
		return qq, rr, err
	}

	shiftN := uint(x.bitLen() - y.bitLen())
	shifted, err := c.shl(nil, y, shiftN)
	if err != nil {
		return nil, nil, err
	}
	rem, err := c.set(nil, x)
	if err != nil {
		return nil, nil, err
	}
	var quot magnitude

	for i := int(shiftN); i >= 0; i-- {
		if rem.cmp(shifted) >= 0 {
			rem, err = c.sub(rem, rem, shifted)
			if err != nil {
				return nil, nil, err
			}
			quot, err = c.setBit(quot, quot, uint(i), 1)
			if err != nil {
				return nil, nil, err
			}
		}
		if i > 0 {
			shifted, err = c.shr(shifted, shifted, 1)
			if err != nil {
				return nil, nil, err
			}
		}
	}
	return quot.norm(), rem.norm(), nil
}

// divW divides x by the single-limb y, returning the quotient and the
// remainder word. y must be non-zero.
func (c *Context) divW(z, x magnitude, y Word) (magnitude, Word, error) {
	if len(x) == 0 {
		return nil, 0, nil
	}
	z, err := c.reserve(z, len(x))
	if err != nil {
		return z, 0, err
	}
	z = z[:len(x)]
	var r Word
	for i := len(x) - 1; i >= 0; i-- {
		z[i], r = divWW(r, x[i], y)
	}
	return z.norm(), r, nil
}
