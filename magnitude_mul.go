// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Schoolbook and Karatsuba multiplication on magnitudes. Karatsuba
// recursion bottoms out into schoolbook below the Context's
// Karatsuba threshold, exactly as bford-go's nat.karatsuba does, but
// generalized to thread the allocator through every intermediate
// magnitude it builds.

package bignum

// addMulVVW sets z[i] += x[i]*y for all i, propagating carry, and
// returns the final carry out of the top limb.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := mulAddWWW(x[i], y, c)
		var cc Word
		cc, z[i] = addWW(z[i], lo, 0)
		c = hi + cc
	}
	return
}

// mulBasic sets z = x*y by schoolbook multiplication and returns it,
// normalized. z must not alias x or y.
func (c *Context) mulBasic(z, x, y magnitude) (magnitude, error) {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return nil, nil
	}
	z, err := c.reserve(z, m+n)
	if err != nil {
		return z, err
	}
	z = z[:m+n]
	for i := range z {
		z[i] = 0
	}
	for i, yi := range y {
		if yi != 0 {
			z[m+i] = addMulVVW(z[i:i+m], x, yi)
		}
	}
	return z.norm(), nil
}

// karatsubaLen returns the largest k <= n, k a multiple of a
// practical split unit, such that splitting at k is worthwhile; here
// we just split in half, matching the teacher's simplest variant.
func karatsubaLen(n int) int {
	return (n + 1) / 2
}

// mul sets z = x*y and returns it, normalized, choosing Karatsuba over
// schoolbook once both operands are at least the Context's threshold
// in length (§4.1 "uses Karatsuba... once both operands are at least
// the configured threshold; otherwise schoolbook").
func (c *Context) mul(z, x, y magnitude) (magnitude, error) {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return nil, nil
	}
	if len(y) < c.threshold() {
		return c.mulBasic(z, x, y)
	}
	result, err := c.karatsuba(x, y)
	if err != nil {
		return z, err
	}
	return c.set(z, result)
}

// karatsuba computes x*y for len(x) >= len(y) >= threshold by
// recursive three-way split. Operands are never mutated; the result
// is a freshly allocated, normalized magnitude independent of x and
// y's storage, so the caller is free to copy it into an aliasing
// destination afterward.
func (c *Context) karatsuba(x, y magnitude) (magnitude, error) {
	if len(y) < c.threshold() || len(y) < 2 {
		return c.mulBasic(nil, x, y)
	}

	k := karatsubaLen(len(x))
	if k > len(y) {
		k = karatsubaLen(len(y))
	}

	x0, x1 := x[:k].norm(), x[k:].norm()
	var y0, y1 magnitude
	if k < len(y) {
		y0, y1 = y[:k].norm(), y[k:].norm()
	} else {
		y0 = y.norm()
	}

	z0, err := c.karatsubaMul(x0, y0)
	if err != nil {
		return nil, err
	}
	z2, err := c.karatsubaMul(x1, y1)
	if err != nil {
		return nil, err
	}

	dx, dxNeg, err := c.absDiff(x1, x0)
	if err != nil {
		return nil, err
	}
	dy, dyNeg, err := c.absDiff(y0, y1)
	if err != nil {
		return nil, err
	}
	t, err := c.karatsubaMul(dx, dy)
	if err != nil {
		return nil, err
	}
	tNeg := dxNeg != dyNeg

	mid, err := c.add(nil, z0, z2)
	if err != nil {
		return nil, err
	}
	// t = dx*dy = (x1-x0)*(y0-y1); mid = (z0+z2) + t. tNeg means the
	// true t is negative, so that term is subtracted, not added.
	if tNeg {
		mid, err = c.sub(nil, mid, t)
	} else {
		mid, err = c.add(nil, mid, t)
	}
	if err != nil {
		return nil, err
	}

	// result = z2*B^(2k) + mid*B^k + z0
	result, err := c.shl(nil, z2, uint(2*k)*_W)
	if err != nil {
		return nil, err
	}
	midShifted, err := c.shl(nil, mid, uint(k)*_W)
	if err != nil {
		return nil, err
	}
	result, err = c.add(result, result, midShifted)
	if err != nil {
		return nil, err
	}
	result, err = c.add(result, result, z0)
	if err != nil {
		return nil, err
	}
	return result.norm(), nil
}

// karatsubaMul is the recursive entry point used internally by
// karatsuba for its three sub-products; it dispatches back through
// mul's threshold check so small sub-products fall back to
// schoolbook.
func (c *Context) karatsubaMul(x, y magnitude) (magnitude, error) {
	return c.mul(nil, x, y)
}

// absDiff returns |a-b| and whether a < b (i.e. the true difference
// a-b is negative).
func (c *Context) absDiff(a, b magnitude) (magnitude, bool, error) {
	switch a.cmp(b) {
	case 0:
		return nil, false, nil
	case 1:
		d, err := c.sub(nil, a, b)
		return d, false, err
	default:
		d, err := c.sub(nil, b, a)
		return d, true, err
	}
}
