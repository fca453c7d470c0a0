// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rational is an exact fraction num/den in lowest terms with a
// strictly positive denominator, the representation the design's
// Number façade promotes to whenever a division doesn't divide
// evenly. Normalize is the one invariant-restoring operation every
// constructor and arithmetic result routes through.

package bignum

// Rational is num/den in lowest terms, den > 0. The zero value is
// 0/1 (den defaults to magnitude{1} on first Normalize).
type Rational struct {
	numNeg bool
	num    magnitude
	den    magnitude // den is never zero-length after Normalize; nil den means 1
}

// denOrOne returns r's denominator, treating a nil den as 1.
func (r *Rational) denOrOne() magnitude {
	if len(r.den) == 0 {
		return magnitude{1}
	}
	return r.den
}

// DenIsOne reports whether r's denominator is exactly 1, i.e. r
// represents an integer value and the Number façade should demote it
// (§4.4).
func (r *Rational) DenIsOne() bool {
	d := r.denOrOne()
	return len(d) == 1 && d[0] == 1
}

// IsZero reports whether r == 0.
func (r *Rational) IsZero() bool { return len(r.num) == 0 }

// Sign returns -1, 0, or +1.
func (r *Rational) Sign() int {
	if len(r.num) == 0 {
		return 0
	}
	if r.numNeg {
		return -1
	}
	return 1
}

// normalize restores r's invariant: den > 0, gcd(|num|, den) == 1,
// and num == 0 implies numNeg == false. den must be non-zero on
// entry; a zero den is the caller's (parse/Number) job to reject as
// ErrDivideByZero before ever reaching here.
func (c *Context) normalize(r *Rational) (*Rational, error) {
	if len(r.num) == 0 {
		r.numNeg = false
		r.den = magnitude{1}
		return r, nil
	}
	den := r.denOrOne()

	g := &BigInteger{}
	nAbs := &BigInteger{abs: r.num}
	dAbs := &BigInteger{abs: den}
	if _, err := c.Gcd(g, nAbs, dAbs); err != nil {
		return r, err
	}
	if len(g.abs) == 1 && g.abs[0] == 1 {
		r.den = den
		return r, nil
	}

	numReduced, _, err := c.divmod(r.num, g.abs)
	if err != nil {
		return r, err
	}
	denReduced, _, err := c.divmod(den, g.abs)
	if err != nil {
		return r, err
	}
	r.num = numReduced
	r.den = denReduced
	return r, nil
}

// FromBigIntegers sets r = num/den (den != 0) reduced to lowest terms
// with den > 0, and returns it.
func (c *Context) FromBigIntegers(r *Rational, num, den *BigInteger) (*Rational, error) {
	nAbs, err := c.set(nil, num.abs)
	if err != nil {
		return r, err
	}
	dAbs, err := c.set(nil, den.abs)
	if err != nil {
		return r, err
	}
	t := &Rational{num: nAbs, den: dAbs, numNeg: num.neg != den.neg && len(nAbs) > 0}
	if _, err := c.normalize(t); err != nil {
		return r, err
	}
	*r = *t
	return r, nil
}

// RatAdd sets z = x+y and returns it, in lowest terms.
func (c *Context) RatAdd(z, x, y *Rational) (*Rational, error) {
	// x.num/x.den + y.num/y.den = (x.num*y.den + y.num*x.den) / (x.den*y.den)
	xn := &BigInteger{abs: x.num, neg: x.numNeg}
	yn := &BigInteger{abs: y.num, neg: y.numNeg}
	xd := &BigInteger{abs: x.denOrOne()}
	yd := &BigInteger{abs: y.denOrOne()}

	t1, t2, den := &BigInteger{}, &BigInteger{}, &BigInteger{}
	if _, err := c.Mul(t1, xn, yd); err != nil {
		return z, err
	}
	if _, err := c.Mul(t2, yn, xd); err != nil {
		return z, err
	}
	numSum := &BigInteger{}
	if _, err := c.Add(numSum, t1, t2); err != nil {
		return z, err
	}
	if _, err := c.Mul(den, xd, yd); err != nil {
		return z, err
	}
	return c.FromBigIntegers(z, numSum, den)
}

// RatSub sets z = x-y and returns it, in lowest terms.
func (c *Context) RatSub(z, x, y *Rational) (*Rational, error) {
	negY := &Rational{num: y.num, numNeg: !y.numNeg && len(y.num) > 0, den: y.denOrOne()}
	return c.RatAdd(z, x, negY)
}

// RatMul sets z = x*y and returns it, in lowest terms.
func (c *Context) RatMul(z, x, y *Rational) (*Rational, error) {
	xn := &BigInteger{abs: x.num, neg: x.numNeg}
	yn := &BigInteger{abs: y.num, neg: y.numNeg}
	xd := &BigInteger{abs: x.denOrOne()}
	yd := &BigInteger{abs: y.denOrOne()}
	num, den := &BigInteger{}, &BigInteger{}
	if _, err := c.Mul(num, xn, yn); err != nil {
		return z, err
	}
	if _, err := c.Mul(den, xd, yd); err != nil {
		return z, err
	}
	return c.FromBigIntegers(z, num, den)
}

// RatDiv sets z = x/y and returns it, in lowest terms. y must be
// non-zero.
func (c *Context) RatDiv(z, x, y *Rational) (*Rational, error) {
	xn := &BigInteger{abs: x.num, neg: x.numNeg}
	yn := &BigInteger{abs: y.num, neg: y.numNeg}
	xd := &BigInteger{abs: x.denOrOne()}
	yd := &BigInteger{abs: y.denOrOne()}
	num, den := &BigInteger{}, &BigInteger{}
	if _, err := c.Mul(num, xn, yd); err != nil {
		return z, err
	}
	if _, err := c.Mul(den, xd, yn); err != nil {
		return z, err
	}
	return c.FromBigIntegers(z, num, den)
}

// Cmp compares x and y and returns -1, 0, or +1. The cross-multiply it
// performs can allocate, so failure is reported through err rather
// than folded into the comparison result.
func (c *Context) Cmp(x, y *Rational) (int, error) {
	xn := &BigInteger{abs: x.num, neg: x.numNeg}
	yn := &BigInteger{abs: y.num, neg: y.numNeg}
	xd := &BigInteger{abs: x.denOrOne()}
	yd := &BigInteger{abs: y.denOrOne()}
	// x.num*y.den vs y.num*x.den, same sign of comparison since both
	// denominators are positive.
	lhs, rhs := &BigInteger{}, &BigInteger{}
	if _, err := c.Mul(lhs, xn, yd); err != nil {
		return 0, err
	}
	if _, err := c.Mul(rhs, yn, xd); err != nil {
		return 0, err
	}
	return lhs.Cmp(rhs), nil
}

// RatNeg sets z = -x and returns it.
func (c *Context) RatNeg(z, x *Rational) (*Rational, error) {
	num, err := c.set(nil, x.num)
	if err != nil {
		return z, err
	}
	z.num = num
	z.den = x.denOrOne()
	z.numNeg = !x.numNeg && len(num) > 0
	return z, nil
}
