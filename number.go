// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Number is the tagged-union façade over BigInteger and Rational:
// every arithmetic result that would still be an integer is kept (or
// demoted back) as a BigInteger, and every result that isn't is
// promoted to a Rational, so callers never carry a needless "/1"
// denominator and never lose the exactness a division produced.

package bignum

// Number holds either a BigInteger or a Rational value. The zero
// value is the integer 0.
type Number struct {
	isRat   bool
	integer BigInteger
	ratVal  Rational
}

// IsInteger reports whether n currently holds an integer value.
func (n *Number) IsInteger() bool { return !n.isRat }

// demote converts n from Rational to BigInteger representation if its
// denominator is 1, mirroring the design's "always hold the simplest
// exact representation" rule (§4.4).
func (n *Number) demote() {
	if n.isRat && n.ratVal.DenIsOne() {
		n.integer.abs = n.ratVal.num
		n.integer.neg = n.ratVal.numNeg
		n.isRat = false
	}
}

func (c *Context) asRational(n *Number) *Rational {
	if n.isRat {
		return &n.ratVal
	}
	return &Rational{num: n.integer.abs, numNeg: n.integer.neg, den: magnitude{1}}
}

// NumberFromInt64 sets n to the integer v.
func (c *Context) NumberFromInt64(n *Number, v int64) (*Number, error) {
	if _, err := c.FromInt64(&n.integer, v); err != nil {
		return n, err
	}
	n.isRat = false
	return n, nil
}

// NumberFromUint64 sets n to the integer v.
func (c *Context) NumberFromUint64(n *Number, v uint64) (*Number, error) {
	if _, err := c.FromUint64(&n.integer, v); err != nil {
		return n, err
	}
	n.isRat = false
	return n, nil
}

// NumberCopy sets z to an independent copy of x.
func (c *Context) NumberCopy(z, x *Number) (*Number, error) {
	if x.isRat {
		num, err := c.set(nil, x.ratVal.num)
		if err != nil {
			return z, err
		}
		den, err := c.set(nil, x.ratVal.den)
		if err != nil {
			return z, err
		}
		z.isRat = true
		z.ratVal = Rational{num: num, numNeg: x.ratVal.numNeg, den: den}
		return z, nil
	}
	if _, err := c.Copy(&z.integer, &x.integer); err != nil {
		return z, err
	}
	z.isRat = false
	return z, nil
}

// ToUint64 returns (v, true) if n is an integer that fits in a
// uint64, else (0, false).
func (n *Number) ToUint64() (uint64, bool) {
	if n.isRat {
		return 0, false
	}
	return n.integer.ToUint64()
}

// ToInt64 returns (v, true) if n is an integer that fits in an
// int64, else (0, false).
func (n *Number) ToInt64() (int64, bool) {
	if n.isRat {
		return 0, false
	}
	return n.integer.ToInt64()
}

// Sign returns -1, 0, or +1.
func (n *Number) Sign() int {
	if n.isRat {
		return n.ratVal.Sign()
	}
	return n.integer.Sign()
}

// NumberCmp compares x and y. When both are integers it compares signs then
// magnitudes directly and cannot fail; otherwise it cross-multiplies
// as integers, which can allocate, so that path's failure is reported
// through err rather than folded into the result.
func (c *Context) NumberCmp(x, y *Number) (int, error) {
	if !x.isRat && !y.isRat {
		return x.integer.Cmp(&y.integer), nil
	}
	xr, yr := c.asRational(x), c.asRational(y)
	return c.Cmp(xr, yr)
}

// NumberAdd sets z = x+y and returns it, promoting to Rational only if
// needed.
func (c *Context) NumberAdd(z, x, y *Number) (*Number, error) {
	if !x.isRat && !y.isRat {
		if _, err := c.Add(&z.integer, &x.integer, &y.integer); err != nil {
			return z, err
		}
		z.isRat = false
		return z, nil
	}
	xr, yr := c.asRational(x), c.asRational(y)
	if _, err := c.RatAdd(&z.ratVal, xr, yr); err != nil {
		return z, err
	}
	z.isRat = true
	z.demote()
	return z, nil
}

// NumberSub sets z = x-y and returns it.
func (c *Context) NumberSub(z, x, y *Number) (*Number, error) {
	if !x.isRat && !y.isRat {
		if _, err := c.Sub(&z.integer, &x.integer, &y.integer); err != nil {
			return z, err
		}
		z.isRat = false
		return z, nil
	}
	xr, yr := c.asRational(x), c.asRational(y)
	if _, err := c.RatSub(&z.ratVal, xr, yr); err != nil {
		return z, err
	}
	z.isRat = true
	z.demote()
	return z, nil
}

// NumberMul sets z = x*y and returns it.
func (c *Context) NumberMul(z, x, y *Number) (*Number, error) {
	if !x.isRat && !y.isRat {
		if _, err := c.Mul(&z.integer, &x.integer, &y.integer); err != nil {
			return z, err
		}
		z.isRat = false
		return z, nil
	}
	xr, yr := c.asRational(x), c.asRational(y)
	if _, err := c.RatMul(&z.ratVal, xr, yr); err != nil {
		return z, err
	}
	z.isRat = true
	z.demote()
	return z, nil
}

// NumberDiv sets z = x/y (exact; promotes to Rational whenever the integer
// division isn't exact) and returns it. y must be non-zero.
func (c *Context) NumberDiv(z, x, y *Number) (*Number, error) {
	if y.Sign() == 0 {
		return z, ErrDivideByZero
	}
	xr, yr := c.asRational(x), c.asRational(y)
	if _, err := c.RatDiv(&z.ratVal, xr, yr); err != nil {
		return z, err
	}
	z.isRat = true
	z.demote()
	return z, nil
}

// NumberNeg sets z = -x and returns it.
func (c *Context) NumberNeg(z, x *Number) (*Number, error) {
	if x.isRat {
		if _, err := c.RatNeg(&z.ratVal, &x.ratVal); err != nil {
			return z, err
		}
		z.isRat = true
		return z, nil
	}
	if _, err := c.Neg(&z.integer, &x.integer); err != nil {
		return z, err
	}
	z.isRat = false
	return z, nil
}

// NumberAbs sets z = |x| and returns it.
func (c *Context) NumberAbs(z, x *Number) (*Number, error) {
	if x.isRat {
		if _, err := c.NumberCopy(z, x); err != nil {
			return z, err
		}
		z.ratVal.numNeg = false
		return z, nil
	}
	if _, err := c.Abs(&z.integer, &x.integer); err != nil {
		return z, err
	}
	z.isRat = false
	return z, nil
}

// NumberGcd sets z to gcd(|x|, |y|); both x and y must be integers.
func (c *Context) NumberGcd(z, x, y *Number) (*Number, error) {
	if x.isRat || y.isRat {
		return z, ErrTypeMismatch
	}
	if _, err := c.Gcd(&z.integer, &x.integer, &y.integer); err != nil {
		return z, err
	}
	z.isRat = false
	return z, nil
}

// NumberPow sets z = x**e; x may be integer or rational.
func (c *Context) NumberPow(z, x *Number, e uint64) (*Number, error) {
	if !x.isRat {
		if _, err := c.Pow(&z.integer, &x.integer, e); err != nil {
			return z, err
		}
		z.isRat = false
		return z, nil
	}
	num := &BigInteger{abs: x.ratVal.num, neg: x.ratVal.numNeg}
	den := &BigInteger{abs: x.ratVal.denOrOne()}
	outNum, outDen := &BigInteger{}, &BigInteger{}
	if _, err := c.Pow(outNum, num, e); err != nil {
		return z, err
	}
	if _, err := c.Pow(outDen, den, e); err != nil {
		return z, err
	}
	if _, err := c.FromBigIntegers(&z.ratVal, outNum, outDen); err != nil {
		return z, err
	}
	z.isRat = true
	z.demote()
	return z, nil
}

// NumberModExp sets z = base**exp mod m; base, exp's base, and m must all be
// integers. m must be non-zero.
func (c *Context) NumberModExp(z, base *Number, exp uint64, m *Number) (*Number, error) {
	if base.isRat || m.isRat {
		return z, ErrTypeMismatch
	}
	if m.Sign() == 0 {
		return z, ErrDivideByZero
	}
	if _, err := c.ModExp(&z.integer, &base.integer, exp, &m.integer); err != nil {
		return z, err
	}
	z.isRat = false
	return z, nil
}

// NumberMin and NumberMax return whichever of x, y compares smaller/larger,
// without copying. The comparison's cross-multiply path can allocate;
// on failure both return x unchanged alongside the error.
func (c *Context) NumberMin(x, y *Number) (*Number, error) {
	cmp, err := c.NumberCmp(x, y)
	if err != nil {
		return x, err
	}
	if cmp <= 0 {
		return x, nil
	}
	return y, nil
}

func (c *Context) NumberMax(x, y *Number) (*Number, error) {
	cmp, err := c.NumberCmp(x, y)
	if err != nil {
		return x, err
	}
	if cmp >= 0 {
		return x, nil
	}
	return y, nil
}
