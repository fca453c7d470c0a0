// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// BigInteger is the signed multi-precision integer built on top of
// magnitude, following the sign-and-magnitude convention and the
// division conventions of the teacher's Int (math/big): QuoRem
// truncates toward zero like Go's own / and %, DivMod is Euclidean
// division with a remainder that is always in [0, |y|).
// Every mutating method here computes its result into locals first
// and only writes through z at the very end, so a failed operation
// (ErrOutOfMemory from a constrained allocator) never leaves a
// destination that aliases one of its own operands partially
// overwritten (§4.2 destination-alias safety, testable property #10).

package bignum

// BigInteger is an arbitrary-precision signed integer. The zero value
// is 0 and ready to use.
type BigInteger struct {
	neg bool
	abs magnitude
}

// NewBigInteger returns a new BigInteger set to 0.
func NewBigInteger() *BigInteger { return &BigInteger{} }

// Sign returns -1, 0, or +1 depending on the sign of x.
func (x *BigInteger) Sign() int {
	if len(x.abs) == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// IsZero reports whether x == 0.
func (x *BigInteger) IsZero() bool { return len(x.abs) == 0 }

// BitLen returns the length of x's magnitude in bits; 0 for x == 0.
func (x *BigInteger) BitLen() int { return x.abs.bitLen() }

// Bit returns the value of the i'th bit of |x|.
func (x *BigInteger) Bit(i uint) uint { return x.abs.bit(i) }

// Copy sets z to a deep, independent copy of x and returns z.
func (c *Context) Copy(z, x *BigInteger) (*BigInteger, error) {
	abs, err := c.set(z.abs, x.abs)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = x.neg && len(abs) > 0
	return z, nil
}

// FromInt64 sets z to v and returns it.
func (c *Context) FromInt64(z *BigInteger, v int64) (*BigInteger, error) {
	neg := v < 0
	uv := uint64(v)
	if neg {
		uv = uint64(-v)
	}
	abs, err := c.fromUint64(uv)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = neg && len(abs) > 0
	return z, nil
}

// FromUint64 sets z to v and returns it.
func (c *Context) FromUint64(z *BigInteger, v uint64) (*BigInteger, error) {
	abs, err := c.fromUint64(v)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = false
	return z, nil
}

// ToInt64 returns (x, true) if x fits in an int64, else (0, false)
// (ErrOutOfRange territory for callers that need a Status).
func (x *BigInteger) ToInt64() (int64, bool) {
	u, ok := x.abs.asUint64()
	if !ok {
		return 0, false
	}
	if u > 1<<63-1 {
		if x.neg && u == 1<<63 {
			return -(1 << 63), true
		}
		return 0, false
	}
	if x.neg {
		return -int64(u), true
	}
	return int64(u), true
}

// ToUint64 returns (x, true) if x fits in a uint64 (x must be
// non-negative), else (0, false).
func (x *BigInteger) ToUint64() (uint64, bool) {
	if x.neg {
		return 0, false
	}
	return x.abs.asUint64()
}

func (x magnitude) asUint64() (uint64, bool) {
	switch {
	case len(x) == 0:
		return 0, true
	case _W == 64:
		if len(x) > 1 {
			return 0, false
		}
		return uint64(x[0]), true
	default: // _W == 32
		if len(x) > 2 {
			return 0, false
		}
		v := uint64(x[0])
		if len(x) == 2 {
			v |= uint64(x[1]) << 32
		}
		return v, true
	}
}

// Cmp compares x and y and returns -1, 0, or +1.
func (x *BigInteger) Cmp(y *BigInteger) int {
	switch {
	case x.neg == y.neg:
		r := x.abs.cmp(y.abs)
		if x.neg {
			return -r
		}
		return r
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Neg sets z = -x and returns it.
func (c *Context) Neg(z, x *BigInteger) (*BigInteger, error) {
	abs, err := c.set(z.abs, x.abs)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = !x.neg && len(abs) > 0
	return z, nil
}

// Abs sets z = |x| and returns it.
func (c *Context) Abs(z, x *BigInteger) (*BigInteger, error) {
	abs, err := c.set(z.abs, x.abs)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = false
	return z, nil
}

// addSigned computes the sign-and-magnitude sum of (xabs,xneg) and
// (yabs,yneg) without touching any BigInteger, so Add and Sub can
// share it.
func (c *Context) addSigned(xabs magnitude, xneg bool, yabs magnitude, yneg bool) (magnitude, bool, error) {
	if xneg == yneg {
		abs, err := c.add(nil, xabs, yabs)
		return abs, xneg && len(abs) > 0, err
	}
	if xabs.cmp(yabs) >= 0 {
		abs, err := c.sub(nil, xabs, yabs)
		return abs, xneg && len(abs) > 0, err
	}
	abs, err := c.sub(nil, yabs, xabs)
	return abs, yneg && len(abs) > 0, err
}

// Add sets z = x+y and returns it.
func (c *Context) Add(z, x, y *BigInteger) (*BigInteger, error) {
	abs, neg, err := c.addSigned(x.abs, x.neg, y.abs, y.neg)
	if err != nil {
		return z, err
	}
	z.abs, z.neg = abs, neg
	return z, nil
}

// Sub sets z = x-y and returns it.
func (c *Context) Sub(z, x, y *BigInteger) (*BigInteger, error) {
	abs, neg, err := c.addSigned(x.abs, x.neg, y.abs, !y.neg)
	if err != nil {
		return z, err
	}
	z.abs, z.neg = abs, neg
	return z, nil
}

// Mul sets z = x*y and returns it.
func (c *Context) Mul(z, x, y *BigInteger) (*BigInteger, error) {
	abs, err := c.mul(nil, x.abs, y.abs)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = (x.neg != y.neg) && len(abs) > 0
	return z, nil
}

// QuoRem sets z = x/y (truncated toward zero) and r = x - z*y, and
// returns (z, r). y must be non-zero; callers are expected to have
// already turned a zero y into ErrDivideByZero before calling, per
// the Number façade's contract.
func (c *Context) QuoRem(z, r, x, y *BigInteger) (*BigInteger, *BigInteger, error) {
	qabs, rabs, err := c.divmod(x.abs, y.abs)
	if err != nil {
		return z, r, err
	}
	z.abs = qabs
	z.neg = (x.neg != y.neg) && len(qabs) > 0
	r.abs = rabs
	r.neg = x.neg && len(rabs) > 0
	return z, r, nil
}

// DivMod sets z = x div y (Euclidean) and m = x mod y with
// 0 <= m < |y|, and returns (z, m). y must be non-zero.
func (c *Context) DivMod(z, m, x, y *BigInteger) (*BigInteger, *BigInteger, error) {
	q, r := &BigInteger{}, &BigInteger{}
	if _, _, err := c.QuoRem(q, r, x, y); err != nil {
		return z, m, err
	}
	if r.neg {
		one := &BigInteger{abs: magnitude{1}}
		if y.neg {
			if _, err := c.Add(q, q, one); err != nil {
				return z, m, err
			}
			if _, err := c.Sub(r, r, y); err != nil {
				return z, m, err
			}
		} else {
			if _, err := c.Sub(q, q, one); err != nil {
				return z, m, err
			}
			if _, err := c.Add(r, r, y); err != nil {
				return z, m, err
			}
		}
	}
	z.abs, z.neg = q.abs, q.neg
	m.abs, m.neg = r.abs, r.neg
	return z, m, nil
}

// ShiftLeft sets z = x << nbits and returns it.
func (c *Context) ShiftLeft(z, x *BigInteger, nbits uint) (*BigInteger, error) {
	abs, err := c.shl(z.abs, x.abs, nbits)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = x.neg && len(abs) > 0
	return z, nil
}

// ShiftRight sets z = x >> nbits (magnitude shift; x must be
// non-negative, per the design's Non-goal of not exposing an
// arithmetic/signed right shift) and returns it.
func (c *Context) ShiftRight(z, x *BigInteger, nbits uint) (*BigInteger, error) {
	abs, err := c.shr(z.abs, x.abs, nbits)
	if err != nil {
		return z, err
	}
	z.abs = abs
	z.neg = x.neg && len(abs) > 0
	return z, nil
}

// Gcd sets z to the greatest common divisor of |x| and |y| (always
// non-negative) using Stein's binary algorithm, and returns it.
// Gcd(0,0) = 0; Gcd(0,y) = |y|; Gcd(x,0) = |x|.
func (c *Context) Gcd(z, x, y *BigInteger) (*BigInteger, error) {
	if len(x.abs) == 0 {
		return c.Abs(z, y)
	}
	if len(y.abs) == 0 {
		return c.Abs(z, x)
	}

	u, err := c.set(nil, x.abs)
	if err != nil {
		return z, err
	}
	v, err := c.set(nil, y.abs)
	if err != nil {
		return z, err
	}

	shift := u.trailingZeroBits()
	if vz := v.trailingZeroBits(); vz < shift {
		shift = vz
	}
	u, err = c.shr(u, u, shift)
	if err != nil {
		return z, err
	}
	v, err = c.shr(v, v, shift)
	if err != nil {
		return z, err
	}

	for len(u) > 0 {
		for u.trailingZeroBits() > 0 {
			u, err = c.shr(u, u, u.trailingZeroBits())
			if err != nil {
				return z, err
			}
		}
		for v.trailingZeroBits() > 0 {
			v, err = c.shr(v, v, v.trailingZeroBits())
			if err != nil {
				return z, err
			}
		}
		if u.cmp(v) >= 0 {
			u, err = c.sub(u, u, v)
		} else {
			v, err = c.sub(v, v, u)
		}
		if err != nil {
			return z, err
		}
	}

	abs, err := c.shl(nil, v, shift)
	if err != nil {
		return z, err
	}
	z.abs = abs.norm()
	z.neg = false
	return z, nil
}

// Pow sets z = x**e (e >= 0) and returns it. Pow(0, 0) = 1.
func (c *Context) Pow(z, x *BigInteger, e uint64) (*BigInteger, error) {
	expOdd := e&1 == 1
	result := magnitude{1}
	base, err := c.set(nil, x.abs)
	if err != nil {
		return z, err
	}
	for e > 0 {
		if e&1 == 1 {
			result, err = c.mul(nil, result, base)
			if err != nil {
				return z, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		base, err = c.mul(nil, base, base)
		if err != nil {
			return z, err
		}
	}
	result = result.norm()
	z.abs = result
	z.neg = x.neg && len(result) > 0 && expOdd
	return z, nil
}

// ModExp sets z = base**exp mod m and returns it, with 0 <= z < |m|
// (the remainder is canonicalized to be non-negative regardless of
// base's sign, per the design's dividend-sign canonicalization rule).
// m must be non-zero.
func (c *Context) ModExp(z, base *BigInteger, exp uint64, m *BigInteger) (*BigInteger, error) {
	result := &BigInteger{abs: magnitude{1}}
	b := &BigInteger{}
	if _, err := c.Copy(b, base); err != nil {
		return z, err
	}
	scratchQ := &BigInteger{}
	reduce := func(v *BigInteger) error {
		_, _, err := c.DivMod(scratchQ, v, v, m)
		return err
	}
	if err := reduce(b); err != nil {
		return z, err
	}
	if err := reduce(result); err != nil {
		return z, err
	}
	e := exp
	for e > 0 {
		if e&1 == 1 {
			if _, err := c.Mul(result, result, b); err != nil {
				return z, err
			}
			if err := reduce(result); err != nil {
				return z, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		if _, err := c.Mul(b, b, b); err != nil {
			return z, err
		}
		if err := reduce(b); err != nil {
			return z, err
		}
	}
	z.abs = result.abs
	z.neg = result.neg
	return z, nil
}
