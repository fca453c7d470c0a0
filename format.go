// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ToString/AppendString/PutString render a Number in any base 2..36,
// the general-radix counterpart of parse.go's FromString. base == 0 is
// treated as base 10, the conventional default when a caller doesn't
// care; base == 1 or base > 36 is ErrInvalidInput, matching FromString.

package bignum

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// ToString returns n's text in the given base.
func (c *Context) ToString(n *Number, base int) (string, error) {
	buf, err := c.AppendString(nil, n, base)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendString appends n's text in the given base to buf and returns
// the extended buffer.
func (c *Context) AppendString(buf []byte, n *Number, base int) ([]byte, error) {
	if base == 1 || base > 36 || base < 0 {
		return buf, ErrInvalidInput
	}
	if base == 0 {
		base = 10
	}
	if n.isRat && !n.ratVal.DenIsOne() {
		buf, err := c.appendBigInteger(buf, &BigInteger{abs: n.ratVal.num, neg: n.ratVal.numNeg}, base)
		if err != nil {
			return buf, err
		}
		buf = append(buf, '/')
		return c.appendBigInteger(buf, &BigInteger{abs: n.ratVal.denOrOne()}, base)
	}
	if n.isRat {
		return c.appendBigInteger(buf, &BigInteger{abs: n.ratVal.num, neg: n.ratVal.numNeg}, base)
	}
	return c.appendBigInteger(buf, &n.integer, base)
}

// PutString writes n's text in the given base into dst and returns
// the number of bytes written. If dst is too small, it returns
// ErrBufferTooSmall and the required length via the second result, so
// a caller can retry with a larger buffer without double-formatting
// (the buffered contract of §6, replacing the C API's null-buffer
// length-query dance).
func (c *Context) PutString(dst []byte, n *Number, base int) (int, error) {
	text, err := c.ToString(n, base)
	if err != nil {
		return len(text), err
	}
	if len(dst) < len(text) {
		return len(text), ErrBufferTooSmall
	}
	return copy(dst, text), nil
}

// appendBigInteger extracts digits one at a time (dividing the
// remaining magnitude by base with divW) into a scratch buffer, then
// reverses them into buf. One digit per division step is simple to
// get right; it is not the fastest way to format a very large
// integer, but this engine optimizes Karatsuba, not printing.
func (c *Context) appendBigInteger(buf []byte, x *BigInteger, base int) ([]byte, error) {
	if len(x.abs) == 0 {
		return append(buf, '0'), nil
	}
	if x.neg {
		buf = append(buf, '-')
	}

	rem := x.abs
	bw := Word(base)
	var digits []byte
	for len(rem) > 0 {
		var r Word
		var err error
		rem, r, err = c.divW(nil, rem, bw)
		if err != nil {
			return buf, err
		}
		digits = append(digits, digitChars[r])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		buf = append(buf, digits[i])
	}
	return buf, nil
}
