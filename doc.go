// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bignum implements arbitrary-precision signed integers,
// exact rationals, and a Number façade that moves between the two
// automatically, all threaded through an explicit allocator Context
// so callers can observe and bound the memory an operation uses.
//
// BigInteger and Rational are the two concrete representations;
// Number wraps whichever one currently holds the simplest exact form
// of a value, promoting to Rational on an inexact division and
// demoting back to BigInteger whenever a result's denominator reduces
// to 1. Every mutating method takes its destination as an explicit
// first argument, in the style of math/big, and returns it alongside
// an error drawn from this package's Status taxonomy (see status.go)
// rather than panicking.
package bignum
