// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bignum is a thin calculator wrapper over the bignum engine:
// it parses two operands and an operator from the command line,
// performs one operation, and prints the result. It exists to give
// the library a runnable boundary, not to be a full expression
// language; anything more than single binary operations belongs in
// the library's own tests, not here. Its output contract is exactly
// two shapes on stdout: "OK:<value>" on success, or
// "ERR:<numeric_status>" on any engine-level failure (parsing the
// operands counts as an engine call here, same as the operation
// itself); malformed invocation of the CLI itself (wrong argument
// count, unknown flag) is a usage error reported on stderr instead,
// since it never reaches the engine at all.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"bignum"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-op add|sub|mul|div|gcd|pow] X Y\n", os.Args[0])
		flag.PrintDefaults()
	}
	op := flag.String("op", "add", "operation: add, sub, mul, div, gcd, pow")
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	c := bignum.NewDefaultContext()
	x, y := &bignum.Number{}, &bignum.Number{}
	if _, err := c.FromString(x, flag.Arg(0), 0); err != nil {
		printResult(nil, err)
		return
	}
	if _, err := c.FromString(y, flag.Arg(1), 0); err != nil {
		printResult(nil, err)
		return
	}

	z := &bignum.Number{}
	var err error
	switch *op {
	case "add":
		_, err = c.NumberAdd(z, x, y)
	case "sub":
		_, err = c.NumberSub(z, x, y)
	case "mul":
		_, err = c.NumberMul(z, x, y)
	case "div":
		_, err = c.NumberDiv(z, x, y)
	case "gcd":
		_, err = c.NumberGcd(z, x, y)
	case "pow":
		u, expErr := exponentOf(y)
		if expErr != nil {
			printResult(nil, expErr)
			return
		}
		_, err = c.NumberPow(z, x, u)
	default:
		fmt.Fprintf(os.Stderr, "bignum: unknown op %q\n", *op)
		os.Exit(2)
	}
	if err != nil {
		printResult(nil, err)
		return
	}

	text, err := c.ToString(z, 10)
	printResult(&text, err)
}

// printResult writes the CLI's boundary contract to stdout: "OK:text"
// when err is nil, else "ERR:<numeric status>", and sets the process
// exit code to match (0 for OK, 1 for any ERR).
func printResult(text *string, err error) {
	if err == nil {
		fmt.Printf("OK:%s\n", *text)
		return
	}
	fmt.Printf("ERR:%d\n", statusCode(err))
	os.Exit(1)
}

// statusCode extracts the numeric status underlying err, falling back
// to InvalidInput's code if err isn't one of the engine's own Status
// values (which should not happen for any error this program sees).
func statusCode(err error) int {
	var s bignum.Status
	if errors.As(err, &s) {
		return int(s)
	}
	var invalid bignum.Status
	errors.As(bignum.ErrInvalidInput, &invalid)
	return int(invalid)
}

// exponentOf extracts a uint64 exponent from an integer Number: a
// rational exponent is a TypeMismatch, an integer exponent that
// doesn't fit in uint64 (negative or too large) is an OutOfRange.
func exponentOf(n *bignum.Number) (uint64, error) {
	if !n.IsInteger() {
		return 0, bignum.ErrTypeMismatch
	}
	u, ok := n.ToUint64()
	if !ok {
		return 0, bignum.ErrOutOfRange
	}
	return u, nil
}
