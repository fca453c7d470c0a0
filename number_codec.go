// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Text and JSON codecs for Number, adapted from intmarsh.go's
// MarshalText/UnmarshalText/MarshalJSON/UnmarshalJSON. Gob is
// deliberately not carried forward: nothing else in this module reads
// or writes gob, and the design's own codec surface (§6) only ever
// names text, so adding it would be a dependency with no caller.

package bignum

// MarshalText returns n as base-10 text in the same decimal/rational
// grammar FromString parses, with a Context of the caller's choosing.
// These codec methods live on Context and take the Number as an
// argument, so neither Context nor Number satisfies the
// encoding.TextMarshaler, encoding.TextUnmarshaler, json.Marshaler or
// json.Unmarshaler interfaces.
func (c *Context) MarshalText(n *Number) ([]byte, error) {
	return c.AppendString(nil, n, 10)
}

// UnmarshalText sets n to the value of text, parsed with base 0.
func (c *Context) UnmarshalText(n *Number, text []byte) error {
	_, err := c.FromString(n, string(text), 0)
	return err
}

// MarshalJSON returns n as a JSON value. Numbers are encoded as JSON
// strings (not JSON numbers) since arbitrary-precision values and
// exact rationals don't fit json.Number's grammar.
func (c *Context) MarshalJSON(n *Number) ([]byte, error) {
	text, err := c.AppendString(nil, n, 10)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(text)+2)
	out = append(out, '"')
	out = append(out, text...)
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON sets n from a JSON string holding FromString text
// (base 0).
func (c *Context) UnmarshalJSON(n *Number, data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrParseError
	}
	_, err := c.FromString(n, string(data[1:len(data)-1]), 0)
	return err
}
