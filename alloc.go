// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Allocator and Context give the engine the allocator-context
// discipline required by the design: every mutating operation grows
// its limb storage through a pluggable allocator, tracks the size it
// asked for, and never falls back to any other source of memory. This
// is the Go expression of limitless_alloc/limitless_ctx from the
// original C implementation (original_source/limitless.h): a three-
// callback struct plus a cookie there, a small interface plus a
// holder struct here.

package bignum

// Allocator supplies the Word storage backing every BigMagnitude the
// engine grows. Implementations must zero newly added Words on Alloc
// and on the grown tail of Realloc; the engine relies on that to
// avoid repeating the zeroing itself.
//
// A nil return with a nil error is not a valid response; return
// ErrOutOfMemory (or any error) to signal failure.
type Allocator interface {
	// Alloc returns a zeroed slice of length n Words.
	Alloc(n int) ([]Word, error)
	// Realloc returns a slice of length n Words whose first
	// min(len(buf), n) Words equal buf's, and whose remaining Words
	// (if n > len(buf)) are zeroed. buf may be nil, in which case
	// Realloc behaves like Alloc.
	Realloc(buf []Word, n int) ([]Word, error)
	// Free releases buf. buf may be nil.
	Free(buf []Word)
}

// defaultAllocator wraps Go's own allocator. It never fails (Go's
// make/append panic on true exhaustion, which is outside what this
// engine can recover from anyway); Free is a no-op because the
// garbage collector owns reclamation.
type defaultAllocator struct{}

func (defaultAllocator) Alloc(n int) ([]Word, error) {
	return make([]Word, n), nil
}

func (defaultAllocator) Realloc(buf []Word, n int) ([]Word, error) {
	if n <= cap(buf) {
		out := buf[:n]
		for i := len(buf); i < n; i++ {
			out[i] = 0
		}
		return out, nil
	}
	out := make([]Word, n)
	copy(out, buf)
	return out, nil
}

func (defaultAllocator) Free([]Word) {}

// Context plumbs the allocator and the Karatsuba cutoff through every
// engine entry point, mirroring limitless_ctx. A Context has no
// mutable state beyond its own fields and is safe to share read-only
// across goroutines as long as the supplied Allocator's callbacks are
// (§5 of the design).
type Context struct {
	alloc               Allocator
	karatsubaThreshold int
}

// minKaratsubaThreshold is the floor the design mandates (§3, §9): a
// Karatsuba split is never attempted below 2 limbs.
const minKaratsubaThreshold = 2

// defaultKaratsubaThreshold mirrors LIMITLESS__DEFAULT_KARATSUBA_THRESHOLD.
const defaultKaratsubaThreshold = 32

// NewContext builds a Context around a caller-supplied Allocator. A
// nil Allocator is InvalidInput.
func NewContext(alloc Allocator) (*Context, error) {
	if alloc == nil {
		return nil, ErrInvalidInput
	}
	return &Context{alloc: alloc, karatsubaThreshold: defaultKaratsubaThreshold}, nil
}

// NewDefaultContext builds a Context backed by Go's own allocator.
// The returned Context never reports OutOfMemory.
func NewDefaultContext() *Context {
	return &Context{alloc: defaultAllocator{}, karatsubaThreshold: defaultKaratsubaThreshold}
}

// SetKaratsubaThreshold changes the minimum limb count at which
// multiplication switches from schoolbook to Karatsuba. Values below
// minKaratsubaThreshold are clamped up to it.
func (c *Context) SetKaratsubaThreshold(limbs int) {
	if limbs < minKaratsubaThreshold {
		limbs = minKaratsubaThreshold
	}
	c.karatsubaThreshold = limbs
}

func (c *Context) threshold() int {
	if c.karatsubaThreshold < minKaratsubaThreshold {
		return minKaratsubaThreshold
	}
	return c.karatsubaThreshold
}

// allocateMagnitude allocates a fresh, zeroed magnitude of length n.
func (c *Context) allocateMagnitude(n int) (magnitude, error) {
	if n == 0 {
		return nil, nil
	}
	w, err := c.alloc.Alloc(n)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return magnitude(w), nil
}

// freeMagnitude releases z's storage through the context's allocator.
func (c *Context) freeMagnitude(z magnitude) {
	if z != nil {
		c.alloc.Free([]Word(z[:cap(z)]))
	}
}
