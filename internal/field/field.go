// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package field implements arithmetic modulo p = 2^255 - 19.
package field

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"strings"

	ed "filippo.io/edwards25519/field"

	"gitlab.com/yawning/cryptonote-voi/internal/helpers"
)

// ElementSize is the size of a field element in bytes.
const ElementSize = 32

var zeroElement Element

// incomparable makes any struct that embeds it fail to compile when
// compared with `==`.
type incomparable [0]func()

// Element is a field element.  All arguments and receivers are allowed
// to alias.  The zero value is a valid zero element.
type Element struct {
	_     incomparable
	inner ed.Element
}

// Zero sets `fe = 0` and returns `fe`.
func (fe *Element) Zero() *Element {
	fe.inner.Zero()
	return fe
}

// One sets `fe = 1` and returns `fe`.
func (fe *Element) One() *Element {
	fe.inner.One()
	return fe
}

// Add sets `fe = a + b` and returns `fe`.
func (fe *Element) Add(a, b *Element) *Element {
	fe.inner.Add(&a.inner, &b.inner)
	return fe
}

// Subtract sets `fe = a - b` and returns `fe`.
func (fe *Element) Subtract(a, b *Element) *Element {
	fe.inner.Subtract(&a.inner, &b.inner)
	return fe
}

// Negate sets `fe = -a` and returns `fe`.
func (fe *Element) Negate(a *Element) *Element {
	fe.inner.Negate(&a.inner)
	return fe
}

// Multiply sets `fe = a * b` and returns `fe`.
func (fe *Element) Multiply(a, b *Element) *Element {
	fe.inner.Multiply(&a.inner, &b.inner)
	return fe
}

// Square sets `fe = a * a` and returns `fe`.
func (fe *Element) Square(a *Element) *Element {
	fe.inner.Square(&a.inner)
	return fe
}

// Square2 sets `fe = 2 * a * a` and returns `fe`.
func (fe *Element) Square2(a *Element) *Element {
	fe.inner.Square(&a.inner)
	fe.inner.Add(&fe.inner, &fe.inner)
	return fe
}

// Invert sets `fe = 1 / a` and returns `fe`.  If `a == 0`, `fe = 0`.
func (fe *Element) Invert(a *Element) *Element {
	fe.inner.Invert(&a.inner)
	return fe
}

// Set sets `fe = a` and returns `fe`.
func (fe *Element) Set(a *Element) *Element {
	fe.inner.Set(&a.inner)
	return fe
}

// SetUint64 sets `fe = a` and returns `fe`.
func (fe *Element) SetUint64(a uint64) *Element {
	var b [ElementSize]byte
	binary.LittleEndian.PutUint64(b[:], a)
	return fe.SetBytes(&b)
}

// SetBytes sets `fe = src`, where `src` is a 32-byte little-endian
// encoding, and returns `fe`.  The most significant bit of the final
// byte is ignored, and non-canonical values (`[p, 2^255)`) are reduced,
// so this never fails.
func (fe *Element) SetBytes(src *[ElementSize]byte) *Element {
	if _, err := fe.inner.SetBytes(src[:]); err != nil {
		// Only reachable if the length is wrong, which the type rules out.
		panic("internal/field: failed to decode element: " + err.Error())
	}
	return fe
}

// SetBytesPropagate sets `fe = src mod p`, where `src` is a 32-byte
// little-endian encoding of a 256-bit integer, and returns `fe`.  Unlike
// SetBytes the most significant bit is not discarded, it carries into
// the low limb as `2^255 = 19 (mod p)`.  This matches the ref10 derived
// `fe_frombytes` inlined into CryptoNote's hash-to-point.
func (fe *Element) SetBytesPropagate(src *[ElementSize]byte) *Element {
	hi := uint64(src[ElementSize-1] >> 7)

	var carry Element
	carry.SetUint64(19 * hi)

	fe.SetBytes(src)
	return fe.Add(fe, &carry)
}

// SetCanonicalBytes sets `fe = src`, where `src` is a 32-byte canonical
// little-endian encoding of `fe`, and returns `fe`.  If `src` is not a
// canonical encoding, SetCanonicalBytes returns nil and 0, and the
// receiver is unchanged.
func (fe *Element) SetCanonicalBytes(src *[ElementSize]byte) (*Element, uint64) {
	var tmp Element
	tmp.SetBytes(src)

	var dst [ElementSize]byte
	if subtle.ConstantTimeCompare(tmp.getBytes(&dst), src[:]) != 1 {
		return nil, 0
	}

	return fe.Set(&tmp), 1
}

// Bytes returns the canonical little-endian encoding of `fe`.
func (fe *Element) Bytes() []byte {
	// Blah blah blah outline blah escape analysis blah.
	var dst [ElementSize]byte
	return fe.getBytes(&dst)
}

func (fe *Element) getBytes(dst *[ElementSize]byte) []byte {
	return append(dst[:0], fe.inner.Bytes()...)
}

// ConditionalSelect sets `fe = a` iff `ctrl == 0`, `fe = b` otherwise,
// and returns `fe`.
func (fe *Element) ConditionalSelect(a, b *Element, ctrl uint64) *Element {
	fe.inner.Select(&b.inner, &a.inner, helpers.Uint64ToInt(ctrl))
	return fe
}

// ConditionalNegate sets `fe = a` iff `ctrl == 0`, `fe = -a` otherwise,
// and returns `fe`.
func (fe *Element) ConditionalNegate(a *Element, ctrl uint64) *Element {
	var aNeg Element
	aNeg.Negate(a)
	return fe.ConditionalSelect(a, &aNeg, ctrl)
}

// Equal returns 1 iff `fe == a`, 0 otherwise.
func (fe *Element) Equal(a *Element) uint64 {
	return helpers.IntToUint64(fe.inner.Equal(&a.inner))
}

// IsZero returns 1 iff `fe == 0`, 0 otherwise.
func (fe *Element) IsZero() uint64 {
	return fe.Equal(&zeroElement)
}

// IsNegative returns 1 iff `fe` is "negative", that is the least
// significant bit of the canonical encoding is set, 0 otherwise.
func (fe *Element) IsNegative() uint64 {
	return helpers.IntToUint64(fe.inner.IsNegative())
}

// String returns the little-endian hex representation of `fe`.
func (fe *Element) String() string {
	return hex.EncodeToString(fe.Bytes())
}

// Inner returns a copy of `fe` as a `filippo.io/edwards25519/field`
// element.
func (fe *Element) Inner() *ed.Element {
	return new(ed.Element).Set(&fe.inner)
}

// SetInner sets `fe = a` and returns `fe`.
func (fe *Element) SetInner(a *ed.Element) *Element {
	fe.inner.Set(a)
	return fe
}

// MustRandomize randomizes and returns `fe`, or panics.
func (fe *Element) MustRandomize() *Element {
	var b [ElementSize]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("internal/field: entropy source failure")
	}
	return fe.SetBytes(&b)
}

// NewElement returns a new zero Element.
func NewElement() *Element {
	return &Element{}
}

// NewElementFromUint64 creates a new Element from a uint64.
func NewElementFromUint64(a uint64) *Element {
	return NewElement().SetUint64(a)
}

// NewElementFromCanonicalHex creates a new Element from the canonical
// big-endian hex representation (as in `0x2a`), or panics.  This is
// only intended for constants and tests.
func NewElementFromCanonicalHex(s string) *Element {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}

	raw := helpers.MustBytesFromHex(s)
	if len(raw) > ElementSize {
		panic("internal/field: hex value too large")
	}

	var b [ElementSize]byte
	for i, v := range raw {
		b[len(raw)-1-i] = v
	}

	fe, ok := NewElement().SetCanonicalBytes(&b)
	if ok != 1 {
		panic("internal/field: hex value out of range")
	}

	return fe
}
