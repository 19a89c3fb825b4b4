// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import "gitlab.com/yawning/cryptonote-voi/internal/field"

// HashSize is the size of the input to the hash-to-point mapping (and
// of a FastHash digest) in bytes.
const HashSize = 32

// h2pBranch identifies which of the four square root fixups the
// hash-to-point mapping applied.
type h2pBranch uint8

const (
	branchPositiveFFFB1 h2pBranch = iota + 1
	branchPositiveFFFB2
	branchNegativeFFFB3
	branchNegativeFFFB4
)

func (b h2pBranch) String() string {
	switch b {
	case branchPositiveFFFB1:
		return "positive/fffb1"
	case branchPositiveFFFB2:
		return "positive/fffb2"
	case branchNegativeFFFB3:
		return "negative/fffb3"
	case branchNegativeFFFB4:
		return "negative/fffb4"
	default:
		return "invalid"
	}
}

func (b h2pBranch) fixup() *field.Element {
	switch b {
	case branchPositiveFFFB1:
		return feFFFB1
	case branchPositiveFFFB2:
		return feFFFB2
	case branchNegativeFFFB3:
		return feFFFB3
	case branchNegativeFFFB4:
		return feFFFB4
	default:
		panic("cryptonote: invalid hash-to-point branch")
	}
}

func (b h2pBranch) isNegative() bool {
	return b == branchNegativeFFFB3 || b == branchNegativeFFFB4
}

// selectBranch picks the fixup for the candidate root `r`, given `w` and
// `r2x = r^2 * x`.  `r2x` is always `w` times a fourth root of unity.
//
// The tests MUST be done in this order.
func selectBranch(w, r2x *field.Element) h2pBranch {
	var t field.Element

	// r^2 * x = w
	if t.Subtract(w, r2x).IsZero() == 1 {
		return branchPositiveFFFB2
	}

	// r^2 * x = -w
	if t.Add(w, r2x).IsZero() == 1 {
		return branchPositiveFFFB1
	}

	// r^2 * x = +/- sqrt(-1) * w
	r2xi := field.NewElement().Multiply(r2x, feSqrtM1)
	if t.Subtract(w, r2xi).IsZero() == 1 {
		return branchNegativeFFFB4
	}

	// This leaves w + r2xi = 0.
	return branchNegativeFFFB3
}

// SetHashBytes sets `v` to the CryptoNote `ge_fromfe_frombytes_vartime`
// mapping of `src`, and returns `v`.  Every possible input maps to a
// valid point (that is not necessarily in the prime order subgroup, see
// HashToEC).  `src` is interpreted as a 256-bit little-endian integer,
// reduced modulo p.  The most significant bit is significant, and folds
// in as `2^255 = 19`.
//
// This is variable-time, and MUST NOT be used with secret inputs.
func (v *Point) SetHashBytes(src *[HashSize]byte) *Point {
	v.setHashBytes(src)
	return v
}

func (v *Point) setHashBytes(src *[HashSize]byte) h2pBranch {
	var u, uu2, w, x, r, r2x, z field.Element

	u.SetBytesPropagate(src)
	uu2.Square2(&u)    // v = 2 * u^2
	w.Add(&uu2, feOne) // w = 2 * u^2 + 1

	x.Square(&w)
	r2x.Multiply(feMA2, &uu2) // -2 * A^2 * u^2
	x.Add(&x, &r2x)           // x = w^2 - 2 * A^2 * u^2

	r.DivPowM1(&w, &x) // (w / x)^((p+3)/8)
	r2x.Square(&r)
	r2x.Multiply(&r2x, &x)

	branch := selectBranch(&w, &r2x)
	r.Multiply(&r, branch.fixup())

	var sign uint64
	if branch.isNegative() {
		// r = sqrt(A * (A + 2) * w / x)
		z.Set(feMA) // -A
		sign = 1
	} else {
		r.Multiply(&r, &u)     // u * sqrt(2 * A * (A + 2) * w / x)
		z.Multiply(feMA, &uu2) // -2 * A * u^2
	}

	v.x.ConditionalNegate(&r, r.IsNegative()^sign)
	v.z.Add(&z, &w)
	v.y.Subtract(&z, &w)
	v.x.Multiply(&v.x, &v.z)
	v.isValid = true

	return branch
}

// HashToPoint returns a new Point set to the hash-to-point mapping of
// `src`.  See SetHashBytes for details.
func HashToPoint(src *[HashSize]byte) *Point {
	return newRcvr().SetHashBytes(src)
}

// HashToPointBytes returns the compressed encoding of the hash-to-point
// mapping of `src`.  This is the CryptoNote `hash_to_point` primitive,
// and always succeeds.
func HashToPointBytes(src *[HashSize]byte) [PointSize]byte {
	var (
		p   Point
		dst [PointSize]byte
	)
	p.setHashBytes(src)
	p.getBytes(&dst)

	return dst
}

// HashToPointBytesChecked is HashToPointBytes, with the additional
// verification that the mapped point is on the curve.  A failure of
// the check is a bug in the field arithmetic, and will panic.
func HashToPointBytesChecked(src *[HashSize]byte) [PointSize]byte {
	var (
		p   Point
		dst [PointSize]byte
	)
	p.setHashBytes(src)
	p.mustBeOnCurve()
	p.getBytes(&dst)

	return dst
}
