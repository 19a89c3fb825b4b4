// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import "gitlab.com/yawning/cryptonote-voi/internal/field"

// See: https://www.rfc-editor.org/rfc/rfc8032#section-5.1.2
//
// Only the encoding direction is provided.  Anything that needs to
// decode points should use `filippo.io/edwards25519` and then
// `SetEdwards25519`.

// PointSize is the size of a compressed point in bytes.
const PointSize = 32

// Bytes returns the compressed encoding of `v`, the little-endian
// y-coordinate with the sign of the x-coordinate in the most significant
// bit.
func (v *Point) Bytes() []byte {
	// Blah blah blah outline blah escape analysis blah.
	var dst [PointSize]byte
	return v.getBytes(&dst)
}

func (v *Point) getBytes(dst *[PointSize]byte) []byte {
	assertPointsValid(v)

	var zInv, x, y field.Element
	zInv.Invert(&v.z)
	x.Multiply(&v.x, &zInv)
	y.Multiply(&v.y, &zInv)

	buf := append(dst[:0], y.Bytes()...)
	buf[PointSize-1] ^= byte(x.IsNegative() << 7)

	return buf
}
