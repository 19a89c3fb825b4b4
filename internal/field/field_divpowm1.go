// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package field

// DivPowM1 sets `fe = (u / v) ^ ((p + 3) / 8)`, and returns `fe`.
//
// Squaring the result yields `(u / v) * c`, where `c` is one of the four
// fourth roots of unity (1, -1, sqrt(-1), -sqrt(-1)), which is what the
// hash-to-point branch selection keys off of.  `v` MUST be non-zero,
// though `u` may be zero (and the result is then zero).
func (fe *Element) DivPowM1(u, v *Element) *Element {
	// (u / v) ^ ((p + 3) / 8) = u * v^3 * (u * v^7) ^ ((p - 5) / 8),
	// which only requires a single fixed exponentiation and no
	// inversion.
	var v3, uv7, t0 Element

	v3.Square(v)
	v3.Multiply(&v3, v) // v3 = v^3

	uv7.Square(&v3)
	uv7.Multiply(&uv7, v)
	uv7.Multiply(&uv7, u) // uv7 = u * v^7

	t0.inner.Pow22523(&uv7.inner) // t0 = (u * v^7) ^ ((p - 5) / 8)
	t0.Multiply(&t0, &v3)

	return fe.Multiply(&t0, u)
}
