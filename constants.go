// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import "gitlab.com/yawning/cryptonote-voi/internal/field"

// montgomeryA is the `A` coefficient of the birationally equivalent
// Montgomery curve (Curve25519), `v^2 = u^3 + A*u^2 + u`.
const montgomeryA = 486662

var (
	feOne = field.NewElement().One()

	// feD is the constant `d = -121665/121666`, part of the curve
	// equation.
	feD = func() *field.Element {
		d := field.NewElementFromUint64(121666)
		d.Invert(d)
		d.Multiply(d, field.NewElementFromUint64(121665))
		return d.Negate(d)
	}()

	// feSqrtM1 is `2^((p-1)/4)`, which squared is `-1`.
	feSqrtM1 = func() *field.Element {
		// (p-1)/4 = 2 * (p-5)/8 + 1, so reuse the (p-5)/8 exponentiation
		// from DivPowM1: 2^((p+3)/8) = (2/1)^((p+3)/8) = 2 * 2^((p-5)/8).
		two := field.NewElementFromUint64(2)
		t := field.NewElement().DivPowM1(two, feOne)
		t.Square(t) // 2^((p+3)/4) = 2 * 2^((p-1)/4)
		return t.Multiply(t, field.NewElement().Invert(two))
	}()

	feA = field.NewElementFromUint64(montgomeryA)

	// feMA is `-A`.
	feMA = field.NewElement().Negate(feA)

	// feMA2 is `-A^2`.
	feMA2 = field.NewElement().Negate(field.NewElement().Square(feA))

	// feAAp2 is `A * (A + 2)`.
	feAAp2 = field.NewElementFromUint64(montgomeryA * (montgomeryA + 2))

	// The "fffb" constants fix up the candidate square root in each of
	// the four hash-to-point branches:
	//
	//   fffb1 = sqrt(-2 * A * (A + 2))
	//   fffb2 = sqrt(2 * A * (A + 2))
	//   fffb3 = sqrt(-sqrt(-1) * A * (A + 2))
	//   fffb4 = sqrt(sqrt(-1) * A * (A + 2))
	//
	// Which of the two roots gets picked does not matter, as the sign of
	// the x-coordinate is fixed up after the multiply.
	feFFFB1 = mustSqrt(field.NewElement().Negate(field.NewElement().Add(feAAp2, feAAp2)), "fffb1")
	feFFFB2 = mustSqrt(field.NewElement().Add(feAAp2, feAAp2), "fffb2")
	feFFFB3 = mustSqrt(field.NewElement().Negate(field.NewElement().Multiply(feSqrtM1, feAAp2)), "fffb3")
	feFFFB4 = mustSqrt(field.NewElement().Multiply(feSqrtM1, feAAp2), "fffb4")
)

// mustSqrt returns a square root of `a`, or panics.
func mustSqrt(a *field.Element, name string) *field.Element {
	// p = 5 (mod 8): a^((p+3)/8) is a square root of either a or -a.
	r := field.NewElement().DivPowM1(a, feOne)

	check := field.NewElement().Square(r)
	if check.Equal(a) == 1 {
		return r
	}

	r.Multiply(r, feSqrtM1)
	if check.Square(r).Equal(a) != 1 {
		panic("cryptonote: failed to derive constant " + name)
	}

	return r
}
