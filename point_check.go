// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import "gitlab.com/yawning/cryptonote-voi/internal/field"

// IsOnCurve returns 1 iff `v` satisfies the curve equation, 0 otherwise.
//
// Every Point produced by this package is on the curve, so this only
// exists to catch arithmetic bugs.  It costs an inversion, and is not
// called on any of the regular code paths.
func (v *Point) IsOnCurve() uint64 {
	assertPointsValid(v)

	var zInv, xx, yy, check field.Element
	zInv.Invert(&v.z)
	xx.Multiply(&v.x, &zInv)
	yy.Multiply(&v.y, &zInv)
	xx.Square(&xx)
	yy.Square(&yy)

	// d*x^2*y^2 + x^2 - y^2 + 1 = 0
	check.Multiply(&xx, &yy)
	check.Multiply(&check, feD)
	check.Add(&check, &xx)
	check.Subtract(&check, &yy)
	check.Add(&check, feOne)

	return check.IsZero()
}

func (v *Point) mustBeOnCurve() {
	if v.IsOnCurve() != 1 {
		panic("cryptonote: internal consistency failure: point not on curve")
	}
}
