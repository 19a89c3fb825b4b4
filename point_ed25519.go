// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import (
	"filippo.io/edwards25519"

	"gitlab.com/yawning/cryptonote-voi/internal/field"
)

// SetEdwards25519 sets `v = p`, where `p` is a `filippo.io/edwards25519`
// point, and returns `v`.
func (v *Point) SetEdwards25519(p *edwards25519.Point) *Point {
	x, y, z, _ := p.ExtendedCoordinates()

	v.x.SetInner(x)
	v.y.SetInner(y)
	v.z.SetInner(z)
	v.isValid = true

	return v
}

// Edwards25519 returns `v` as a new `filippo.io/edwards25519` point, for
// use with the rest of the group operations (scalar multiplication etc).
func (v *Point) Edwards25519() *edwards25519.Point {
	assertPointsValid(v)

	// (X : Y : Z) -> (X*Z : Y*Z : Z^2 : X*Y), which satisfies the extended
	// coordinate invariant T*Z = X*Y.
	var x, y, z, t field.Element
	x.Multiply(&v.x, &v.z)
	y.Multiply(&v.y, &v.z)
	z.Square(&v.z)
	t.Multiply(&v.x, &v.y)

	p, err := new(edwards25519.Point).SetExtendedCoordinates(x.Inner(), y.Inner(), z.Inner(), t.Inner())
	if err != nil {
		panic("cryptonote: internal consistency failure: " + err.Error())
	}

	return p
}

// NewPointFromEdwards25519 creates a new Point from a
// `filippo.io/edwards25519` point.
func NewPointFromEdwards25519(p *edwards25519.Point) *Point {
	return newRcvr().SetEdwards25519(p)
}
