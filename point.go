// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package cryptonote implements the CryptoNote hash-to-point mapping
// (`ge_fromfe_frombytes_vartime`) onto the edwards25519 curve, along with
// the compressed point encoding and the small amount of curve arithmetic
// needed to use the result.
package cryptonote

import "gitlab.com/yawning/cryptonote-voi/internal/field"

// incomparable makes Point reject `==`, which would compare one of many
// projective representations.  Use Equal.
type incomparable [0]func()

// Point represents a point on the edwards25519 curve
// `-x^2 + y^2 = 1 + d*x^2*y^2`.  All arguments and receivers are allowed
// to alias.  The zero value is NOT valid, and may only be used as a
// receiver.
type Point struct {
	_ incomparable

	// The point internally is represented in projective coordinates
	// (X, Y, Z) where x = X/Z y = Y/Z.
	x, y, z field.Element

	isValid bool
}

// Identity sets `v = id`, and returns `v`.
func (v *Point) Identity() *Point {
	v.x.Zero()
	v.y.One()
	v.z.One()

	v.isValid = true
	return v
}

// Double sets `v = p + p`, and returns `v`.
func (v *Point) Double(p *Point) *Point {
	assertPointsValid(p)

	v.double(p)

	v.isValid = p.isValid
	return v
}

// MultByCofactor sets `v = 8 * p`, and returns `v`.
func (v *Point) MultByCofactor(p *Point) *Point {
	assertPointsValid(p)

	v.double(p)
	v.double(v)
	v.double(v)

	v.isValid = p.isValid
	return v
}

// Negate sets `v = -p`, and returns `v`.
func (v *Point) Negate(p *Point) *Point {
	assertPointsValid(p)

	// Affine negation formulas: -(x1,y1)=(-x1,y1).
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)

	v.isValid = p.isValid
	return v
}

// Equal returns 1 iff `v == p`, 0 otherwise.
func (v *Point) Equal(p *Point) uint64 {
	assertPointsValid(v, p)

	// Check X1Z2 == X2Z1 Y1Z2 == Y2Z1
	x1z2 := field.NewElement().Multiply(&v.x, &p.z)
	x2z1 := field.NewElement().Multiply(&p.x, &v.z)

	y1z2 := field.NewElement().Multiply(&v.y, &p.z)
	y2z1 := field.NewElement().Multiply(&p.y, &v.z)

	return x1z2.Equal(x2z1) & y1z2.Equal(y2z1)
}

// IsIdentity returns 1 iff v is the identity point, 0 otherwise.
func (v *Point) IsIdentity() uint64 {
	assertPointsValid(v)

	// The identity is (0, 1), so X == 0 and Y == Z.
	return v.x.IsZero() & v.y.Equal(&v.z)
}

// Set sets `v = p`, and returns `v`.
func (v *Point) Set(p *Point) *Point {
	assertPointsValid(p)

	v.x.Set(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.isValid = p.isValid

	return v
}

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint() *Point {
	return newRcvr().Identity()
}

func (v *Point) double(p *Point) *Point {
	// https://hyperelliptic.org/EFD/g1p/auto-twisted-projective.html#doubling-dbl-2008-bbjlp
	// with a = -1.  This is complete for edwards25519.
	var b, c, d, e, f, h, j field.Element

	// B = (X1+Y1)^2, C = X1^2, D = Y1^2
	b.Add(&p.x, &p.y)
	b.Square(&b)
	c.Square(&p.x)
	d.Square(&p.y)

	// E = a*C, F = E+D, H = Z1^2, J = F-2*H
	e.Negate(&c)
	f.Add(&e, &d)
	h.Square(&p.z)
	j.Add(&h, &h)
	j.Subtract(&f, &j)

	// X3 = (B-C-D)*J, Y3 = F*(E-D), Z3 = F*J
	b.Subtract(&b, &c)
	b.Subtract(&b, &d)
	e.Subtract(&e, &d)
	v.x.Multiply(&b, &j)
	v.y.Multiply(&f, &e)
	v.z.Multiply(&f, &j)

	return v
}

// rescale sets `v = p` with Z = 1 (or Z = 0 iff p has no affine form),
// and returns `v`.
func (v *Point) rescale(p *Point) *Point {
	assertPointsValid(p)

	zInv := field.NewElement().Invert(&p.z)
	v.x.Multiply(&p.x, zInv)
	v.y.Multiply(&p.y, zInv)
	v.z.Multiply(&p.z, zInv)

	v.isValid = p.isValid
	return v
}

// assertPointsValid ensures that the points have been initialized.
func assertPointsValid(points ...*Point) {
	for _, p := range points {
		if !p.isValid {
			panic("cryptonote: use of uninitialized Point")
		}
	}
}

func newRcvr() *Point {
	// This is explcitly for nicely creating receivers.
	return &Point{}
}
