// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package cryptonote

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"
)

// FastHash returns the CryptoNote `cn_fast_hash` of the concatenation of
// `data`, which is the original (pre-FIPS 202) Keccak-256.
func FastHash(data ...[]byte) [HashSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write(b)
	}

	var dst [HashSize]byte
	h.Sum(dst[:0])

	return dst
}

// HashToEC returns a new Point set to the CryptoNote `hash_to_ec` of
// `data`: the hash-to-point mapping of `FastHash(data)`, multiplied by
// the cofactor so that the result is in the prime order subgroup.
//
// This is what key images and one-time keys are derived with.
func HashToEC(data ...[]byte) *Point {
	h := FastHash(data...)

	p := HashToPoint(&h)
	return p.MultByCofactor(p)
}

// ScalarFromHash returns `h` reduced modulo the group order, as a
// `filippo.io/edwards25519` scalar.
func ScalarFromHash(h *[HashSize]byte) *edwards25519.Scalar {
	var wide [64]byte
	copy(wide[:], h[:])

	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		panic("cryptonote: failed to reduce scalar: " + err.Error())
	}

	return s
}

// HashToScalar returns the CryptoNote `hash_to_scalar` of `data`, which
// is `FastHash(data)` reduced modulo the group order.
func HashToScalar(data ...[]byte) *edwards25519.Scalar {
	h := FastHash(data...)
	return ScalarFromHash(&h)
}
