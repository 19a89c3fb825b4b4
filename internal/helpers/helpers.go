// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package helpers provides miscellaneous helpers shared by the field and
// curve packages.
package helpers

import (
	"encoding/hex"
	"strings"
)

// Uint64IsZero returns 1 iff `u == 0`, 0 otherwise, in constant time.
func Uint64IsZero(u uint64) uint64 {
	// (u | -u) has the MSB set iff u != 0.
	return ((u | -u) >> 63) ^ 1
}

// Uint64IsNonzero returns 1 iff `u != 0`, 0 otherwise, in constant time.
func Uint64IsNonzero(u uint64) uint64 {
	return (u | -u) >> 63
}

// IntToUint64 converts the `int` 0/1 truth values returned by
// `filippo.io/edwards25519` into the `uint64` 0/1 convention used
// everywhere else in this module.
func IntToUint64(i int) uint64 {
	return Uint64IsNonzero(uint64(i))
}

// Uint64ToInt is the inverse of IntToUint64.
func Uint64ToInt(u uint64) int {
	return int(Uint64IsNonzero(u))
}

// MustBytesFromHex decodes the hexadecimal string `s`, optionally
// prefixed with `0x`, or panics.
func MustBytesFromHex(s string) []byte {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic("internal/helpers: invalid hex string: " + err.Error())
	}
	return b
}

// MustArray32FromHex decodes the hexadecimal string `s` into a 32-byte
// array, or panics.
func MustArray32FromHex(s string) *[32]byte {
	b := MustBytesFromHex(s)
	if len(b) != 32 {
		panic("internal/helpers: hex string is not 32-bytes")
	}
	return (*[32]byte)(b)
}
