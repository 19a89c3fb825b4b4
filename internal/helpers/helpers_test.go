// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package helpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredicates(t *testing.T) {
	for i, tc := range []struct {
		u         uint64
		isZero    uint64
		isNonzero uint64
	}{
		{0, 1, 0},
		{1, 0, 1},
		{1 << 63, 0, 1},
		{math.MaxUint64, 0, 1},
	} {
		require.Equal(t, tc.isZero, Uint64IsZero(tc.u), "[%d]: Uint64IsZero(%x)", i, tc.u)
		require.Equal(t, tc.isNonzero, Uint64IsNonzero(tc.u), "[%d]: Uint64IsNonzero(%x)", i, tc.u)
	}
}

func TestIntConversions(t *testing.T) {
	require.EqualValues(t, 0, IntToUint64(0), "IntToUint64(0)")
	require.EqualValues(t, 1, IntToUint64(1), "IntToUint64(1)")
	require.EqualValues(t, 1, IntToUint64(-1), "IntToUint64(-1)")

	require.Equal(t, 0, Uint64ToInt(0), "Uint64ToInt(0)")
	require.Equal(t, 1, Uint64ToInt(1), "Uint64ToInt(1)")
	require.Equal(t, 1, Uint64ToInt(math.MaxUint64), "Uint64ToInt(max)")
}

func TestMustBytesFromHex(t *testing.T) {
	require.Equal(t, []byte{0xde, 0xad}, MustBytesFromHex("0xdead"))
	require.Equal(t, []byte{0xbe, 0xef}, MustBytesFromHex("beef"))
	require.Panics(t, func() { MustBytesFromHex("xyz") }, "invalid hex")

	require.Panics(t, func() { MustArray32FromHex("00") }, "short array")
	a := MustArray32FromHex("0100000000000000000000000000000000000000000000000000000000000002")
	require.EqualValues(t, 1, a[0])
	require.EqualValues(t, 2, a[31])
}
