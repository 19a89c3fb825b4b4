// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package testvectors

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const zeroOutput = "ecffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f"

func TestGenerate(t *testing.T) {
	f := Generate("test", []byte("seed"), 16)
	require.Len(t, f.Vectors, 17, "count + zero vector")
	require.Equal(t, strings.Repeat("00", 32), f.Vectors[0].Input, "zero input")
	require.Equal(t, zeroOutput, f.Vectors[0].Output, "zero output")
	require.NoError(t, f.Check(), "Check")

	if diff := cmp.Diff(f, Generate("test", []byte("seed"), 16)); diff != "" {
		t.Errorf("Generate is not deterministic (-first +second):\n%s", diff)
	}

	other := Generate("test", []byte("other seed"), 16)
	require.Equal(t, f.Vectors[0], other.Vectors[0], "zero vector is seed independent")
	require.NotEqual(t, f.Vectors[1], other.Vectors[1], "vectors depend on the seed")
}

func TestReadWrite(t *testing.T) {
	f := Generate("round trip", []byte("seed"), 8)

	t.Run("Buffer", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f), "Write")

		f2, err := Read(&buf)
		require.NoError(t, err, "Read")
		if diff := cmp.Diff(f, f2); diff != "" {
			t.Errorf("Read(Write(f)) mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h2p.json")
		require.NoError(t, WriteFile(path, f), "WriteFile")

		f2, err := ReadFile(path)
		require.NoError(t, err, "ReadFile")
		if diff := cmp.Diff(f, f2); diff != "" {
			t.Errorf("ReadFile(WriteFile(f)) mismatch (-want +got):\n%s", diff)
		}

		_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err, "ReadFile(missing)")
	})
	t.Run("Malformed", func(t *testing.T) {
		for i, s := range []string{
			"",
			"not json",
			`{"description": "x", "vectors": [], "extra": 1}`,
		} {
			_, err := Read(strings.NewReader(s))
			require.Error(t, err, "[%d]: Read(%q)", i, s)
		}
	})
}

func TestCheck(t *testing.T) {
	for i, tc := range []struct {
		descr string
		f     *File
	}{
		{"empty", &File{}},
		{"nil vector", &File{Vectors: []*Vector{nil}}},
		{"bad hex", &File{Vectors: []*Vector{{Input: "zz", Output: zeroOutput}}}},
		{"short input", &File{Vectors: []*Vector{{Input: "00", Output: zeroOutput}}}},
		{"wrong output", &File{Vectors: []*Vector{{Input: strings.Repeat("00", 32), Output: strings.Repeat("00", 32)}}}},
	} {
		require.Error(t, tc.f.Check(), "[%d]: Check(%s)", i, tc.descr)
	}

	f := Generate("tamper", []byte("seed"), 4)
	f.Vectors[3].Output = f.Vectors[2].Output
	err := f.Check()
	require.Error(t, err, "Check(tampered)")
	require.Contains(t, err.Error(), "vector 3", "Check(tampered)")
}
