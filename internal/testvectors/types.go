// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

// Package testvectors contains the data types for hash-to-point
// known-answer test vectors, used for interoperability testing against
// other CryptoNote implementations.
package testvectors

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/pkg/errors"

	"gitlab.com/yawning/cryptonote-voi"
)

// Vector is a single hash-to-point known-answer test.  Both fields are
// hex encoded 32-byte values.
type Vector struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// File is a collection of vectors.
type File struct {
	Description string    `json:"description"`
	Vectors     []*Vector `json:"vectors"`
}

// NewVector computes the vector for `input`.
func NewVector(input *[cryptonote.HashSize]byte) *Vector {
	output := cryptonote.HashToPointBytesChecked(input)
	return &Vector{
		Input:  hex.EncodeToString(input[:]),
		Output: hex.EncodeToString(output[:]),
	}
}

// Generate returns a File with `count` pseudo-random vectors derived
// from `seed`, preceded by the all-zero input.  The i-th input is
// `cn_fast_hash(seed || uint64_le(i))`.
func Generate(description string, seed []byte, count int) *File {
	f := &File{
		Description: description,
		Vectors:     make([]*Vector, 0, count+1),
	}

	var zero [cryptonote.HashSize]byte
	f.Vectors = append(f.Vectors, NewVector(&zero))

	for i := 0; i < count; i++ {
		var ctr [8]byte
		binary.LittleEndian.PutUint64(ctr[:], uint64(i))

		input := cryptonote.FastHash(seed, ctr[:])
		f.Vectors = append(f.Vectors, NewVector(&input))
	}

	return f
}

// Check recomputes every vector in `f`, and returns an error describing
// the first mismatch or malformed vector, if any.
func (f *File) Check() error {
	if len(f.Vectors) == 0 {
		return errors.New("testvectors: no vectors")
	}

	for i, v := range f.Vectors {
		if v == nil {
			return errors.Errorf("testvectors: vector %d: missing", i)
		}

		input, err := decodeHash(v.Input)
		if err != nil {
			return errors.Wrapf(err, "testvectors: vector %d: bad input", i)
		}

		expected := NewVector(input)
		if expected.Output != v.Output {
			return errors.Errorf("testvectors: vector %d: HashToPointBytes(%s) = %s; want %s", i, v.Input, expected.Output, v.Output)
		}
	}

	return nil
}

func decodeHash(s string) (*[cryptonote.HashSize]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "malformed hex")
	}
	if len(b) != cryptonote.HashSize {
		return nil, errors.Errorf("invalid length %d", len(b))
	}

	return (*[cryptonote.HashSize]byte)(b), nil
}
