// Copyright (c) 2023 Yawning Angel
//
// SPDX-License-Identifier: BSD-3-Clause

package testvectors

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Read decodes a vector file from `r`.
func Read(r io.Reader) (*File, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "testvectors: failed to decode")
	}

	return &f, nil
}

// Write encodes `f` to `w`.
func Write(w io.Writer, f *File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")

	return errors.Wrap(enc.Encode(f), "testvectors: failed to encode")
}

// ReadFile decodes the vector file at `path`.
func ReadFile(path string) (*File, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "testvectors: failed to open")
	}
	defer r.Close()

	return Read(r)
}

// WriteFile encodes `f` to a file at `path`, replacing it if it exists.
func WriteFile(path string, f *File) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "testvectors: failed to create")
	}

	if err = Write(w, f); err != nil {
		_ = w.Close()
		return err
	}

	return errors.Wrap(w.Close(), "testvectors: failed to close")
}
