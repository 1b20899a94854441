// SPDX-License-Identifier: ISC
/*
 * Copyright (C) 2019 Gunnstein T. Frøseth <gunnstein@mailbox.org>.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 */

package fastlib

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Load reads and decodes the FAST binary output file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a FAST binary output file from r. The input is consumed in
// a single sequential pass.
func Read(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return Decode(data)
}

// Decode decodes a FAST binary output file held in memory.
//
// Decoding is all or nothing: on any error no Dataset is returned, and
// decoding the same bytes again yields the same result. The returned
// Dataset does not retain data, so the caller may reuse the buffer.
func Decode(data []byte) (*Dataset, error) {
	cur := &cursor{buf: data}

	hdr, err := decodeHeader(cur)
	if err != nil {
		return nil, err
	}

	ts, matrix, err := decodeBody(cur, hdr)
	if err != nil {
		return nil, err
	}

	return newDataset(hdr, ts, matrix), nil
}

// decodeHeader reads the format identifier, the channel and record counts,
// the variant-specific time parameters, the per-channel quantization tables
// and the name, unit and description tables.
func decodeHeader(cur *cursor) (*header, error) {
	id, err := cur.int16()
	if err != nil {
		return nil, fmt.Errorf("error reading format identifier: %w", err)
	}
	hdr := &header{fileID: FileID(id)}
	if !hdr.fileID.valid() {
		return nil, fmt.Errorf("%w: identifier %d", ErrUnsupportedFormat, id)
	}

	nc, err := cur.int32()
	if err != nil {
		return nil, fmt.Errorf("error reading channel count: %w", err)
	}
	nt, err := cur.int32()
	if err != nil {
		return nil, fmt.Errorf("error reading record count: %w", err)
	}
	if nc < 0 || nt < 0 {
		return nil, fmt.Errorf("%w: %d channels, %d records", ErrCorrupt, nc, nt)
	}
	hdr.numChannels = int(nc)
	hdr.numRecords = int(nt)

	a, err := cur.float64()
	if err != nil {
		return nil, fmt.Errorf("error reading time parameters: %w", err)
	}
	b, err := cur.float64()
	if err != nil {
		return nil, fmt.Errorf("error reading time parameters: %w", err)
	}
	if hdr.fileID.withTime() {
		hdr.timeSlope, hdr.timeOffset = a, b
	} else {
		hdr.timeStart, hdr.timeStep = a, b
	}

	if hdr.fileID.quantized() {
		slopes, err := cur.float32s(hdr.numChannels)
		if err != nil {
			return nil, fmt.Errorf("error reading channel slopes: %w", err)
		}
		offsets, err := cur.float32s(hdr.numChannels)
		if err != nil {
			return nil, fmt.Errorf("error reading channel offsets: %w", err)
		}
		hdr.slopes = asFloat64(slopes)
		hdr.offsets = asFloat64(offsets)
	}

	ldesc, err := cur.int32()
	if err != nil {
		return nil, fmt.Errorf("error reading description length: %w", err)
	}
	if ldesc < 0 {
		return nil, fmt.Errorf("%w: description length %d", ErrCorrupt, ldesc)
	}
	hdr.description, err = cur.text(int(ldesc))
	if err != nil {
		return nil, fmt.Errorf("error reading description: %w", err)
	}

	hdr.names, err = cur.fixedStrings(hdr.numChannels+1, lenName)
	if err != nil {
		return nil, fmt.Errorf("error reading channel names: %w", err)
	}
	hdr.units, err = cur.fixedStrings(hdr.numChannels+1, lenUnit)
	if err != nil {
		return nil, fmt.Errorf("error reading channel units: %w", err)
	}

	return hdr, nil
}

// decodeBody reads the time column and the channel value matrix according
// to the header's format variant, descaling quantized values to physical
// units. The matrix is column-major so that each channel column is one
// contiguous slice of length numRecords.
//
// Body bytes are read before the time sequence or the matrix is
// allocated, so a record count the input cannot back fails with
// ErrTruncated before anything is sized from it. The uniform variants
// store no time bytes; their time sequence is synthesized after the
// channel data has been read.
func decodeBody(cur *cursor, hdr *header) ([]float64, []float64, error) {
	if err := validateScaling(hdr); err != nil {
		return nil, nil, err
	}
	nt, nc := hdr.numRecords, hdr.numChannels

	var packedTime []int32
	if hdr.fileID.withTime() {
		var err error
		packedTime, err = cur.int32s(nt)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading time column: %w", err)
		}
	}

	var matrix []float64
	if hdr.fileID.quantized() {
		packed, err := cur.int16s(nt * nc)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading channel data: %w", err)
		}
		matrix = make([]float64, nt*nc)
		for i := 0; i < nt; i++ {
			record := packed[i*nc : (i+1)*nc]
			for j, p := range record {
				matrix[j*nt+i] = (float64(p) - hdr.offsets[j]) / hdr.slopes[j]
			}
		}
	} else {
		values, err := cur.float64s(nt * nc)
		if err != nil {
			return nil, nil, fmt.Errorf("error reading channel data: %w", err)
		}
		matrix = make([]float64, nt*nc)
		for i := 0; i < nt; i++ {
			for j := 0; j < nc; j++ {
				matrix[j*nt+i] = values[i*nc+j]
			}
		}
	}

	ts := make([]float64, nt)
	if hdr.fileID.withTime() {
		for i, p := range packedTime {
			ts[i] = (float64(p) - hdr.timeOffset) / hdr.timeSlope
		}
	} else {
		for i := range ts {
			ts[i] = hdr.timeStart + float64(i)*hdr.timeStep
		}
	}
	for i, v := range ts {
		if !isFinite(v) {
			return nil, nil, fmt.Errorf("%w: non-finite time %v at record %d", ErrCorrupt, v, i)
		}
	}

	return ts, matrix, nil
}

// validateScaling rejects time and quantization parameters that cannot
// reconstruct finite physical values: a zero or non-finite slope, or a
// non-finite offset, start or step.
func validateScaling(hdr *header) error {
	if hdr.fileID.withTime() {
		if !usableScaling(hdr.timeSlope, hdr.timeOffset) {
			return fmt.Errorf("%w: unusable time scaling (slope %v, offset %v)",
				ErrCorrupt, hdr.timeSlope, hdr.timeOffset)
		}
	} else if !isFinite(hdr.timeStart) || !isFinite(hdr.timeStep) {
		return fmt.Errorf("%w: unusable time parameters (start %v, step %v)",
			ErrCorrupt, hdr.timeStart, hdr.timeStep)
	}
	for i := range hdr.slopes {
		if !usableScaling(hdr.slopes[i], hdr.offsets[i]) {
			return fmt.Errorf("%w: unusable scaling for channel %q (slope %v, offset %v)",
				ErrCorrupt, hdr.names[i+1], hdr.slopes[i], hdr.offsets[i])
		}
	}
	return nil
}

func usableScaling(slope, offset float64) bool {
	return slope != 0 && isFinite(slope) && isFinite(offset)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func asFloat64(vals []float32) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
