// SPDX-License-Identifier: ISC
/*
 * Copyright (C) 2019 Gunnstein T. Frøseth <gunnstein@mailbox.org>.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 */

package fastlib

import "strconv"

// FileID identifies the on-disk encoding variant of a FAST binary output
// file. It is stored as the first field of the file and determines how the
// time column and the channel values are encoded.
type FileID int16

const (
	// FileIDWithTime stores the time column as quantized int32 values and
	// channel data as quantized int16 values.
	FileIDWithTime FileID = 1
	// FileIDWithoutTime stores no time column; time is reconstructed from a
	// start value and a fixed increment. Channel data is quantized int16.
	FileIDWithoutTime FileID = 2
	// FileIDNoCompressWithoutTime stores channel data as plain float64
	// values with reconstructed time and no quantization.
	FileIDNoCompressWithoutTime FileID = 3
)

// Number of bytes per channel name and unit field in the file header.
const (
	lenName = 10
	lenUnit = 10
)

// valid reports whether id is one of the known format variants.
func (id FileID) valid() bool {
	switch id {
	case FileIDWithTime, FileIDWithoutTime, FileIDNoCompressWithoutTime:
		return true
	}
	return false
}

// withTime reports whether the file stores an explicit time column.
func (id FileID) withTime() bool {
	return id == FileIDWithTime
}

// quantized reports whether channel values are stored as scaled integers.
func (id FileID) quantized() bool {
	return id != FileIDNoCompressWithoutTime
}

// String returns the name the FAST documentation uses for the variant.
func (id FileID) String() string {
	switch id {
	case FileIDWithTime:
		return "WithTime"
	case FileIDWithoutTime:
		return "WithoutTime"
	case FileIDNoCompressWithoutTime:
		return "NoCompressWithoutTime"
	}
	return "FileID(" + strconv.Itoa(int(id)) + ")"
}

// header holds the decoded file header, common to all format variants.
type header struct {
	fileID      FileID
	numChannels int // output channels, time column excluded
	numRecords  int // time steps

	// Time column quantization parameters (FileIDWithTime only).
	timeSlope  float64
	timeOffset float64

	// Time reconstruction parameters (the other variants).
	timeStart float64
	timeStep  float64

	// Per-channel quantization parameters, empty for the no-compress
	// variant. A channel's slope and offset never vary across records.
	slopes  []float64
	offsets []float64

	names       []string // numChannels+1 entries, index 0 is the time column
	units       []string // same length and order as names
	description string   // stored verbatim, never trimmed
}
