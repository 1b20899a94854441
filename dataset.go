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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Dataset holds the decoded contents of a FAST binary output file: a shared
// time sequence plus one named, unit-tagged Channel per output column.
//
// A Dataset is immutable once decoded, except for per-channel label
// overrides. Distinct channels may be read from multiple goroutines; a
// channel's label must not be changed concurrently with reads of that same
// channel.
type Dataset struct {
	fileID      FileID
	description string
	timeUnit    string
	ts          []float64
	channels    []*Channel
	byName      map[string]int
}

// newDataset wraps a decoded header and body. The matrix is column-major;
// each channel borrows its column as a subslice and never copies it.
func newDataset(hdr *header, ts, matrix []float64) *Dataset {
	nt := hdr.numRecords
	ds := &Dataset{
		fileID:      hdr.fileID,
		description: hdr.description,
		timeUnit:    hdr.units[0],
		ts:          ts,
		channels:    make([]*Channel, hdr.numChannels),
		byName:      make(map[string]int, hdr.numChannels),
	}
	for j := range ds.channels {
		ds.channels[j] = &Channel{
			name:   hdr.names[j+1],
			unit:   hdr.units[j+1],
			values: matrix[j*nt : (j+1)*nt],
		}
		ds.byName[ds.channels[j].name] = j
	}
	return ds
}

// Format returns the file format variant the dataset was decoded from.
func (ds *Dataset) Format() FileID {
	return ds.fileID
}

// Description returns the description text stored in the file header.
func (ds *Dataset) Description() string {
	return ds.description
}

// Time returns the shared time sequence, one value per record. The slice
// aliases the dataset's storage and must not be modified.
func (ds *Dataset) Time() []float64 {
	return ds.ts
}

// TimeUnit returns the unit of the time column, typically "(s)".
func (ds *Dataset) TimeUnit() string {
	return ds.timeUnit
}

// Names returns the channel names in file order, excluding the time column.
func (ds *Dataset) Names() []string {
	names := make([]string, len(ds.channels))
	for i, ch := range ds.channels {
		names[i] = ch.name
	}
	return names
}

// Channel returns the channel with exactly the given name. A failed lookup
// returns ErrUnknownChannel and leaves the dataset untouched.
func (ds *Dataset) Channel(name string) (*Channel, error) {
	j, ok := ds.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ds.channels[j], nil
}

// Channel is a named, unit-tagged read-only view over one column of a
// dataset. It borrows the dataset's storage, so it stays valid exactly as
// long as the dataset it came from.
type Channel struct {
	name   string
	unit   string
	values []float64
	label  *string // display label override, nil means derived
}

// Name returns the channel name, for example "Azimuth".
func (ch *Channel) Name() string {
	return ch.name
}

// Unit returns the channel unit, for example "(deg)".
func (ch *Channel) Unit() string {
	return ch.unit
}

// Values returns the channel's samples in record order. The slice aliases
// the dataset's storage and must not be modified.
func (ch *Channel) Values() []float64 {
	return ch.values
}

// Len returns the number of records in the channel.
func (ch *Channel) Len() int {
	return len(ch.values)
}

// Label returns the display label: the override if one is set, otherwise
// the channel name followed by its unit.
func (ch *Channel) Label() string {
	if ch.label != nil {
		return *ch.label
	}
	return ch.name + " " + ch.unit
}

// SetLabel overrides the display label.
func (ch *Channel) SetLabel(label string) {
	ch.label = &label
}

// ResetLabel clears a label override, reverting Label to the derived form.
func (ch *Channel) ResetLabel() {
	ch.label = nil
}

// Mean returns the arithmetic mean of the channel, or NaN if it is empty.
func (ch *Channel) Mean() float64 {
	if len(ch.values) == 0 {
		return math.NaN()
	}
	return stat.Mean(ch.values, nil)
}

// Std returns the population standard deviation of the channel, or NaN if
// it is empty.
func (ch *Channel) Std() float64 {
	if len(ch.values) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(ch.values, nil)
}

// Min returns the smallest value in the channel, or NaN if it is empty.
func (ch *Channel) Min() float64 {
	if len(ch.values) == 0 {
		return math.NaN()
	}
	return floats.Min(ch.values)
}

// Max returns the largest value in the channel, or NaN if it is empty.
func (ch *Channel) Max() float64 {
	if len(ch.values) == 0 {
		return math.NaN()
	}
	return floats.Max(ch.values)
}
