// SPDX-License-Identifier: ISC
/*
 * Copyright (C) 2019 Gunnstein T. Frøseth <gunnstein@mailbox.org>.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 */

package fastlib_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/Gunnstein/fastlib"
)

// outbFile describes a FAST binary output file for tests. encode renders it
// in the on-disk layout so decoder tests can build inputs field by field.
type outbFile struct {
	id    fastlib.FileID
	desc  string
	names []string // including the time column at index 0
	units []string

	// FileIDWithTime
	timeSlope  float64
	timeOffset float64
	packedTime []int32

	// FileIDWithoutTime and FileIDNoCompressWithoutTime
	timeStart float64
	timeStep  float64

	// Quantized variants
	slopes  []float32
	offsets []float32
	codes   []int16 // record-major

	// FileIDNoCompressWithoutTime
	values []float64 // record-major

	records int
}

func (f outbFile) encode() []byte {
	b := newBuilder()

	// Write the format identifier and dimensions.
	b.i16(int16(f.id))
	b.i32(int32(len(f.names) - 1))
	b.i32(int32(f.records))

	// Write the time encoding.
	if f.id == fastlib.FileIDWithTime {
		b.f64(f.timeSlope)
		b.f64(f.timeOffset)
	} else {
		b.f64(f.timeStart)
		b.f64(f.timeStep)
	}

	// Write the quantization tables.
	if f.id != fastlib.FileIDNoCompressWithoutTime {
		for _, s := range f.slopes {
			b.f32(s)
		}
		for _, o := range f.offsets {
			b.f32(o)
		}
	}

	// Write the description.
	b.i32(int32(len(f.desc)))
	b.raw([]byte(f.desc))

	// Write the channel name and unit tables.
	for _, name := range f.names {
		b.str(name, 10)
	}
	for _, unit := range f.units {
		b.str(unit, 10)
	}

	// Write the body.
	if f.id == fastlib.FileIDWithTime {
		for _, p := range f.packedTime {
			b.i32(p)
		}
	}
	if f.id == fastlib.FileIDNoCompressWithoutTime {
		for _, v := range f.values {
			b.f64(v)
		}
	} else {
		for _, c := range f.codes {
			b.i16(c)
		}
	}

	return b.bytes()
}

// builder appends little-endian fields to an in-memory file image.
type builder struct {
	buf bytes.Buffer
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) i16(v int16) {
	b.write(v)
}

func (b *builder) i32(v int32) {
	b.write(v)
}

func (b *builder) f32(v float32) {
	b.write(v)
}

func (b *builder) f64(v float64) {
	b.write(v)
}

// write appends v little-endian. Against a bytes.Buffer binary.Write can
// only fail for an unsupported operand type, so any error is a bug in the
// fixture itself.
func (b *builder) write(v any) {
	if err := binary.Write(&b.buf, binary.LittleEndian, v); err != nil {
		panic(err)
	}
}

func (b *builder) str(s string, width int) {
	b.buf.WriteString(fmt.Sprintf("%-*s", width, s))
}

func (b *builder) raw(p []byte) {
	b.buf.Write(p)
}

func (b *builder) bytes() []byte {
	return b.buf.Bytes()
}

// quantize packs physical values into int16 codes the way FAST writes them,
// so round-trip tests can compare against the original values.
func quantize(values []float64, slope, offset float32) []int16 {
	codes := make([]int16, len(values))
	for i, v := range values {
		codes[i] = int16(math.Round(v*float64(slope) + float64(offset)))
	}
	return codes
}
