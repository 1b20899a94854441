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
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// cursor is a sequential little-endian reader over a fully loaded file
// buffer. Every read validates the remaining length before advancing and
// fails with ErrTruncated on overrun; a failed read never moves the offset
// and never returns a partial value.
type cursor struct {
	buf []byte
	off int
}

// take returns the next n bytes and advances the offset.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || len(c.buf)-c.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrTruncated, n, c.off, len(c.buf)-c.off)
	}
	b := c.buf[c.off : c.off+n]
	c.off += n
	return b, nil
}

// takeN returns the next n values of the given byte size. The count is
// bounded against the remaining buffer before the byte length is computed,
// so a header declaring an absurd count cannot overflow the multiplication.
func (c *cursor) takeN(n, size int) ([]byte, error) {
	if n < 0 || n > (len(c.buf)-c.off)/size {
		return nil, fmt.Errorf("%w: need %d values of %d bytes at offset %d, have %d bytes",
			ErrTruncated, n, size, c.off, len(c.buf)-c.off)
	}
	return c.take(n * size)
}

func (c *cursor) int16() (int16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b)), nil
}

func (c *cursor) int32() (int32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (c *cursor) float64() (float64, error) {
	b, err := c.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// int16s reads n consecutive int16 values.
func (c *cursor) int16s(n int) ([]int16, error) {
	b, err := c.takeN(n, 2)
	if err != nil {
		return nil, err
	}
	out := make([]int16, n)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return out, nil
}

// int32s reads n consecutive int32 values.
func (c *cursor) int32s(n int) ([]int32, error) {
	b, err := c.takeN(n, 4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out, nil
}

// float32s reads n consecutive float32 values.
func (c *cursor) float32s(n int) ([]float32, error) {
	b, err := c.takeN(n, 4)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return out, nil
}

// float64s reads n consecutive float64 values.
func (c *cursor) float64s(n int) ([]float64, error) {
	b, err := c.takeN(n, 8)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[8*i:]))
	}
	return out, nil
}

// fixedStrings reads count consecutive fixed-width text fields of the given
// byte width, each stripped of trailing space and NUL padding.
func (c *cursor) fixedStrings(count, width int) ([]string, error) {
	b, err := c.takeN(count, width)
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := range out {
		out[i] = strings.TrimRight(string(b[i*width:(i+1)*width]), " \x00")
	}
	return out, nil
}

// text reads an n-byte variable-length text field verbatim.
func (c *cursor) text(n int) (string, error) {
	b, err := c.take(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
