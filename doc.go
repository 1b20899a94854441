// SPDX-License-Identifier: ISC
/*
 * Copyright (C) 2019 Gunnstein T. Frøseth <gunnstein@mailbox.org>.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 */

// Package fastlib decodes binary output files (.outb) produced by the NREL
// FAST family of wind turbine simulators, including OpenFAST.
//
// Three format variants are supported: quantized data with a stored time
// channel (FileIDWithTime), quantized data with a uniform time step
// (FileIDWithoutTime), and unquantized float64 data (FileIDNoCompressWithoutTime).
// Quantized variants store each channel as int16 codes together with a
// per-channel slope and offset; decoding recovers physical values as
// (code - offset) / slope.
//
// A decoded file is exposed as a Dataset: a shared time sequence plus one
// named, unit-tagged Channel per output column.
//
//	ds, err := fastlib.Load("5MW_Land_DLL_WTurb.outb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	ch, err := ds.Channel("GenPwr")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(ch.Label(), ch.Mean(), ch.Max())
//
// Decoding is strict: truncated input, an unrecognized format identifier,
// and unusable quantization parameters are reported through the sentinel
// errors ErrTruncated, ErrUnsupportedFormat and ErrCorrupt.
package fastlib
