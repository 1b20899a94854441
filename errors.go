// SPDX-License-Identifier: ISC
/*
 * Copyright (C) 2019 Gunnstein T. Frøseth <gunnstein@mailbox.org>.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 */

package fastlib

import "errors"

// Errors reported while decoding a file or looking up a channel. Decode
// errors are wrapped with context; test for them with errors.Is.
var (
	// ErrTruncated is returned when the input ends before a field or record
	// that the header declares.
	ErrTruncated = errors.New("truncated input")

	// ErrUnsupportedFormat is returned when the format identifier is not one
	// of the known file format variants.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrCorrupt is returned when the file contents are internally
	// inconsistent, such as a negative channel count or a zero quantization
	// slope.
	ErrCorrupt = errors.New("corrupt file")

	// ErrUnknownChannel is returned by channel lookups for names not present
	// in the dataset.
	ErrUnknownChannel = errors.New("unknown channel")
)
