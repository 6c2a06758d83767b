// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wallbreak

import "errors"

var (
	// ErrClosed is returned by operations on a closed Wall.
	ErrClosed = errors.New("wallbreak: wall is closed")

	// ErrInvalidSize is returned when a wall dimension is not positive.
	ErrInvalidSize = errors.New("wallbreak: wall size must be positive")
)
