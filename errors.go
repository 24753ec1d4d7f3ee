// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import "errors"

// Common errors returned by Integration operations.
var (
	// ErrDestroyed is returned when operations are attempted after Destroy.
	ErrDestroyed = errors.New("guipaint: integration destroyed")

	// ErrNoHALProvider is returned when the provider passed to New does not
	// expose a HAL device and queue.
	ErrNoHALProvider = errors.New("guipaint: provider does not expose HAL types")

	// ErrNilWindow is returned when no window provider is given.
	ErrNilWindow = errors.New("guipaint: nil WindowProvider")

	// ErrNilContext is returned when no GUI context is given.
	ErrNilContext = errors.New("guipaint: nil gui.Context")
)
