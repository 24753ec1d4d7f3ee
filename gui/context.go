// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

// Context is the retained state of an immediate-mode GUI toolkit.
//
// A Context is driven from a single goroutine. The frame coordinator calls
// Run once per frame and Tessellate on the shapes it returns.
type Context interface {
	// Run processes input and calls build exactly once to describe the UI
	// for this frame. build receives the context itself.
	Run(input RawInput, build func(Context)) FullOutput

	// Tessellate converts shapes into triangle meshes for the painter.
	Tessellate(shapes []ClippedShape, pixelsPerPoint float32) []ClippedMesh

	// WantsPointerInput reports whether the pointer is over a GUI area or
	// the GUI is being interacted with.
	WantsPointerInput() bool

	// IsUsingPointer reports whether a GUI drag or press is in progress.
	IsUsingPointer() bool

	// WantsKeyboardInput reports whether a GUI widget has keyboard focus.
	WantsKeyboardInput() bool
}
