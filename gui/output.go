// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

// FullOutput is what the toolkit produces for one frame.
type FullOutput struct {
	// Platform carries requests for the windowing layer.
	Platform PlatformOutput

	// Textures must be applied by the painter: Set before painting this
	// frame, Free after.
	Textures TexturesDelta

	// Shapes are tessellated by Context.Tessellate.
	Shapes []ClippedShape

	// NeedsRepaint asks the host to run another frame right away instead of
	// waiting for input.
	NeedsRepaint bool

	// PixelsPerPoint is the scale the shapes were laid out for.
	PixelsPerPoint float32
}

// PlatformOutput holds the toolkit's requests to the windowing layer.
type PlatformOutput struct {
	// Cursor is the cursor icon to show.
	Cursor CursorIcon

	// CopiedText is put on the clipboard when non-empty.
	CopiedText string

	// OpenURL is a link the user clicked, or empty.
	OpenURL string
}

// CursorIcon is the shape of the mouse cursor.
type CursorIcon uint8

// Cursor icons.
const (
	CursorDefault CursorIcon = iota
	CursorNone
	CursorPointingHand
	CursorText
	CursorCrosshair
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorNotAllowed
	CursorWait
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeNeSw
	CursorResizeNwSe
)
