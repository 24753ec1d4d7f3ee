// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gui defines the data that crosses the boundary between an
// immediate-mode GUI toolkit and the GPU painter.
//
// The toolkit owns layout, widget state and tessellation. Each frame it
// consumes a [RawInput] and produces a [FullOutput]: a list of clipped shapes,
// a [TexturesDelta] describing which textures to create, patch or free, and
// a repaint hint. The painter (package painter) only ever sees the types
// declared here, so any toolkit that implements [Context] can be painted.
//
// # Coordinates
//
// Geometry is expressed in logical points. Multiply by
// RawInput.PixelsPerPoint to get physical pixels. Vertex positions in a
// [Mesh] are points with the origin at the top-left corner of the screen.
//
// # Colors
//
// [Color32] is premultiplied sRGBA, 8 bits per channel. Texture pixels use
// the same convention.
package gui
