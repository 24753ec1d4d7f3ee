// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"math"

	"github.com/gogpu/guipaint/gui"
)

// Origin is the corner the target's scissor coordinates are measured from.
type Origin uint8

const (
	// OriginTopLeft is the WebGPU, Vulkan, Metal and D3D convention.
	OriginTopLeft Origin = iota

	// OriginBottomLeft is the OpenGL convention. Y is flipped.
	OriginBottomLeft
)

// String implements fmt.Stringer.
func (o Origin) String() string {
	if o == OriginBottomLeft {
		return "bottom-left"
	}
	return "top-left"
}

// Scissor is a scissor rectangle in physical pixels.
type Scissor struct {
	X, Y          uint32
	Width, Height uint32
}

// Empty reports whether the scissor discards every fragment.
func (s Scissor) Empty() bool { return s.Width == 0 || s.Height == 0 }

// ScissorRect converts a clip rectangle in points to a scissor rectangle in
// pixels of a width x height target.
//
// The clip is scaled by pixelsPerPoint, then min is clamped to [0, size] and
// max to [min, size] so the result is never negative and never exceeds the
// target. Edges are rounded to the nearest pixel. With OriginBottomLeft the
// Y coordinate is flipped: y = height - maxY.
func ScissorRect(clip gui.Rect, pixelsPerPoint float32, width, height uint32, origin Origin) Scissor {
	ppp := float64(pixelsPerPoint)
	w, h := float64(width), float64(height)

	minX := clampf(float64(clip.Min.X)*ppp, 0, w)
	minY := clampf(float64(clip.Min.Y)*ppp, 0, h)
	maxX := clampf(float64(clip.Max.X)*ppp, minX, w)
	maxY := clampf(float64(clip.Max.Y)*ppp, minY, h)

	x0 := uint32(math.Round(minX))
	y0 := uint32(math.Round(minY))
	x1 := uint32(math.Round(maxX))
	y1 := uint32(math.Round(maxY))

	s := Scissor{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
	if origin == OriginBottomLeft {
		s.Y = height - y1
	}
	return s
}

func clampf(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
