// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

import "math"

// Pos2 is a position in logical points.
type Pos2 struct {
	X, Y float32
}

// Vec2 is a displacement in logical points.
type Vec2 struct {
	X, Y float32
}

// Add returns p translated by v.
func (p Pos2) Add(v Vec2) Pos2 { return Pos2{p.X + v.X, p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Pos2) Sub(q Pos2) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Rect is an axis-aligned rectangle in logical points. Min is the top-left
// corner and Max the bottom-right corner.
type Rect struct {
	Min, Max Pos2
}

// Everything is a rectangle that contains every finite point. It is the clip
// rectangle of shapes that must never be clipped.
var Everything = Rect{
	Min: Pos2{-math.MaxFloat32, -math.MaxFloat32},
	Max: Pos2{math.MaxFloat32, math.MaxFloat32},
}

// RectFromMinSize builds a rectangle from its top-left corner and size.
func RectFromMinSize(origin Pos2, size Vec2) Rect {
	return Rect{Min: origin, Max: origin.Add(size)}
}

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{r.Width(), r.Height()} }

// IsPositive reports whether the rectangle has a strictly positive area.
func (r Rect) IsPositive() bool { return r.Max.X > r.Min.X && r.Max.Y > r.Min.Y }

// Contains reports whether p lies inside r. The max edge is exclusive.
func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersect returns the overlap of r and o. The result is not positive when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Pos2{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

// Shrink returns r inset by d on every side.
func (r Rect) Shrink(d float32) Rect {
	return Rect{
		Min: Pos2{r.Min.X + d, r.Min.Y + d},
		Max: Pos2{r.Max.X - d, r.Max.Y - d},
	}
}
