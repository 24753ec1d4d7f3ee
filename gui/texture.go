// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

import (
	"fmt"
	"math"
)

// TextureKind tells who allocated a TextureID.
type TextureKind uint8

const (
	// TextureManaged ids are allocated by the GUI toolkit and arrive through
	// TexturesDelta.
	TextureManaged TextureKind = iota

	// TextureUser ids are allocated by the host application through the
	// painter.
	TextureUser
)

// TextureID identifies a texture referenced by meshes.
type TextureID struct {
	Kind  TextureKind
	Value uint64
}

// FontTexture is the managed texture the toolkit uses for glyphs and for the
// white texel of solid fills.
var FontTexture = ManagedTexture(0)

// ManagedTexture returns a toolkit-managed texture id.
func ManagedTexture(v uint64) TextureID { return TextureID{Kind: TextureManaged, Value: v} }

// UserTexture returns a host-allocated texture id.
func UserTexture(v uint64) TextureID { return TextureID{Kind: TextureUser, Value: v} }

// String implements fmt.Stringer.
func (id TextureID) String() string {
	if id.Kind == TextureUser {
		return fmt.Sprintf("user:%d", id.Value)
	}
	return fmt.Sprintf("managed:%d", id.Value)
}

// ImageData is the pixel payload of an ImageDelta. It is either a
// *ColorImage or an *AlphaImage.
type ImageData interface {
	// Dims returns width and height in pixels.
	Dims() [2]int

	isImageData()
}

// ColorImage is an image of premultiplied sRGBA pixels in row-major order.
type ColorImage struct {
	Size   [2]int
	Pixels []Color32
}

// NewColorImage returns a width x height image filled with fill.
func NewColorImage(width, height int, fill Color32) *ColorImage {
	px := make([]Color32, width*height)
	for i := range px {
		px[i] = fill
	}
	return &ColorImage{Size: [2]int{width, height}, Pixels: px}
}

// Dims implements ImageData.
func (img *ColorImage) Dims() [2]int { return img.Size }

func (*ColorImage) isImageData() {}

// AlphaImage is a single-channel coverage image, typically a font atlas.
// Each byte is the linear coverage of the pixel.
type AlphaImage struct {
	Size   [2]int
	Pixels []uint8
}

// Dims implements ImageData.
func (img *AlphaImage) Dims() [2]int { return img.Size }

func (*AlphaImage) isImageData() {}

// SRGBAPixels converts coverage to premultiplied white. Coverage is raised
// to gamma before conversion; a gamma of 1 keeps it linear.
func (img *AlphaImage) SRGBAPixels(gamma float32) []Color32 {
	var lut [256]Color32
	for i := range lut {
		a := float32(math.Pow(float64(i)/255, float64(gamma)))
		g := gammaU8FromLinear(a)
		lut[i] = Color32{g, g, g, roundU8(a * 255)}
	}
	out := make([]Color32, len(img.Pixels))
	for i, c := range img.Pixels {
		out[i] = lut[c]
	}
	return out
}

// ImageDelta is a full replacement of a texture or a patch of a region of
// it.
type ImageDelta struct {
	Image ImageData

	// Pos is the top-left pixel of the patched region. A nil Pos replaces
	// the whole texture and sets its size to the image size.
	Pos *[2]int
}

// FullDelta returns a delta that replaces the whole texture.
func FullDelta(img ImageData) ImageDelta { return ImageDelta{Image: img} }

// PartialDelta returns a delta that patches the region starting at (x, y).
func PartialDelta(x, y int, img ImageData) ImageDelta {
	return ImageDelta{Image: img, Pos: &[2]int{x, y}}
}

// IsWhole reports whether the delta replaces the whole texture.
func (d ImageDelta) IsWhole() bool { return d.Pos == nil }

// TextureSet pairs a texture id with the update to apply to it.
type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the per-frame diff of textures. Set entries are applied
// in order before painting; Free entries after.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

// IsEmpty reports whether the delta carries no work.
func (d *TexturesDelta) IsEmpty() bool { return len(d.Set) == 0 && len(d.Free) == 0 }

// Append moves the work of other to the end of d, preserving order.
func (d *TexturesDelta) Append(other TexturesDelta) {
	d.Set = append(d.Set, other.Set...)
	d.Free = append(d.Free, other.Free...)
}

// Take returns the accumulated delta and leaves d empty.
func (d *TexturesDelta) Take() TexturesDelta {
	out := *d
	*d = TexturesDelta{}
	return out
}
