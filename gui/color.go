// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

import "math"

// Color32 is a premultiplied sRGBA color with 8 bits per channel.
// The layout matches the vertex color attribute consumed by the painter.
type Color32 [4]uint8

// Common colors.
var (
	Transparent = Color32{0, 0, 0, 0}
	Black       = Color32{0, 0, 0, 255}
	White       = Color32{255, 255, 255, 255}
	Gray        = Color32{160, 160, 160, 255}
	DarkGray    = Color32{60, 60, 60, 255}
	LightBlue   = Color32{140, 180, 255, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color32 { return Color32{r, g, b, 255} }

// RGBAPremultiplied returns a color whose channels are already multiplied by
// alpha.
func RGBAPremultiplied(r, g, b, a uint8) Color32 { return Color32{r, g, b, a} }

// RGBAUnmultiplied converts a straight-alpha sRGBA color to Color32.
// Premultiplication happens in linear space so that blending in the shader
// stays correct.
func RGBAUnmultiplied(r, g, b, a uint8) Color32 {
	switch a {
	case 255:
		return Color32{r, g, b, 255}
	case 0:
		return Transparent
	}
	af := float32(a) / 255
	return Color32{
		gammaU8FromLinear(linearFromGammaU8(r) * af),
		gammaU8FromLinear(linearFromGammaU8(g) * af),
		gammaU8FromLinear(linearFromGammaU8(b) * af),
		a,
	}
}

// R returns the red channel.
func (c Color32) R() uint8 { return c[0] }

// G returns the green channel.
func (c Color32) G() uint8 { return c[1] }

// B returns the blue channel.
func (c Color32) B() uint8 { return c[2] }

// A returns the alpha channel.
func (c Color32) A() uint8 { return c[3] }

// Multiply scales every channel, alpha included, by factor in [0, 1].
func (c Color32) Multiply(factor float32) Color32 {
	return Color32{
		roundU8(float32(c[0]) * factor),
		roundU8(float32(c[1]) * factor),
		roundU8(float32(c[2]) * factor),
		roundU8(float32(c[3]) * factor),
	}
}

func linearFromGammaU8(s uint8) float32 {
	v := float64(s) / 255
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}

func gammaU8FromLinear(l float32) uint8 {
	v := float64(l)
	if v <= 0.0031308 {
		return roundU8(float32(v * 12.92 * 255))
	}
	return roundU8(float32((1.055*math.Pow(v, 1/2.4) - 0.055) * 255))
}

func roundU8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
