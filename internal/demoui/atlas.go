// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demoui

import (
	"image"
	"image/color"

	"github.com/gogpu/guipaint/gui"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas layout. Printable ASCII is rasterized from basicfont.Face7x13 into
// a grid of cells, and a block of full coverage in the bottom-right corner
// serves as the white texel for solid fills.
const (
	AtlasSize = 128

	glyphW  = 7
	glyphH  = 13
	cellW   = 8
	cellH   = 14
	columns = AtlasSize / cellW

	firstGlyph = ' '
	lastGlyph  = '~'

	whiteX    = AtlasSize - 4
	whiteY    = AtlasSize - 4
	whiteSize = 4
)

// buildAtlas rasterizes the glyph atlas.
func buildAtlas() *gui.AlphaImage {
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, AtlasSize, AtlasSize))

	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		x, y := glyphCell(r)
		d.Dot = fixed.P(x, y+face.Ascent)
		d.DrawString(string(r))
	}

	for y := whiteY; y < whiteY+whiteSize; y++ {
		for x := whiteX; x < whiteX+whiteSize; x++ {
			img.SetAlpha(x, y, color.Alpha{A: 0xff})
		}
	}
	return &gui.AlphaImage{Size: [2]int{AtlasSize, AtlasSize}, Pixels: img.Pix}
}

// glyphCell returns the top-left pixel of the cell holding r. Runes outside
// printable ASCII map to '?'.
func glyphCell(r rune) (x, y int) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	return (i % columns) * cellW, (i / columns) * cellH
}

// glyphUV returns the normalized atlas rectangle of r.
func glyphUV(r rune) gui.Rect {
	x, y := glyphCell(r)
	return uvRect(x, y, glyphW, glyphH)
}

// whiteUV samples the center of the white block so bilinear filtering
// never reaches a glyph.
func whiteUV() gui.Rect {
	c := float32(whiteX+whiteSize/2) / AtlasSize
	return gui.Rect{Min: gui.Pos2{X: c, Y: c}, Max: gui.Pos2{X: c, Y: c}}
}

func uvRect(x, y, w, h int) gui.Rect {
	return gui.Rect{
		Min: gui.Pos2{X: float32(x) / AtlasSize, Y: float32(y) / AtlasSize},
		Max: gui.Pos2{X: float32(x+w) / AtlasSize, Y: float32(y+h) / AtlasSize},
	}
}
