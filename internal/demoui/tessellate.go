// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demoui

import (
	"math"

	"github.com/gogpu/guipaint/gui"
)

// rectShape is a filled rectangle with an optional one point border. A zero
// Texture with a zero UV samples the atlas white texel.
type rectShape struct {
	Rect    gui.Rect
	Fill    gui.Color32
	Stroke  gui.Color32
	Texture gui.TextureID
	UV      gui.Rect
}

// textShape is a line of text whose top-left corner is at Pos.
type textShape struct {
	Pos   gui.Pos2
	Text  string
	Color gui.Color32
}

// Tessellate implements gui.Context. Consecutive shapes that share a clip
// rectangle and a texture are merged into one mesh.
func (c *Context) Tessellate(shapes []gui.ClippedShape, pixelsPerPoint float32) []gui.ClippedMesh {
	if pixelsPerPoint <= 0 {
		pixelsPerPoint = 1
	}
	t := tessellator{ppp: pixelsPerPoint}
	for _, s := range shapes {
		switch shape := s.Shape.(type) {
		case rectShape:
			t.rect(s.ClipRect, shape)
		case textShape:
			t.text(s.ClipRect, shape)
		}
	}
	return t.meshes
}

type tessellator struct {
	ppp    float32
	meshes []gui.ClippedMesh
}

// mesh returns the mesh to append to, starting a new one when the clip or
// texture changes.
func (t *tessellator) mesh(clip gui.Rect, tex gui.TextureID) *gui.Mesh {
	if n := len(t.meshes); n > 0 {
		last := &t.meshes[n-1]
		if last.ClipRect == clip && last.Mesh.TextureID == tex {
			return &last.Mesh
		}
	}
	t.meshes = append(t.meshes, gui.ClippedMesh{ClipRect: clip, Mesh: gui.Mesh{TextureID: tex}})
	return &t.meshes[len(t.meshes)-1].Mesh
}

func (t *tessellator) rect(clip gui.Rect, s rectShape) {
	if !s.Rect.IsPositive() {
		return
	}
	r := t.snapRect(s.Rect)
	uv := s.UV
	if uv == (gui.Rect{}) {
		uv = whiteUV()
	}
	if s.Fill.A() != 0 {
		t.mesh(clip, s.Texture).AddRectWithUV(r, uv, s.Fill)
	}
	if s.Stroke.A() != 0 {
		m := t.mesh(clip, gui.FontTexture)
		w := 1 / t.ppp
		white := whiteUV()
		m.AddRectWithUV(gui.Rect{Min: r.Min, Max: gui.Pos2{X: r.Max.X, Y: r.Min.Y + w}}, white, s.Stroke)
		m.AddRectWithUV(gui.Rect{Min: gui.Pos2{X: r.Min.X, Y: r.Max.Y - w}, Max: r.Max}, white, s.Stroke)
		m.AddRectWithUV(gui.Rect{Min: r.Min, Max: gui.Pos2{X: r.Min.X + w, Y: r.Max.Y}}, white, s.Stroke)
		m.AddRectWithUV(gui.Rect{Min: gui.Pos2{X: r.Max.X - w, Y: r.Min.Y}, Max: r.Max}, white, s.Stroke)
	}
}

func (t *tessellator) text(clip gui.Rect, s textShape) {
	if s.Text == "" || s.Color.A() == 0 {
		return
	}
	m := t.mesh(clip, gui.FontTexture)
	pos := gui.Pos2{X: t.snap(s.Pos.X), Y: t.snap(s.Pos.Y)}
	for _, r := range s.Text {
		if r != ' ' {
			quad := gui.RectFromMinSize(pos, gui.Vec2{X: glyphW, Y: glyphH})
			m.AddRectWithUV(quad, glyphUV(r), s.Color)
		}
		pos.X += glyphW
	}
}

// snap rounds a coordinate to the physical pixel grid.
func (t *tessellator) snap(v float32) float32 {
	return float32(math.Round(float64(v*t.ppp))) / t.ppp
}

func (t *tessellator) snapRect(r gui.Rect) gui.Rect {
	return gui.Rect{
		Min: gui.Pos2{X: t.snap(r.Min.X), Y: t.snap(r.Min.Y)},
		Max: gui.Pos2{X: t.snap(r.Max.X), Y: t.snap(r.Max.Y)},
	}
}
