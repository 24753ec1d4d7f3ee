// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

// Vertex is one corner of a GUI triangle.
type Vertex struct {
	// Pos is the position in logical points.
	Pos Pos2

	// UV is the normalized texture coordinate.
	UV Pos2

	// Color multiplies the sampled texel.
	Color Color32
}

// Mesh is an indexed triangle list that samples a single texture.
type Mesh struct {
	Indices   []uint32
	Vertices  []Vertex
	TextureID TextureID
}

// IsEmpty reports whether the mesh draws nothing.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 || len(m.Vertices) == 0
}

// IsValid reports whether the mesh is a well-formed triangle list: the index
// count is a multiple of three and every index refers to an existing vertex.
func (m *Mesh) IsValid() bool {
	if len(m.Indices)%3 != 0 {
		return false
	}
	n := uint32(len(m.Vertices)) //nolint:gosec // vertex count fits uint32 for any drawable mesh
	for _, idx := range m.Indices {
		if idx >= n {
			return false
		}
	}
	return true
}

// AddRectWithUV appends a quad covering rect that samples uv, tinted with
// color.
func (m *Mesh) AddRectWithUV(rect, uv Rect, color Color32) {
	base := uint32(len(m.Vertices)) //nolint:gosec // vertex count fits uint32
	m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+1, base+3)
	m.Vertices = append(m.Vertices,
		Vertex{Pos: rect.Min, UV: uv.Min, Color: color},
		Vertex{Pos: Pos2{rect.Max.X, rect.Min.Y}, UV: Pos2{uv.Max.X, uv.Min.Y}, Color: color},
		Vertex{Pos: Pos2{rect.Min.X, rect.Max.Y}, UV: Pos2{uv.Min.X, uv.Max.Y}, Color: color},
		Vertex{Pos: rect.Max, UV: uv.Max, Color: color},
	)
}

// ClippedMesh is a mesh restricted to a clip rectangle in logical points.
type ClippedMesh struct {
	ClipRect Rect
	Mesh     Mesh
}

// ClippedShape is an untessellated draw command. Shape is owned by the GUI
// toolkit and is opaque to everything outside its Context.Tessellate.
type ClippedShape struct {
	ClipRect Rect
	Shape    any
}
