// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

import (
	"image"
	"image/color"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		want     Rect
		positive bool
	}{
		{
			name:     "overlap",
			a:        Rect{Pos2{0, 0}, Pos2{10, 10}},
			b:        Rect{Pos2{5, 5}, Pos2{20, 20}},
			want:     Rect{Pos2{5, 5}, Pos2{10, 10}},
			positive: true,
		},
		{
			name:     "disjoint",
			a:        Rect{Pos2{0, 0}, Pos2{10, 10}},
			b:        Rect{Pos2{20, 20}, Pos2{30, 30}},
			want:     Rect{Pos2{20, 20}, Pos2{10, 10}},
			positive: false,
		},
		{
			name:     "everything",
			a:        Everything,
			b:        Rect{Pos2{1, 2}, Pos2{3, 4}},
			want:     Rect{Pos2{1, 2}, Pos2{3, 4}},
			positive: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got.IsPositive() != tt.positive {
				t.Errorf("IsPositive = %v, want %v", got.IsPositive(), tt.positive)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromMinSize(Pos2{10, 10}, Vec2{20, 10})
	if !r.Contains(Pos2{10, 10}) {
		t.Error("min corner should be inside")
	}
	if r.Contains(Pos2{30, 20}) {
		t.Error("max corner should be outside")
	}
	if r.Width() != 20 || r.Height() != 10 {
		t.Errorf("size = %vx%v, want 20x10", r.Width(), r.Height())
	}
}

func TestMeshIsValid(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
		want bool
	}{
		{"empty", Mesh{}, true},
		{"triangle", Mesh{Indices: []uint32{0, 1, 2}, Vertices: make([]Vertex, 3)}, true},
		{"index out of range", Mesh{Indices: []uint32{0, 1, 3}, Vertices: make([]Vertex, 3)}, false},
		{"partial triangle", Mesh{Indices: []uint32{0, 1}, Vertices: make([]Vertex, 3)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeshAddRectWithUV(t *testing.T) {
	var m Mesh
	m.AddRectWithUV(Rect{Pos2{0, 0}, Pos2{4, 4}}, Rect{Pos2{0, 0}, Pos2{1, 1}}, White)
	m.AddRectWithUV(Rect{Pos2{4, 4}, Pos2{8, 8}}, Rect{Pos2{0, 0}, Pos2{1, 1}}, Black)
	if len(m.Vertices) != 8 || len(m.Indices) != 12 {
		t.Fatalf("got %d vertices, %d indices; want 8, 12", len(m.Vertices), len(m.Indices))
	}
	if !m.IsValid() {
		t.Error("mesh built from rects must be valid")
	}
	if m.Indices[6] != 4 {
		t.Errorf("second quad base index = %d, want 4", m.Indices[6])
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty mesh")
	}
}

func TestTexturesDeltaAppendAndTake(t *testing.T) {
	var pending TexturesDelta
	pending.Append(TexturesDelta{
		Set:  []TextureSet{{ID: ManagedTexture(1), Delta: FullDelta(NewColorImage(2, 2, White))}},
		Free: []TextureID{ManagedTexture(7)},
	})
	pending.Append(TexturesDelta{
		Set: []TextureSet{{ID: ManagedTexture(1), Delta: PartialDelta(1, 1, NewColorImage(1, 1, Black))}},
	})

	if len(pending.Set) != 2 || len(pending.Free) != 1 {
		t.Fatalf("got %d sets, %d frees; want 2, 1", len(pending.Set), len(pending.Free))
	}
	if !pending.Set[0].Delta.IsWhole() || pending.Set[1].Delta.IsWhole() {
		t.Error("append must preserve order of set entries")
	}

	taken := pending.Take()
	if !pending.IsEmpty() {
		t.Error("Take must leave the delta empty")
	}
	if taken.IsEmpty() {
		t.Error("taken delta must carry the work")
	}
}

func TestTextureIDString(t *testing.T) {
	if got := ManagedTexture(3).String(); got != "managed:3" {
		t.Errorf("ManagedTexture(3) = %q", got)
	}
	if got := UserTexture(1).String(); got != "user:1" {
		t.Errorf("UserTexture(1) = %q", got)
	}
	if FontTexture != ManagedTexture(0) {
		t.Error("FontTexture must be managed texture 0")
	}
}

func TestAlphaImageSRGBAPixels(t *testing.T) {
	img := &AlphaImage{Size: [2]int{3, 1}, Pixels: []uint8{0, 128, 255}}
	px := img.SRGBAPixels(1)
	if len(px) != 3 {
		t.Fatalf("len = %d, want 3", len(px))
	}
	if px[0] != Transparent {
		t.Errorf("zero coverage = %v, want transparent", px[0])
	}
	if px[2] != White {
		t.Errorf("full coverage = %v, want white", px[2])
	}
	if px[1].A() != 128 {
		t.Errorf("half coverage alpha = %d, want 128", px[1].A())
	}
	// Premultiplied white in sRGB is brighter than its linear alpha.
	if px[1].R() <= px[1].A() {
		t.Errorf("half coverage rgb %d should exceed alpha %d", px[1].R(), px[1].A())
	}
}

func TestRGBAUnmultiplied(t *testing.T) {
	if got := RGBAUnmultiplied(10, 20, 30, 255); got != RGB(10, 20, 30) {
		t.Errorf("opaque = %v", got)
	}
	if got := RGBAUnmultiplied(10, 20, 30, 0); got != Transparent {
		t.Errorf("transparent = %v", got)
	}
	got := RGBAUnmultiplied(255, 255, 255, 128)
	if got.A() != 128 || got.R() < 128 {
		t.Errorf("half white = %v", got)
	}
}

func TestColorImageFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	img := ColorImageFromImage(src, 0)
	if img.Size != [2]int{4, 2} {
		t.Fatalf("size = %v, want [4 2]", img.Size)
	}
	if img.Pixels[5] != RGB(255, 0, 0) {
		t.Errorf("pixel = %v, want red", img.Pixels[5])
	}
}

func TestColorImageFromImageDownscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 400, 100))
	img := ColorImageFromImage(src, 100)
	if img.Size != [2]int{100, 25} {
		t.Errorf("size = %v, want [100 25]", img.Size)
	}
	if len(img.Pixels) != 100*25 {
		t.Errorf("pixel count = %d", len(img.Pixels))
	}
}
