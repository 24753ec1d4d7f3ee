// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ColorImageFromImage converts img into a ColorImage. When either side
// exceeds maxSide the image is resampled down, keeping its aspect ratio, so
// that it fits the painter's texture limit. A maxSide <= 0 disables the
// limit.
func ColorImageFromImage(img image.Image, maxSide int) *ColorImage {
	src := img
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide > 0 && (w > maxSide || h > maxSide) {
		sw, sh := fitSize(w, h, maxSide)
		dst := image.NewRGBA(image.Rect(0, 0, sw, sh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		src = dst
		b = dst.Bounds()
		w, h = sw, sh
	}

	out := &ColorImage{Size: [2]int{w, h}, Pixels: make([]Color32, w*h)}
	if rgba, ok := src.(*image.RGBA); ok {
		// image.RGBA is already premultiplied sRGBA.
		for y := 0; y < h; y++ {
			row := rgba.Pix[y*rgba.Stride:]
			for x := 0; x < w; x++ {
				p := row[x*4 : x*4+4]
				out.Pixels[y*w+x] = Color32{p[0], p[1], p[2], p[3]}
			}
		}
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			out.Pixels[y*w+x] = RGBAUnmultiplied(c.R, c.G, c.B, c.A)
		}
	}
	return out
}

func fitSize(w, h, maxSide int) (int, int) {
	if w >= h {
		return maxSide, max(1, h*maxSide/w)
	}
	return max(1, w*maxSide/h), maxSide
}
