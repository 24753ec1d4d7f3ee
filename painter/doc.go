// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package painter draws GUI meshes with the gogpu HAL.
//
// A [Painter] owns one render pipeline, created in [New] and released in
// [Painter.Destroy], and a [TextureCache] that maps GUI texture ids to GPU
// textures. Each call to [Painter.Paint] records a single render pass over
// the caller's target view:
//
//	for each clipped mesh, in order:
//	    skip if empty or if its texture is not cached
//	    upload vertex + index buffers
//	    set scissor from the clip rect
//	    bind uniform + texture view + sampler
//	    DrawIndexed over all indices
//
// Per-draw buffers, samplers, views and bind groups live only for the frame.
// They are destroyed after the submission completes, on every exit path.
//
// # Blending
//
// Colors are premultiplied. The pipeline blends
//
//	color = src * 1 + dst * (1 - src.a)
//	alpha = src * (1 - dst.a) + dst * 1
//
// so the target's alpha accumulates coverage correctly when the GUI is
// composited over other content.
//
// # Vertex layout
//
// One interleaved buffer, 20 bytes per vertex:
//
//	offset 0   position  float32x2  (points)
//	offset 8   texcoord  float32x2
//	offset 16  color     unorm8x4   (premultiplied sRGBA)
//
// # Thread Safety
//
// A Painter is NOT safe for concurrent use. Drive it from the goroutine that
// owns the GPU device.
package painter
