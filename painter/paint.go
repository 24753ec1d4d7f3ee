// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/wgpu/hal"
)

// Target is the surface a frame is painted into.
type Target struct {
	// View is the color attachment. Its format must match
	// Settings.TargetFormat.
	View hal.TextureView

	// Width and Height are the target size in physical pixels.
	Width, Height uint32

	// Clear, when set, clears the target before drawing. Otherwise the GUI
	// is composited over the existing content.
	Clear *gputypes.Color
}

// FrameStats counts what happened to the meshes of one Paint call.
type FrameStats struct {
	Meshes   int // meshes received
	Draws    int // meshes drawn
	Empty    int // meshes without vertices or indices
	Skipped  int // meshes whose texture was not cached
	Culled   int // meshes whose scissor had zero area
	Invalid  int // meshes rejected by validation
	Vertices int // vertices drawn
	Indices  int // indices drawn
}

// drawResources holds the transient GPU objects of one draw call.
type drawResources struct {
	vertBuf   hal.Buffer
	indexBuf  hal.Buffer
	view      hal.TextureView
	sampler   hal.Sampler
	bindGroup hal.BindGroup
}

func (r *drawResources) destroy(device hal.Device) {
	if r.bindGroup != nil {
		device.DestroyBindGroup(r.bindGroup)
	}
	if r.sampler != nil {
		device.DestroySampler(r.sampler)
	}
	if r.view != nil {
		device.DestroyTextureView(r.view)
	}
	if r.indexBuf != nil {
		device.DestroyBuffer(r.indexBuf)
	}
	if r.vertBuf != nil {
		device.DestroyBuffer(r.vertBuf)
	}
}

// frameResources holds every transient GPU object of one Paint call.
type frameResources struct {
	uniformBuf hal.Buffer
	draws      []*drawResources
}

func (r *frameResources) destroy(device hal.Device) {
	for _, d := range r.draws {
		d.destroy(device)
	}
	r.draws = nil
	if r.uniformBuf != nil {
		device.DestroyBuffer(r.uniformBuf)
		r.uniformBuf = nil
	}
}

// preparedDraw is a draw call ready to be recorded.
type preparedDraw struct {
	res        *drawResources
	scissor    Scissor
	indexCount uint32
}

// Paint draws meshes into target in list order, within a single render
// pass, and waits for the GPU to finish before returning.
//
// Meshes that are empty, reference an uncached texture, clip to nothing or
// fail validation are skipped and counted in the returned stats. Errors
// creating GPU objects abort the frame and are returned.
func (p *Painter) Paint(target Target, meshes []gui.ClippedMesh, pixelsPerPoint float32) (FrameStats, error) {
	var stats FrameStats
	if p.destroyed {
		return stats, ErrDestroyed
	}
	if target.View == nil || target.Width == 0 || target.Height == 0 {
		return stats, fmt.Errorf("%w: view=%v size=%dx%d",
			ErrInvalidTarget, target.View != nil, target.Width, target.Height)
	}
	if !(pixelsPerPoint > 0) || math.IsInf(float64(pixelsPerPoint), 0) {
		return stats, fmt.Errorf("%w: pixels per point %v", ErrInvalidTarget, pixelsPerPoint)
	}

	res := &frameResources{}
	defer res.destroy(p.device)

	uniformBuf, err := p.createAndUploadBuffer(p.label("uniform"),
		makeUniform(target.Width, target.Height, pixelsPerPoint),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return stats, err
	}
	res.uniformBuf = uniformBuf

	draws := make([]preparedDraw, 0, len(meshes))
	for i := range meshes {
		cm := &meshes[i]
		stats.Meshes++
		draw, ok, err := p.prepareDraw(cm, target, pixelsPerPoint, res, &stats)
		if err != nil {
			return stats, err
		}
		if ok {
			draws = append(draws, draw)
		}
	}

	if err := p.record(target, draws); err != nil {
		return stats, err
	}

	stats.Draws = len(draws)
	slogger().Debug("painter: frame",
		"meshes", stats.Meshes,
		"draws", stats.Draws,
		"skipped", stats.Skipped,
		"culled", stats.Culled,
		"vertices", stats.Vertices)
	return stats, nil
}

// prepareDraw creates the transient objects for one mesh. It returns false
// when the mesh is not drawn.
func (p *Painter) prepareDraw(cm *gui.ClippedMesh, target Target, ppp float32,
	res *frameResources, stats *FrameStats) (preparedDraw, bool, error) {
	mesh := &cm.Mesh
	if mesh.IsEmpty() {
		stats.Empty++
		return preparedDraw{}, false, nil
	}
	if p.settings.Validate && !mesh.IsValid() {
		stats.Invalid++
		slogger().Warn("painter: invalid mesh skipped",
			"texture", mesh.TextureID.String(),
			"vertices", len(mesh.Vertices),
			"indices", len(mesh.Indices))
		return preparedDraw{}, false, nil
	}
	tex, ok := p.textures.Lookup(mesh.TextureID)
	if !ok {
		stats.Skipped++
		slogger().Debug("painter: mesh texture not cached",
			"texture", mesh.TextureID.String())
		return preparedDraw{}, false, nil
	}
	scissor := ScissorRect(cm.ClipRect, ppp, target.Width, target.Height, p.settings.ScissorOrigin)
	if scissor.Empty() {
		stats.Culled++
		return preparedDraw{}, false, nil
	}

	d := &drawResources{}
	res.draws = append(res.draws, d)

	var err error
	d.vertBuf, err = p.createAndUploadBuffer(p.label("vertices"),
		encodeVertices(mesh.Vertices),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return preparedDraw{}, false, err
	}
	d.indexBuf, err = p.createAndUploadBuffer(p.label("indices"),
		encodeIndices(mesh.Indices),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return preparedDraw{}, false, err
	}

	d.view, err = p.device.CreateTextureView(tex.raw, &hal.TextureViewDescriptor{
		Label:         p.label("texture_view"),
		Format:        textureFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return preparedDraw{}, false, fmt.Errorf("painter: create texture view: %w", err)
	}

	d.sampler, err = p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        p.label("sampler"),
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
		LodMinClamp:  0,
		LodMaxClamp:  10,
	})
	if err != nil {
		return preparedDraw{}, false, fmt.Errorf("painter: create sampler: %w", err)
	}

	d.bindGroup, err = p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  p.label("bind_group"),
		Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: res.uniformBuf.NativeHandle(),
				Offset: 0,
				Size:   uniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: d.view.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: d.sampler.NativeHandle()}},
		},
	})
	if err != nil {
		return preparedDraw{}, false, fmt.Errorf("painter: create bind group: %w", err)
	}

	stats.Vertices += len(mesh.Vertices)
	stats.Indices += len(mesh.Indices)
	return preparedDraw{res: d, scissor: scissor, indexCount: uint32(len(mesh.Indices))}, true, nil
}

// record encodes one render pass over target, submits it and waits for the
// device to go idle.
func (p *Painter) record(target Target, draws []preparedDraw) error {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: p.label("encoder"),
	})
	if err != nil {
		return fmt.Errorf("painter: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(p.label("frame")); err != nil {
		return fmt.Errorf("painter: begin encoding: %w", err)
	}

	attachment := hal.RenderPassColorAttachment{
		View:    target.View,
		LoadOp:  gputypes.LoadOpLoad,
		StoreOp: gputypes.StoreOpStore,
	}
	if target.Clear != nil {
		attachment.LoadOp = gputypes.LoadOpClear
		attachment.ClearValue = *target.Clear
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label:            p.label("pass"),
		ColorAttachments: []hal.RenderPassColorAttachment{attachment},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetViewport(0, 0, float32(target.Width), float32(target.Height), 0, 1)
	for _, d := range draws {
		rp.SetScissorRect(d.scissor.X, d.scissor.Y, d.scissor.Width, d.scissor.Height)
		rp.SetBindGroup(0, d.res.bindGroup, nil)
		rp.SetVertexBuffer(0, d.res.vertBuf, 0)
		rp.SetIndexBuffer(d.res.indexBuf, gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(d.indexCount, 1, 0, 0, 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("painter: end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	if _, err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("painter: submit: %w", err)
	}
	// Transients are destroyed by the caller once the GPU is done with them.
	if err := p.device.WaitIdle(); err != nil {
		return fmt.Errorf("painter: wait idle: %w", err)
	}
	return nil
}

// createAndUploadBuffer creates a buffer sized to data and writes data
// into it.
func (p *Painter) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("painter: create %s: %w", label, err)
	}
	if err := p.queue.WriteBuffer(buf, 0, data); err != nil {
		p.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("painter: write %s: %w", label, err)
	}
	return buf, nil
}

// makeUniform packs the screen size in points followed by padding.
func makeUniform(width, height uint32, ppp float32) []byte {
	buf := make([]byte, uniformSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(float32(width)/ppp))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(float32(height)/ppp))
	return buf
}

// encodeVertices packs vertices into the 20-byte layout of vertexLayout.
func encodeVertices(vertices []gui.Vertex) []byte {
	buf := make([]byte, len(vertices)*vertexStride)
	for i, v := range vertices {
		off := i * vertexStride
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.Pos.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Pos.Y))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(v.UV.X))
		binary.LittleEndian.PutUint32(buf[off+12:], math.Float32bits(v.UV.Y))
		copy(buf[off+16:off+20], v.Color[:])
	}
	return buf
}

func encodeIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
