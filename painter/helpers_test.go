// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop HAL device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return openDev.Device, openDev.Queue, cleanup
}

// fakeTexture gives noop textures a distinct identity.
type fakeTexture struct {
	hal.Texture
	serial int
}

// fakeView gives noop views a distinct identity.
type fakeView struct {
	hal.TextureView
	serial int
}

type scissorCall struct{ x, y, w, h uint32 }

// recorder collects the calls made through the recording wrappers.
type recorder struct {
	texturesCreated   int
	texturesDestroyed int
	textureDescs      []hal.TextureDescriptor

	buffersCreated   int
	buffersDestroyed int
	viewsCreated     int
	viewsDestroyed   int
	samplersCreated  int
	samplersDest     int
	groupsCreated    int
	groupsDestroyed  int
	pipelines        int
	pipelinesDest    int
	fragmentEntries  []string

	writes     []textureWrite
	submits    int
	waitIdle   int
	freedCmds  int
	passes     []hal.RenderPassDescriptor
	scissors   []scissorCall
	draws      []uint32
	failBuffer bool
}

type textureWrite struct {
	tex    hal.Texture
	origin hal.Origin3D
	size   hal.Extent3D
	bytes  int
}

type recordingDevice struct {
	hal.Device
	rec *recorder
}

func (d *recordingDevice) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	raw, err := d.Device.CreateTexture(desc)
	if err != nil {
		return nil, err
	}
	d.rec.texturesCreated++
	d.rec.textureDescs = append(d.rec.textureDescs, *desc)
	return &fakeTexture{Texture: raw, serial: d.rec.texturesCreated}, nil
}

func (d *recordingDevice) DestroyTexture(t hal.Texture) {
	d.rec.texturesDestroyed++
	d.Device.DestroyTexture(t)
}

func (d *recordingDevice) CreateTextureView(t hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	v, err := d.Device.CreateTextureView(t, desc)
	if err != nil {
		return nil, err
	}
	d.rec.viewsCreated++
	return &fakeView{TextureView: v, serial: d.rec.viewsCreated}, nil
}

func (d *recordingDevice) DestroyTextureView(v hal.TextureView) {
	d.rec.viewsDestroyed++
	d.Device.DestroyTextureView(v)
}

func (d *recordingDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if d.rec.failBuffer && desc.Usage&gputypes.BufferUsageVertex != 0 {
		return nil, errFakeBuffer
	}
	d.rec.buffersCreated++
	return d.Device.CreateBuffer(desc)
}

func (d *recordingDevice) DestroyBuffer(b hal.Buffer) {
	d.rec.buffersDestroyed++
	d.Device.DestroyBuffer(b)
}

func (d *recordingDevice) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	d.rec.samplersCreated++
	return d.Device.CreateSampler(desc)
}

func (d *recordingDevice) DestroySampler(s hal.Sampler) {
	d.rec.samplersDest++
	d.Device.DestroySampler(s)
}

func (d *recordingDevice) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	d.rec.groupsCreated++
	return d.Device.CreateBindGroup(desc)
}

func (d *recordingDevice) DestroyBindGroup(g hal.BindGroup) {
	d.rec.groupsDestroyed++
	d.Device.DestroyBindGroup(g)
}

func (d *recordingDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	d.rec.pipelines++
	if desc.Fragment != nil {
		d.rec.fragmentEntries = append(d.rec.fragmentEntries, desc.Fragment.EntryPoint)
	}
	return d.Device.CreateRenderPipeline(desc)
}

func (d *recordingDevice) DestroyRenderPipeline(p hal.RenderPipeline) {
	d.rec.pipelinesDest++
	d.Device.DestroyRenderPipeline(p)
}

func (d *recordingDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	enc, err := d.Device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, err
	}
	return &recordingEncoder{CommandEncoder: enc, rec: d.rec}, nil
}

func (d *recordingDevice) FreeCommandBuffer(cb hal.CommandBuffer) {
	d.rec.freedCmds++
	d.Device.FreeCommandBuffer(cb)
}

func (d *recordingDevice) WaitIdle() error {
	d.rec.waitIdle++
	return d.Device.WaitIdle()
}

type recordingEncoder struct {
	hal.CommandEncoder
	rec *recorder
}

func (e *recordingEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	e.rec.passes = append(e.rec.passes, *desc)
	return &recordingPass{RenderPassEncoder: e.CommandEncoder.BeginRenderPass(desc), rec: e.rec}
}

type recordingPass struct {
	hal.RenderPassEncoder
	rec *recorder
}

func (p *recordingPass) SetScissorRect(x, y, w, h uint32) {
	p.rec.scissors = append(p.rec.scissors, scissorCall{x, y, w, h})
	p.RenderPassEncoder.SetScissorRect(x, y, w, h)
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.rec.draws = append(p.rec.draws, indexCount)
	p.RenderPassEncoder.DrawIndexed(indexCount, instanceCount, firstIndex, baseVertex, firstInstance)
}

type recordingQueue struct {
	hal.Queue
	rec *recorder
}

func (q *recordingQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	q.rec.writes = append(q.rec.writes, textureWrite{
		tex:    dst.Texture,
		origin: dst.Origin,
		size:   *size,
		bytes:  len(data),
	})
	return q.Queue.WriteTexture(dst, data, layout, size)
}

func (q *recordingQueue) Submit(cbs []hal.CommandBuffer) (uint64, error) {
	q.rec.submits++
	return q.Queue.Submit(cbs)
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errFakeBuffer = fakeError("out of memory")

// newRecordingDevice wraps a noop device and queue with call recorders.
func newRecordingDevice(t *testing.T) (*recordingDevice, *recordingQueue, *recorder) {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)
	rec := &recorder{}
	return &recordingDevice{Device: device, rec: rec}, &recordingQueue{Queue: queue, rec: rec}, rec
}

// newTestPainter creates a painter on recording wrappers.
func newTestPainter(t *testing.T, settings Settings) (*Painter, *recorder) {
	t.Helper()
	device, queue, rec := newRecordingDevice(t)
	p, err := New(device, queue, settings)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(p.Destroy)
	return p, rec
}

// testTarget returns an 800x600 target backed by a noop view.
func testTarget() Target {
	return Target{View: &noop.Resource{}, Width: 800, Height: 600}
}

// quadMesh returns a clipped two-triangle mesh over r.
func quadMesh(id gui.TextureID, r, clip gui.Rect) gui.ClippedMesh {
	m := gui.Mesh{TextureID: id}
	m.AddRectWithUV(r, gui.Rect{Max: gui.Pos2{X: 1, Y: 1}}, gui.White)
	return gui.ClippedMesh{ClipRect: clip, Mesh: m}
}

func rect(x0, y0, x1, y1 float32) gui.Rect {
	return gui.Rect{Min: gui.Pos2{X: x0, Y: y0}, Max: gui.Pos2{X: x1, Y: y1}}
}
