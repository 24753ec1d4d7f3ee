// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/guipaint/painter"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// createNoopDevice creates a noop HAL device and queue for testing.
func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
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
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

// mockProvider exposes HAL objects the way gogpu's GPU context provider does.
type mockProvider struct {
	device any
	queue  any
}

func (m *mockProvider) HalDevice() any { return m.device }
func (m *mockProvider) HalQueue() any  { return m.queue }

// mockContext is a scripted gui.Context.
type mockContext struct {
	inputs  []gui.RawInput
	outputs []gui.FullOutput // returned in order, then zero values

	meshes        []gui.ClippedMesh
	tessellatePPP []float32

	wantsPointer  bool
	usingPointer  bool
	wantsKeyboard bool
}

func (m *mockContext) Run(input gui.RawInput, build func(gui.Context)) gui.FullOutput {
	m.inputs = append(m.inputs, input)
	build(m)
	if len(m.outputs) == 0 {
		return gui.FullOutput{}
	}
	out := m.outputs[0]
	m.outputs = m.outputs[1:]
	return out
}

func (m *mockContext) Tessellate(_ []gui.ClippedShape, ppp float32) []gui.ClippedMesh {
	m.tessellatePPP = append(m.tessellatePPP, ppp)
	return m.meshes
}

func (m *mockContext) WantsPointerInput() bool  { return m.wantsPointer }
func (m *mockContext) IsUsingPointer() bool     { return m.usingPointer }
func (m *mockContext) WantsKeyboardInput() bool { return m.wantsKeyboard }

func (m *mockContext) lastInput(t *testing.T) gui.RawInput {
	t.Helper()
	if len(m.inputs) == 0 {
		t.Fatal("Run was never called")
	}
	return m.inputs[len(m.inputs)-1]
}

// mockWindow implements gpucontext.WindowProvider.
type mockWindow struct {
	w, h    int
	scale   float64
	redraws int
}

func (m *mockWindow) Size() (int, int)     { return m.w, m.h }
func (m *mockWindow) ScaleFactor() float64 { return m.scale }
func (m *mockWindow) RequestRedraw()       { m.redraws++ }

// mockPlatform records clipboard and cursor requests.
type mockPlatform struct {
	gpucontext.NullPlatformProvider

	clipboard string
	readErr   error
	writeErr  error
	written   []string
	cursors   []gpucontext.CursorShape
}

func (m *mockPlatform) ClipboardRead() (string, error) { return m.clipboard, m.readErr }

func (m *mockPlatform) ClipboardWrite(text string) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, text)
	return nil
}

func (m *mockPlatform) SetCursor(c gpucontext.CursorShape) { m.cursors = append(m.cursors, c) }

type fakeError string

func (e fakeError) Error() string { return string(e) }

// fakeClock advances by step on every call.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// newTestIntegration creates an Integration on a noop device with an
// 800x600 window at scale 1.
func newTestIntegration(t *testing.T, ctx *mockContext, opts ...Option) (*Integration, *mockWindow) {
	t.Helper()
	device, queue := createNoopDevice(t)
	win := &mockWindow{w: 800, h: 600, scale: 1}
	integ, err := NewWithDevice(device, queue, win, ctx, opts...)
	if err != nil {
		t.Fatalf("NewWithDevice: %v", err)
	}
	t.Cleanup(func() { _ = integ.Destroy() })
	return integ, win
}

// quadMesh returns a clipped two-triangle mesh over r.
func quadMesh(id gui.TextureID, r gui.Rect) gui.ClippedMesh {
	m := gui.Mesh{TextureID: id}
	m.AddRectWithUV(r, gui.Rect{Max: gui.Pos2{X: 1, Y: 1}}, gui.White)
	return gui.ClippedMesh{ClipRect: gui.Everything, Mesh: m}
}

func rect(x0, y0, x1, y1 float32) gui.Rect {
	return gui.Rect{Min: gui.Pos2{X: x0, Y: y0}, Max: gui.Pos2{X: x1, Y: y1}}
}

// testTarget returns an 800x600 target backed by a noop view.
func testTarget() painter.Target {
	return painter.Target{View: &noop.Resource{}, Width: 800, Height: 600}
}
