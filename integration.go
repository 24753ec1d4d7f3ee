// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/guipaint/painter"
	"github.com/gogpu/wgpu/hal"
)

// defaultFrameTime is the predicted frame duration before two frames have
// been run.
const defaultFrameTime = 1.0 / 60.0

// Integration drives one GUI context in one window.
//
// Its lifecycle is Ready, then any number of Run/Paint cycles, then
// Destroyed. It is NOT safe for concurrent use.
type Integration struct {
	ctx     gui.Context
	window  gpucontext.WindowProvider
	painter *painter.Painter
	opts    options

	input translator

	// Output of the last Run, consumed by Paint.
	meshes  []gui.ClippedMesh
	ppp     float32
	pending gui.TexturesDelta

	cursor    gui.CursorIcon
	cursorSet bool

	start     time.Time
	lastFrame time.Time
	stats     painter.FrameStats
	destroyed bool
}

// New creates an Integration on the device of provider.
//
// The provider must expose HalDevice() any and HalQueue() any returning a
// hal.Device and hal.Queue, as gogpu.App.GPUContextProvider() does.
func New(provider any, window gpucontext.WindowProvider, ctx gui.Context, opts ...Option) (*Integration, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHALProvider
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is %T, not hal.Device", ErrNoHALProvider, hp.HalDevice())
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is %T, not hal.Queue", ErrNoHALProvider, hp.HalQueue())
	}
	return NewWithDevice(device, queue, window, ctx, opts...)
}

// NewWithDevice creates an Integration on an explicit device and queue.
func NewWithDevice(device hal.Device, queue hal.Queue, window gpucontext.WindowProvider, ctx gui.Context, opts ...Option) (*Integration, error) {
	if window == nil {
		return nil, ErrNilWindow
	}
	if ctx == nil {
		return nil, ErrNilContext
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := painter.New(device, queue, o.settings)
	if err != nil {
		return nil, fmt.Errorf("guipaint: create painter: %w", err)
	}

	now := o.clock()
	i := &Integration{
		ctx:     ctx,
		window:  window,
		painter: p,
		opts:    o,
		input:   newTranslator(),
		start:   now,
	}
	i.ppp = i.pixelsPerPoint()
	return i, nil
}

// Painter returns the painter, for registering user textures.
func (i *Integration) Painter() *painter.Painter { return i.painter }

// Stats returns the statistics of the last Paint.
func (i *Integration) Stats() painter.FrameStats { return i.stats }

// HandleEvent records a window event for the next Run. It returns true when
// the GUI wants exclusive use of the event, e.g. a click on a GUI window or
// typing into a text field.
func (i *Integration) HandleEvent(ev Event) bool {
	if i.destroyed {
		return false
	}
	t := &i.input

	switch ev := ev.(type) {
	case KeyEvent:
		t.key(ev, i.readClipboard)
		if translateKey(ev.Key) == gui.KeyTab {
			return true
		}
		return i.ctx.WantsKeyboardInput()

	case TextEvent:
		t.text(ev.Text)
		return i.ctx.WantsKeyboardInput()

	case MouseMoveEvent:
		t.pointerMoved(ev.X, ev.Y)
		return i.ctx.IsUsingPointer()

	case MouseButtonEvent:
		t.pointerButton(translateMouseButton(ev.Button), ev.X, ev.Y, ev.Pressed)
		return i.ctx.WantsPointerInput()

	case PointerEvent:
		return i.handlePointer(ev.PointerEvent)

	case ScrollEvent:
		t.scroll(ev)
		return i.ctx.WantsPointerInput()

	case CursorLeftEvent:
		t.push(gui.PointerGone{})
		return false

	case ResizeEvent:
		t.height = ev.Height
		return false

	case FocusEvent:
		t.focus(ev.Focused)
		return false

	case ScaleFactorEvent:
		t.scale = ev.Scale
		return false

	case IMEStartEvent:
		t.push(gui.CompositionStart{})
		return i.ctx.WantsKeyboardInput()

	case IMEUpdateEvent:
		t.push(gui.CompositionUpdate{Text: ev.State.CompositionText})
		return i.ctx.WantsKeyboardInput()

	case IMEEndEvent:
		t.push(gui.CompositionEnd{Text: ev.Text})
		return i.ctx.WantsKeyboardInput()
	}
	return false
}

func (i *Integration) handlePointer(ev gpucontext.PointerEvent) bool {
	t := &i.input
	if ev.Modifiers != 0 {
		t.modifiers = ev.Modifiers
	}

	switch ev.Type {
	case gpucontext.PointerDown, gpucontext.PointerUp:
		t.pointerButton(translatePointerButton(ev.Button), ev.X, ev.Y, ev.Type == gpucontext.PointerDown)
		return i.ctx.WantsPointerInput()
	case gpucontext.PointerMove, gpucontext.PointerEnter:
		t.pointerMoved(ev.X, ev.Y)
		return i.ctx.IsUsingPointer()
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		t.push(gui.PointerGone{})
	}
	return false
}

// Run runs the GUI for one frame. build is called exactly once to describe
// the UI. It returns true when the GUI asks for another frame right away.
//
// The meshes and texture updates produced are kept until the next Paint.
func (i *Integration) Run(build func(gui.Context)) (bool, error) {
	if i.destroyed {
		return false, ErrDestroyed
	}
	if build == nil {
		build = func(gui.Context) {}
	}

	raw := i.takeInput()
	out := i.ctx.Run(raw, build)

	i.handlePlatformOutput(out.Platform)

	ppp := out.PixelsPerPoint
	if ppp <= 0 {
		ppp = raw.PixelsPerPoint
	}
	i.ppp = ppp
	i.meshes = i.ctx.Tessellate(out.Shapes, ppp)
	i.pending.Append(out.Textures)

	if out.NeedsRepaint {
		i.window.RequestRedraw()
	}

	Logger().Debug("guipaint: frame run",
		"events", len(raw.Events),
		"shapes", len(out.Shapes),
		"meshes", len(i.meshes),
		"textures_set", len(out.Textures.Set),
		"textures_free", len(out.Textures.Free),
		"repaint", out.NeedsRepaint)
	return out.NeedsRepaint, nil
}

// Paint draws the result of the last Run into target.
//
// Pending texture updates are applied before drawing and pending frees
// after. They are consumed, so a second Paint redraws the same meshes
// without touching textures. A texture update that fails does not stop the
// others or the draw; its error is returned once the frame is painted.
func (i *Integration) Paint(target painter.Target) error {
	if i.destroyed {
		return ErrDestroyed
	}

	delta := i.pending.Take()
	defer i.painter.FreeTextures(delta)

	texErr := i.painter.ApplyTextures(delta)

	stats, err := i.painter.Paint(target, i.meshes, i.ppp)
	i.stats = stats
	if err != nil {
		return fmt.Errorf("guipaint: paint: %w", err)
	}
	if texErr != nil {
		return fmt.Errorf("guipaint: apply textures: %w", texErr)
	}
	return nil
}

// Destroy releases the painter and every texture it holds. Textures the
// GUI asked for but never painted are dropped. Destroy is idempotent.
func (i *Integration) Destroy() error {
	if i.destroyed {
		return nil
	}
	i.destroyed = true
	i.painter.Destroy()
	i.meshes = nil
	i.pending = gui.TexturesDelta{}
	return nil
}

// takeInput builds the RawInput for the next frame.
func (i *Integration) takeInput() gui.RawInput {
	w, h := i.window.Size()
	i.input.height = h

	now := i.opts.clock()
	dt := float32(defaultFrameTime)
	if !i.lastFrame.IsZero() {
		if d := now.Sub(i.lastFrame).Seconds(); d > 0 {
			dt = float32(d)
		}
	}
	i.lastFrame = now

	return gui.RawInput{
		ScreenRect:     gui.RectFromMinSize(gui.Pos2{}, gui.Vec2{X: float32(w), Y: float32(h)}),
		PixelsPerPoint: i.pixelsPerPoint(),
		MaxTextureSide: i.painter.MaxTextureSide(),
		Time:           now.Sub(i.start).Seconds(),
		PredictedDt:    dt,
		Modifiers:      i.input.guiModifiers(i.input.modifiers),
		Events:         i.input.take(),
		HasFocus:       i.input.hasFocus,
	}
}

// pixelsPerPoint returns the window scale, falling back to the last
// ScaleFactorEvent and then to 1.
func (i *Integration) pixelsPerPoint() float32 {
	if s := i.window.ScaleFactor(); s > 0 {
		return float32(s)
	}
	if i.input.scale > 0 {
		return float32(i.input.scale)
	}
	return 1
}
