// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glfwplatform adapts a GLFW window to the gpucontext event,
// window and platform interfaces consumed by guipaint.
//
// All methods must be called from the goroutine that owns the GLFW main
// thread, the same one that calls glfw.PollEvents.
package glfwplatform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

var (
	_ gpucontext.EventSource      = (*Window)(nil)
	_ gpucontext.WindowProvider   = (*Window)(nil)
	_ gpucontext.PlatformProvider = (*Window)(nil)
)

// Window wraps a *glfw.Window.
//
// Window implements gpucontext.EventSource, gpucontext.WindowProvider and
// gpucontext.PlatformProvider. Positions and sizes are reported in logical
// points on every platform.
type Window struct {
	gpucontext.NullPlatformProvider

	win *glfw.Window

	cursors map[glfw.StandardCursor]*glfw.Cursor
	hidden  bool
	redraw  bool

	keyPress     func(gpucontext.Key, gpucontext.Modifiers)
	keyRelease   func(gpucontext.Key, gpucontext.Modifiers)
	textInput    func(string)
	mouseMove    func(x, y float64)
	mousePress   func(gpucontext.MouseButton, float64, float64)
	mouseRelease func(gpucontext.MouseButton, float64, float64)
	scroll       func(dx, dy float64)
	resize       func(width, height int)
	focus        func(bool)
}

// New wraps win and installs its GLFW callbacks. Callbacks previously set
// on win are replaced.
func New(win *glfw.Window) *Window {
	w := &Window{
		win:     win,
		cursors: make(map[glfw.StandardCursor]*glfw.Cursor),
	}

	win.SetKeyCallback(w.onKey)
	win.SetCharCallback(w.onChar)
	win.SetCursorPosCallback(w.onCursorPos)
	win.SetMouseButtonCallback(w.onMouseButton)
	win.SetScrollCallback(w.onScroll)
	win.SetSizeCallback(w.onSize)
	win.SetFocusCallback(w.onFocus)
	win.SetRefreshCallback(func(*glfw.Window) { w.RequestRedraw() })
	return w
}

// GLFW returns the wrapped window.
func (w *Window) GLFW() *glfw.Window { return w.win }

// NeedsRedraw reports and clears a pending RequestRedraw.
func (w *Window) NeedsRedraw() bool {
	r := w.redraw
	w.redraw = false
	return r
}

// FramebufferSize returns the drawable size in physical pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// Size implements gpucontext.WindowProvider.
func (w *Window) Size() (int, int) {
	fw, fh := w.win.GetFramebufferSize()
	s := w.ScaleFactor()
	return int(float64(fw)/s + 0.5), int(float64(fh)/s + 0.5)
}

// ScaleFactor implements gpucontext.WindowProvider. It is the number of
// framebuffer pixels per logical point.
func (w *Window) ScaleFactor() float64 {
	sx, _ := w.win.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

// RequestRedraw implements gpucontext.WindowProvider. It wakes a loop
// blocked in glfw.WaitEvents.
func (w *Window) RequestRedraw() {
	w.redraw = true
	glfw.PostEmptyEvent()
}

// ClipboardRead implements gpucontext.PlatformProvider.
func (w *Window) ClipboardRead() (string, error) {
	return glfw.GetClipboardString(), nil
}

// ClipboardWrite implements gpucontext.PlatformProvider.
func (w *Window) ClipboardWrite(text string) error {
	glfw.SetClipboardString(text)
	return nil
}

// SetCursor implements gpucontext.PlatformProvider.
func (w *Window) SetCursor(shape gpucontext.CursorShape) {
	if shape == gpucontext.CursorNone {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		w.hidden = true
		return
	}
	if w.hidden {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		w.hidden = false
	}

	std := standardCursor(shape)
	cur, ok := w.cursors[std]
	if !ok {
		cur = glfw.CreateStandardCursor(std)
		w.cursors[std] = cur
	}
	w.win.SetCursor(cur)
}

// Destroy releases the cursors created by SetCursor. It does not destroy
// the GLFW window.
func (w *Window) Destroy() {
	w.win.SetCursor(nil)
	for std, cur := range w.cursors {
		cur.Destroy()
		delete(w.cursors, std)
	}
}

// EventSource registration.

func (w *Window) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers))   { w.keyPress = fn }
func (w *Window) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { w.keyRelease = fn }
func (w *Window) OnTextInput(fn func(string))                                { w.textInput = fn }
func (w *Window) OnMouseMove(fn func(x, y float64))                          { w.mouseMove = fn }

func (w *Window) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	w.mousePress = fn
}

func (w *Window) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	w.mouseRelease = fn
}

func (w *Window) OnScroll(fn func(dx, dy float64))    { w.scroll = fn }
func (w *Window) OnResize(fn func(width, height int)) { w.resize = fn }
func (w *Window) OnFocus(fn func(focused bool))       { w.focus = fn }

// GLFW 3.3 has no IME composition callbacks. Committed text still arrives
// through OnTextInput.

func (w *Window) OnIMECompositionStart(func())                     {}
func (w *Window) OnIMECompositionUpdate(func(gpucontext.IMEState)) {}
func (w *Window) OnIMECompositionEnd(func(string))                 {}

// GLFW callbacks.

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := Key(key)
	m := Modifiers(mods)
	switch action {
	case glfw.Press, glfw.Repeat:
		if w.keyPress != nil {
			w.keyPress(k, m)
		}
	case glfw.Release:
		if w.keyRelease != nil {
			w.keyRelease(k, m)
		}
	}
}

func (w *Window) onChar(_ *glfw.Window, char rune) {
	if w.textInput != nil {
		w.textInput(string(char))
	}
}

func (w *Window) onCursorPos(_ *glfw.Window, x, y float64) {
	if w.mouseMove != nil {
		px, py := w.toPoints(x, y)
		w.mouseMove(px, py)
	}
}

func (w *Window) onMouseButton(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b, ok := MouseButton(button)
	if !ok {
		return
	}
	x, y := w.toPoints(gw.GetCursorPos())
	switch action {
	case glfw.Press:
		if w.mousePress != nil {
			w.mousePress(b, x, y)
		}
	case glfw.Release:
		if w.mouseRelease != nil {
			w.mouseRelease(b, x, y)
		}
	}
}

func (w *Window) onScroll(_ *glfw.Window, xoff, yoff float64) {
	if w.scroll != nil {
		w.scroll(scrollDelta(xoff, yoff))
	}
}

func (w *Window) onSize(_ *glfw.Window, _, _ int) {
	if w.resize != nil {
		w.resize(w.Size())
	}
	w.RequestRedraw()
}

func (w *Window) onFocus(_ *glfw.Window, focused bool) {
	if w.focus != nil {
		w.focus(focused)
	}
}

// toPoints converts GLFW screen coordinates to logical points. Screen
// coordinates are points on macOS and pixels elsewhere.
func (w *Window) toPoints(x, y float64) (float64, float64) {
	ww, _ := w.win.GetSize()
	fw, _ := w.win.GetFramebufferSize()
	return scaleToPoints(x, y, ww, fw, w.ScaleFactor())
}

// scaleToPoints maps screen coordinates given the window width in screen
// coordinates, the framebuffer width in pixels and the content scale.
func scaleToPoints(x, y float64, screenW, pixelW int, scale float64) (float64, float64) {
	if screenW <= 0 || scale <= 0 {
		return x, y
	}
	k := float64(pixelW) / float64(screenW) / scale
	return x * k, y * k
}

// scrollDelta converts GLFW wheel offsets, where positive y is away from
// the user, to lines scrolled toward the end of the content.
func scrollDelta(xoff, yoff float64) (float64, float64) {
	return -xoff, -yoff
}
