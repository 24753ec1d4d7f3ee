// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import "github.com/gogpu/gpucontext"

// Event is a window event passed to Integration.HandleEvent. Positions are
// in logical points, as delivered by gpucontext event sources.
type Event interface {
	isWindowEvent()
}

// KeyEvent is a physical key press or release.
type KeyEvent struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
	Pressed   bool
}

// TextEvent is text produced by the keyboard layout.
type TextEvent struct {
	Text string
}

// MouseMoveEvent is a cursor movement.
type MouseMoveEvent struct {
	X, Y float64
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Button  gpucontext.MouseButton
	X, Y    float64
	Pressed bool
}

// PointerEvent is a unified mouse, touch or pen event.
type PointerEvent struct {
	gpucontext.PointerEvent
}

// ScrollEvent is a wheel or touchpad scroll. Positive deltas scroll right
// and down.
type ScrollEvent struct {
	DeltaX, DeltaY float64
	Mode           gpucontext.ScrollDeltaMode
	Modifiers      gpucontext.Modifiers
}

// CursorLeftEvent reports that the cursor left the window.
type CursorLeftEvent struct{}

// ResizeEvent reports a new window size in logical points.
type ResizeEvent struct {
	Width, Height int
}

// FocusEvent reports a keyboard focus change.
type FocusEvent struct {
	Focused bool
}

// ScaleFactorEvent reports a new DPI scale factor.
type ScaleFactorEvent struct {
	Scale float64
}

// IMEStartEvent reports the start of an IME composition.
type IMEStartEvent struct{}

// IMEUpdateEvent reports the current IME composition state.
type IMEUpdateEvent struct {
	State gpucontext.IMEState
}

// IMEEndEvent reports text committed by the IME.
type IMEEndEvent struct {
	Text string
}

func (KeyEvent) isWindowEvent()         {}
func (TextEvent) isWindowEvent()        {}
func (MouseMoveEvent) isWindowEvent()   {}
func (MouseButtonEvent) isWindowEvent() {}
func (PointerEvent) isWindowEvent()     {}
func (ScrollEvent) isWindowEvent()      {}
func (CursorLeftEvent) isWindowEvent()  {}
func (ResizeEvent) isWindowEvent()      {}
func (FocusEvent) isWindowEvent()       {}
func (ScaleFactorEvent) isWindowEvent() {}
func (IMEStartEvent) isWindowEvent()    {}
func (IMEUpdateEvent) isWindowEvent()   {}
func (IMEEndEvent) isWindowEvent()      {}

// AttachEvents subscribes the integration to every callback of src.
//
// When src also implements gpucontext.PointerEventSource or
// gpucontext.ScrollEventSource, the richer callbacks are used instead of the
// plain mouse and scroll ones so each input is delivered once.
func (i *Integration) AttachEvents(src gpucontext.EventSource) {
	if src == nil {
		return
	}

	src.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		i.HandleEvent(KeyEvent{Key: key, Modifiers: mods, Pressed: true})
	})
	src.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		i.HandleEvent(KeyEvent{Key: key, Modifiers: mods, Pressed: false})
	})
	src.OnTextInput(func(text string) {
		i.HandleEvent(TextEvent{Text: text})
	})

	if pes, ok := src.(gpucontext.PointerEventSource); ok {
		pes.OnPointer(func(ev gpucontext.PointerEvent) {
			i.HandleEvent(PointerEvent{PointerEvent: ev})
		})
	} else {
		src.OnMouseMove(func(x, y float64) {
			i.HandleEvent(MouseMoveEvent{X: x, Y: y})
		})
		src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
			i.HandleEvent(MouseButtonEvent{Button: button, X: x, Y: y, Pressed: true})
		})
		src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
			i.HandleEvent(MouseButtonEvent{Button: button, X: x, Y: y, Pressed: false})
		})
	}

	if ses, ok := src.(gpucontext.ScrollEventSource); ok {
		ses.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			i.HandleEvent(ScrollEvent{
				DeltaX:    ev.DeltaX,
				DeltaY:    ev.DeltaY,
				Mode:      ev.DeltaMode,
				Modifiers: ev.Modifiers,
			})
		})
	} else {
		src.OnScroll(func(dx, dy float64) {
			i.HandleEvent(ScrollEvent{DeltaX: dx, DeltaY: dy, Mode: gpucontext.ScrollDeltaLine})
		})
	}

	src.OnResize(func(width, height int) {
		i.HandleEvent(ResizeEvent{Width: width, Height: height})
	})
	src.OnFocus(func(focused bool) {
		i.HandleEvent(FocusEvent{Focused: focused})
	})
	src.OnIMECompositionStart(func() {
		i.HandleEvent(IMEStartEvent{})
	})
	src.OnIMECompositionUpdate(func(state gpucontext.IMEState) {
		i.HandleEvent(IMEUpdateEvent{State: state})
	})
	src.OnIMECompositionEnd(func(committed string) {
		i.HandleEvent(IMEEndEvent{Text: committed})
	})
}
