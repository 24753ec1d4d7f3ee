// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gui

// RawInput is everything the toolkit needs to know about the outside world
// for one frame.
type RawInput struct {
	// ScreenRect is the drawable area in logical points.
	ScreenRect Rect

	// PixelsPerPoint is the number of physical pixels per logical point.
	PixelsPerPoint float32

	// MaxTextureSide is the largest texture side the painter accepts.
	// Toolkits must not request textures larger than this.
	MaxTextureSide int

	// Time is the monotonic time of the frame in seconds.
	Time float64

	// PredictedDt is the expected duration of the frame in seconds.
	PredictedDt float32

	// Modifiers is the modifier state at the end of the input batch.
	Modifiers Modifiers

	// Events are in the order they were received.
	Events []Event

	// HasFocus reports whether the window has keyboard focus.
	HasFocus bool
}

// Event is one input event in RawInput. It is one of the event types
// declared in this file.
type Event interface {
	isEvent()
}

// PointerMoved reports the pointer position in points.
type PointerMoved struct {
	Pos Pos2
}

// PointerButton reports a button press or release.
type PointerButton struct {
	Pos       Pos2
	Button    PointerButtonID
	Pressed   bool
	Modifiers Modifiers
}

// PointerGone reports that the pointer left the window.
type PointerGone struct{}

// Scroll reports a scroll in points. Positive values move the view right
// and down, toward the end of the content.
type Scroll struct {
	Delta Vec2
}

// Zoom reports a pinch or ctrl+wheel zoom factor. 1 means no zoom.
type Zoom struct {
	Factor float32
}

// Key reports a key press or release.
type Key struct {
	Key       KeyCode
	Pressed   bool
	Modifiers Modifiers
}

// Text is text typed by the user after keyboard layout and IME processing.
type Text struct {
	Text string
}

// Copy asks the toolkit to copy its selection.
type Copy struct{}

// Cut asks the toolkit to cut its selection.
type Cut struct{}

// Paste carries clipboard text to insert.
type Paste struct {
	Text string
}

// CompositionStart reports that IME composition began.
type CompositionStart struct{}

// CompositionUpdate carries the current IME preedit text.
type CompositionUpdate struct {
	Text string
}

// CompositionEnd carries the text committed by the IME.
type CompositionEnd struct {
	Text string
}

// WindowFocused reports a focus change.
type WindowFocused struct {
	Focused bool
}

func (PointerMoved) isEvent()      {}
func (PointerButton) isEvent()     {}
func (PointerGone) isEvent()       {}
func (Scroll) isEvent()            {}
func (Zoom) isEvent()              {}
func (Key) isEvent()               {}
func (Text) isEvent()              {}
func (Copy) isEvent()              {}
func (Cut) isEvent()               {}
func (Paste) isEvent()             {}
func (CompositionStart) isEvent()  {}
func (CompositionUpdate) isEvent() {}
func (CompositionEnd) isEvent()    {}
func (WindowFocused) isEvent()     {}

// PointerButtonID names a pointer button.
type PointerButtonID uint8

const (
	// PointerPrimary is usually the left mouse button.
	PointerPrimary PointerButtonID = iota
	// PointerSecondary is usually the right mouse button.
	PointerSecondary
	// PointerMiddle is the middle mouse button.
	PointerMiddle
	// PointerExtra1 is the "back" button.
	PointerExtra1
	// PointerExtra2 is the "forward" button.
	PointerExtra2
)

// Modifiers is the state of the modifier keys.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool

	// MacCmd is the Command key on macOS.
	MacCmd bool

	// Command is Ctrl everywhere except macOS, where it is Cmd.
	Command bool
}

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool { return m == Modifiers{} }

// KeyCode names the keys the toolkit reacts to. Keys without a KeyCode are
// delivered as Text only.
type KeyCode uint8

// Key codes.
const (
	KeyUnknown KeyCode = iota

	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp

	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)
