// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"math"
	"runtime"
	"strings"
	"unicode"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/guipaint/gui"
)

// pointsPerScrollLine converts line-based wheel deltas to points.
const pointsPerScrollLine = 50

// zoomScrollPoints is the ctrl+scroll distance, in points, that zooms by a
// factor of e.
const zoomScrollPoints = 200

// translator accumulates toolkit input between frames.
type translator struct {
	events    []gui.Event
	modifiers gpucontext.Modifiers
	pointer   gui.Pos2
	hasFocus  bool
	scale     float64 // last ScaleFactorEvent, 0 if none
	height    int     // last known height in points, for page scrolling
	mac       bool
}

func newTranslator() translator {
	return translator{hasFocus: true, mac: runtime.GOOS == "darwin"}
}

func (t *translator) push(ev gui.Event) {
	t.events = append(t.events, ev)
}

// take returns the events collected since the previous call.
func (t *translator) take() []gui.Event {
	evs := t.events
	t.events = nil
	return evs
}

// guiModifiers converts gpucontext modifiers. Command is Cmd on macOS and
// Ctrl elsewhere.
func (t *translator) guiModifiers(m gpucontext.Modifiers) gui.Modifiers {
	out := gui.Modifiers{
		Alt:   m.HasAlt(),
		Ctrl:  m.HasControl(),
		Shift: m.HasShift(),
	}
	if t.mac {
		out.MacCmd = m.HasSuper()
		out.Command = m.HasSuper()
	} else {
		out.Command = m.HasControl()
	}
	return out
}

// key translates a key event. Clipboard shortcuts also produce Cut, Copy or
// Paste ahead of the key itself.
func (t *translator) key(ev KeyEvent, clipboard func() string) {
	t.modifiers = ev.Modifiers
	mods := t.guiModifiers(ev.Modifiers)
	code := translateKey(ev.Key)

	if ev.Pressed {
		switch {
		case isCut(mods, code):
			t.push(gui.Cut{})
		case isCopy(mods, code):
			t.push(gui.Copy{})
		case isPaste(mods, code):
			if text := strings.ReplaceAll(clipboard(), "\r\n", "\n"); text != "" {
				t.push(gui.Paste{Text: text})
			}
		}
	}

	if code != gui.KeyUnknown {
		t.push(gui.Key{Key: code, Pressed: ev.Pressed, Modifiers: mods})
	}
}

// text pushes typed text unless it is a shortcut or a control character.
// Outside macOS, Ctrl together with Alt is AltGr and still types text.
func (t *translator) text(s string) {
	mods := t.guiModifiers(t.modifiers)
	if mods.MacCmd || (mods.Ctrl && (t.mac || !mods.Alt)) {
		return
	}
	s = strings.Map(func(r rune) rune {
		if isPrintable(r) {
			return r
		}
		return -1
	}, s)
	if s != "" {
		t.push(gui.Text{Text: s})
	}
}

func (t *translator) pointerMoved(x, y float64) {
	t.pointer = gui.Pos2{X: float32(x), Y: float32(y)}
	t.push(gui.PointerMoved{Pos: t.pointer})
}

func (t *translator) pointerButton(button gui.PointerButtonID, x, y float64, pressed bool) {
	t.pointer = gui.Pos2{X: float32(x), Y: float32(y)}
	t.push(gui.PointerButton{
		Pos:       t.pointer,
		Button:    button,
		Pressed:   pressed,
		Modifiers: t.guiModifiers(t.modifiers),
	})
}

func (t *translator) scroll(ev ScrollEvent) {
	mods := ev.Modifiers
	if mods == 0 {
		mods = t.modifiers
	}

	var dx, dy float64
	switch ev.Mode {
	case gpucontext.ScrollDeltaLine:
		dx, dy = ev.DeltaX*pointsPerScrollLine, ev.DeltaY*pointsPerScrollLine
	case gpucontext.ScrollDeltaPage:
		page := float64(t.height)
		if page <= 0 {
			page = pointsPerScrollLine * 10
		}
		dx, dy = ev.DeltaX*page, ev.DeltaY*page
	default:
		dx, dy = ev.DeltaX, ev.DeltaY
	}
	if dx == 0 && dy == 0 {
		return
	}

	if g := t.guiModifiers(mods); g.Ctrl || g.MacCmd {
		// Wheel up (negative dy) zooms in.
		t.push(gui.Zoom{Factor: float32(math.Exp(-dy / zoomScrollPoints))})
		return
	}
	t.push(gui.Scroll{Delta: gui.Vec2{X: float32(dx), Y: float32(dy)}})
}

func (t *translator) focus(focused bool) {
	t.hasFocus = focused
	if !focused {
		t.modifiers = 0
	}
	t.push(gui.WindowFocused{Focused: focused})
}

func isCut(m gui.Modifiers, k gui.KeyCode) bool {
	return (m.Command && k == gui.KeyX) || (m.Shift && k == gui.KeyDelete)
}

func isCopy(m gui.Modifiers, k gui.KeyCode) bool {
	return (m.Command && k == gui.KeyC) || (m.Ctrl && k == gui.KeyInsert)
}

func isPaste(m gui.Modifiers, k gui.KeyCode) bool {
	return (m.Command && k == gui.KeyV) || (m.Shift && k == gui.KeyInsert)
}

// isPrintable rejects control characters and the private use areas, where
// some platforms report function keys.
func isPrintable(r rune) bool {
	isPrivateUse := (r >= 0xe000 && r <= 0xf8ff) ||
		(r >= 0xf0000 && r <= 0xffffd) ||
		(r >= 0x100000 && r <= 0x10fffd)
	return !isPrivateUse && !unicode.IsControl(r)
}

// keyTable maps gpucontext keys to toolkit key codes. Keys that are not
// listed are delivered as text only.
var keyTable = map[gpucontext.Key]gui.KeyCode{
	gpucontext.KeyDown:  gui.KeyArrowDown,
	gpucontext.KeyLeft:  gui.KeyArrowLeft,
	gpucontext.KeyRight: gui.KeyArrowRight,
	gpucontext.KeyUp:    gui.KeyArrowUp,

	gpucontext.KeyEscape:      gui.KeyEscape,
	gpucontext.KeyTab:         gui.KeyTab,
	gpucontext.KeyBackspace:   gui.KeyBackspace,
	gpucontext.KeyEnter:       gui.KeyEnter,
	gpucontext.KeyNumpadEnter: gui.KeyEnter,
	gpucontext.KeySpace:       gui.KeySpace,

	gpucontext.KeyInsert:   gui.KeyInsert,
	gpucontext.KeyDelete:   gui.KeyDelete,
	gpucontext.KeyHome:     gui.KeyHome,
	gpucontext.KeyEnd:      gui.KeyEnd,
	gpucontext.KeyPageUp:   gui.KeyPageUp,
	gpucontext.KeyPageDown: gui.KeyPageDown,

	gpucontext.Key0: gui.KeyNum0, gpucontext.KeyNumpad0: gui.KeyNum0,
	gpucontext.Key1: gui.KeyNum1, gpucontext.KeyNumpad1: gui.KeyNum1,
	gpucontext.Key2: gui.KeyNum2, gpucontext.KeyNumpad2: gui.KeyNum2,
	gpucontext.Key3: gui.KeyNum3, gpucontext.KeyNumpad3: gui.KeyNum3,
	gpucontext.Key4: gui.KeyNum4, gpucontext.KeyNumpad4: gui.KeyNum4,
	gpucontext.Key5: gui.KeyNum5, gpucontext.KeyNumpad5: gui.KeyNum5,
	gpucontext.Key6: gui.KeyNum6, gpucontext.KeyNumpad6: gui.KeyNum6,
	gpucontext.Key7: gui.KeyNum7, gpucontext.KeyNumpad7: gui.KeyNum7,
	gpucontext.Key8: gui.KeyNum8, gpucontext.KeyNumpad8: gui.KeyNum8,
	gpucontext.Key9: gui.KeyNum9, gpucontext.KeyNumpad9: gui.KeyNum9,
}

func init() {
	// Letters are contiguous in both enumerations.
	for k := gpucontext.KeyA; k <= gpucontext.KeyZ; k++ {
		keyTable[k] = gui.KeyA + gui.KeyCode(k-gpucontext.KeyA)
	}
}

// translateKey returns the toolkit key code for k, or KeyUnknown.
func translateKey(k gpucontext.Key) gui.KeyCode {
	return keyTable[k]
}

// translateMouseButton maps a mouse button to a toolkit pointer button.
func translateMouseButton(b gpucontext.MouseButton) gui.PointerButtonID {
	switch b {
	case gpucontext.MouseButtonRight:
		return gui.PointerSecondary
	case gpucontext.MouseButtonMiddle:
		return gui.PointerMiddle
	case gpucontext.MouseButton4:
		return gui.PointerExtra1
	case gpucontext.MouseButton5:
		return gui.PointerExtra2
	default:
		return gui.PointerPrimary
	}
}

// translatePointerButton maps a pointer event button. Touch contacts and
// pen tips report ButtonNone or ButtonLeft and act as the primary button.
func translatePointerButton(b gpucontext.Button) gui.PointerButtonID {
	switch b {
	case gpucontext.ButtonRight:
		return gui.PointerSecondary
	case gpucontext.ButtonMiddle:
		return gui.PointerMiddle
	case gpucontext.ButtonX1:
		return gui.PointerExtra1
	case gpucontext.ButtonX2:
		return gui.PointerExtra2
	default:
		return gui.PointerPrimary
	}
}
