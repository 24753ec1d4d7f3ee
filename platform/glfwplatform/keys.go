// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwplatform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

var keyMap = map[glfw.Key]gpucontext.Key{
	glfw.KeyF1:  gpucontext.KeyF1,
	glfw.KeyF2:  gpucontext.KeyF2,
	glfw.KeyF3:  gpucontext.KeyF3,
	glfw.KeyF4:  gpucontext.KeyF4,
	glfw.KeyF5:  gpucontext.KeyF5,
	glfw.KeyF6:  gpucontext.KeyF6,
	glfw.KeyF7:  gpucontext.KeyF7,
	glfw.KeyF8:  gpucontext.KeyF8,
	glfw.KeyF9:  gpucontext.KeyF9,
	glfw.KeyF10: gpucontext.KeyF10,
	glfw.KeyF11: gpucontext.KeyF11,
	glfw.KeyF12: gpucontext.KeyF12,

	glfw.KeyEscape:    gpucontext.KeyEscape,
	glfw.KeyTab:       gpucontext.KeyTab,
	glfw.KeyBackspace: gpucontext.KeyBackspace,
	glfw.KeyEnter:     gpucontext.KeyEnter,
	glfw.KeySpace:     gpucontext.KeySpace,
	glfw.KeyInsert:    gpucontext.KeyInsert,
	glfw.KeyDelete:    gpucontext.KeyDelete,
	glfw.KeyHome:      gpucontext.KeyHome,
	glfw.KeyEnd:       gpucontext.KeyEnd,
	glfw.KeyPageUp:    gpucontext.KeyPageUp,
	glfw.KeyPageDown:  gpucontext.KeyPageDown,
	glfw.KeyLeft:      gpucontext.KeyLeft,
	glfw.KeyRight:     gpucontext.KeyRight,
	glfw.KeyUp:        gpucontext.KeyUp,
	glfw.KeyDown:      gpucontext.KeyDown,

	glfw.KeyLeftShift:    gpucontext.KeyLeftShift,
	glfw.KeyRightShift:   gpucontext.KeyRightShift,
	glfw.KeyLeftControl:  gpucontext.KeyLeftControl,
	glfw.KeyRightControl: gpucontext.KeyRightControl,
	glfw.KeyLeftAlt:      gpucontext.KeyLeftAlt,
	glfw.KeyRightAlt:     gpucontext.KeyRightAlt,
	glfw.KeyLeftSuper:    gpucontext.KeyLeftSuper,
	glfw.KeyRightSuper:   gpucontext.KeyRightSuper,

	glfw.KeyMinus:        gpucontext.KeyMinus,
	glfw.KeyEqual:        gpucontext.KeyEqual,
	glfw.KeyLeftBracket:  gpucontext.KeyLeftBracket,
	glfw.KeyRightBracket: gpucontext.KeyRightBracket,
	glfw.KeyBackslash:    gpucontext.KeyBackslash,
	glfw.KeySemicolon:    gpucontext.KeySemicolon,
	glfw.KeyApostrophe:   gpucontext.KeyApostrophe,
	glfw.KeyGraveAccent:  gpucontext.KeyGrave,
	glfw.KeyComma:        gpucontext.KeyComma,
	glfw.KeyPeriod:       gpucontext.KeyPeriod,
	glfw.KeySlash:        gpucontext.KeySlash,

	glfw.KeyKPDecimal:  gpucontext.KeyNumpadDecimal,
	glfw.KeyKPDivide:   gpucontext.KeyNumpadDivide,
	glfw.KeyKPMultiply: gpucontext.KeyNumpadMultiply,
	glfw.KeyKPSubtract: gpucontext.KeyNumpadSubtract,
	glfw.KeyKPAdd:      gpucontext.KeyNumpadAdd,
	glfw.KeyKPEnter:    gpucontext.KeyNumpadEnter,

	glfw.KeyCapsLock:    gpucontext.KeyCapsLock,
	glfw.KeyScrollLock:  gpucontext.KeyScrollLock,
	glfw.KeyNumLock:     gpucontext.KeyNumLock,
	glfw.KeyPrintScreen: gpucontext.KeyPrintScreen,
	glfw.KeyPause:       gpucontext.KeyPause,
}

func init() {
	for i := range 26 {
		keyMap[glfw.KeyA+glfw.Key(i)] = gpucontext.KeyA + gpucontext.Key(i)
	}
	for i := range 10 {
		keyMap[glfw.Key0+glfw.Key(i)] = gpucontext.Key0 + gpucontext.Key(i)
		keyMap[glfw.KeyKP0+glfw.Key(i)] = gpucontext.KeyNumpad0 + gpucontext.Key(i)
	}
}

// Key converts a GLFW key to a gpucontext key.
func Key(k glfw.Key) gpucontext.Key {
	return keyMap[k]
}

// Modifiers converts GLFW modifier bits.
func Modifiers(mod glfw.ModifierKey) gpucontext.Modifiers {
	var m gpucontext.Modifiers
	if mod&glfw.ModShift != 0 {
		m |= gpucontext.ModShift
	}
	if mod&glfw.ModControl != 0 {
		m |= gpucontext.ModControl
	}
	if mod&glfw.ModAlt != 0 {
		m |= gpucontext.ModAlt
	}
	if mod&glfw.ModSuper != 0 {
		m |= gpucontext.ModSuper
	}
	if mod&glfw.ModCapsLock != 0 {
		m |= gpucontext.ModCapsLock
	}
	if mod&glfw.ModNumLock != 0 {
		m |= gpucontext.ModNumLock
	}
	return m
}

// MouseButton converts a GLFW mouse button. Buttons past the fifth report
// false.
func MouseButton(b glfw.MouseButton) (gpucontext.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return gpucontext.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gpucontext.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gpucontext.MouseButtonMiddle, true
	case glfw.MouseButton4:
		return gpucontext.MouseButton4, true
	case glfw.MouseButton5:
		return gpucontext.MouseButton5, true
	}
	return 0, false
}

// standardCursor returns the GLFW cursor closest to shape. GLFW 3.3 only
// ships six standard cursors, so move and diagonal resize fall back to the
// nearest one.
func standardCursor(shape gpucontext.CursorShape) glfw.StandardCursor {
	switch shape {
	case gpucontext.CursorPointer:
		return glfw.HandCursor
	case gpucontext.CursorText:
		return glfw.IBeamCursor
	case gpucontext.CursorCrosshair, gpucontext.CursorMove:
		return glfw.CrosshairCursor
	case gpucontext.CursorResizeEW, gpucontext.CursorResizeNESW:
		return glfw.HResizeCursor
	case gpucontext.CursorResizeNS, gpucontext.CursorResizeNWSE:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}
