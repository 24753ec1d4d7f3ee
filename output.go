// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/guipaint/gui"
)

// handlePlatformOutput applies the toolkit's requests to the platform.
func (i *Integration) handlePlatformOutput(out gui.PlatformOutput) {
	if !i.cursorSet || out.Cursor != i.cursor {
		i.opts.platform.SetCursor(cursorShape(out.Cursor))
		i.cursor = out.Cursor
		i.cursorSet = true
	}

	if out.CopiedText != "" {
		if err := i.opts.platform.ClipboardWrite(out.CopiedText); err != nil {
			Logger().Warn("guipaint: clipboard write failed", "err", err)
		}
	}

	if out.OpenURL != "" {
		if i.opts.openURL != nil {
			i.opts.openURL(out.OpenURL)
		} else {
			Logger().Info("guipaint: open url requested", "url", out.OpenURL)
		}
	}
}

// readClipboard returns the clipboard text, or "" when it cannot be read.
func (i *Integration) readClipboard() string {
	text, err := i.opts.platform.ClipboardRead()
	if err != nil {
		Logger().Warn("guipaint: clipboard read failed", "err", err)
		return ""
	}
	return text
}

// cursorShape maps a toolkit cursor icon to the closest platform shape.
func cursorShape(c gui.CursorIcon) gpucontext.CursorShape {
	switch c {
	case gui.CursorNone:
		return gpucontext.CursorNone
	case gui.CursorPointingHand:
		return gpucontext.CursorPointer
	case gui.CursorText:
		return gpucontext.CursorText
	case gui.CursorCrosshair:
		return gpucontext.CursorCrosshair
	case gui.CursorMove, gui.CursorGrab, gui.CursorGrabbing:
		return gpucontext.CursorMove
	case gui.CursorNotAllowed:
		return gpucontext.CursorNotAllowed
	case gui.CursorWait:
		return gpucontext.CursorWait
	case gui.CursorResizeHorizontal:
		return gpucontext.CursorResizeEW
	case gui.CursorResizeVertical:
		return gpucontext.CursorResizeNS
	case gui.CursorResizeNeSw:
		return gpucontext.CursorResizeNESW
	case gui.CursorResizeNwSe:
		return gpucontext.CursorResizeNWSE
	default:
		return gpucontext.CursorDefault
	}
}
