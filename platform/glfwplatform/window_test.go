// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwplatform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

// The handlers below never touch the GLFW window, so they run without a
// display. Cursor position and size callbacks query the window and need one.

type keyCall struct {
	pressed bool
	key     gpucontext.Key
	mods    gpucontext.Modifiers
}

func TestWindowOnKey(t *testing.T) {
	tests := []struct {
		name   string
		action glfw.Action
		want   keyCall
	}{
		{"press", glfw.Press, keyCall{pressed: true, key: gpucontext.KeyA, mods: gpucontext.ModControl}},
		{"repeat", glfw.Repeat, keyCall{pressed: true, key: gpucontext.KeyA, mods: gpucontext.ModControl}},
		{"release", glfw.Release, keyCall{key: gpucontext.KeyA, mods: gpucontext.ModControl}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Window{}
			var calls []keyCall
			w.OnKeyPress(func(k gpucontext.Key, m gpucontext.Modifiers) {
				calls = append(calls, keyCall{pressed: true, key: k, mods: m})
			})
			w.OnKeyRelease(func(k gpucontext.Key, m gpucontext.Modifiers) {
				calls = append(calls, keyCall{key: k, mods: m})
			})

			w.onKey(nil, glfw.KeyA, 0, tt.action, glfw.ModControl)
			if len(calls) != 1 || calls[0] != tt.want {
				t.Errorf("calls = %+v, want [%+v]", calls, tt.want)
			}
		})
	}
}

func TestWindowOnChar(t *testing.T) {
	w := &Window{}
	var got []string
	w.OnTextInput(func(s string) { got = append(got, s) })

	w.onChar(nil, 'é')
	w.onChar(nil, '@')
	if len(got) != 2 || got[0] != "é" || got[1] != "@" {
		t.Errorf("text = %q, want [é @]", got)
	}
}

func TestWindowOnScroll(t *testing.T) {
	w := &Window{}
	var dx, dy float64
	w.OnScroll(func(x, y float64) { dx, dy = x, y })

	w.onScroll(nil, 2, -3)
	if dx != -2 || dy != 3 {
		t.Errorf("scroll = (%v, %v), want (-2, 3)", dx, dy)
	}
}

func TestWindowOnFocus(t *testing.T) {
	w := &Window{}
	var got []bool
	w.OnFocus(func(focused bool) { got = append(got, focused) })

	w.onFocus(nil, true)
	w.onFocus(nil, false)
	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("focus = %v, want [true false]", got)
	}
}

func TestWindowOnMouseButtonUnknown(t *testing.T) {
	w := &Window{}
	called := false
	w.OnMousePress(func(gpucontext.MouseButton, float64, float64) { called = true })
	w.OnMouseRelease(func(gpucontext.MouseButton, float64, float64) { called = true })

	w.onMouseButton(nil, glfw.MouseButton6, glfw.Press, 0)
	if called {
		t.Error("unmapped button reached the press callback")
	}
}

func TestWindowHandlersWithoutCallbacks(t *testing.T) {
	w := &Window{}
	w.onKey(nil, glfw.KeyEnter, 0, glfw.Press, 0)
	w.onKey(nil, glfw.KeyEnter, 0, glfw.Release, 0)
	w.onChar(nil, 'x')
	w.onScroll(nil, 0, 1)
	w.onFocus(nil, true)
}
