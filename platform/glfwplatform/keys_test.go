// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glfwplatform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want gpucontext.Key
	}{
		{glfw.KeyA, gpucontext.KeyA},
		{glfw.KeyQ, gpucontext.KeyQ},
		{glfw.KeyZ, gpucontext.KeyZ},
		{glfw.Key0, gpucontext.Key0},
		{glfw.Key9, gpucontext.Key9},
		{glfw.KeyKP0, gpucontext.KeyNumpad0},
		{glfw.KeyKP5, gpucontext.KeyNumpad5},
		{glfw.KeyKPEnter, gpucontext.KeyNumpadEnter},
		{glfw.KeyEnter, gpucontext.KeyEnter},
		{glfw.KeyTab, gpucontext.KeyTab},
		{glfw.KeyGraveAccent, gpucontext.KeyGrave},
		{glfw.KeyF12, gpucontext.KeyF12},
		{glfw.KeyLeftSuper, gpucontext.KeyLeftSuper},
		{glfw.KeyUnknown, gpucontext.KeyUnknown},
		{glfw.KeyWorld1, gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModifiers(t *testing.T) {
	tests := []struct {
		in   glfw.ModifierKey
		want gpucontext.Modifiers
	}{
		{0, 0},
		{glfw.ModShift, gpucontext.ModShift},
		{glfw.ModControl | glfw.ModAlt, gpucontext.ModControl | gpucontext.ModAlt},
		{glfw.ModSuper, gpucontext.ModSuper},
		{glfw.ModCapsLock | glfw.ModNumLock, gpucontext.ModCapsLock | gpucontext.ModNumLock},
	}
	for _, tt := range tests {
		if got := Modifiers(tt.in); got != tt.want {
			t.Errorf("Modifiers(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMouseButton(t *testing.T) {
	tests := []struct {
		in     glfw.MouseButton
		want   gpucontext.MouseButton
		wantOK bool
	}{
		{glfw.MouseButtonLeft, gpucontext.MouseButtonLeft, true},
		{glfw.MouseButtonRight, gpucontext.MouseButtonRight, true},
		{glfw.MouseButtonMiddle, gpucontext.MouseButtonMiddle, true},
		{glfw.MouseButton4, gpucontext.MouseButton4, true},
		{glfw.MouseButton5, gpucontext.MouseButton5, true},
		{glfw.MouseButton8, 0, false},
	}
	for _, tt := range tests {
		got, ok := MouseButton(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MouseButton(%d) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStandardCursor(t *testing.T) {
	tests := []struct {
		in   gpucontext.CursorShape
		want glfw.StandardCursor
	}{
		{gpucontext.CursorDefault, glfw.ArrowCursor},
		{gpucontext.CursorPointer, glfw.HandCursor},
		{gpucontext.CursorText, glfw.IBeamCursor},
		{gpucontext.CursorCrosshair, glfw.CrosshairCursor},
		{gpucontext.CursorResizeEW, glfw.HResizeCursor},
		{gpucontext.CursorResizeNS, glfw.VResizeCursor},
		{gpucontext.CursorWait, glfw.ArrowCursor},
	}
	for _, tt := range tests {
		if got := standardCursor(tt.in); got != tt.want {
			t.Errorf("standardCursor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleToPoints(t *testing.T) {
	tests := []struct {
		name            string
		screenW, pixelW int
		scale           float64
		wantX, wantY    float64
	}{
		// macOS retina: screen coordinates are already points.
		{"retina", 800, 1600, 2, 100, 50},
		// Windows at 150%: screen coordinates are pixels.
		{"hidpi pixels", 1200, 1200, 1.5, 100.0 / 1.5, 50.0 / 1.5},
		{"unscaled", 800, 800, 1, 100, 50},
		{"minimized", 0, 0, 1, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := scaleToPoints(100, 50, tt.screenW, tt.pixelW, tt.scale)
			if diff(x, tt.wantX) > 1e-9 || diff(y, tt.wantY) > 1e-9 {
				t.Errorf("scaleToPoints = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestScrollDelta(t *testing.T) {
	dx, dy := scrollDelta(0, 1)
	if dx != 0 || dy != -1 {
		t.Errorf("wheel away from user = (%v, %v), want (0, -1)", dx, dy)
	}
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
