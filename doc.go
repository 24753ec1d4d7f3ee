// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package guipaint connects an immediate-mode GUI toolkit to a gogpu window.
//
// # Overview
//
// An [Integration] sits between three parties:
//   - the host window, which delivers input through [gpucontext.EventSource]
//     and reports its size through [gpucontext.WindowProvider];
//   - the GUI toolkit, seen through the [gui.Context] interface;
//   - the GPU, driven by a [painter.Painter] on a [hal.Device].
//
// # Frame Cycle
//
// Each frame is split in two calls so the host decides what is drawn before
// and after the GUI:
//
//	needsRepaint, err := integ.Run(func(ctx gui.Context) {
//	    // describe the UI
//	})
//
//	// draw things behind the GUI here
//	err = integ.Paint(painter.Target{View: view, Width: w, Height: h})
//	// draw things on top of the GUI here
//
// Run collects the input received since the previous frame, runs the
// toolkit, applies its platform requests (cursor, clipboard, redraw) and
// keeps its meshes and texture updates. Paint uploads the pending texture
// updates, draws the meshes and frees the textures the toolkit released.
//
// # Input
//
// Window events are translated into toolkit events by [Integration.HandleEvent].
// Its result tells the host whether the GUI claims the event. A game, for
// example, should ignore clicks the GUI claims. Tab is always claimed
// because the toolkit uses it to move focus.
//
//	integ.AttachEvents(app.EventSource())
//
// subscribes an Integration to every callback of an event source.
//
// # Logging
//
// guipaint is silent by default. [SetLogger] enables structured logging for
// this package and the painter.
//
// # Thread Safety
//
// An Integration is NOT safe for concurrent use. Event callbacks, Run and
// Paint must all happen on the goroutine that owns the window and device.
package guipaint
