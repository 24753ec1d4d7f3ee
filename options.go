// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package guipaint

import (
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint/painter"
)

// Option configures an Integration during creation.
//
// Example:
//
//	integ, err := guipaint.New(provider, window, ctx,
//	    guipaint.WithSurfaceFormat(gputypes.TextureFormatBGRA8UnormSrgb),
//	    guipaint.WithPlatform(platform),
//	)
type Option func(*options)

// options holds optional configuration for Integration creation.
type options struct {
	settings painter.Settings
	platform gpucontext.PlatformProvider
	clock    func() time.Time
	openURL  func(url string)
}

// defaultOptions returns the default integration options.
func defaultOptions() options {
	return options{
		settings: painter.DefaultSettings(),
		platform: gpucontext.NullPlatformProvider{},
		clock:    time.Now,
	}
}

// WithMaxTextureSide limits the size of textures the GUI may request.
// Values <= 0 keep the default of painter.DefaultMaxTextureSide.
func WithMaxTextureSide(side int) Option {
	return func(o *options) {
		if side > 0 {
			o.settings.MaxTextureSide = side
		}
	}
}

// WithSurfaceFormat sets the format of the views passed to Paint.
func WithSurfaceFormat(format gputypes.TextureFormat) Option {
	return func(o *options) {
		o.settings.TargetFormat = format
	}
}

// WithScissorOrigin sets the scissor convention of the render target.
// WebGPU targets use painter.OriginTopLeft, the default.
func WithScissorOrigin(origin painter.Origin) Option {
	return func(o *options) {
		o.settings.ScissorOrigin = origin
	}
}

// WithValidation enables mesh validation before drawing. Malformed meshes
// are skipped and logged instead of being sent to the GPU.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.settings.Validate = enabled
	}
}

// WithPrecompiledShaders compiles the GUI shader to SPIR-V with naga before
// creating the pipeline.
func WithPrecompiledShaders(enabled bool) Option {
	return func(o *options) {
		o.settings.PrecompileShader = enabled
	}
}

// WithLabel sets the debug label prefix of every GPU object.
func WithLabel(label string) Option {
	return func(o *options) {
		o.settings.Label = label
	}
}

// WithPlatform sets the provider used for the clipboard and the mouse
// cursor. Without it clipboard and cursor requests are ignored.
func WithPlatform(p gpucontext.PlatformProvider) Option {
	return func(o *options) {
		if p != nil {
			o.platform = p
		}
	}
}

// WithClock sets the time source used for RawInput.Time. Tests use it to
// make frame timing deterministic.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithURLHandler sets the function called when the GUI asks to open a
// link. Without it the request is only logged.
func WithURLHandler(open func(url string)) Option {
	return func(o *options) {
		o.openURL = open
	}
}
