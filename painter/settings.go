// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import "github.com/gogpu/gputypes"

// DefaultMaxTextureSide is the texture side limit reported to the GUI when
// Settings.MaxTextureSide is zero.
const DefaultMaxTextureSide = 4096

// Settings configures a Painter.
type Settings struct {
	// Label prefixes the debug labels of every GPU object.
	// Default: "gui"
	Label string

	// TargetFormat is the format of the views passed to Paint. It must
	// match the surface format. Non-sRGB formats get gamma-encoded output
	// from the shader; sRGB formats encode on store.
	// Default: BGRA8Unorm
	TargetFormat gputypes.TextureFormat

	// MaxTextureSide is the largest texture side accepted by the cache.
	// Default: 4096
	MaxTextureSide int

	// ScissorOrigin selects the scissor coordinate convention of the target.
	// Default: OriginTopLeft
	ScissorOrigin Origin

	// Validate checks every mesh for out-of-range indices before drawing
	// and skips malformed ones. Intended for debug builds and tests.
	Validate bool

	// PrecompileShader compiles the WGSL shader to SPIR-V with naga before
	// handing it to the device. Useful for backends that only accept
	// SPIR-V.
	PrecompileShader bool
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	return Settings{
		Label:          "gui",
		TargetFormat:   gputypes.TextureFormatBGRA8Unorm,
		MaxTextureSide: DefaultMaxTextureSide,
		ScissorOrigin:  OriginTopLeft,
	}
}

// withDefaults fills zero fields with their defaults.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Label == "" {
		s.Label = d.Label
	}
	if s.TargetFormat == gputypes.TextureFormatUndefined {
		s.TargetFormat = d.TargetFormat
	}
	if s.MaxTextureSide <= 0 {
		s.MaxTextureSide = d.MaxTextureSide
	}
	return s
}
