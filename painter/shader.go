// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded GUI shader source.
//
//go:embed shaders/gui.wgsl
var guiShaderSource string

// compileSPIRV compiles WGSL source to SPIR-V words.
func compileSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// shaderSource returns the module source handed to the device.
func shaderSource(precompile bool) (hal.ShaderSource, error) {
	if guiShaderSource == "" {
		return hal.ShaderSource{}, fmt.Errorf("gui shader source is empty")
	}
	if !precompile {
		return hal.ShaderSource{WGSL: guiShaderSource}, nil
	}
	code, err := compileSPIRV(guiShaderSource)
	if err != nil {
		return hal.ShaderSource{}, err
	}
	return hal.ShaderSource{SPIRV: code}, nil
}
