// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// vertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position  (vec2<f32>)  = 8 bytes  (location 0)
//	tex_coord (vec2<f32>)  = 8 bytes  (location 1)
//	color     (unorm8x4)   = 4 bytes  (location 2)
//
// Total = 20 bytes per vertex.
const vertexStride = 20

// uniformSize is the byte size of the uniform buffer.
// Layout: screen_size (vec2<f32>) + padding (vec2<f32>) = 16 bytes.
const uniformSize = 16

// createPipeline compiles the GUI shader and creates the bind group layout,
// pipeline layout and render pipeline.
func (p *Painter) createPipeline() error {
	src, err := shaderSource(p.settings.PrecompileShader)
	if err != nil {
		return err
	}
	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.label("shader"),
		Source: src,
	})
	if err != nil {
		return fmt.Errorf("compile gui shader: %w", err)
	}
	p.shader = shader

	// Bind group layout:
	//   Binding 0: Uniforms (uniform buffer, vertex)
	//   Binding 1: GUI texture (texture_2d, fragment)
	//   Binding 2: Sampler (fragment)
	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: p.label("bind_layout"),
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create gui bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            p.label("pipe_layout"),
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create gui pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	blend := guiBlendState()
	fragment := fragmentEntryPoint(p.settings.TargetFormat)
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  p.label("pipeline"),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    vertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragment,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.settings.TargetFormat,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create gui pipeline: %w", err)
	}
	p.pipeline = pipeline

	slogger().Info("painter: pipeline created",
		"format", p.settings.TargetFormat,
		"fragment", fragment,
		"spirv", p.settings.PrecompileShader)
	return nil
}

// fragmentEntryPoint picks the fragment shader for a target format. sRGB
// targets encode linear output on store; any other format gets the entry
// that gamma-encodes in the shader.
func fragmentEntryPoint(format gputypes.TextureFormat) string {
	switch format {
	case gputypes.TextureFormatRGBA8UnormSrgb, gputypes.TextureFormatBGRA8UnormSrgb:
		return "fs_main"
	}
	return "fs_main_gamma_framebuffer"
}

// destroyPipeline releases all pipeline resources in reverse creation order.
func (p *Painter) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// guiBlendState returns the blend policy for premultiplied GUI output:
// color = src + dst*(1-src.a), alpha = src*(1-dst.a) + dst.
func guiBlendState() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOneMinusDstAlpha,
			DstFactor: gputypes.BlendFactorOne,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

// vertexLayout returns the vertex buffer layout of the GUI pipeline.
// Matches VertexInput in gui.wgsl.
func vertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2}, // color
			},
		},
	}
}
