// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"errors"
	"fmt"

	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/wgpu/hal"
)

// Sentinel errors.
var (
	// ErrNilDevice is returned when New is called without a device or queue.
	ErrNilDevice = errors.New("painter: nil device or queue")

	// ErrDestroyed is returned by methods called after Destroy.
	ErrDestroyed = errors.New("painter: painter destroyed")

	// ErrImageSize is returned when an image's pixel count does not match
	// its dimensions.
	ErrImageSize = errors.New("painter: image size mismatch")

	// ErrRegionOutOfBounds is returned when a partial update does not fit
	// inside the texture it patches.
	ErrRegionOutOfBounds = errors.New("painter: region out of bounds")

	// ErrTextureTooLarge is returned when a texture exceeds MaxTextureSide.
	ErrTextureTooLarge = errors.New("painter: texture too large")

	// ErrInvalidTarget is returned when Paint is given no view or a zero-size
	// target.
	ErrInvalidTarget = errors.New("painter: invalid render target")
)

// Painter renders GUI meshes into a render target.
//
// The shader module, layouts and pipeline are created once by New and
// released by Destroy. Everything else used by a frame is created and
// released inside Paint.
type Painter struct {
	device   hal.Device
	queue    hal.Queue
	settings Settings

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline

	textures *TextureCache
	nextUser uint64

	destroyed bool
}

// New creates a painter on device. Zero fields of settings take their
// defaults.
func New(device hal.Device, queue hal.Queue, settings Settings) (*Painter, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	settings = settings.withDefaults()

	p := &Painter{
		device:   device,
		queue:    queue,
		settings: settings,
	}
	p.textures = NewTextureCache(device, queue, settings.MaxTextureSide)
	p.textures.label = settings.Label

	if err := p.createPipeline(); err != nil {
		p.destroyPipeline()
		return nil, err
	}
	return p, nil
}

// Settings returns the effective settings.
func (p *Painter) Settings() Settings { return p.settings }

// MaxTextureSide returns the largest texture side the painter accepts.
func (p *Painter) MaxTextureSide() int { return p.settings.MaxTextureSide }

// Textures returns the texture cache.
func (p *Painter) Textures() *TextureCache { return p.textures }

// SetTexture applies a texture delta.
func (p *Painter) SetTexture(id gui.TextureID, delta gui.ImageDelta) error {
	if p.destroyed {
		return ErrDestroyed
	}
	return p.textures.Upload(id, delta)
}

// FreeTexture releases the texture identified by id.
func (p *Painter) FreeTexture(id gui.TextureID) {
	if p.destroyed {
		return
	}
	p.textures.Free(id)
}

// ApplyTextures uploads every set entry of delta in order. A failed entry
// does not stop the ones after it; the failures are joined into the returned
// error. Free entries are left to FreeTextures so they can run after
// painting.
func (p *Painter) ApplyTextures(delta gui.TexturesDelta) error {
	if p.destroyed {
		return ErrDestroyed
	}
	var errs []error
	for _, set := range delta.Set {
		if err := p.SetTexture(set.ID, set.Delta); err != nil {
			slogger().Warn("painter: texture update failed", "texture", set.ID.String(), "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FreeTextures releases every free entry of delta.
func (p *Painter) FreeTextures(delta gui.TexturesDelta) {
	for _, id := range delta.Free {
		p.FreeTexture(id)
	}
}

// RegisterUserTexture uploads img under a newly allocated user texture id.
// The returned id can be drawn by the GUI and released with FreeTexture.
func (p *Painter) RegisterUserTexture(img gui.ImageData) (gui.TextureID, error) {
	if p.destroyed {
		return gui.TextureID{}, ErrDestroyed
	}
	id := gui.UserTexture(p.nextUser)
	if err := p.textures.Upload(id, gui.FullDelta(img)); err != nil {
		return gui.TextureID{}, fmt.Errorf("register user texture: %w", err)
	}
	p.nextUser++
	return id, nil
}

// Destroy releases the pipeline and every cached texture. It is safe to
// call more than once.
func (p *Painter) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.textures.Destroy()
	p.destroyPipeline()
	slogger().Debug("painter: destroyed")
}

func (p *Painter) label(name string) string {
	return p.settings.Label + "_" + name
}
