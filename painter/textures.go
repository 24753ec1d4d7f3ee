// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/wgpu/hal"
)

// textureFormat is the format of every cached texture. Pixels are
// premultiplied sRGBA, so sampling yields linear premultiplied color.
const textureFormat = gputypes.TextureFormatRGBA8UnormSrgb

// alphaGamma is the gamma applied when expanding coverage images.
const alphaGamma = 1.0

// Compile-time interface checks.
var (
	_ gpucontext.Texture              = (*Texture)(nil)
	_ gpucontext.TextureRegionUpdater = (*Texture)(nil)
)

// Texture is a GPU texture owned by a TextureCache.
type Texture struct {
	raw    hal.Texture
	queue  hal.Queue
	width  int
	height int
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// HAL returns the underlying HAL texture.
func (t *Texture) HAL() hal.Texture { return t.raw }

// UpdateRegion writes premultiplied RGBA8 pixels into the rectangle at
// (x, y) of size w x h.
func (t *Texture) UpdateRegion(x, y, w, h int, data []byte) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if len(data) != w*h*4 {
		return fmt.Errorf("%w: %dx%d region needs %d bytes, got %d",
			ErrImageSize, w, h, w*h*4, len(data))
	}
	if x < 0 || y < 0 || x > t.width-w || y > t.height-h {
		return fmt.Errorf("%w: region (%d,%d %dx%d) in %dx%d texture",
			ErrRegionOutOfBounds, x, y, w, h, t.width, t.height)
	}
	return t.write(x, y, w, h, data)
}

func (t *Texture) write(x, y, w, h int, data []byte) error {
	err := t.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.raw,
			MipLevel: 0,
			Origin:   hal.Origin3D{X: uint32(x), Y: uint32(y)},
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(w * 4),
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	if err != nil {
		return fmt.Errorf("painter: write texture: %w", err)
	}
	return nil
}

// TextureCache maps GUI texture ids to GPU textures.
//
// Entries are created by full deltas, patched by partial deltas and
// destroyed by Free or Destroy. The cache is owned by one Painter and is
// not safe for concurrent use.
type TextureCache struct {
	device   hal.Device
	queue    hal.Queue
	label    string
	maxSide  int
	textures map[gui.TextureID]*Texture
}

// NewTextureCache creates an empty cache on device. Textures with a side
// larger than maxSide are rejected.
func NewTextureCache(device hal.Device, queue hal.Queue, maxSide int) *TextureCache {
	if maxSide <= 0 {
		maxSide = DefaultMaxTextureSide
	}
	return &TextureCache{
		device:   device,
		queue:    queue,
		label:    "gui",
		maxSide:  maxSide,
		textures: make(map[gui.TextureID]*Texture),
	}
}

// Upload applies delta to the texture identified by id.
//
// A whole delta allocates a new texture sized to the image and replaces any
// previous entry. A partial delta patches the existing entry in place; when
// there is no entry the update is dropped.
func (c *TextureCache) Upload(id gui.TextureID, delta gui.ImageDelta) error {
	if delta.Image == nil {
		return fmt.Errorf("%w: %s has no image", ErrImageSize, id)
	}
	w, h, data, err := imageBytes(delta.Image)
	if err != nil {
		return fmt.Errorf("texture %s: %w", id, err)
	}

	if delta.Pos != nil {
		tex, ok := c.textures[id]
		if !ok {
			slogger().Warn("painter: partial update for unknown texture dropped",
				"texture", id.String(), "x", delta.Pos[0], "y", delta.Pos[1])
			return nil
		}
		if w == 0 || h == 0 {
			return nil
		}
		x, y := delta.Pos[0], delta.Pos[1]
		if x < 0 || y < 0 || x > tex.width-w || y > tex.height-h {
			return fmt.Errorf("%w: texture %s region (%d,%d %dx%d) in %dx%d",
				ErrRegionOutOfBounds, id, x, y, w, h, tex.width, tex.height)
		}
		return tex.write(x, y, w, h, data)
	}

	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: texture %s is %dx%d", ErrImageSize, id, w, h)
	}
	if w > c.maxSide || h > c.maxSide {
		return fmt.Errorf("%w: texture %s is %dx%d, limit %d",
			ErrTextureTooLarge, id, w, h, c.maxSide)
	}

	tex, err := c.create(id, w, h)
	if err != nil {
		return err
	}
	if err := tex.write(0, 0, w, h, data); err != nil {
		c.device.DestroyTexture(tex.raw)
		return err
	}

	if old, ok := c.textures[id]; ok {
		c.device.DestroyTexture(old.raw)
	}
	c.textures[id] = tex
	return nil
}

func (c *TextureCache) create(id gui.TextureID, w, h int) (*Texture, error) {
	raw, err := c.device.CreateTexture(&hal.TextureDescriptor{
		Label: fmt.Sprintf("%s_texture_%s", c.label, id),
		Size: hal.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        textureFormat,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("painter: create texture %s: %w", id, err)
	}
	return &Texture{raw: raw, queue: c.queue, width: w, height: h}, nil
}

// Free destroys the texture identified by id. Unknown ids are ignored.
func (c *TextureCache) Free(id gui.TextureID) {
	tex, ok := c.textures[id]
	if !ok {
		return
	}
	delete(c.textures, id)
	c.device.DestroyTexture(tex.raw)
}

// Lookup returns the cached texture for id.
func (c *TextureCache) Lookup(id gui.TextureID) (*Texture, bool) {
	tex, ok := c.textures[id]
	return tex, ok
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int { return len(c.textures) }

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	for id, tex := range c.textures {
		c.device.DestroyTexture(tex.raw)
		delete(c.textures, id)
	}
}

// imageBytes flattens an image into tightly packed RGBA8 rows.
func imageBytes(img gui.ImageData) (w, h int, data []byte, err error) {
	dims := img.Dims()
	w, h = dims[0], dims[1]
	if w < 0 || h < 0 {
		return 0, 0, nil, fmt.Errorf("%w: negative size %dx%d", ErrImageSize, w, h)
	}

	var px []gui.Color32
	switch img := img.(type) {
	case *gui.ColorImage:
		if len(img.Pixels) != w*h {
			return 0, 0, nil, fmt.Errorf("%w: %dx%d image has %d pixels",
				ErrImageSize, w, h, len(img.Pixels))
		}
		px = img.Pixels
	case *gui.AlphaImage:
		if len(img.Pixels) != w*h {
			return 0, 0, nil, fmt.Errorf("%w: %dx%d image has %d pixels",
				ErrImageSize, w, h, len(img.Pixels))
		}
		px = img.SRGBAPixels(alphaGamma)
	default:
		return 0, 0, nil, fmt.Errorf("%w: unsupported image %T", ErrImageSize, img)
	}

	data = make([]byte, len(px)*4)
	for i, c := range px {
		copy(data[i*4:], c[:])
	}
	return w, h, data, nil
}
