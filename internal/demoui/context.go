// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package demoui is a minimal immediate-mode GUI used by the demo command,
// the examples and the integration tests. It lays out a single panel of
// widgets top-down and tessellates it into textured quads.
package demoui

import (
	"github.com/gogpu/guipaint/gui"
)

// Layout metrics in points.
const (
	margin     = 8
	padding    = 6
	spacing    = 4
	rowHeight  = 20
	panelWidth = 280
	boxSize    = 12
)

// Palette, premultiplied.
var (
	panelFill   = gui.RGBAUnmultiplied(27, 27, 27, 240)
	panelStroke = gui.RGB(60, 60, 60)
	textColor   = gui.RGB(220, 220, 220)
	linkColor   = gui.RGB(90, 170, 255)
	widgetFill  = gui.RGB(60, 60, 60)
	hoverFill   = gui.RGB(80, 80, 80)
	activeFill  = gui.RGB(100, 100, 140)
	checkFill   = gui.RGB(140, 200, 120)
)

// Context implements gui.Context.
type Context struct {
	title string

	frame      int
	atlasSent  bool
	ppp        float32
	screen     gui.Rect
	textures   gui.TexturesDelta
	shapes     []gui.ClippedShape
	clip       gui.Rect
	cursorIcon gui.CursorIcon
	copied     string
	openURL    string
	changed    bool

	// Pointer state. pressAt and releaseAt are set for the frame in which
	// the primary button went down or up.
	pointer    gui.Pos2
	hasPointer bool
	pressAt    *gui.Pos2
	releaseAt  *gui.Pos2

	nextID uint64
	hot    uint64
	active uint64

	// Layout cursor inside the panel.
	panel    gui.Rect
	cursor   gui.Pos2
	bgIndex  int
	lastRect gui.Rect
}

var _ gui.Context = (*Context)(nil)

// New returns a context that draws a panel captioned title.
func New(title string) *Context {
	return &Context{title: title, ppp: 1}
}

// Build adapts a widget function to the builder accepted by Run.
func Build(fn func(*Context)) func(gui.Context) {
	return func(c gui.Context) { fn(c.(*Context)) }
}

// Frame returns the number of completed frames.
func (c *Context) Frame() int { return c.frame }

// LastRect returns the rectangle of the most recent widget.
func (c *Context) LastRect() gui.Rect { return c.lastRect }

// PanelRect returns the panel rectangle of the last frame.
func (c *Context) PanelRect() gui.Rect { return c.panel }

// Run implements gui.Context.
func (c *Context) Run(input gui.RawInput, build func(gui.Context)) gui.FullOutput {
	c.begin(input)
	c.Label(c.title)
	c.Separator()
	build(c)
	return c.end()
}

func (c *Context) begin(input gui.RawInput) {
	c.ppp = input.PixelsPerPoint
	if c.ppp <= 0 {
		c.ppp = 1
	}
	c.screen = input.ScreenRect
	c.shapes = c.shapes[:0]
	c.cursorIcon = gui.CursorDefault
	c.copied = ""
	c.openURL = ""
	c.changed = false
	c.nextID = 0
	c.hot = 0
	c.pressAt, c.releaseAt = nil, nil

	for _, ev := range input.Events {
		switch ev := ev.(type) {
		case gui.PointerMoved:
			c.pointer, c.hasPointer = ev.Pos, true
		case gui.PointerButton:
			c.pointer, c.hasPointer = ev.Pos, true
			if ev.Button != gui.PointerPrimary {
				continue
			}
			pos := ev.Pos
			if ev.Pressed {
				c.pressAt = &pos
			} else {
				c.releaseAt = &pos
			}
		case gui.PointerGone:
			c.hasPointer = false
		case gui.Copy:
			c.copied = c.title
		case gui.Key:
			if ev.Key == gui.KeyEscape && ev.Pressed {
				c.active = 0
			}
		case gui.WindowFocused:
			if !ev.Focused {
				c.active = 0
			}
		}
	}

	if !c.atlasSent {
		c.textures.Set = append(c.textures.Set, gui.TextureSet{
			ID:    gui.FontTexture,
			Delta: gui.FullDelta(buildAtlas()),
		})
		c.atlasSent = true
	}

	width := float32(panelWidth)
	if avail := c.screen.Width() - 2*margin; avail > 0 && avail < width {
		width = avail
	}
	origin := gui.Pos2{X: c.screen.Min.X + margin, Y: c.screen.Min.Y + margin}
	c.panel = gui.Rect{Min: origin, Max: gui.Pos2{X: origin.X + width, Y: origin.Y}}
	c.clip = c.screen.Intersect(gui.Rect{Min: origin, Max: gui.Pos2{X: origin.X + width, Y: c.screen.Max.Y}})
	c.cursor = gui.Pos2{X: origin.X + padding, Y: origin.Y + padding}

	// Reserve the background slot; its height is known only after build.
	c.bgIndex = len(c.shapes)
	c.shapes = append(c.shapes, gui.ClippedShape{})
}

func (c *Context) end() gui.FullOutput {
	c.panel.Max.Y = c.cursor.Y + padding - spacing
	c.clip = c.clip.Intersect(c.panel)
	c.shapes[c.bgIndex] = gui.ClippedShape{
		ClipRect: c.clip,
		Shape:    rectShape{Rect: c.panel, Fill: panelFill, Stroke: panelStroke},
	}
	for i := range c.shapes {
		c.shapes[i].ClipRect = c.clip
	}

	if c.releaseAt != nil {
		c.active = 0
	}
	c.frame++

	return gui.FullOutput{
		Platform: gui.PlatformOutput{
			Cursor:     c.cursorIcon,
			CopiedText: c.copied,
			OpenURL:    c.openURL,
		},
		Textures:       c.textures.Take(),
		Shapes:         append([]gui.ClippedShape(nil), c.shapes...),
		NeedsRepaint:   c.changed,
		PixelsPerPoint: c.ppp,
	}
}

// WantsPointerInput implements gui.Context.
func (c *Context) WantsPointerInput() bool {
	return c.active != 0 || (c.hasPointer && c.panel.Contains(c.pointer))
}

// IsUsingPointer implements gui.Context.
func (c *Context) IsUsingPointer() bool { return c.active != 0 }

// WantsKeyboardInput implements gui.Context. The demo has no text fields.
func (c *Context) WantsKeyboardInput() bool { return false }

// allocate reserves a row of the given height and returns its rectangle.
func (c *Context) allocate(height float32) gui.Rect {
	w := c.panel.Width() - 2*padding
	r := gui.RectFromMinSize(c.cursor, gui.Vec2{X: w, Y: height})
	c.cursor.Y += height + spacing
	c.lastRect = r
	return r
}

// interact runs the hover and click logic of a widget covering r.
func (c *Context) interact(r gui.Rect) (id uint64, hovered, clicked bool) {
	c.nextID++
	id = c.nextID

	hovered = c.hasPointer && r.Contains(c.pointer)
	if hovered {
		c.hot = id
	}
	if c.pressAt != nil && r.Contains(*c.pressAt) {
		c.active = id
	}
	if c.releaseAt != nil && c.active == id && r.Contains(*c.releaseAt) {
		clicked = true
		c.changed = true
	}
	return id, hovered, clicked
}

func (c *Context) add(shape any) {
	c.shapes = append(c.shapes, gui.ClippedShape{ClipRect: c.clip, Shape: shape})
}
