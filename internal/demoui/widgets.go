// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package demoui

import (
	"github.com/gogpu/guipaint/gui"
)

// Label draws a line of text.
func (c *Context) Label(text string) {
	r := c.allocate(rowHeight)
	c.add(textShape{Pos: textOrigin(r), Text: text, Color: textColor})
}

// Button draws a push button and reports whether it was clicked this
// frame.
func (c *Context) Button(text string) bool {
	r := c.allocate(rowHeight)
	r.Max.X = min(r.Max.X, r.Min.X+textWidth(text)+2*padding)
	c.lastRect = r

	id, hovered, clicked := c.interact(r)
	fill := widgetFill
	switch {
	case c.active == id:
		fill = activeFill
	case hovered:
		fill = hoverFill
	}
	if hovered {
		c.cursorIcon = gui.CursorPointingHand
	}

	c.add(rectShape{Rect: r, Fill: fill, Stroke: panelStroke})
	c.add(textShape{Pos: gui.Pos2{X: r.Min.X + padding, Y: textOrigin(r).Y}, Text: text, Color: textColor})
	return clicked
}

// Checkbox draws a labelled check box bound to value. It reports whether
// value was toggled this frame.
func (c *Context) Checkbox(text string, value *bool) bool {
	r := c.allocate(rowHeight)
	_, hovered, clicked := c.interact(r)
	if clicked {
		*value = !*value
	}
	if hovered {
		c.cursorIcon = gui.CursorPointingHand
	}

	box := gui.RectFromMinSize(
		gui.Pos2{X: r.Min.X, Y: r.Min.Y + (rowHeight-boxSize)/2},
		gui.Vec2{X: boxSize, Y: boxSize},
	)
	fill := widgetFill
	if hovered {
		fill = hoverFill
	}
	c.add(rectShape{Rect: box, Fill: fill, Stroke: panelStroke})
	if *value {
		c.add(rectShape{Rect: box.Shrink(3), Fill: checkFill})
	}
	c.add(textShape{Pos: gui.Pos2{X: box.Max.X + padding, Y: textOrigin(r).Y}, Text: text, Color: textColor})
	return clicked
}

// Hyperlink draws a link that asks the host to open url when clicked.
func (c *Context) Hyperlink(text, url string) {
	r := c.allocate(rowHeight)
	r.Max.X = min(r.Max.X, r.Min.X+textWidth(text))
	c.lastRect = r

	_, hovered, clicked := c.interact(r)
	if clicked {
		c.openURL = url
	}
	origin := textOrigin(r)
	c.add(textShape{Pos: origin, Text: text, Color: linkColor})
	if hovered {
		c.cursorIcon = gui.CursorPointingHand
		underline := gui.Rect{
			Min: gui.Pos2{X: r.Min.X, Y: origin.Y + glyphH},
			Max: gui.Pos2{X: r.Max.X, Y: origin.Y + glyphH + 1},
		}
		c.add(rectShape{Rect: underline, Fill: linkColor})
	}
}

// Image draws texture id at size, scaled down to fit the panel width.
func (c *Context) Image(id gui.TextureID, size gui.Vec2) {
	avail := c.panel.Width() - 2*padding
	if size.X > avail && size.X > 0 {
		size = size.Scale(avail / size.X)
	}
	r := c.allocate(size.Y)
	r.Max.X = r.Min.X + size.X
	c.lastRect = r
	c.add(rectShape{
		Rect:    r,
		Fill:    gui.White,
		Texture: id,
		UV:      gui.Rect{Max: gui.Pos2{X: 1, Y: 1}},
	})
}

// Separator draws a horizontal rule.
func (c *Context) Separator() {
	r := c.allocate(1)
	c.add(rectShape{Rect: r, Fill: panelStroke})
}

// textOrigin vertically centers a line of text in row r.
func textOrigin(r gui.Rect) gui.Pos2 {
	return gui.Pos2{X: r.Min.X, Y: r.Min.Y + (r.Height()-glyphH)/2}
}

func textWidth(s string) float32 {
	n := 0
	for range s {
		n++
	}
	return float32(n * glyphW)
}
