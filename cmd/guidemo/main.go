// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command guidemo drives a small GUI through guipaint on a headless device.
//
// It scripts a few frames of pointer input against a demo panel, paints each
// frame into an offscreen target and logs the painter statistics. With
// -user-texture it also rasterizes an image with gg and shows it in the panel
// as a user texture.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/guipaint"
	"github.com/gogpu/guipaint/gui"
	"github.com/gogpu/guipaint/internal/demoui"
	"github.com/gogpu/guipaint/painter"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

type config struct {
	width, height int
	scale         float64
	frames        int
	userTexture   bool
	verbose       bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 800, "window width in points")
	flag.IntVar(&cfg.height, "height", 600, "window height in points")
	flag.Float64Var(&cfg.scale, "scale", 1, "pixels per point")
	flag.IntVar(&cfg.frames, "frames", 4, "number of frames to run")
	flag.BoolVar(&cfg.userTexture, "user-texture", true, "show an image rendered with gg")
	flag.BoolVar(&cfg.verbose, "v", false, "debug logging and mesh validation")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	guipaint.SetLogger(logger)

	if err := run(cfg); err != nil {
		log.Fatalf("guidemo: %v", err)
	}
}

func run(cfg config) error {
	if cfg.width <= 0 || cfg.height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", cfg.width, cfg.height)
	}
	if cfg.scale <= 0 {
		cfg.scale = 1
	}

	device, queue, closeDevice, err := openDevice()
	if err != nil {
		return err
	}
	defer closeDevice()

	window := gpucontext.NullWindowProvider{W: cfg.width, H: cfg.height, SF: cfg.scale}
	ui := demoui.New("guipaint demo")

	integ, err := guipaint.NewWithDevice(device, queue, window, ui,
		guipaint.WithLabel("guidemo"),
		guipaint.WithValidation(cfg.verbose),
		guipaint.WithURLHandler(func(url string) {
			slog.Info("guidemo: open url", "url", url)
		}),
	)
	if err != nil {
		return err
	}
	defer func() { _ = integ.Destroy() }()

	var badge gui.TextureID
	if cfg.userTexture {
		img, err := renderBadge(96, 96)
		if err != nil {
			return fmt.Errorf("render badge: %w", err)
		}
		badge, err = integ.Painter().RegisterUserTexture(gui.ColorImageFromImage(img, integ.Painter().MaxTextureSide()))
		if err != nil {
			return err
		}
	}

	pw := uint32(float64(cfg.width) * cfg.scale)
	ph := uint32(float64(cfg.height) * cfg.scale)
	target, destroyTarget, err := createTarget(device, pw, ph)
	if err != nil {
		return err
	}
	defer destroyTarget()

	var (
		clicks  int
		enabled bool
		button  gui.Rect
	)
	build := demoui.Build(func(ui *demoui.Context) {
		ui.Label(fmt.Sprintf("frame %d", ui.Frame()))
		if ui.Button("Click me") {
			clicks++
		}
		button = ui.LastRect()
		ui.Checkbox("Enabled", &enabled)
		ui.Hyperlink("gogpu on GitHub", "https://github.com/gogpu")
		if cfg.userTexture {
			ui.Image(badge, gui.Vec2{X: 96, Y: 96})
		}
	})

	for frame := 0; frame < cfg.frames; frame++ {
		for _, ev := range script(frame, button) {
			integ.HandleEvent(ev)
		}
		repaint, err := integ.Run(build)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		if err := integ.Paint(target); err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		s := integ.Stats()
		slog.Info("guidemo: frame",
			"frame", frame,
			"meshes", s.Meshes,
			"draws", s.Draws,
			"vertices", s.Vertices,
			"indices", s.Indices,
			"skipped", s.Skipped,
			"repaint", repaint,
		)
	}
	slog.Info("guidemo: done", "frames", cfg.frames, "clicks", clicks)
	return nil
}

// script returns the input injected before a frame: a hover over the button
// on the second frame, then a click on the third.
func script(frame int, button gui.Rect) []guipaint.Event {
	if !button.IsPositive() {
		return nil
	}
	x := float64(button.Min.X+button.Max.X) / 2
	y := float64(button.Min.Y+button.Max.Y) / 2
	switch frame {
	case 1:
		return []guipaint.Event{guipaint.MouseMoveEvent{X: x, Y: y}}
	case 2:
		return []guipaint.Event{
			guipaint.MouseButtonEvent{Button: gpucontext.MouseButtonLeft, X: x, Y: y, Pressed: true},
			guipaint.MouseButtonEvent{Button: gpucontext.MouseButtonLeft, X: x, Y: y},
		}
	}
	return nil
}

// renderBadge rasterizes the image shown as a user texture.
func renderBadge(w, h int) (image.Image, error) {
	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	fw, fh := float64(w), float64(h)
	dc.SetRGB(0.15, 0.2, 0.3)
	dc.DrawRoundedRectangle(0, 0, fw, fh, fw/8)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetRGBA(1, 0.3, 0.3, 0.8)
	dc.DrawCircle(fw*0.4, fh*0.4, fw/4)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetRGBA(0.3, 0.6, 1, 0.8)
	dc.DrawCircle(fw*0.6, fh*0.6, fw/4)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	dc.DrawRoundedRectangle(1, 1, fw-2, fh-2, fw/8)
	if err := dc.Stroke(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// openDevice opens the first adapter of the noop backend.
func openDevice() (hal.Device, hal.Queue, func(), error) {
	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("no adapters")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, nil, fmt.Errorf("open device: %w", err)
	}
	return open.Device, open.Queue, func() {
		open.Device.Destroy()
		instance.Destroy()
	}, nil
}

// createTarget creates the offscreen color attachment frames are painted into.
func createTarget(device hal.Device, w, h uint32) (painter.Target, func(), error) {
	format := painter.DefaultSettings().TargetFormat
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "guidemo_target",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return painter.Target{}, nil, fmt.Errorf("create target: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "guidemo_target_view",
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return painter.Target{}, nil, fmt.Errorf("create target view: %w", err)
	}
	target := painter.Target{View: view, Width: w, Height: h}
	return target, func() {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
	}, nil
}
