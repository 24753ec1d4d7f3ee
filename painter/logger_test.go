// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package painter

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/guipaint/gui"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nopHandler.Enabled() = true, want false")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return nopHandler")
	}
}

func TestSetLoggerCapturesPaintLogs(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p, _ := newTestPainter(t, Settings{})
	meshes := []gui.ClippedMesh{quadMesh(gui.ManagedTexture(5), rect(0, 0, 1, 1), gui.Everything)}
	if _, err := p.Paint(testTarget(), meshes, 1); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"pipeline created", "mesh texture not cached", "texture=managed:5"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	orig := slogger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(nil)
	if slogger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
