// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"strings"
	"testing"

	"github.com/lhjundi/interactive-traffic-light/ssd1306"
)

func TestDraw(t *testing.T) {
	d := New(&Opts{W: ssd1306.Width, H: ssd1306.Height})
	var out bytes.Buffer
	d.w = &out

	fb := ssd1306.NewFramebuffer()
	fb.DrawString(0, 0, "hi", true)
	if err := d.Draw(d.Bounds(), fb, image.Point{}); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if strings.Count(got, "\n") != ssd1306.Height {
		t.Errorf("expected %d lines, got %d", ssd1306.Height, strings.Count(got, "\n"))
	}
	// Column 0 of 'h' is 0x7F: rows 0 to 6 lit. Column 2 is 0x04: only row
	// 2 lit.
	if !d.pixels[ssd1306.Width] {
		t.Error("glyph pixel (0, 1) of 'h' not lit")
	}
	if !d.pixels[2*ssd1306.Width+2] {
		t.Error("glyph pixel (2, 2) of 'h' not lit")
	}
	if d.pixels[ssd1306.Width+2] {
		t.Error("background pixel (2, 1) of 'h' must be off")
	}

	// A second frame moves the cursor back up instead of scrolling.
	out.Reset()
	if err := d.Draw(d.Bounds(), fb, image.Point{}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\033[64A") {
		t.Error("redraw must rewind the cursor")
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
}

func TestBounds(t *testing.T) {
	d := New(&Opts{W: 16, H: 8})
	if got := d.Bounds(); got != image.Rect(0, 0, 16, 8) {
		t.Fatalf("Bounds() = %s", got)
	}
	if d.String() != "Screen2D" {
		t.Fatal("unexpected String()")
	}
}
