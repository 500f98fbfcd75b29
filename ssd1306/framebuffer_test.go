// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestSetPixelLayout(t *testing.T) {
	// Every coordinate must land on byte x + (y/8)*Width, bit y%8.
	tests := []struct {
		x, y int
		idx  int
		mask byte
	}{
		{0, 0, 0, 0x01},
		{127, 0, 127, 0x01},
		{0, 7, 0, 0x80},
		{0, 8, Width, 0x01},
		{5, 13, 5 + Width, 0x20},
		{127, 63, 127 + 7*Width, 0x80},
	}
	for _, tc := range tests {
		f := NewFramebuffer()
		f.SetPixel(tc.x, tc.y, true)
		if f.pix[tc.idx] != tc.mask {
			t.Errorf("SetPixel(%d, %d): pix[%d] = %#02x, want %#02x", tc.x, tc.y, tc.idx, f.pix[tc.idx], tc.mask)
		}
		for i, b := range f.pix {
			if i != tc.idx && b != 0 {
				t.Errorf("SetPixel(%d, %d): stray write at pix[%d] = %#02x", tc.x, tc.y, i, b)
			}
		}
	}
}

func TestSetPixelRoundTrip(t *testing.T) {
	f := NewFramebuffer()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			f.SetPixel(x, y, true)
			if !f.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = false after SetPixel on", x, y)
			}
			f.SetPixel(x, y, false)
			if f.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = true after SetPixel off", x, y)
			}
		}
	}
	for _, b := range f.pix {
		if b != 0 {
			t.Fatal("buffer not empty after setting and clearing every pixel")
		}
	}
}

func TestSetPixelPreservesNeighbors(t *testing.T) {
	f := NewFramebuffer()
	f.SetPixel(10, 10, true)
	f.SetPixel(10, 11, true)
	f.SetPixel(10, 10, false)
	if f.Pixel(10, 10) {
		t.Error("pixel (10, 10) still on")
	}
	if !f.Pixel(10, 11) {
		t.Error("pixel (10, 11) was clobbered")
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	f := NewFramebuffer()
	for _, p := range []image.Point{
		{-1, 0}, {0, -1}, {-1, -1},
		{Width, 0}, {0, Height}, {Width, Height},
		{1 << 20, 1 << 20}, {-1 << 20, 5},
	} {
		f.SetPixel(p.X, p.Y, true)
		f.SetPixel(p.X, p.Y, false)
		if f.Pixel(p.X, p.Y) {
			t.Errorf("Pixel(%d, %d) = true out of range", p.X, p.Y)
		}
	}
	for _, b := range f.pix {
		if b != 0 {
			t.Fatal("out of range SetPixel modified the buffer")
		}
	}
}

func TestClear(t *testing.T) {
	f := NewFramebuffer()
	for i := range f.pix {
		f.pix[i] = 0xA5
	}
	f.Clear()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f.Pixel(x, y) {
				t.Fatalf("Pixel(%d, %d) = true after Clear", x, y)
			}
		}
	}
}

func TestFramebufferImage(t *testing.T) {
	f := NewFramebuffer()
	if got := f.Bounds(); got != image.Rect(0, 0, Width, Height) {
		t.Fatalf("Bounds() = %s", got)
	}
	if f.ColorModel() != BitModel {
		t.Fatal("unexpected color model")
	}
	f.Set(3, 4, color.White)
	if !f.Pixel(3, 4) {
		t.Error("Set(color.White) did not turn the pixel on")
	}
	if f.At(3, 4) != On {
		t.Errorf("At(3, 4) = %v, want On", f.At(3, 4))
	}
	f.Set(3, 4, color.Black)
	if f.At(3, 4) != Off {
		t.Errorf("At(3, 4) = %v, want Off", f.At(3, 4))
	}

	// The framebuffer is a valid draw.Image target.
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{0xFF})
	src.SetGray(1, 1, color.Gray{0xFF})
	draw.Src.Draw(f, image.Rect(20, 30, 22, 32), src, image.Point{})
	if !f.Pixel(20, 30) || !f.Pixel(21, 31) {
		t.Error("draw.Src did not set the expected pixels")
	}
	if f.Pixel(21, 30) || f.Pixel(20, 31) {
		t.Error("draw.Src set unexpected pixels")
	}
}

func TestBitColor(t *testing.T) {
	if r, g, b, a := On.RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Error("On must be opaque white")
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 0xffff {
		t.Error("Off must be opaque black")
	}
	if BitModel.Convert(color.Gray{0x90}) != On {
		t.Error("bright gray must convert to On")
	}
	if BitModel.Convert(color.Gray{0x10}) != Off {
		t.Error("dark gray must convert to Off")
	}
}
