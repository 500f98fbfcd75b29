// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"image"
	"image/color"
)

// Display geometry. The SSD1306 GDDRAM is organized as 8 pages, each
// covering an horizontal band of 8 pixels high (1 byte) for 128 bytes.
// 8*128 = 1024 bytes total.
const (
	Width  = 128
	Height = 64

	nbPages  = Height / 8
	pageSize = Width
)

// Bit implements a 1 bit color, the only model the panel supports.
type Bit bool

// RGBA implements color.Color.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

// Possible bit values.
const (
	On  = Bit(true)
	Off = Bit(false)
)

// BitModel is the color model for Bit.
var BitModel = color.ModelFunc(func(c color.Color) color.Color {
	return toBit(c)
})

func toBit(c color.Color) Bit {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Same luminance cutoff as image1bit: anything at least half bright is
	// lit.
	return Bit((r|g|b)&0x8000 != 0)
}

// Framebuffer is the in-memory mirror of the panel's pixel state.
//
// Each byte holds a vertical run of 8 pixels: bit y%8 of byte
// x + (y/8)*Width is the pixel at (x, y). This is exactly the layout the
// controller expects during Update, so a page can be transmitted as a
// straight slice of the buffer.
//
// The zero value is a cleared buffer, ready to use. A Framebuffer is not
// safe for concurrent use; callers mixing drawing and updating across
// goroutines must serialize access themselves.
type Framebuffer struct {
	pix [nbPages * pageSize]byte
}

// NewFramebuffer returns a cleared framebuffer.
//
// Drawing against a Framebuffer never performs bus I/O; it only becomes
// visible once a Dev transmits it.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	f.pix = [nbPages * pageSize]byte{}
}

// SetPixel sets the pixel at (x, y) to on.
//
// Coordinates outside the display are silently ignored. This is the
// clipping policy: callers never need to pre-validate coordinates.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	mask := byte(1) << uint(y&7)
	if on {
		f.pix[x+y/8*Width] |= mask
	} else {
		f.pix[x+y/8*Width] &^= mask
	}
}

// Pixel reports whether the pixel at (x, y) is on. Out of range
// coordinates read as off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return f.pix[x+y/8*Width]&(byte(1)<<uint(y&7)) != 0
}

// page returns the raw bytes of one horizontal band, ready for the wire.
func (f *Framebuffer) page(n int) []byte {
	return f.pix[n*pageSize : (n+1)*pageSize]
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image. Min is guaranteed to be {0, 0}.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	return Bit(f.Pixel(x, y))
}

// Set implements draw.Image.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	f.SetPixel(x, y, bool(toBit(c)))
}

var _ image.Image = &Framebuffer{}
