// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
)

// Command opcodes. See the datasheet, pages 28-32.
const (
	_SETLOWCOLUMN        = 0x00
	_SETHIGHCOLUMN       = 0x10
	_MEMORYMODE          = 0x20
	_SETSTARTLINE        = 0x40
	_SETCONTRAST         = 0x81
	_CHARGEPUMP          = 0x8D
	_SETSEGMENTREMAP     = 0xA1
	_DISPLAYALLON_RESUME = 0xA4
	_NORMALDISPLAY       = 0xA6
	_SETMULTIPLEX        = 0xA8
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_PAGESTARTADDRESS    = 0xB0
	_COMSCANDEC          = 0xC8
	_SETDISPLAYOFFSET    = 0xD3
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETPRECHARGE        = 0xD9
	_SETCOMPINS          = 0xDA
	_SETVCOMDETECT       = 0xDB
)

const (
	i2cCmd  = 0x00 // I²C transaction has a command byte
	i2cData = 0x40 // I²C transaction has a stream of data bytes
)

// bootDelay is how long the controller needs to settle after power-up
// before it accepts commands.
const bootDelay = 100 * time.Millisecond

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Addr: 0x3C,
}

// Opts defines the options for the device.
type Opts struct {
	// Addr is the I²C address of the display. Boards wire either 0x3C (the
	// default) or 0x3D.
	Addr uint16
}

// initCmd is the power-on configuration sequence, sent one command
// transaction per byte. The order is a contract with the chip: reordering
// or omitting an entry risks a garbled or dark panel.
var initCmd = [...]byte{
	_DISPLAYOFF,               // Display off
	_MEMORYMODE, 0x00,         // Horizontal addressing mode
	_PAGESTARTADDRESS,         // Page start address for page addressing mode; 0
	_COMSCANDEC,               // COM output scan direction remapped
	_SETLOWCOLUMN,             // Low column start address; 0
	_SETHIGHCOLUMN,            // High column start address; 0
	_SETSTARTLINE,             // Display start line; 0
	_SETCONTRAST, 0xFF,        // Max contrast
	_SETSEGMENTREMAP,          // Segment remap, column 127 mapped to SEG0
	_NORMALDISPLAY,            // Non-inverted display
	_SETMULTIPLEX, 0x3F,       // Multiplex ratio, 1/64 duty
	_DISPLAYALLON_RESUME,      // Output follows GDDRAM content
	_SETDISPLAYOFFSET, 0x00,   // No display offset
	_SETDISPLAYCLOCKDIV, 0xF0, // Max oscillator frequency, divide ratio 1
	_SETPRECHARGE, 0x22,       // Pre-charge period
	_SETCOMPINS, 0x12,         // Alternative COM pin configuration
	_SETVCOMDETECT, 0x20,      // Vcomh deselect level ~0.77*Vcc
	_CHARGEPUMP, 0x14,         // Enable internal charge pump
	_DISPLAYON,                // Display on
}

// Dev is an open handle to the display controller.
//
// It owns the framebuffer exclusively. Dev is not safe for concurrent use.
type Dev struct {
	c  conn.Conn
	fb *Framebuffer
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1306
// display controller, configured and ready to draw.
//
// The bus handle stays owned by the caller and may be shared with other
// peripherals, as long as all access is serialized.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d := &Dev{
		c:  &i2c.Dev{Bus: b, Addr: addr},
		fb: NewFramebuffer(),
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s}", d.c)
}

// Init brings the controller into its operating mode by sending the full
// configuration sequence.
//
// NewI2C already calls it; calling it again is safe and simply re-runs the
// same sequence, which is the way to recover a panel after an external
// reset or a Halt.
func (d *Dev) Init() error {
	// The chip needs time after power-up before accepting commands.
	time.Sleep(bootDelay)
	for _, c := range initCmd {
		if err := d.sendCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Framebuffer returns the in-memory pixel state owned by the device.
//
// It can be drawn to directly, e.g. through image/draw; the panel shows
// the result after the next Update.
func (d *Dev) Framebuffer() *Framebuffer {
	return d.fb
}

// Clear turns every pixel of the framebuffer off. The panel is unchanged
// until Update is called.
func (d *Dev) Clear() {
	d.fb.Clear()
}

// SetPixel sets one framebuffer pixel. Out of range coordinates are
// silently ignored.
func (d *Dev) SetPixel(x, y int, on bool) {
	d.fb.SetPixel(x, y, on)
}

// DrawChar renders one ASCII character into the framebuffer. See
// Framebuffer.DrawChar for the exact cell semantics.
func (d *Dev) DrawChar(x, y int, c byte, on bool) {
	d.fb.DrawChar(x, y, c, on)
}

// DrawString renders an ASCII string into the framebuffer, 6 pixels of
// advance per character.
func (d *Dev) DrawString(x, y int, s string, on bool) {
	d.fb.DrawString(x, y, s, on)
}

// Update transmits the whole framebuffer to the panel, page by page in
// ascending order.
//
// The controller only auto-increments its column pointer within a page, so
// each page is re-addressed before its 128 data bytes are sent. A bus
// error aborts the transfer as-is: pages already sent stay on the panel,
// the rest keep their previous content.
func (d *Dev) Update() error {
	for page := 0; page < nbPages; page++ {
		if err := d.sendCommand(_PAGESTARTADDRESS | byte(page)); err != nil {
			return err
		}
		if err := d.sendCommand(_SETLOWCOLUMN); err != nil {
			return err
		}
		if err := d.sendCommand(_SETHIGHCOLUMN); err != nil {
			return err
		}
		if err := d.sendData(d.fb.page(page)); err != nil {
			return err
		}
	}
	return nil
}

// Halt turns the panel off. It implements conn.Resource.
//
// The framebuffer is left untouched; Init followed by Update restores the
// display.
func (d *Dev) Halt() error {
	return d.sendCommand(_DISPLAYOFF)
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.fb.Bounds()
}

// Draw implements display.Drawer.
//
// It composites src into the framebuffer and synchronously transmits the
// result. On a 100kHz I²C bus a full frame takes in the order of 100ms, so
// callers animating may prefer a background goroutine.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.fb, r, src, sp)
	return d.Update()
}

// sendCommand issues one command transaction: the command control byte
// followed by a single opcode or operand byte.
func (d *Dev) sendCommand(c byte) error {
	return d.c.Tx([]byte{i2cCmd, c}, nil)
}

// sendData issues one data transaction: the data control byte followed by
// raw page bytes.
func (d *Dev) sendData(b []byte) error {
	return d.c.Tx(append([]byte{i2cData}, b...), nil)
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
