// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a 128x64 monochrome OLED display via a SSD1306
// controller over I²C.
//
// The driver keeps a 1 kiB framebuffer in memory. Drawing calls (SetPixel,
// DrawChar, DrawString) only mutate that buffer and never touch the bus;
// the panel is updated when Update is called, which transmits the whole
// buffer page by page. There is no differential update: every Update sends
// all 8 pages.
//
// The framebuffer implements image.Image and image/draw.Image with a one
// bit color model, so the standard image machinery and rasterizers such as
// github.com/fogleman/gg can target it directly. See the example
// subdirectory.
//
// # Wiring
//
// Connect SDA and SCL to the I²C bus. The panel answers on the fixed 7-bit
// address 0x3C.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
