// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"image"
	"log"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/lhjundi/interactive-traffic-light/ssd1306"
)

// Example renders a countdown with an antialiased TrueType face instead of
// the built-in 5x7 font, by rasterizing through gg into the framebuffer.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	dev, err := ssd1306.NewI2C(b, &ssd1306.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 32})

	for i := 9; i >= 0; i-- {
		dc := gg.NewContext(ssd1306.Width, ssd1306.Height)
		dc.SetRGB(0, 0, 0)
		dc.Clear()
		dc.SetRGB(1, 1, 1)
		dc.SetFontFace(face)
		dc.DrawStringAnchored(string(rune('0'+i)), ssd1306.Width/2, ssd1306.Height/2, 0.5, 0.5)
		if err := dev.Draw(dev.Bounds(), dc.Image(), image.Point{}); err != nil {
			log.Fatal(err)
		}
		time.Sleep(time.Second)
	}
}
