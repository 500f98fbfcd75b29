// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package trafficlight is a container for the peripheral drivers used by
// the interactive traffic light board.
//
// The drivers live in subpackages. See ssd1306 for the OLED status display
// and screen2d for a terminal based emulator of that display.
package trafficlight
