// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package gfx implements drawing primitives over linear pixel
// framebuffers, described by their visible dimensions, scanline stride
// and bytes per pixel.
package gfx

// Info describes a linear framebuffer layout.
type Info struct {
	// Width and Height are the visible dimensions in pixels.
	Width  int
	Height int

	// Stride is the number of pixels per scanline, it may exceed
	// Width due to padding.
	Stride int

	// BPP is the number of bytes encoding each pixel.
	BPP int
}

// Color represents a pixel fill pattern of up to 4 channel bytes,
// stored in framebuffer channel order.
type Color struct {
	R byte
	G byte
	B byte
	A byte
}

// FillRect fills a rectangle of the requested dimensions, anchored at
// the framebuffer origin and clamped to its visible area. Channel bytes
// beyond the pixel size are not written and any pixel whose byte span
// would exceed the buffer length is skipped.
func FillRect(buf []byte, info Info, width int, height int, c Color) {
	if info.BPP < 1 {
		return
	}

	w := min(width, info.Width)
	h := min(height, info.Height)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*info.Stride + x) * info.BPP

			if i+info.BPP > len(buf) {
				continue
			}

			buf[i] = c.R

			if info.BPP > 1 {
				buf[i+1] = c.G
			}

			if info.BPP > 2 {
				buf[i+2] = c.B
			}

			if info.BPP > 3 {
				buf[i+3] = c.A
			}
		}
	}
}
