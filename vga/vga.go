// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package vga implements a driver for legacy VGA text mode output,
// writing character cells to the fixed video memory region mapped at
// physical address 0xb8000.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=amd64`
// as supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package vga

import (
	"sync"
)

// Video memory
const (
	// Text buffer physical address
	BufferAddr = 0xb8000

	// Buffer dimensions in character cells
	BufferWidth  = 80
	BufferHeight = 25
)

// Color attributes
const (
	Black     = 0x0
	LightGray = 0x7
)

// defaultColor encodes a light gray foreground over a black background.
const defaultColor = LightGray | Black<<4

// cell encodes a screen character and its color attribute in VGA text
// mode cell layout.
func cell(char byte, color byte) uint16 {
	return uint16(color)<<8 | uint16(char)
}

// Writer represents the text mode cursor state, writes always target
// the bottom row of the character grid.
type Writer struct {
	columnPosition int
	color          byte
	buffer         uintptr
}

func (w *Writer) cellAddr(row int, col int) uintptr {
	return w.buffer + uintptr(row*BufferWidth+col)*2
}

// WriteByte stores a single character on the bottom row at the current
// column, line feeds and column overflow scroll the buffer up first.
func (w *Writer) WriteByte(b byte) {
	if b == '\n' {
		w.scroll()
		return
	}

	if w.columnPosition >= BufferWidth {
		w.scroll()
	}

	store16(w.cellAddr(BufferHeight-1, w.columnPosition), cell(b, w.color))
	w.columnPosition++
}

// WriteString writes each byte of the argument string in order.
func (w *Writer) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		w.WriteByte(s[i])
	}
}

// scroll shifts every row up by one, blanks the bottom row and resets
// the column position.
func (w *Writer) scroll() {
	for row := 1; row < BufferHeight; row++ {
		for col := 0; col < BufferWidth; col++ {
			store16(w.cellAddr(row-1, col), load16(w.cellAddr(row, col)))
		}
	}

	w.clearRow(BufferHeight - 1)
	w.columnPosition = 0
}

// clearRow blanks every cell of the argument row.
func (w *Writer) clearRow(row int) {
	blank := cell(' ', w.color)

	for col := 0; col < BufferWidth; col++ {
		store16(w.cellAddr(row, col), blank)
	}
}

// clear blanks the entire buffer and resets the column position.
func (w *Writer) clear() {
	for row := 0; row < BufferHeight; row++ {
		w.clearRow(row)
	}

	w.columnPosition = 0
}

var mux sync.Mutex
var writer *Writer

// getWriter returns the process-wide writer instance, bound to the
// video memory region on first use. The caller must hold mux.
func getWriter() *Writer {
	if writer == nil {
		writer = &Writer{
			color:  defaultColor,
			buffer: BufferAddr,
		}
	}

	return writer
}

// Print writes the argument string to the text buffer.
func Print(s string) {
	mux.Lock()
	defer mux.Unlock()

	getWriter().WriteString(s)
}

// ClearScreen blanks the entire text buffer and resets the column
// position.
func ClearScreen() {
	mux.Lock()
	defer mux.Unlock()

	getWriter().clear()
}
