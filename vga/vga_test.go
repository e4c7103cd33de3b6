// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package vga

import (
	"runtime"
	"strings"
	"testing"
	"unsafe"
)

// testWriter binds a writer to a heap allocated cell buffer in place of
// the video memory region.
func testWriter() (w *Writer, buf []uint16) {
	buf = make([]uint16, BufferWidth*BufferHeight)

	w = &Writer{
		color:  defaultColor,
		buffer: uintptr(unsafe.Pointer(&buf[0])),
	}

	return
}

func bottomRow(buf []uint16) []uint16 {
	return buf[(BufferHeight-1)*BufferWidth:]
}

func TestWriteString(t *testing.T) {
	w, buf := testWriter()

	s := "HELLO"
	w.WriteString(s)

	for i := 0; i < len(s); i++ {
		if got := bottomRow(buf)[i]; got != cell(s[i], defaultColor) {
			t.Fatalf("cell %d is %#x, expected %#x", i, got, cell(s[i], defaultColor))
		}
	}

	if w.columnPosition != len(s) {
		t.Fatalf("column position is %d, expected %d", w.columnPosition, len(s))
	}

	runtime.KeepAlive(buf)
}

func TestLineWrap(t *testing.T) {
	w, buf := testWriter()

	k := 3
	s := strings.Repeat("a", BufferWidth) + strings.Repeat("b", k)
	w.WriteString(s)

	// the first BufferWidth characters scrolled up by one row
	for col := 0; col < BufferWidth; col++ {
		if got := buf[(BufferHeight-2)*BufferWidth+col]; got != cell('a', defaultColor) {
			t.Fatalf("cell %d is %#x, expected %#x", col, got, cell('a', defaultColor))
		}
	}

	// the remaining k characters occupy the new bottom row
	for col := 0; col < k; col++ {
		if got := bottomRow(buf)[col]; got != cell('b', defaultColor) {
			t.Fatalf("cell %d is %#x, expected %#x", col, got, cell('b', defaultColor))
		}
	}

	if got := bottomRow(buf)[k]; got != cell(' ', defaultColor) {
		t.Fatalf("cell %d is %#x, expected blank", k, got)
	}

	if w.columnPosition != k {
		t.Fatalf("column position is %d, expected %d", w.columnPosition, k)
	}

	runtime.KeepAlive(buf)
}

func TestScrollClears(t *testing.T) {
	w, buf := testWriter()

	w.WriteString("lorem ipsum")

	for i := 0; i < BufferHeight; i++ {
		w.scroll()
	}

	for i, got := range buf {
		if got != cell(' ', defaultColor) {
			t.Fatalf("cell %d is %#x, expected blank", i, got)
		}
	}

	if w.columnPosition != 0 {
		t.Fatalf("column position is %d, expected 0", w.columnPosition)
	}

	runtime.KeepAlive(buf)
}

func TestClear(t *testing.T) {
	w, buf := testWriter()

	for i := 0; i < BufferHeight; i++ {
		w.WriteString(strings.Repeat("x", BufferWidth))
	}

	w.clear()

	for i, got := range buf {
		if got != cell(' ', defaultColor) {
			t.Fatalf("cell %d is %#x, expected blank", i, got)
		}
	}

	if w.columnPosition != 0 {
		t.Fatalf("column position is %d, expected 0", w.columnPosition)
	}

	runtime.KeepAlive(buf)
}
