// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package vga

// The character grid is observed by the display hardware rather than
// read back, cell accesses must therefore be performed exactly as
// issued and in program order. Defining the accessors in assembly keeps
// each access opaque to compiler optimization.

// defined in mmio_amd64.s
func store16(addr uintptr, val uint16)

// defined in mmio_amd64.s
func load16(addr uintptr) (val uint16)
