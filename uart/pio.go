// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uart

// x86 I/O port accessors, port accesses must reach the hardware exactly
// as issued which Go assembly guarantees.

// defined in pio_amd64.s
func in8(port uint16) (val byte)

// defined in pio_amd64.s
func out8(port uint16, val byte)
