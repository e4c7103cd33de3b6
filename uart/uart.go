// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package uart implements a driver for 16550A compatible serial
// communication ports adopting the following reference specifications:
//
//	https://www.ti.com/lit/ds/symlink/pc16550d.pdf
//
// This package is only meant to be used with `GOOS=tamago GOARCH=amd64`
// as supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package uart

import (
	"sync"
)

// UART registers, as offsets from the base port
const (
	THR = 0x00 // Transmitter Holding Register
	IER = 0x01 // Interrupt Enable Register
	FCR = 0x02 // FIFO Control Register
	LCR = 0x03 // Line Control Register
	MCR = 0x04 // Modem Control Register
	LSR = 0x05 // Line Status Register

	// divisor latch, exposed while LCR DLAB is set
	DLL = 0x00
	DLM = 0x01
)

// Register bits
const (
	LCR_DLAB = 0x80 // divisor latch access
	LCR_8N1  = 0x03 // 8 data bits, no parity, one stop bit

	FCR_ENABLE  = 0x01
	FCR_CLEAR   = 0x06 // clear receive and transmit FIFOs
	FCR_TRIG_14 = 0xc0 // 14-byte receive trigger threshold

	MCR_DTR  = 0x01
	MCR_RTS  = 0x02
	MCR_OUT2 = 0x08

	LSR_THRE = 0x20 // transmitter holding register empty
)

// divisor of the standard 1.8432 MHz controller clock for 115200 bps
const divisor = 1

// UART represents a serial port instance.
type UART struct {
	// Controller index
	Index int
	// Base port address
	Base uint16

	sync.Mutex
}

// Init initializes the serial port for 115200 bps operation with 8N1
// framing, FIFOs enabled with a 14-byte receive trigger and all
// interrupts masked.
func (hw *UART) Init() {
	hw.Lock()
	defer hw.Unlock()

	out8(hw.Base+IER, 0x00)
	out8(hw.Base+LCR, LCR_DLAB)
	out8(hw.Base+DLL, divisor&0xff)
	out8(hw.Base+DLM, divisor>>8)
	out8(hw.Base+LCR, LCR_8N1)
	out8(hw.Base+FCR, FCR_ENABLE|FCR_CLEAR|FCR_TRIG_14)
	out8(hw.Base+MCR, MCR_DTR|MCR_RTS|MCR_OUT2)
}

func (hw *UART) txEmpty() bool {
	return in8(hw.Base+LSR)&LSR_THRE != 0
}

// Tx transmits a single character to the serial port, busy waiting on
// hardware flow control until the transmitter is ready to accept it.
func (hw *UART) Tx(c byte) {
	hw.Lock()
	defer hw.Unlock()

	for !hw.txEmpty() {
		// wait for transmitter availability
	}

	out8(hw.Base+THR, c)
}

// Write transmits the argument bytes in order, it implements the
// [io.Writer] interface and never fails.
func (hw *UART) Write(buf []byte) (n int, err error) {
	for n = 0; n < len(buf); n++ {
		hw.Tx(buf[n])
	}

	return
}
