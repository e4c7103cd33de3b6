// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uart

// Port represents the transmit side of a serial port.
type Port interface {
	Tx(c byte)
}

// Console implements a diagnostic output console over a serial port.
type Console struct {
	// Port represents the underlying serial port.
	Port Port

	// ForceLine controls whether line feeds (LF) should be supplemented
	// with a leading carriage return (CR).
	ForceLine bool
}

// WriteString transmits each byte of the argument string in order, any
// line feed is preceded by a carriage return when ForceLine is set.
func (c *Console) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		b := s[i]

		if b == 0x0a && c.ForceLine { // LF
			c.Port.Tx(0x0d) // CR
		}

		c.Port.Tx(b)
	}
}

// Println transmits the argument string followed by a line feed.
func (c *Console) Println(s string) {
	c.WriteString(s)
	c.WriteString("\n")
}
