// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package uart

import (
	"bytes"
	"testing"
)

type testPort struct {
	buf []byte
}

func (p *testPort) Tx(c byte) {
	p.buf = append(p.buf, c)
}

func TestForceLine(t *testing.T) {
	p := &testPort{}

	c := &Console{
		Port:      p,
		ForceLine: true,
	}

	c.WriteString("A\n")

	if !bytes.Equal(p.buf, []byte{0x41, 0x0d, 0x0a}) {
		t.Fatalf("unexpected transmission %x", p.buf)
	}
}

func TestNoForceLine(t *testing.T) {
	p := &testPort{}

	c := &Console{
		Port: p,
	}

	c.WriteString("A\n")

	if !bytes.Equal(p.buf, []byte{0x41, 0x0a}) {
		t.Fatalf("unexpected transmission %x", p.buf)
	}
}

func TestPrintln(t *testing.T) {
	p := &testPort{}

	c := &Console{
		Port:      p,
		ForceLine: true,
	}

	c.Println("hello")

	if string(p.buf) != "hello\r\n" {
		t.Fatalf("unexpected transmission %q", p.buf)
	}
}
