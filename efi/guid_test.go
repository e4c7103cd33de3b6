// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"testing"
)

func TestParseGUID(t *testing.T) {
	s := "9042a9de-23dc-4a38-96fb-7aded080516a"

	g, err := ParseGUID(s)

	if err != nil {
		t.Fatal(err)
	}

	// first three fields stored little-endian
	if g[0] != 0xde || g[1] != 0xa9 || g[2] != 0x42 || g[3] != 0x90 {
		t.Fatalf("unexpected native layout %x", g[:])
	}

	if g.String() != s {
		t.Fatalf("round trip mismatch, got %q", g.String())
	}
}

func TestParseGUIDInvalid(t *testing.T) {
	// invalid registry format (truncated first field)
	if _, err := ParseGUID("042a9de-23dc-4a38-96fb-7aded080516a"); err == nil {
		t.Fatal("expected error")
	}
}
