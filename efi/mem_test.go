// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"testing"

	"github.com/u-root/u-root/pkg/boot/bzimage"
)

func TestMemoryDescriptor(t *testing.T) {
	d := &MemoryDescriptor{
		Type:          EfiConventionalMemory,
		PhysicalStart: 0x100000,
		NumberOfPages: 16,
	}

	if d.PhysicalEnd() != 0x100000+16*PageSize {
		t.Fatalf("unexpected physical end %#x", d.PhysicalEnd())
	}

	if d.Size() != 16*PageSize {
		t.Fatalf("unexpected size %d", d.Size())
	}
}

func TestE820(t *testing.T) {
	conversions := []struct {
		efiType uint32
		memType bzimage.E820Type
	}{
		{EfiLoaderCode, bzimage.RAM},
		{EfiBootServicesData, bzimage.RAM},
		{EfiConventionalMemory, bzimage.RAM},
		{EfiACPIReclaimMemory, bzimage.ACPI},
		{EfiACPIMemoryNVS, bzimage.NVS},
		{EfiPersistentMemory, AddressRangePersistentMemory},
		{EfiMemoryMappedIO, bzimage.Reserved},
		{EfiRuntimeServicesCode, bzimage.Reserved},
	}

	for _, c := range conversions {
		d := &MemoryDescriptor{
			Type:          c.efiType,
			PhysicalStart: 0x200000,
			NumberOfPages: 4,
		}

		e, err := d.E820()

		if err != nil {
			t.Fatal(err)
		}

		if e.MemType != c.memType {
			t.Fatalf("EFI type %d mapped to %d, expected %d", c.efiType, e.MemType, c.memType)
		}

		if e.Addr != d.PhysicalStart || e.Size != uint64(d.Size()) {
			t.Fatalf("unexpected E820 range %#x+%d", e.Addr, e.Size)
		}
	}
}
