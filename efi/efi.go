// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package efi implements a minimal driver for the Unified Extensible
// Firmware Interface (UEFI) following the specifications at:
//
//	https://uefi.org/specs/UEFI/2.10/
//
// The package covers only what a display kernel needs from firmware:
// the System Table, Boot Services protocol location, the Graphics
// Output Protocol framebuffer, the memory map and system reset.
//
// This package is only meant to be used with `GOOS=tamago GOARCH=amd64`
// as supported by the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago.
package efi

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"
	"unsafe"

	"github.com/usbarmory/tamago/dma"
)

// EFI Table Header Signature
const signature = 0x5453595320494249 // TSYS IBI

// EFI_STATUS success code
const EFI_SUCCESS = 0x00

const maxVendorSize = 32

// set in start.s at UEFI application entry
var (
	imageHandle uint64
	systemTable uint64
)

// defined in efi.s
func callService(fn uint64, a1, a2, a3, a4 uint64) (status uint64)

// This function helps preparing callService arguments, allowing a
// single call for all EFI services with 4 or less arguments.
//
// Obtaining a pointer in this fashion is typically unsafe and
// tamago/dma package would be best to handle this. However, as
// arguments are prepared right before invoking Go assembly, it is
// considered safe as it is identical as having *uint64 as callService
// prototype.
func ptrval(ptr any) uint64 {
	var p unsafe.Pointer

	switch v := ptr.(type) {
	case *uint64:
		p = unsafe.Pointer(v)
	case *uint32:
		p = unsafe.Pointer(v)
	case *byte:
		p = unsafe.Pointer(v)
	default:
		panic("internal error, invalid ptrval")
	}

	return uint64(uintptr(p))
}

func parseStatus(status uint64) (err error) {
	switch {
	case status > 0:
		return fmt.Errorf("EFI_STATUS error %#x (%d)", status, status&0xff)
	default:
		return
	}
}

// TableHeader represents the data structure that precedes all of the
// standard EFI table types.
type TableHeader struct {
	Signature  uint64
	Revision   uint32
	HeaderSize uint32
	CRC32      uint32
	Reserved   uint32
}

// SystemTable represents the EFI System Table, containing pointers to
// the runtime and boot services tables.
type SystemTable struct {
	Header               TableHeader
	FirmwareVendor       uint64
	FirmwareRevision     uint32
	_                    uint32
	ConsoleInHandle      uint64
	ConIn                uint64
	ConsoleOutHandle     uint64
	ConOut               uint64
	StandardErrorHandle  uint64
	StdErr               uint64
	RuntimeServices      uint64
	BootServices         uint64
	NumberOfTableEntries uint64
	ConfigurationTable   uint64
}

// BootServices represents an EFI Boot Services instance.
type BootServices struct {
	base uint64
}

// RuntimeServices represents an EFI Runtime Services instance.
type RuntimeServices struct {
	base uint64
}

// GetSystemTable returns the EFI System Table if the runtime has been
// launched as an UEFI application.
func GetSystemTable() (t *SystemTable, err error) {
	t = &SystemTable{}

	if systemTable == 0 {
		return nil, errors.New("EFI System Table pointer is nil")
	}

	if err = decode(t, systemTable); err != nil {
		return nil, err
	}

	if t.Header.Signature != signature {
		return nil, errors.New("EFI System Table pointer is invalid")
	}

	return
}

// GetBootServices returns an EFI Boot Services instance.
func (d *SystemTable) GetBootServices() (b *BootServices, err error) {
	if d.BootServices == 0 {
		return nil, errors.New("EFI Boot Services pointer is nil")
	}

	b = &BootServices{
		base: d.BootServices,
	}

	return
}

// GetRuntimeServices returns an EFI Runtime Services instance.
func (d *SystemTable) GetRuntimeServices() (r *RuntimeServices, err error) {
	if d.RuntimeServices == 0 {
		return nil, errors.New("EFI Runtime Services pointer is nil")
	}

	r = &RuntimeServices{
		base: d.RuntimeServices,
	}

	return
}

// Vendor returns the firmware vendor string.
func (d *SystemTable) Vendor() string {
	if d.FirmwareVendor == 0 {
		return ""
	}

	r, err := dma.NewRegion(uint(d.FirmwareVendor), maxVendorSize, false)

	if err != nil {
		return ""
	}

	addr, buf := r.Reserve(maxVendorSize, 0)
	defer r.Release(addr)

	var s []uint16

	for i := 0; i+1 < maxVendorSize; i += 2 {
		c := binary.LittleEndian.Uint16(buf[i:])

		if c == 0x0000 {
			break
		}

		s = append(s, c)
	}

	return string(utf16.Decode(s))
}

// ImageHandle returns the UEFI image handle pointer.
func ImageHandle() uint64 {
	return imageHandle
}
