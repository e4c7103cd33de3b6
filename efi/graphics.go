// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

import (
	"errors"
	"math/bits"
	"unsafe"

	"github.com/shogotsuneto/go-metal/gfx"
)

var EFI_GRAPHICS_OUTPUT_PROTOCOL_GUID = MustParseGUID("9042a9de-23dc-4a38-96fb-7aded080516a")

// EFI_GRAPHICS_PIXEL_FORMAT
const (
	PixelRedGreenBlueReserved8BitPerColor = iota
	PixelBlueGreenRedReserved8BitPerColor
	PixelBitMask
	PixelBltOnly
)

// ModeInformation represents an EFI Graphics Output Mode Information
// instance.
type ModeInformation struct {
	Version              uint32
	HorizontalResolution uint32
	VerticalResolution   uint32
	PixelFormat          uint32
	RedMask              uint32
	GreenMask            uint32
	BlueMask             uint32
	ReservedMask         uint32
	PixelsPerScanLine    uint32
}

// PixelBytes returns the number of bytes encoding each pixel, zero is
// returned when the mode exposes no linear framebuffer layout.
func (m *ModeInformation) PixelBytes() int {
	switch m.PixelFormat {
	case PixelRedGreenBlueReserved8BitPerColor, PixelBlueGreenRedReserved8BitPerColor:
		return 4
	case PixelBitMask:
		mask := m.RedMask | m.GreenMask | m.BlueMask | m.ReservedMask
		return (bits.Len32(mask) + 7) / 8
	default:
		return 0
	}
}

// ProtocolMode represents an EFI Graphics Output Protocol Mode
// instance.
type ProtocolMode struct {
	MaxMode         uint32
	Mode            uint32
	Info            uint64
	SizeOfInfo      uint64
	FrameBufferBase uint64
	FrameBufferSize uint64
}

// GetInfo returns the EFI Graphics Output Mode information instance.
func (d *ProtocolMode) GetInfo() (m *ModeInformation, err error) {
	m = &ModeInformation{}
	err = decode(m, d.Info)
	return
}

// GraphicsOutput represents an EFI Graphics Output Protocol instance.
type GraphicsOutput struct {
	QueryMode uint64
	SetMode   uint64
	Blt       uint64
	Mode      uint64
}

// GetMode returns the EFI Graphics Output Mode instance.
func (gop *GraphicsOutput) GetMode() (pm *ProtocolMode, err error) {
	pm = &ProtocolMode{}
	err = decode(pm, gop.Mode)
	return
}

// GetGraphicsOutput locates and returns the EFI Graphics Output
// Protocol instance.
func (s *BootServices) GetGraphicsOutput() (gop *GraphicsOutput, err error) {
	gop = &GraphicsOutput{}

	base, err := s.LocateProtocol(EFI_GRAPHICS_OUTPUT_PROTOCOL_GUID)

	if err != nil {
		return
	}

	err = decode(gop, base)

	return
}

// Framebuffer describes the linear framebuffer exposed through the EFI
// Graphics Output Protocol.
type Framebuffer struct {
	// Base is the framebuffer physical address.
	Base uint64
	// Size is the framebuffer length in bytes.
	Size uint64

	// Visible dimensions in pixels
	Width  int
	Height int
	// Pixels per scanline
	Stride int
	// Bytes per pixel
	BPP int
}

// Buffer returns the framebuffer memory region as a byte slice.
func (fb *Framebuffer) Buffer() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(fb.Base))), fb.Size)
}

// Info returns the framebuffer layout as a drawing descriptor.
func (fb *Framebuffer) Info() gfx.Info {
	return gfx.Info{
		Width:  fb.Width,
		Height: fb.Height,
		Stride: fb.Stride,
		BPP:    fb.BPP,
	}
}

// GetFramebuffer locates the EFI Graphics Output Protocol and returns
// its linear framebuffer descriptor, an error is returned when no
// drawable framebuffer is available.
func (s *BootServices) GetFramebuffer() (fb *Framebuffer, err error) {
	gop, err := s.GetGraphicsOutput()

	if err != nil {
		return nil, err
	}

	pm, err := gop.GetMode()

	if err != nil {
		return nil, err
	}

	info, err := pm.GetInfo()

	if err != nil {
		return nil, err
	}

	bpp := info.PixelBytes()

	if pm.FrameBufferBase == 0 || bpp == 0 {
		return nil, errors.New("no linear framebuffer")
	}

	fb = &Framebuffer{
		Base:   pm.FrameBufferBase,
		Size:   pm.FrameBufferSize,
		Width:  int(info.HorizontalResolution),
		Height: int(info.VerticalResolution),
		Stride: int(info.PixelsPerScanLine),
		BPP:    bpp,
	}

	return
}
