// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/hako/durafmt"
	"github.com/u-root/u-root/pkg/boot/bzimage"

	"github.com/shogotsuneto/go-metal/efi"
	"github.com/shogotsuneto/go-metal/gfx"
	"github.com/shogotsuneto/go-metal/uart"
	"github.com/shogotsuneto/go-metal/vga"
)

// Fixed rectangle request for the framebuffer path.
const (
	rectWidth  = 200
	rectHeight = 100
)

// fillColor is the fixed rectangle fill pattern, the first channel is
// saturated so the rectangle stands out regardless of the actual
// channel order (BGRx or RGBx).
var fillColor = gfx.Color{R: 0xff, G: 0x80}

const greeting = "Hello from bare metal Go (VGA text)!\n"

// Serial diagnostic console.
var console = &uart.Console{
	Port:      UART0,
	ForceLine: true,
}

func init() {
	log.SetFlags(0)
}

// halted is the terminal state of the kernel, it parks the CPU issuing
// a halt instruction on each iteration and never returns.
func halted() {
	for {
		hlt()
	}
}

// kernelPanic is the process-wide terminal error handler, it emits a
// diagnostic marker over the serial line and parks the CPU.
func kernelPanic() {
	r := recover()

	if r == nil {
		return
	}

	console.Println("PANIC")
	console.Println(fmt.Sprint(r))

	halted()
}

// framebuffer returns the firmware framebuffer descriptor, or nil when
// no drawable linear framebuffer is available.
func framebuffer(t *efi.SystemTable) *efi.Framebuffer {
	if t == nil {
		return nil
	}

	b, err := t.GetBootServices()

	if err != nil {
		return nil
	}

	fb, err := b.GetFramebuffer()

	if err != nil {
		return nil
	}

	return fb
}

func memoryInfo(t *efi.SystemTable) {
	b, err := t.GetBootServices()

	if err != nil {
		return
	}

	memoryMap, err := b.GetMemoryMap()

	if err != nil {
		log.Printf("could not get memory map, %v", err)
		return
	}

	var ram uint64

	for _, desc := range memoryMap.Descriptors {
		if e, err := desc.E820(); err == nil && e.MemType == bzimage.RAM {
			ram += e.Size
		}
	}

	log.Printf("kernel: memory map has %d entries, %d MiB conventional RAM",
		len(memoryMap.Descriptors), ram/(1024*1024))
}

func main() {
	defer kernelPanic()

	log.Printf("%s/%s (%s) • metal", runtime.GOOS, runtime.GOARCH, runtime.Version())
	log.Print("kernel: entered main")

	systemTable, err := efi.GetSystemTable()

	if err != nil {
		log.Printf("kernel: could not access EFI System Table, %v", err)
	} else {
		log.Printf("kernel: firmware %s revision %#x", systemTable.Vendor(), systemTable.FirmwareRevision)
		memoryInfo(systemTable)
	}

	if fb := framebuffer(systemTable); fb != nil {
		log.Printf("kernel: framebuffer present (%dx%d, stride %d, %d bpp), skipping VGA text",
			fb.Width, fb.Height, fb.Stride, fb.BPP)

		gfx.FillRect(fb.Buffer(), fb.Info(), rectWidth, rectHeight, fillColor)

		log.Print("kernel: drew rectangle")
	} else {
		log.Print("kernel: no framebuffer, using VGA text")

		vga.ClearScreen()
		vga.Print(greeting)
	}

	log.Printf("kernel: entering halt loop after %s", durafmt.Parse(time.Duration(uptime())*time.Nanosecond))

	halted()
}
