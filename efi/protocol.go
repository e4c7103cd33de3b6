// Copyright (c) The go-metal authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package efi

// EFI Boot Services offset for LocateProtocol
const locateProtocol = 0x140

// LocateProtocol calls EFI_BOOT_SERVICES.LocateProtocol().
func (s *BootServices) LocateProtocol(guid GUID) (addr uint64, err error) {
	status := callService(s.base+locateProtocol,
		guid.ptrval(),
		0,
		ptrval(&addr),
		0,
	)

	return addr, parseStatus(status)
}
