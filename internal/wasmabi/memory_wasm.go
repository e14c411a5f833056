// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build wasm

package wasmabi

import (
	"sync"
	"unsafe"
)

// Buffers handed to the host stay reachable here until freed. The Go
// collector does not move objects, so the address stays valid too.
var (
	mu     sync.Mutex
	pinned = make(map[uint32][]byte)
)

// Alloc returns the address of a fresh buffer of size bytes.
func Alloc(size uint32) uint32 {
	if size == 0 {
		size = 1
	}
	buf := make([]byte, size)
	ptr := uint32(uintptr(unsafe.Pointer(&buf[0])))

	mu.Lock()
	pinned[ptr] = buf
	mu.Unlock()
	return ptr
}

// Free releases a buffer returned by Alloc or Return. Unknown pointers are
// ignored.
func Free(ptr uint32) {
	mu.Lock()
	delete(pinned, ptr)
	mu.Unlock()
}

// String copies size bytes at ptr into a Go string.
func String(ptr, size uint32) string {
	if size == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(uintptr(ptr))), size))
}

// Return copies s into a pinned buffer and packs its location.
func Return(s string) uint64 {
	if s == "" {
		return 0
	}
	ptr := Alloc(uint32(len(s)))
	mu.Lock()
	copy(pinned[ptr], s)
	mu.Unlock()
	return Pack(ptr, uint32(len(s)))
}

