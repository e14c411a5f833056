// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build wasip1

// Build as a reactor so the exports stay callable after initialization:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o hello.wasm ./cmd/hello
package main

import (
	"nickandperla.net/primer/internal/hello"
	"nickandperla.net/primer/internal/wasmabi"
)

//go:wasmexport add
func add(a, b int32) int32 {
	return hello.Add(a, b)
}

//go:wasmexport greet
func greet(ptr, size uint32) uint64 {
	return wasmabi.Return(hello.Greet(wasmabi.String(ptr, size)))
}

//go:wasmexport alloc
func alloc(size uint32) uint32 {
	return wasmabi.Alloc(size)
}

//go:wasmexport free
func free(ptr uint32) {
	wasmabi.Free(ptr)
}

func main() {}
