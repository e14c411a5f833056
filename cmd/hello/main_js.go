// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

//go:build js && wasm

// Build for the browser and load with wasm_exec.js:
//
//	GOOS=js GOARCH=wasm go build -o hello.wasm ./cmd/hello
//
// The module registers add(a, b) and greet(name) on globalThis.
package main

import (
	"syscall/js"

	"nickandperla.net/primer/internal/hello"
)

func main() {
	js.Global().Set("add", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 2 {
			return js.Undefined()
		}
		return int(hello.Add(int32(args[0].Int()), int32(args[1].Int())))
	}))
	js.Global().Set("greet", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return js.Undefined()
		}
		return hello.Greet(args[0].String())
	}))

	// Exports must outlive main.
	select {}
}
