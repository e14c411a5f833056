// Package hello holds the two functions exported across the WebAssembly
// boundary by cmd/hello.
package hello

// Suffix closes every greeting.
const Suffix = "From Go WASM! 🐹"

// Add returns a + b. Overflow wraps around in two's complement, the same
// result a wasm i32.add produces.
func Add(a, b int32) int32 {
	return a + b
}

// Greet returns a greeting for name. The name is embedded verbatim.
func Greet(name string) string {
	return "Hello, " + name + "! " + Suffix
}
