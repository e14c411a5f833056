// Package wasmabi moves strings across the WebAssembly export boundary.
//
// Only 32- and 64-bit numbers cross the boundary, so a string travels as a
// pointer and a length into the module's linear memory. The host obtains a
// buffer with alloc, writes the bytes and passes (ptr, len). Results come back
// as a single u64 packing ptr in the high half and len in the low half; the
// host reads the bytes and returns the buffer with free.
package wasmabi

// Pack combines a pointer and length into one u64 result.
func Pack(ptr, size uint32) uint64 {
	return uint64(ptr)<<32 | uint64(size)
}

// Unpack splits a value produced by Pack.
func Unpack(v uint64) (ptr, size uint32) {
	return uint32(v >> 32), uint32(v)
}
