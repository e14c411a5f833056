package wasmabi

import (
	"math"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		ptr, size uint32
		packed    uint64
	}{
		{0, 0, 0},
		{1, 2, 1<<32 | 2},
		{0x10000, 17, 0x10000<<32 | 17},
		{math.MaxUint32, math.MaxUint32, math.MaxUint64},
	}
	for _, tt := range tests {
		if got := Pack(tt.ptr, tt.size); got != tt.packed {
			t.Errorf("Pack(%#x, %d) = %#x, want %#x", tt.ptr, tt.size, got, tt.packed)
		}
		ptr, size := Unpack(tt.packed)
		if ptr != tt.ptr || size != tt.size {
			t.Errorf("Unpack(%#x) = (%#x, %d), want (%#x, %d)", tt.packed, ptr, size, tt.ptr, tt.size)
		}
	}
}
