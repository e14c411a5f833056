package hello

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, int32(5), Add(2, 3))
	assert.Equal(t, int32(0), Add(-1, 1))
	assert.Equal(t, int32(0), Add(0, 0))
	assert.Equal(t, int32(-7), Add(-3, -4))
}

func TestAddWraps(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Add(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MaxInt32), Add(math.MinInt32, -1))
	assert.Equal(t, int32(-2), Add(math.MaxInt32, math.MaxInt32))
}

func TestGreet(t *testing.T) {
	got := Greet("World")
	assert.Equal(t, "Hello, World! "+Suffix, got)
	assert.Equal(t, 1, strings.Count(got, "World"))
	assert.True(t, strings.HasSuffix(got, "World! "+Suffix))
}

func TestGreetUnicode(t *testing.T) {
	for _, name := range []string{"世界", "Zoë", "🦀🐹", "", "a\x00b", `<script>"&'`} {
		got := Greet(name)
		assert.Equal(t, "Hello, "+name+"! "+Suffix, got, "name %q", name)
	}
}

func TestIdempotent(t *testing.T) {
	assert.Equal(t, Add(40, 2), Add(40, 2))
	assert.Equal(t, Greet("Ada"), Greet("Ada"))
}
