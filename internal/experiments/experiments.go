// Package experiments shows what Go does in situations that corrupt memory
// in languages with manual lifetimes: a result outliving its source, a
// reference into a reallocated slice, and a shallow copy of an owning value.
// Each experiment writes a trace and returns the facts it observed.
package experiments

import (
	"fmt"
	"io"

	"nickandperla.net/primer/internal/longest"
)

// LifetimeReport is the outcome of Lifetime.
type LifetimeReport struct {
	Inside      string // string result while the scoped buffer is intact
	Outside     string // string result after the buffer was clobbered
	ViewInside  string // []byte view result while the buffer is intact
	ViewOutside string // []byte view result after the buffer was clobbered
}

// Lifetime selects the longer of a long-lived value and a scoped buffer,
// then clobbers the buffer. The string result is a value of its own and is
// unaffected; the byte-slice result is a view into the buffer and observes
// the overwrite, but never reads freed memory.
func Lifetime(w io.Writer) LifetimeReport {
	s1 := "hello"
	var (
		result string
		view   []byte
		rep    LifetimeReport
	)

	{
		buf := []byte("world!!!")
		result = longest.Longest(s1, string(buf))
		view = longest.Longest([]byte(s1), buf)
		rep.Inside, rep.ViewInside = result, string(view)
		fmt.Fprintf(w, "Inside: %s (view %s)\n", result, view)

		for i := range buf {
			buf[i] = 'X'
		}
	}

	rep.Outside, rep.ViewOutside = result, string(view)
	fmt.Fprintf(w, "Outside: %s (view %s)\n", result, view)
	return rep
}

// ReallocReport is the outcome of Realloc.
type ReallocReport struct {
	CapBefore int
	CapAfter  int
	Moved     bool // the slice's backing array changed
	Stale     int  // value read through the old element pointer after a write
	Current   int  // v[0] after the write through the old pointer
}

// Realloc keeps a pointer to the first element of a slice and appends until
// the slice grows. The pointer still refers to valid memory, the old backing
// array, so writes through it no longer reach the slice.
func Realloc(w io.Writer) ReallocReport {
	v := []int{1, 2, 3}
	rep := ReallocReport{CapBefore: cap(v)}
	first := &v[0]
	fmt.Fprintf(w, "Before: v = %v, cap = %d, first = %d\n", v, cap(v), *first)

	for i := 0; i < 100; i++ {
		v = append(v, i)
	}
	rep.CapAfter = cap(v)
	rep.Moved = first != &v[0]

	*first = 100
	rep.Stale, rep.Current = *first, v[0]
	fmt.Fprintf(w, "After: cap = %d, moved = %t, first = %d, v[0] = %d\n",
		rep.CapAfter, rep.Moved, rep.Stale, rep.Current)
	return rep
}

// Buffer owns a byte slice. Copying a Buffer by value shares the slice.
type Buffer struct {
	ID   int
	Data []byte
}

// Clone returns a Buffer with its own copy of the data.
func (b Buffer) Clone() Buffer {
	return Buffer{ID: b.ID, Data: append([]byte(nil), b.Data...)}
}

// SharedCopyReport is the outcome of SharedCopy.
type SharedCopyReport struct {
	Original string // original after mutating the shallow copy
	Shallow  string
	Cloned   string // clone taken before the mutation
}

// SharedCopy copies a Buffer by assignment and by Clone, then mutates the
// assigned copy. The original observes the change; the clone does not.
// Neither copy is ever released twice: the collector owns the memory.
func SharedCopy(w io.Writer) SharedCopyReport {
	s1 := Buffer{ID: 1, Data: []byte("hello")}
	s2 := s1
	s3 := s1.Clone()
	s2.ID, s3.ID = 2, 3

	s2.Data[0] = 'j'

	rep := SharedCopyReport{
		Original: string(s1.Data),
		Shallow:  string(s2.Data),
		Cloned:   string(s3.Data),
	}
	for _, b := range []Buffer{s1, s2, s3} {
		fmt.Fprintf(w, "[%d] %q\n", b.ID, b.Data)
	}
	return rep
}
