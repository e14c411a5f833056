// Package longest selects the longer of two text values.
//
// The result of Longest is one of its arguments, never a new value. For
// strings this is always safe: Go strings are immutable and the collector
// keeps the chosen value alive for as long as the result is referenced. For
// byte slices the result is a view sharing the chosen argument's backing
// array, so it is only meaningful while both arguments are left unmodified.
// That window is the shorter of the two arguments' lifetimes; callers that
// need the result beyond it should use LongestCopy.
package longest

// Text is the set of types Longest operates on.
type Text interface {
	~string | ~[]byte
}

// Longest returns x if it is strictly longer than y, and y otherwise, so a
// tie selects the second argument. Length is measured in bytes.
func Longest[S Text](x, y S) S {
	if len(x) > len(y) {
		return x
	}
	return y
}

// LongestCopy is Longest for byte slices, returning a copy the caller owns.
func LongestCopy(x, y []byte) []byte {
	return append([]byte(nil), Longest(x, y)...)
}
