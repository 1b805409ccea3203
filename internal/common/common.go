// Package common holds small helpers shared by the stream engine and
// its processors: non-negative modulo, lexicographic byte comparison,
// and grapheme-aware string reversal.
package common

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Mod returns the non-negative remainder of a divided by b, i.e. a
// value in [0, b). b must be positive.
func Mod(a, b int64) (int64, error) {
	if b <= 0 {
		return 0, fmt.Errorf("common: mod divisor must be positive, got %d", b)
	}
	r := a % b
	if r < 0 {
		r += b
	}
	return r, nil
}

// ByteArrayCompare lexicographically compares a and b by unsigned byte
// value, returning -1, 0, or 1. On a common-prefix tie the shorter
// array is lesser.
func ByteArrayCompare(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// ReverseString reverses s by user-perceived character (extended
// grapheme cluster, UAX #29), not by byte or rune, so combining marks
// and multi-rune emoji stay attached to their base character.
func ReverseString(s string) string {
	clusters := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		clusters = append(clusters, cluster)
	}
	var out []byte
	for i := len(clusters) - 1; i >= 0; i-- {
		out = append(out, clusters[i]...)
	}
	return string(out)
}
