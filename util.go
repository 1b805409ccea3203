package binstream

import "github.com/rawbytedev/binstream/internal/common"

// Mod returns the non-negative remainder of a divided by b, matching
// the Euclidean modulo generated code expects for negative dividends.
// A non-positive b is reported as an InvalidArgumentError.
func Mod(a, b int64) (int64, error) {
	r, err := common.Mod(a, b)
	if err != nil {
		return 0, &InvalidArgumentError{Reason: err.Error()}
	}
	return r, nil
}

// ByteArrayCompare lexicographically compares two byte slices by
// unsigned byte value, returning -1, 0, or 1.
func ByteArrayCompare(a, b []byte) int { return common.ByteArrayCompare(a, b) }

// ReverseString reverses s by extended grapheme cluster rather than by
// byte or rune, so combining marks stay attached to their base
// character.
func ReverseString(s string) string { return common.ReverseString(s) }
