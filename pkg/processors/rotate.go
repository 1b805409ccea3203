package processors

import (
	"fmt"

	"github.com/rawbytedev/binstream"
)

// RotateLeft circularly rotates every byte of data left by amount bits.
// amount must be in [-7, 7]; a negative amount is normalized to
// amount+8 before rotating. Only groupSize == 1 is defined; any other
// group size returns a NotImplementedError.
func RotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if amount < -7 || amount > 7 {
		return nil, &binstream.InvalidArgumentError{Reason: fmt.Sprintf("rotate amount %d out of [-7, 7]", amount)}
	}
	if groupSize != 1 {
		return nil, &binstream.NotImplementedError{Reason: fmt.Sprintf("rotate group size %d", groupSize)}
	}
	if amount < 0 {
		amount += 8
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = byte((uint16(b)<<uint(amount) | uint16(b)>>uint(8-amount)) & 0xFF)
	}
	return out, nil
}
