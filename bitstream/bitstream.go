// Package bitstream provides read-only, single-pass traversal over
// right-aligned bit buffers, where the buffer holds bitCount significant bits
// flush against its least-significant end and the first bit visited
// left-to-right is the most-significant one.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

// Int returns 1 for One and 0 for Zero.
func (b Bit) Int() int {
	if b {
		return 1
	}
	return 0
}
