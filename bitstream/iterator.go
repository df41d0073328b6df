package bitstream

import (
	"github.com/spacemeshos/bitseq/shared"
)

// cursor walks a right-aligned buffer bit by bit. The buffer is borrowed, not
// copied; callers must not modify it while a cursor is in use.
type cursor struct {
	buf      []byte
	total    int
	visited  int
	byteIdx  int
	bitIdx   int // 0 is the MS bit of buf[byteIdx]
	backward bool
}

func newCursor(buf []byte, bitCount int, dir shared.Direction) cursor {
	if bitCount < 0 {
		bitCount = 0
	}
	if limit := len(buf) * 8; bitCount > limit {
		bitCount = limit
	}

	c := cursor{buf: buf, total: bitCount}
	if dir == shared.RightToLeft {
		c.backward = true
		c.byteIdx = len(buf) - 1
		c.bitIdx = 8
		return c
	}

	// Skip the filler bits of the leading byte.
	c.bitIdx = shared.FillerBits(bitCount) - 1
	if len(buf) > shared.ByteLen(bitCount) {
		c.byteIdx = len(buf) - shared.ByteLen(bitCount)
	}
	return c
}

func (c *cursor) hasNext() bool {
	return c.visited < c.total
}

func (c *cursor) next() (Bit, error) {
	if !c.hasNext() {
		return Zero, shared.ErrExhausted
	}
	c.visited++

	if c.backward {
		c.bitIdx--
		if c.bitIdx < 0 {
			c.bitIdx = 7
			c.byteIdx--
		}
	} else {
		c.bitIdx++
		if c.bitIdx > 7 {
			c.bitIdx = 0
			c.byteIdx++
		}
	}

	return Bit(c.buf[c.byteIdx]&(0x80>>uint(c.bitIdx)) != 0), nil
}

// BitIterator yields the bits of a right-aligned buffer from the
// most-significant to the least-significant one.
type BitIterator struct {
	c cursor
}

// NewBitIterator returns an iterator over the trailing bitCount bits of buf.
// buf must be right-aligned.
func NewBitIterator(buf []byte, bitCount int) *BitIterator {
	return &BitIterator{c: newCursor(buf, bitCount, shared.LeftToRight)}
}

// HasNext reports whether Next will return another bit.
func (it *BitIterator) HasNext() bool {
	return it.c.hasNext()
}

// Next returns the next bit, or shared.ErrExhausted past the last one.
func (it *BitIterator) Next() (Bit, error) {
	return it.c.next()
}

// Remove is not supported.
func (it *BitIterator) Remove() error {
	return shared.ErrUnsupported
}

// IntIterator yields the bits of a right-aligned buffer as 0 or 1, in either
// direction.
type IntIterator struct {
	c   cursor
	dir shared.Direction
}

// NewIntIterator returns an iterator over the trailing bitCount bits of buf,
// visiting them in the given direction. buf must be right-aligned.
func NewIntIterator(buf []byte, bitCount int, dir shared.Direction) *IntIterator {
	return &IntIterator{c: newCursor(buf, bitCount, dir), dir: dir}
}

// Direction returns the traversal order.
func (it *IntIterator) Direction() shared.Direction {
	return it.dir
}

// HasNext reports whether Next will return another value.
func (it *IntIterator) HasNext() bool {
	return it.c.hasNext()
}

// Next returns the next bit as 0 or 1, or shared.ErrExhausted past the last one.
func (it *IntIterator) Next() (int, error) {
	bit, err := it.c.next()
	if err != nil {
		return 0, err
	}
	return bit.Int(), nil
}

// Remove is not supported.
func (it *IntIterator) Remove() error {
	return shared.ErrUnsupported
}
