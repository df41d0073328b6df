package bitseq

import (
	"github.com/spacemeshos/bitseq/bitstream"
	"github.com/spacemeshos/bitseq/shared"
)

// Iterator returns a left-to-right iterator over the bits of v. Later
// changes to v are not visible to the iterator.
func (v *Value) Iterator() *bitstream.BitIterator {
	return bitstream.NewBitIterator(v.Bytes(), v.count)
}

// IntIterator returns an iterator yielding the bits of v as 0 or 1 in the
// given direction.
func (v *Value) IntIterator(dir shared.Direction) *bitstream.IntIterator {
	return bitstream.NewIntIterator(v.Bytes(), v.count, dir)
}
