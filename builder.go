package bitseq

import (
	"fmt"
	"math/big"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spacemeshos/bitseq/bitstream"
	"github.com/spacemeshos/bitseq/shared"
	"go.uber.org/zap"
)

const maxAppendBits = 32

// Builder collects bits one write at a time, most-significant first.
//
// Completed bytes are kept left-aligned: the bits of the boundary byte sit
// in its high end and Close fills the rest with zeros. Reads on a builder
// that is still open work on a closed snapshot and leave it open.
type Builder struct {
	buf       []byte
	pending   byte  // left-justified partial byte
	alignment uint8 // number of bits held in pending
	count     int
	closed    bool

	logger *zap.Logger
}

// NewBuilder returns an empty, open Builder.
func NewBuilder(opts ...OptionFunc) *Builder {
	options := applyOpts(opts...)
	return &Builder{logger: options.logger}
}

// Append writes the numBits least-significant bits of val, most-significant
// first. numBits must be within [1, 32].
func (b *Builder) Append(numBits int, val uint32) error {
	if b.closed {
		return shared.ErrClosed
	}
	if numBits < 1 || numBits > maxAppendBits {
		return shared.InvalidArgumentf("bits to append must be in range [1, %d], given: %d", maxAppendBits, numBits)
	}

	b.count += numBits

	// Eliminate unnecessary MS bits.
	val &= shared.LowMask32(numBits)

	for numBits > 0 {
		free := 8 - int(b.alignment)
		take := min(free, numBits)

		// The next take bits of val, placed right below the pending ones.
		chunk := byte(val>>uint(numBits-take)) & byte(shared.LowMask32(take))
		b.pending |= chunk << uint(free-take)
		b.alignment += uint8(take)
		numBits -= take

		if b.alignment == 8 {
			b.buf = append(b.buf, b.pending)
			b.pending = 0
			b.alignment = 0
		}
	}

	return nil
}

// AppendBit writes a single bit.
func (b *Builder) AppendBit(bit bitstream.Bit) error {
	return b.Append(1, uint32(bit.Int()))
}

// AppendValue writes every bit of v, leftmost first.
func (b *Builder) AppendValue(v *Value) error {
	if b.closed {
		return shared.ErrClosed
	}

	data := v.BytesAligned(shared.AlignLeft)
	remaining := v.BitCount()
	for _, byt := range data {
		if remaining >= 8 {
			if err := b.Append(8, uint32(byt)); err != nil {
				return err
			}
			remaining -= 8
			continue
		}
		if remaining > 0 {
			return b.Append(remaining, uint32(byt>>uint(8-remaining)))
		}
	}
	return nil
}

// BitCount returns the number of bits appended so far.
func (b *Builder) BitCount() int {
	return b.count
}

// Closed reports whether Close was called.
func (b *Builder) Closed() bool {
	return b.closed
}

// Close flushes the pending bits, filling the last byte with zero bits, and
// rejects further appends. Closing a closed builder is a no-op.
func (b *Builder) Close() {
	if b.closed {
		return
	}
	if b.alignment != 0 {
		b.buf = append(b.buf, b.pending)
		b.pending = 0
		b.alignment = 0
	}
	b.closed = true

	b.logger.Debug("bit builder closed",
		zap.Int("bits", b.count),
		zap.Int("bytes", len(b.buf)),
	)
}

// Clone returns a deep copy of b.
func (b *Builder) Clone() *Builder {
	out := *b
	out.buf = append([]byte(nil), b.buf...)
	return &out
}

// snapshot returns b itself when closed, or a closed copy of it.
func (b *Builder) snapshot() *Builder {
	if b.closed {
		return b
	}
	b.logger.Debug("snapshotting open bit builder", zap.Int("bits", b.count))
	snap := b.Clone()
	snap.Close()
	return snap
}

// Bytes returns the right-aligned byte array: the leading byte carries zero
// padding in its high bits.
func (b *Builder) Bytes() []byte {
	snap := b.snapshot()
	out := make([]byte, len(snap.buf))

	filler := shared.FillerBits(snap.count)
	if filler == 0 {
		copy(out, snap.buf)
		return out
	}

	// Move the trailing filler bits to the leading end.
	n := new(big.Int).SetBytes(snap.buf)
	n.Rsh(n, uint(filler))
	return n.FillBytes(out)
}

// BytesAligned returns the byte array in the requested alignment. AlignLeft
// returns the internal buffer as is: the trailing byte carries zero padding
// in its low bits.
func (b *Builder) BytesAligned(align shared.Align) []byte {
	if align != shared.AlignLeft {
		return b.Bytes()
	}
	snap := b.snapshot()
	return append([]byte{}, snap.buf...)
}

// Value returns the collected bits as a Value.
func (b *Builder) Value() *Value {
	return FromBytes(b.Bytes(), b.count, shared.AlignRight)
}

// BinaryString returns the collected bits as a continuous binary string.
func (b *Builder) BinaryString() string {
	return b.Value().BinaryString()
}

// GroupedString returns the collected bits as a grouped binary string.
func (b *Builder) GroupedString(anchor shared.Align, group shared.Group) string {
	return b.Value().GroupedString(anchor, group)
}

// Iterator returns a left-to-right iterator over the collected bits.
func (b *Builder) Iterator() *bitstream.BitIterator {
	return bitstream.NewBitIterator(b.Bytes(), b.count)
}

func (b *Builder) String() string {
	return fmt.Sprintf("Builder{bits=%d, size=%s, closed=%v}",
		b.count, bytefmt.ByteSize(uint64(shared.ByteLen(b.count))), b.closed)
}
