// Package bitseq provides bit sequences of arbitrary, explicitly tracked
// length, an incremental builder for them, and conversions to and from byte
// arrays under right or left alignment.
//
// A Value is stored as a non-negative magnitude plus a bit count. Bit 0 is
// the most-significant (leftmost) bit. Internally data is right-aligned, the
// way numbers are; left-aligned byte arrays, the way bit streams are written,
// are derived on demand.
//
// Neither Value nor Builder is safe for concurrent use. Each instance must be
// owned by a single goroutine at a time.
package bitseq

import (
	"math/big"

	"github.com/spacemeshos/bitseq/shared"
)

// SourceSize, passed as a bit count, derives the bit count from the source.
const SourceSize = -1

// Value is a sequence of bits.
//
// Methods documented as mutating change the receiver in place; all others
// return new values that share no state with their operands. The zero Value
// only supports String and text (un)marshaling, so it can sit in a decoded
// struct; construct one with Empty, FromBytes, FromNumber or Parse.
type Value struct {
	mag   *big.Int // always < 2^count
	count int
}

// Empty returns the zero-length sequence.
func Empty() *Value {
	return &Value{mag: new(big.Int)}
}

// Zeros returns a sequence of n zero bits.
func Zeros(n int) *Value {
	if n < 0 {
		n = 0
	}
	return &Value{mag: new(big.Int), count: n}
}

// FromBytes translates src into a sequence of bitCount bits.
//
// If bitCount is SourceSize (or any negative value), the sequence has
// len(src)*8 bits and align is irrelevant. Otherwise src is resized:
// with AlignRight the trailing bitCount bits of src are used and a longer
// sequence is zero-padded at its leading end; with AlignLeft the leading
// bitCount bits are used and a longer sequence is zero-padded at its
// trailing end.
func FromBytes(src []byte, bitCount int, align shared.Align) *Value {
	srcBits := len(src) * 8
	mag := new(big.Int).SetBytes(src)

	if bitCount < 0 || bitCount == srcBits {
		return &Value{mag: mag, count: srcBits}
	}

	if align == shared.AlignLeft {
		if bitCount < srcBits {
			mag.Rsh(mag, uint(srcBits-bitCount))
		} else {
			mag.Lsh(mag, uint(bitCount-srcBits))
		}
	}

	v := &Value{mag: mag, count: bitCount}
	v.normalize()
	return v
}

// FromUint64 returns the low bitCount bits of val. SourceSize yields 64 bits.
func FromUint64(val uint64, bitCount int) *Value {
	if bitCount < 0 {
		bitCount = 64
	}
	v := &Value{mag: new(big.Int).SetUint64(val), count: bitCount}
	v.normalize()
	return v
}

// FromBigInt returns the low bitCount bits of |x|. SourceSize yields
// x.BitLen() bits.
func FromBigInt(x *big.Int, bitCount int) *Value {
	mag := new(big.Int).Abs(x)
	if bitCount < 0 {
		bitCount = mag.BitLen()
	}
	v := &Value{mag: mag, count: bitCount}
	v.normalize()
	return v
}

// FromNumber constructs a sequence from the binary representation of num.
// The sign is ignored. Accepted kinds are the fixed-width integers, which
// default to their natural width, and *big.Int, which defaults to
// their bit length.
func FromNumber(num any, bitCount int) (*Value, error) {
	var (
		x     = new(big.Int)
		width int
	)

	switch n := num.(type) {
	case int8:
		x.SetInt64(int64(n))
		width = 8
	case int16:
		x.SetInt64(int64(n))
		width = 16
	case int32:
		x.SetInt64(int64(n))
		width = 32
	case int64:
		x.SetInt64(n)
		width = 64
	case int:
		x.SetInt64(int64(n))
		width = 64
	case uint8:
		x.SetUint64(uint64(n))
		width = 8
	case uint16:
		x.SetUint64(uint64(n))
		width = 16
	case uint32:
		x.SetUint64(uint64(n))
		width = 32
	case uint64:
		x.SetUint64(n)
		width = 64
	case uint:
		x.SetUint64(uint64(n))
		width = 64
	case *big.Int:
		if n == nil {
			return nil, shared.InvalidArgumentf("nil *big.Int")
		}
		x.Set(n)
		width = -1
	default:
		return nil, shared.InvalidArgumentf("unsupported numeric type %T", num)
	}

	if bitCount < 0 {
		bitCount = width
	}
	return FromBigInt(x, bitCount), nil
}

// normalize drops every bit beyond count.
func (v *Value) normalize() {
	if v.mag.Sign() < 0 {
		v.mag.Abs(v.mag)
	}
	if v.mag.BitLen() > v.count {
		v.mag.And(v.mag, shared.Mask(v.count))
	}
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	return &Value{mag: new(big.Int).Set(v.mag), count: v.count}
}

// set replaces v's state with o's. o must not be used afterwards.
func (v *Value) set(o *Value) {
	v.mag = o.mag
	v.count = o.count
}

// BitCount returns the number of bits in the sequence.
func (v *Value) BitCount() int {
	return v.count
}

// BigInt returns the sequence as a non-negative integer.
func (v *Value) BigInt() *big.Int {
	return new(big.Int).Set(v.mag)
}

// Bytes returns the right-aligned byte array: the leading byte carries
// zero padding in its high bits.
func (v *Value) Bytes() []byte {
	return v.mag.FillBytes(make([]byte, shared.ByteLen(v.count)))
}

// BytesAligned returns the byte array in the requested alignment. With
// AlignLeft the trailing byte carries zero padding in its low bits.
func (v *Value) BytesAligned(align shared.Align) []byte {
	if align != shared.AlignLeft {
		return v.Bytes()
	}
	shifted := new(big.Int).Lsh(v.mag, uint(shared.FillerBits(v.count)))
	return shifted.FillBytes(make([]byte, shared.ByteLen(v.count)))
}

// bitPos maps a left-based index to a big.Int bit position.
func (v *Value) bitPos(op string, index int) (int, error) {
	if index < 0 || index > v.count-1 {
		return 0, shared.IndexError{Op: op, Index: index, Min: 0, Max: v.count - 1}
	}
	return v.count - 1 - index, nil
}

// Bit returns the bit at index, where index 0 is the leftmost bit.
func (v *Value) Bit(index int) (bool, error) {
	pos, err := v.bitPos("bit", index)
	if err != nil {
		return false, err
	}
	return v.mag.Bit(pos) == 1, nil
}

// SetBit sets the bit at index, where index 0 is the leftmost bit. Mutating.
func (v *Value) SetBit(index int, value bool) error {
	pos, err := v.bitPos("set bit", index)
	if err != nil {
		return err
	}
	var b uint
	if value {
		b = 1
	}
	v.mag.SetBit(v.mag, pos, b)
	return nil
}

// Equal reports whether v and o have the same bit count and the same bits.
func (v *Value) Equal(o *Value) bool {
	return v.count == o.count && v.mag.Cmp(o.mag) == 0
}

// Compare orders sequences by bit count first and by magnitude second, so a
// shorter sequence always sorts before a longer one.
func (v *Value) Compare(o *Value) int {
	switch {
	case v.count < o.count:
		return -1
	case v.count > o.count:
		return 1
	}
	return v.mag.Cmp(o.mag)
}
