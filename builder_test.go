package bitseq_test

import (
	"testing"

	"github.com/spacemeshos/bitseq"
	"github.com/spacemeshos/bitseq/bitstream"
	"github.com/spacemeshos/bitseq/shared"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func newBuilder(t *testing.T) *bitseq.Builder {
	return bitseq.NewBuilder(bitseq.WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))))
}

func TestBuilder_Flush(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(12, 0b101000111001))
	b.Close()

	req.True(b.Closed())
	req.Equal(12, b.BitCount())
	req.Equal([]byte{0x0A, 0x39}, b.Bytes())
	req.Equal([]byte{0x0A, 0x39}, b.BytesAligned(Right))
	req.Equal([]byte{0xA3, 0x90}, b.BytesAligned(Left))
	req.Equal("101000111001", b.BinaryString())
	req.Equal("1010 00111001", b.GroupedString(Right, shared.GroupByte))
}

func TestBuilder_Chunks(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.AppendBit(bitstream.One))
	req.NoError(b.AppendBit(bitstream.Zero))
	req.NoError(b.Append(3, 0b101))
	req.NoError(b.Append(5, 0xFF)) // only the low 5 bits count
	req.NoError(b.Append(32, 0x80000001))

	req.Equal(42, b.BitCount())
	want := "10" + "101" + "11111" + "10000000000000000000000000000001"
	req.Equal(want, b.BinaryString())

	v := b.Value()
	req.Equal(42, v.BitCount())
	req.Equal(want, v.BinaryString())
}

func TestBuilder_ByteAligned(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(8, 0xAB))
	req.NoError(b.Append(16, 0xCDEF))

	req.Equal([]byte{0xAB, 0xCD, 0xEF}, b.Bytes())
	req.Equal([]byte{0xAB, 0xCD, 0xEF}, b.BytesAligned(Left))
}

func TestBuilder_ReadWhileOpen(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(3, 0b110))

	req.Equal([]byte{0x06}, b.Bytes())
	req.Equal([]byte{0xC0}, b.BytesAligned(Left))
	req.Equal("110", b.BinaryString())
	req.Equal("110", b.Value().BinaryString())
	req.False(b.Closed())

	// Still appendable after reads.
	req.NoError(b.Append(5, 0b00001))
	req.Equal([]byte{0xC1}, b.Bytes())
	req.Equal(8, b.BitCount())
}

func TestBuilder_Closed(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(4, 0xF))
	b.Close()
	b.Close()

	req.ErrorIs(b.Append(1, 1), shared.ErrClosed)
	req.ErrorIs(b.AppendBit(bitstream.One), shared.ErrClosed)
	req.ErrorIs(b.AppendValue(mustParse(t, "1")), shared.ErrClosed)
	req.Equal(4, b.BitCount())
	req.Equal([]byte{0x0F}, b.Bytes())
	req.Equal([]byte{0x0F}, b.Bytes())
}

func TestBuilder_InvalidWidth(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.ErrorIs(b.Append(0, 1), shared.ErrInvalidArgument)
	req.ErrorIs(b.Append(33, 1), shared.ErrInvalidArgument)
	req.Equal(0, b.BitCount())
}

func TestBuilder_Empty(t *testing.T) {
	req := require.New(t)

	b := bitseq.NewBuilder()
	req.Equal([]byte{}, b.Bytes())
	req.Equal([]byte{}, b.BytesAligned(Left))
	req.Equal(bitseq.Empty().BytesAligned(Left), b.BytesAligned(Left))
	req.Equal("", b.BinaryString())
	req.True(b.Value().Equal(bitseq.Empty()))
	req.False(b.Iterator().HasNext())
}

func TestBuilder_AppendValue(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(3, 0b101))
	req.NoError(b.AppendValue(mustParse(t, "0011110000111")))
	req.NoError(b.AppendValue(bitseq.Empty()))
	req.NoError(b.AppendValue(mustParse(t, "00000000")))

	req.Equal("101"+"0011110000111"+"00000000", b.BinaryString())
}

func TestBuilder_Clone(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(6, 0b101010))

	c := b.Clone()
	req.NoError(c.Append(4, 0b1111))
	c.Close()

	req.Equal("101010", b.BinaryString())
	req.Equal("1010101111", c.BinaryString())
	req.False(b.Closed())
	req.True(c.Closed())
}

func TestBuilder_Iterator(t *testing.T) {
	req := require.New(t)

	b := newBuilder(t)
	req.NoError(b.Append(3, 0b101))

	it := b.Iterator()
	var got []bitstream.Bit
	for it.HasNext() {
		bit, err := it.Next()
		req.NoError(err)
		got = append(got, bit)
	}
	req.Equal([]bitstream.Bit{bitstream.One, bitstream.Zero, bitstream.One}, got)

	_, err := it.Next()
	req.ErrorIs(err, shared.ErrExhausted)
}

func TestBuilder_String(t *testing.T) {
	req := require.New(t)

	b := bitseq.NewBuilder()
	req.NoError(b.Append(12, 0xA39))
	req.Equal("Builder{bits=12, size=2B, closed=false}", b.String())
}
