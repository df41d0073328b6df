package bitseq

import (
	"math/big"

	"github.com/spacemeshos/bitseq/shared"
)

type bitwiseOp func(z, x, y *big.Int) *big.Int

// bitwise equalizes the operand lengths according to align and combines them.
// The result has the bit count of the longer operand.
func (v *Value) bitwise(o *Value, align shared.Align, op bitwiseOp) *Value {
	a, b := v.mag, o.mag
	if align == shared.AlignLeft {
		// Zero-extend the shorter operand at its least-significant end.
		switch diff := v.count - o.count; {
		case diff > 0:
			b = new(big.Int).Lsh(b, uint(diff))
		case diff < 0:
			a = new(big.Int).Lsh(a, uint(-diff))
		}
	}

	return &Value{mag: op(new(big.Int), a, b), count: max(v.count, o.count)}
}

// And returns the bitwise AND of v and o, right-aligned: the shorter operand
// is extended with leading zeros.
func (v *Value) And(o *Value) *Value {
	return v.bitwise(o, shared.AlignRight, (*big.Int).And)
}

// AndAligned returns the bitwise AND of v and o. The shorter operand is
// extended with leading zeros (AlignRight) or trailing zeros (AlignLeft).
func (v *Value) AndAligned(o *Value, align shared.Align) *Value {
	return v.bitwise(o, align, (*big.Int).And)
}

// Or returns the bitwise OR of v and o, right-aligned.
func (v *Value) Or(o *Value) *Value {
	return v.bitwise(o, shared.AlignRight, (*big.Int).Or)
}

// OrAligned returns the bitwise OR of v and o under the given alignment.
func (v *Value) OrAligned(o *Value, align shared.Align) *Value {
	return v.bitwise(o, align, (*big.Int).Or)
}

// Xor returns the bitwise XOR of v and o, right-aligned.
func (v *Value) Xor(o *Value) *Value {
	return v.bitwise(o, shared.AlignRight, (*big.Int).Xor)
}

// XorAligned returns the bitwise XOR of v and o under the given alignment.
func (v *Value) XorAligned(o *Value, align shared.Align) *Value {
	return v.bitwise(o, align, (*big.Int).Xor)
}

// Not returns v with every bit flipped.
func (v *Value) Not() *Value {
	return &Value{mag: new(big.Int).Xor(v.mag, shared.Mask(v.count)), count: v.count}
}
