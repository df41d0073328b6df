package bitseq

import (
	"math/big"

	"github.com/spacemeshos/bitseq/shared"
)

// ShiftRight drops the n rightmost bits. Mutating.
// It is equivalent to replacing v with SubSequence(0, BitCount()-n).
func (v *Value) ShiftRight(n int) error {
	if n < 0 || n > v.count {
		return shared.InvalidArgumentf("shift distance must be in range [0, %d], given: %d", v.count, n)
	}
	v.mag.Rsh(v.mag, uint(n))
	v.count -= n
	return nil
}

// ShiftLeft appends n zero bits at the right. Mutating.
// It is equivalent to replacing v with v.Concat(Zeros(n)).
func (v *Value) ShiftLeft(n int) error {
	if n < 0 {
		return shared.InvalidArgumentf("shift distance must be >= 0, given: %d", n)
	}
	v.mag.Lsh(v.mag, uint(n))
	v.count += n
	return nil
}

// Shift moves the bits n positions to the left (n > 0) or -n positions to
// the right (n < 0). Mutating.
//
// With keepSize the bit count is preserved: bits pushed past either end are
// discarded and zero bits enter at the other end. Without it, a left shift
// grows the sequence like ShiftLeft and a right shift shrinks it like
// ShiftRight.
func (v *Value) Shift(n int, keepSize bool) error {
	if !keepSize {
		if n >= 0 {
			return v.ShiftLeft(n)
		}
		return v.ShiftRight(-n)
	}

	switch {
	case n >= v.count || -n >= v.count:
		v.mag.SetUint64(0)
	case n > 0:
		v.mag.Lsh(v.mag, uint(n))
		v.normalize()
	case n < 0:
		v.mag.Rsh(v.mag, uint(-n))
	}
	return nil
}

// Rotate rotates the bits n positions to the left (n > 0) or -n positions
// to the right (n < 0) within the current bit count. Mutating.
func (v *Value) Rotate(n int) {
	if v.count == 0 {
		return
	}

	splitIndex := n % v.count
	if splitIndex < 0 {
		splitIndex += v.count
	}
	if splitIndex == 0 {
		return
	}

	head, tail := v.Split(splitIndex)
	v.set(tail.Concat(head))
}

// Split returns the bits [0, index) and [index, BitCount()).
//
// Unlike Insert and Extract, Split never fails: an index <= 0 yields an
// empty prefix and an index >= BitCount() yields an empty suffix.
func (v *Value) Split(index int) (prefix, suffix *Value) {
	switch {
	case index <= 0:
		return Empty(), v.Clone()
	case index >= v.count:
		return v.Clone(), Empty()
	}

	tailLen := v.count - index
	prefix = &Value{mag: new(big.Int).Rsh(v.mag, uint(tailLen)), count: index}
	suffix = &Value{mag: new(big.Int).And(v.mag, shared.Mask(tailLen)), count: tailLen}
	return prefix, suffix
}

// checkRange validates a [start, start+length) window against v.
func (v *Value) checkRange(op string, start, length, maxStart int) error {
	if start < 0 || start > maxStart {
		return shared.IndexError{Op: op, Index: start, Min: 0, Max: maxStart}
	}
	if length < 0 {
		return shared.InvalidArgumentf("length must be >= 0, given: %d", length)
	}
	if end := start + length - 1; end > v.count-1 {
		return shared.IndexError{Op: op, Index: end, Min: 0, Max: v.count - 1}
	}
	return nil
}

// SubSequence returns the bits [start, start+length).
func (v *Value) SubSequence(start, length int) (*Value, error) {
	if err := v.checkRange("subsequence", start, length, v.count-1); err != nil {
		return nil, err
	}

	mag := new(big.Int).Rsh(v.mag, uint(v.count-start-length))
	out := &Value{mag: mag, count: length}
	out.normalize()
	return out, nil
}

// Insert splices o into v so that o's first bit lands at index. Mutating.
// index must be within [0, BitCount()].
func (v *Value) Insert(index int, o *Value) error {
	if index < 0 || index > v.count {
		return shared.IndexError{Op: "insert", Index: index, Min: 0, Max: v.count}
	}

	head, tail := v.Split(index)
	v.set(head.Concat(o).Concat(tail))
	return nil
}

// Extract removes the bits [from, from+length) from v and returns them.
// v becomes the concatenation of the remaining bits. Mutating.
func (v *Value) Extract(from, length int) (*Value, error) {
	if err := v.checkRange("extract", from, length, v.count); err != nil {
		return nil, err
	}

	head, rest := v.Split(from)
	extracted, tail := rest.Split(length)
	v.set(head.Concat(tail))
	return extracted, nil
}

// Concat returns v followed by o: v's bits become the most-significant ones.
func (v *Value) Concat(o *Value) *Value {
	mag := new(big.Int).Lsh(v.mag, uint(o.count))
	mag.Or(mag, o.mag)
	return &Value{mag: mag, count: v.count + o.count}
}
