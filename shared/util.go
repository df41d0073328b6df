package shared

import (
	"math/big"
)

// ByteLen returns the number of bytes needed to hold numBits bits.
func ByteLen(numBits int) int {
	return (numBits + 7) / 8
}

// FillerBits returns the number of padding bits in the boundary byte of a
// numBits-long sequence.
func FillerBits(numBits int) int {
	if rem := numBits % 8; rem != 0 {
		return 8 - rem
	}
	return 0
}

// Mask returns 2^numBits - 1.
func Mask(numBits int) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(numBits))
	return m.Sub(m, big.NewInt(1))
}

// LowMask32 returns a mask of the numBits least-significant bits, numBits <= 32.
func LowMask32(numBits int) uint32 {
	if numBits >= 32 {
		return 0xFFFFFFFF
	}
	return uint32(1)<<uint(numBits) - 1
}
