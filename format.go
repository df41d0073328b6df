package bitseq

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spacemeshos/bitseq/config"
	"github.com/spacemeshos/bitseq/shared"
)

// Decimal digits of the magnitude shown by String before eliding.
const maxDescribeDigits = 50

// BinaryString returns the bits as a continuous string of exactly
// BitCount() binary digits.
func (v *Value) BinaryString() string {
	if v.count == 0 {
		return ""
	}
	digits := v.mag.Text(2)
	if pad := v.count - len(digits); pad > 0 {
		return strings.Repeat("0", pad) + digits
	}
	return digits
}

// GroupedString returns the binary string with a space between groups of
// 4 or 8 bits. With AlignRight grouping starts at the rightmost bit, so a
// shorter group appears on the left; with AlignLeft it starts at the leftmost
// bit and a shorter group appears on the right.
func (v *Value) GroupedString(anchor shared.Align, group shared.Group) string {
	return groupDigits(v.BinaryString(), anchor, group, config.DefaultSeparator)
}

// Format renders v grouped according to cfg.
func (v *Value) Format(cfg *config.Config) string {
	return groupDigits(v.BinaryString(), cfg.Alignment(), cfg.Group(), cfg.Separator)
}

func groupDigits(digits string, anchor shared.Align, group shared.Group, sep string) string {
	size := int(group)
	if size == 0 || len(digits) <= size {
		return digits
	}

	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/size*len(sep))

	start := 0
	if anchor == shared.AlignRight {
		start = len(digits) % size
		sb.WriteString(digits[:start])
	}
	for i := start; i < len(digits); i += size {
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(digits[i:min(i+size, len(digits))])
	}
	return sb.String()
}

// String returns a short debug description of v.
func (v *Value) String() string {
	val := "0"
	if v.mag != nil {
		val = v.mag.String()
	}
	if len(val) > maxDescribeDigits {
		val = val[:maxDescribeDigits-3] + "..."
	}
	return fmt.Sprintf("Value{val=%s, bits=%d}", val, v.count)
}

// Parse reads a binary string as produced by BinaryString or GroupedString.
// Spaces and underscores are skipped; every other rune must be 0 or 1.
func Parse(s string) (*Value, error) {
	mag := new(big.Int)
	count := 0
	for i, c := range s {
		switch c {
		case ' ', '_':
			continue
		case '0', '1':
			mag.Lsh(mag, 1)
			if c == '1' {
				mag.SetBit(mag, 0, 1)
			}
			count++
		default:
			return nil, shared.InvalidArgumentf("unexpected %q at offset %d", c, i)
		}
	}
	return &Value{mag: mag, count: count}, nil
}

// MarshalText implements encoding.TextMarshaler. A zero Value marshals as
// the empty sequence.
func (v *Value) MarshalText() ([]byte, error) {
	if v.mag == nil {
		return []byte{}, nil
	}
	return []byte(v.BinaryString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	v.set(parsed)
	return nil
}
