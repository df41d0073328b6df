package shared

// Align selects how a sequence whose bit count is not a multiple of 8 is laid
// into whole bytes.
//
// For the 12-bit sequence 101000111001:
//
//	AlignRight: [00001010 00111001] (leading zero padding, like a number)
//	AlignLeft:  [10100011 10010000] (trailing zero padding, like a bit stream)
//
// For grouped text rendering the alignment is the anchor of the grouping.
type Align int

const (
	AlignRight Align = iota
	AlignLeft
)

func (a Align) String() string {
	switch a {
	case AlignRight:
		return "right"
	case AlignLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseAlign maps "left"/"right" to an Align.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "right", "RIGHT", "Right":
		return AlignRight, nil
	case "left", "LEFT", "Left":
		return AlignLeft, nil
	}
	return AlignRight, InvalidArgumentf("unknown alignment %q", s)
}

// Group is the number of bits between separators in grouped binary strings.
type Group uint

const (
	GroupNone     Group = 0
	GroupHalfByte Group = 4
	GroupByte     Group = 8
)

// ParseGroup validates a group size.
func ParseGroup(size uint) (Group, error) {
	switch g := Group(size); g {
	case GroupNone, GroupHalfByte, GroupByte:
		return g, nil
	}
	return GroupNone, InvalidArgumentf("group size must be 0, 4 or 8, given: %d", size)
}

// Direction is the traversal order of an iterator.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)
