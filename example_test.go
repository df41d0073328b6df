package bitseq_test

import (
	"fmt"

	"github.com/spacemeshos/bitseq"
	"github.com/spacemeshos/bitseq/shared"
)

func ExampleBuilder() {
	b := bitseq.NewBuilder()
	_ = b.Append(3, 0b101) // version
	_ = b.Append(9, 0x039) // length
	b.Close()

	fmt.Printf("% x\n", b.Bytes())
	fmt.Printf("% x\n", b.BytesAligned(shared.AlignLeft))
	fmt.Println(b.GroupedString(shared.AlignLeft, shared.GroupHalfByte))
	// Output:
	// 0a 39
	// a3 90
	// 1010 0011 1001
}

func ExampleValue_Extract() {
	v := bitseq.FromUint64(0xA39, 12)
	field, _ := v.Extract(3, 4)

	fmt.Println(field.BinaryString(), v.BinaryString())
	// Output:
	// 0001 10111001
}
