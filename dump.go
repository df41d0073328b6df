package bitseq

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spacemeshos/bitseq/shared"
)

// Dump writes the byte view of v in the given alignment to w as a table,
// one row per byte.
func (v *Value) Dump(w io.Writer, align shared.Align) {
	data := make([][]string, 0, shared.ByteLen(v.count))
	for i, b := range v.BytesAligned(align) {
		data = append(data, []string{
			strconv.Itoa(i),
			fmt.Sprintf("%02x", b),
			fmt.Sprintf("%08b", b),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"byte", "hex", "bits"})
	table.SetBorder(true)
	table.AppendBulk(data)
	table.Render()
}
