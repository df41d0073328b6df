package bitseq_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	req := require.New(t)

	v := mustParse(t, "101000111001")

	var right bytes.Buffer
	v.Dump(&right, Right)
	req.Contains(right.String(), "0a")
	req.Contains(right.String(), "00001010")
	req.Contains(right.String(), "00111001")

	var left bytes.Buffer
	v.Dump(&left, Left)
	req.Contains(left.String(), "a3")
	req.Contains(left.String(), "10010000")
}
