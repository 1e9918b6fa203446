package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestWriterDecode(t *testing.T) {
	w := NewWriter(64)
	w.Varint(1, 42)
	w.Sint(2, -3)
	w.Double(3, 1.25)
	w.Message(4, func(sub *Writer) {
		sub.Varint(1, 7)
	})

	var fields []Field
	require.NoError(t, Decode(w.Bytes(), func(f Field) error {
		fields = append(fields, f)
		return nil
	}))
	require.Len(t, fields, 4)
	assert.Equal(t, uint64(42), fields[0].Varint)
	assert.Equal(t, int64(-3), fields[1].Sint())
	assert.Equal(t, 1.25, fields[2].Double())
	assert.Equal(t, protowire.BytesType, fields[3].Type)

	var inner []Field
	require.NoError(t, Decode(fields[3].Bytes, func(f Field) error {
		inner = append(inner, f)
		return nil
	}))
	require.Len(t, inner, 1)
	assert.Equal(t, uint64(7), inner[0].Varint)
}

func TestDecodeTruncated(t *testing.T) {
	w := NewWriter(0)
	w.Double(1, 3)
	assert.Error(t, Decode(w.Bytes()[:4], func(Field) error { return nil }))
}
