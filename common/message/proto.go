package message

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Writer appends protobuf wire format fields. It is used for schema-less
// snapshots, so field numbers are owned by the caller.
type Writer struct {
	buf []byte
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

func (w *Writer) Varint(num protowire.Number, v uint64) {
	w.buf = protowire.AppendTag(w.buf, num, protowire.VarintType)
	w.buf = protowire.AppendVarint(w.buf, v)
}

func (w *Writer) Sint(num protowire.Number, v int64) {
	w.Varint(num, protowire.EncodeZigZag(v))
}

func (w *Writer) Double(num protowire.Number, v float64) {
	w.buf = protowire.AppendTag(w.buf, num, protowire.Fixed64Type)
	w.buf = protowire.AppendFixed64(w.buf, math.Float64bits(v))
}

func (w *Writer) Doubles(num protowire.Number, vs ...float64) {
	for _, v := range vs {
		w.Double(num, v)
	}
}

// Message writes a length delimited sub message built by fn.
func (w *Writer) Message(num protowire.Number, fn func(sub *Writer)) {
	sub := &Writer{}
	fn(sub)
	w.buf = protowire.AppendTag(w.buf, num, protowire.BytesType)
	w.buf = protowire.AppendBytes(w.buf, sub.buf)
}

func (w *Writer) Bytes() []byte {
	return w.buf
}

type Field struct {
	Num    protowire.Number
	Type   protowire.Type
	Varint uint64
	Fixed  uint64
	Bytes  []byte
}

func (f Field) Double() float64 {
	return math.Float64frombits(f.Fixed)
}

func (f Field) Sint() int64 {
	return protowire.DecodeZigZag(f.Varint)
}

// Decode walks the top level fields of data.
func Decode(data []byte, fn func(f Field) error) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		f := Field{Num: num, Type: typ}
		switch typ {
		case protowire.VarintType:
			f.Varint, n = protowire.ConsumeVarint(data)
		case protowire.Fixed64Type:
			f.Fixed, n = protowire.ConsumeFixed64(data)
		case protowire.BytesType:
			f.Bytes, n = protowire.ConsumeBytes(data)
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}
