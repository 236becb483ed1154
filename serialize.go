package vecjson

import "math"

// serialize.go is the L5 serializer: Node -> JSON bytes. Grounded on the
// teacher's MarshalJSONBuffer (formerly parsed_json.go, superseded by the
// Node model; see DESIGN.md), kept as a WriteBuffer-based append chain
// rather than encoding/json's reflection-driven Marshal.

// Marshal serializes n into w and returns its bytes. Per spec.md's
// Non-goals, output is always compact (no pretty-printing) and numbers are
// re-formatted from their parsed value rather than preserving the original
// source bytes (TypeRaw nodes are the one exception: their byte range is
// copied out verbatim, since they were never parsed into a concrete value
// in the first place). flags is a §6.3 SerializeFlags combination; unless
// SerializeAppendBuffer is set, w is reset first so repeated Marshal calls
// on a reused WriteBuffer don't concatenate output from previous calls.
func (d *Document) Marshal(w *WriteBuffer, n Node, flags ...SerializeFlags) ([]byte, error) {
	f := resolveFlags(flags)
	if f&SerializeAppendBuffer == 0 {
		w.Reset()
	}
	if err := d.marshalNode(w, n, f); err != ErrNone {
		return nil, err
	}
	return w.Bytes(), nil
}

func (d *Document) marshalNode(w *WriteBuffer, n Node, flags SerializeFlags) SonicError {
	switch n.Type() {
	case TypeNull:
		w.writeBytes([]byte("null"))
	case TypeBool:
		if d.BoolValue(n) {
			w.writeBytes([]byte("true"))
		} else {
			w.writeBytes([]byte("false"))
		}
	case TypeInt:
		w.buf = appendInt(w.buf, d.IntValue(n))
	case TypeUint:
		w.buf = appendUint(w.buf, d.UintValue(n))
	case TypeFloat:
		f := d.FloatValue(n)
		if isNonFinite(f) {
			return ErrSerInfinity
		}
		w.buf = appendFloat(w.buf, f)
	case TypeString:
		w.buf = appendQuotedString(w.buf, d.StringValue(n), flags)
	case TypeRaw:
		w.writeBytes(d.rawBytes(n))
	case TypeObject:
		w.writeByte('{')
		obj := d.Object(n)
		for i := 0; i < obj.Len(); i++ {
			if i > 0 {
				w.writeByte(',')
			}
			k, v := obj.At(i)
			w.buf = appendQuotedString(w.buf, k, flags)
			w.writeByte(':')
			if err := d.marshalNode(w, v, flags); err != ErrNone {
				return err
			}
		}
		w.writeByte('}')
	case TypeArray:
		w.writeByte('[')
		arr := d.Array(n)
		for i := 0; i < arr.Len(); i++ {
			if i > 0 {
				w.writeByte(',')
			}
			if err := d.marshalNode(w, arr.At(i), flags); err != ErrNone {
				return err
			}
		}
		w.writeByte(']')
	default:
		return ErrSerUnsupportedType
	}
	return ErrNone
}

func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}
