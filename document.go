package vecjson

import "fmt"

// Document owns a parsed DOM: the root Node, the Arena its containers and
// owned strings live in, the original input buffer (aliased by
// TagStringCopied nodes) and the const-string table (referenced by
// TagStringConst nodes). It corresponds to spec.md §3's "the parsed
// result", generalized from the teacher's ParsedJson (which owned a flat
// tape) to own an arena instead.
type Document struct {
	input     []byte
	arena     *Arena
	root      Node
	constRefs []string
}

// Parse parses buf into a Document, per spec.md §6.1. On failure it returns
// a *ParseError carrying the byte offset the failure was detected at.
//
// Grounded on the teacher's top-level Parse (formerly simdjson.go, now
// superseded): a functional-options entry point over a single input
// buffer, producing one owned result.
func Parse(buf []byte, opts ...ParseOption) (*Document, error) {
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(&cfg)
	}

	doc := &Document{
		input: buf,
		arena: NewArena(WithChunkSize(cfg.chunkSize)),
	}

	p := &parser{buf: buf, doc: doc, cfg: cfg}
	p.skipWhitespace()
	root, perr := p.parseValue(0)
	if perr != ErrNone {
		return nil, newParseError(perr, p.pos)
	}
	p.skipWhitespace()
	if p.pos != len(buf) {
		return nil, newParseError(ErrInvalidChar, p.pos)
	}
	doc.root = root
	return doc, nil
}

// Root returns the Document's top-level Node.
func (d *Document) Root() Node { return d.root }

// Arena returns the allocator backing this Document's containers and owned
// strings.
func (d *Document) Arena() *Arena { return d.arena }

// StringValue returns a Node's decoded string, resolving whichever of the
// three string subtypes the Node carries.
func (d *Document) StringValue(n Node) string {
	switch n.Tag() {
	case TagStringCopied:
		off := n.payload
		length := n.lenOrImm()
		return string(d.input[off : off+length])
	case TagStringOwned:
		return string(d.arena.Bytes(n.payload, n.lenOrImm()))
	case TagStringConst:
		return d.constRefs[n.payload]
	}
	return ""
}

// IntValue, UintValue and FloatValue reinterpret a Node's payload as the
// requested numeric type, per Tag().
func (d *Document) IntValue(n Node) int64     { return int64(n.payload) }
func (d *Document) UintValue(n Node) uint64   { return n.payload }
func (d *Document) FloatValue(n Node) float64 { return floatFromBits(n.payload) }

// BoolValue returns a TagBoolTrue/TagBoolFalse node's value.
func (d *Document) BoolValue(n Node) bool { return n.Tag() == TagBoolTrue }

// children resolves a container Node's contiguous child region.
func (d *Document) children(n Node) []Node {
	return d.arena.Nodes(n.payload, n.lenOrImm())
}

// Object returns a view over n's members; n.Tag() must be TagObject.
func (d *Document) Object(n Node) Object {
	return Object{doc: d, pairs: d.children(n), handle: n.payload}
}

// Array returns a view over n's elements; n.Tag() must be TagArray.
func (d *Document) Array(n Node) Array {
	return Array{doc: d, elems: d.children(n), handle: n.payload}
}

// DebugDump writes a human-readable recursive dump of n to dst, for
// diagnostics only (never called on the hot path). Grounded on the
// teacher's dump_raw_tape-equivalent debug routine.
func (d *Document) DebugDump(dst []byte, n Node) []byte {
	switch n.Type() {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		return append(dst, fmt.Sprintf("%v", d.BoolValue(n))...)
	case TypeInt:
		return appendInt(dst, d.IntValue(n))
	case TypeUint:
		return appendUint(dst, d.UintValue(n))
	case TypeFloat:
		return appendFloat(dst, d.FloatValue(n))
	case TypeString:
		return appendQuotedString(dst, d.StringValue(n), SerializeDefault)
	case TypeObject:
		dst = append(dst, '{')
		obj := d.Object(n)
		for i := 0; i < obj.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			k, v := obj.At(i)
			dst = appendQuotedString(dst, k, SerializeDefault)
			dst = append(dst, ':')
			dst = d.DebugDump(dst, v)
		}
		return append(dst, '}')
	case TypeArray:
		dst = append(dst, '[')
		arr := d.Array(n)
		for i := 0; i < arr.Len(); i++ {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = d.DebugDump(dst, arr.At(i))
		}
		return append(dst, ']')
	}
	return dst
}
