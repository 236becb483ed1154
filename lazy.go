package vecjson

// lazy.go implements spec.md §4.9's lazy parse: a TagRaw node defers
// materialization of a value's children until the caller actually asks for
// them, trading a second pass over the bytes for avoiding the allocation
// entirely when a value is never visited.
//
// Grounded on original_source/include/sonic/dom/lazynode.h.

// newRawNode wraps the raw bytes of an unparsed value (as found by
// skipValue) in a TagRaw node that aliases Document.input.
func (d *Document) newRawNode(raw []byte, offset int) Node {
	return makeNode(TagRaw, uint64(len(raw)), uint64(offset))
}

// rawBytes returns a TagRaw node's underlying, not-yet-parsed bytes.
func (d *Document) rawBytes(n Node) []byte {
	off := n.payload
	length := n.lenOrImm()
	return d.input[off : off+length]
}

// ParseLazy parses buf but, when the top-level value is an object or
// array, leaves it as a single TagRaw node instead of recursing into it.
// Realize parses that raw span into concrete Nodes on demand; GetOnDemand
// (skip.go) can also be used directly against a TagRaw node's bytes to
// fetch one member without materializing the rest.
func ParseLazy(buf []byte, opts ...ParseOption) (*Document, error) {
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(&cfg)
	}
	doc := &Document{input: buf, arena: NewArena(WithChunkSize(cfg.chunkSize))}
	p := &lazyParser{parser: parser{buf: buf, doc: doc, cfg: cfg}}
	p.skipWhitespace()
	root, err := p.parseLazyValue()
	if err != ErrNone {
		return nil, newParseError(err, p.pos)
	}
	p.skipWhitespace()
	if p.pos != len(buf) {
		return nil, newParseError(ErrInvalidChar, p.pos)
	}
	doc.root = root
	return doc, nil
}

type lazyParser struct {
	parser
}

func (p *lazyParser) parseLazyValue() (Node, SonicError) {
	start := p.pos
	if p.pos >= len(p.buf) {
		return Node{}, ErrEOF
	}
	switch p.buf[p.pos] {
	case '{', '[':
		n, err := skipValue(p.buf[p.pos:])
		if err != ErrNone {
			return Node{}, err
		}
		p.pos += n
		return p.doc.newRawNode(p.buf[start:p.pos], start), ErrNone
	default:
		return p.parseValue(0)
	}
}

// Realize fully parses a TagRaw node into concrete Nodes; non-TagRaw nodes
// are returned unchanged.
func (d *Document) Realize(n Node, opts ...ParseOption) (Node, error) {
	if n.Tag() != TagRaw {
		return n, nil
	}
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(&cfg)
	}
	// Parse over Document.input itself (bounded to the raw span) so that
	// TagStringCopied offsets index Document.input, as StringValue expects.
	end := n.payload + n.lenOrImm()
	p := &parser{buf: d.input[:end], pos: int(n.payload), doc: d, cfg: cfg}
	v, err := p.parseValue(0)
	if err != ErrNone {
		return Node{}, newParseError(err, p.pos)
	}
	return v, nil
}
