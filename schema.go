package vecjson

// schema.go implements spec.md §4.8's schema-guided parse: a parse that
// only materializes the members a caller's Schema names, skipping
// everything else via skipValue instead of allocating Nodes for it.
//
// Grounded on original_source/include/sonic/dom/schema_handler.h and
// original_source/src/parse_schema.cpp.

// Schema describes the subset of an object's members a ParseWithSchema
// call should materialize; every other member is skipped without
// allocating a Node.
type Schema struct {
	Fields map[string]bool
}

// NewSchema builds a Schema selecting exactly the named fields.
func NewSchema(fields ...string) Schema {
	s := Schema{Fields: make(map[string]bool, len(fields))}
	for _, f := range fields {
		s.Fields[f] = true
	}
	return s
}

// ParseWithSchema parses buf as a top-level JSON object, materializing only
// the members schema selects; the rest are walked with skipValue and
// discarded. This is strictly an optimization over Parse: the resulting
// Document's root Object only contains the selected members.
func ParseWithSchema(buf []byte, schema Schema, opts ...ParseOption) (*Document, error) {
	cfg := defaultParseConfig()
	for _, o := range opts {
		o(&cfg)
	}
	doc := &Document{input: buf, arena: NewArena(WithChunkSize(cfg.chunkSize))}
	p := &parser{buf: buf, doc: doc, cfg: cfg}
	p.skipWhitespace()
	if p.pos >= len(buf) || buf[p.pos] != '{' {
		return nil, newParseError(ErrMismatchType, p.pos)
	}
	root, err := p.parseObjectSchema(schema)
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

func (p *parser) parseObjectSchema(schema Schema) (Node, SonicError) {
	p.pos++ // '{'
	p.skipWhitespace()
	var children []Node
	if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
		p.pos++
		return makeNode(TagObject, 0, 0), ErrNone
	}
	for {
		p.skipWhitespace()
		if p.pos >= len(p.buf) || p.buf[p.pos] != '"' {
			return Node{}, ErrInvalidChar
		}
		key, err := p.parseString()
		if err != ErrNone {
			return Node{}, err
		}
		p.skipWhitespace()
		if p.pos >= len(p.buf) || p.buf[p.pos] != ':' {
			return Node{}, ErrInvalidChar
		}
		p.pos++
		p.skipWhitespace()

		keyName := p.doc.StringValue(key)
		if schema.Fields[keyName] {
			value, verr := p.parseValue(1)
			if verr != ErrNone {
				return Node{}, verr
			}
			children = append(children, key, value)
		} else {
			n, serr := skipValue(p.buf[p.pos:])
			if serr != ErrNone {
				return Node{}, serr
			}
			p.pos += n
		}

		p.skipWhitespace()
		if p.pos >= len(p.buf) {
			return Node{}, ErrEOF
		}
		if p.buf[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.buf[p.pos] == '}' {
			p.pos++
			break
		}
		return Node{}, ErrInvalidChar
	}
	return p.doc.allocContainer(TagObject, children), ErrNone
}
