package vecjson

// sax.go is the L5 parser driver: one function per value kind, recursion
// standing in for the explicit state machine the teacher's
// stage2_build_tape.go expressed with goto/labels (see DESIGN.md's Open
// Question note on why goto was not ported literally). Depth is tracked
// explicitly so parseConfig.maxDepth still bounds recursion the way the
// teacher's depth counter bounded its state machine's object/array stack.

type parser struct {
	buf []byte
	pos int
	doc *Document
	cfg parseConfig
}

func (p *parser) skipWhitespace() {
	p.pos = skipWhitespaceRun(p.buf, p.pos)
}

func (p *parser) parseValue(depth int) (Node, SonicError) {
	if depth > p.cfg.maxDepth {
		return Node{}, ErrInvalidChar
	}
	if p.pos >= len(p.buf) {
		return Node{}, ErrEOF
	}
	switch c := p.buf[p.pos]; {
	case c == '{':
		return p.parseObject(depth)
	case c == '[':
		return p.parseArray(depth)
	case c == '"':
		return p.parseString()
	case c == 't':
		return p.parseLiteral("true", newBoolNode(true))
	case c == 'f':
		return p.parseLiteral("false", newBoolNode(false))
	case c == 'n':
		return p.parseLiteral("null", nullNode)
	case c == '-' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	default:
		return Node{}, ErrInvalidChar
	}
}

func (p *parser) parseLiteral(lit string, n Node) (Node, SonicError) {
	if p.pos+len(lit) > len(p.buf) {
		return Node{}, ErrEOF
	}
	if string(p.buf[p.pos:p.pos+len(lit)]) != lit {
		return Node{}, ErrInvalidChar
	}
	p.pos += len(lit)
	return n, ErrNone
}

func (p *parser) parseNumber() (Node, SonicError) {
	length, isFloat, err := scanNumber(p.buf[p.pos:])
	if err != ErrNone {
		return Node{}, err
	}
	n, err := parseNumberNode(p.buf[p.pos:p.pos+length], isFloat)
	if err != ErrNone {
		// Point the offset at the end of the malformed token (e.g. "1e400"
		// fails on the exponent at index 4), not its first digit.
		p.pos += length - 1
		return Node{}, err
	}
	p.pos += length
	return n, ErrNone
}

// parseString parses a quoted string token at p.pos, unescapes it in place
// and materializes either a TagStringCopied (aliasing p.buf / Document.input)
// or TagStringOwned (copied into the arena) node, per parseConfig.copyStrings.
func (p *parser) parseString() (Node, SonicError) {
	if p.buf[p.pos] != '"' {
		return Node{}, ErrInvalidChar
	}
	p.pos++
	bodyStart := p.pos
	end, serr := findStringEnd(p.buf, bodyStart)
	if serr != ErrNone {
		return Node{}, serr
	}
	p.pos = end
	body := p.buf[bodyStart:p.pos]
	p.pos++ // closing quote

	n, err := unescapeString(body)
	if err != ErrNone {
		return Node{}, err
	}
	decoded := body[:n]
	if !validateUTF8(decoded) {
		return Node{}, ErrInvalidUTF8
	}

	if !p.cfg.copyStrings {
		return makeNode(TagStringCopied, uint64(n), uint64(bodyStart)), ErrNone
	}
	handle, buf := p.doc.arena.allocBytes(n)
	copy(buf, decoded)
	return makeNode(TagStringOwned, uint64(n), handle), ErrNone
}

func (p *parser) parseObject(depth int) (Node, SonicError) {
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
		value, err := p.parseValue(depth + 1)
		if err != ErrNone {
			return Node{}, err
		}
		children = append(children, key, value)
		p.skipWhitespace()
		if p.pos >= len(p.buf) {
			return Node{}, ErrEOF
		}
		if p.buf[p.pos] == ',' {
			commaPos := p.pos
			p.pos++
			p.skipWhitespace()
			if p.pos < len(p.buf) && p.buf[p.pos] == '}' {
				p.pos = commaPos
				return Node{}, ErrInvalidChar
			}
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

func (p *parser) parseArray(depth int) (Node, SonicError) {
	p.pos++ // '['
	p.skipWhitespace()
	var children []Node
	if p.pos < len(p.buf) && p.buf[p.pos] == ']' {
		p.pos++
		return makeNode(TagArray, 0, 0), ErrNone
	}
	for {
		p.skipWhitespace()
		value, err := p.parseValue(depth + 1)
		if err != ErrNone {
			return Node{}, err
		}
		children = append(children, value)
		p.skipWhitespace()
		if p.pos >= len(p.buf) {
			return Node{}, ErrEOF
		}
		if p.buf[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.buf[p.pos] == ']' {
			p.pos++
			break
		}
		return Node{}, ErrInvalidChar
	}
	return p.doc.allocContainer(TagArray, children), ErrNone
}
