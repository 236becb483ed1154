package vecjson

import (
	"strconv"
	"strings"
)

// PointerToken is one segment of a JSON Pointer (RFC 6901): either an
// object key or an array index.
type PointerToken struct {
	Key     string
	Index   int
	IsIndex bool
}

// Pointer is a parsed JSON Pointer, per spec.md §3.4.
//
// Grounded on original_source/include/sonic/dom/json_pointer.h.
type Pointer []PointerToken

// ParsePointer parses an RFC 6901 pointer string ("/a/0/b") into tokens,
// unescaping "~1" to "/" and "~0" to "~".
func ParsePointer(s string) (Pointer, SonicError) {
	if s == "" {
		return nil, ErrNone
	}
	if s[0] != '/' {
		return nil, ErrUnsupportedJSONPath
	}
	parts := strings.Split(s[1:], "/")
	tokens := make(Pointer, len(parts))
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		tok := PointerToken{Key: part}
		if idx, err := strconv.Atoi(part); err == nil && (part == "0" || part[0] != '0') {
			tok.Index, tok.IsIndex = idx, true
		}
		tokens[i] = tok
	}
	return tokens, ErrNone
}

// AtPointer navigates from n following ptr, per
// original_source/src/at_pointer.cpp. On an object every token, numeric or
// not, is looked up by its Key text. It returns ErrMismatchType when a
// non-index token meets an array or any token meets a scalar, and
// ErrUnknownObjKey/ErrArrIndexOutOfRange when the target does not exist.
func (d *Document) AtPointer(n Node, ptr Pointer) (Node, SonicError) {
	cur := n
	for _, tok := range ptr {
		switch cur.Tag() {
		case TagObject:
			v, ok := d.Object(cur).Get(tok.Key)
			if !ok {
				return Node{}, ErrUnknownObjKey
			}
			cur = v
		case TagArray:
			if !tok.IsIndex {
				return Node{}, ErrMismatchType
			}
			arr := d.Array(cur)
			if tok.Index < 0 || tok.Index >= arr.Len() {
				return Node{}, ErrArrIndexOutOfRange
			}
			cur = arr.At(tok.Index)
		default:
			return Node{}, ErrMismatchType
		}
	}
	return cur, ErrNone
}
