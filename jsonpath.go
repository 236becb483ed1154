package vecjson

import (
	"strconv"
	"strings"
)

// PathTokenKind distinguishes the JSON Path token shapes spec.md §4.4
// supports: a subset of RFC 9535 (root, key, wildcard, index).
type PathTokenKind uint8

const (
	PathRoot PathTokenKind = iota
	PathKey
	PathWildcard
	PathIndex
)

// PathToken is one segment of a parsed Path.
type PathToken struct {
	Kind  PathTokenKind
	Key   string
	Index int
}

// Path is a parsed JSON Path, supporting "$", ".key", ".*", "['quoted']",
// `["quoted"]`, "[int]" and "[*]", per spec.md §4.4 and
// original_source/include/sonic/dom/jsonpath/jsonpath.h.
type Path []PathToken

// ParsePath parses s into a Path.
func ParsePath(s string) (Path, SonicError) {
	if s == "" || s[0] != '$' {
		return nil, ErrUnsupportedJSONPath
	}
	path := Path{{Kind: PathRoot}}
	i := 1
	for i < len(s) {
		switch s[i] {
		case '.':
			i++
			if i < len(s) && s[i] == '*' {
				path = append(path, PathToken{Kind: PathWildcard})
				i++
				continue
			}
			start := i
			for i < len(s) && s[i] != '.' && s[i] != '[' {
				i++
			}
			if i == start {
				return nil, ErrUnsupportedJSONPath
			}
			path = append(path, PathToken{Kind: PathKey, Key: s[start:i]})
		case '[':
			i++
			if i >= len(s) {
				return nil, ErrUnsupportedJSONPath
			}
			if s[i] == '*' {
				path = append(path, PathToken{Kind: PathWildcard})
				i++
			} else if s[i] == '\'' || s[i] == '"' {
				q := s[i]
				i++
				start := i
				for i < len(s) && s[i] != q {
					i++
				}
				if i >= len(s) {
					return nil, ErrUnsupportedJSONPath
				}
				path = append(path, PathToken{Kind: PathKey, Key: s[start:i]})
				i++
			} else {
				start := i
				for i < len(s) && s[i] != ']' {
					i++
				}
				idx, err := strconv.Atoi(s[start:i])
				if err != nil {
					return nil, ErrUnsupportedJSONPath
				}
				path = append(path, PathToken{Kind: PathIndex, Index: idx})
			}
			if i >= len(s) || s[i] != ']' {
				return nil, ErrUnsupportedJSONPath
			}
			i++
		default:
			return nil, ErrUnsupportedJSONPath
		}
	}
	return path, ErrNone
}

// AtPath navigates from n following path, collecting every match (plural
// because wildcard tokens fan out over every member/element).
//
// Once a wildcard token has fanned a single node out into many, the
// remaining path segments are applied per-element: an element whose shape
// doesn't match the next segment (missing key, wrong container kind, index
// out of range) is dropped from the result set instead of aborting the
// whole query, matching the rest of the fanned-out elements that do match.
func (d *Document) AtPath(n Node, path Path) ([]Node, SonicError) {
	cur := []Node{n}
	permissive := false
	for _, tok := range path {
		var next []Node
		for _, c := range cur {
			switch tok.Kind {
			case PathRoot:
				next = append(next, c)
			case PathKey:
				if c.Tag() != TagObject {
					if permissive {
						continue
					}
					return nil, ErrMismatchType
				}
				v, ok := d.Object(c).Get(tok.Key)
				if !ok {
					if permissive {
						continue
					}
					return nil, ErrUnknownObjKey
				}
				next = append(next, v)
			case PathIndex:
				if c.Tag() != TagArray {
					if permissive {
						continue
					}
					return nil, ErrMismatchType
				}
				arr := d.Array(c)
				if tok.Index < 0 || tok.Index >= arr.Len() {
					if permissive {
						continue
					}
					return nil, ErrArrIndexOutOfRange
				}
				next = append(next, arr.At(tok.Index))
			case PathWildcard:
				switch c.Tag() {
				case TagObject:
					obj := d.Object(c)
					for i := 0; i < obj.Len(); i++ {
						_, v := obj.At(i)
						next = append(next, v)
					}
				case TagArray:
					arr := d.Array(c)
					for i := 0; i < arr.Len(); i++ {
						next = append(next, arr.At(i))
					}
				default:
					if !permissive {
						return nil, ErrMismatchType
					}
				}
			}
		}
		if tok.Kind == PathWildcard {
			permissive = true
		}
		cur = next
	}
	return cur, ErrNone
}

// String renders p back into its textual form, primarily for diagnostics.
func (p Path) String() string {
	var b strings.Builder
	for _, tok := range p {
		switch tok.Kind {
		case PathRoot:
			b.WriteByte('$')
		case PathKey:
			b.WriteByte('.')
			b.WriteString(tok.Key)
		case PathWildcard:
			b.WriteString(".*")
		case PathIndex:
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(tok.Index))
			b.WriteByte(']')
		}
	}
	return b.String()
}
