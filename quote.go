package vecjson

import (
	"math/bits"
	"unicode/utf8"
)

// quoteTable classifies bytes that must be escaped when writing a JSON
// string: control bytes, the quote character and the backslash. Grounded
// on the teacher's escapeBytes lookup table (formerly parsed_json.go,
// folded into this file since that file was superseded by the Node model).
var quoteTable [256]bool

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

func init() {
	for i := 0; i < 0x20; i++ {
		quoteTable[i] = true
	}
	quoteTable['"'] = true
	quoteTable['\\'] = true
}

// scanQuoteStop returns the index of the first byte at or after pos that
// needs escaping (a quote, a backslash or a control byte), scanning
// 64-byte blocks via eqMask/lowControlMask instead of testing one byte at a
// time. Only valid when emoji escaping is off: it treats every other byte,
// including multi-byte UTF-8 continuation bytes, as safe to copy verbatim.
func scanQuoteStop(s []byte, pos int) int {
	for pos < len(s) {
		win, n := block(s, pos)
		stop := (eqMask(win, '"') | eqMask(win, '\\') | lowControlMask(win)) & validMask(n)
		if stop != 0 {
			return pos + bits.TrailingZeros64(stop)
		}
		pos += n
	}
	return len(s)
}

// appendEscape writes the escaped form of a single byte requiring escaping,
// using hex for the \u00XX fallback case.
func appendEscape(dst []byte, c byte, hex string) []byte {
	switch c {
	case '"':
		return append(dst, '\\', '"')
	case '\\':
		return append(dst, '\\', '\\')
	case '\b':
		return append(dst, '\\', 'b')
	case '\f':
		return append(dst, '\\', 'f')
	case '\n':
		return append(dst, '\\', 'n')
	case '\r':
		return append(dst, '\\', 'r')
	case '\t':
		return append(dst, '\\', 't')
	default:
		return append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
	}
}

// appendUnicodeEscape writes a single \uXXXX escape for a BMP code point.
func appendUnicodeEscape(dst []byte, v uint16, hex string) []byte {
	return append(dst, '\\', 'u',
		hex[(v>>12)&0xf], hex[(v>>8)&0xf], hex[(v>>4)&0xf], hex[v&0xf])
}

// appendSurrogatePair writes r (a rune above U+FFFF) as a \uD800-\uDBFF
// \uDC00-\uDFFF surrogate pair escape, per spec.md §6.3's Spark-compatible
// SerializeEscapeEmoji mode.
func appendSurrogatePair(dst []byte, r rune, hex string) []byte {
	r -= 0x10000
	hi := uint16(0xd800 + (r >> 10))
	lo := uint16(0xdc00 + (r & 0x3ff))
	dst = appendUnicodeEscape(dst, hi, hex)
	return appendUnicodeEscape(dst, lo, hex)
}

// appendQuoted writes the JSON-quoted form of s (including surrounding
// quotes) to dst and returns the result.
func appendQuoted(dst []byte, s []byte, flags SerializeFlags) []byte {
	hex := hexLower
	if flags&SerializeUnicodeEscapeUppercase != 0 {
		hex = hexUpper
	}
	dst = append(dst, '"')

	if flags&SerializeEscapeEmoji == 0 {
		start := 0
		pos := 0
		for pos < len(s) {
			stop := scanQuoteStop(s, pos)
			if stop >= len(s) {
				break
			}
			dst = append(dst, s[start:stop]...)
			dst = appendEscape(dst, s[stop], hex)
			pos = stop + 1
			start = pos
		}
		dst = append(dst, s[start:]...)
		return append(dst, '"')
	}

	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if quoteTable[c] {
				dst = appendEscape(dst, c, hex)
			} else {
				dst = append(dst, c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(s[i:])
		if r > 0xffff {
			dst = appendSurrogatePair(dst, r, hex)
		} else {
			dst = append(dst, s[i:i+size]...)
		}
		i += size
	}
	return append(dst, '"')
}

// appendQuotedString is appendQuoted for a Go string: it converts s to a
// []byte and delegates.
func appendQuotedString(dst []byte, s string, flags SerializeFlags) []byte {
	return appendQuoted(dst, []byte(s), flags)
}
