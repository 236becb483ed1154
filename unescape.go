package vecjson

import (
	"math/bits"
	"unicode/utf8"
)

// scanPlainRun returns the index of the first byte at or after pos that
// needs slow-path handling (a backslash or a raw control byte), scanning
// 64-byte blocks via eqMask/lowControlMask instead of testing one byte at a
// time. Used by unescapeString for both its initial fast path and the
// plain-byte runs between escape sequences.
func scanPlainRun(buf []byte, pos int) int {
	for pos < len(buf) {
		win, n := block(buf, pos)
		stop := (eqMask(win, '\\') | lowControlMask(win)) & validMask(n)
		if stop != 0 {
			return pos + bits.TrailingZeros64(stop)
		}
		pos += n
	}
	return len(buf)
}

// unescapeString unescapes the JSON string body src (the bytes strictly
// between the quotes) in place, returning the unescaped length. Per spec.md
// §4.2/L1, the fast path (no backslash or control byte in src) is one
// block-scanned pass of scanPlainRun; the slow path decodes one escape at a
// time and copies the plain runs between escapes (found with scanPlainRun),
// writing the decoded form back over the same buffer (every escape sequence
// is at least as long as its decoding, so the write cursor never overtakes
// the read cursor).
//
// Grounded on parse_string_test.go's escape-table expectations and
// original_source/include/sonic/internal/quote.h's unescape state machine,
// translated from an x86 shuffle-table lookup into a plain switch.
func unescapeString(src []byte) (n int, err SonicError) {
	i := scanPlainRun(src, 0)
	if i == len(src) {
		return i, ErrNone
	}

	w := i
	for i < len(src) {
		c := src[i]
		if c < 0x20 {
			return 0, ErrUnescapedControl
		}
		if c != '\\' {
			run := scanPlainRun(src, i)
			w += copy(src[w:], src[i:run])
			i = run
			continue
		}
		i++
		if i >= len(src) {
			return 0, ErrEOF
		}
		switch src[i] {
		case '"':
			src[w] = '"'
		case '\\':
			src[w] = '\\'
		case '/':
			src[w] = '/'
		case 'b':
			src[w] = '\b'
		case 'f':
			src[w] = '\f'
		case 'n':
			src[w] = '\n'
		case 'r':
			src[w] = '\r'
		case 't':
			src[w] = '\t'
		case 'u':
			r, adv, uerr := decodeEscapedUnicode(src[i+1:])
			if uerr != ErrNone {
				return 0, uerr
			}
			i += 1 + adv
			w += utf8.EncodeRune(src[w:], r)
			continue
		default:
			return 0, ErrEscapedFormat
		}
		w++
		i++
	}
	return w, ErrNone
}

// decodeEscapedUnicode decodes a \uXXXX (or \uXXXX\uYYYY surrogate pair)
// sequence, where hex is the four (or more) bytes immediately following
// "\u". It returns the decoded rune and how many bytes of hex+second-escape
// were consumed after the first "\u" marker (i.e. the caller's cursor,
// currently sitting on the "u", should advance by 1+adv to reach the next
// unconsumed byte).
func decodeEscapedUnicode(hex []byte) (r rune, adv int, err SonicError) {
	v, ok := parseHex4(hex)
	if !ok {
		return 0, 0, ErrEscapedUnicode
	}
	adv = 4

	if v < 0xd800 || v > 0xdbff {
		if v >= 0xdc00 && v <= 0xdfff {
			return 0, 0, ErrEscapedUnicode
		}
		return rune(v), adv, ErrNone
	}

	// High surrogate: must be followed by \uDC00-\uDFFF.
	if len(hex) < adv+6 || hex[adv] != '\\' || hex[adv+1] != 'u' {
		return 0, 0, ErrEscapedUnicode
	}
	low, ok := parseHex4(hex[adv+2:])
	if !ok || low < 0xdc00 || low > 0xdfff {
		return 0, 0, ErrEscapedUnicode
	}
	combined := 0x10000 + (rune(v)-0xd800)<<10 + (rune(low) - 0xdc00)
	return combined, adv + 6, ErrNone
}

func parseHex4(b []byte) (uint32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var v uint32
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(b[i])
		if !ok {
			return 0, false
		}
		v = v<<4 | uint32(d)
	}
	return v, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// validateUTF8 reports whether a string body (already unescaped) is valid
// UTF-8, per spec.md's L1 string-validity requirement.
func validateUTF8(b []byte) bool {
	return utf8.Valid(b)
}
