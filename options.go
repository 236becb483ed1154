package vecjson

// parseConfig holds the knobs a ParseOption can set. Grounded on the
// teacher's options.go (ParserOption func(pj *internalParsedJson) error),
// generalized to the new Document/Arena model.
type parseConfig struct {
	copyStrings bool
	maxDepth    int
	chunkSize   int
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		copyStrings: true,
		maxDepth:    1024,
		chunkSize:   DefaultChunkSize,
	}
}

// ParseOption configures a Parse call.
type ParseOption func(*parseConfig)

// WithCopyStrings controls whether unescaped strings are copied into a
// fresh buffer (safe to hold onto after the input buffer is reused/freed)
// or aliased in place (faster, but ties the Document's lifetime to the
// caller's input buffer). Default true, matching the teacher's
// WithCopyStrings default.
func WithCopyStrings(copy bool) ParseOption {
	return func(c *parseConfig) { c.copyStrings = copy }
}

// WithMaxDepth overrides the default nesting-depth guard (1024).
func WithMaxDepth(depth int) ParseOption {
	return func(c *parseConfig) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithArenaChunkSize overrides the arena's chunk size for the Document
// built by this Parse call.
func WithArenaChunkSize(n int) ParseOption {
	return func(c *parseConfig) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// SerializeFlags controls serialization behavior, per spec.md §6.3. The
// zero value is SerializeDefault; flags combine with bitwise OR.
type SerializeFlags uint8

const (
	// SerializeDefault emits compact JSON, raw (non-surrogate-escaped)
	// UTF-8 for runes above U+FFFF, and lowercase \u hex digits.
	SerializeDefault SerializeFlags = 0
	// SerializeAppendBuffer appends to the caller's WriteBuffer instead of
	// resetting it first.
	SerializeAppendBuffer SerializeFlags = 1 << (iota - 1)
	// SerializeEscapeEmoji escapes runes above U+FFFF as a \uXXXX\uXXXX
	// surrogate pair instead of writing their raw UTF-8 encoding.
	SerializeEscapeEmoji
	// SerializeUnicodeEscapeUppercase writes \u escape hex digits using
	// uppercase letters (A-F) instead of lowercase (a-f).
	SerializeUnicodeEscapeUppercase
)

// resolveFlags ORs a variadic flags argument down to a single value,
// defaulting to SerializeDefault when the caller passes none.
func resolveFlags(flags []SerializeFlags) SerializeFlags {
	var f SerializeFlags
	for _, v := range flags {
		f |= v
	}
	return f
}
