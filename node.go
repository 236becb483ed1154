/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vecjson

import "math"

// Tag is the basic+subtype discriminator that lives in the low 8 bits of a
// Node's first word.
type Tag uint8

const (
	TagNull Tag = iota
	TagBoolFalse
	TagBoolTrue
	TagUint
	TagInt
	TagFloat
	// TagStringCopied strings alias Document.input: the bytes were unescaped
	// in place during parsing and still live inside the original message.
	TagStringCopied
	// TagStringOwned strings were allocated fresh (the parser with
	// copyStrings enabled, AddMember with copyKey=true) and live in the arena.
	TagStringOwned
	// TagStringConst strings are borrowed from caller-owned memory; the
	// Document holds a reference (via constRefs) but never copies or frees it.
	TagStringConst
	// TagRaw is a deferred-parse byte slice used by the lazy parser variant.
	TagRaw
	// TagObject and TagArray mark the start of a container; the node's
	// length field holds the number of child Nodes in the region (two per
	// object member, key then value; one per array element), so for an
	// object it is twice the member count, not the member count. The
	// payload is an arena node-handle for the contiguous children region.
	TagObject
	TagArray
)

// Type is the JSON value type exposed to callers; it collapses Tag's string
// subtypes into TypeString. A TagRaw node reports TypeRaw until Realize
// turns it into a Node of a concrete Type.
type Type uint8

const (
	TypeNone Type = iota
	TypeNull
	TypeBool
	TypeInt
	TypeUint
	TypeFloat
	TypeString
	TypeRaw
	TypeObject
	TypeArray
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "(no type)"
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeUint:
		return "uint"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeRaw:
		return "raw"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	}
	return "(invalid)"
}

// tagToType converts a Tag to the Type a caller observes.
var tagToType = [...]Type{
	TagNull:         TypeNull,
	TagBoolFalse:    TypeBool,
	TagBoolTrue:     TypeBool,
	TagUint:         TypeUint,
	TagInt:          TypeInt,
	TagFloat:        TypeFloat,
	TagStringCopied: TypeString,
	TagStringOwned:  TypeString,
	TagStringConst:  TypeString,
	TagRaw:          TypeRaw,
	TagObject:       TypeObject,
	TagArray:        TypeArray,
}

// Type returns the Type a caller should observe for this Tag.
func (t Tag) Type() Type {
	if int(t) >= len(tagToType) {
		return TypeNone
	}
	return tagToType[t]
}

// IsString reports whether t is any of the three string subtypes.
func (t Tag) IsString() bool {
	return t == TagStringCopied || t == TagStringOwned || t == TagStringConst
}

// IsContainer reports whether t starts an object or an array.
func (t Tag) IsContainer() bool {
	return t == TagObject || t == TagArray
}

// FloatFlag is a flag recorded while parsing a number into a double.
type FloatFlag uint64

const (
	// FloatOverflowedInteger is set when the source was written in integer
	// notation but over/underflowed both int64 and uint64, so it was parsed
	// as a double instead.
	FloatOverflowedInteger FloatFlag = 1 << iota
	// FloatTruncated is set when a number has more than 17 significant
	// digits and the digits past the 17th lie in its fractional part. The
	// flag is informational: the value is still converted from every digit.
	FloatTruncated
)

// FloatFlags is a set of FloatFlag values, stored in a Node's spare length
// bits for float-tagged nodes.
type FloatFlags uint64

// Contains returns whether f contains the specified flag.
func (f FloatFlags) Contains(flag FloatFlag) bool {
	return FloatFlag(f)&flag == flag
}

// Node is the 16-byte tagged value that is the unit of storage for every
// parsed value. It is deliberately two uint64 words and nothing else: the
// first carries the Tag in its low 8 bits plus a 56-bit length/immediate,
// the second carries a payload whose meaning depends on the Tag.
//
// Go has no safe way to stash a raw pointer inside a uint64 and keep the
// garbage collector aware of it, so the payload is never a pointer: it is
// either a numeric bit pattern, a byte offset into Document.input, an index
// into Document.constRefs, or an arena handle resolved through an *Arena.
// Which applies is fully determined by the Tag.
type Node struct {
	tagLen  uint64
	payload uint64
}

// nullNode is the zero value reinterpreted: Tag 0 is TagNull and an all-zero
// payload is the canonical null.
var nullNode = Node{tagLen: uint64(TagNull)}

func makeNode(tag Tag, lenOrImm uint64, payload uint64) Node {
	return Node{tagLen: uint64(tag) | (lenOrImm << 8), payload: payload}
}

// Tag returns the node's type tag.
func (n Node) Tag() Tag { return Tag(n.tagLen & 0xff) }

// Type returns the node's externally visible Type.
func (n Node) Type() Type { return n.Tag().Type() }

// lenOrImm returns the 56-bit length/immediate field.
func (n Node) lenOrImm() uint64 { return n.tagLen >> 8 }

func newBoolNode(b bool) Node {
	if b {
		return Node{tagLen: uint64(TagBoolTrue)}
	}
	return Node{tagLen: uint64(TagBoolFalse)}
}

func newIntNode(v int64) Node {
	return makeNode(TagInt, 0, uint64(v))
}

func newUintNode(v uint64) Node {
	return makeNode(TagUint, 0, v)
}

func newFloatNode(v float64, flags FloatFlags) Node {
	return makeNode(TagFloat, uint64(flags), math.Float64bits(v))
}

// floatFromBits reinterprets a TagFloat node's payload as a float64.
func floatFromBits(bits uint64) float64 { return math.Float64frombits(bits) }
