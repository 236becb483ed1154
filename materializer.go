package vecjson

// materializer.go holds the Document-side helpers that turn decoded values
// into Nodes backed by the Arena: the Go equivalent of the tape-building
// step in the teacher's stage2_build_tape.go (superseded; see DESIGN.md),
// translated from "append a tagged word to the tape" to "allocate an arena
// region and record a handle".

// newString materializes s as either an owned (arena-copied) or const
// (caller-borrowed) string Node. copy=true matches AddMember/Array
// mutation's usual default: the caller's key/value strings are not assumed
// to outlive the call.
func (d *Document) newString(s string, doCopy bool) Node {
	if !doCopy {
		idx := len(d.constRefs)
		d.constRefs = append(d.constRefs, s)
		return makeNode(TagStringConst, uint64(len(s)), uint64(idx))
	}
	handle, buf := d.arena.allocBytes(len(s))
	n := copy(buf, s)
	return makeNode(TagStringOwned, uint64(n), handle)
}

// allocContainer copies children into a fresh, capacity-bearing arena node
// region and returns the container Node (tag must be TagObject or
// TagArray) that addresses it.
func (d *Document) allocContainer(tag Tag, children []Node) Node {
	if len(children) == 0 {
		return makeNode(tag, 0, 0)
	}
	handle, buf := d.arena.allocNodesCap(len(children), nextCapacity(len(children)))
	copy(buf, children)
	return makeNode(tag, uint64(len(children)), handle)
}

// nextCapacity returns the smallest container capacity (floor 16, growth
// factor 1.5) that holds want node slots, per spec.md §3.1's
// ContainerHeader{capacity, key_index} invariant.
func nextCapacity(want int) int {
	c := 16
	for c < want {
		c += c / 2
	}
	return c
}
