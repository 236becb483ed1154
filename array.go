package vecjson

// Array is a view over a TagArray Node's elements.
//
// Grounded on parsed_array.go's Array type (superseded, tape model),
// keeping its At/Len shape over the new arena-backed children region.
type Array struct {
	doc   *Document
	elems []Node
	// handle is the arena node-region handle backing elems, used to look up
	// or grow its reserved capacity (see arena.go's nodeCap).
	handle uint64
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.elems) }

// Size is an alias for Len, per spec.md §6.4's container surface.
func (a Array) Size() int { return a.Len() }

// Capacity returns how many elements this array's backing region can hold
// before PushBack must reallocate, per spec.md §6.4/§3.1.
func (a Array) Capacity() int {
	return a.doc.arena.NodeCapacity(a.handle, len(a.elems))
}

// Clear returns the Node for an empty array, discarding every element.
func (a Array) Clear() Node { return makeNode(TagArray, 0, 0) }

// Reserve returns the Node for this array with its backing region grown
// (if necessary) to hold at least n elements without a further
// reallocation on the next few PushBack calls. It is a no-op, returning a's
// own Node unchanged, when a is already empty — see Object.Reserve for why.
func (a Array) Reserve(n int) Node {
	if len(a.elems) == 0 {
		return makeNode(TagArray, 0, 0)
	}
	wantCap := nextCapacity(n)
	if wantCap <= a.doc.arena.NodeCapacity(a.handle, len(a.elems)) {
		return makeNode(TagArray, uint64(len(a.elems)), a.handle)
	}
	handle, buf := a.doc.arena.allocNodesCap(len(a.elems), wantCap)
	copy(buf, a.elems)
	return makeNode(TagArray, uint64(len(a.elems)), handle)
}

// At returns the i'th element.
func (a Array) At(i int) Node { return a.elems[i] }

// PushBack returns the Node for this array with value appended.
func (a Array) PushBack(value Node) Node {
	newCount := len(a.elems) + 1
	if buf, ok := a.doc.arena.growNodesInPlace(a.handle, len(a.elems), newCount); ok {
		buf[len(a.elems)] = value
		return makeNode(TagArray, uint64(newCount), a.handle)
	}
	grown := append(append([]Node{}, a.elems...), value)
	return a.doc.allocContainer(TagArray, grown)
}

// PopBack returns the Node for this array with its last element removed,
// along with the removed element. ok is false for an empty array. Since
// shrinking a region never exceeds its already-reserved capacity, this
// reuses the same handle instead of reallocating.
func (a Array) PopBack() (Node, Node, bool) {
	if len(a.elems) == 0 {
		return Node{}, Node{}, false
	}
	last := a.elems[len(a.elems)-1]
	newCount := len(a.elems) - 1
	return makeNode(TagArray, uint64(newCount), a.handle), last, true
}

// Erase returns the Node for this array with elements [from, to) removed.
func (a Array) Erase(from, to int) Node {
	if from < 0 {
		from = 0
	}
	if to > len(a.elems) {
		to = len(a.elems)
	}
	if from >= to {
		return makeNode(TagArray, uint64(len(a.elems)), a.handle)
	}
	kept := make([]Node, 0, len(a.elems)-(to-from))
	kept = append(kept, a.elems[:from]...)
	kept = append(kept, a.elems[to:]...)
	return a.doc.allocContainer(TagArray, kept)
}
