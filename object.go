package vecjson

// Object is a view over a TagObject Node's members: pairs is a flat,
// alternating key/value Node slice (key at 2i, value at 2i+1), matching
// how the container's children region is laid out in the arena.
//
// Grounded on parsed_object.go's Object/Elements types (superseded, tape
// model), keeping its method-set shape (Get, index-by-key, AddMember).
type Object struct {
	doc   *Document
	pairs []Node
	index map[string][]int
	// handle is the arena node-region handle backing pairs, used to look up
	// or grow its reserved capacity (see arena.go's nodeCap).
	handle uint64
}

// Len returns the number of members.
func (o Object) Len() int { return len(o.pairs) / 2 }

// Size is an alias for Len, per spec.md §6.4's container surface.
func (o Object) Size() int { return o.Len() }

// Capacity returns how many members this object's backing region can hold
// before AddMember must reallocate, per spec.md §6.4/§3.1.
func (o Object) Capacity() int {
	return o.doc.arena.NodeCapacity(o.handle, len(o.pairs)) / 2
}

// HasMember reports whether key names a member of this object.
func (o Object) HasMember(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// FindMember is an alias for Get, per spec.md §6.4's container surface.
func (o Object) FindMember(key string) (Node, bool) { return o.Get(key) }

// EraseMember is an alias for RemoveMember, per spec.md §6.4's container
// surface.
func (o Object) EraseMember(key string) Node { return o.RemoveMember(key) }

// Clear returns the Node for an empty object, discarding every member.
func (o Object) Clear() Node { return makeNode(TagObject, 0, 0) }

// Reserve returns the Node for this object with its backing region grown
// (if necessary) to hold at least n members without a further
// reallocation on the next few AddMember calls. It is a no-op, returning
// o's own Node unchanged, when o is already empty: an empty container's
// capacity can never be observed or grown in place (see arena.go's
// NodeCapacity), so there is nothing useful to reserve against.
func (o Object) Reserve(n int) Node {
	if len(o.pairs) == 0 {
		return makeNode(TagObject, 0, 0)
	}
	wantCap := nextCapacity(n * 2)
	if wantCap <= o.doc.arena.NodeCapacity(o.handle, len(o.pairs)) {
		return makeNode(TagObject, uint64(len(o.pairs)), o.handle)
	}
	handle, buf := o.doc.arena.allocNodesCap(len(o.pairs), wantCap)
	copy(buf, o.pairs)
	return makeNode(TagObject, uint64(len(o.pairs)), handle)
}

// At returns the key and value of the i'th member.
func (o Object) At(i int) (key string, value Node) {
	k := o.pairs[2*i]
	return o.doc.StringValue(k), o.pairs[2*i+1]
}

// CreateMap builds (or rebuilds) the key index used by Get, per spec.md
// §3.3. Any subsequent AddMember/RemoveMember invalidates it; call
// CreateMap again to rebuild.
func (o *Object) CreateMap() {
	idx := make(map[string][]int, o.Len())
	for i := 0; i < o.Len(); i++ {
		key, _ := o.At(i)
		idx[key] = append(idx[key], i)
	}
	o.index = idx
}

// DestroyMap drops the key index, reverting Get to a linear scan.
func (o *Object) DestroyMap() { o.index = nil }

// Get returns the value of the last member named key, per the
// latest-insertion-wins rule of spec.md §3.3.
func (o Object) Get(key string) (Node, bool) {
	if o.index != nil {
		if positions, ok := o.index[key]; ok && len(positions) > 0 {
			_, v := o.At(positions[len(positions)-1])
			return v, true
		}
		return Node{}, false
	}
	var found Node
	ok := false
	for i := 0; i < o.Len(); i++ {
		k, v := o.At(i)
		if k == key {
			found, ok = v, true
		}
	}
	return found, ok
}

// AddMember appends a new key/value pair, extending the member region in
// place when its reserved capacity allows and otherwise allocating fresh
// arena storage for the grown region; it returns the Node that must replace the
// previous container Node wherever the caller holds it (the tree is
// value-typed, so mutation is always "allocate new, replace the slot").
//
// Grounded on original_source/src/addmember.cpp and get_and_set.cpp.
func (o Object) AddMember(key string, value Node, copyKey bool) Node {
	keyNode := o.doc.newString(key, copyKey)
	newCount := len(o.pairs) + 2
	if buf, ok := o.doc.arena.growNodesInPlace(o.handle, len(o.pairs), newCount); ok {
		buf[len(o.pairs)] = keyNode
		buf[len(o.pairs)+1] = value
		return makeNode(TagObject, uint64(newCount), o.handle)
	}
	grown := append(append([]Node{}, o.pairs...), keyNode, value)
	return o.doc.allocContainer(TagObject, grown)
}

// RemoveMember returns the Node for this object with every member named
// key removed.
func (o Object) RemoveMember(key string) Node {
	kept := make([]Node, 0, len(o.pairs))
	for i := 0; i < o.Len(); i++ {
		k, v := o.At(i)
		if k == key {
			continue
		}
		kept = append(kept, o.pairs[2*i], v)
	}
	return o.doc.allocContainer(TagObject, kept)
}
