package vecjson

import "testing"

func TestParseScalarValues(t *testing.T) {
	cases := []struct {
		in   string
		typ  Type
	}{
		{"null", TypeNull},
		{"true", TypeBool},
		{"false", TypeBool},
		{"42", TypeUint},
		{"3.14", TypeFloat},
		{`"hi"`, TypeString},
		{"[]", TypeArray},
		{"{}", TypeObject},
	}
	for _, c := range cases {
		doc, err := Parse([]byte(c.in))
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.in, err)
		}
		if got := doc.Root().Type(); got != c.typ {
			t.Errorf("Parse(%q).Root().Type() = %v, want %v", c.in, got, c.typ)
		}
	}
}

func TestParseObjectMembers(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": "two", "c": [1,2,3]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	if obj.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", obj.Len())
	}
	v, ok := obj.Get("b")
	if !ok || doc.StringValue(v) != "two" {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}
	v, ok = obj.Get("c")
	if !ok || v.Tag() != TagArray || doc.Array(v).Len() != 3 {
		t.Fatalf("Get(c) = %v, %v", v, ok)
	}
}

func TestParseNestedStructure(t *testing.T) {
	doc, err := Parse([]byte(`{"items":[{"id":1},{"id":2}]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	items, ok := doc.Object(doc.Root()).Get("items")
	if !ok {
		t.Fatal("missing items")
	}
	arr := doc.Array(items)
	if arr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", arr.Len())
	}
	first := doc.Object(arr.At(0))
	id, ok := first.Get("id")
	if !ok || doc.IntValue(id) != 1 {
		t.Fatalf("first id = %v, %v", id, ok)
	}
}

func TestParseErrorOffset(t *testing.T) {
	_, err := Parse([]byte(`{"a": }`))
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Offset != 6 {
		t.Fatalf("Offset = %d, want 6", perr.Offset)
	}
}

func TestParseErrorOffsetBadNumber(t *testing.T) {
	_, err := Parse([]byte(`1e400`))
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Offset != 4 {
		t.Fatalf("Offset = %d, want 4", perr.Offset)
	}
}

func TestParseErrorOffsetTrailingComma(t *testing.T) {
	_, err := Parse([]byte(`{"a":1,}`))
	perr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Offset != 6 {
		t.Fatalf("Offset = %d, want 6", perr.Offset)
	}
}

func TestParseTrailingGarbageErrors(t *testing.T) {
	if _, err := Parse([]byte(`42 43`)); err == nil {
		t.Fatal("expected error for trailing garbage")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := `{"a":1,"b":[true,false,null],"c":"hi"}`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	w := NewWriteBuffer(64)
	out, err := doc.Marshal(w, doc.Root())
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	doc2, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse of marshaled output failed: %v (output: %s)", err, out)
	}
	obj := doc2.Object(doc2.Root())
	v, _ := obj.Get("a")
	if doc2.IntValue(v) != 1 {
		t.Fatalf("round-tripped a = %v", doc2.IntValue(v))
	}
}

func TestObjectDuplicateKeyLatestWins(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	v, ok := obj.Get("a")
	if !ok || doc.IntValue(v) != 2 {
		t.Fatalf("Get(a) = %v, %v, want 2, true", v, ok)
	}
}

func TestObjectCreateMapMatchesLinearScan(t *testing.T) {
	doc, err := Parse([]byte(`{"x":1,"y":2,"x":3}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	wantX, _ := obj.Get("x")
	obj.CreateMap()
	gotX, ok := obj.Get("x")
	if !ok || gotX.payload != wantX.payload {
		t.Fatalf("Get(x) after CreateMap = %v, want %v", gotX, wantX)
	}
}

func TestAddMemberAndRemoveMember(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	newRoot := obj.AddMember("b", newIntNode(2), true)
	obj2 := doc.Object(newRoot)
	if obj2.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj2.Len())
	}
	v, ok := obj2.Get("b")
	if !ok || doc.IntValue(v) != 2 {
		t.Fatalf("Get(b) = %v, %v", v, ok)
	}

	removed := obj2.RemoveMember("a")
	obj3 := doc.Object(removed)
	if obj3.Len() != 1 {
		t.Fatalf("Len() after RemoveMember = %d, want 1", obj3.Len())
	}
	if _, ok := obj3.Get("a"); ok {
		t.Fatal("expected a to be removed")
	}
}

func TestArrayPushPopBack(t *testing.T) {
	doc, err := Parse([]byte(`[1,2,3]`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	arr := doc.Array(doc.Root())
	grown := arr.PushBack(newIntNode(4))
	arr2 := doc.Array(grown)
	if arr2.Len() != 4 || doc.IntValue(arr2.At(3)) != 4 {
		t.Fatalf("PushBack result wrong: len=%d", arr2.Len())
	}

	shrunk, popped, ok := arr2.PopBack()
	if !ok || doc.IntValue(popped) != 4 {
		t.Fatalf("PopBack() = %v, %v", popped, ok)
	}
	arr3 := doc.Array(shrunk)
	if arr3.Len() != 3 {
		t.Fatalf("Len() after PopBack = %d, want 3", arr3.Len())
	}
}

func TestObjectSizeCapacityFindHasErase(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	if obj.Size() != obj.Len() {
		t.Fatalf("Size() = %d, Len() = %d", obj.Size(), obj.Len())
	}
	if obj.Capacity() < obj.Len() {
		t.Fatalf("Capacity() = %d, want >= Len() %d", obj.Capacity(), obj.Len())
	}
	if !obj.HasMember("a") || obj.HasMember("z") {
		t.Fatal("HasMember disagreed with membership")
	}
	v, ok := obj.FindMember("b")
	if !ok || doc.IntValue(v) != 2 {
		t.Fatalf("FindMember(b) = %v, %v", v, ok)
	}
	erased := obj.EraseMember("a")
	obj2 := doc.Object(erased)
	if obj2.Len() != 1 || obj2.HasMember("a") {
		t.Fatalf("EraseMember left a in place: Len=%d", obj2.Len())
	}
}

func TestObjectClearAndReserve(t *testing.T) {
	doc, err := Parse([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	obj := doc.Object(doc.Root())
	cleared := obj.Clear()
	if doc.Object(cleared).Len() != 0 {
		t.Fatalf("Clear() left %d members", doc.Object(cleared).Len())
	}

	reserved := obj.Reserve(64)
	obj2 := doc.Object(reserved)
	if obj2.Len() != 2 {
		t.Fatalf("Reserve changed Len(): %d", obj2.Len())
	}
	if obj2.Capacity() < 64 {
		t.Fatalf("Capacity() after Reserve(64) = %d, want >= 64", obj2.Capacity())
	}
	if _, ok := obj2.Get("a"); !ok {
		t.Fatal("Reserve lost an existing member")
	}
}

func TestArraySizeCapacityClearErase(t *testing.T) {
	doc, err := Parse([]byte(`[1,2,3,4]`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	arr := doc.Array(doc.Root())
	if arr.Size() != arr.Len() {
		t.Fatalf("Size() = %d, Len() = %d", arr.Size(), arr.Len())
	}
	if arr.Capacity() < arr.Len() {
		t.Fatalf("Capacity() = %d, want >= Len() %d", arr.Capacity(), arr.Len())
	}

	erased := arr.Erase(1, 3)
	arr2 := doc.Array(erased)
	if arr2.Len() != 2 || doc.IntValue(arr2.At(0)) != 1 || doc.IntValue(arr2.At(1)) != 4 {
		t.Fatalf("Erase(1,3) result wrong: len=%d", arr2.Len())
	}

	cleared := arr.Clear()
	if doc.Array(cleared).Len() != 0 {
		t.Fatalf("Clear() left %d elements", doc.Array(cleared).Len())
	}
}

func TestAtPointer(t *testing.T) {
	doc, err := Parse([]byte(`{"a":{"b":[10,20,30]}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	ptr, perr := ParsePointer("/a/b/1")
	if perr != ErrNone {
		t.Fatalf("ParsePointer error: %v", perr)
	}
	v, perr := doc.AtPointer(doc.Root(), ptr)
	if perr != ErrNone {
		t.Fatalf("AtPointer error: %v", perr)
	}
	if doc.IntValue(v) != 20 {
		t.Fatalf("AtPointer = %v, want 20", doc.IntValue(v))
	}
}

func TestAtPath(t *testing.T) {
	doc, err := Parse([]byte(`{"items":[{"id":1},{"id":2},{"id":3}]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	path, perr := ParsePath("$.items[*].id")
	if perr != ErrNone {
		t.Fatalf("ParsePath error: %v", perr)
	}
	matches, perr := doc.AtPath(doc.Root(), path)
	if perr != ErrNone {
		t.Fatalf("AtPath error: %v", perr)
	}
	if len(matches) != 3 {
		t.Fatalf("len(matches) = %d, want 3", len(matches))
	}
	for i, want := range []int64{1, 2, 3} {
		if doc.IntValue(matches[i]) != want {
			t.Errorf("matches[%d] = %v, want %v", i, doc.IntValue(matches[i]), want)
		}
	}
}
