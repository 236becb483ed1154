package vecjson

import (
	"strings"
	"testing"
)

func TestParseND(t *testing.T) {
	buf := []byte("{\"a\":1}\n{\"a\":2}\n{\"a\":3}\n")
	docs, err := ParseND(buf)
	if err != nil {
		t.Fatalf("ParseND error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len(docs) = %d, want 3", len(docs))
	}
	for i, want := range []int64{1, 2, 3} {
		obj := docs[i].Object(docs[i].Root())
		v, ok := obj.Get("a")
		if !ok || docs[i].IntValue(v) != want {
			t.Errorf("docs[%d].a = %v, want %v", i, v, want)
		}
	}
}

func TestParseNDSkipsBlankLines(t *testing.T) {
	buf := []byte("{\"a\":1}\n\n{\"a\":2}\n")
	docs, err := ParseND(buf)
	if err != nil {
		t.Fatalf("ParseND error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len(docs) = %d, want 2", len(docs))
	}
}

func TestParseNDStream(t *testing.T) {
	input := strings.Repeat("{\"n\":1}\n", 50)
	ch := ParseNDStream(strings.NewReader(input), 4)
	count := 0
	for res := range ch {
		if res.Err != nil {
			t.Fatalf("stream result error: %v", res.Err)
		}
		count++
	}
	if count != 50 {
		t.Fatalf("count = %d, want 50", count)
	}
}
