package vecjson

import (
	"encoding/json"
	"testing"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// Sample payload kept inline rather than loaded from testdata/*.json.zst:
// the teacher's fixtures lived under benchmarks/testdata, which went away
// with the tape-era benchmarks harness (see DESIGN.md).
const benchPayload = `{
	"id": 918237,
	"name": "benchmark fixture",
	"active": true,
	"score": 3.14159,
	"tags": ["alpha", "beta", "gamma", "delta"],
	"address": {"city": "Springfield", "zip": "12345"},
	"items": [
		{"sku": "A1", "qty": 3, "price": 9.99},
		{"sku": "B2", "qty": 1, "price": 19.5},
		{"sku": "C3", "qty": 7, "price": 1.25}
	]
}`

func benchmarkEncodingJson(b *testing.B) {
	msg := []byte(benchPayload)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkJsoniter(b *testing.B) {
	msg := []byte(benchPayload)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	cfg := jsoniter.ConfigCompatibleWithStandardLibrary
	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := cfg.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkSonic(b *testing.B) {
	msg := []byte(benchPayload)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	var parsed interface{}
	for i := 0; i < b.N; i++ {
		if err := sonic.Unmarshal(msg, &parsed); err != nil {
			b.Fatal(err)
		}
	}
}

func benchmarkVecjson(b *testing.B) {
	msg := []byte(benchPayload)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Parse(msg, WithCopyStrings(false)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodingJson(b *testing.B) { benchmarkEncodingJson(b) }
func BenchmarkJsoniter(b *testing.B)      { benchmarkJsoniter(b) }
func BenchmarkSonic(b *testing.B)         { benchmarkSonic(b) }
func BenchmarkVecjson(b *testing.B)       { benchmarkVecjson(b) }
