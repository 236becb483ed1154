package vecjson

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// snapshot.go gives klauspost/compress a job in the new, arena-based DOM:
// the teacher's parsed_serialize.go (superseded; see DESIGN.md) compressed
// its flat tape for NDJSON caching. This repository has no tape, so
// Document.Snapshot instead compresses the value's serialized JSON form;
// LoadSnapshot decompresses it and runs Parse on the result to rebuild a
// Document.

// CompressionLevel selects the snapshot compressor.
type CompressionLevel int

const (
	// CompressFast uses s2's default (block) mode: lowest latency.
	CompressFast CompressionLevel = iota
	// CompressBest uses zstd at its best-ratio preset: smaller snapshots,
	// slower to produce.
	CompressBest
)

// Snapshot serializes n and compresses the result, per level.
func (d *Document) Snapshot(n Node, level CompressionLevel) ([]byte, error) {
	w := NewWriteBuffer(256)
	raw, err := d.Marshal(w, n)
	if err != nil {
		return nil, err
	}
	switch level {
	case CompressBest:
		enc, eerr := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if eerr != nil {
			return nil, eerr
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	default:
		return s2.Encode(nil, raw), nil
	}
}

// LoadSnapshot decompresses and parses a snapshot produced by Snapshot,
// auto-detecting whether it is s2 or zstd framed.
func LoadSnapshot(snapshot []byte, opts ...ParseOption) (*Document, error) {
	raw, err := decompressSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	return Parse(raw, opts...)
}

func decompressSnapshot(b []byte) ([]byte, error) {
	if n, err := s2.DecodedLen(b); err == nil && n >= 0 {
		if out, derr := s2.Decode(nil, b); derr == nil {
			return out, nil
		}
	}
	dec, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("vecjson: unrecognized snapshot framing: %w", err)
	}
	defer dec.Close()
	return io.ReadAll(dec)
}
