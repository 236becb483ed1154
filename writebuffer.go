package vecjson

// WriteBuffer is a growable output buffer for the L5 serializer, grounded
// on original_source/include/sonic/writebuffer.h: a thin wrapper over a
// byte slice that exposes Bytes()/Reset() so a caller can reuse the backing
// array across repeated Marshal calls instead of allocating every time.
//
// Reserve/PushUnsafe follow the original's preflight-then-unchecked-push
// contract: a caller that knows how many bytes it's about to write can
// Reserve(n) once and then PushUnsafe each byte without a bounds check on
// every call, the way the C++ writebuffer's push_unsafe<n> leans on a prior
// reserve to skip its capacity check.
type WriteBuffer struct {
	buf []byte
}

// NewWriteBuffer returns a WriteBuffer with capacity hint n.
func NewWriteBuffer(n int) *WriteBuffer {
	return &WriteBuffer{buf: make([]byte, 0, n)}
}

// Bytes returns the buffer's current contents.
func (w *WriteBuffer) Bytes() []byte { return w.buf }

// Reset empties the buffer while keeping its backing array.
func (w *WriteBuffer) Reset() { w.buf = w.buf[:0] }

func (w *WriteBuffer) writeByte(c byte) { w.buf = append(w.buf, c) }

func (w *WriteBuffer) writeBytes(b []byte) { w.buf = append(w.buf, b...) }

// Reserve grows the buffer's capacity so at least n more bytes can be
// appended without a further reallocation, without changing its length.
func (w *WriteBuffer) Reserve(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	grown := make([]byte, len(w.buf), len(w.buf)+n)
	copy(grown, w.buf)
	w.buf = grown
}

// Push appends p to the buffer, growing it if necessary.
func (w *WriteBuffer) Push(p []byte) { w.writeBytes(p) }

// PushUnsafe appends a single byte without checking capacity; the caller
// must have already reserved room for it via Reserve.
func (w *WriteBuffer) PushUnsafe(b byte) {
	w.buf = w.buf[:len(w.buf)+1]
	w.buf[len(w.buf)-1] = b
}

// Pop removes and returns the last n bytes of the buffer. It panics if n
// exceeds the buffer's length, matching the original's unchecked pop.
func (w *WriteBuffer) Pop(n int) []byte {
	cut := len(w.buf) - n
	popped := append([]byte(nil), w.buf[cut:]...)
	w.buf = w.buf[:cut]
	return popped
}

// TopByte returns the last byte written and true, or 0 and false if the
// buffer is empty.
func (w *WriteBuffer) TopByte() (byte, bool) {
	if len(w.buf) == 0 {
		return 0, false
	}
	return w.buf[len(w.buf)-1], true
}
