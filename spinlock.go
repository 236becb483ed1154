package vecjson

import (
	"runtime"
	"sync/atomic"
)

// spinlock is the optional mutual-exclusion primitive behind
// Arena.WithSpinlock. Go exposes no native spinlock, so this is a small
// CAS loop with a runtime.Gosched back-off, used only when a caller
// explicitly opts an Arena into concurrent sharing.
type spinlock struct {
	state int32
}

func (s *spinlock) Lock() {
	for !atomic.CompareAndSwapInt32(&s.state, 0, 1) {
		runtime.Gosched()
	}
}

func (s *spinlock) Unlock() {
	atomic.StoreInt32(&s.state, 0)
}
