package mempool

import (
	"sync"
)

// A sized pool for []uint16 decode buffers. Buffers hold decoded text
// between the two recognition calls, so contents are scrubbed on return;
// a borrower never observes another caller's text.

var uint16Pools sync.Map // key: size class (int), value: *sync.Pool

// sizeClass rounds n up to the next multiple of 1024 to reduce churn.
func sizeClass(n int) int {
	const step = 1024
	if n <= step {
		return step
	}
	r := (n + step - 1) / step
	return r * step
}

// GetUint16 retrieves a []uint16 buffer of exactly n elements (capacity may
// be larger). The caller must return it via PutUint16 when done.
func GetUint16(n int) []uint16 {
	cls := sizeClass(n)
	pAny, _ := uint16Pools.LoadOrStore(cls, &sync.Pool{New: func() any { return make([]uint16, cls) }})
	p, ok := pAny.(*sync.Pool)
	if !ok {
		return make([]uint16, n)
	}
	buf, ok := p.Get().([]uint16)
	if !ok || cap(buf) < cls {
		buf = make([]uint16, cls)
	}
	return buf[:n]
}

// PutUint16 scrubs a buffer and returns it to the pool. It is safe to pass
// a nil slice. The scrub covers the full capacity, not just the caller's
// length, so truncated borrows cannot leak earlier contents either.
func PutUint16(buf []uint16) {
	if buf == nil {
		return
	}
	buf = buf[:cap(buf)]
	for i := range buf {
		buf[i] = 0
	}
	cls := sizeClass(cap(buf))
	pAny, _ := uint16Pools.LoadOrStore(cls, &sync.Pool{New: func() any { return make([]uint16, cls) }})
	if p, ok := pAny.(*sync.Pool); ok {
		p.Put(buf) //nolint:staticcheck
	}
}
