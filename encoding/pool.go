// encoding/pool.go
package encoding

import (
	"sync"
)

// BufferPool provides reusable byte slices for assembling one CSV row at a
// time. Tier sizes are chosen for that shape, not a generic byte stream: a
// single-engine flight with a handful of configured channels fits in the
// small tier, a typical fully configured single-engine row (E1-E4/C1-C4 plus
// the coordinate/fuel/engine channels) fits the medium tier, and the large
// tier covers a twin-engine row with every optional channel enabled.
type BufferPool struct {
	small  sync.Pool // rows up to ~8 narrow columns
	medium sync.Pool // a typical fully-configured single-engine row
	large  sync.Pool // a twin-engine row with every optional channel enabled
}

// Default pool sizes, in bytes of row text.
const (
	smallBufferSize  = 128
	mediumBufferSize = 512
	largeBufferSize  = 2048
)

// NewBufferPool creates a new buffer pool
func NewBufferPool() *BufferPool {
	return &BufferPool{
		small: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, smallBufferSize)
				return &buf
			},
		},
		medium: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, mediumBufferSize)
				return &buf
			},
		},
		large: sync.Pool{
			New: func() interface{} {
				buf := make([]byte, 0, largeBufferSize)
				return &buf
			},
		},
	}
}

// Get retrieves a buffer with at least the specified capacity
func (p *BufferPool) Get(capacity int) []byte {
	var buf *[]byte

	switch {
	case capacity <= smallBufferSize:
		buf = p.small.Get().(*[]byte)
		if cap(*buf) < capacity {
			*buf = make([]byte, 0, smallBufferSize)
		}
	case capacity <= mediumBufferSize:
		buf = p.medium.Get().(*[]byte)
		if cap(*buf) < capacity {
			*buf = make([]byte, 0, mediumBufferSize)
		}
	case capacity <= largeBufferSize:
		buf = p.large.Get().(*[]byte)
		if cap(*buf) < capacity {
			*buf = make([]byte, 0, largeBufferSize)
		}
	default:
		// A row wider than the large tier (an unusually dense channel
		// configuration): allocate directly rather than stretch the pool.
		slice := make([]byte, 0, capacity)
		return slice
	}

	// Reset length but keep capacity
	*buf = (*buf)[:0]
	return *buf
}

// Put returns a buffer to the pool
func (p *BufferPool) Put(buf []byte) {
	if buf == nil {
		return
	}

	// Return to the appropriate pool based on capacity
	switch cap(buf) {
	case 0:
		// Don't store empty buffers
		return
	case smallBufferSize:
		p.small.Put(&buf)
	case mediumBufferSize:
		p.medium.Put(&buf)
	case largeBufferSize:
		p.large.Put(&buf)
	default:
		// Don't keep non-standard sized buffers
		// They'll be garbage collected
	}
}

// DefaultBufferPool is the package-level buffer pool used by edm.joinRow to
// assemble one CSV row per call without a fresh allocation per record.
var DefaultBufferPool = NewBufferPool()

// GetBuffer retrieves a buffer from the default pool with at least the specified capacity
func GetBuffer(capacity int) []byte {
	return DefaultBufferPool.Get(capacity)
}

// PutBuffer returns a buffer to the default pool
func PutBuffer(buf []byte) {
	DefaultBufferPool.Put(buf)
}
