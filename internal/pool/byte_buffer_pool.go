// Package pool provides pooled byte buffers backing the staging layer,
// so per-flush batch allocations are amortized across the scan.
package pool

import (
	"io"
	"sync"
)

const (
	// StageBufferDefaultSize is the initial capacity of buffers from the
	// default stage pool, sized for one staging batch of k-mer records.
	StageBufferDefaultSize = 64 * 1024
	// StageBufferMaxThreshold caps the capacity of buffers returned to the
	// pool; larger ones are dropped to avoid retaining rare spikes.
	StageBufferMaxThreshold = 1024 * 1024
)

// ByteBuffer is a growable byte slice with explicit reuse semantics.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write appends data and implements io.Writer; it never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// WriteTo writes the buffer's contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)

	return int64(n), err
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by the default batch size to minimize
// reallocation churn; large ones grow by 25% of capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := StageBufferDefaultSize
	if cap(bb.B) > 4*StageBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers that caps the capacity of
// retained buffers to avoid memory bloat from one oversized batch.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers with the given
// initial capacity. Buffers whose capacity grew past maxThreshold are
// discarded on Put; a maxThreshold of 0 disables the cap.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)

	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var stageDefaultPool = NewByteBufferPool(StageBufferDefaultSize, StageBufferMaxThreshold)

// GetStageBuffer retrieves a ByteBuffer from the default staging pool.
func GetStageBuffer() *ByteBuffer {
	return stageDefaultPool.Get()
}

// PutStageBuffer returns a ByteBuffer to the default staging pool.
func PutStageBuffer(bb *ByteBuffer) {
	stageDefaultPool.Put(bb)
}
