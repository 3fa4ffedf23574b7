package staging

import (
	"errors"
	"fmt"
	"sync"

	"github.com/genobit/kmerpack/compress"
	"github.com/genobit/kmerpack/errs"
	"github.com/genobit/kmerpack/internal/options"
	"github.com/genobit/kmerpack/internal/pool"
	"github.com/genobit/kmerpack/kmer"
)

// DefaultBatchRecords is the flush threshold when none is configured.
// At typical record sizes this keeps batches near the stage pool's
// default buffer capacity.
const DefaultBatchRecords = 4096

// Batch is one flushed run of framed records, compressed as configured
// on the producing Buffer. The consumer side rebuilds records with a
// BatchReader.
type Batch struct {
	// Records is the number of framed records in the batch.
	Records int
	// Compression identifies the codec applied to Data.
	Compression compress.CompressionType
	// Data is the (possibly compressed) record bytes. The batch owns it.
	Data []byte
}

// FlushFunc receives each full batch from a Buffer. It runs on the
// goroutine that triggered the flush, under the buffer's lock.
type FlushFunc func(Batch) error

// ChannelFlush adapts a channel to a FlushFunc, the usual hand-off to a
// consumer goroutine. The send blocks when the channel is full, which
// backpressures the producing scan.
func ChannelFlush(ch chan<- Batch) FlushFunc {
	return func(b Batch) error {
		ch <- b

		return nil
	}
}

// nopLocker is the lock policy for single-goroutine producers.
type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// Synchronized returns the lock policy for buffers shared between
// producer goroutines.
func Synchronized() sync.Locker {
	return &sync.Mutex{}
}

// Unsynchronized returns the no-op lock policy for a buffer owned by a
// single goroutine. It is the default.
func Unsynchronized() sync.Locker {
	return nopLocker{}
}

// Buffer batches accepted k-mers into framed records and flushes them
// as compressed batches. It implements kmer.Sink, so a Buffer can be
// passed directly to kmer.Scan.
//
// Whether the buffer is thread safe is decided at construction through
// WithSync; there is one Buffer type either way.
type Buffer[W kmer.Word] struct {
	class *kmer.Class[W]
	mu    sync.Locker

	codec compress.Codec
	ctype compress.CompressionType
	flush FlushFunc

	buf          *pool.ByteBuffer
	records      int
	batchRecords int
	closed       bool
}

// Option configures a Buffer during construction.
type Option[W kmer.Word] = options.Option[*Buffer[W]]

// WithCodec selects the compression applied to flushed batches. The
// default is no compression.
func WithCodec[W kmer.Word](compressionType compress.CompressionType) Option[W] {
	return options.New(func(b *Buffer[W]) error {
		codec, err := compress.CreateCodec(compressionType, "staging")
		if err != nil {
			return err
		}
		b.codec = codec
		b.ctype = compressionType

		return nil
	})
}

// WithSync injects the lock policy guarding the buffer, typically
// Synchronized() or Unsynchronized().
func WithSync[W kmer.Word](locker sync.Locker) Option[W] {
	return options.New(func(b *Buffer[W]) error {
		if locker == nil {
			return errors.New("lock policy must not be nil")
		}
		b.mu = locker

		return nil
	})
}

// WithBatchRecords sets the number of records per flushed batch.
func WithBatchRecords[W kmer.Word](n int) Option[W] {
	return options.New(func(b *Buffer[W]) error {
		if n < 1 {
			return fmt.Errorf("batch record count must be positive, got %d", n)
		}
		b.batchRecords = n

		return nil
	})
}

// NewBuffer creates a staging buffer for k-mers of the given class.
//
// Parameters:
//   - c: the k-mer class of every accepted record
//   - flush: receiver for full batches; nil turns the buffer into a
//     fixed-capacity stage drained manually with Drain
//   - opts: WithCodec, WithSync, WithBatchRecords
//
// Returns:
//   - *Buffer[W]: the buffer, backed by a pooled byte buffer
//   - error: invalid option values
func NewBuffer[W kmer.Word](c *kmer.Class[W], flush FlushFunc, opts ...Option[W]) (*Buffer[W], error) {
	b := &Buffer[W]{
		class:        c,
		mu:           Unsynchronized(),
		codec:        compress.NewNoOpCompressor(),
		ctype:        compress.CompressionNone,
		flush:        flush,
		buf:          pool.GetStageBuffer(),
		batchRecords: DefaultBatchRecords,
	}
	if err := options.Apply(b, opts...); err != nil {
		pool.PutStageBuffer(b.buf)

		return nil, err
	}

	return b, nil
}

// Accept frames one k-mer record into the buffer, flushing when the
// batch threshold is reached. Without a flush handler the buffer fills
// to its threshold and then reports ErrBufferFull until drained.
func (b *Buffer[W]) Accept(km kmer.Kmer[W], payload uint64) error {
	if km.Class() != b.class {
		return errs.ErrClassMismatch
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errors.New("staging buffer is closed")
	}
	if b.records >= b.batchRecords {
		return fmt.Errorf("%w: %d records pending", errs.ErrBufferFull, b.records)
	}

	b.buf.B = AppendRecord(b.buf.B, km, payload)
	b.records++

	if b.records == b.batchRecords && b.flush != nil {
		return b.flushLocked()
	}

	return nil
}

// Records returns the number of records pending in the buffer.
func (b *Buffer[W]) Records() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.records
}

// Flush hands the pending records to the flush handler as one batch. A
// buffer built without a handler cannot Flush; use Drain instead.
func (b *Buffer[W]) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.flush == nil {
		return errors.New("staging buffer has no flush handler")
	}

	return b.flushLocked()
}

// Drain compresses and returns the pending records as a batch, leaving
// the buffer empty. Draining an empty buffer returns a zero-record
// batch.
func (b *Buffer[W]) Drain() (Batch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return Batch{}, errors.New("staging buffer is closed")
	}

	return b.takeLocked()
}

// Close flushes any pending records and releases the backing buffer to
// the stage pool. A buffer without a flush handler must be drained
// before closing, or Close reports the pending records as an error.
func (b *Buffer[W]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	var err error
	switch {
	case b.flush != nil:
		err = b.flushLocked()
	case b.records > 0:
		err = fmt.Errorf("%w: closing with %d undrained records", errs.ErrBufferFull, b.records)
	}

	b.closed = true
	pool.PutStageBuffer(b.buf)
	b.buf = nil

	return err
}

// flushLocked sends the pending records to the flush handler. The
// handler runs under the buffer's lock so batches stay ordered.
func (b *Buffer[W]) flushLocked() error {
	if b.records == 0 {
		return nil
	}

	batch, err := b.takeLocked()
	if err != nil {
		return err
	}

	return b.flush(batch)
}

// takeLocked compresses the pending records into an owned Batch and
// resets the stage for the next one.
func (b *Buffer[W]) takeLocked() (Batch, error) {
	batch := Batch{Records: b.records, Compression: b.ctype}

	if b.records > 0 {
		data, err := b.codec.Compress(b.buf.Bytes())
		if err != nil {
			return Batch{}, fmt.Errorf("compressing staged batch: %w", err)
		}
		// The no-op codec aliases the stage buffer, which is reused
		// right after; the batch needs its own copy.
		if b.ctype == compress.CompressionNone {
			data = append([]byte(nil), data...)
		}
		batch.Data = data
	}

	b.records = 0
	b.buf.Reset()

	return batch, nil
}
