package kmer

// Sink is the contract the codec's downstream consumers implement: the
// distributed index builder, or a staging layer batching k-mers for
// cross-rank transfer. The codec itself never depends on storage or
// transport semantics; it only hands finished values over.
//
// Accept takes one produced k-mer together with an opaque payload, such
// as the position of the k-mer in its source sequence. Implementations
// own their synchronization; a scan loop calls Accept from one goroutine.
type Sink[W Word] interface {
	Accept(km Kmer[W], payload uint64) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[W Word] func(km Kmer[W], payload uint64) error

func (f SinkFunc[W]) Accept(km Kmer[W], payload uint64) error {
	return f(km, payload)
}

// Scan runs the sliding window over seq, emitting every k-mer of the
// class in order with its start offset as payload. It stops early on the
// first sink error. Sequences shorter than K() produce nothing.
//
// The k-mer handed to the sink shares the scan's working buffer and is
// overwritten on the next step; sinks that retain it must Clone it.
func Scan[W Word](c *Class[W], seq []byte, sink Sink[W]) error {
	if len(seq) < c.K() {
		return nil
	}

	km := c.New()
	km.FillFromChars(seq[:c.K()])
	if err := sink.Accept(km, 0); err != nil {
		return err
	}

	for i := c.K(); i < len(seq); i++ {
		km.NextFromChar(seq[i])
		if err := sink.Accept(km, uint64(i-c.K()+1)); err != nil {
			return err
		}
	}

	return nil
}
