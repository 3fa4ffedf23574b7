// Package staging batches produced k-mers into fixed-width binary
// records for hand-off to another goroutine, process or rank.
//
// A Buffer implements kmer.Sink: every accepted k-mer is framed as its
// packed word array plus a 64-bit payload, appended to a pooled byte
// buffer, and the full batch is compressed and flushed once the
// configured record count is reached. Thread safety is a construction
// choice, not a type split: the same Buffer runs lock-free for a
// per-goroutine producer or mutex-guarded when producers share it.
//
// # Producing
//
//	buf, err := staging.NewBuffer(class, staging.ChannelFlush[uint64](batches),
//	    staging.WithCompression[uint64](compress.CompressionS2),
//	    staging.WithSynchronized[uint64]())
//	if err != nil {
//	    return err
//	}
//	defer buf.Close()
//
//	if err := kmer.Scan(class, seq, buf); err != nil {
//	    return err
//	}
//
// # Consuming
//
//	for batch := range batches {
//	    reader, err := staging.NewBatchReader(class, batch)
//	    if err != nil {
//	        return err
//	    }
//	    for reader.Next() {
//	        km, payload := reader.Record()
//	        // ...
//	    }
//	}
//
// Records are framed little endian regardless of host byte order, so
// batches can cross machine boundaries.
package staging
