// Package compress provides the compression codecs applied to staged
// k-mer batches before cross-thread or cross-rank transfer.
//
// A staged batch is a run of fixed-width records: the packed word array
// of one k-mer plus its payload, repeated a few thousand times. Genome
// scans produce highly repetitive word patterns, so even fast codecs
// reclaim most of the batch volume.
//
// # Supported Algorithms
//
//   - None: pass-through, for local (same-process) sinks
//   - S2: balanced speed and ratio, the default for staged batches
//   - LZ4: fastest decompression, for receive-bound consumers
//   - Zstd: best ratio, for bandwidth-limited transports
//
// The Zstd codec has two implementations selected by build tags: a cgo
// binding when cgo is available, and a pure-Go fallback otherwise. Both
// produce interchangeable Zstandard frames.
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	wire, err := codec.Compress(batch)
//
// All codecs are safe for concurrent use.
package compress
