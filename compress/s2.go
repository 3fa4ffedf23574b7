package compress

import "github.com/klauspost/compress/s2"

// S2Compressor compresses staged batches with S2, the Snappy-compatible
// format tuned for throughput. It is the default batch codec: staged
// k-mer records compress well under its repeated-pattern matching and
// both directions run at memory bandwidth on typical batch sizes.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the batch using S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress restores an S2-compressed batch.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
