package compress

import "fmt"

// CompressionType identifies the algorithm applied to a flushed staging
// batch before it is handed to the transport layer.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone leaves batches uncompressed.
	CompressionZstd CompressionType = 0x2 // CompressionZstd is Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 is S2 (Snappy-compatible) compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 is LZ4 block compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses one staged batch of fixed-width k-mer records.
//
// Batches arrive from the staging layer at a few tens of kilobytes each.
// Packed k-mer words repeat heavily across a genome scan, which is what
// makes general-purpose compression worthwhile before cross-rank
// transfer.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller
//     (except for the no-op codec, which passes the input through)
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a staged batch compressed by the matching
// Compressor. Implementations validate the input format and return an
// error on corrupt or mismatched data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All built-in codecs are stateless
// values, safe for concurrent use; reusable encoder state lives in
// internal pools.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory that creates a Codec for the given type.
//
// Parameters:
//   - compressionType: one of the CompressionType constants
//   - target: description of the usage site, for error messages
//
// Returns:
//   - Codec: codec instance for the specified type
//   - error: invalid compression type error
func CreateCodec(compressionType CompressionType, target string) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for the specified type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
