package staging

import (
	"fmt"

	"github.com/genobit/kmerpack/compress"
	"github.com/genobit/kmerpack/endian"
	"github.com/genobit/kmerpack/errs"
	"github.com/genobit/kmerpack/internal/bitgroup"
	"github.com/genobit/kmerpack/kmer"
)

// payloadBytes is the framed size of the per-record payload.
const payloadBytes = 8

// recordEngine frames records little endian on every host, matching the
// in-memory layout of the packed words on all supported targets.
var recordEngine = endian.GetLittleEndianEngine()

// RecordSize returns the framed size in bytes of one record of the
// class: the packed word array followed by a 64-bit payload.
func RecordSize[W kmer.Word](c *kmer.Class[W]) int {
	return c.Words()*int(bitgroup.WordBits[W]()/8) + payloadBytes
}

// AppendRecord frames one k-mer record onto dst and returns the
// extended slice. Words are written in array order, each little endian.
func AppendRecord[W kmer.Word](dst []byte, km kmer.Kmer[W], payload uint64) []byte {
	wordBytes := int(bitgroup.WordBits[W]() / 8)
	for i := 0; i < km.Class().Words(); i++ {
		dst = appendWord(dst, km.Word(i), wordBytes)
	}

	return recordEngine.AppendUint64(dst, payload)
}

func appendWord[W kmer.Word](dst []byte, w W, wordBytes int) []byte {
	switch wordBytes {
	case 1:
		return append(dst, byte(w))
	case 2:
		return recordEngine.AppendUint16(dst, uint16(w))
	case 4:
		return recordEngine.AppendUint32(dst, uint32(w))
	default:
		return recordEngine.AppendUint64(dst, uint64(w))
	}
}

// DecodeRecord decodes one record from the front of data.
//
// Returns:
//   - kmer.Kmer[W]: the decoded k-mer, rebuilt through the class
//   - uint64: the record payload
//   - error: ErrShortRecord if data holds fewer bytes than one record
func DecodeRecord[W kmer.Word](c *kmer.Class[W], data []byte) (kmer.Kmer[W], uint64, error) {
	size := RecordSize(c)
	if len(data) < size {
		return kmer.Kmer[W]{}, 0, fmt.Errorf("%w: have %d bytes, need %d",
			errs.ErrShortRecord, len(data), size)
	}

	wordBytes := int(bitgroup.WordBits[W]() / 8)
	words := make([]W, c.Words())
	off := 0
	for i := range words {
		words[i] = readWord[W](data[off:], wordBytes)
		off += wordBytes
	}

	return c.FromWords(words), recordEngine.Uint64(data[off : off+payloadBytes]), nil
}

func readWord[W kmer.Word](data []byte, wordBytes int) W {
	switch wordBytes {
	case 1:
		return W(data[0])
	case 2:
		return W(recordEngine.Uint16(data[:2]))
	case 4:
		return W(recordEngine.Uint32(data[:4]))
	default:
		return W(recordEngine.Uint64(data[:8]))
	}
}

// BatchReader iterates the records of one decompressed batch.
type BatchReader[W kmer.Word] struct {
	class   *kmer.Class[W]
	data    []byte
	size    int
	km      kmer.Kmer[W]
	payload uint64
}

// NewBatchReader decompresses a flushed batch and prepares record
// iteration.
//
// Returns:
//   - *BatchReader[W]: reader positioned before the first record
//   - error: unknown compression type, codec failure, or ErrRecordSize
//     if the decompressed length is not a whole number of records
func NewBatchReader[W kmer.Word](c *kmer.Class[W], batch Batch) (*BatchReader[W], error) {
	codec, err := compress.GetCodec(batch.Compression)
	if err != nil {
		return nil, err
	}

	data, err := codec.Decompress(batch.Data)
	if err != nil {
		return nil, fmt.Errorf("decompressing staged batch: %w", err)
	}

	size := RecordSize(c)
	if len(data)%size != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			errs.ErrRecordSize, len(data), size)
	}

	return &BatchReader[W]{class: c, data: data, size: size}, nil
}

// Next advances to the next record, returning false when the batch is
// exhausted.
func (r *BatchReader[W]) Next() bool {
	if len(r.data) < r.size {
		return false
	}

	// Length is validated up front, so the decode cannot fail here.
	r.km, r.payload, _ = DecodeRecord(r.class, r.data)
	r.data = r.data[r.size:]

	return true
}

// Record returns the record read by the last successful Next.
func (r *BatchReader[W]) Record() (kmer.Kmer[W], uint64) {
	return r.km, r.payload
}

// Remaining returns the number of records not yet read.
func (r *BatchReader[W]) Remaining() int {
	return len(r.data) / r.size
}
