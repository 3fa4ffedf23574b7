// Package errs defines the sentinel errors shared across kmerpack packages.
//
// All errors are wrapped with context at the call site using fmt.Errorf with
// the %w verb, so callers can match them with errors.Is:
//
//	class, err := kmer.NewClass[uint64](0, alphabet.DNA)
//	if errors.Is(err, errs.ErrInvalidK) {
//	    // handle invalid k-mer length
//	}
package errs

import "errors"

var (
	// ErrEmptyAlphabet indicates an alphabet was built with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet has no symbols")

	// ErrAlphabetTooLarge indicates an alphabet exceeds 256 symbols and
	// cannot be encoded in at most 8 bits per symbol.
	ErrAlphabetTooLarge = errors.New("alphabet exceeds 256 symbols")

	// ErrComplementMismatch indicates the complement list length differs
	// from the symbol list length.
	ErrComplementMismatch = errors.New("complement list does not match symbol list")

	// ErrComplementNotInvolution indicates a complement mapping that is
	// not its own inverse.
	ErrComplementNotInvolution = errors.New("complement mapping is not an involution")

	// ErrInvalidK indicates a non-positive k-mer length.
	ErrInvalidK = errors.New("k-mer length must be positive")

	// ErrNilAlphabet indicates a k-mer class was requested without an alphabet.
	ErrNilAlphabet = errors.New("alphabet must not be nil")

	// ErrSymbolTooWide indicates an alphabet whose symbols do not fit the
	// chosen word type.
	ErrSymbolTooWide = errors.New("symbol width exceeds word width")

	// ErrReversalUnsupported indicates a forced reversal strategy that is
	// not applicable to the class's symbol width.
	ErrReversalUnsupported = errors.New("reversal strategy not applicable to symbol width")

	// ErrClassMismatch indicates an operation across k-mers of different
	// classes.
	ErrClassMismatch = errors.New("k-mers belong to different classes")

	// ErrBufferFull indicates a staging buffer that cannot accept another
	// record until it is flushed.
	ErrBufferFull = errors.New("staging buffer is full")

	// ErrRecordSize indicates a record payload that does not match the
	// buffer's fixed record size.
	ErrRecordSize = errors.New("record size does not match buffer record size")

	// ErrShortRecord indicates a record decode from fewer bytes than one
	// full record.
	ErrShortRecord = errors.New("not enough bytes for a full record")
)
