// Package kmerpack implements a packed k-mer codec for genome indexing:
// fixed-length symbol strings stored bit-packed across machine words,
// with streaming construction from packed symbol streams, constant-time
// sliding-window updates, and word-parallel reversal and
// reverse-complementation.
//
// A k-mer's shape is fixed by a Class: the length K, the alphabet (which
// sets the symbol width in bits), and the machine word type backing the
// packed array. All widths are resolved when the class is built, so the
// per-k-mer operations run without dispatch or validation overhead.
//
// # Core Features
//
//   - Bit-packed storage in 8/16/32/64-bit words with a zero-padding
//     invariant, making equality, ordering and hashing plain word-array
//     operations
//   - O(words) sliding-window advance for whole-genome scans
//   - Stream filling from packed streams of any word width, skipping
//     per-word padding left by symbol widths that do not divide the
//     stream word
//   - Four bit-identical reversal tiers (sequential, byte-swap, SWAR,
//     vector-shuffle) selected per class by symbol width and CPU
//   - Reverse complement and canonical form for strand-independent
//     counting
//   - Staging of produced k-mers into compressed fixed-width record
//     batches for hand-off to a distributed index builder
//
// # Basic Usage
//
// Scanning a sequence with a 21-symbol DNA window:
//
//	class, err := kmerpack.NewDNAClass[uint64](21)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = kmer.Scan(class, sequence, kmer.SinkFunc[uint64](
//	    func(km kmer.Kmer[uint64], pos uint64) error {
//	        index.Add(km.Canonical().Hash64(), pos)
//	        return nil
//	    }))
//
// # Package Structure
//
// This package provides top-level constructors for the common alphabets.
// The kmer package holds the codec itself, alphabet the symbol tables,
// staging the batch hand-off layer, and compress the batch codecs.
package kmerpack

import (
	"github.com/genobit/kmerpack/alphabet"
	"github.com/genobit/kmerpack/kmer"
)

// NewDNAClass builds a k-mer class over the 2-bit A/C/G/T alphabet.
//
// Parameters:
//   - k: number of symbols per k-mer
//   - opts: optional configuration such as kmer.WithReversal
//
// Returns:
//   - *kmer.Class[W]: the immutable class descriptor
//   - error: invalid k or option values
func NewDNAClass[W kmer.Word](k int, opts ...kmer.Option[W]) (*kmer.Class[W], error) {
	return kmer.NewClass[W](k, alphabet.DNA, opts...)
}

// NewRNAClass builds a k-mer class over the 2-bit A/C/G/U alphabet.
func NewRNAClass[W kmer.Word](k int, opts ...kmer.Option[W]) (*kmer.Class[W], error) {
	return kmer.NewClass[W](k, alphabet.RNA, opts...)
}

// NewDNA5Class builds a k-mer class over the 3-bit A/C/G/T/N alphabet,
// for inputs that carry unresolved bases.
func NewDNA5Class[W kmer.Word](k int, opts ...kmer.Option[W]) (*kmer.Class[W], error) {
	return kmer.NewClass[W](k, alphabet.DNA5, opts...)
}

// NewDNA16Class builds a k-mer class over the 4-bit IUPAC ambiguity
// alphabet.
func NewDNA16Class[W kmer.Word](k int, opts ...kmer.Option[W]) (*kmer.Class[W], error) {
	return kmer.NewClass[W](k, alphabet.DNA16, opts...)
}
