package kmer

import (
	"github.com/genobit/kmerpack/alphabet"
	"github.com/genobit/kmerpack/internal/bitgroup"
)

// Reverse returns a new k-mer whose symbol order is reversed, each
// symbol's own bit pattern unchanged. The tier selected at class
// construction does the work; all tiers are bit-identical, and
// Reverse(Reverse(x)) == x.
func (km Kmer[W]) Reverse() Kmer[W] {
	out := km.class.New()
	km.class.reverseInto(out.words, km.words)

	return out
}

// ReverseComplement returns the reverse of the k-mer with every symbol
// complemented through the class's alphabet: the packed form of the
// opposite strand for nucleotide alphabets.
func (km Kmer[W]) ReverseComplement() Kmer[W] {
	out := km.class.New()
	km.class.reverseComplementInto(out.words, km.words)

	return out
}

// Canonical returns the smaller of the k-mer and its reverse complement
// under Less, the strand-independent representative used for counting.
func (km Kmer[W]) Canonical() Kmer[W] {
	rc := km.ReverseComplement()
	if rc.Less(km) {
		return rc
	}

	return km.Clone()
}

// reverseInto writes the symbol-order reversal of src into dst. dst must
// be zeroed and must not alias src.
//
// The parallel tiers reverse every group across the full word array,
// which parks the payload against the top; the shift right by the padding
// width realigns it. The sequential tier places symbols directly.
func (c *Class[W]) reverseInto(dst, src []W) {
	switch c.strategy {
	case ReversalByteSwap:
		bitgroup.ReverseBytes(dst, src, c.width)
		bitgroup.ShiftRight(dst, c.padBits)
	case ReversalSWAR:
		bitgroup.ReverseSWAR(dst, src, c.width)
		bitgroup.ShiftRight(dst, c.padBits)
	case ReversalShuffle:
		bitgroup.ReverseShuffle(dst, src, c.width)
		bitgroup.ShiftRight(dst, c.padBits)
	default:
		bitgroup.ReverseSeq(dst, src, c.k, c.width)
	}
	c.maskPad(dst)
}

// reverseComplementInto writes the reverse complement of src into dst.
// Complement is position-independent, so it can be folded into whichever
// reversal form the alphabet admits:
//
//   - XOR-form complements (DNA, RNA) ride the structural tiers and flip
//     all symbols afterwards with one repeated-mask XOR per word.
//   - Bit-reverse-form complements (DNA16) collapse the whole operation
//     into a single bit reversal: reversing groups of one bit both
//     reverses symbol order and reverses each symbol's bits.
//   - Table-form complements go through the sequential tier.
func (c *Class[W]) reverseComplementInto(dst, src []W) {
	switch {
	case c.wordXOR && c.strategy != ReversalSequential:
		c.reverseInto(dst, src)
		for i := range dst {
			dst[i] ^= c.compXOR
		}
	case c.alpha.ComplementKind() == alphabet.ComplementBitReverse && c.strategy != ReversalSequential:
		switch c.strategy {
		case ReversalByteSwap:
			bitgroup.ReverseBytes(dst, src, 1)
		case ReversalSWAR:
			bitgroup.ReverseSWAR(dst, src, 1)
		default:
			bitgroup.ReverseShuffle(dst, src, 1)
		}
		bitgroup.ShiftRight(dst, c.padBits)
	default:
		bitgroup.ReverseSeqComplement(dst, src, c.k, c.width, c.compTable)
	}
	c.maskPad(dst)
}
