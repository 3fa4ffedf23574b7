package kmer

import (
	"fmt"

	"github.com/genobit/kmerpack/alphabet"
	"github.com/genobit/kmerpack/errs"
	"github.com/genobit/kmerpack/internal/bitgroup"
	"github.com/genobit/kmerpack/internal/options"
)

// Word constrains the machine word types a k-mer can be packed into.
type Word = bitgroup.Word

// ReversalStrategy identifies one of the interchangeable reversal tiers.
// All tiers produce bit-identical results; they differ only in the
// algorithm and the symbol widths they apply to.
type ReversalStrategy uint8

const (
	// ReversalAuto selects the best applicable tier for the symbol width
	// and host CPU when the class is built.
	ReversalAuto ReversalStrategy = iota
	// ReversalSequential extracts and replaces one symbol at a time. It is
	// the reference tier and the only one valid for symbol widths that are
	// not powers of two.
	ReversalSequential
	// ReversalByteSwap reverses the byte order of the word array and fixes
	// up the symbols inside each byte with a 256-entry table.
	ReversalByteSwap
	// ReversalSWAR reverses symbol groups with word-wide mask-and-shift
	// swaps, avoiding table lookups.
	ReversalSWAR
	// ReversalShuffle uses the byte-lane shuffle data flow: reversed byte
	// gather plus paired 16-entry nibble tables.
	ReversalShuffle
)

func (s ReversalStrategy) String() string {
	switch s {
	case ReversalAuto:
		return "Auto"
	case ReversalSequential:
		return "Sequential"
	case ReversalByteSwap:
		return "ByteSwap"
	case ReversalSWAR:
		return "SWAR"
	case ReversalShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// Class fixes the compile-time parameters of one k-mer shape: length,
// alphabet and word type. It precomputes the word count, padding mask,
// complement tables and the reversal tier, so per-k-mer operations carry
// no dispatch cost. A Class is immutable and safe for concurrent use.
type Class[W Word] struct {
	alpha *alphabet.Alphabet

	k           uint
	width       uint // bits per symbol
	wordBits    uint
	nWords      int
	payloadBits uint // k * width
	padBits     uint
	padMask     W // AND with the top word re-zeroes padding

	strategy ReversalStrategy

	// complement support, precomputed from the alphabet
	compTable []uint8 // indexed by raw code, identity outside the alphabet
	compXOR   W       // symbol XOR mask repeated across a full word
	wordXOR   bool    // complement == whole-word XOR with compXOR
}

// Option configures a Class during construction.
type Option[W Word] = options.Option[*Class[W]]

// WithReversal forces a specific reversal tier instead of the automatic
// capability-based selection. NewClass fails if the tier does not apply to
// the class's symbol width.
func WithReversal[W Word](s ReversalStrategy) Option[W] {
	return options.NoError(func(c *Class[W]) {
		c.strategy = s
	})
}

// NewClass builds the descriptor for k-mers of length k over the given
// alphabet, packed into words of type W.
//
// Parameters:
//   - k: number of symbols per k-mer, at least 1
//   - alpha: symbol alphabet; its BitsPerChar fixes the symbol width
//   - opts: optional configuration such as WithReversal
//
// Returns:
//   - *Class[W]: the immutable class descriptor
//   - error: ErrInvalidK, ErrNilAlphabet, ErrSymbolTooWide or
//     ErrReversalUnsupported
func NewClass[W Word](k int, alpha *alphabet.Alphabet, opts ...Option[W]) (*Class[W], error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", errs.ErrInvalidK, k)
	}
	if alpha == nil {
		return nil, errs.ErrNilAlphabet
	}

	width := alpha.BitsPerChar()
	wordBits := bitgroup.WordBits[W]()
	if width > wordBits {
		return nil, fmt.Errorf("%w: %d bits per symbol, %d-bit words",
			errs.ErrSymbolTooWide, width, wordBits)
	}

	payloadBits := uint(k) * width
	nWords := int((payloadBits + wordBits - 1) / wordBits)

	c := &Class[W]{
		alpha:       alpha,
		k:           uint(k),
		width:       width,
		wordBits:    wordBits,
		nWords:      nWords,
		payloadBits: payloadBits,
		padBits:     uint(nWords)*wordBits - payloadBits,
		padMask:     bitgroup.PadMask[W](payloadBits),
		strategy:    ReversalAuto,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}
	if err := c.resolveReversal(); err != nil {
		return nil, err
	}
	c.prepareComplement()

	return c, nil
}

// MustClass is NewClass that panics on error, for package-level class
// variables with known-good parameters.
func MustClass[W Word](k int, alpha *alphabet.Alphabet, opts ...Option[W]) *Class[W] {
	c, err := NewClass[W](k, alpha, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// resolveReversal turns ReversalAuto into a concrete tier and rejects
// forced tiers that cannot handle the symbol width. Selection happens
// exactly once per class; the hot path only calls through the result.
func (c *Class[W]) resolveReversal() error {
	if !bitgroup.ParallelWidth(c.width) {
		// 3-, 5-, 6- and 7-bit symbols have no byte or word alignment;
		// only the sequential tier is correct for them.
		if c.strategy != ReversalAuto && c.strategy != ReversalSequential {
			return fmt.Errorf("%w: %s with %d-bit symbols",
				errs.ErrReversalUnsupported, c.strategy, c.width)
		}
		c.strategy = ReversalSequential

		return nil
	}

	if c.strategy == ReversalAuto {
		switch {
		case hasByteShuffle():
			c.strategy = ReversalShuffle
		case c.wordBits >= 32:
			c.strategy = ReversalSWAR
		default:
			c.strategy = ReversalByteSwap
		}
	}

	return nil
}

// prepareComplement precomputes the per-code complement table over the
// full raw code space and, when the alphabet complements via a fixed XOR
// and symbols tile the word evenly, the word-wide XOR mask that lets
// reverse-complement stay on the parallel tiers.
func (c *Class[W]) prepareComplement() {
	codes := uint(1) << c.width
	c.compTable = make([]uint8, codes)
	for code := uint(0); code < codes; code++ {
		c.compTable[code] = c.alpha.Complement(uint8(code))
	}

	if c.alpha.ComplementKind() == alphabet.ComplementXOR && c.wordBits%c.width == 0 {
		var rep W
		for pos := uint(0); pos < c.wordBits; pos += c.width {
			rep |= W(c.alpha.XORMask()) << pos
		}
		c.compXOR = rep
		c.wordXOR = true
	}
}

// K returns the number of symbols per k-mer.
func (c *Class[W]) K() int { return int(c.k) }

// Alphabet returns the class's alphabet.
func (c *Class[W]) Alphabet() *alphabet.Alphabet { return c.alpha }

// BitsPerChar returns the symbol width in bits.
func (c *Class[W]) BitsPerChar() uint { return c.width }

// Words returns the number of machine words backing one k-mer.
func (c *Class[W]) Words() int { return c.nWords }

// PayloadBits returns k times the symbol width.
func (c *Class[W]) PayloadBits() uint { return c.payloadBits }

// PaddingBits returns the number of always-zero high bits in the top word.
func (c *Class[W]) PaddingBits() uint { return c.padBits }

// Reversal returns the tier selected for this class.
func (c *Class[W]) Reversal() ReversalStrategy { return c.strategy }

// maskPad re-zeroes the padding bits of the top word. Every mutating
// k-mer operation ends with this, keeping the central invariant that the
// full word array is comparable.
func (c *Class[W]) maskPad(w []W) {
	w[c.nWords-1] &= c.padMask
}
