package kmer

import (
	"strings"

	"github.com/genobit/kmerpack/internal/bitgroup"
	"github.com/genobit/kmerpack/internal/hash"
)

// Kmer is one packed k-mer value. The zero Kmer is not usable; values are
// created through a Class.
//
// A Kmer wraps a fixed-size word array. Plain assignment shares that
// array; use Clone for an independent copy. The in-place operations
// (fills, sliding updates, bitwise ops, shifts) re-zero the padding bits
// of the top word before returning, so two k-mers of the same class are
// equal exactly when their word arrays are.
type Kmer[W Word] struct {
	class *Class[W]
	words []W
}

// New returns a zero-valued k-mer of this class (all symbols code 0).
func (c *Class[W]) New() Kmer[W] {
	return Kmer[W]{class: c, words: make([]W, c.nWords)}
}

// FromWords builds a k-mer from a raw word array laid out in the class's
// packed format. Exactly Words() words are copied; garbage in the
// caller's padding bits is masked off immediately rather than trusted.
func (c *Class[W]) FromWords(raw []W) Kmer[W] {
	km := c.New()
	copy(km.words, raw[:c.nWords])
	c.maskPad(km.words)

	return km
}

// FromString builds a k-mer from the first K() characters of s.
func (c *Class[W]) FromString(s string) Kmer[W] {
	km := c.New()
	km.FillFromChars([]byte(s))

	return km
}

// Class returns the class this k-mer belongs to.
func (km Kmer[W]) Class() *Class[W] { return km.class }

// Words returns a copy of the backing word array, word 0 first.
func (km Kmer[W]) Words() []W {
	return append([]W(nil), km.words...)
}

// Word returns word i of the backing array without copying.
func (km Kmer[W]) Word(i int) W {
	return km.words[i]
}

// Clone returns an independent copy of the k-mer.
func (km Kmer[W]) Clone() Kmer[W] {
	return Kmer[W]{class: km.class, words: km.Words()}
}

// FillFromChars loads the k-mer from the first K() bytes of seq, encoding
// each byte through the class's alphabet. The first byte becomes symbol 0
// in the low-order bits. If seq holds fewer than K() bytes the remaining
// symbols are left at code 0; the result is then unspecified by the
// streaming contract but never a crash.
func (km *Kmer[W]) FillFromChars(seq []byte) {
	c := km.class
	clear(km.words)

	n := uint(len(seq))
	if n > c.k {
		n = c.k
	}
	for i := uint(0); i < n; i++ {
		bitgroup.Set(km.words, i*c.width, c.width, c.alpha.Encode(seq[i]))
	}
	c.maskPad(km.words)
}

// NextFromChar slides the window forward by one symbol: the oldest symbol
// drops out of the low end and ch enters at position K()-1. Runs in
// O(Words()) independent of k.
func (km *Kmer[W]) NextFromChar(ch byte) {
	c := km.class
	bitgroup.ShiftRight(km.words, c.width)
	bitgroup.Set(km.words, (c.k-1)*c.width, c.width, c.alpha.Encode(ch))
	c.maskPad(km.words)
}

// Equal reports whether two k-mers of the same class hold the same value.
func (km Kmer[W]) Equal(other Kmer[W]) bool {
	return bitgroup.Equal(km.words, other.words)
}

// Less orders k-mers as big-endian multi-word unsigned integers: the most
// significant word is compared first.
func (km Kmer[W]) Less(other Kmer[W]) bool {
	return bitgroup.Less(km.words, other.words)
}

// Compare returns -1, 0 or 1 under the same ordering as Less.
func (km Kmer[W]) Compare(other Kmer[W]) int {
	return bitgroup.Compare(km.words, other.words)
}

// And replaces the k-mer with the bitwise AND of itself and other.
func (km *Kmer[W]) And(other Kmer[W]) {
	bitgroup.And(km.words, km.words, other.words)
	km.class.maskPad(km.words)
}

// Or replaces the k-mer with the bitwise OR of itself and other.
func (km *Kmer[W]) Or(other Kmer[W]) {
	bitgroup.Or(km.words, km.words, other.words)
	km.class.maskPad(km.words)
}

// Xor replaces the k-mer with the bitwise XOR of itself and other.
func (km *Kmer[W]) Xor(other Kmer[W]) {
	bitgroup.Xor(km.words, km.words, other.words)
	km.class.maskPad(km.words)
}

// ShiftLeft shifts the packed value toward higher-order bits by n bits,
// re-zeroing padding. Shifting by the payload width or more yields zero.
func (km *Kmer[W]) ShiftLeft(n uint) {
	bitgroup.ShiftLeft(km.words, n)
	km.class.maskPad(km.words)
}

// ShiftRight shifts the packed value toward lower-order bits by n bits.
func (km *Kmer[W]) ShiftRight(n uint) {
	bitgroup.ShiftRight(km.words, n)
	km.class.maskPad(km.words)
}

// String decodes the k-mer back to characters, symbol 0 first. The round
// trip through FillFromChars is the identity for valid input.
func (km Kmer[W]) String() string {
	c := km.class
	var sb strings.Builder
	sb.Grow(int(c.k))
	for i := uint(0); i < c.k; i++ {
		sb.WriteByte(c.alpha.Decode(bitgroup.Get(km.words, i*c.width, c.width)))
	}

	return sb.String()
}

// Hash64 returns the xxHash64 of the packed value. Equal k-mers hash
// equally because padding bits are always zero.
func (km Kmer[W]) Hash64() uint64 {
	c := km.class
	buf := make([]byte, 0, c.nWords*int(c.wordBits/8))
	for _, w := range km.words {
		v := uint64(w)
		for sh := uint(0); sh < c.wordBits; sh += 8 {
			buf = append(buf, byte(v>>sh))
		}
	}

	return hash.Sum64(buf)
}
